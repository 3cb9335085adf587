package storage

import (
	"context"
	"fmt"
	"time"

	"transfit/workout-app/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3MediaStore serves exercise media from an S3-compatible bucket.
type s3MediaStore struct {
	presigner *s3.PresignClient
	client    *s3.Client
	bucket    string
}

// NewS3MediaStore builds a MediaStore backed by the configured bucket.
// A non-empty endpoint switches the client to an S3-compatible provider
// such as MinIO, which also requires path-style addressing.
func NewS3MediaStore(cfg config.S3Config) (MediaStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: cfg.Endpoint, SigningRegion: cfg.Region, PartitionID: "aws"}, nil
			})
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.Endpoint != ""
	})

	return &s3MediaStore{
		presigner: s3.NewPresignClient(client),
		client:    client,
		bucket:    cfg.BucketName,
	}, nil
}

func (m *s3MediaStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := m.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(clampExpiry(expires)))
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return req.URL, nil
}

func (m *s3MediaStore) PresignPut(ctx context.Context, key string, contentType string, expires time.Duration) (string, error) {
	req, err := m.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(clampExpiry(expires)))
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return req.URL, nil
}

func (m *s3MediaStore) Remove(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func clampExpiry(expires time.Duration) time.Duration {
	if expires <= 0 {
		return DefaultURLExpiry
	}
	return expires
}
