package storage

import (
	"context"
	"time"
)

// DefaultURLExpiry bounds how long a presigned media URL stays valid.
const DefaultURLExpiry = 15 * time.Minute

// MediaStore is the object-storage surface the app needs for exercise demo
// clips: members view them through short-lived GET URLs, admins stage new
// clips through PUT URLs before wiring the key into a catalog entry.
type MediaStore interface {
	// PresignGet returns a temporary URL for viewing the object at key.
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)

	// PresignPut returns a temporary URL that accepts a direct PUT of the
	// object. The uploader must send the same Content-Type header.
	PresignPut(ctx context.Context, key string, contentType string, expires time.Duration) (string, error)

	// Remove deletes the object at key.
	Remove(ctx context.Context, key string) error
}
