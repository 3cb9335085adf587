package mongo

import (
	"context"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditCollectionName = "safety_audit"

// mongoAuditRepository implements repository.AuditRepository
type mongoAuditRepository struct {
	collection *mongo.Collection
}

// NewMongoAuditRepository creates a new safety-rule audit trail repository.
func NewMongoAuditRepository(db *mongo.Database) repository.AuditRepository {
	return &mongoAuditRepository{
		collection: db.Collection(auditCollectionName),
	}
}

// CreateMany inserts all audit records of one generation run in a single batch.
func (r *mongoAuditRepository) CreateMany(ctx context.Context, records []domain.AuditRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i := range records {
		records[i].ID = primitive.NewObjectID()
		docs[i] = records[i]
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByRunID retrieves the audit records of one generation run in application order.
func (r *mongoAuditRepository) GetByRunID(ctx context.Context, runID string) ([]domain.AuditRecord, error) {
	var records []domain.AuditRecord
	filter := bson.M{"runId": runID}

	findOptions := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, repository.ErrNotFound
	}
	return records, nil
}

// EnsureAuditIndexes creates necessary indexes for the audit collection.
func EnsureAuditIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "runId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "appliedAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
