package mongo

import (
	"context"
	"errors"
	"time"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new training profile repository backed by MongoDB.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Upsert writes the user's profile, replacing any existing one. A user has a
// single profile document keyed by userId.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error) {
	if profile.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("profile user ID is required")
	}

	now := time.Now().UTC()
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	filter := bson.M{"userId": profile.UserID}
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.Profile
	err := r.collection.FindOneAndReplace(ctx, filter, profile, opts).Decode(&saved)
	if err != nil {
		return primitive.NilObjectID, err
	}

	profile.ID = saved.ID
	return saved.ID, nil
}

// GetByUserID retrieves the profile belonging to a user.
func (r *mongoProfileRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	var profile domain.Profile
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// EnsureProfileIndexes creates necessary indexes for the profiles collection.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
