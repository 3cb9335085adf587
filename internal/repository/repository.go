package repository

import (
	"context"

	"transfit/workout-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate record")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ProfileRepository defines the interface for interacting with training
// profile data. Each user has at most one profile.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
}

// ExerciseRepository defines the interface for interacting with the exercise
// catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
}

// WorkoutRepository defines the interface for interacting with generated
// workout records.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.AssembledWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.AssembledWorkout, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.AssembledWorkout, error)
}

// AuditRepository defines the interface for the safety-rule audit trail.
type AuditRepository interface {
	CreateMany(ctx context.Context, records []domain.AuditRecord) error
	GetByRunID(ctx context.Context, runID string) ([]domain.AuditRecord, error)
}
