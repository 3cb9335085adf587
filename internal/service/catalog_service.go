package service

import (
	"context"
	"errors"
	"strings"

	"transfit/workout-app/internal/catalog"
	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/repository"
	"transfit/workout-app/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrExerciseExists     = errors.New("exercise with this slug already exists")
	ErrExerciseValidation = errors.New("exercise validation failed")
	ErrNoMedia            = errors.New("exercise has no demo media")
)

// --- Service Interface ---
type CatalogService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	GetExerciseMediaURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error)
	IngestExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
}

// --- Service Implementation ---

// catalogService implements the CatalogService interface.
type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	cache        *catalog.Cache
	mediaStore   storage.MediaStore
}

// NewCatalogService creates a new instance of catalogService. mediaStore may
// be nil when no media backend is configured; media URL requests then fail
// with ErrNoMedia.
func NewCatalogService(exerciseRepo repository.ExerciseRepository, cache *catalog.Cache, mediaStore storage.MediaStore) CatalogService {
	return &catalogService{
		exerciseRepo: exerciseRepo,
		cache:        cache,
		mediaStore:   mediaStore,
	}
}

// ListExercises returns the catalog through the TTL cache.
func (s *catalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.cache.Snapshot(ctx)
}

// GetExerciseByID retrieves a single catalog entry.
func (s *catalogService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetExerciseMediaURL returns a short-lived presigned download URL for the
// exercise's demo video.
func (s *catalogService) GetExerciseMediaURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error) {
	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return "", err
	}
	if exercise.MediaKey == "" || s.mediaStore == nil {
		return "", ErrNoMedia
	}
	return s.mediaStore.PresignGet(ctx, exercise.MediaKey, storage.DefaultURLExpiry)
}

// IngestExercise adds a curated exercise to the catalog. Equipment tokens are
// normalized and missing safety flags are defaulted from naming heuristics
// before the record is stored. Admin only; the handler enforces the role.
func (s *catalogService) IngestExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise == nil || exercise.Name == "" || exercise.Pattern == "" {
		return nil, ErrExerciseValidation
	}
	if exercise.Slug == "" {
		exercise.Slug = slugify(exercise.Name)
	}

	normalized := make([]string, 0, len(exercise.Equipment))
	for _, eq := range exercise.Equipment {
		normalized = append(normalized, domain.NormalizeEquipment(eq))
	}
	if len(normalized) == 0 {
		normalized = []string{"bodyweight"}
	}
	exercise.Equipment = normalized

	applySafetyDefaults(exercise)

	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	exercise.ID = id

	s.cache.Invalidate()
	return exercise, nil
}

// applySafetyDefaults fills unset safety flags from naming heuristics:
// jumping and explosive movements are unsafe under heavy binding, and
// bearing-down core work is not pelvic floor safe.
func applySafetyDefaults(ex *domain.Exercise) {
	name := strings.ToLower(ex.Name)

	explosive := strings.Contains(name, "jump") ||
		strings.Contains(name, "burpee") ||
		strings.Contains(name, "sprint") ||
		strings.Contains(name, "plyo") ||
		strings.Contains(name, "explosive")
	if explosive {
		ex.HeavyBindingSafe = false
		if ex.ImpactLevel == "" {
			ex.ImpactLevel = domain.ImpactHigh
		}
	}

	bearingDown := ex.Pattern == domain.PatternCore &&
		(strings.Contains(name, "sit-up") ||
			strings.Contains(name, "situp") ||
			strings.Contains(name, "crunch") ||
			strings.Contains(name, "leg raise"))
	if bearingDown {
		ex.PelvicFloorSafe = false
	}

	if ex.ImpactLevel == "" {
		ex.ImpactLevel = domain.ImpactLow
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, slug)
}
