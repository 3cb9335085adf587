package service

import (
	"context"
	"testing"
	"time"

	"transfit/workout-app/internal/catalog"
	"transfit/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "goblet-squat", slugify("Goblet Squat"))
	assert.Equal(t, "childs-pose", slugify("Child's Pose"))
	assert.Equal(t, "bulgarian-split-squat", slugify("  Bulgarian Split Squat "))
}

func TestCatalogServiceIngest(t *testing.T) {
	ctx := context.Background()

	newService := func(repo *fakeExerciseRepo) (CatalogService, *catalog.Cache) {
		cache := catalog.NewCache(repo, time.Minute)
		return NewCatalogService(repo, cache, nil), cache
	}

	t.Run("slugifies, normalizes equipment, defaults safety flags", func(t *testing.T) {
		repo := newFakeExerciseRepo()
		svc, _ := newService(repo)

		created, err := svc.IngestExercise(ctx, &domain.Exercise{
			Name:      "Box Jump",
			Pattern:   domain.PatternCardio,
			Equipment: []string{"Plyo Box"},
		})
		require.NoError(t, err)

		assert.Equal(t, "box-jump", created.Slug)
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, []string{"step"}, created.Equipment)
		assert.False(t, created.HeavyBindingSafe, "jumping is unsafe under heavy binding")
		assert.Equal(t, domain.ImpactHigh, created.ImpactLevel)
	})

	t.Run("bearing-down core work is not pelvic floor safe", func(t *testing.T) {
		repo := newFakeExerciseRepo()
		svc, _ := newService(repo)

		created, err := svc.IngestExercise(ctx, &domain.Exercise{
			Name:    "Weighted Crunch",
			Pattern: domain.PatternCore,
		})
		require.NoError(t, err)

		assert.False(t, created.PelvicFloorSafe)
		assert.Equal(t, domain.ImpactLow, created.ImpactLevel)
		assert.Equal(t, []string{"bodyweight"}, created.Equipment, "no equipment listed defaults to bodyweight")
	})

	t.Run("rejects missing name or pattern", func(t *testing.T) {
		repo := newFakeExerciseRepo()
		svc, _ := newService(repo)

		_, err := svc.IngestExercise(ctx, &domain.Exercise{Pattern: domain.PatternSquat})
		assert.ErrorIs(t, err, ErrExerciseValidation)

		_, err = svc.IngestExercise(ctx, &domain.Exercise{Name: "No Pattern"})
		assert.ErrorIs(t, err, ErrExerciseValidation)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		repo := newFakeExerciseRepo()
		svc, _ := newService(repo)

		_, err := svc.IngestExercise(ctx, &domain.Exercise{Name: "Goblet Squat", Pattern: domain.PatternSquat})
		require.NoError(t, err)

		_, err = svc.IngestExercise(ctx, &domain.Exercise{Name: "Goblet Squat", Pattern: domain.PatternSquat})
		assert.ErrorIs(t, err, ErrExerciseExists)
	})

	t.Run("ingest invalidates the list cache", func(t *testing.T) {
		repo := newFakeExerciseRepo(domain.Exercise{Slug: "existing", Name: "Existing"})
		svc, _ := newService(repo)

		first, err := svc.ListExercises(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)

		_, err = svc.IngestExercise(ctx, &domain.Exercise{Name: "New Move", Pattern: domain.PatternCore})
		require.NoError(t, err)

		second, err := svc.ListExercises(ctx)
		require.NoError(t, err)
		assert.Len(t, second, 2, "the cached snapshot was dropped on write")
	})
}

func TestCatalogServiceMediaURL(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExerciseRepo(domain.Exercise{Slug: "no-media", Name: "No Media"})
	cache := catalog.NewCache(repo, time.Minute)
	svc := NewCatalogService(repo, cache, nil)

	t.Run("unknown exercise", func(t *testing.T) {
		_, err := svc.GetExerciseMediaURL(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrExerciseNotFound)
	})

	t.Run("exercise without media", func(t *testing.T) {
		ex, err := repo.GetBySlug(ctx, "no-media")
		require.NoError(t, err)

		_, err = svc.GetExerciseMediaURL(ctx, ex.ID)
		assert.ErrorIs(t, err, ErrNoMedia)
	})
}
