package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"transfit/workout-app/internal/catalog"
	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/generation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func serviceCatalog() []domain.Exercise {
	allPhases := []domain.RecoveryPhase{
		domain.PhaseImmediate, domain.PhaseEarly, domain.PhaseMid,
		domain.PhaseLate, domain.PhaseMaintenance,
	}
	build := func(slug string, pattern domain.Pattern, target string) domain.Exercise {
		return domain.Exercise{
			ID:               primitive.NewObjectID(),
			Slug:             slug,
			Name:             slug,
			Pattern:          pattern,
			Equipment:        []string{"bodyweight"},
			Difficulty:       domain.ExperienceBeginner,
			BinderAware:      true,
			HeavyBindingSafe: true,
			PelvicFloorSafe:  true,
			TargetMuscles:    target,
			RecoveryPhases:   allPhases,
			ImpactLevel:      domain.ImpactLow,
		}
	}
	return []domain.Exercise{
		build("air-squat", domain.PatternSquat, "quads, glutes"),
		build("glute-bridge", domain.PatternHinge, "glutes, hamstrings"),
		build("push-up", domain.PatternPush, "chest"),
		build("band-row", domain.PatternPull, "upper back"),
		build("walking-lunge", domain.PatternLunge, "glutes"),
		build("plank", domain.PatternCore, "abs"),
		build("dead-bug", domain.PatternCore, "abs, obliques"),
		build("brisk-walk", domain.PatternCardio, "legs"),
	}
}

type generationFixture struct {
	svc         GenerationService
	profileRepo *fakeProfileRepo
	workoutRepo *fakeWorkoutRepo
	auditRepo   *fakeAuditRepo
	userID      primitive.ObjectID
}

func newGenerationFixture(t *testing.T) *generationFixture {
	t.Helper()
	registry, err := generation.LoadTemplates()
	require.NoError(t, err)

	exerciseRepo := newFakeExerciseRepo(serviceCatalog()...)
	profileRepo := newFakeProfileRepo()
	workoutRepo := &fakeWorkoutRepo{}
	auditRepo := &fakeAuditRepo{}

	svc := NewGenerationService(
		generation.NewPipeline(registry, testLogger()),
		profileRepo,
		catalog.NewCache(exerciseRepo, time.Minute),
		workoutRepo,
		auditRepo,
		testLogger(),
	)
	return &generationFixture{
		svc:         svc,
		profileRepo: profileRepo,
		workoutRepo: workoutRepo,
		auditRepo:   auditRepo,
		userID:      primitive.NewObjectID(),
	}
}

func (fx *generationFixture) storeProfile(t *testing.T, profile domain.Profile) {
	t.Helper()
	profile.UserID = fx.userID
	_, err := fx.profileRepo.Upsert(context.Background(), &profile)
	require.NoError(t, err)
}

func TestGenerationServiceGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("generates and persists workout plus audit trail", func(t *testing.T) {
		fx := newGenerationFixture(t)
		fx.storeProfile(t, domain.Profile{
			PrimaryGoal:      domain.GoalFeminization,
			Experience:       domain.ExperienceBeginner,
			WorkoutFrequency: 3,
			Equipment:        []string{"bodyweight"},
			Binding:          domain.ChestBinding{BindsChest: true, Frequency: domain.BindingDaily},
		})

		workout, err := fx.svc.Generate(ctx, fx.userID, 0)
		require.NoError(t, err)

		assert.Equal(t, fx.userID, workout.UserID)
		assert.NotEmpty(t, workout.WorkoutID)
		assert.NotEmpty(t, workout.Main)

		require.Len(t, fx.workoutRepo.workouts, 1)
		assert.Equal(t, workout.WorkoutID, fx.workoutRepo.workouts[0].WorkoutID)

		records, err := fx.auditRepo.GetByRunID(ctx, workout.WorkoutID)
		require.NoError(t, err)
		require.NotEmpty(t, records, "one audit record per fired rule, grouped by run")
		ruleIDs := make([]string, 0, len(records))
		for _, r := range records {
			assert.Equal(t, fx.userID, r.UserID)
			assert.Equal(t, workout.WorkoutID, r.RunID)
			ruleIDs = append(ruleIDs, r.RuleID)
		}
		assert.Contains(t, ruleIDs, "BS-01")
	})

	t.Run("missing profile maps to ErrProfileNotFound", func(t *testing.T) {
		fx := newGenerationFixture(t)
		_, err := fx.svc.Generate(ctx, fx.userID, 0)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("requires a user id", func(t *testing.T) {
		fx := newGenerationFixture(t)
		_, err := fx.svc.Generate(ctx, primitive.NilObjectID, 0)
		assert.Error(t, err)
	})

	t.Run("workout persistence failure still returns the result", func(t *testing.T) {
		fx := newGenerationFixture(t)
		fx.storeProfile(t, domain.Profile{
			PrimaryGoal:      domain.GoalGeneralFitness,
			Experience:       domain.ExperienceBeginner,
			WorkoutFrequency: 3,
			Equipment:        []string{"bodyweight"},
		})
		fx.workoutRepo.createErr = errors.New("write concern timeout")

		workout, err := fx.svc.Generate(ctx, fx.userID, 0)
		require.NoError(t, err, "persistence is best-effort")
		assert.NotEmpty(t, workout.WorkoutID, "unsaved results still get an identifier")
		assert.Empty(t, fx.workoutRepo.workouts)
	})

	t.Run("audit persistence failure does not fail the request", func(t *testing.T) {
		fx := newGenerationFixture(t)
		fx.storeProfile(t, domain.Profile{
			PrimaryGoal:      domain.GoalGeneralFitness,
			Experience:       domain.ExperienceBeginner,
			WorkoutFrequency: 3,
			Equipment:        []string{"bodyweight"},
			Binding:          domain.ChestBinding{BindsChest: true},
		})
		fx.auditRepo.createErr = errors.New("collection unavailable")

		workout, err := fx.svc.Generate(ctx, fx.userID, 0)
		require.NoError(t, err)
		assert.NotEmpty(t, workout.Main)
	})

	t.Run("profile without fired rules writes no audit records", func(t *testing.T) {
		fx := newGenerationFixture(t)
		fx.storeProfile(t, domain.Profile{
			PrimaryGoal:      domain.GoalGeneralFitness,
			Experience:       domain.ExperienceBeginner,
			WorkoutFrequency: 3,
			Equipment:        []string{"bodyweight"},
		})

		_, err := fx.svc.Generate(ctx, fx.userID, 0)
		require.NoError(t, err)
		assert.Empty(t, fx.auditRepo.records)
	})
}

func TestGenerationServiceQuickAndHistory(t *testing.T) {
	ctx := context.Background()
	fx := newGenerationFixture(t)
	fx.storeProfile(t, domain.Profile{
		PrimaryGoal:      domain.GoalGeneralFitness,
		Experience:       domain.ExperienceIntermediate,
		WorkoutFrequency: 4,
		Equipment:        []string{"bodyweight"},
	})

	quick, err := fx.svc.GenerateQuick(ctx, fx.userID, 4)
	require.NoError(t, err)
	assert.Len(t, quick.Main, 4)

	_, err = fx.svc.Generate(ctx, fx.userID, 0)
	require.NoError(t, err)

	history, err := fx.svc.GetHistory(ctx, fx.userID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	limited, err := fx.svc.GetHistory(ctx, fx.userID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, history[0].WorkoutID, limited[0].WorkoutID, "newest first")
}
