package generation

import (
	"testing"

	"transfit/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	return NewPipeline(loadRegistry(t), testLogger())
}

func TestGenerateRejectsEmptyCatalog(t *testing.T) {
	pl := newTestPipeline(t)

	_, _, err := pl.Generate(baseProfile(), nil, 0)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, _, err = pl.GenerateQuick(baseProfile(), nil, 5)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestGenerateFeminizationWithBindingAndHRT(t *testing.T) {
	pl := newTestPipeline(t)
	catalog := append(testCatalog(),
		buildExercise(exerciseSpec{slug: "chest-fly-machine", pattern: domain.PatternIsolation, equipment: []string{"cable machine"}, target: "chest", binderAware: false, heavySafe: false, pelvicSafe: true, impact: domain.ImpactLow}),
	)

	profile := baseProfile()
	profile.PrimaryGoal = domain.GoalFeminization
	profile.HRT = domain.HormoneTherapy{OnHRT: true, Type: domain.HormoneEstrogen, MonthsOnHRT: 2}
	profile.Binding = domain.ChestBinding{BindsChest: true, Frequency: domain.BindingMostDays, DailyHours: 4}

	workout, ctx, err := pl.Generate(profile, catalog, 0)
	require.NoError(t, err)
	require.NotNil(t, ctx)

	assert.Equal(t, "Lower Body Sculpt", workout.Name)
	assert.Equal(t, domain.FocusLowerBody, workout.Metadata.Focus)
	assert.Equal(t, "Feminine Curves Foundation", workout.Metadata.TemplateName)
	assert.True(t, workout.Metadata.HRTAdjusted)
	assert.NotEmpty(t, workout.Main)
	assert.NotEmpty(t, workout.Warmup)
	assert.NotEmpty(t, workout.Cooldown)
	assert.NotEmpty(t, workout.UserMessages)
	assert.Greater(t, workout.EstimatedMinutes, 0)

	assert.Contains(t, workout.Metadata.AppliedRuleIDs, "BS-01")
	assert.Contains(t, workout.Metadata.AppliedRuleIDs, "HRT-E-01")
	assert.Equal(t, 1, workout.Metadata.ExclusionCount, "the non binder-aware machine fly is removed")

	for _, in := range workout.Main {
		assert.NotEqual(t, "chest-fly-machine", in.Slug)
	}

	var triggers []domain.CheckpointTrigger
	for _, cp := range workout.Checkpoints {
		triggers = append(triggers, cp.Trigger)
	}
	assert.Contains(t, triggers, domain.TriggerEvery90Minutes)
	assert.Contains(t, triggers, domain.TriggerBeforeCardio)
}

func TestGenerateEarlyTopSurgeryRecovery(t *testing.T) {
	pl := newTestPipeline(t)
	catalog := testCatalog()

	profile := baseProfile()
	profile.PrimaryGoal = domain.GoalMasculinization
	profile.Surgeries = []domain.Surgery{{Type: domain.SurgeryTop, WeeksPostOp: 3}}

	workout, ctx, err := pl.Generate(profile, catalog, 0)
	require.NoError(t, err)

	assert.Contains(t, ctx.RuleIDs(), "PO-02")
	for _, in := range workout.Main {
		assert.NotEqual(t, domain.PatternPush, in.Pattern, "pressing stays out during early top surgery recovery")
		ex := findBySlug(t, catalog, in.Slug)
		assert.False(t, ex.TargetsMuscle("chest"), "%s targets the healing chest", in.Slug)
		assert.False(t, ex.TargetsMuscle("shoulders"), "%s targets the healing shoulders", in.Slug)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	pl := newTestPipeline(t)
	catalog := testCatalog()

	profile := baseProfile()
	profile.PrimaryGoal = domain.GoalFeminization
	profile.HRT = domain.HormoneTherapy{OnHRT: true, Type: domain.HormoneEstrogen, MonthsOnHRT: 8}

	first, _, err := pl.Generate(profile, catalog, 1)
	require.NoError(t, err)
	second, _, err := pl.Generate(profile, catalog, 1)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	require.Equal(t, len(first.Main), len(second.Main))
	for i := range first.Main {
		assert.Equal(t, first.Main[i], second.Main[i])
	}
	assert.Equal(t, first.Checkpoints, second.Checkpoints)
}

func TestGenerateDayIndexWraps(t *testing.T) {
	pl := newTestPipeline(t)
	catalog := testCatalog()
	profile := baseProfile()
	profile.PrimaryGoal = domain.GoalFeminization

	day0, _, err := pl.Generate(profile, catalog, 0)
	require.NoError(t, err)
	day3, _, err := pl.Generate(profile, catalog, 3)
	require.NoError(t, err)

	assert.Equal(t, day0.Name, day3.Name)
}

func TestGenerateShortfallSurfacesInMetadata(t *testing.T) {
	pl := newTestPipeline(t)
	// A two-exercise catalog cannot fill any template day.
	catalog := []domain.Exercise{
		findBySlug(t, testCatalog(), "air-squat"),
		findBySlug(t, testCatalog(), "plank"),
	}

	workout, _, err := pl.Generate(baseProfile(), catalog, 0)
	require.NoError(t, err, "a thin catalog degrades, it does not fail")
	assert.Greater(t, workout.Metadata.ExerciseShortfall, 0)
	assert.NotEmpty(t, workout.Main)
}

func TestGenerateQuick(t *testing.T) {
	pl := newTestPipeline(t)
	catalog := testCatalog()

	t.Run("balanced selection with synthetic day", func(t *testing.T) {
		workout, ctx, err := pl.GenerateQuick(baseProfile(), catalog, 6)
		require.NoError(t, err)
		require.NotNil(t, ctx)

		assert.Equal(t, "Quick full body", workout.Name)
		assert.Equal(t, "quick", workout.Metadata.TemplateName)
		assert.Len(t, workout.Main, 6)
		assert.False(t, workout.Metadata.HRTAdjusted)
	})

	t.Run("defaults the count", func(t *testing.T) {
		workout, _, err := pl.GenerateQuick(baseProfile(), catalog, 0)
		require.NoError(t, err)
		assert.Len(t, workout.Main, 5)
	})

	t.Run("safety rules still apply", func(t *testing.T) {
		cat := append(testCatalog(),
			buildExercise(exerciseSpec{slug: "burpee", pattern: domain.PatternCardio, binderAware: false, pelvicSafe: true, impact: domain.ImpactHigh}),
		)
		profile := baseProfile()
		profile.Binding = domain.ChestBinding{BindsChest: true, Frequency: domain.BindingOccasionally}

		workout, ctx, err := pl.GenerateQuick(profile, cat, 8)
		require.NoError(t, err)

		assert.Contains(t, ctx.RuleIDs(), "BS-01")
		for _, in := range workout.Main {
			assert.NotEqual(t, "burpee", in.Slug)
		}
	})
}
