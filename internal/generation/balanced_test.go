package generation

import (
	"testing"

	"transfit/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryEquipment(t *testing.T) {
	profile := baseProfile()
	profile.Equipment = []string{"dumbbells", "bodyweight"}
	p := normalize(profile)

	db := buildExercise(exerciseSpec{slug: "db", equipment: []string{"dumbbells", "bodyweight"}})
	bw := buildExercise(exerciseSpec{slug: "bw"})
	barbellOnly := buildExercise(exerciseSpec{slug: "bb", equipment: []string{"barbell"}})

	assert.Equal(t, "db", primaryEquipment(&db, &p), "loaded implement wins over bodyweight")
	assert.Equal(t, "bodyweight", primaryEquipment(&bw, &p))
	assert.Equal(t, "", primaryEquipment(&barbellOnly, &p), "no owned equipment means no bucket")
}

func TestSelectBalanced(t *testing.T) {
	dumbbell := func(slug string, rating float64) domain.Exercise {
		return buildExercise(exerciseSpec{slug: slug, pattern: domain.PatternIsolation, equipment: []string{"dumbbells"}, rating: rating})
	}
	bodyweight := func(slug string, rating float64) domain.Exercise {
		return buildExercise(exerciseSpec{slug: slug, pattern: domain.PatternCore, rating: rating})
	}

	pool := []domain.Exercise{
		dumbbell("db-1", 9), dumbbell("db-2", 8), dumbbell("db-3", 7), dumbbell("db-4", 6),
		bodyweight("bw-1", 9), bodyweight("bw-2", 8), bodyweight("bw-3", 7), bodyweight("bw-4", 6),
	}

	profile := baseProfile()
	profile.Equipment = []string{"dumbbells", "bodyweight"}
	p := normalize(profile)

	t.Run("even split across equipment buckets", func(t *testing.T) {
		got := selectBalanced(pool, &p, 6)

		require.Len(t, got, 6)
		counts := map[string]int{}
		for _, ex := range got {
			counts[primaryEquipment(&ex, &p)]++
		}
		assert.Equal(t, 3, counts["db"])
		assert.Equal(t, 3, counts["bodyweight"])
	})

	t.Run("remainder goes to preferred buckets first", func(t *testing.T) {
		got := selectBalanced(pool, &p, 5)

		require.Len(t, got, 5)
		counts := map[string]int{}
		for _, ex := range got {
			counts[primaryEquipment(&ex, &p)]++
		}
		// db precedes bodyweight in preference order, so it takes the odd slot.
		assert.Equal(t, 3, counts["db"])
		assert.Equal(t, 2, counts["bodyweight"])
	})

	t.Run("ranks by score inside buckets", func(t *testing.T) {
		got := selectBalanced(pool, &p, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "db-1", got[0].Slug)
		assert.Equal(t, "bw-1", got[1].Slug)
	})

	t.Run("backfills when a bucket runs dry", func(t *testing.T) {
		small := []domain.Exercise{dumbbell("db-only", 9), bodyweight("bw-a", 8), bodyweight("bw-b", 7), bodyweight("bw-c", 6)}
		got := selectBalanced(small, &p, 4)
		assert.Len(t, got, 4)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Nil(t, selectBalanced(pool, &p, 0))
		assert.Nil(t, selectBalanced(nil, &p, 4))
	})

	t.Run("short pool returns what exists", func(t *testing.T) {
		small := []domain.Exercise{dumbbell("db-only", 9)}
		got := selectBalanced(small, &p, 5)
		assert.Len(t, got, 1)
	})
}

func TestGoalServedByPattern(t *testing.T) {
	assert.True(t, goalServedByPattern(domain.GoalFeminization, domain.PatternHinge))
	assert.False(t, goalServedByPattern(domain.GoalFeminization, domain.PatternPush))
	assert.True(t, goalServedByPattern(domain.GoalMasculinization, domain.PatternPull))
	assert.True(t, goalServedByPattern(domain.GoalEndurance, domain.PatternCardio))
	assert.False(t, goalServedByPattern(domain.GoalGeneralFitness, domain.PatternSquat))
}
