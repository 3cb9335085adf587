package generation

import (
	"io"
	"log/slog"

	"transfit/workout-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// exerciseSpec is a compact builder input for catalog fixtures.
type exerciseSpec struct {
	slug        string
	pattern     domain.Pattern
	equipment   []string
	difficulty  domain.Experience
	emphasis    domain.GenderEmphasis
	target      string
	secondary   string
	binderAware bool
	heavySafe   bool
	pelvicSafe  bool
	pressure    domain.PressureLevel
	impact      domain.ImpactLevel
	rating      float64
	tags        []string
	phases      []domain.RecoveryPhase
}

func buildExercise(s exerciseSpec) domain.Exercise {
	eq := s.equipment
	if eq == nil {
		eq = []string{"bodyweight"}
	}
	diff := s.difficulty
	if diff == "" {
		diff = domain.ExperienceBeginner
	}
	phases := s.phases
	if phases == nil {
		phases = []domain.RecoveryPhase{
			domain.PhaseImmediate, domain.PhaseEarly, domain.PhaseMid,
			domain.PhaseLate, domain.PhaseMaintenance,
		}
	}
	return domain.Exercise{
		ID:                  primitive.NewObjectID(),
		Slug:                s.slug,
		Name:                s.slug,
		Pattern:             s.pattern,
		Equipment:           eq,
		Difficulty:          diff,
		BinderAware:         s.binderAware,
		HeavyBindingSafe:    s.heavySafe,
		PelvicFloorSafe:     s.pelvicSafe,
		PressureLevel:       s.pressure,
		TargetMuscles:       s.target,
		SecondaryMuscles:    s.secondary,
		GenderEmphasis:      s.emphasis,
		DysphoriaTags:       s.tags,
		RecoveryPhases:      phases,
		ImpactLevel:         s.impact,
		EffectivenessRating: s.rating,
	}
}

// testCatalog builds a broad catalog covering every movement pattern with
// safe defaults: binder aware, heavy-binding safe, pelvic floor safe, low
// impact, bodyweight.
func testCatalog() []domain.Exercise {
	specs := []exerciseSpec{
		{slug: "goblet-squat", pattern: domain.PatternSquat, equipment: []string{"dumbbells"}, emphasis: domain.EmphasisFemHigh, target: "quads, glutes", rating: 8},
		{slug: "air-squat", pattern: domain.PatternSquat, emphasis: domain.EmphasisNeutral, target: "quads", rating: 6},
		{slug: "glute-bridge", pattern: domain.PatternHinge, emphasis: domain.EmphasisFemVeryHigh, target: "glutes, hamstrings", rating: 9, tags: []string{"home_friendly"}},
		{slug: "romanian-deadlift", pattern: domain.PatternHinge, equipment: []string{"barbell"}, emphasis: domain.EmphasisFemHigh, target: "hamstrings, glutes", rating: 8},
		{slug: "push-up", pattern: domain.PatternPush, emphasis: domain.EmphasisMascHigh, target: "chest, shoulders", rating: 7},
		{slug: "overhead-press", pattern: domain.PatternPush, equipment: []string{"dumbbells"}, emphasis: domain.EmphasisMascVeryHigh, target: "shoulders", rating: 8},
		{slug: "bent-over-row", pattern: domain.PatternPull, equipment: []string{"dumbbells"}, emphasis: domain.EmphasisMascHigh, target: "lats, upper back", rating: 8},
		{slug: "band-pull-apart", pattern: domain.PatternPull, equipment: []string{"resistance bands"}, emphasis: domain.EmphasisNeutral, target: "upper back", rating: 5, tags: []string{"home_friendly"}},
		{slug: "walking-lunge", pattern: domain.PatternLunge, emphasis: domain.EmphasisFemHigh, target: "glutes, quads", rating: 7},
		{slug: "dead-bug", pattern: domain.PatternCore, emphasis: domain.EmphasisNeutral, target: "abs", rating: 6, tags: []string{"home_friendly"}},
		{slug: "plank", pattern: domain.PatternCore, emphasis: domain.EmphasisNeutral, target: "abs, obliques", rating: 7},
		{slug: "brisk-walk", pattern: domain.PatternCardio, emphasis: domain.EmphasisNeutral, target: "legs", rating: 5, tags: []string{"home_friendly"}},
		{slug: "rowing-machine", pattern: domain.PatternCardio, equipment: []string{"cable machine"}, emphasis: domain.EmphasisNeutral, target: "lats, legs", rating: 7},
		{slug: "lateral-raise", pattern: domain.PatternIsolation, equipment: []string{"dumbbells"}, emphasis: domain.EmphasisMascModerate, target: "shoulders", rating: 6},
		{slug: "leg-curl", pattern: domain.PatternIsolation, equipment: []string{"leg machine"}, emphasis: domain.EmphasisFemModerate, target: "hamstrings", rating: 6},
	}
	out := make([]domain.Exercise, 0, len(specs))
	for _, s := range specs {
		s.binderAware = true
		s.heavySafe = true
		s.pelvicSafe = true
		if s.impact == "" {
			s.impact = domain.ImpactLow
		}
		out = append(out, buildExercise(s))
	}
	return out
}

func baseProfile() domain.Profile {
	return domain.Profile{
		UserID:           primitive.NewObjectID(),
		PrimaryGoal:      domain.GoalGeneralFitness,
		Experience:       domain.ExperienceBeginner,
		WorkoutFrequency: 3,
		Equipment:        []string{"dumbbells", "resistance bands", "bodyweight", "barbell", "cable machine", "leg machine"},
	}
}

func normalize(p domain.Profile) normalizedProfile {
	return normalizeProfile(p, testLogger())
}
