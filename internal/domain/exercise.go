package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pattern is a movement category used to structure day templates.
type Pattern string

const (
	PatternSquat     Pattern = "squat"
	PatternHinge     Pattern = "hinge"
	PatternPush      Pattern = "push"
	PatternPull      Pattern = "pull"
	PatternLunge     Pattern = "lunge"
	PatternCore      Pattern = "core"
	PatternCardio    Pattern = "cardio"
	PatternIsolation Pattern = "isolation"
)

// GenderEmphasis is the ordinal gender-goal emphasis of an exercise or a
// pattern requirement. The scale runs masc_very_high … neutral … fem_very_high.
type GenderEmphasis string

const (
	EmphasisMascVeryHigh GenderEmphasis = "masc_very_high"
	EmphasisMascHigh     GenderEmphasis = "masc_high"
	EmphasisMascModerate GenderEmphasis = "masc_moderate"
	EmphasisMascLow      GenderEmphasis = "masc_low"
	EmphasisNeutral      GenderEmphasis = "neutral"
	EmphasisFemLow       GenderEmphasis = "fem_low"
	EmphasisFemModerate  GenderEmphasis = "fem_moderate"
	EmphasisFemHigh      GenderEmphasis = "fem_high"
	EmphasisFemVeryHigh  GenderEmphasis = "fem_very_high"
)

// emphasisOrdinals maps the emphasis scale onto signed integers, negative for
// masculinizing, positive for feminizing. Unknown values map to 0 (neutral).
var emphasisOrdinals = map[GenderEmphasis]int{
	EmphasisMascVeryHigh: -4,
	EmphasisMascHigh:     -3,
	EmphasisMascModerate: -2,
	EmphasisMascLow:      -1,
	EmphasisNeutral:      0,
	EmphasisFemLow:       1,
	EmphasisFemModerate:  2,
	EmphasisFemHigh:      3,
	EmphasisFemVeryHigh:  4,
}

// Ordinal returns the signed position of the emphasis on the scoring scale.
func (e GenderEmphasis) Ordinal() int {
	return emphasisOrdinals[e]
}

// RecoveryPhase is a post-operative restrictiveness phase derived from weeks
// since surgery. Ordering runs immediate < early < mid < late < maintenance,
// earliest being the most restrictive.
type RecoveryPhase string

const (
	PhaseImmediate   RecoveryPhase = "immediate"
	PhaseEarly       RecoveryPhase = "early"
	PhaseMid         RecoveryPhase = "mid"
	PhaseLate        RecoveryPhase = "late"
	PhaseMaintenance RecoveryPhase = "maintenance"
)

var phaseRank = map[RecoveryPhase]int{
	PhaseImmediate:   0,
	PhaseEarly:       1,
	PhaseMid:         2,
	PhaseLate:        3,
	PhaseMaintenance: 4,
}

// MoreRestrictiveThan reports whether p is earlier in the phase ordering than other.
func (p RecoveryPhase) MoreRestrictiveThan(other RecoveryPhase) bool {
	return phaseRank[p] < phaseRank[other]
}

// ImpactLevel describes the mechanical impact of an exercise.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "low"
	ImpactModerate ImpactLevel = "moderate"
	ImpactHigh     ImpactLevel = "high"
)

// PressureLevel describes intra-abdominal/chest pressure demands.
type PressureLevel string

const (
	PressureLow      PressureLevel = "low"
	PressureModerate PressureLevel = "moderate"
	PressureHigh     PressureLevel = "high"
)

// Exercise is one catalog entry. Catalog records are static reference data,
// loaded as an immutable snapshot at pipeline start.
type Exercise struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug string             `bson:"slug" json:"slug"`
	Name string             `bson:"name" json:"name"`

	Pattern    Pattern    `bson:"pattern" json:"pattern"`
	Equipment  []string   `bson:"equipment" json:"equipment"`
	Difficulty Experience `bson:"difficulty" json:"difficulty"`
	Tags       []string   `bson:"tags,omitempty" json:"tags,omitempty"`

	BinderAware       bool          `bson:"binderAware" json:"binderAware"`
	HeavyBindingSafe  bool          `bson:"heavyBindingSafe" json:"heavyBindingSafe"`
	PelvicFloorSafe   bool          `bson:"pelvicFloorSafe" json:"pelvicFloorSafe"`
	Contraindications []string      `bson:"contraindications,omitempty" json:"contraindications,omitempty"`
	PressureLevel     PressureLevel `bson:"pressureLevel,omitempty" json:"pressureLevel,omitempty"`

	TargetMuscles    string `bson:"targetMuscles,omitempty" json:"targetMuscles,omitempty"`
	SecondaryMuscles string `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`

	GenderEmphasis GenderEmphasis `bson:"genderEmphasis,omitempty" json:"genderEmphasis,omitempty"`
	DysphoriaTags  []string       `bson:"dysphoriaTags,omitempty" json:"dysphoriaTags,omitempty"`

	EarliestSafePhase RecoveryPhase   `bson:"earliestSafePhase,omitempty" json:"earliestSafePhase,omitempty"`
	RecoveryPhases    []RecoveryPhase `bson:"recoveryPhases,omitempty" json:"recoveryPhases,omitempty"`
	ImpactLevel       ImpactLevel     `bson:"impactLevel,omitempty" json:"impactLevel,omitempty"`

	// EffectivenessRating is a 0–10 curation score; 0 means unrated.
	EffectivenessRating float64 `bson:"effectivenessRating,omitempty" json:"effectivenessRating,omitempty"`

	MediaKey string `bson:"mediaKey,omitempty" json:"mediaKey,omitempty"` // object key for the demo video

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AllowedInPhase reports whether the exercise may be prescribed during the
// given recovery phase. Exercises without recovery metadata are only admitted
// at maintenance.
func (e *Exercise) AllowedInPhase(phase RecoveryPhase) bool {
	if len(e.RecoveryPhases) == 0 {
		return phase == PhaseMaintenance
	}
	for _, p := range e.RecoveryPhases {
		if p == phase {
			return true
		}
	}
	return false
}

// TargetsMuscle reports whether the target-muscle string mentions the given
// muscle group, case-insensitively.
func (e *Exercise) TargetsMuscle(muscle string) bool {
	if muscle == "" || e.TargetMuscles == "" {
		return false
	}
	return strings.Contains(strings.ToLower(e.TargetMuscles), strings.ToLower(muscle))
}

// HasDysphoriaTag reports whether the exercise carries the given dysphoria tag.
func (e *Exercise) HasDysphoriaTag(tag string) bool {
	for _, t := range e.DysphoriaTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// NormalizeEquipment maps a free-form equipment name onto the catalog's fixed
// equipment tokens. Unknown accessory equipment is treated as bodyweight.
func NormalizeEquipment(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case n == "" || n == "none" || n == "body weight" || n == "bodyweight" || n == "no equipment":
		return "bodyweight"
	case strings.Contains(n, "dumbbell") || n == "db":
		return "db"
	case strings.Contains(n, "kettlebell") || n == "kb":
		return "kb"
	case strings.Contains(n, "barbell") || strings.Contains(n, "smith") || strings.Contains(n, "trap bar") || strings.Contains(n, "ez bar"):
		return "barbell"
	case strings.Contains(n, "band"):
		return "band"
	case strings.Contains(n, "bench"):
		return "bench"
	case strings.Contains(n, "step") || strings.Contains(n, "box"):
		return "step"
	case strings.Contains(n, "cable"):
		return "cable"
	case strings.Contains(n, "machine") || strings.Contains(n, "leverage"):
		return "machine"
	case strings.Contains(n, "bike") || strings.Contains(n, "cycle") || strings.Contains(n, "erg"):
		return "bike"
	case strings.Contains(n, "tread"):
		return "treadmill"
	case strings.Contains(n, "sled"):
		return "sled"
	default:
		return "bodyweight"
	}
}
