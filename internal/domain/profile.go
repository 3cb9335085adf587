package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is the primary training goal driving template selection and scoring.
type Goal string

const (
	GoalFeminization    Goal = "feminization"
	GoalMasculinization Goal = "masculinization"
	GoalStrength        Goal = "strength"
	GoalEndurance       Goal = "endurance"
	GoalGeneralFitness  Goal = "general_fitness"
)

// Experience is the user's training experience tier.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// HormoneType identifies the hormone therapy a user is on.
type HormoneType string

const (
	HormoneEstrogen     HormoneType = "estrogen"
	HormoneTestosterone HormoneType = "testosterone"
)

// SurgeryType identifies a gender-affirming surgery category.
type SurgeryType string

const (
	SurgeryTop    SurgeryType = "top_surgery"
	SurgeryBottom SurgeryType = "bottom_surgery"
	SurgeryFFS    SurgeryType = "facial_surgery"
	SurgeryOther  SurgeryType = "other"
)

// BindingFrequency describes how often a user binds their chest.
type BindingFrequency string

const (
	BindingDaily        BindingFrequency = "daily"
	BindingMostDays     BindingFrequency = "most_days"
	BindingOccasionally BindingFrequency = "occasionally"
)

// HormoneTherapy captures the user's HRT status.
type HormoneTherapy struct {
	OnHRT       bool        `bson:"onHrt" json:"onHrt"`
	Type        HormoneType `bson:"type,omitempty" json:"type,omitempty"`
	MonthsOnHRT int         `bson:"monthsOnHrt,omitempty" json:"monthsOnHrt,omitempty"`
}

// ChestBinding captures the user's binding habits. Zero value means no binding.
type ChestBinding struct {
	BindsChest bool             `bson:"bindsChest" json:"bindsChest"`
	Frequency  BindingFrequency `bson:"frequency,omitempty" json:"frequency,omitempty"`
	DailyHours float64          `bson:"dailyHours,omitempty" json:"dailyHours,omitempty"`
}

// Surgery records one surgical event relevant to training restrictions.
type Surgery struct {
	Type           SurgeryType `bson:"type" json:"type"`
	Date           *time.Time  `bson:"date,omitempty" json:"date,omitempty"`
	WeeksPostOp    int         `bson:"weeksPostOp" json:"weeksPostOp"`
	FullyHealed    bool        `bson:"fullyHealed" json:"fullyHealed"`
	SurgeonCleared bool        `bson:"surgeonCleared" json:"surgeonCleared"`
}

// Profile is the user's health and fitness profile. It is owned by the
// onboarding/profile editor; the generation pipeline treats it as an
// immutable snapshot for the duration of a run.
type Profile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`

	GenderIdentity string         `bson:"genderIdentity,omitempty" json:"genderIdentity,omitempty"`
	PrimaryGoal    Goal           `bson:"primaryGoal" json:"primaryGoal"`
	HRT            HormoneTherapy `bson:"hrt" json:"hrt"`
	Binding        ChestBinding   `bson:"binding" json:"binding"`
	Surgeries      []Surgery      `bson:"surgeries,omitempty" json:"surgeries,omitempty"`

	Experience       Experience `bson:"experience" json:"experience"`
	WorkoutFrequency int        `bson:"workoutFrequency" json:"workoutFrequency"` // sessions per week
	Equipment        []string   `bson:"equipment,omitempty" json:"equipment,omitempty"`

	BodyFocusPrefer   []string `bson:"bodyFocusPrefer,omitempty" json:"bodyFocusPrefer,omitempty"`
	BodyFocusAvoid    []string `bson:"bodyFocusAvoid,omitempty" json:"bodyFocusAvoid,omitempty"`
	DysphoriaTriggers []string `bson:"dysphoriaTriggers,omitempty" json:"dysphoriaTriggers,omitempty"`
	Constraints       []string `bson:"constraints,omitempty" json:"constraints,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasUnhealedSurgery reports whether any surgery is still in recovery.
func (p *Profile) HasUnhealedSurgery() bool {
	for _, s := range p.Surgeries {
		if !s.FullyHealed {
			return true
		}
	}
	return false
}
