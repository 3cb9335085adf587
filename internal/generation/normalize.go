package generation

import (
	"log/slog"
	"strings"

	"transfit/workout-app/internal/domain"
)

// Defaults applied during profile normalization.
const (
	defaultWorkoutFrequency = 3
	defaultEquipmentToken   = "bodyweight"
)

// normalizedProfile is the fully-defaulted internal view of a profile. It is
// produced once at the pipeline boundary; downstream stages never re-check
// optionality or sanitize fields.
type normalizedProfile struct {
	UserID         string
	GenderIdentity string
	PrimaryGoal    domain.Goal
	HRT            domain.HormoneTherapy
	Binding        domain.ChestBinding
	Surgeries      []domain.Surgery

	Experience       domain.Experience
	WorkoutFrequency int
	Equipment        map[string]bool

	BodyFocusPrefer   []string
	BodyFocusAvoid    []string
	DysphoriaTriggers []string
	Constraints       []string

	RecoveryPhase     domain.RecoveryPhase
	HasSurgeryHistory bool
}

// normalizeProfile sanitizes a raw profile snapshot into the internal
// representation. Malformed fields are coerced to safe defaults with a
// logged warning, never surfaced as errors.
func normalizeProfile(p domain.Profile, logger *slog.Logger) normalizedProfile {
	np := normalizedProfile{
		UserID:         p.UserID.Hex(),
		GenderIdentity: strings.ToLower(strings.TrimSpace(p.GenderIdentity)),
		PrimaryGoal:    p.PrimaryGoal,
		HRT:            p.HRT,
		Binding:        p.Binding,
		Experience:     p.Experience,
		Equipment:      make(map[string]bool),
	}

	switch p.PrimaryGoal {
	case domain.GoalFeminization, domain.GoalMasculinization, domain.GoalStrength,
		domain.GoalEndurance, domain.GoalGeneralFitness:
	default:
		logger.Warn("unknown primary goal, defaulting", "goal", string(p.PrimaryGoal))
		np.PrimaryGoal = domain.GoalGeneralFitness
	}

	switch p.Experience {
	case domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced:
	default:
		np.Experience = domain.ExperienceBeginner
	}

	np.WorkoutFrequency = p.WorkoutFrequency
	if np.WorkoutFrequency < 1 || np.WorkoutFrequency > 7 {
		logger.Warn("workout frequency out of range, defaulting",
			"frequency", p.WorkoutFrequency, "default", defaultWorkoutFrequency)
		np.WorkoutFrequency = defaultWorkoutFrequency
	}

	for _, eq := range p.Equipment {
		np.Equipment[domain.NormalizeEquipment(eq)] = true
	}
	if len(np.Equipment) == 0 {
		np.Equipment[defaultEquipmentToken] = true
	}

	if np.HRT.MonthsOnHRT < 0 {
		logger.Warn("negative months on therapy, treating as zero", "months", np.HRT.MonthsOnHRT)
		np.HRT.MonthsOnHRT = 0
	}
	if np.Binding.DailyHours < 0 {
		np.Binding.DailyHours = 0
	}

	np.Surgeries = make([]domain.Surgery, 0, len(p.Surgeries))
	for _, s := range p.Surgeries {
		if s.WeeksPostOp < 0 {
			logger.Warn("negative weeks post-op, treating surgery as healed",
				"surgery", string(s.Type), "weeks", s.WeeksPostOp)
			s.WeeksPostOp = 0
			s.FullyHealed = true
		}
		np.Surgeries = append(np.Surgeries, s)
	}
	np.HasSurgeryHistory = len(np.Surgeries) > 0
	np.RecoveryPhase = ResolveRecoveryPhase(np.Surgeries)

	np.BodyFocusPrefer = lowerAll(p.BodyFocusPrefer)
	np.BodyFocusAvoid = lowerAll(p.BodyFocusAvoid)
	np.DysphoriaTriggers = lowerAll(p.DysphoriaTriggers)
	np.Constraints = append([]string(nil), p.Constraints...)

	return np
}

// hasEquipment reports whether the user owns any of the exercise's equipment.
func (np *normalizedProfile) hasEquipment(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, eq := range required {
		if np.Equipment[domain.NormalizeEquipment(eq)] {
			return true
		}
	}
	return false
}

// hasTrigger reports whether the profile lists the given dysphoria trigger.
func (np *normalizedProfile) hasTrigger(trigger string) bool {
	for _, t := range np.DysphoriaTriggers {
		if t == trigger {
			return true
		}
	}
	return false
}

// heavyBinder reports daily or long-duration binding, which tightens the
// binder safety rules.
func (np *normalizedProfile) heavyBinder() bool {
	if !np.Binding.BindsChest {
		return false
	}
	return np.Binding.Frequency == domain.BindingDaily || np.Binding.DailyHours >= 8
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
