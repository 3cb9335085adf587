package generation

import (
	"math"

	"transfit/workout-app/internal/domain"
)

// Canonical session duration tiers in minutes. Sets and rest tables key off
// these four tiers.
const (
	duration30 = 30
	duration45 = 45
	duration60 = 60
	duration90 = 90
)

// Prescription clamps.
const (
	minSets        = 2
	maxSets        = 5
	minReps        = 5
	maxReps        = 20
	minRestSeconds = 30
	maxRestSeconds = 240
)

// secondsPerRep is the pacing estimate used for duration math.
const secondsPerRep = 3

// Rep-range bands by training goal.
var repBands = map[domain.Goal][2]int{
	domain.GoalStrength:  {4, 6},
	domain.GoalEndurance: {15, 20},
}

const (
	hypertrophyMinReps = 8
	hypertrophyMaxReps = 12
)

var weightGuidance = map[domain.Experience]string{
	domain.ExperienceBeginner:     "Start light: pick a weight you could do a few extra reps with, and focus on form.",
	domain.ExperienceIntermediate: "Choose a weight where the last two reps of each set feel challenging but clean.",
	domain.ExperienceAdvanced:     "Work close to failure on final sets while leaving one rep in reserve.",
}

// prescribe turns selected exercises plus volume adjustments into concrete
// set/rep/rest prescriptions, ordered as selected.
func prescribe(exercises []domain.Exercise, day domain.DayTemplate, p *normalizedProfile, adj volumeAdjustments, params domain.ModifiedParameters) []domain.ExerciseInstance {
	duration := sessionDurationTier(day, params.MaxWorkoutMinutes)
	out := make([]domain.ExerciseInstance, 0, len(exercises))
	for i := range exercises {
		ex := &exercises[i]
		sets := baseSets(duration, i, ex.Pattern, p.Experience)
		sets = clampInt(int(math.Round(float64(sets)*adj.SetsMultiplier)), minSets, maxSets)

		reps := baseReps(p.PrimaryGoal, ex.Difficulty) + adj.RepsAdjustment
		reps = clampInt(reps, minReps, maxReps)

		rest := float64(baseRest(duration, ex.Difficulty)) * adj.RestMultiplier
		restSeconds := clampInt(int(math.Round(rest))+adj.RestSecondsIncrease, minRestSeconds, maxRestSeconds)

		out = append(out, domain.ExerciseInstance{
			ExerciseID:     ex.ID.Hex(),
			Slug:           ex.Slug,
			Name:           ex.Name,
			Pattern:        ex.Pattern,
			Sets:           sets,
			Reps:           reps,
			RestSeconds:    restSeconds,
			Format:         formatFor(ex.Pattern),
			WeightGuidance: weightGuidance[p.Experience],
		})
	}
	return out
}

// sessionDurationTier picks the canonical tier from the day's size, capped by
// any safety-imposed session limit.
func sessionDurationTier(day domain.DayTemplate, maxMinutes int) int {
	var tier int
	switch {
	case day.TotalExercises <= 4:
		tier = duration30
	case day.TotalExercises == 5:
		tier = duration45
	case day.TotalExercises == 6:
		tier = duration60
	default:
		tier = duration90
	}
	if maxMinutes > 0 && tier > maxMinutes {
		for _, t := range []int{duration90, duration60, duration45, duration30} {
			if t <= maxMinutes {
				return t
			}
		}
		return duration30
	}
	return tier
}

// baseSets reads the duration/position table: compound patterns early in the
// session earn more sets than later accessory work, beginners one fewer at
// every tier.
func baseSets(duration, position int, pattern domain.Pattern, exp domain.Experience) int {
	early := position < 2
	compound := isCompound(pattern)

	var sets int
	switch duration {
	case duration30:
		sets = 2
		if compound && early {
			sets = 3
		}
	case duration45:
		sets = 2
		if compound || early {
			sets = 3
		}
	case duration60:
		sets = 3
		if compound && early {
			sets = 4
		} else if !compound && !early {
			sets = 2
		}
	default: // duration90
		sets = 3
		if compound {
			sets = 4
		}
	}
	if exp == domain.ExperienceBeginner && sets > minSets {
		sets--
	}
	return sets
}

// baseReps picks a point inside the goal's rep band by exercise difficulty:
// easier movements sit at the high-rep end of the band.
func baseReps(goal domain.Goal, difficulty domain.Experience) int {
	lo, hi := hypertrophyMinReps, hypertrophyMaxReps
	if band, ok := repBands[goal]; ok {
		lo, hi = band[0], band[1]
	}
	switch difficulty {
	case domain.ExperienceBeginner:
		return hi
	case domain.ExperienceAdvanced:
		return lo
	default:
		return (lo + hi) / 2
	}
}

// baseRest reads the duration/difficulty rest table in seconds.
func baseRest(duration int, difficulty domain.Experience) int {
	rest := map[int]map[domain.Experience]int{
		duration30: {domain.ExperienceBeginner: 45, domain.ExperienceIntermediate: 60, domain.ExperienceAdvanced: 75},
		duration45: {domain.ExperienceBeginner: 60, domain.ExperienceIntermediate: 75, domain.ExperienceAdvanced: 90},
		duration60: {domain.ExperienceBeginner: 60, domain.ExperienceIntermediate: 90, domain.ExperienceAdvanced: 120},
		duration90: {domain.ExperienceBeginner: 75, domain.ExperienceIntermediate: 90, domain.ExperienceAdvanced: 150},
	}
	if byDiff, ok := rest[duration]; ok {
		if r, ok := byDiff[difficulty]; ok {
			return r
		}
		return byDiff[domain.ExperienceIntermediate]
	}
	return 60
}

func isCompound(pattern domain.Pattern) bool {
	switch pattern {
	case domain.PatternSquat, domain.PatternHinge, domain.PatternPush, domain.PatternPull, domain.PatternLunge:
		return true
	default:
		return false
	}
}

func formatFor(pattern domain.Pattern) string {
	if pattern == domain.PatternCardio {
		return "timed"
	}
	return "straight_sets"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
