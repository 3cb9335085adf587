package generation

import "transfit/workout-app/internal/domain"

// Fixed body-region vocabulary. Regions appear in profile body-focus
// preference/avoid lists and in hybrid blending.

// upperBodyAreas are the regions counter to a feminization goal.
var upperBodyAreas = map[string]bool{
	"upper_body": true,
	"chest":      true,
	"shoulders":  true,
	"back":       true,
	"arms":       true,
}

// lowerBodyAreas are the regions counter to a masculinization goal.
var lowerBodyAreas = map[string]bool{
	"lower_body": true,
	"glutes":     true,
	"legs":       true,
	"hips":       true,
	"thighs":     true,
}

// areaPatterns maps a body region to the movement pattern that trains it,
// used when hybrid blending injects extra requirements.
var areaPatterns = map[string]domain.Pattern{
	"upper_body": domain.PatternPush,
	"chest":      domain.PatternPush,
	"shoulders":  domain.PatternPush,
	"back":       domain.PatternPull,
	"arms":       domain.PatternIsolation,
	"lower_body": domain.PatternSquat,
	"legs":       domain.PatternSquat,
	"glutes":     domain.PatternHinge,
	"hips":       domain.PatternLunge,
	"thighs":     domain.PatternSquat,
	"core":       domain.PatternCore,
}

// areaMuscles maps a body region to the muscle groups it names, used both by
// hybrid requirement injection and by body-focus preference scoring.
var areaMuscles = map[string][]string{
	"upper_body": {"chest", "shoulders", "lats"},
	"chest":      {"chest", "pectorals"},
	"shoulders":  {"shoulders", "delts"},
	"back":       {"lats", "upper back", "traps"},
	"arms":       {"biceps", "triceps", "forearms"},
	"lower_body": {"quads", "hamstrings", "glutes", "calves"},
	"legs":       {"quads", "hamstrings", "calves"},
	"glutes":     {"glutes"},
	"hips":       {"glutes", "hip flexors"},
	"thighs":     {"quads", "hamstrings"},
	"core":       {"abs", "obliques", "lower back"},
}

// matchesRegion reports whether the exercise targets any muscle of the region.
func matchesRegion(ex *domain.Exercise, region string) bool {
	for _, muscle := range areaMuscles[region] {
		if ex.TargetsMuscle(muscle) {
			return true
		}
	}
	return false
}

// focusMuscles maps a day focus onto the regions it spans, for the
// general-pool backfill's day-focus bonus.
func focusMuscles(focus domain.Focus) []string {
	switch focus {
	case domain.FocusLowerBody:
		return areaMuscles["lower_body"]
	case domain.FocusUpperBody:
		return areaMuscles["upper_body"]
	default:
		return append(append([]string(nil), areaMuscles["lower_body"]...), areaMuscles["upper_body"]...)
	}
}
