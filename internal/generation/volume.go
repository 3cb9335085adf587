package generation

import "transfit/workout-app/internal/domain"

// Experience-tier volume factors.
const (
	beginnerSetsFactor = 0.85
	beginnerRestFactor = 1.2
	advancedSetsFactor = 1.15
	advancedRestFactor = 0.9
	advancedRepsBonus  = 2
)

// volumeAdjustments is the per-run multiplier bundle handed to the
// prescriber. All factors compose multiplicatively except RepsAdjustment,
// which is additive and applied downstream.
type volumeAdjustments struct {
	SetsMultiplier            float64
	RestMultiplier            float64
	RestSecondsIncrease       int
	RepsAdjustment            int
	SessionDurationMultiplier float64
}

// computeVolume derives the adjustment bundle from safety parameters,
// experience tier, and the template's hormone-therapy multiplier.
//
// The safety engine expresses extra rest in seconds, not as a ratio, so it
// stays a separate additive term rather than being folded into the unitless
// rest multiplier.
func computeVolume(p *normalizedProfile, tmpl domain.SelectedTemplate, ctx *domain.SafetyContext) volumeAdjustments {
	adj := volumeAdjustments{
		SetsMultiplier: 1.0,
		RestMultiplier: 1.0,
	}

	adj.SetsMultiplier *= 1 - ctx.Params.VolumeReductionPercent/100
	if adj.SetsMultiplier < 0 {
		adj.SetsMultiplier = 0
	}
	adj.RestSecondsIncrease = ctx.Params.RestSecondsIncrease

	switch p.Experience {
	case domain.ExperienceBeginner:
		adj.SetsMultiplier *= beginnerSetsFactor
		adj.RestMultiplier *= beginnerRestFactor
	case domain.ExperienceAdvanced:
		adj.SetsMultiplier *= advancedSetsFactor
		adj.RestMultiplier *= advancedRestFactor
		adj.RepsAdjustment += advancedRepsBonus
	}

	adj.SetsMultiplier *= tmpl.VolumeMultiplier
	adj.SessionDurationMultiplier = adj.SetsMultiplier
	return adj
}
