package generation

import (
	"fmt"

	"transfit/workout-app/internal/domain"
)

// hrtPhase buckets months-on-therapy into the six-phase hormone model.
func hrtPhase(months int) int {
	switch {
	case months < 3:
		return 1
	case months < 6:
		return 2
	case months < 12:
		return 3
	case months < 24:
		return 4
	case months < 36:
		return 5
	default:
		return 6
	}
}

// hrtPhaseEffect is one phase's parameter merge: percentage reductions add,
// overload rates multiply on top of whatever earlier categories set.
type hrtPhaseEffect struct {
	volumeReductionPct float64
	overloadRate       float64
	restIncreaseSec    int
	message            string
}

// Estrogen therapy phases. Strength and recovery capacity dip through the
// first year and stabilize after; volume tapers follow that curve.
var estrogenPhases = map[int]hrtPhaseEffect{
	1: {volumeReductionPct: 10, overloadRate: 0.90, restIncreaseSec: 15,
		message: "Early estrogen therapy changes how your body recovers, so volume and progression start gently."},
	2: {volumeReductionPct: 15, overloadRate: 0.85, restIncreaseSec: 15,
		message: "Months three to six on estrogen often bring the biggest strength shift; your plan eases volume accordingly."},
	3: {volumeReductionPct: 10, overloadRate: 0.90, restIncreaseSec: 15,
		message: "Your body is still adapting to estrogen; volume stays slightly reduced with extra rest between sets."},
	4: {volumeReductionPct: 5, overloadRate: 0.95,
		message: "Strength levels typically stabilize after a year on estrogen; your plan keeps a small volume buffer."},
	5: {overloadRate: 1.0,
		message: "Your training is tuned for long-term estrogen therapy."},
	6: {overloadRate: 1.0,
		message: "Your training is tuned for long-term estrogen therapy."},
}

// Testosterone therapy phases. Tendons lag behind muscle early on, so
// progression is held back before the strength window opens.
var testosteronePhases = map[int]hrtPhaseEffect{
	1: {overloadRate: 0.90, restIncreaseSec: 15,
		message: "Early testosterone therapy builds muscle faster than tendons adapt, so progression starts conservatively."},
	2: {overloadRate: 0.95,
		message: "Your connective tissue is still catching up to testosterone-driven strength gains; progression stays measured."},
	3: {overloadRate: 1.10,
		message: "Months six to twelve on testosterone are a strong window for building strength; your plan leans into it."},
	4: {overloadRate: 1.10,
		message: "Your plan takes advantage of continued testosterone-driven strength gains."},
	5: {overloadRate: 1.05,
		message: "Your training reflects a mature response to testosterone therapy."},
	6: {overloadRate: 1.05,
		message: "Your training reflects a mature response to testosterone therapy."},
}

// estrogenPhaseRule builds the HRT-E-## rule for one phase.
func estrogenPhaseRule(phase int) safetyRule {
	effect := estrogenPhases[phase]
	return safetyRule{
		id:       fmt.Sprintf("HRT-E-%02d", phase),
		category: domain.CategoryHormonal,
		message:  effect.message,
		applies: func(p *normalizedProfile) bool {
			return p.HRT.OnHRT && p.HRT.Type == domain.HormoneEstrogen && hrtPhase(p.HRT.MonthsOnHRT) == phase
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			applyHRTEffect(ctx, effect)
		},
	}
}

// testosteronePhaseRule builds the HRT-T-## rule for one phase.
func testosteronePhaseRule(phase int) safetyRule {
	effect := testosteronePhases[phase]
	return safetyRule{
		id:       fmt.Sprintf("HRT-T-%02d", phase),
		category: domain.CategoryHormonal,
		message:  effect.message,
		applies: func(p *normalizedProfile) bool {
			return p.HRT.OnHRT && p.HRT.Type == domain.HormoneTestosterone && hrtPhase(p.HRT.MonthsOnHRT) == phase
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			applyHRTEffect(ctx, effect)
		},
	}
}

func applyHRTEffect(ctx *domain.SafetyContext, effect hrtPhaseEffect) {
	ctx.Params.VolumeReductionPercent += effect.volumeReductionPct
	if effect.overloadRate != 0 {
		ctx.Params.ProgressiveOverloadRate *= effect.overloadRate
	}
	ctx.Params.RestSecondsIncrease += effect.restIncreaseSec
}

// hormoneRules: one generic on-therapy rule plus one phase rule per hormone
// type and phase. Exactly one phase rule fires for a profile on therapy.
var hormoneRules = buildHormoneRules()

func buildHormoneRules() []safetyRule {
	rules := []safetyRule{
		{
			id:       "HRT-01",
			category: domain.CategoryHormonal,
			message:  "Your sets, rest, and progression pace are adjusted for hormone therapy.",
			applies: func(p *normalizedProfile) bool {
				return p.HRT.OnHRT
			},
			apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
				ctx.UserMessages = append(ctx.UserMessages,
					"This plan is adjusted for your hormone therapy. Recovery needs can shift between phases, so re-run generation when your routine feels off.")
			},
		},
	}
	for phase := 1; phase <= 6; phase++ {
		rules = append(rules, estrogenPhaseRule(phase))
	}
	for phase := 1; phase <= 6; phase++ {
		rules = append(rules, testosteronePhaseRule(phase))
	}
	return rules
}
