// Package generation implements the workout generation pipeline: safety rule
// evaluation, template selection, exercise scoring and selection, volume
// adjustment, prescription, and checkpoint placement. Every stage is a pure
// function over immutable snapshots; the pipeline runs synchronously within
// one request.
package generation

import "transfit/workout-app/internal/domain"

// Recovery phase week boundaries. A surgery w weeks post-op falls in the
// first bucket whose upper bound it does not exceed.
const (
	immediateMaxWeeks = 2
	earlyMaxWeeks     = 6
	midMaxWeeks       = 12
	lateMaxWeeks      = 24
)

// PhaseForWeeks maps weeks since surgery to a recovery phase. Negative input
// is treated as healed; callers are expected to have sanitized it already.
func PhaseForWeeks(weeks int) domain.RecoveryPhase {
	switch {
	case weeks < 0:
		return domain.PhaseMaintenance
	case weeks <= immediateMaxWeeks:
		return domain.PhaseImmediate
	case weeks <= earlyMaxWeeks:
		return domain.PhaseEarly
	case weeks <= midMaxWeeks:
		return domain.PhaseMid
	case weeks <= lateMaxWeeks:
		return domain.PhaseLate
	default:
		return domain.PhaseMaintenance
	}
}

// ResolveRecoveryPhase maps a profile's surgical history to a single
// restrictiveness phase: the most restrictive phase across all unhealed
// surgeries. Healed or absent surgeries contribute maintenance.
func ResolveRecoveryPhase(surgeries []domain.Surgery) domain.RecoveryPhase {
	phase := domain.PhaseMaintenance
	for _, s := range surgeries {
		if s.FullyHealed {
			continue
		}
		p := PhaseForWeeks(s.WeeksPostOp)
		if p.MoreRestrictiveThan(phase) {
			phase = p
		}
	}
	return phase
}
