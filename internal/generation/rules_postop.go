package generation

import "transfit/workout-app/internal/domain"

// hasUnhealedSurgery reports an unhealed surgery of the given type. An empty
// type matches any surgery.
func hasUnhealedSurgery(p *normalizedProfile, surgeryType domain.SurgeryType) bool {
	for _, s := range p.Surgeries {
		if s.FullyHealed {
			continue
		}
		if surgeryType == "" || s.Type == surgeryType {
			return true
		}
	}
	return false
}

// surgeonClearedAll reports whether every unhealed surgery has surgeon clearance.
func surgeonClearedAll(p *normalizedProfile) bool {
	for _, s := range p.Surgeries {
		if !s.FullyHealed && !s.SurgeonCleared {
			return false
		}
	}
	return true
}

// Post-operative rules (PO-*). Early phases remove whole movement families
// via critical blocks rather than deprioritizing them; later phases taper
// volume instead.
var postOpRules = []safetyRule{
	{
		id:       "PO-01",
		category: domain.CategoryPostOp,
		message:  "You are in the first weeks after surgery, so your plan is limited to gentle movement only.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, "") && p.RecoveryPhase == domain.PhaseImmediate
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			for _, pat := range []domain.Pattern{
				domain.PatternSquat, domain.PatternHinge, domain.PatternPush,
				domain.PatternPull, domain.PatternLunge, domain.PatternCardio,
			} {
				ctx.CriticalBlocks = append(ctx.CriticalBlocks, domain.CriticalBlock{
					Pattern: pat,
					Reason:  "immediate post-operative recovery",
				})
			}
			ctx.Params.VolumeReductionPercent += 50
			if ctx.Params.MaxWorkoutMinutes == 0 || ctx.Params.MaxWorkoutMinutes > 30 {
				ctx.Params.MaxWorkoutMinutes = 30
			}
			ctx.AddCheckpoint(domain.TriggerWorkoutCompletion,
				"Check your incision sites after moving. Any new pain, swelling, or drainage means stop and contact your care team.")
			ctx.UserMessages = append(ctx.UserMessages,
				"You are very early in recovery. This session stays intentionally light; follow your surgeon's guidance above all.")
		},
	},
	{
		id:       "PO-02",
		category: domain.CategoryPostOp,
		message:  "Chest and pressing movements were removed while your chest heals from top surgery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, domain.SurgeryTop) &&
				(p.RecoveryPhase == domain.PhaseImmediate || p.RecoveryPhase == domain.PhaseEarly)
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			ctx.CriticalBlocks = append(ctx.CriticalBlocks,
				domain.CriticalBlock{Pattern: domain.PatternPush, Reason: "top surgery recovery"},
				domain.CriticalBlock{MuscleGroup: "chest", Reason: "top surgery recovery"},
				domain.CriticalBlock{MuscleGroup: "shoulders", Reason: "top surgery recovery"},
			)
			ctx.UserMessages = append(ctx.UserMessages,
				"Chest work is paused while you heal from top surgery. It will come back gradually in later recovery phases.")
		},
	},
	{
		id:       "PO-03",
		category: domain.CategoryPostOp,
		message:  "High-pressure chest exercises stay out of your plan during mid recovery from top surgery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, domain.SurgeryTop) && p.RecoveryPhase == domain.PhaseMid
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			excludeWhere(ctx, catalog, func(e *domain.Exercise) bool {
				return e.PressureLevel == domain.PressureHigh && e.TargetsMuscle("chest")
			})
			ctx.Params.RestSecondsIncrease += 15
		},
	},
	{
		id:       "PO-04",
		category: domain.CategoryPostOp,
		message:  "Lower-body loading and pelvic-floor-straining movements were removed while you heal from bottom surgery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, domain.SurgeryBottom) &&
				(p.RecoveryPhase == domain.PhaseImmediate || p.RecoveryPhase == domain.PhaseEarly)
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			ctx.CriticalBlocks = append(ctx.CriticalBlocks,
				domain.CriticalBlock{Pattern: domain.PatternSquat, Reason: "bottom surgery recovery"},
				domain.CriticalBlock{Pattern: domain.PatternHinge, Reason: "bottom surgery recovery"},
				domain.CriticalBlock{Pattern: domain.PatternLunge, Reason: "bottom surgery recovery"},
			)
			excludeWhere(ctx, catalog, func(e *domain.Exercise) bool {
				return !e.PelvicFloorSafe
			})
			ctx.AddCheckpoint(domain.TriggerWorkoutCompletion,
				"After finishing, note any pelvic pressure or discomfort and mention it at your next follow-up.")
		},
	},
	{
		id:       "PO-05",
		category: domain.CategoryPostOp,
		message:  "High-impact and pelvic-floor-straining exercises stay out of your plan during mid recovery from bottom surgery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, domain.SurgeryBottom) && p.RecoveryPhase == domain.PhaseMid
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			excludeWhere(ctx, catalog, func(e *domain.Exercise) bool {
				return !e.PelvicFloorSafe || e.ImpactLevel == domain.ImpactHigh
			})
		},
	},
	{
		id:       "PO-06",
		category: domain.CategoryPostOp,
		message:  "Training volume is reduced and rest extended during early surgical recovery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, "") && p.RecoveryPhase == domain.PhaseEarly
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			ctx.Params.VolumeReductionPercent += 40
			ctx.Params.RestSecondsIncrease += 30
		},
	},
	{
		id:       "PO-07",
		category: domain.CategoryPostOp,
		message:  "Training volume is moderately reduced during mid surgical recovery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, "") && p.RecoveryPhase == domain.PhaseMid
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			ctx.Params.VolumeReductionPercent += 25
			ctx.Params.RestSecondsIncrease += 15
		},
	},
	{
		id:       "PO-08",
		category: domain.CategoryPostOp,
		message:  "A small volume reduction remains in place during late surgical recovery.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, "") && p.RecoveryPhase == domain.PhaseLate
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			ctx.Params.VolumeReductionPercent += 10
		},
	},
	{
		id:       "PO-09",
		category: domain.CategoryPostOp,
		message:  "High-impact exercises are held back until your surgeon clears you to return to full activity.",
		applies: func(p *normalizedProfile) bool {
			return hasUnhealedSurgery(p, "") && !surgeonClearedAll(p)
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			excludeWhere(ctx, catalog, func(e *domain.Exercise) bool {
				return e.ImpactLevel == domain.ImpactHigh
			})
			ctx.Params.ProgressiveOverloadRate *= 0.75
			ctx.UserMessages = append(ctx.UserMessages,
				"Progression is slowed until your surgeon confirms you're cleared for unrestricted exercise.")
		},
	},
}
