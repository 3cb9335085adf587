package generation

import "transfit/workout-app/internal/domain"

// Binding safety rules (BS-*). These fire on chest binding habits and are
// applied before any parameter-merging category; their exclusions cannot be
// undone by later rules.
var bindingRules = []safetyRule{
	{
		id:       "BS-01",
		category: domain.CategoryBinding,
		message:  "Because you bind your chest, exercises that restrict deep breathing under compression were removed from your plan.",
		applies: func(p *normalizedProfile) bool {
			return p.Binding.BindsChest
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			excludeWhere(ctx, catalog, func(e *domain.Exercise) bool {
				return !e.BinderAware
			})
			ctx.AddCheckpoint(domain.TriggerEvery90Minutes,
				"You've been active for a while. Take a few minutes to loosen or remove your binder and take some deep breaths.")
			ctx.UserMessages = append(ctx.UserMessages,
				"Your plan accounts for chest binding. Listen to your body and rest whenever breathing feels restricted.")
		},
	},
	{
		id:       "BS-02",
		category: domain.CategoryBinding,
		message:  "Daily or long-duration binding further limits high-compression movements, adds rest time, and caps session length.",
		applies: func(p *normalizedProfile) bool {
			return p.heavyBinder()
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			excludeWhere(ctx, catalog, func(e *domain.Exercise) bool {
				return !e.HeavyBindingSafe
			})
			ctx.Params.RestSecondsIncrease += 30
			if ctx.Params.MaxWorkoutMinutes == 0 || ctx.Params.MaxWorkoutMinutes > 90 {
				ctx.Params.MaxWorkoutMinutes = 90
			}
		},
	},
	{
		id:       "BS-03",
		category: domain.CategoryBinding,
		message:  "A breathing check was scheduled before cardio work because cardio raises breathing demands while binding.",
		applies: func(p *normalizedProfile) bool {
			return p.Binding.BindsChest
		},
		apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
			ctx.AddCheckpoint(domain.TriggerBeforeCardio,
				"Before starting cardio, check in: can you take a full, deep breath? If not, loosen your binder first.")
		},
	},
}
