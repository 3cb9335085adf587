package generation

import (
	"fmt"
	"strings"
	"time"

	"transfit/workout-app/internal/domain"
)

// assembleWorkout composes the final session from the selected template, the
// prescribed exercises, and the safety context.
func assembleWorkout(tmpl domain.SelectedTemplate, main []domain.ExerciseInstance, ctx *domain.SafetyContext, reg *Registry, shortfall int) domain.AssembledWorkout {
	total := tmpl.Day.WarmupMinutes + tmpl.Day.CooldownMinutes + elapsedMinutes(main)
	checkpoints := positionCheckpoints(ctx.RequiredCheckpoints, main, tmpl.Day.WarmupMinutes, total)

	return domain.AssembledWorkout{
		Name:             workoutName(tmpl),
		Warmup:           reg.WarmupFor(tmpl.Day.Focus),
		Main:             main,
		Cooldown:         reg.CooldownFor(tmpl.Day.Focus),
		Checkpoints:      checkpoints,
		UserMessages:     ctx.UserMessages,
		EstimatedMinutes: total,
		Metadata: domain.WorkoutMetadata{
			TemplateName:      tmpl.TemplateName,
			Focus:             tmpl.Day.Focus,
			HRTAdjusted:       tmpl.VolumeMultiplier != 1.0,
			AppliedRuleIDs:    ctx.RuleIDs(),
			ExclusionCount:    len(ctx.ExcludedExerciseIDs),
			ExerciseShortfall: shortfall,
			GeneratedAt:       time.Now().UTC(),
		},
		CreatedAt: time.Now().UTC(),
	}
}

func workoutName(tmpl domain.SelectedTemplate) string {
	if tmpl.Day.Name != "" {
		return tmpl.Day.Name
	}
	focus := strings.ReplaceAll(string(tmpl.Day.Focus), "_", " ")
	if focus == "" {
		return "Training session"
	}
	return fmt.Sprintf("%s%s session", strings.ToUpper(focus[:1]), focus[1:])
}
