package generation

import (
	"sort"

	"transfit/workout-app/internal/domain"
)

const every90TriggerMinutes = 90

// positionCheckpoints anchors the safety context's required checkpoints in
// session time relative to the prescribed exercises. Output order is all
// "before" checkpoints, then "during" sorted by timing, then "after".
func positionCheckpoints(required []domain.RequiredCheckpoint, main []domain.ExerciseInstance, warmupMinutes, totalMinutes int) []domain.PositionedCheckpoint {
	out := make([]domain.PositionedCheckpoint, 0, len(required))
	for _, rc := range required {
		out = append(out, positionOne(rc, main, warmupMinutes, totalMinutes))
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := positionRank(out[i].Position), positionRank(out[j].Position)
		if ri != rj {
			return ri < rj
		}
		return out[i].TimingMinutes < out[j].TimingMinutes
	})
	return out
}

func positionOne(rc domain.RequiredCheckpoint, main []domain.ExerciseInstance, warmupMinutes, totalMinutes int) domain.PositionedCheckpoint {
	pc := domain.PositionedCheckpoint{Trigger: rc.Trigger, Message: rc.Message}
	switch rc.Trigger {
	case domain.TriggerEvery90Minutes:
		if totalMinutes > every90TriggerMinutes {
			pc.Position = domain.PositionDuring
			pc.TimingMinutes = every90TriggerMinutes
		} else {
			pc.Position = domain.PositionAfter
			pc.TimingMinutes = totalMinutes
		}
	case domain.TriggerBeforeCardio:
		if idx := firstCardioIndex(main); idx >= 0 {
			// Cardio as the very first block still gets a mid-session
			// marker, placed right after the warm-up.
			pc.Position = domain.PositionDuring
			pc.TimingMinutes = warmupMinutes + elapsedMinutes(main[:idx])
		} else {
			// No cardio at all: the check happens up front.
			pc.Position = domain.PositionBefore
		}
	case domain.TriggerCoolDown, domain.TriggerWorkoutCompletion:
		pc.Position = domain.PositionAfter
		pc.TimingMinutes = totalMinutes
	default:
		pc.Position = domain.PositionBefore
	}
	return pc
}

func firstCardioIndex(main []domain.ExerciseInstance) int {
	for i := range main {
		if main[i].Pattern == domain.PatternCardio {
			return i
		}
	}
	return -1
}

// elapsedMinutes estimates working time for a slice of prescribed exercises
// using the same per-rep pacing as session totals.
func elapsedMinutes(instances []domain.ExerciseInstance) int {
	seconds := 0
	for i := range instances {
		in := &instances[i]
		seconds += in.Sets * in.Reps * secondsPerRep
		if in.Sets > 1 {
			seconds += (in.Sets - 1) * in.RestSeconds
		}
	}
	return seconds / 60
}

func positionRank(p domain.CheckpointPosition) int {
	switch p {
	case domain.PositionBefore:
		return 0
	case domain.PositionDuring:
		return 1
	default:
		return 2
	}
}
