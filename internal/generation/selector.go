package generation

import (
	"sort"
	"strings"

	"transfit/workout-app/internal/domain"
)

// Scoring weights. All terms are additive; selection is fully deterministic
// with ties broken by original pool order.
const (
	unratedBaseline     = 50.0
	effectivenessWeight = 10.0

	emphasisExactBonus      = 100.0
	emphasisSameSignBase    = 50.0
	emphasisDistanceWeight  = 10.0
	emphasisNeutralBonus    = 20.0
	emphasisOppositePenalty = -30.0

	muscleMatchBonus = 30.0

	diversityTargetPenalty    = -15.0
	diversitySecondaryPenalty = -5.0
	diversityPatternPenalty   = -3.0

	experienceMatchBonus  = 10.0
	requiredPriorityBonus = 5.0

	preferTagBonus         = 40.0
	deprioritizeTagPenalty = -40.0

	bodyFocusPrimaryBonus   = 25.0
	bodyFocusSecondaryBonus = 15.0
	bodyFocusAvoidPenalty   = -25.0

	dayFocusBonus  = 20.0
	goalMatchBonus = 20.0
)

// selection is the outcome of exercise selection for one day, including any
// shortfall so callers can report it instead of hiding it.
type selection struct {
	Exercises       []domain.Exercise
	Shortfall       int
	MissingRequired []domain.Pattern
}

// selectForDay scores and selects exercises for each pattern requirement of
// the day template, then backfills from the general pool when requirement
// matching falls short of the day's exercise target. The pool running dry
// degrades to a smaller selection, never an error.
func selectForDay(pool []domain.Exercise, day domain.DayTemplate, p *normalizedProfile, filters []domain.SoftFilter) selection {
	var sel selection
	used := make(map[string]bool)

	for _, req := range day.Requirements {
		candidates := candidateIndexes(pool, used, func(ex *domain.Exercise) bool {
			return ex.Pattern == req.Pattern
		})
		if len(candidates) == 0 {
			if req.Priority == domain.PriorityRequired {
				sel.MissingRequired = append(sel.MissingRequired, req.Pattern)
			}
			continue
		}

		ranked := rankByScore(pool, candidates, func(ex *domain.Exercise) float64 {
			return scoreForRequirement(ex, req, sel.Exercises, p, filters)
		})
		taken := 0
		for _, idx := range ranked {
			if taken >= req.Count {
				break
			}
			sel.Exercises = append(sel.Exercises, pool[idx])
			used[pool[idx].ID.Hex()] = true
			taken++
		}
	}

	if len(sel.Exercises) < day.TotalExercises {
		fillFromGeneralPool(&sel, pool, used, day, p)
	}
	if len(sel.Exercises) < day.TotalExercises {
		sel.Shortfall = day.TotalExercises - len(sel.Exercises)
	}
	return sel
}

// fillFromGeneralPool tops the selection up with the best remaining exercises
// regardless of pattern, favoring the day's focus.
func fillFromGeneralPool(sel *selection, pool []domain.Exercise, used map[string]bool, day domain.DayTemplate, p *normalizedProfile) {
	candidates := candidateIndexes(pool, used, func(*domain.Exercise) bool { return true })
	ranked := rankByScore(pool, candidates, func(ex *domain.Exercise) float64 {
		return generalPoolScore(ex, day.Focus, p)
	})
	for _, idx := range ranked {
		if len(sel.Exercises) >= day.TotalExercises {
			break
		}
		sel.Exercises = append(sel.Exercises, pool[idx])
		used[pool[idx].ID.Hex()] = true
	}
}

// scoreForRequirement computes the full additive score of one candidate
// against one pattern requirement given everything selected so far.
func scoreForRequirement(ex *domain.Exercise, req domain.PatternRequirement, selected []domain.Exercise, p *normalizedProfile, filters []domain.SoftFilter) float64 {
	score := baselineScore(ex)
	score += emphasisScore(ex.GenderEmphasis, req.GenderEmphasis)

	for _, muscle := range req.TargetMuscles {
		if ex.TargetsMuscle(muscle) {
			score += muscleMatchBonus
			break
		}
	}

	score += diversityPenalty(ex, selected)

	if ex.Difficulty == p.Experience {
		score += experienceMatchBonus
	}
	if req.Priority == domain.PriorityRequired {
		score += requiredPriorityBonus
	}

	score += softFilterScore(ex, filters)
	score += bodyFocusScore(ex, p)

	return score
}

func baselineScore(ex *domain.Exercise) float64 {
	if ex.EffectivenessRating > 0 {
		return ex.EffectivenessRating * effectivenessWeight
	}
	return unratedBaseline
}

// emphasisScore maps both emphases onto the signed ordinal scale and rewards
// alignment with the requirement's gender direction. Unset and neutral
// requirements are satisfied by anything, so they contribute nothing through
// this term; an exact directional match always lands exactly 100 above that.
func emphasisScore(ex, req domain.GenderEmphasis) float64 {
	reqOrd := req.Ordinal()
	if reqOrd == 0 {
		return 0
	}
	if ex == req {
		return emphasisExactBonus
	}
	exOrd := ex.Ordinal()
	if exOrd == 0 {
		return emphasisNeutralBonus
	}
	if (exOrd > 0) == (reqOrd > 0) {
		return emphasisSameSignBase - emphasisDistanceWeight*float64(absInt(exOrd-reqOrd))
	}
	return emphasisOppositePenalty
}

// diversityPenalty discourages stacking exercises that hit the same muscles
// or repeat the same movement pattern.
func diversityPenalty(ex *domain.Exercise, selected []domain.Exercise) float64 {
	var penalty float64
	for i := range selected {
		s := &selected[i]
		if ex.TargetMuscles != "" && strings.EqualFold(ex.TargetMuscles, s.TargetMuscles) {
			penalty += diversityTargetPenalty
		}
		if secondaryOverlap(ex.SecondaryMuscles, s.SecondaryMuscles) {
			penalty += diversitySecondaryPenalty
		}
		if ex.Pattern == s.Pattern {
			penalty += diversityPatternPenalty
		}
	}
	return penalty
}

func secondaryOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	bTokens := make(map[string]bool)
	for _, t := range strings.Split(strings.ToLower(b), ",") {
		bTokens[strings.TrimSpace(t)] = true
	}
	for _, t := range strings.Split(strings.ToLower(a), ",") {
		if bTokens[strings.TrimSpace(t)] {
			return true
		}
	}
	return false
}

// softFilterScore applies the dysphoria-driven prefer/deprioritize nudges.
func softFilterScore(ex *domain.Exercise, filters []domain.SoftFilter) float64 {
	var score float64
	for _, f := range filters {
		for _, tag := range f.PreferTags {
			if ex.HasDysphoriaTag(tag) {
				score += preferTagBonus
			}
		}
		for _, tag := range f.DeprioritizeTags {
			if ex.HasDysphoriaTag(tag) {
				score += deprioritizeTagPenalty
			}
		}
	}
	return score
}

// bodyFocusScore rewards the first preferred region most, later preferred
// regions less, and penalizes every avoided region the exercise touches.
func bodyFocusScore(ex *domain.Exercise, p *normalizedProfile) float64 {
	var score float64
	for i, region := range p.BodyFocusPrefer {
		if !matchesRegion(ex, region) {
			continue
		}
		if i == 0 {
			score += bodyFocusPrimaryBonus
		} else {
			score += bodyFocusSecondaryBonus
		}
	}
	for _, region := range p.BodyFocusAvoid {
		if matchesRegion(ex, region) {
			score += bodyFocusAvoidPenalty
		}
	}
	return score
}

// generalPoolScore ranks backfill candidates: curation quality, day-focus
// alignment, and experience fit.
func generalPoolScore(ex *domain.Exercise, focus domain.Focus, p *normalizedProfile) float64 {
	score := baselineScore(ex)
	for _, muscle := range focusMuscles(focus) {
		if ex.TargetsMuscle(muscle) {
			score += dayFocusBonus
			break
		}
	}
	if ex.Difficulty == p.Experience {
		score += experienceMatchBonus
	}
	return score
}

// candidateIndexes returns pool indexes of unused exercises matching the
// predicate, preserving pool order.
func candidateIndexes(pool []domain.Exercise, used map[string]bool, match func(*domain.Exercise) bool) []int {
	var out []int
	for i := range pool {
		if used[pool[i].ID.Hex()] {
			continue
		}
		if match(&pool[i]) {
			out = append(out, i)
		}
	}
	return out
}

// rankByScore orders candidate indexes by descending score; the sort is
// stable so ties keep original pool order.
func rankByScore(pool []domain.Exercise, candidates []int, score func(*domain.Exercise) float64) []int {
	scores := make(map[int]float64, len(candidates))
	for _, idx := range candidates {
		scores[idx] = score(&pool[idx])
	}
	ranked := append([]int(nil), candidates...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})
	return ranked
}

