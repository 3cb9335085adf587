package generation

import "transfit/workout-app/internal/domain"

// equipmentPreferenceOrder is the fixed ranking used to pick an exercise's
// primary equipment bucket: loaded implements before bodyweight.
var equipmentPreferenceOrder = []string{
	"barbell", "db", "kb", "cable", "machine", "band",
	"bench", "step", "bike", "treadmill", "sled", "bodyweight",
}

// selectBalanced is the template-free selection strategy: it partitions
// candidates into one primary-equipment bucket each, hands every bucket an
// equal quota of the requested count with the remainder distributed
// round-robin in preference order, and ranks within buckets by profile-match
// score. Unfilled quotas are backfilled from whatever remains.
func selectBalanced(pool []domain.Exercise, p *normalizedProfile, count int) []domain.Exercise {
	if count <= 0 || len(pool) == 0 {
		return nil
	}

	buckets := make(map[string][]int)
	var order []string
	for _, token := range equipmentPreferenceOrder {
		if !p.Equipment[token] {
			continue
		}
		for i := range pool {
			if primaryEquipment(&pool[i], p) == token {
				buckets[token] = append(buckets[token], i)
			}
		}
		if len(buckets[token]) > 0 {
			order = append(order, token)
		}
	}
	if len(order) == 0 {
		return nil
	}

	quotas := make(map[string]int, len(order))
	base := count / len(order)
	for _, token := range order {
		quotas[token] = base
	}
	for i := 0; i < count%len(order); i++ {
		quotas[order[i%len(order)]]++
	}

	used := make(map[string]bool)
	var selected []domain.Exercise
	for _, token := range order {
		ranked := rankByScore(pool, buckets[token], func(ex *domain.Exercise) float64 {
			return profileMatchScore(ex, p)
		})
		taken := 0
		for _, idx := range ranked {
			if taken >= quotas[token] {
				break
			}
			selected = append(selected, pool[idx])
			used[pool[idx].ID.Hex()] = true
			taken++
		}
	}

	// Backfill when some bucket could not meet its quota.
	if len(selected) < count {
		remaining := candidateIndexes(pool, used, func(*domain.Exercise) bool { return true })
		ranked := rankByScore(pool, remaining, func(ex *domain.Exercise) float64 {
			return profileMatchScore(ex, p)
		})
		for _, idx := range ranked {
			if len(selected) >= count {
				break
			}
			selected = append(selected, pool[idx])
		}
	}
	return selected
}

// primaryEquipment picks the single bucket an exercise belongs to: the first
// token in preference order present on both the exercise and the user's set.
func primaryEquipment(ex *domain.Exercise, p *normalizedProfile) string {
	owned := make(map[string]bool, len(ex.Equipment))
	for _, eq := range ex.Equipment {
		token := domain.NormalizeEquipment(eq)
		if p.Equipment[token] {
			owned[token] = true
		}
	}
	for _, token := range equipmentPreferenceOrder {
		if owned[token] {
			return token
		}
	}
	return ""
}

// profileMatchScore ranks candidates without a day template: curation
// quality, goal alignment, body-focus preferences, and experience fit. There
// is deliberately no gender-emphasis term here; that belongs to
// requirement-driven selection.
func profileMatchScore(ex *domain.Exercise, p *normalizedProfile) float64 {
	score := baselineScore(ex)
	if goalServedByPattern(p.PrimaryGoal, ex.Pattern) {
		score += goalMatchBonus
	}
	score += bodyFocusScore(ex, p)
	if ex.Difficulty == p.Experience {
		score += experienceMatchBonus
	}
	return score
}

// goalServedByPattern reports whether a movement pattern serves the goal's
// training emphasis.
func goalServedByPattern(goal domain.Goal, pattern domain.Pattern) bool {
	switch goal {
	case domain.GoalFeminization:
		return pattern == domain.PatternSquat || pattern == domain.PatternHinge || pattern == domain.PatternLunge
	case domain.GoalMasculinization:
		return pattern == domain.PatternPush || pattern == domain.PatternPull
	case domain.GoalStrength:
		return pattern == domain.PatternSquat || pattern == domain.PatternHinge ||
			pattern == domain.PatternPush || pattern == domain.PatternPull
	case domain.GoalEndurance:
		return pattern == domain.PatternCardio
	default:
		return false
	}
}
