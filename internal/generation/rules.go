package generation

import (
	"log/slog"

	"transfit/workout-app/internal/domain"
)

// safetyRule is one declarative (predicate, effect) pair. Rules are data:
// the engine walks the tables generically, so the full rule set is
// enumerable for audit and testing.
type safetyRule struct {
	id       string
	category domain.RuleCategory
	// message is the user-readable explanation recorded when the rule fires.
	// It must never be empty.
	message string
	applies func(p *normalizedProfile) bool
	apply   func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise)
}

// ruleTables returns every rule category in its fixed combination order:
// binding and post-operative hard rules first (cannot be overridden), then
// hormone-phase parameter merges, then dysphoria soft filters last.
func ruleTables() [][]safetyRule {
	return [][]safetyRule{
		bindingRules,
		postOpRules,
		hormoneRules,
		dysphoriaRules,
	}
}

// evaluateSafetyRules runs every applicable rule against the profile and
// catalog snapshot, producing the run's SafetyContext. The function is pure
// over its inputs: identical inputs yield an identical context. Absent
// optional profile fields simply fail their rule's predicate; the engine
// never errors.
func evaluateSafetyRules(p *normalizedProfile, catalog []domain.Exercise, logger *slog.Logger) *domain.SafetyContext {
	ctx := domain.NewSafetyContext()

	for _, table := range ruleTables() {
		for _, rule := range table {
			if !rule.applies(p) {
				continue
			}
			rule.apply(ctx, p, catalog)
			ctx.RulesApplied = append(ctx.RulesApplied, domain.AppliedRule{
				RuleID:   rule.id,
				Category: rule.category,
				Message:  rule.message,
			})
			logger.Debug("safety rule fired",
				"rule", rule.id,
				"category", string(rule.category),
				"exclusions", len(ctx.ExcludedExerciseIDs))
		}
	}

	return ctx
}

// allRules flattens the rule tables, used by audit tooling and tests.
func allRules() []safetyRule {
	var rules []safetyRule
	for _, table := range ruleTables() {
		rules = append(rules, table...)
	}
	return rules
}

// excludeWhere excludes every catalog exercise matching the predicate.
func excludeWhere(ctx *domain.SafetyContext, catalog []domain.Exercise, match func(*domain.Exercise) bool) {
	for i := range catalog {
		if match(&catalog[i]) {
			ctx.Exclude(catalog[i].ID.Hex())
		}
	}
}
