package generation

import (
	"fmt"

	"transfit/workout-app/internal/domain"
)

// dysphoriaFilter maps one trigger to a scoring nudge. Soft filters never
// remove exercises; they only re-rank them.
type dysphoriaFilter struct {
	trigger          string
	preferTags       []string
	deprioritizeTags []string
	message          string
}

var dysphoriaFilters = []dysphoriaFilter{
	{
		trigger:          "crowded_spaces",
		preferTags:       []string{"home_friendly", "private_space"},
		deprioritizeTags: []string{"crowded_gym", "public_space"},
		message:          "Exercises you can do at home or in quiet spaces are ranked higher because crowded spaces are hard for you.",
	},
	{
		trigger:          "chest_visibility",
		preferTags:       []string{"chest_neutral", "loose_clothing_friendly"},
		deprioritizeTags: []string{"chest_emphasis"},
		message:          "Exercises that keep attention off your chest are ranked higher in your plan.",
	},
	{
		trigger:          "mirrors",
		preferTags:       []string{"no_mirror_needed", "home_friendly"},
		deprioritizeTags: []string{"mirror_focused"},
		message:          "Exercises that don't rely on mirror feedback are ranked higher in your plan.",
	},
	{
		trigger:          "locker_rooms",
		preferTags:       []string{"home_friendly"},
		deprioritizeTags: []string{"requires_gym"},
		message:          "Home-friendly exercises are ranked higher so you can skip the locker room entirely.",
	},
	{
		trigger:          "tight_clothing",
		preferTags:       []string{"loose_clothing_friendly"},
		deprioritizeTags: []string{"form_fitting_required"},
		message:          "Exercises comfortable in loose clothing are ranked higher in your plan.",
	},
}

// Dysphoria soft-filter rules (DYS-*). Applied last in the combination
// order; they adjust scoring only and never exclude anything outright.
var dysphoriaRules = buildDysphoriaRules()

func buildDysphoriaRules() []safetyRule {
	rules := make([]safetyRule, 0, len(dysphoriaFilters))
	for i, f := range dysphoriaFilters {
		filter := f
		rules = append(rules, safetyRule{
			id:       fmt.Sprintf("DYS-%02d", i+1),
			category: domain.CategoryDysphoria,
			message:  filter.message,
			applies: func(p *normalizedProfile) bool {
				return p.hasTrigger(filter.trigger)
			},
			apply: func(ctx *domain.SafetyContext, p *normalizedProfile, catalog []domain.Exercise) {
				ctx.SoftFilters = append(ctx.SoftFilters, domain.SoftFilter{
					PreferTags:       filter.preferTags,
					DeprioritizeTags: filter.deprioritizeTags,
					Reason:           filter.trigger,
				})
			},
		})
	}
	return rules
}
