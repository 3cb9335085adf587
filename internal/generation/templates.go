package generation

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"transfit/workout-app/internal/domain"
)

//go:embed templates.yaml
var templatesYAML []byte

// ErrNoTemplates means the template registry is empty or unparseable. This is
// a configuration failure and aborts generation.
var ErrNoTemplates = errors.New("no workout templates registered")

// Hybrid blending constants.
const (
	hybridPrimaryWeight   = 0.65
	hybridSecondaryWeight = 0.35
	hybridMaxExtraSlots   = 3
)

// HRT volume multipliers applied to the sets multiplier downstream.
const (
	hrtVolumeEstrogen     = 0.85
	hrtVolumeTestosterone = 1.0
	hrtVolumeOther        = 0.9
	hrtVolumeOff          = 1.0
)

// templateConfig is the on-disk shape of the registry file.
type templateConfig struct {
	Templates []domain.WeekTemplate     `yaml:"templates"`
	Warmups   map[domain.Focus][]string `yaml:"warmups"`
	Cooldowns map[domain.Focus][]string `yaml:"cooldowns"`
}

// Registry holds the loaded day-template registry plus the warm-up and
// cool-down content tables. It is immutable after loading.
type Registry struct {
	templates []domain.WeekTemplate
	warmups   map[domain.Focus][]string
	cooldowns map[domain.Focus][]string
}

// LoadTemplates parses the embedded registry. Returns ErrNoTemplates when no
// usable template exists for any goal.
func LoadTemplates() (*Registry, error) {
	return parseTemplates(templatesYAML)
}

func parseTemplates(raw []byte) (*Registry, error) {
	var cfg templateConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing template registry: %w", err)
	}
	if len(cfg.Templates) == 0 {
		return nil, ErrNoTemplates
	}
	for _, t := range cfg.Templates {
		if len(t.Days) == 0 {
			return nil, fmt.Errorf("template %q has no days: %w", t.Name, ErrNoTemplates)
		}
	}
	return &Registry{
		templates: cfg.Templates,
		warmups:   cfg.Warmups,
		cooldowns: cfg.Cooldowns,
	}, nil
}

// WarmupFor returns the warm-up exercise list for a day focus.
func (r *Registry) WarmupFor(focus domain.Focus) []string {
	if w, ok := r.warmups[focus]; ok {
		return w
	}
	return r.warmups[domain.FocusFullBody]
}

// CooldownFor returns the cool-down exercise list for a day focus.
func (r *Registry) CooldownFor(focus domain.Focus) []string {
	if c, ok := r.cooldowns[focus]; ok {
		return c
	}
	return r.cooldowns[domain.FocusFullBody]
}

// selectTemplate picks the day template for one session: registry filtering
// by goal, experience, and frequency with graceful fallback, then optional
// hybrid blending when body-focus preferences run counter to the goal's
// gender direction. It never fails for an unmatched profile.
func (r *Registry) selectTemplate(p *normalizedProfile, dayIndex int) domain.SelectedTemplate {
	base := r.bestMatch(p.PrimaryGoal, p.Experience, p.WorkoutFrequency)
	if base == nil {
		// Terminal fallback: beginner general fitness.
		base = r.bestMatch(domain.GoalGeneralFitness, domain.ExperienceBeginner, p.WorkoutFrequency)
	}
	if base == nil {
		// Registry guarantees at least one template; take the first.
		base = &r.templates[0]
	}

	selected := domain.SelectedTemplate{
		Kind:             domain.TemplateStandard,
		TemplateName:     base.Name,
		VolumeMultiplier: hrtVolumeMultiplier(p),
	}

	days := base.Days
	secondary := counterGoalAreas(p)
	if len(secondary) > 0 {
		days = blendHybridDays(base.Days, secondary)
		selected.Kind = domain.TemplateHybrid
		selected.Hybrid = &domain.HybridConfig{
			PrimaryWeight:   hybridPrimaryWeight,
			SecondaryWeight: hybridSecondaryWeight,
			SecondaryAreas:  secondary,
		}
	}

	if dayIndex < 0 {
		dayIndex = 0
	}
	selected.Day = days[dayIndex%len(days)]
	return selected
}

// bestMatch filters the registry by goal, then experience, then frequency:
// exact frequency preferred, else the largest registered frequency not above
// the desired one, else the closest by absolute difference.
func (r *Registry) bestMatch(goal domain.Goal, exp domain.Experience, frequency int) *domain.WeekTemplate {
	var byGoal []*domain.WeekTemplate
	for i := range r.templates {
		if r.templates[i].Goal == goal {
			byGoal = append(byGoal, &r.templates[i])
		}
	}
	if len(byGoal) == 0 {
		return nil
	}

	candidates := byGoal
	var byExp []*domain.WeekTemplate
	for _, t := range candidates {
		if t.Experience == exp {
			byExp = append(byExp, t)
		}
	}
	if len(byExp) > 0 {
		candidates = byExp
	}

	// Exact frequency match.
	for _, t := range candidates {
		if t.Frequency == frequency {
			return t
		}
	}
	// Largest frequency not exceeding the desired one.
	var best *domain.WeekTemplate
	for _, t := range candidates {
		if t.Frequency <= frequency && (best == nil || t.Frequency > best.Frequency) {
			best = t
		}
	}
	if best != nil {
		return best
	}
	// Smallest absolute difference.
	for _, t := range candidates {
		if best == nil || absInt(t.Frequency-frequency) < absInt(best.Frequency-frequency) {
			best = t
		}
	}
	return best
}

// counterGoalAreas returns the preferred body-focus areas that run counter to
// the gender direction implied by the primary goal, which triggers hybrid
// blending. Goals without a gender direction never trigger it.
func counterGoalAreas(p *normalizedProfile) []string {
	var counter map[string]bool
	switch p.PrimaryGoal {
	case domain.GoalFeminization:
		counter = upperBodyAreas
	case domain.GoalMasculinization:
		counter = lowerBodyAreas
	default:
		return nil
	}
	var areas []string
	for _, a := range p.BodyFocusPrefer {
		if counter[a] {
			areas = append(areas, a)
		}
	}
	return areas
}

// blendHybridDays clones the base days and, for each day whose focus is
// compatible with the secondary areas, appends up to three preferred-priority
// requirements with neutral gender emphasis, growing the day's exercise
// target accordingly.
func blendHybridDays(days []domain.DayTemplate, areas []string) []domain.DayTemplate {
	out := make([]domain.DayTemplate, len(days))
	for i, day := range days {
		out[i] = day
		out[i].Requirements = append([]domain.PatternRequirement(nil), day.Requirements...)

		if !focusCompatible(day.Focus, areas) {
			continue
		}
		added := 0
		for _, area := range areas {
			if added >= hybridMaxExtraSlots {
				break
			}
			pattern, ok := areaPatterns[area]
			if !ok {
				continue
			}
			out[i].Requirements = append(out[i].Requirements, domain.PatternRequirement{
				Pattern:        pattern,
				Count:          1,
				Priority:       domain.PriorityPreferred,
				GenderEmphasis: domain.EmphasisNeutral, // avoid scoring penalties on the counter direction
				TargetMuscles:  areaMuscles[area],
			})
			out[i].TotalExercises++
			added++
		}
	}
	return out
}

// focusCompatible reports whether a day's focus can host work for the given areas.
func focusCompatible(focus domain.Focus, areas []string) bool {
	if focus == domain.FocusFullBody {
		return true
	}
	for _, a := range areas {
		if focus == domain.FocusUpperBody && upperBodyAreas[a] {
			return true
		}
		if focus == domain.FocusLowerBody && lowerBodyAreas[a] {
			return true
		}
	}
	return false
}

// hrtVolumeMultiplier derives the sets multiplier from hormone therapy status.
func hrtVolumeMultiplier(p *normalizedProfile) float64 {
	if !p.HRT.OnHRT {
		return hrtVolumeOff
	}
	switch p.HRT.Type {
	case domain.HormoneEstrogen:
		return hrtVolumeEstrogen
	case domain.HormoneTestosterone:
		return hrtVolumeTestosterone
	default:
		return hrtVolumeOther
	}
}

func absInt(v int) int {
	return int(math.Abs(float64(v)))
}
