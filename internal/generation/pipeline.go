package generation

import (
	"errors"
	"log/slog"

	"transfit/workout-app/internal/domain"
)

var ErrEmptyCatalog = errors.New("exercise catalog is empty")

// Pipeline runs the full generation flow. It is stateless across runs and
// safe for concurrent use.
type Pipeline struct {
	registry *Registry
	logger   *slog.Logger
}

// NewPipeline wires a pipeline over the given template registry.
func NewPipeline(registry *Registry, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{registry: registry, logger: logger}
}

// Generate produces one complete session for the given profile and catalog
// snapshot. dayIndex selects the training day within the matched weekly
// template, wrapping when out of range. The same profile, catalog, and day
// always yield the same workout.
func (pl *Pipeline) Generate(profile domain.Profile, catalog []domain.Exercise, dayIndex int) (domain.AssembledWorkout, *domain.SafetyContext, error) {
	if len(catalog) == 0 {
		return domain.AssembledWorkout{}, nil, ErrEmptyCatalog
	}

	p := normalizeProfile(profile, pl.logger)
	ctx := evaluateSafetyRules(&p, catalog, pl.logger)
	tmpl := pl.registry.selectTemplate(&p, dayIndex)
	pool := filterPool(catalog, &p, ctx)

	pl.logger.Debug("pipeline pool filtered",
		"user", p.UserID,
		"catalog", len(catalog),
		"pool", len(pool),
		"excluded", len(ctx.ExcludedExerciseIDs),
		"template", tmpl.TemplateName,
		"day", tmpl.Day.Name)

	sel := selectForDay(pool, tmpl.Day, &p, ctx.SoftFilters)
	if sel.Shortfall > 0 {
		pl.logger.Warn("selection shortfall",
			"user", p.UserID,
			"wanted", tmpl.Day.TotalExercises,
			"got", len(sel.Exercises),
			"missingRequired", sel.MissingRequired)
	}

	adj := computeVolume(&p, tmpl, ctx)
	main := prescribe(sel.Exercises, tmpl.Day, &p, adj, ctx.Params)
	workout := assembleWorkout(tmpl, main, ctx, pl.registry, sel.Shortfall)

	return workout, ctx, nil
}

// GenerateQuick produces a session without template matching: safety rules
// and pool filtering still apply, but exercises come from the
// equipment-balanced selector and the day is a synthetic full-body template.
func (pl *Pipeline) GenerateQuick(profile domain.Profile, catalog []domain.Exercise, count int) (domain.AssembledWorkout, *domain.SafetyContext, error) {
	if len(catalog) == 0 {
		return domain.AssembledWorkout{}, nil, ErrEmptyCatalog
	}
	if count <= 0 {
		count = 5
	}

	p := normalizeProfile(profile, pl.logger)
	ctx := evaluateSafetyRules(&p, catalog, pl.logger)
	pool := filterPool(catalog, &p, ctx)

	exercises := selectBalanced(pool, &p, count)
	shortfall := count - len(exercises)
	if shortfall > 0 {
		pl.logger.Warn("quick selection shortfall",
			"user", p.UserID, "wanted", count, "got", len(exercises))
	}

	day := domain.DayTemplate{
		Name:            "Quick full body",
		Focus:           domain.FocusFullBody,
		TotalExercises:  count,
		WarmupMinutes:   5,
		CooldownMinutes: 5,
	}
	tmpl := domain.SelectedTemplate{
		Kind:             domain.TemplateStandard,
		TemplateName:     "quick",
		Day:              day,
		VolumeMultiplier: hrtVolumeMultiplier(&p),
	}

	adj := computeVolume(&p, tmpl, ctx)
	main := prescribe(exercises, day, &p, adj, ctx.Params)
	workout := assembleWorkout(tmpl, main, ctx, pl.registry, shortfall)

	return workout, ctx, nil
}
