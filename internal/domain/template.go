package domain

// Focus is the overall emphasis of one training day.
type Focus string

const (
	FocusLowerBody Focus = "lower_body"
	FocusUpperBody Focus = "upper_body"
	FocusFullBody  Focus = "full_body"
)

// Priority ranks how hard a pattern requirement must be satisfied.
type Priority string

const (
	PriorityRequired  Priority = "required"
	PriorityPreferred Priority = "preferred"
	PriorityOptional  Priority = "optional"
)

// PatternRequirement asks the selector for a number of exercises of one
// movement pattern, optionally steering emphasis and target muscles.
type PatternRequirement struct {
	Pattern        Pattern        `yaml:"pattern" json:"pattern"`
	Count          int            `yaml:"count" json:"count"`
	Priority       Priority       `yaml:"priority" json:"priority"`
	GenderEmphasis GenderEmphasis `yaml:"gender_emphasis,omitempty" json:"genderEmphasis,omitempty"`
	TargetMuscles  []string       `yaml:"target_muscles,omitempty" json:"targetMuscles,omitempty"`
}

// DayTemplate describes the pattern quotas for one training day. Templates
// are static configuration data, loaded once at startup.
type DayTemplate struct {
	Name            string               `yaml:"name" json:"name"`
	Focus           Focus                `yaml:"focus" json:"focus"`
	Requirements    []PatternRequirement `yaml:"requirements" json:"requirements"`
	TotalExercises  int                  `yaml:"total_exercises" json:"totalExercises"`
	WarmupMinutes   int                  `yaml:"warmup_minutes" json:"warmupMinutes"`
	CooldownMinutes int                  `yaml:"cooldown_minutes" json:"cooldownMinutes"`
}

// WeekTemplate is a registry entry: a named multi-day pattern keyed by goal,
// experience tier, and weekly frequency.
type WeekTemplate struct {
	Name       string        `yaml:"name" json:"name"`
	Goal       Goal          `yaml:"goal" json:"goal"`
	Experience Experience    `yaml:"experience" json:"experience"`
	Frequency  int           `yaml:"frequency" json:"frequency"`
	Days       []DayTemplate `yaml:"days" json:"days"`
}

// HybridConfig carries the blend weights applied when a profile's body-focus
// preference runs counter to the gender direction of its goal.
type HybridConfig struct {
	PrimaryWeight   float64  `json:"primaryWeight"`
	SecondaryWeight float64  `json:"secondaryWeight"`
	SecondaryAreas  []string `json:"secondaryEmphasisAreas"`
}

// TemplateKind tags the SelectedTemplate variant.
type TemplateKind string

const (
	TemplateStandard TemplateKind = "standard"
	TemplateHybrid   TemplateKind = "hybrid"
)

// SelectedTemplate is the tagged union returned by template selection:
// a standard day, or a hybrid day with blend configuration. VolumeMultiplier
// is the HRT-derived sets multiplier computed alongside selection.
type SelectedTemplate struct {
	Kind             TemplateKind  `json:"kind"`
	TemplateName     string        `json:"templateName"`
	Day              DayTemplate   `json:"day"`
	Hybrid           *HybridConfig `json:"hybridConfig,omitempty"`
	VolumeMultiplier float64       `json:"volumeMultiplier"`
}

// IsHybrid reports whether hybrid blending was applied.
func (t *SelectedTemplate) IsHybrid() bool {
	return t.Kind == TemplateHybrid
}
