package domain

// RuleCategory groups safety rules by concern. The category also determines
// the stable rule-id prefix external consumers rely on.
type RuleCategory string

const (
	CategoryBinding   RuleCategory = "binding_safety"   // BS-*
	CategoryPostOp    RuleCategory = "post_operative"   // PO-*
	CategoryHormonal  RuleCategory = "hormone_therapy"  // HRT-*, HRT-E-*, HRT-T-*
	CategoryDysphoria RuleCategory = "dysphoria"        // DYS-*
)

// CheckpointTrigger identifies when a safety checkpoint must interrupt or
// bracket a session.
type CheckpointTrigger string

const (
	TriggerEvery90Minutes    CheckpointTrigger = "every_90_minutes"
	TriggerBeforeCardio      CheckpointTrigger = "before_cardio"
	TriggerCoolDown          CheckpointTrigger = "cool_down"
	TriggerWorkoutCompletion CheckpointTrigger = "workout_completion"
)

// CriticalBlock is a hard exclusion of an entire movement pattern or muscle
// group, used for early post-operative restriction. Either field may be empty.
type CriticalBlock struct {
	Pattern     Pattern `bson:"pattern,omitempty" json:"pattern,omitempty"`
	MuscleGroup string  `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`
	Reason      string  `bson:"reason" json:"reason"`
}

// Blocks reports whether the block applies to the given exercise.
func (b CriticalBlock) Blocks(ex *Exercise) bool {
	if b.Pattern != "" && ex.Pattern == b.Pattern {
		return true
	}
	if b.MuscleGroup != "" && ex.TargetsMuscle(b.MuscleGroup) {
		return true
	}
	return false
}

// SoftFilter nudges scoring via dysphoria tags without excluding anything.
type SoftFilter struct {
	PreferTags       []string `bson:"preferTags,omitempty" json:"preferTags,omitempty"`
	DeprioritizeTags []string `bson:"deprioritizeTags,omitempty" json:"deprioritizeTags,omitempty"`
	Reason           string   `bson:"reason" json:"reason"`
}

// ModifiedParameters is the accumulated volume/rest/duration adjustment state
// produced by the rule engine. Percentage reductions combine additively, rate
// multipliers multiplicatively.
type ModifiedParameters struct {
	VolumeReductionPercent  float64 `bson:"volumeReductionPercent" json:"volumeReductionPercent"`
	RestSecondsIncrease     int     `bson:"restSecondsIncrease" json:"restSecondsIncrease"`
	ProgressiveOverloadRate float64 `bson:"progressiveOverloadRate" json:"progressiveOverloadRate"`
	MaxWorkoutMinutes       int     `bson:"maxWorkoutMinutes" json:"maxWorkoutMinutes"` // 0 means unlimited
}

// RequiredCheckpoint is a checkpoint demanded by a fired rule, not yet
// positioned in session time.
type RequiredCheckpoint struct {
	Trigger CheckpointTrigger `bson:"trigger" json:"trigger"`
	Message string            `bson:"message" json:"message"`
}

// AppliedRule records one fired safety rule for audit and metadata.
type AppliedRule struct {
	RuleID   string       `bson:"ruleId" json:"ruleId"`
	Category RuleCategory `bson:"category" json:"category"`
	Message  string       `bson:"message" json:"message"`
}

// SafetyContext is the single object produced by the rule engine per pipeline
// run. It is mutable while the engine evaluates rules and treated as
// immutable by every downstream stage. Exclusions and critical blocks only
// ever accumulate across fired rules, never shrink.
type SafetyContext struct {
	ExcludedExerciseIDs map[string]bool      `json:"excludedExerciseIds"`
	CriticalBlocks      []CriticalBlock      `json:"criticalBlocks"`
	SoftFilters         []SoftFilter         `json:"softFilters"`
	Params              ModifiedParameters   `json:"modifiedParameters"`
	RequiredCheckpoints []RequiredCheckpoint `json:"requiredCheckpoints"`
	RulesApplied        []AppliedRule        `json:"rulesApplied"`
	UserMessages        []string             `json:"userMessages"`
}

// NewSafetyContext returns an empty context with neutral parameters.
func NewSafetyContext() *SafetyContext {
	return &SafetyContext{
		ExcludedExerciseIDs: make(map[string]bool),
		Params: ModifiedParameters{
			ProgressiveOverloadRate: 1.0,
		},
	}
}

// Exclude marks an exercise id as hard-excluded.
func (c *SafetyContext) Exclude(id string) {
	c.ExcludedExerciseIDs[id] = true
}

// IsExcluded reports whether the exercise id is hard-excluded.
func (c *SafetyContext) IsExcluded(id string) bool {
	return c.ExcludedExerciseIDs[id]
}

// AddCheckpoint appends a required checkpoint, deduplicating by trigger so a
// checkpoint demanded by several rules appears once.
func (c *SafetyContext) AddCheckpoint(trigger CheckpointTrigger, message string) {
	for _, cp := range c.RequiredCheckpoints {
		if cp.Trigger == trigger {
			return
		}
	}
	c.RequiredCheckpoints = append(c.RequiredCheckpoints, RequiredCheckpoint{Trigger: trigger, Message: message})
}

// RuleIDs returns the ids of all fired rules in application order.
func (c *SafetyContext) RuleIDs() []string {
	ids := make([]string, len(c.RulesApplied))
	for i, r := range c.RulesApplied {
		ids[i] = r.RuleID
	}
	return ids
}
