package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseInstance is one concrete prescription inside a generated session.
type ExerciseInstance struct {
	ExerciseID     string  `bson:"exerciseId" json:"exerciseId"`
	Slug           string  `bson:"slug" json:"slug"`
	Name           string  `bson:"name" json:"name"`
	Pattern        Pattern `bson:"pattern" json:"pattern"`
	Sets           int     `bson:"sets" json:"sets"`
	Reps           int     `bson:"reps" json:"reps"`
	RestSeconds    int     `bson:"restSeconds" json:"restSeconds"`
	Format         string  `bson:"format,omitempty" json:"format,omitempty"` // e.g. "straight_sets"
	WeightGuidance string  `bson:"weightGuidance,omitempty" json:"weightGuidance,omitempty"`
}

// CheckpointPosition is where a positioned checkpoint lands relative to the session.
type CheckpointPosition string

const (
	PositionBefore CheckpointPosition = "before"
	PositionDuring CheckpointPosition = "during"
	PositionAfter  CheckpointPosition = "after"
)

// PositionedCheckpoint is a safety checkpoint anchored in session time.
type PositionedCheckpoint struct {
	Trigger       CheckpointTrigger  `bson:"trigger" json:"trigger"`
	Message       string             `bson:"message" json:"message"`
	Position      CheckpointPosition `bson:"position" json:"position"`
	TimingMinutes int                `bson:"timingMinutes,omitempty" json:"timingMinutes,omitempty"`
}

// WorkoutMetadata describes how a session was generated, for traceability and
// for surfacing shortfalls to the caller instead of hiding them.
type WorkoutMetadata struct {
	TemplateName      string    `bson:"templateName" json:"templateName"`
	Focus             Focus     `bson:"focus" json:"focus"`
	HRTAdjusted       bool      `bson:"hrtAdjusted" json:"hrtAdjusted"`
	AppliedRuleIDs    []string  `bson:"appliedRuleIds,omitempty" json:"appliedRuleIds,omitempty"`
	ExclusionCount    int       `bson:"exclusionCount" json:"exclusionCount"`
	ExerciseShortfall int       `bson:"exerciseShortfall" json:"exerciseShortfall"`
	GeneratedAt       time.Time `bson:"generatedAt" json:"generatedAt"`
}

// AssembledWorkout is the pipeline's final output. It is created once and
// handed to the persistence collaborator; it is never mutated afterwards.
type AssembledWorkout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	WorkoutID string             `bson:"workoutId" json:"id"` // stable id, uuid fallback when unsaved
	UserID    primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`

	Name             string                 `bson:"name" json:"name"`
	Warmup           []string               `bson:"warmup,omitempty" json:"warmup,omitempty"`
	Main             []ExerciseInstance     `bson:"main" json:"main"`
	Cooldown         []string               `bson:"cooldown,omitempty" json:"cooldown,omitempty"`
	Checkpoints      []PositionedCheckpoint `bson:"checkpoints,omitempty" json:"checkpoints,omitempty"`
	UserMessages     []string               `bson:"userMessages,omitempty" json:"userMessages,omitempty"`
	EstimatedMinutes int                    `bson:"estimatedMinutes" json:"estimatedMinutes"`
	Metadata         WorkoutMetadata        `bson:"metadata" json:"metadata"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AuditRecord is one compliance-trail entry per fired safety rule. The audit
// trail is persisted independently of the workout record.
type AuditRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RunID          string             `bson:"runId" json:"runId"` // groups records of one pipeline run
	UserID         primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	RuleID         string             `bson:"ruleId" json:"ruleId"`
	Category       RuleCategory       `bson:"category" json:"category"`
	AppliedAt      time.Time          `bson:"appliedAt" json:"appliedAt"`
	Parameters     ModifiedParameters `bson:"parameters" json:"parameters"`
	ExcludedCount  int                `bson:"excludedCount" json:"excludedCount"`
	Context        string             `bson:"context,omitempty" json:"context,omitempty"`
}
