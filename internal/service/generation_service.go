package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"transfit/workout-app/internal/catalog"
	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/generation"
	"transfit/workout-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrGenerationFailed = errors.New("workout generation failed")
)

// --- Service Interface ---
type GenerationService interface {
	Generate(ctx context.Context, userID primitive.ObjectID, dayIndex int) (*domain.AssembledWorkout, error)
	GenerateQuick(ctx context.Context, userID primitive.ObjectID, count int) (*domain.AssembledWorkout, error)
	GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.AssembledWorkout, error)
}

// --- Service Implementation ---

// generationService implements the GenerationService interface. Persistence of
// the workout record and of the audit trail are independent concerns: either
// may fail without failing the generation request.
type generationService struct {
	pipeline    *generation.Pipeline
	profileRepo repository.ProfileRepository
	catalog     *catalog.Cache
	workoutRepo repository.WorkoutRepository
	auditRepo   repository.AuditRepository
	logger      *slog.Logger
}

// NewGenerationService creates a new instance of generationService.
func NewGenerationService(
	pipeline *generation.Pipeline,
	profileRepo repository.ProfileRepository,
	catalogCache *catalog.Cache,
	workoutRepo repository.WorkoutRepository,
	auditRepo repository.AuditRepository,
	logger *slog.Logger,
) GenerationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &generationService{
		pipeline:    pipeline,
		profileRepo: profileRepo,
		catalog:     catalogCache,
		workoutRepo: workoutRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// Generate runs the full template-driven pipeline for the user's stored
// profile and persists the result.
func (s *generationService) Generate(ctx context.Context, userID primitive.ObjectID, dayIndex int) (*domain.AssembledWorkout, error) {
	return s.run(ctx, userID, func(profile domain.Profile, snapshot []domain.Exercise) (domain.AssembledWorkout, *domain.SafetyContext, error) {
		return s.pipeline.Generate(profile, snapshot, dayIndex)
	})
}

// GenerateQuick runs the template-free equipment-balanced path.
func (s *generationService) GenerateQuick(ctx context.Context, userID primitive.ObjectID, count int) (*domain.AssembledWorkout, error) {
	return s.run(ctx, userID, func(profile domain.Profile, snapshot []domain.Exercise) (domain.AssembledWorkout, *domain.SafetyContext, error) {
		return s.pipeline.GenerateQuick(profile, snapshot, count)
	})
}

// GetHistory returns the user's most recent generated workouts.
func (s *generationService) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.AssembledWorkout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	return s.workoutRepo.GetByUserID(ctx, userID, limit)
}

type pipelineRun func(profile domain.Profile, snapshot []domain.Exercise) (domain.AssembledWorkout, *domain.SafetyContext, error)

func (s *generationService) run(ctx context.Context, userID primitive.ObjectID, fn pipelineRun) (*domain.AssembledWorkout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	workout, safety, err := fn(*profile, snapshot)
	if err != nil {
		s.logger.Error("pipeline run failed", "user", userID.Hex(), "error", err)
		return nil, ErrGenerationFailed
	}

	workout.UserID = userID
	runID := uuid.NewString()

	s.persistWorkout(ctx, &workout, runID)
	s.persistAudit(ctx, userID, runID, safety)

	return &workout, nil
}

// persistWorkout saves the workout record. On failure the caller still gets
// the in-memory result, identified by a placeholder uuid.
func (s *generationService) persistWorkout(ctx context.Context, workout *domain.AssembledWorkout, runID string) {
	workout.WorkoutID = runID
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		s.logger.Error("workout persistence failed, returning unsaved result",
			"user", workout.UserID.Hex(), "workoutId", workout.WorkoutID, "error", err)
		workout.WorkoutID = uuid.NewString()
	}
}

// persistAudit writes one audit record per fired safety rule as a single batch.
func (s *generationService) persistAudit(ctx context.Context, userID primitive.ObjectID, runID string, safety *domain.SafetyContext) {
	if safety == nil || len(safety.RulesApplied) == 0 {
		return
	}

	now := time.Now().UTC()
	records := make([]domain.AuditRecord, 0, len(safety.RulesApplied))
	for _, rule := range safety.RulesApplied {
		records = append(records, domain.AuditRecord{
			RunID:         runID,
			UserID:        userID,
			RuleID:        rule.RuleID,
			Category:      rule.Category,
			AppliedAt:     now,
			Parameters:    safety.Params,
			ExcludedCount: len(safety.ExcludedExerciseIDs),
			Context:       rule.Message,
		})
	}

	if err := s.auditRepo.CreateMany(ctx, records); err != nil {
		s.logger.Error("audit trail persistence failed",
			"user", userID.Hex(), "runId", runID, "records", len(records), "error", err)
	}
}
