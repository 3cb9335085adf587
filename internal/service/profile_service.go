package service

import (
	"context"
	"errors"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileValidation = errors.New("profile validation failed")
)

// --- Service Interface ---
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.Profile, error)
}

// --- Service Implementation ---

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetProfile retrieves the caller's profile.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
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
	return profile, nil
}

// UpsertProfile validates and saves the caller's profile. The pipeline has
// its own normalization pass, so validation here rejects only what a client
// should never send; it does not default anything silently.
func (s *profileService) UpsertProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.Profile, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	profile.UserID = userID
	if _, err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func validateProfile(p *domain.Profile) error {
	if p == nil {
		return ErrProfileValidation
	}
	switch p.PrimaryGoal {
	case domain.GoalFeminization, domain.GoalMasculinization, domain.GoalStrength,
		domain.GoalEndurance, domain.GoalGeneralFitness, "":
	default:
		return ErrProfileValidation
	}
	switch p.Experience {
	case domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced, "":
	default:
		return ErrProfileValidation
	}
	if p.WorkoutFrequency < 0 || p.WorkoutFrequency > 7 {
		return ErrProfileValidation
	}
	if p.HRT.OnHRT && p.HRT.MonthsOnHRT < 0 {
		return ErrProfileValidation
	}
	if p.Binding.BindsChest && (p.Binding.DailyHours < 0 || p.Binding.DailyHours > 24) {
		return ErrProfileValidation
	}
	return nil
}
