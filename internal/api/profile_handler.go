package api

import (
	"errors"
	"fmt"
	"net/http"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request/Response Structs ---

// ProfileRequest carries the full profile body on PUT. The user id always
// comes from the token, never from the body.
type ProfileRequest struct {
	GenderIdentity string                `json:"genderIdentity"`
	PrimaryGoal    domain.Goal           `json:"primaryGoal"`
	HRT            domain.HormoneTherapy `json:"hrt"`
	Binding        domain.ChestBinding   `json:"binding"`
	Surgeries      []domain.Surgery      `json:"surgeries"`

	Experience       domain.Experience `json:"experience"`
	WorkoutFrequency int               `json:"workoutFrequency"`
	Equipment        []string          `json:"equipment"`

	BodyFocusPrefer   []string `json:"bodyFocusPrefer"`
	BodyFocusAvoid    []string `json:"bodyFocusAvoid"`
	DysphoriaTriggers []string `json:"dysphoriaTriggers"`
	Constraints       []string `json:"constraints"`
}

func (r *ProfileRequest) toDomain() *domain.Profile {
	return &domain.Profile{
		GenderIdentity:    r.GenderIdentity,
		PrimaryGoal:       r.PrimaryGoal,
		HRT:               r.HRT,
		Binding:           r.Binding,
		Surgeries:         r.Surgeries,
		Experience:        r.Experience,
		WorkoutFrequency:  r.WorkoutFrequency,
		Equipment:         r.Equipment,
		BodyFocusPrefer:   r.BodyFocusPrefer,
		BodyFocusAvoid:    r.BodyFocusAvoid,
		DysphoriaTriggers: r.DysphoriaTriggers,
		Constraints:       r.Constraints,
	}
}

// --- Handler Methods ---

// GetProfile returns the caller's stored profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates or replaces the caller's profile.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.UpsertProfile(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrProfileValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// callerObjectID resolves the authenticated user's ObjectID from the request
// context, aborting the request on failure.
func callerObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Invalid user ID in token")
		return primitive.NilObjectID, false
	}
	return userID, true
}
