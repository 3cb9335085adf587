package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"transfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 20

// WorkoutHandler holds the generation service dependency.
type WorkoutHandler struct {
	generationService service.GenerationService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(generationService service.GenerationService) *WorkoutHandler {
	return &WorkoutHandler{generationService: generationService}
}

// --- Request/Response Structs ---

type GenerateWorkoutRequest struct {
	DayIndex int `json:"dayIndex" binding:"min=0"`
}

type QuickWorkoutRequest struct {
	Count int `json:"count" binding:"omitempty,min=1,max=10"`
}

// --- Handler Methods ---

// GenerateWorkout runs the full template-driven generation for the caller.
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	var req GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.generationService.Generate(c.Request.Context(), userID, req.DayIndex)
	if err != nil {
		h.abortGenerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// GenerateQuickWorkout runs the template-free equipment-balanced generation.
func (h *WorkoutHandler) GenerateQuickWorkout(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	var req QuickWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.generationService.GenerateQuick(c.Request.Context(), userID, req.Count)
	if err != nil {
		h.abortGenerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// GetHistory returns the caller's recent generated workouts.
func (h *WorkoutHandler) GetHistory(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	workouts, err := h.generationService.GetHistory(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout history")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) abortGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		abortWithError(c, http.StatusNotFound, "Create a profile before generating workouts")
	case errors.Is(err, service.ErrGenerationFailed):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during generation")
	}
}
