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

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- Request/Response Structs ---

type MediaURLResponse struct {
	URL string `json:"url"`
}

// IngestExerciseRequest is the admin catalog-curation payload.
type IngestExerciseRequest struct {
	Name       string            `json:"name" binding:"required"`
	Slug       string            `json:"slug"`
	Pattern    domain.Pattern    `json:"pattern" binding:"required"`
	Equipment  []string          `json:"equipment"`
	Difficulty domain.Experience `json:"difficulty"`
	Tags       []string          `json:"tags"`

	BinderAware       bool                 `json:"binderAware"`
	HeavyBindingSafe  bool                 `json:"heavyBindingSafe"`
	PelvicFloorSafe   bool                 `json:"pelvicFloorSafe"`
	Contraindications []string             `json:"contraindications"`
	PressureLevel     domain.PressureLevel `json:"pressureLevel"`

	TargetMuscles    string `json:"targetMuscles"`
	SecondaryMuscles string `json:"secondaryMuscles"`

	GenderEmphasis domain.GenderEmphasis `json:"genderEmphasis"`
	DysphoriaTags  []string              `json:"dysphoriaTags"`

	EarliestSafePhase domain.RecoveryPhase   `json:"earliestSafePhase"`
	RecoveryPhases    []domain.RecoveryPhase `json:"recoveryPhases"`
	ImpactLevel       domain.ImpactLevel     `json:"impactLevel"`

	EffectivenessRating float64 `json:"effectivenessRating"`
	MediaKey            string  `json:"mediaKey"`
}

func (r *IngestExerciseRequest) toDomain() *domain.Exercise {
	return &domain.Exercise{
		Name:                r.Name,
		Slug:                r.Slug,
		Pattern:             r.Pattern,
		Equipment:           r.Equipment,
		Difficulty:          r.Difficulty,
		Tags:                r.Tags,
		BinderAware:         r.BinderAware,
		HeavyBindingSafe:    r.HeavyBindingSafe,
		PelvicFloorSafe:     r.PelvicFloorSafe,
		Contraindications:   r.Contraindications,
		PressureLevel:       r.PressureLevel,
		TargetMuscles:       r.TargetMuscles,
		SecondaryMuscles:    r.SecondaryMuscles,
		GenderEmphasis:      r.GenderEmphasis,
		DysphoriaTags:       r.DysphoriaTags,
		EarliestSafePhase:   r.EarliestSafePhase,
		RecoveryPhases:      r.RecoveryPhases,
		ImpactLevel:         r.ImpactLevel,
		EffectivenessRating: r.EffectivenessRating,
		MediaKey:            r.MediaKey,
	}
}

// --- Handler Methods ---

// ListExercises returns the full exercise catalog.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise catalog")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetMediaURL returns a presigned demo-video URL for one exercise.
func (h *CatalogHandler) GetMediaURL(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	url, err := h.catalogService.GetExerciseMediaURL(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrNoMedia) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate media URL")
		}
		return
	}

	c.JSON(http.StatusOK, MediaURLResponse{URL: url})
}

// IngestExercise adds a curated catalog entry. Admin only via RoleMiddleware.
func (h *CatalogHandler) IngestExercise(c *gin.Context) {
	var req IngestExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.catalogService.IngestExercise(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrExerciseExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrExerciseValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to ingest exercise")
		}
		return
	}

	c.JSON(http.StatusCreated, exercise)
}
