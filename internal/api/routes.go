package api

import (
	"net/http"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	catalogService service.CatalogService,
	generationService service.GenerationService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	catalogHandler := NewCatalogHandler(catalogService)
	workoutHandler := NewWorkoutHandler(generationService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Profile Routes ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpsertProfile)

		// --- Catalog Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", catalogHandler.ListExercises)
			exerciseGroup.GET("/:id/media-url", catalogHandler.GetMediaURL)

			// Catalog curation is restricted to admins.
			exerciseGroup.POST("", RoleMiddleware(domain.RoleAdmin), catalogHandler.IngestExercise)
		}

		// --- Workout Generation Routes ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("/generate", workoutHandler.GenerateWorkout)
			workoutGroup.POST("/quick", workoutHandler.GenerateQuickWorkout)
			workoutGroup.GET("", workoutHandler.GetHistory)
		}
	}
}
