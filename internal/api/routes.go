package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubmanager/internal/domain"
	"clubmanager/internal/service"
)

// SetupRoutes wires all handlers onto the router. Writes to the planner,
// sessions, opponents and exercise catalog require the coach role; staff
// get read access.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	plannerService service.PlannerService,
	sessionService service.SessionService,
	opponentService service.OpponentService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	plannerHandler := NewPlannerHandler(plannerService)
	sessionHandler := NewSessionHandler(sessionService)
	opponentHandler := NewOpponentHandler(opponentService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	authMiddleware := AuthMiddleware(jwtSecret)
	coachOnly := RoleMiddleware(domain.RoleCoach)

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
		// --- Planner Routes ---
		plannerGroup := protected.Group("/planner")
		{
			plannerGroup.GET("/week", plannerHandler.GetWeek)
			plannerGroup.PUT("/day-flag", coachOnly, plannerHandler.SetDayFlag)
			plannerGroup.PUT("/meta", coachOnly, plannerHandler.SetGridMeta)
			plannerGroup.PUT("/exercises", coachOnly, plannerHandler.SaveExercises)
			plannerGroup.POST("/duplicate", coachOnly, plannerHandler.DuplicateWeek)
			plannerGroup.GET("/export", plannerHandler.ExportWeek)
			plannerGroup.POST("/import", coachOnly, plannerHandler.ImportWeek)
			plannerGroup.POST("/resolve-rival", plannerHandler.ResolveRival)
		}

		// --- Raw Session Routes ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.POST("", coachOnly, sessionHandler.CreateSession)
			sessionGroup.GET("", sessionHandler.ListWeek)
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.PUT("/:id", coachOnly, sessionHandler.UpdateSession)
			sessionGroup.DELETE("/:id", coachOnly, sessionHandler.DeleteSession)
		}

		// --- Opponent Registry Routes ---
		opponentGroup := protected.Group("/opponents")
		{
			opponentGroup.POST("", coachOnly, opponentHandler.CreateOpponent)
			opponentGroup.GET("", opponentHandler.ListOpponents)
			opponentGroup.PUT("/:id", coachOnly, opponentHandler.UpdateOpponent)
			opponentGroup.DELETE("/:id", coachOnly, opponentHandler.DeleteOpponent)
			opponentGroup.POST("/:id/crest/upload-url", coachOnly, opponentHandler.RequestCrestUpload)
			opponentGroup.GET("/:id/crest/download-url", opponentHandler.GetCrestDownloadURL)
		}

		// --- Exercise Catalog Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", coachOnly, exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", coachOnly, exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", coachOnly, exerciseHandler.DeleteExercise)
		}
	}
}
