package routes

import (
	"net/http"

	"studybuddy/handlers"
	"studybuddy/middleware"
	"studybuddy/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Challenge *handlers.ChallengeHandler
	Summary   *handlers.SummaryHandler
	Question  *handlers.QuestionHandler
	Result    *handlers.ResultHandler
	WS        *handlers.WSHandler
}

func SetupRoutes(router *gin.Engine, h *Handlers, guard *services.AccessGuard) {
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(guard))
		{
			protected.GET("/auth/me", h.Auth.Me)
			protected.GET("/users", h.User.ListUsers)

			challenges := protected.Group("/challenges")
			{
				challenges.POST("", h.Challenge.CreateChallenge)
				challenges.GET("", h.Challenge.GetUserChallenges)
				challenges.GET("/:id", h.Challenge.GetChallengeByID)
				challenges.PUT("/:id", h.Challenge.UpdateChallenge)
				challenges.DELETE("/:id", h.Challenge.DeleteChallenge)
			}

			summaries := protected.Group("/summaries")
			{
				summaries.POST("", h.Summary.CreateSummary)
				summaries.GET("", h.Summary.GetUserSummaries)
				summaries.GET("/:id", h.Summary.GetSummaryByID)
				summaries.DELETE("/:id", h.Summary.DeleteSummary)
			}

			questions := protected.Group("/questions")
			{
				questions.POST("", h.Question.CreateQuestion)
				questions.GET("/summary/:summary_id", h.Question.GetSummaryQuestions)
				questions.GET("/:id", h.Question.GetQuestionByID)
				questions.DELETE("/:id", h.Question.DeleteQuestion)
			}

			results := protected.Group("/results")
			{
				results.POST("/submit", h.Result.SubmitAnswers)
				results.GET("", h.Result.GetUserResults)
				results.GET("/summary/:summary_id", h.Result.GetSummaryResults)
				results.GET("/:id", h.Result.GetResultByID)
			}
		}
	}

	// Realtime result notifications; the token travels in the query string.
	router.GET("/ws", h.WS.HandleWebSocket)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "StudyBuddy API"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
