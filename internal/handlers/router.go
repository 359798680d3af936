package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/constants"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Household   *HouseholdHandler
	User        *UserHandler
	Lesson      *LessonHandler
	Completion  *CompletionHandler
	Leaderboard *LeaderboardHandler
}

// RegisterRoutes mounts the API route table on the engine.
func RegisterRoutes(r *gin.Engine, h Handlers, tokens *auth.TokenService, limiter *middleware.RateLimiter) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public, rate-limited)
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.RateLimit(limiter, constants.AuthRateLimit, constants.AuthRateWindow))
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/join", h.Auth.Join)
			authGroup.POST("/login", h.Auth.Login)
		}

		// Everything below acts within the authenticated household scope
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens))
		{
			protected.GET("/household", h.Household.Get)
			protected.PUT("/household", middleware.RequireParent(), h.Household.Update)

			protected.GET("/users", h.User.List)
			protected.GET("/users/:id", h.User.Get)
			protected.PUT("/users/:id", h.User.Update)

			protected.GET("/lessons", h.Lesson.List)
			protected.POST("/lessons", middleware.RequireParent(), h.Lesson.Create)
			protected.PUT("/lessons/:id", middleware.RequireParent(), h.Lesson.Update)
			protected.DELETE("/lessons/:id", middleware.RequireParent(), h.Lesson.Deactivate)
			protected.POST("/lessons/:id/complete", h.Completion.Complete)

			protected.GET("/completed-lessons", h.Completion.List)
			protected.PUT("/completed-lessons/:id/approve", middleware.RequireParent(), h.Completion.Approve)
			protected.PUT("/completed-lessons/:id/reject", middleware.RequireParent(), h.Completion.Reject)

			protected.GET("/leaderboard", h.Leaderboard.Leaderboard)
		}
	}
}
