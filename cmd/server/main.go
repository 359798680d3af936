package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/config"
	"github.com/tsubaki-dev/lesson-points-api/internal/database"
	"github.com/tsubaki-dev/lesson-points-api/internal/handlers"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	householdRepo := repository.NewHouseholdRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	// Services
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(householdRepo, memberRepo, tokens)
	householdService := services.NewHouseholdService(householdRepo)
	memberService := services.NewMemberService(memberRepo)
	lessonService := services.NewLessonService(lessonRepo)
	completionService := services.NewCompletionService(completionRepo, lessonRepo)
	leaderboardService := services.NewLeaderboardService(memberRepo)

	// Router
	r := gin.Default()
	limiter := middleware.NewRateLimiter()

	handlers.RegisterRoutes(r, handlers.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Household:   handlers.NewHouseholdHandler(householdService),
		User:        handlers.NewUserHandler(memberService),
		Lesson:      handlers.NewLessonHandler(lessonService),
		Completion:  handlers.NewCompletionHandler(completionService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
	}, tokens, limiter)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
