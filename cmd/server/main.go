package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hydrafit/hydra-api/internal/config"
	"github.com/hydrafit/hydra-api/internal/database"
	"github.com/hydrafit/hydra-api/internal/handlers"
	"github.com/hydrafit/hydra-api/internal/middleware"
	"github.com/hydrafit/hydra-api/internal/repository"
	"github.com/hydrafit/hydra-api/internal/services"
	"github.com/hydrafit/hydra-api/internal/token"
)

func main() {
	// Load configuration; a missing signing secret is fatal before anything
	// else starts.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	tokens, err := token.NewService(cfg.JWTSecret, cfg.BaseURL)
	if err != nil {
		logger.Fatal("failed to create token service", zap.Error(err))
	}

	emailSender, err := services.NewSMTPSender(cfg)
	if err != nil {
		logger.Fatal("failed to create email sender", zap.Error(err))
	}

	// Wire repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	teamService := services.NewTeamService(teamRepo)
	inviteService := services.NewInviteService(userRepo, teamRepo, tokens, emailSender, logger)
	exerciseService := services.NewExerciseService(exerciseRepo)
	workoutService := services.NewWorkoutService(workoutRepo, teamRepo, exerciseRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService, inviteService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Hydra API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(tokens))
		{
			admin.PATCH("/users/:id/role", authHandler.UpdateGlobalRole)
		}

		// Team routes
		teams := api.Group("/teams")
		{
			// Invite routes resolve identity inside the service so that
			// field and role validation precede the identity check.
			teams.POST("/:id/invites", teamHandler.CreateInvite)
			teams.POST("/invite/accept", teamHandler.AcceptInvite)
			teams.POST("/invite/send", teamHandler.SendInvite)

			authed := teams.Group("")
			authed.Use(middleware.RequireAuth(tokens))
			{
				authed.POST("", teamHandler.CreateTeam)
				authed.GET("/main", teamHandler.GetMainTeam)
				authed.GET("/:id", teamHandler.GetTeam)
				authed.GET("/:id/members", teamHandler.ListMembers)
				authed.POST("/:id/workouts", workoutHandler.CreateWorkout)
				authed.GET("/:id/workouts", workoutHandler.ListWorkouts)
			}
		}

		// Exercise routes (protected)
		exercises := api.Group("/exercises")
		exercises.Use(middleware.RequireAuth(tokens))
		{
			exercises.POST("", exerciseHandler.CreateExercise)
			exercises.GET("", exerciseHandler.SearchExercises)
			exercises.GET("/:id", exerciseHandler.GetExercise)
		}

		// Workout routes (protected)
		workouts := api.Group("/workouts")
		workouts.Use(middleware.RequireAuth(tokens))
		{
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
