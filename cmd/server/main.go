package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/config"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/handlers"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/middleware"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/push"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize Firebase
	if err := config.InitFirebase(); err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer config.CloseFirebase()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Document store and repositories
	docStore := store.NewFirestoreStore(config.FirestoreClient)
	userRepo := repository.NewUserRepository(docStore)
	activityRepo := repository.NewActivityRepository(docStore)
	participantRepo := repository.NewParticipantRepository(docStore)
	requestRepo := repository.NewRequestRepository(docStore)
	scheduledRepo := repository.NewScheduledRepository(docStore)

	// Services
	sender := push.NewFCMSender(config.MessagingClient)
	tokenStore := services.NewTokenStore(30 * 24 * time.Hour)
	authService := services.NewAuthService(userRepo, tokenStore)
	activityService := services.NewActivityService(activityRepo)
	rosterService := services.NewRosterService(participantRepo, activityRepo)
	scheduledService := services.NewScheduledService(scheduledRepo)
	requestService := services.NewRequestService(requestRepo, activityRepo, userRepo, rosterService, scheduledService, sender)
	playerService := services.NewPlayerService(userRepo, activityRepo)

	// Background reminder dispatcher
	reminderService := services.NewReminderService(scheduledRepo, userRepo, sender, time.Minute)
	go reminderService.Start(context.Background())

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.CORS())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityService, rosterService)
	requestHandler := handlers.NewRequestHandler(requestService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	scheduledHandler := handlers.NewScheduledHandler(scheduledService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Sport Link API is running",
		})
	})

	// API routes group
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			// Protected routes
			authProtected := auth.Group("")
			authProtected.Use(middleware.AuthMiddleware(tokenStore))
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.POST("/refresh-token", authHandler.RefreshToken)
				authProtected.POST("/update-push-token", authHandler.UpdatePushToken)
				authProtected.GET("/profile", authHandler.GetProfile)
				authProtected.GET("/onboarding-status", authHandler.OnboardingStatus)
				authProtected.PUT("/onboarding", authHandler.CompleteOnboarding)
				authProtected.PUT("/location", authHandler.UpdateLocation)
			}
		}

		// Activity routes (protected)
		activities := api.Group("/activities")
		activities.Use(middleware.AuthMiddleware(tokenStore))
		{
			activities.POST("", activityHandler.Create)
			activities.GET("/nearby", activityHandler.Nearby)
			activities.GET("/mine", activityHandler.Mine)
			activities.GET("/:activityId", activityHandler.GetByID)
			activities.GET("/:activityId/participants", activityHandler.Participants)
		}

		// Join request routes (protected)
		requests := api.Group("/requests")
		requests.Use(middleware.AuthMiddleware(tokenStore))
		{
			requests.POST("", requestHandler.Create)
			requests.GET("", requestHandler.List)
			requests.POST("/accept", requestHandler.Accept)
			requests.POST("/decline", requestHandler.Decline)
		}

		// Nearby player search (protected)
		players := api.Group("/players")
		players.Use(middleware.AuthMiddleware(tokenStore))
		{
			players.GET("/nearby", playerHandler.Nearby)
		}

		// Scheduled activity routes (protected)
		scheduled := api.Group("/scheduled")
		scheduled.Use(middleware.AuthMiddleware(tokenStore))
		{
			scheduled.GET("/mine", scheduledHandler.Mine)
		}
	}

	// Start server
	log.Printf("🚀 Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
