package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"utsav/internal/auth"
	"utsav/internal/database"
	"utsav/internal/handlers"
	"utsav/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	ctx := context.Background()
	db := database.GetDB()

	// The push dispatcher needs the Firebase service account; refuse to start
	// without it rather than run a sweep that can never deliver
	pushService, err := services.NewPushService(ctx)
	if err != nil {
		log.Fatal("Failed to initialize push service:", err)
	}

	sweeper := services.NewSweeper(
		services.NewReminderService(db),
		services.NewTokenService(db),
		services.NewCatalogService(db),
		pushService,
		services.NewNotificationLogService(db),
	)
	if os.Getenv("SWEEP_DISABLE_TICKER") != "true" {
		sweeper.Start(ctx)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure trusted proxies
	router.SetTrustedProxies([]string{"127.0.0.1"})

	// CORS for the PWA origin(s)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config := cors.DefaultConfig()
		config.AllowOrigins = strings.Split(origins, ",")
		config.AllowHeaders = append(config.AllowHeaders, "Authorization")
		router.Use(cors.New(config))
	}

	// Basic routes
	router.GET("/", handlers.HomeHandler)
	router.GET("/health", handlers.HealthHandler)

	// Auth routes (no auth required)
	router.POST("/auth/login", handlers.Login)

	// Public festival catalog
	router.GET("/festivals", handlers.ListFestivals)
	router.GET("/festivals/:id", handlers.GetFestival)

	// Protected routes (auth required)
	protected := router.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/auth/me", handlers.GetCurrentUser)

		protected.POST("/reminders/toggle", handlers.ToggleReminder)
		protected.GET("/reminders", handlers.ListReminders)
		protected.GET("/reminders/upcoming", handlers.ListUpcomingReminders)
		protected.GET("/reminders/event/:eventId", handlers.GetReminder)

		protected.POST("/push-tokens", handlers.RegisterToken)
		protected.DELETE("/push-tokens", handlers.UnregisterToken)

		protected.POST("/events", handlers.CreateEvent)
		protected.GET("/events", handlers.ListEvents)
		protected.GET("/events/:id", handlers.GetEvent)
		protected.PATCH("/events/:id", handlers.UpdateEvent)
		protected.DELETE("/events/:id", handlers.DeleteEvent)
	}

	// Scheduler trigger endpoints (shared-secret auth)
	admin := handlers.NewAdminHandler(sweeper)
	internal := router.Group("/internal")
	internal.Use(auth.CronAuthMiddleware())
	{
		internal.POST("/sweep", admin.RunSweep)
		internal.POST("/token-cleanup", admin.RunTokenCleanup)
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server starting on port %s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
