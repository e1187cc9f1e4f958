package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	// Initialize MongoDB connection
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter(authConfig *config.AuthConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	// Initialize repositories
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	profileInfoRepo := repository.GetProfileInfoRepo(utils.MongoClient)
	activityLogRepo := repository.GetActivityLogRepo(utils.MongoClient)

	// Initialize services
	notesService := &usecase.NotesService{
		NotesRepo:       notesRepo,
		ProfileInfoRepo: profileInfoRepo,
		ActivityRepo:    activityLogRepo,
	}
	profileInfoService := &usecase.ProfileInfoService{
		ProfileInfoRepo: profileInfoRepo,
		ActivityRepo:    activityLogRepo,
	}
	activityService := &usecase.ActivityLogService{
		ActivityRepo: activityLogRepo,
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (the login endpoint establishes identity)
	public := router.Group("/api")
	{
		public.POST("/authenticate", func(c *gin.Context) {
			handler.AuthenticateHandler(c, authConfig, activityService)
		})
	}

	// Protected routes (allow-list gate on every request)
	protected := router.Group("/api")
	protected.Use(middleware.AuthGateMiddleware(authConfig))
	{
		protected.GET("/notes/:profile", func(c *gin.Context) {
			handler.GetProfileNotesHandler(c, notesService)
		})
		protected.POST("/notes", func(c *gin.Context) {
			handler.CreateNoteHandler(c, notesService)
		})
		protected.DELETE("/notes/:noteId", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
		protected.POST("/profile-info", func(c *gin.Context) {
			handler.UpdateProfileInfoHandler(c, profileInfoService)
		})
		protected.POST("/log-activity", func(c *gin.Context) {
			handler.LogActivityHandler(c, activityService)
		})
	}

	return router
}

func main() {
	authConfig, err := config.LoadAuthConfig()
	if err != nil {
		log.Fatalf("Failed to load auth config: %v", err)
	}

	// Uniqueness constraint on the profile key
	profileInfoRepo := repository.GetProfileInfoRepo(utils.MongoClient)
	if err := profileInfoRepo.EnsureIndexes(context.Background()); err != nil {
		log.Printf("Warning: could not ensure profile_info indexes: %v", err)
	}

	// Set up router
	router := setupRouter(authConfig)

	// Feed the CPU gauge
	cpuInterval := utils.GetEnvAsDuration("CPU_METRIC_INTERVAL", 15*time.Second)
	go func() {
		for {
			middleware.SystemCPUUsage.Set(utils.GetCPUUsage())
			time.Sleep(cpuInterval)
		}
	}()

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
