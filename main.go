package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cvsync/backend/config"
	_ "github.com/cvsync/backend/docs"
	"github.com/cvsync/backend/gemini"
	"github.com/cvsync/backend/handlers"
	"github.com/cvsync/backend/screening"
	"github.com/cvsync/backend/storage"
	"github.com/cvsync/backend/utils"
)

// @title CVSync API
// @version 1.0
// @description AI resume screener: job profiles, PDF resume upload, LLM match grading and a candidate dashboard. No authentication required.

// @contact.name API Support
// @contact.email support@cvsync.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	store, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer store.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize the optional resume archive
	var archiver screening.Archiver
	if cfg.ResumeBucketName != "" {
		log.Println("Initializing Cloud Storage client...")
		archiveClient, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
		}
		defer archiveClient.Close()
		archiver = archiveClient
		log.Println("Cloud Storage client initialized successfully")
	} else {
		log.Println("RESUME_BUCKET_NAME not set, resume archiving disabled")
	}

	// Initialize Gemini client
	log.Println("Initializing Gemini client...")
	llmClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer llmClient.Close()
	log.Println("Gemini client initialized successfully")

	// Wire the screening pipeline
	screener := screening.NewScreener(llmClient, store, utils.NewDocumentExtractor(), archiver, cfg)

	// Create handlers
	profileHandler := handlers.NewProfileHandler(store)
	resumeHandler := handlers.NewResumeHandler(screener, cfg.MaxUploadBytes())

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the dashboard frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/profiles", profileHandler.CreateProfile)
		api.GET("/profiles", profileHandler.ListProfiles)
		api.GET("/profiles/:name", profileHandler.GetProfile)
		api.GET("/profiles/:name/candidates", profileHandler.ListCandidates)

		api.POST("/upload-resume", resumeHandler.UploadResume)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
