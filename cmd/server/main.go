package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"audioscribe/internal/ai"
	"audioscribe/internal/api"
	"audioscribe/internal/asr"
	"audioscribe/internal/audio"
	"audioscribe/internal/config"
	"audioscribe/internal/pipeline"
	"audioscribe/internal/report"
	"audioscribe/internal/storage"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration; missing credentials fail fast here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	normalizer, err := audio.NewNormalizer(cfg.WorkDir)
	if err != nil {
		log.Fatalf("Failed to initialize audio normalizer: %v", err)
	}

	recognizer, err := asr.CreateProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to create STT provider: %v", err)
	}
	log.Printf("STT provider initialized: %s", recognizer.Name())

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize recording store: %v", err)
	}

	translator := ai.NewTranslator(cfg)
	reporter := report.NewGenerator(cfg.ReportDir)
	pipe := pipeline.New(normalizer, recognizer, translator, reporter)

	r := gin.Default()

	// Add CORS middleware for browser clients
	r.Use(corsMiddleware())

	// Register routes
	api.RegisterRoutes(r, api.NewHandlers(pipe, store, cfg.ReportDir))

	log.Printf("audioscribe backend running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
