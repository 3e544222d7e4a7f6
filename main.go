package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/milomusic/milo-api/internal/api"
	"github.com/milomusic/milo-api/internal/config"
	"github.com/milomusic/milo-api/internal/conversation"
	"github.com/milomusic/milo-api/internal/database"
	"github.com/milomusic/milo-api/internal/llm"
	"github.com/milomusic/milo-api/internal/lyrics"
	"github.com/milomusic/milo-api/internal/metrics"
	"github.com/milomusic/milo-api/internal/observability"
	"gorm.io/gorm"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "milo-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			EnableLogs:       true,
			Debug:            cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	ctx := context.Background()

	// Initialize Langfuse for LLM call tracing
	observability.InitializeLangfuse(ctx, cfg)

	// Build LLM providers. Missing credentials are fatal here: every
	// feature of this service depends on at least one of them.
	factory := llm.NewProviderFactory(cfg.GroqAPIKey, cfg.GeminiAPIKey, cfg.ChatModel, cfg.WhisperModel, cfg.GeminiModel)

	transcriber, err := factory.GetTranscriber()
	if err != nil {
		log.Fatal("Failed to configure transcription: ", err)
	}
	chatProvider, err := factory.GetChatProvider()
	if err != nil {
		log.Fatal("Failed to configure chat completions: ", err)
	}
	structuredProvider, err := factory.GetStructuredProvider(ctx)
	if err != nil {
		log.Fatal("Failed to configure structured generation: ", err)
	}

	// Initialize database (optional)
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to connect to database: ", err)
		}
		if err := database.Migrate(db); err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to run migrations: ", err)
		}
	} else {
		log.Println("⚠️  DATABASE_URL not set, generation records will not be persisted")
	}

	// CloudWatch metrics (no-op outside production)
	cwMetrics, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics unavailable: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(cfg, api.Dependencies{
		DB:        db,
		Adapter:   conversation.NewAdapter(transcriber, chatProvider),
		Extractor: lyrics.NewExtractor(structuredProvider),
		CWMetrics: cwMetrics,
	})

	// Start server
	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server: ", err)
	}
}
