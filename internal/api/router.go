package api

import (
	"github.com/gin-gonic/gin"
	"github.com/milomusic/milo-api/internal/api/handlers"
	apimiddleware "github.com/milomusic/milo-api/internal/api/middleware"
	"github.com/milomusic/milo-api/internal/config"
	"github.com/milomusic/milo-api/internal/conversation"
	"github.com/milomusic/milo-api/internal/lyrics"
	"github.com/milomusic/milo-api/internal/metrics"
	"github.com/milomusic/milo-api/internal/session"
	"gorm.io/gorm"
)

// Dependencies carries the wired collaborators the router needs. db and
// cwMetrics may be nil when the corresponding feature is not configured.
type Dependencies struct {
	DB        *gorm.DB
	Adapter   *conversation.Adapter
	Extractor *lyrics.Extractor
	CWMetrics *metrics.Client
}

// SetupRouter wires middleware, handlers and routes
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking, structured logging and request metrics
	router.Use(apimiddleware.RequestTracking(deps.CWMetrics))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	manager := session.NewManager()
	sessionHandler := handlers.NewSessionHandler(manager)
	audioHandler := handlers.NewAudioHandler(manager, deps.Adapter, deps.CWMetrics)
	generationHandler := handlers.NewGenerationHandler(manager, deps.Extractor, deps.DB, deps.CWMetrics)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sessions", sessionHandler.Create)
		v1.GET("/sessions/:id", sessionHandler.Get)
		v1.PUT("/sessions/:id/settings", sessionHandler.UpdateSettings)
		v1.POST("/sessions/:id/stop", sessionHandler.Stop)
		v1.POST("/sessions/:id/reset", sessionHandler.Reset)
		v1.DELETE("/sessions/:id", sessionHandler.Delete)

		v1.POST("/sessions/:id/audio", audioHandler.PostAudio)
		v1.POST("/sessions/:id/messages", audioHandler.PostMessage)
		v1.POST("/sessions/:id/generate", generationHandler.Generate)
	}

	return router
}
