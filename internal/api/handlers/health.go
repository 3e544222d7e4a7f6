package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milomusic/milo-api/internal/config"
)

// HealthHandler reports service health and which features are configured
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	featureStatus := func(configured bool) string {
		if configured {
			return "enabled"
		}
		return "disabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"features": gin.H{
			"transcription": featureStatus(h.cfg.GroqAPIKey != ""),
			"chat":          featureStatus(h.cfg.GroqAPIKey != ""),
			"extraction":    featureStatus(h.cfg.GeminiAPIKey != ""),
			"persistence":   featureStatus(h.cfg.DatabaseURL != ""),
		},
	})
}
