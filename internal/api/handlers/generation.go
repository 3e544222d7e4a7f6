package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/milomusic/milo-api/internal/logger"
	"github.com/milomusic/milo-api/internal/lyrics"
	"github.com/milomusic/milo-api/internal/metrics"
	"github.com/milomusic/milo-api/internal/models"
	"github.com/milomusic/milo-api/internal/observability"
	"github.com/milomusic/milo-api/internal/session"
	"gorm.io/gorm"
)

// GenerationHandler turns a ready conversation into structured lyrics and
// the music-generation prompt
type GenerationHandler struct {
	manager   *session.Manager
	extractor *lyrics.Extractor
	db        *gorm.DB
	cwMetrics *metrics.Client
}

// NewGenerationHandler creates a new generation handler. db may be nil when
// persistence is not configured.
func NewGenerationHandler(manager *session.Manager, extractor *lyrics.Extractor, db *gorm.DB, cwMetrics *metrics.Client) *GenerationHandler {
	return &GenerationHandler{
		manager:   manager,
		extractor: extractor,
		db:        db,
		cwMetrics: cwMetrics,
	}
}

// Generate runs the full structured-lyrics pipeline for a session:
// readiness gate, schema-constrained extraction, then both deterministic
// renderings. Failures are reported as status strings; the session is left
// intact either way.
func (h *GenerationHandler) Generate(c *gin.Context) {
	sessionID := c.Param("id")
	startTime := time.Now()

	state, err := h.manager.Get(sessionID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	// Readiness gate: do not call the extractor until the assistant has
	// produced something that looks like a verse and a chorus.
	if !lyrics.Ready(state.Conversation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": lyrics.NotReadyMessage})
		return
	}

	trace := observability.GetClient().StartTrace(c.Request.Context(), "generate_lyrics", map[string]interface{}{
		"session_id": sessionID,
		"genre":      state.Genre,
		"mood":       state.Mood,
		"theme":      state.Theme,
	})
	defer trace.Finish()

	generation := trace.Generation("structured_extraction", nil)
	generation.Input(lyrics.SerializeConversation(state.Conversation))

	song, usage, err := h.extractor.Extract(c.Request.Context(), state.Conversation, state.Genre, state.Mood, state.Theme)
	duration := time.Since(startTime)
	if h.cwMetrics != nil {
		h.cwMetrics.RecordGenerationDuration(duration, err == nil)
	}
	if usage.Total > 0 {
		generation.Usage(usage.Model, usage.Input, usage.Output)
		if h.cwMetrics != nil {
			h.cwMetrics.RecordTokenUsage(usage.Model, usage.Total, usage.Input, usage.Output)
		}
	}
	if err != nil {
		sentryMetrics.RecordExtraction(c.Request.Context(), duration, false, 0)
		generation.SetLevel("ERROR")
		generation.Finish()
		logger.Error("Lyrics extraction failed", err, logger.WithContext(c))

		var extractionErr *lyrics.ExtractionError
		if errors.As(err, &extractionErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": extractionErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sentryMetrics.RecordExtraction(c.Request.Context(), duration, true, len(song.Sections))

	display := lyrics.FormatDisplay(song)
	generationPrompt := lyrics.FormatForGeneration(song, state.Genre, state.Mood, state.Theme)

	generation.Output(display)
	generation.Finish()

	h.persistGeneration(c, sessionID, state, song, display, generationPrompt)

	logger.Info("Lyrics generated", logger.Fields{
		"request_id":  c.GetString("request_id"),
		"session_id":  sessionID,
		"title":       song.Title,
		"sections":    len(song.Sections),
		"duration_ms": duration.Milliseconds(),
	})

	c.JSON(http.StatusOK, gin.H{
		"song":              song,
		"lyrics_display":    display,
		"generation_prompt": generationPrompt,
		// Audio synthesis is not implemented; the field is kept for the
		// client contract.
		"music_url": "",
	})
}

// persistGeneration stores the generation record when a database is
// configured. Persistence is a side channel: failures are logged, never
// surfaced to the client.
func (h *GenerationHandler) persistGeneration(
	c *gin.Context,
	sessionID string,
	state session.State,
	song *lyrics.SongStructure,
	display, generationPrompt string,
) {
	if h.db == nil {
		return
	}

	record := &models.MusicGeneration{
		SessionID:        sessionID,
		UserInput:        lyrics.SerializeConversation(state.Conversation),
		GeneratedLyrics:  display,
		GenerationPrompt: generationPrompt,
		Title:            song.Title,
		Genre:            state.Genre,
		Mood:             state.Mood,
		Theme:            state.Theme,
	}
	if err := h.db.Create(record).Error; err != nil {
		logger.Error("Failed to persist generation record", err, logger.WithContext(c))
	}
}
