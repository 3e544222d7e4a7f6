package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/milomusic/milo-api/internal/conversation"
	"github.com/milomusic/milo-api/internal/logger"
	"github.com/milomusic/milo-api/internal/metrics"
	"github.com/milomusic/milo-api/internal/session"
)

var sentryMetrics = metrics.NewSentryMetrics()

// AudioHandler runs conversation rounds from uploaded audio or typed text
type AudioHandler struct {
	manager   *session.Manager
	adapter   *conversation.Adapter
	cwMetrics *metrics.Client
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(manager *session.Manager, adapter *conversation.Adapter, cwMetrics *metrics.Client) *AudioHandler {
	return &AudioHandler{
		manager:   manager,
		adapter:   adapter,
		cwMetrics: cwMetrics,
	}
}

// MessageRequest carries a typed user message
type MessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostAudio accepts a recorded audio segment (multipart field "audio"),
// optionally updates the song parameters from form fields, transcribes the
// audio and runs one conversation round. Silence leaves the conversation
// unchanged and is not an error.
func (h *AudioHandler) PostAudio(c *gin.Context) {
	sessionID := c.Param("id")
	startTime := time.Now()

	state, err := h.applySettingsFromForm(c, sessionID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing audio file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read audio file"})
		return
	}
	defer func() { _ = file.Close() }()

	events := h.adapter.RespondToAudio(c.Request.Context(), state, file, fileHeader.Filename)
	speechDetected := len(events) > 0
	sentryMetrics.RecordTranscription(c.Request.Context(), time.Since(startTime), speechDetected)
	if h.cwMetrics != nil {
		h.cwMetrics.RecordTranscriptionDuration(time.Since(startTime), speechDetected)
	}

	if !speechDetected {
		logger.Info("No speech detected in audio segment", logger.WithContext(c))
		c.JSON(http.StatusOK, gin.H{
			"speech_detected": false,
			"state":           state,
		})
		return
	}

	updated, err := h.manager.Dispatch(sessionID, events...)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"speech_detected": true,
		"state":           updated,
	})
}

// PostMessage runs one conversation round for a typed user message
func (h *AudioHandler) PostMessage(c *gin.Context) {
	sessionID := c.Param("id")

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.manager.Get(sessionID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	events := h.adapter.RespondToText(c.Request.Context(), state, req.Content)
	if len(events) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		return
	}

	updated, err := h.manager.Dispatch(sessionID, events...)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": updated})
}

// applySettingsFromForm updates genre/mood/theme from optional multipart
// fields, mirroring the recording UI sending its dropdown values along with
// each audio segment.
func (h *AudioHandler) applySettingsFromForm(c *gin.Context, sessionID string) (session.State, error) {
	genre := c.PostForm("genre")
	mood := c.PostForm("mood")
	theme := c.PostForm("theme")

	if genre == "" && mood == "" && theme == "" {
		return h.manager.Get(sessionID)
	}

	// Unknown values are dropped rather than rejected: the audio round is
	// the point of this request, not the settings piggybacking on it.
	if !session.ValidGenre(genre) {
		genre = ""
	}
	if !session.ValidMood(mood) {
		mood = ""
	}
	if !session.ValidTheme(theme) {
		theme = ""
	}
	return h.manager.Dispatch(sessionID, session.SettingsChanged{
		Genre: genre,
		Mood:  mood,
		Theme: theme,
	})
}
