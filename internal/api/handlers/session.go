package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milomusic/milo-api/internal/session"
)

// SessionHandler manages the lifecycle of songwriting sessions
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// SettingsRequest carries a partial update of the song parameters
type SettingsRequest struct {
	Genre string `json:"genre"`
	Mood  string `json:"mood"`
	Theme string `json:"theme"`
}

// Create starts a new session with default parameters
func (h *SessionHandler) Create(c *gin.Context) {
	id, state := h.manager.Create()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"state":      state,
		"options": gin.H{
			"genres": session.Genres,
			"moods":  session.Moods,
			"themes": session.Themes,
		},
	})
}

// Get returns the current session state including the conversation
func (h *SessionHandler) Get(c *gin.Context) {
	state, err := h.manager.Get(c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// UpdateSettings changes the session's genre, mood and theme. Each value
// must come from the fixed option set; empty fields are left unchanged.
func (h *SessionHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Genre != "" && !session.ValidGenre(req.Genre) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre"})
		return
	}
	if req.Mood != "" && !session.ValidMood(req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mood"})
		return
	}
	if req.Theme != "" && !session.ValidTheme(req.Theme) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid theme"})
		return
	}

	state, err := h.manager.Dispatch(c.Param("id"), session.SettingsChanged{
		Genre: req.Genre,
		Mood:  req.Mood,
		Theme: req.Theme,
	})
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// Stop marks the session's recording as ended. The conversation stays
// available for generation.
func (h *SessionHandler) Stop(c *gin.Context) {
	state, err := h.manager.Dispatch(c.Param("id"), session.Stopped{})
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// Reset discards the conversation and settings and starts a new song
func (h *SessionHandler) Reset(c *gin.Context) {
	state, err := h.manager.Dispatch(c.Param("id"), session.Reset{})
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// Delete ends the session and discards its state
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.manager.Delete(c.Param("id")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
