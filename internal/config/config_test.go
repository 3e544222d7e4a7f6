package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("CHAT_MODEL", "")
	t.Setenv("WHISPER_MODEL", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("LANGFUSE_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.ChatModel)
	assert.Equal(t, "whisper-large-v3-turbo", cfg.WhisperModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "https://cloud.langfuse.com", cfg.LangfuseHost)
	assert.False(t, cfg.LangfuseEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("CHAT_MODEL", "llama-3.1-8b-instant")
	t.Setenv("DATABASE_URL", "postgres://localhost/milo")
	t.Setenv("LANGFUSE_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.ChatModel)
	assert.Equal(t, "postgres://localhost/milo", cfg.DatabaseURL)
	assert.True(t, cfg.LangfuseEnabled)
}
