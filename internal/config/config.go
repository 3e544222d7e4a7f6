package config

import "os"

// Default model identifiers, overridable via environment
const (
	defaultChatModel    = "llama-3.3-70b-versatile"
	defaultWhisperModel = "whisper-large-v3-turbo"
	defaultGeminiModel  = "gemini-2.0-flash"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM API Keys
	GroqAPIKey   string // Groq API key for Whisper transcription and chat completions
	GeminiAPIKey string // Google Gemini API key for structured lyrics extraction

	// Model selection
	ChatModel    string
	WhisperModel string
	GeminiModel  string

	// Persistence (optional; generation records are skipped when unset)
	DatabaseURL string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		ChatModel:         getEnv("CHAT_MODEL", defaultChatModel),
		WhisperModel:      getEnv("WHISPER_MODEL", defaultWhisperModel),
		GeminiModel:       getEnv("GEMINI_MODEL", defaultGeminiModel),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
