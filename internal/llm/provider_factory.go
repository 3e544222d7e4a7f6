package llm

import (
	"context"
	"fmt"
)

// ProviderFactory creates the configured providers for each collaborator
// role. A missing API key surfaces here as a configuration error, fatal for
// the dependent feature only.
type ProviderFactory struct {
	groqAPIKey   string
	geminiAPIKey string
	chatModel    string
	whisperModel string
	geminiModel  string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(groqAPIKey, geminiAPIKey, chatModel, whisperModel, geminiModel string) *ProviderFactory {
	return &ProviderFactory{
		groqAPIKey:   groqAPIKey,
		geminiAPIKey: geminiAPIKey,
		chatModel:    chatModel,
		whisperModel: whisperModel,
		geminiModel:  geminiModel,
	}
}

// GetTranscriber returns the speech-to-text provider
func (f *ProviderFactory) GetTranscriber() (Transcriber, error) {
	if f.groqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not configured")
	}
	return NewGroqProvider(f.groqAPIKey, f.chatModel, f.whisperModel), nil
}

// GetChatProvider returns the conversational generation provider
func (f *ProviderFactory) GetChatProvider() (ChatProvider, error) {
	if f.groqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not configured")
	}
	return NewGroqProvider(f.groqAPIKey, f.chatModel, f.whisperModel), nil
}

// GetStructuredProvider returns the schema-constrained generation provider
func (f *ProviderFactory) GetStructuredProvider(ctx context.Context) (StructuredProvider, error) {
	if f.geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}
	return NewGeminiProvider(ctx, f.geminiAPIKey, f.geminiModel)
}
