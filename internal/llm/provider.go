package llm

import (
	"context"
	"io"
)

// Message is a role-tagged chat message sent to a conversational provider
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TranscriptionSegment is one segment of a verbose transcription response
type TranscriptionSegment struct {
	ID           int     `json:"id"`
	Text         string  `json:"text"`
	NoSpeechProb float64 `json:"no_speech_prob"`
}

// TranscriptionResult is the output of a speech-to-text call
type TranscriptionResult struct {
	Text     string                 `json:"text"`
	Segments []TranscriptionSegment `json:"segments"`
}

// NoSpeechProb returns the no-speech probability of the first audio segment,
// or zero when the service returned no segments.
func (r *TranscriptionResult) NoSpeechProb() float64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[0].NoSpeechProb
}

// Transcriber converts recorded audio into text
type Transcriber interface {
	// Transcribe sends mono audio to the speech-to-text service and returns
	// the transcript with per-segment no-speech probabilities
	Transcribe(ctx context.Context, audio io.Reader, filename string) (*TranscriptionResult, error)

	// Name returns the provider name (e.g., "groq")
	Name() string
}

// ChatProvider produces the next assistant message for a conversation
type ChatProvider interface {
	// Complete sends the system prompt plus the ordered conversation history
	// and returns a single assistant message
	Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error)

	// Name returns the provider name (e.g., "groq")
	Name() string
}

// OutputSchema defines the expected JSON output structure for a
// schema-constrained generation call
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// TokenUsage reports the token counts of one model call. A zero value means
// the provider did not return usage metadata.
type TokenUsage struct {
	Model  string
	Input  int
	Output int
	Total  int
}

// StructuredProvider generates JSON text constrained to a schema.
// The provider MUST enforce the schema so responses parse reliably.
type StructuredProvider interface {
	// GenerateStructured sends the prompt and returns raw JSON text
	// conforming to the schema plus the call's token usage, or an error
	GenerateStructured(ctx context.Context, prompt string, schema *OutputSchema) (string, TokenUsage, error)

	// Name returns the provider name (e.g., "gemini")
	Name() string
}
