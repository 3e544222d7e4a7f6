package lyrics

import (
	"context"
	"errors"
	"testing"

	"github.com/milomusic/milo-api/internal/llm"
	"github.com/milomusic/milo-api/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStructuredProvider returns a canned payload or error and records the
// prompt and schema it was called with
type mockStructuredProvider struct {
	payload string
	usage   llm.TokenUsage
	err     error

	lastPrompt string
	lastSchema *llm.OutputSchema
}

func (m *mockStructuredProvider) GenerateStructured(_ context.Context, prompt string, schema *llm.OutputSchema) (string, llm.TokenUsage, error) {
	m.lastPrompt = prompt
	m.lastSchema = schema
	if m.err != nil {
		return "", llm.TokenUsage{}, m.err
	}
	return m.payload, m.usage, nil
}

func (m *mockStructuredProvider) Name() string { return "mock" }

func testConversation() []session.Turn {
	return []session.Turn{
		{Role: session.RoleUser, Content: "I want a song about driving at night"},
		{Role: session.RoleAssistant, Content: "Here's a verse and a chorus for you..."},
	}
}

func TestSerializeConversation(t *testing.T) {
	serialized := SerializeConversation(testConversation())
	assert.Equal(t, "User: I want a song about driving at night\nAssistant: Here's a verse and a chorus for you...", serialized)

	assert.Equal(t, "", SerializeConversation(nil))
}

func TestExtractSuccess(t *testing.T) {
	provider := &mockStructuredProvider{
		payload: `{
			"title": "Midnight Drive",
			"sections": [
				{"section_type": "VERSE", "content": "Headlights on the highway"},
				{"section_type": "CHORUS", "content": "We keep driving"},
				{"section_type": "BRIDGE", "content": "Dawn is coming"}
			]
		}`,
		usage: llm.TokenUsage{Model: "gemini-2.0-flash", Input: 200, Output: 80, Total: 280},
	}
	extractor := NewExtractor(provider)

	song, usage, err := extractor.Extract(context.Background(), testConversation(), "pop", "upbeat", "love")
	require.NoError(t, err)
	require.NotNil(t, song)

	// Provider usage is passed through untouched
	assert.Equal(t, provider.usage, usage)

	assert.Equal(t, "Midnight Drive", song.Title)
	require.Len(t, song.Sections, 3)

	// Section order from the payload is preserved exactly
	assert.Equal(t, SectionVerse, song.Sections[0].SectionType)
	assert.Equal(t, SectionChorus, song.Sections[1].SectionType)
	assert.Equal(t, SectionBridge, song.Sections[2].SectionType)
	assert.Equal(t, "Headlights on the highway", song.Sections[0].Content)

	// The extraction prompt carries the serialized conversation and the
	// song parameters
	assert.Contains(t, provider.lastPrompt, "User: I want a song about driving at night")
	assert.Contains(t, provider.lastPrompt, "pop")
	assert.Contains(t, provider.lastPrompt, "upbeat")
	assert.Contains(t, provider.lastPrompt, "love")

	require.NotNil(t, provider.lastSchema)
	assert.Equal(t, "SongStructure", provider.lastSchema.Name)
}

func TestExtractProviderError(t *testing.T) {
	cause := errors.New("rate limited")
	extractor := NewExtractor(&mockStructuredProvider{err: cause})

	song, _, err := extractor.Extract(context.Background(), testConversation(), "pop", "upbeat", "love")
	assert.Nil(t, song)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "generation call failed", extractionErr.Reason)
	assert.ErrorIs(t, err, cause)
}

func TestExtractValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		reason  string
	}{
		{
			name:    "empty response",
			payload: "   ",
			reason:  "empty response from model",
		},
		{
			name:    "malformed JSON",
			payload: `{"title": "Broken"`,
			reason:  "malformed payload",
		},
		{
			name:    "missing title",
			payload: `{"sections": [{"section_type": "VERSE", "content": "line"}]}`,
			reason:  "missing required field: title",
		},
		{
			name:    "missing sections",
			payload: `{"title": "No Body"}`,
			reason:  "missing required field: sections",
		},
		{
			name:    "missing section type",
			payload: `{"title": "Song", "sections": [{"content": "line"}]}`,
			reason:  "missing required field: section_type",
		},
		{
			name:    "missing content",
			payload: `{"title": "Song", "sections": [{"section_type": "VERSE"}]}`,
			reason:  "missing required field: content",
		},
		{
			name:    "unknown section type",
			payload: `{"title": "Song", "sections": [{"section_type": "HOOK", "content": "line"}]}`,
			reason:  "invalid section type",
		},
		{
			name:    "empty sections array",
			payload: `{"title": "Song", "sections": []}`,
			reason:  "invalid song structure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewExtractor(&mockStructuredProvider{payload: tt.payload})

			song, _, err := extractor.Extract(context.Background(), testConversation(), "pop", "upbeat", "love")
			assert.Nil(t, song)
			require.Error(t, err)

			var extractionErr *ExtractionError
			require.ErrorAs(t, err, &extractionErr)
			assert.Equal(t, tt.reason, extractionErr.Reason)
		})
	}
}
