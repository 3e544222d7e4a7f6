package lyrics

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/milomusic/milo-api/internal/llm"
	"github.com/milomusic/milo-api/internal/prompt"
	"github.com/milomusic/milo-api/internal/session"
)

// Extractor turns a free-form songwriting conversation into a validated
// SongStructure via a schema-constrained generation call.
type Extractor struct {
	provider llm.StructuredProvider
	prompts  *prompt.Builder
}

// NewExtractor creates an extractor backed by the given structured provider
func NewExtractor(provider llm.StructuredProvider) *Extractor {
	return &Extractor{
		provider: provider,
		prompts:  prompt.NewPromptBuilder(),
	}
}

// SerializeConversation renders the conversation as "User: ..." and
// "Assistant: ..." lines joined by newlines, preserving order.
func SerializeConversation(conversation []session.Turn) string {
	lines := make([]string, 0, len(conversation))
	for _, turn := range conversation {
		speaker := "Assistant"
		if turn.Role == session.RoleUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+turn.Content)
	}
	return strings.Join(lines, "\n")
}

// rawSong mirrors the provider payload with pointer fields so missing keys
// are distinguishable from empty values.
type rawSong struct {
	Title    *string       `json:"title"`
	Sections *[]rawSection `json:"sections"`
}

type rawSection struct {
	SectionType *string `json:"section_type"`
	Content     *string `json:"content"`
}

// Extract sends the conversation and song parameters to the structured
// provider and validates the returned payload into a SongStructure, passing
// through the provider's token usage for the caller's tracing.
// Validation is all-or-nothing: any failure returns an ExtractionError and
// no partial structure. Nothing is retried.
func (e *Extractor) Extract(ctx context.Context, conversation []session.Turn, genre, mood, theme string) (*SongStructure, llm.TokenUsage, error) {
	startTime := time.Now()

	conversationText := SerializeConversation(conversation)
	instruction := e.prompts.BuildExtractionPrompt(conversationText, genre, mood, theme)

	schema := &llm.OutputSchema{
		Name:        "SongStructure",
		Description: "A song title with ordered, typed lyrics sections",
		Schema:      llm.GetSongStructureSchema(),
	}

	payload, usage, err := e.provider.GenerateStructured(ctx, instruction, schema)
	if err != nil {
		return nil, usage, newExtractionError("generation call failed", err)
	}

	song, err := parseSongPayload(payload)
	if err != nil {
		return nil, usage, err
	}

	log.Printf("✅ LYRICS EXTRACTION COMPLETED in %v (title: %q, sections: %d)",
		time.Since(startTime), song.Title, len(song.Sections))
	return song, usage, nil
}

// parseSongPayload decodes and validates the raw JSON payload
func parseSongPayload(payload string) (*SongStructure, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, newExtractionError("empty response from model", nil)
	}

	var raw rawSong
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, newExtractionError("malformed payload", err)
	}

	if raw.Title == nil {
		return nil, newExtractionError("missing required field: title", nil)
	}
	if raw.Sections == nil {
		return nil, newExtractionError("missing required field: sections", nil)
	}

	sections := make([]LyricsSection, 0, len(*raw.Sections))
	for _, rs := range *raw.Sections {
		if rs.SectionType == nil {
			return nil, newExtractionError("missing required field: section_type", nil)
		}
		if rs.Content == nil {
			return nil, newExtractionError("missing required field: content", nil)
		}
		sectionType, err := ParseSectionType(*rs.SectionType)
		if err != nil {
			return nil, newExtractionError("invalid section type", err)
		}
		sections = append(sections, LyricsSection{
			SectionType: sectionType,
			Content:     *rs.Content,
		})
	}

	song := &SongStructure{
		Title:    *raw.Title,
		Sections: sections,
	}
	if err := song.Validate(); err != nil {
		return nil, newExtractionError("invalid song structure", err)
	}
	return song, nil
}
