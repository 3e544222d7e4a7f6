package prompt

import "fmt"

// Builder builds the prompts for the songwriting assistant
type Builder struct{}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{}
}

// BuildChatSystemPrompt returns the system prompt for the conversational
// refinement loop, parameterized by the session's song settings.
func (b *Builder) BuildChatSystemPrompt(genre, mood, theme string) string {
	return fmt.Sprintf(`You are a creative AI music generator assistant. Help users create song lyrics in the %s genre with a %s mood about %s.
When generating lyrics, create a chorus and at least one verse. Format lyrics clearly with VERSE and CHORUS labels.
Ask if they like the lyrics or want changes. Be conversational, friendly, and creative.
Keep the lyrics appropriate for the selected genre, mood, and theme unless the user specifically requests changes.`, genre, mood, theme)
}

// BuildExtractionPrompt returns the instruction prompt for the
// schema-constrained extraction call. conversationText is the serialized
// conversation ("User: ..." / "Assistant: ..." lines in original order).
func (b *Builder) BuildExtractionPrompt(conversationText, genre, mood, theme string) string {
	return fmt.Sprintf(`Based on the following conversation:

%s

Create song lyrics with these parameters:
- Genre: %s
- Mood: %s
- Theme: %s

Generate a complete song with the following structure:
1. A title
2. At least one verse
3. A chorus
4. Optional bridge
5. Optional outro

The output must follow the exact JSON structure with these section types: VERSE, CHORUS, BRIDGE, OUTRO.
`, conversationText, genre, mood, theme)
}
