package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildChatSystemPrompt(t *testing.T) {
	b := NewPromptBuilder()

	prompt := b.BuildChatSystemPrompt("jazz", "chill", "reflection")

	assert.Contains(t, prompt, "jazz genre")
	assert.Contains(t, prompt, "chill mood")
	assert.Contains(t, prompt, "about reflection")
	assert.Contains(t, prompt, "VERSE and CHORUS labels")
}

func TestBuildExtractionPrompt(t *testing.T) {
	b := NewPromptBuilder()

	conversation := "User: a rainy day song\nAssistant: Here's a verse..."
	prompt := b.BuildExtractionPrompt(conversation, "pop", "sad", "breakup")

	assert.Contains(t, prompt, conversation)
	assert.Contains(t, prompt, "- Genre: pop")
	assert.Contains(t, prompt, "- Mood: sad")
	assert.Contains(t, prompt, "- Theme: breakup")
	assert.Contains(t, prompt, "VERSE, CHORUS, BRIDGE, OUTRO")
}
