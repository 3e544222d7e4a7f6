package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFactoryMissingKeys(t *testing.T) {
	factory := NewProviderFactory("", "", "llama-3.3-70b-versatile", "whisper-large-v3-turbo", "gemini-2.0-flash")

	_, err := factory.GetTranscriber()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")

	_, err = factory.GetChatProvider()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")

	_, err = factory.GetStructuredProvider(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestProviderFactoryGroqProviders(t *testing.T) {
	factory := NewProviderFactory("gsk_test", "", "llama-3.3-70b-versatile", "whisper-large-v3-turbo", "gemini-2.0-flash")

	transcriber, err := factory.GetTranscriber()
	require.NoError(t, err)
	assert.Equal(t, "groq", transcriber.Name())

	chat, err := factory.GetChatProvider()
	require.NoError(t, err)
	assert.Equal(t, "groq", chat.Name())
}
