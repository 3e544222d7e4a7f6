package conversation

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/milomusic/milo-api/internal/llm"
	"github.com/milomusic/milo-api/internal/prompt"
	"github.com/milomusic/milo-api/internal/session"
)

const (
	// NoSpeechThreshold is the no-speech probability above which a
	// transcription is discarded as silence. Exactly 0.7 still passes.
	NoSpeechThreshold = 0.7

	// TranscriptionErrorMessage is the fixed user-visible text substituted
	// for a failed transcription. It is appended as an ordinary user turn,
	// never raised to the caller.
	TranscriptionErrorMessage = "Error in audio transcription."
)

// FilterTranscript applies the no-speech gate to a transcription result.
// It returns the trimmed transcript and true when speech was detected, or
// "" and false for silence, a result without segments, or a transcript that
// is empty after trimming.
func FilterTranscript(result *llm.TranscriptionResult) (string, bool) {
	if result == nil || len(result.Segments) == 0 {
		return "", false
	}

	noSpeechProb := result.NoSpeechProb()
	log.Printf("🎤 No speech prob: %.3f", noSpeechProb)

	if noSpeechProb > NoSpeechThreshold {
		log.Printf("🔇 No speech detected, discarding transcription")
		return "", false
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		log.Printf("🔇 Empty transcript, discarding transcription")
		return "", false
	}
	return text, true
}

// Adapter runs one conversation round: transcription (optional), user turn,
// assistant turn. External-call failures degrade to inline conversation
// text; the adapter never returns an error to its caller.
type Adapter struct {
	transcriber llm.Transcriber
	chat        llm.ChatProvider
	prompts     *prompt.Builder
}

// NewAdapter creates an adapter over the given providers
func NewAdapter(transcriber llm.Transcriber, chat llm.ChatProvider) *Adapter {
	return &Adapter{
		transcriber: transcriber,
		chat:        chat,
		prompts:     prompt.NewPromptBuilder(),
	}
}

// RespondToAudio transcribes the audio and, when speech was detected, runs a
// chat round. It returns the session events to apply; an empty slice means
// the audio was silence and the conversation is unchanged.
func (a *Adapter) RespondToAudio(ctx context.Context, state session.State, audio io.Reader, filename string) []session.Event {
	result, err := a.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		log.Printf("⚠️  Transcription failed, degrading to error turn: %v", err)
		return a.chatRound(ctx, state, TranscriptionErrorMessage)
	}

	text, ok := FilterTranscript(result)
	if !ok {
		return nil
	}
	return a.chatRound(ctx, state, text)
}

// RespondToText runs a chat round for a typed user message
func (a *Adapter) RespondToText(ctx context.Context, state session.State, text string) []session.Event {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return a.chatRound(ctx, state, trimmed)
}

// chatRound appends the user turn, asks the chat provider for the next
// assistant turn, and appends it. A chat failure becomes an inline
// assistant message carrying the error text.
func (a *Adapter) chatRound(ctx context.Context, state session.State, userText string) []session.Event {
	userEvent := session.TurnAppended{Role: session.RoleUser, Content: userText}
	withUser := session.Apply(state, userEvent)

	systemPrompt := a.prompts.BuildChatSystemPrompt(state.Genre, state.Mood, state.Theme)
	messages := toMessages(withUser.Conversation)

	assistantText, err := a.chat.Complete(ctx, systemPrompt, messages)
	if err != nil {
		log.Printf("⚠️  Chat completion failed, degrading to inline error: %v", err)
		assistantText = "Error in generating chat completion: " + err.Error()
	}

	return []session.Event{
		userEvent,
		session.TurnAppended{Role: session.RoleAssistant, Content: assistantText},
	}
}

func toMessages(conversation []session.Turn) []llm.Message {
	messages := make([]llm.Message, 0, len(conversation))
	for _, turn := range conversation {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	return messages
}
