package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/milomusic/milo-api/internal/metrics"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	providerNameGroq = "groq"

	// Groq exposes an OpenAI-compatible API surface
	groqBaseURL = "https://api.groq.com/openai/v1"

	// Transcription settings
	transcriptionEndpoint = groqBaseURL + "/audio/transcriptions"
	transcriptionLanguage = "en"
	responseFormatVerbose = "verbose_json"

	// Role constants
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"

	transcriptionTimeout = 60 * time.Second
	maxErrorResponseLen  = 500
)

// GroqProvider implements Transcriber and ChatProvider against Groq's
// OpenAI-compatible API. Chat completions go through the OpenAI SDK;
// transcription uses a raw multipart request because the SDK does not
// surface per-segment no_speech_prob from verbose_json responses.
type GroqProvider struct {
	client        *openai.Client
	httpClient    *http.Client
	apiKey        string
	chatModel     string
	whisperModel  string
	sentryMetrics *metrics.SentryMetrics
}

// NewGroqProvider creates a new Groq provider
func NewGroqProvider(apiKey, chatModel, whisperModel string) *GroqProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqProvider{
		client:        &client,
		httpClient:    &http.Client{Timeout: transcriptionTimeout},
		apiKey:        apiKey,
		chatModel:     chatModel,
		whisperModel:  whisperModel,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// Name returns the provider name
func (p *GroqProvider) Name() string {
	return providerNameGroq
}

// Complete sends the conversation to Groq's chat completions API and returns
// the assistant message content.
func (p *GroqProvider) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	startTime := time.Now()
	log.Printf("🎤 GROQ CHAT COMPLETION STARTED (Model: %s, turns: %d)", p.chatModel, len(messages))

	transaction := sentry.StartTransaction(ctx, "groq.chat_completion")
	defer transaction.Finish()

	transaction.SetTag("model", p.chatModel)
	transaction.SetTag("provider", providerNameGroq)

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.chatModel),
		Messages: buildChatMessages(systemPrompt, messages),
	}

	span := transaction.StartChild("groq.api_call")
	apiStartTime := time.Now()
	completion, err := p.client.Chat.Completions.New(ctx, params)
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ GROQ CHAT REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return "", fmt.Errorf("groq chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		transaction.SetTag("success", "false")
		return "", fmt.Errorf("no choices in groq chat response")
	}

	content := completion.Choices[0].Message.Content
	log.Printf("✅ GROQ CHAT COMPLETION finished in %v (output: %d chars, tokens: %d)",
		time.Since(startTime), len(content), completion.Usage.TotalTokens)

	p.sentryMetrics.RecordTokenUsage(ctx, p.chatModel,
		int(completion.Usage.TotalTokens),
		int(completion.Usage.PromptTokens),
		int(completion.Usage.CompletionTokens))

	transaction.SetTag("success", "true")
	return content, nil
}

// buildChatMessages converts role-tagged messages to SDK message params,
// prepending the system prompt.
func buildChatMessages(systemPrompt string, messages []Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	params = append(params, openai.SystemMessage(systemPrompt))

	for _, msg := range messages {
		switch msg.Role {
		case roleAssistant:
			params = append(params, openai.AssistantMessage(msg.Content))
		case roleSystem:
			params = append(params, openai.SystemMessage(msg.Content))
		default:
			params = append(params, openai.UserMessage(msg.Content))
		}
	}
	return params
}

// Transcribe uploads audio to Groq's Whisper endpoint with verbose_json so
// the response carries per-segment no-speech probabilities.
func (p *GroqProvider) Transcribe(ctx context.Context, audio io.Reader, filename string) (*TranscriptionResult, error) {
	startTime := time.Now()
	log.Printf("🎤 GROQ TRANSCRIPTION STARTED (Model: %s, file: %s)", p.whisperModel, filename)

	transaction := sentry.StartTransaction(ctx, "groq.transcribe")
	defer transaction.Finish()

	transaction.SetTag("model", p.whisperModel)
	transaction.SetTag("provider", providerNameGroq)

	body, contentType, err := buildTranscriptionRequestBody(audio, filename, p.whisperModel)
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("failed to build transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, transcriptionEndpoint, body)
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("failed to create transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", contentType)

	span := transaction.StartChild("groq.api_call")
	resp, err := p.httpClient.Do(req)
	span.Finish()

	if err != nil {
		log.Printf("❌ GROQ TRANSCRIPTION FAILED: %v", err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("groq transcription request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("failed to read transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ GROQ TRANSCRIPTION HTTP %d: %s", resp.StatusCode, truncate(string(respBody), maxErrorResponseLen))
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("groq transcription returned status %d", resp.StatusCode)
	}

	var result TranscriptionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("failed to parse transcription response: %w", err)
	}

	log.Printf("✅ GROQ TRANSCRIPTION COMPLETED in %v (text: %d chars, segments: %d, no_speech_prob: %.3f)",
		time.Since(startTime), len(result.Text), len(result.Segments), result.NoSpeechProb())

	transaction.SetTag("success", "true")
	return &result, nil
}

// buildTranscriptionRequestBody assembles the multipart form for the
// verbose_json Whisper request.
func buildTranscriptionRequestBody(audio io.Reader, filename, model string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"model":           model,
		"response_format": responseFormatVerbose,
		"language":        transcriptionLanguage,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
