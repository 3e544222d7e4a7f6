package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/milomusic/milo-api/internal/metrics"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
	mimeTypeJSON       = "application/json"
)

// GeminiProvider implements StructuredProvider using Google's Gemini API.
// Gemini enforces the response schema server-side, so the returned text is
// machine-parseable JSON (validation still happens downstream).
type GeminiProvider struct {
	client        *genai.Client
	model         string
	sentryMetrics *metrics.SentryMetrics
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:        client,
		model:         model,
		sentryMetrics: metrics.NewSentryMetrics(),
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// GenerateStructured calls Gemini with a response schema and returns the raw
// JSON text of the first candidate along with the call's token usage.
func (p *GeminiProvider) GenerateStructured(ctx context.Context, prompt string, schema *OutputSchema) (string, TokenUsage, error) {
	startTime := time.Now()
	log.Printf("🎵 GEMINI STRUCTURED REQUEST STARTED (Model: %s)", p.model)

	transaction := sentry.StartTransaction(ctx, "gemini.generate_structured")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("provider", providerNameGemini)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	if schema != nil {
		config.ResponseMIMEType = mimeTypeJSON
		config.ResponseSchema = convertSchemaToGemini(schema.Schema)
	}

	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: prompt}}},
	}

	span := transaction.StartChild("gemini.api_call")
	apiStartTime := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return "", TokenUsage{}, fmt.Errorf("gemini request failed: %w", err)
	}

	log.Printf("⏱️  GEMINI API CALL COMPLETED in %v", apiDuration)

	if len(result.Candidates) == 0 {
		transaction.SetTag("success", "false")
		return "", TokenUsage{}, fmt.Errorf("no candidates in Gemini response")
	}
	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		transaction.SetTag("success", "false")
		return "", TokenUsage{}, fmt.Errorf("no parts in Gemini response")
	}

	textOutput := candidate.Content.Parts[0].Text
	log.Printf("📥 GEMINI RESPONSE: output_length=%d", len(textOutput))

	if textOutput == "" {
		transaction.SetTag("success", "false")
		return "", TokenUsage{}, fmt.Errorf("gemini response did not include any output text")
	}

	usage := TokenUsage{Model: p.model}
	if result.UsageMetadata != nil {
		usage.Input = int(result.UsageMetadata.PromptTokenCount)
		usage.Output = int(result.UsageMetadata.CandidatesTokenCount)
		usage.Total = int(result.UsageMetadata.TotalTokenCount)
		log.Printf("📊 GEMINI USAGE: input=%d, output=%d, total=%d",
			usage.Input, usage.Output, usage.Total)
		p.sentryMetrics.RecordTokenUsage(ctx, p.model, usage.Total, usage.Input, usage.Output)
	}

	transaction.SetTag("success", "true")
	log.Printf("✅ GEMINI STRUCTURED REQUEST COMPLETED in %v", time.Since(startTime))

	return textOutput, usage, nil
}

// convertSchemaToGemini translates a map-form JSON schema into Gemini's
// Schema type. Gemini does not take raw JSON Schema objects, so the type,
// properties, items, enum and required keys are walked recursively; other
// JSON Schema keywords (additionalProperties among them) have no genai
// counterpart and are dropped.
func convertSchemaToGemini(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{}
	switch schema["type"] {
	case "object":
		out.Type = genai.TypeObject
	case "array":
		out.Type = genai.TypeArray
	case "string":
		out.Type = genai.TypeString
	case "number":
		out.Type = genai.TypeNumber
	case "integer":
		out.Type = genai.TypeInteger
	case "boolean":
		out.Type = genai.TypeBoolean
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if subSchema, ok := sub.(map[string]any); ok {
				out.Properties[name] = convertSchemaToGemini(subSchema)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		out.Items = convertSchemaToGemini(items)
	}
	if enum, ok := schema["enum"].([]string); ok {
		out.Enum = enum
	}
	if required, ok := schema["required"].([]string); ok {
		out.Required = required
	}
	return out
}
