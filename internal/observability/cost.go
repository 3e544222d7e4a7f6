package observability

// Pricing constants (USD per 1K tokens)
const (
	tokensPerKilo = 1000.0

	// Groq Llama 3.3 70B pricing
	llama70bInputPrice  = 0.00059
	llama70bOutputPrice = 0.00079

	// Groq Llama 3.1 8B pricing
	llama8bInputPrice  = 0.00005
	llama8bOutputPrice = 0.00008

	// Gemini 2.0 Flash pricing
	geminiFlashInputPrice  = 0.0001
	geminiFlashOutputPrice = 0.0004
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for all models
var PricingTable = map[string]ModelPricing{
	"llama-3.3-70b-versatile": {
		InputPricePer1K:  llama70bInputPrice,
		OutputPricePer1K: llama70bOutputPrice,
	},
	"llama-3.1-8b-instant": {
		InputPricePer1K:  llama8bInputPrice,
		OutputPricePer1K: llama8bOutputPrice,
	},
	"gemini-2.0-flash": {
		InputPricePer1K:  geminiFlashInputPrice,
		OutputPricePer1K: geminiFlashOutputPrice,
	},
}

// CalculateCost calculates the cost in USD for an LLM call. Unknown models
// cost zero; they are still traced, just without pricing.
func CalculateCost(model string, inputTokens, outputTokens int) float64 {
	pricing, ok := PricingTable[model]
	if !ok {
		return 0
	}
	inputCost := float64(inputTokens) / tokensPerKilo * pricing.InputPricePer1K
	outputCost := float64(outputTokens) / tokensPerKilo * pricing.OutputPricePer1K
	return inputCost + outputCost
}
