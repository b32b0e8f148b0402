package translation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ProviderConfig selects and configures a translation provider
type ProviderConfig struct {
	Provider          string // "google", "openai" or "gemini"
	Model             string // model for the LLM providers
	OpenAIKey         string
	GeminiKey         string
	GoogleURL         string
	RequestsPerSecond float64 // 0 disables the cap
	Breaker           *BreakerSettings
	Logger            *zap.Logger
}

// NewProvider creates the configured translator, wrapped with the rate limit
// and circuit breaker
func NewProvider(ctx context.Context, config *ProviderConfig) (Translator, error) {
	if config == nil {
		config = &ProviderConfig{Provider: "google"}
	}

	var base Translator
	switch config.Provider {
	case "google", "":
		base = NewGoogleTranslator(config.GoogleURL)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI %w", ErrMissingAPIKey)
		}
		base = NewOpenAITranslator(config.OpenAIKey, config.Model)
	case "gemini":
		g, err := NewGeminiTranslator(ctx, config.GeminiKey, config.Model)
		if err != nil {
			return nil, err
		}
		base = g
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}

	settings := DefaultBreakerSettings()
	if config.Breaker != nil {
		settings = *config.Breaker
	}

	return WithBreaker(WithRateLimit(base, config.RequestsPerSecond), settings, config.Logger), nil
}
