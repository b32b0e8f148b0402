package translation

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates words with a Gemini model
type GeminiTranslator struct {
	model  string
	client *genai.Client
}

// NewGeminiTranslator creates a Gemini translator using the Gemini API backend
func NewGeminiTranslator(ctx context.Context, apiKey, model string) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{model: model, client: client}, nil
}

// Translate translates word from source to target language
func (t *GeminiTranslator) Translate(ctx context.Context, word, source, target string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2),
		MaxOutputTokens: 20,
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt(word, source, target)), cfg)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return cleanResponse(resp.Text())
}
