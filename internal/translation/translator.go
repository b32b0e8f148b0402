package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrMissingAPIKey is returned by providers that need a key when none is set
	ErrMissingAPIKey = errors.New("API key not found")
	// ErrEmptyTranslation is returned when a provider answers with nothing usable
	ErrEmptyTranslation = errors.New("no translation returned")
)

// Translator translates a single word. Any error is a transient failure for
// that word; callers skip it and try again on a later run.
type Translator interface {
	Translate(ctx context.Context, word, source, target string) (string, error)
}

// OpenAITranslator translates words with an OpenAI chat model
type OpenAITranslator struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAITranslator creates a new OpenAI translator; an empty model selects gpt-4o-mini
func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Translate translates word from source to target language
func (t *OpenAITranslator) Translate(ctx context.Context, word, source, target string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI %w", ErrMissingAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(word, source, target),
			},
		},
		MaxTokens:   20,
		Temperature: 0.2,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyTranslation
	}

	return cleanResponse(resp.Choices[0].Message.Content)
}

func prompt(word, source, target string) string {
	return fmt.Sprintf("Translate the single word '%s' from language code '%s' to language code '%s'. "+
		"Respond with only the single most common translation as one word, nothing else.", word, source, target)
}

// cleanResponse strips whitespace, quotes and trailing punctuation that chat
// models like to add around a one-word answer
func cleanResponse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "\"'`“”‘’«».!")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTranslation
	}
	return s, nil
}
