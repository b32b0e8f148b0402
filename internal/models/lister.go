package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return NewListerWithConfig(apiKey, openai.DefaultConfig(apiKey))
}

// NewListerWithConfig creates a lister with a custom client configuration
func NewListerWithConfig(apiKey string, cfg openai.ClientConfig) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
	}
}

// ListAvailableModels writes the chat models available for translation to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure translation.openai_key in .cipherpair.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	chatModels := ChatModels(ids)

	fmt.Fprintln(w, "Chat models usable with --provider openai --model <name>:")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		marker := ""
		if model == openai.GPT4oMini {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", model, marker)
	}
	return nil
}

// ChatModels filters ids down to sorted chat completion models, leaving out
// speech, image, embedding and moderation models
func ChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		if !strings.HasPrefix(id, "gpt-") && !strings.HasPrefix(id, "o1") &&
			!strings.HasPrefix(id, "o3") && !strings.HasPrefix(id, "o4") {
			continue
		}
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "realtime") || strings.Contains(id, "transcribe") ||
			strings.Contains(id, "image") || strings.Contains(id, "search") {
			continue
		}
		chat = append(chat, id)
	}
	sort.Strings(chat)
	return chat
}
