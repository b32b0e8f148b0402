package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultGoogleURL is the public web translation endpoint
const DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator uses the keyless Google web translation endpoint
type GoogleTranslator struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogleTranslator creates a translator for baseURL; empty selects DefaultGoogleURL
func NewGoogleTranslator(baseURL string) *GoogleTranslator {
	if baseURL == "" {
		baseURL = DefaultGoogleURL
	}
	return &GoogleTranslator{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Translate translates word from source to target language
func (t *GoogleTranslator) Translate(ctx context.Context, word, source, target string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("translation request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return parseGoogleSegments(payload)
}

// parseGoogleSegments joins the translated text of each segment in the first
// element of the response: [[["hallo","hello",...],...],...]
func parseGoogleSegments(payload []json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyTranslation
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			b.WriteString(s)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyTranslation
	}
	return text, nil
}
