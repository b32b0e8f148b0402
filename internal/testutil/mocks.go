package testutil

import (
	"context"
	"fmt"
	"time"
)

// MockTranslator mocks a translation provider
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
	Words        []string
}

// Translate mocks translating a word
func (m *MockTranslator) Translate(ctx context.Context, word, source, target string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s (%s->%s)", word, source, target))
	m.Words = append(m.Words, word)

	if err, ok := m.Errors[word]; ok {
		return "", err
	}

	if translation, ok := m.Translations[word]; ok {
		return translation, nil
	}

	// Default mock translation
	return "mock-" + word, nil
}

// CallCount returns how often word was sent to the translator
func (m *MockTranslator) CallCount(word string) int {
	n := 0
	for _, w := range m.Words {
		if w == word {
			n++
		}
	}
	return n
}

// Sleeper records pauses instead of sleeping
type Sleeper struct {
	Pauses []time.Duration
}

// Sleep records d and returns immediately unless ctx is done
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.Pauses = append(s.Pauses, d)
	return ctx.Err()
}
