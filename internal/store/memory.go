package store

import (
	"context"
	"sync"
)

// Memory is an in-process backend, used by tests and dry runs
type Memory struct {
	mu           sync.Mutex
	translations map[Pair]map[string]string
	matches      map[Pair]map[string]string
	matchLog     map[Pair][]string
	nonMatches   map[Pair][]string

	// TranslationSaves counts SaveTranslations calls per pair
	TranslationSaves map[Pair]int
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{
		translations:     make(map[Pair]map[string]string),
		matches:          make(map[Pair]map[string]string),
		matchLog:         make(map[Pair][]string),
		nonMatches:       make(map[Pair][]string),
		TranslationSaves: make(map[Pair]int),
	}
}

func (m *Memory) LoadTranslations(_ context.Context, p Pair) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMap(m.translations[p]), nil
}

func (m *Memory) SaveTranslations(_ context.Context, p Pair, translations map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.translations[p] = copyMap(translations)
	m.TranslationSaves[p]++
	return nil
}

func (m *Memory) LoadMatches(_ context.Context, p Pair) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMap(m.matches[p]), nil
}

func (m *Memory) SaveMatches(_ context.Context, p Pair, matches map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[p] = copyMap(matches)
	return nil
}

func (m *Memory) AppendMatchLog(_ context.Context, p Pair, source, translated string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchLog[p] = append(m.matchLog[p], source+": "+translated)
	return nil
}

// MatchLog returns the audit lines of a pair
func (m *Memory) MatchLog(p Pair) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.matchLog[p]...)
}

func (m *Memory) LoadNonMatches(_ context.Context, p Pair) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(map[string]struct{}, len(m.nonMatches[p]))
	for _, w := range m.nonMatches[p] {
		set[w] = struct{}{}
	}
	return set, nil
}

// NonMatchLog returns the raw non-match lines of a pair, duplicates included
func (m *Memory) NonMatchLog(p Pair) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.nonMatches[p]...)
}

func (m *Memory) AppendNonMatch(_ context.Context, p Pair, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nonMatches[p] = append(m.nonMatches[p], source)
	return nil
}

func (m *Memory) Close() error { return nil }

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
