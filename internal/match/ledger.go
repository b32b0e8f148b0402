// Package match decides whether a translated word pair matches the target
// fingerprints of both languages and keeps the durable ledger of those
// verdicts. A source word receives at most one verdict, ever.
package match

import (
	"context"
	"fmt"

	"codeberg.org/snonux/cipherpair/internal/store"
)

// Verdict is the classification of a source word
type Verdict int

const (
	Undecided Verdict = iota
	Match
	NoMatch
)

func (v Verdict) String() string {
	switch v {
	case Match:
		return "match"
	case NoMatch:
		return "no match"
	default:
		return "undecided"
	}
}

// Ledger records the verdicts of one language pair
type Ledger struct {
	backend store.Backend
	pair    store.Pair

	matches    map[string]string
	nonMatches map[string]struct{}
}

// NewLedger creates a ledger for pair; call Load before using Verdict
func NewLedger(backend store.Backend, pair store.Pair) *Ledger {
	return &Ledger{
		backend:    backend,
		pair:       pair,
		matches:    make(map[string]string),
		nonMatches: make(map[string]struct{}),
	}
}

// Pair returns the language pair of the ledger
func (l *Ledger) Pair() store.Pair {
	return l.pair
}

// LoadMatches reads the persisted matches
func (l *Ledger) LoadMatches(ctx context.Context) (map[string]string, error) {
	m, err := l.backend.LoadMatches(ctx, l.pair)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches %s: %w", l.pair, err)
	}
	return m, nil
}

// LoadNonMatches reads the persisted non-matches
func (l *Ledger) LoadNonMatches(ctx context.Context) (map[string]struct{}, error) {
	nm, err := l.backend.LoadNonMatches(ctx, l.pair)
	if err != nil {
		return nil, fmt.Errorf("failed to load non-matches %s: %w", l.pair, err)
	}
	return nm, nil
}

// Load refreshes the in-memory view of both verdict sets from storage
func (l *Ledger) Load(ctx context.Context) error {
	matches, err := l.LoadMatches(ctx)
	if err != nil {
		return err
	}
	nonMatches, err := l.LoadNonMatches(ctx)
	if err != nil {
		return err
	}
	l.matches, l.nonMatches = matches, nonMatches
	return nil
}

// Verdict returns the recorded verdict of word
func (l *Ledger) Verdict(word string) Verdict {
	if _, ok := l.matches[word]; ok {
		return Match
	}
	if _, ok := l.nonMatches[word]; ok {
		return NoMatch
	}
	return Undecided
}

// RecordMatch persists the full match mapping including source, then appends
// the audit line
func (l *Ledger) RecordMatch(ctx context.Context, source, translated string) error {
	l.matches[source] = translated
	if err := l.backend.SaveMatches(ctx, l.pair, l.matches); err != nil {
		delete(l.matches, source)
		return fmt.Errorf("failed to save matches %s: %w", l.pair, err)
	}
	if err := l.backend.AppendMatchLog(ctx, l.pair, source, translated); err != nil {
		return fmt.Errorf("failed to append match log %s: %w", l.pair, err)
	}
	return nil
}

// RecordNonMatch appends source to the non-match set
func (l *Ledger) RecordNonMatch(ctx context.Context, source string) error {
	if err := l.backend.AppendNonMatch(ctx, l.pair, source); err != nil {
		return fmt.Errorf("failed to record non-match %s: %w", l.pair, err)
	}
	l.nonMatches[source] = struct{}{}
	return nil
}
