// Package store persists the per language pair state of a run: the
// translation cache, the match mapping with its audit log, and the set of
// confirmed non-matches. Backends share one contract so the pipeline can run
// against flat files, SQLite, or memory in tests.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrCorrupt marks persisted state that cannot be parsed
var ErrCorrupt = errors.New("store: corrupt data")

// Pair identifies a source to target language pair
type Pair struct {
	Source string
	Target string
}

func (p Pair) String() string {
	return p.Source + "->" + p.Target
}

// Backend is the durable storage for one or more language pairs.
//
// Load methods return empty collections when nothing has been saved yet.
// Save methods overwrite the whole collection and must never leave a
// partially written state behind. Append methods add a single entry.
type Backend interface {
	LoadTranslations(ctx context.Context, p Pair) (map[string]string, error)
	SaveTranslations(ctx context.Context, p Pair, translations map[string]string) error

	LoadMatches(ctx context.Context, p Pair) (map[string]string, error)
	SaveMatches(ctx context.Context, p Pair, matches map[string]string) error
	AppendMatchLog(ctx context.Context, p Pair, source, translated string) error

	LoadNonMatches(ctx context.Context, p Pair) (map[string]struct{}, error)
	AppendNonMatch(ctx context.Context, p Pair, source string) error

	Close() error
}

// Open creates the backend of the given kind rooted at dir
func Open(kind, dir string) (Backend, error) {
	switch kind {
	case "file":
		return NewFile(dir)
	case "sqlite":
		return NewSQLite(dir)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", kind)
	}
}

func corrupt(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorrupt, what, err)
}
