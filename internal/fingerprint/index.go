package fingerprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"codeberg.org/snonux/cipherpair/internal"
	"codeberg.org/snonux/cipherpair/internal/config"
)

// Set is an ordered set of candidate words
type Set struct {
	words []string
	index map[string]struct{}
}

// NewSet builds a set from words, keeping the first occurrence of duplicates
func NewSet(words ...string) Set {
	s := Set{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := s.index[w]; dup {
			continue
		}
		s.index[w] = struct{}{}
		s.words = append(s.words, w)
	}
	return s
}

// Contains reports whether word is a candidate
func (s Set) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Len returns the number of candidates
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the candidates in file order
func (s Set) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Indexes maps language codes to their candidate sets
type Indexes map[string]Set

// Path returns the candidate file location for a language and word length
func Path(dir, lang string, length int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-words-%d-pattern.json", internal.SanitizeFilename(lang), length))
}

// Loader reads candidate sets from a directory
type Loader struct {
	Dir    string
	Logger *zap.Logger
}

// NewLoader creates a loader for the given input directory
func NewLoader(dir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Dir: dir, Logger: logger}
}

// Load reads the candidate set for lang and word length. A missing file is an
// empty set; a malformed one is an error.
func (l *Loader) Load(lang string, length int) (Set, error) {
	path := Path(l.Dir, lang, length)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		l.Logger.Warn("candidate set missing, treating as empty",
			zap.String("lang", lang), zap.String("path", path))
		return NewSet(), nil
	}
	if err != nil {
		return Set{}, fmt.Errorf("failed to read candidate set %s: %w", path, err)
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return Set{}, fmt.Errorf("malformed candidate set %s: %w", path, err)
	}

	for i, w := range words {
		words[i] = Normalize(lang, w)
	}

	set := NewSet(words...)
	l.Logger.Debug("loaded candidate set",
		zap.String("lang", lang), zap.Int("length", length), zap.Int("words", set.Len()))
	return set, nil
}

// LoadAll loads the candidate set of every active language in the table
func (l *Loader) LoadAll(languages map[string]config.Language) (Indexes, error) {
	indexes := make(Indexes)
	for code, lang := range languages {
		if !lang.Active {
			continue
		}
		set, err := l.Load(code, lang.WordLength())
		if err != nil {
			return nil, err
		}
		indexes[code] = set
	}
	return indexes, nil
}
