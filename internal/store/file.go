package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"codeberg.org/snonux/cipherpair/internal"
)

// File stores state as JSON documents and line logs in a directory:
//
//	translations_<src>_<tgt>.json  word -> translation
//	matches_<src>_<tgt>.json       word -> translation
//	matches_<src>_<tgt>.txt        "word: translation" audit log
//	no_matches_<src>_<tgt>.txt     one word per line
type File struct {
	dir string
}

// NewFile creates a file backend, creating dir if needed
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(kind string, p Pair, ext string) string {
	name := fmt.Sprintf("%s_%s_%s.%s", kind,
		internal.SanitizeFilename(p.Source), internal.SanitizeFilename(p.Target), ext)
	return filepath.Join(f.dir, name)
}

// TranslationsPath returns the translation cache file of a pair
func (f *File) TranslationsPath(p Pair) string { return f.path("translations", p, "json") }

// MatchesPath returns the structured match file of a pair
func (f *File) MatchesPath(p Pair) string { return f.path("matches", p, "json") }

// MatchLogPath returns the human-readable match log of a pair
func (f *File) MatchLogPath(p Pair) string { return f.path("matches", p, "txt") }

// NonMatchesPath returns the non-match log of a pair
func (f *File) NonMatchesPath(p Pair) string { return f.path("no_matches", p, "txt") }

func (f *File) LoadTranslations(_ context.Context, p Pair) (map[string]string, error) {
	return readJSONMap(f.TranslationsPath(p))
}

func (f *File) SaveTranslations(_ context.Context, p Pair, translations map[string]string) error {
	return writeJSONMap(f.TranslationsPath(p), translations)
}

func (f *File) LoadMatches(_ context.Context, p Pair) (map[string]string, error) {
	return readJSONMap(f.MatchesPath(p))
}

func (f *File) SaveMatches(_ context.Context, p Pair, matches map[string]string) error {
	return writeJSONMap(f.MatchesPath(p), matches)
}

func (f *File) AppendMatchLog(_ context.Context, p Pair, source, translated string) error {
	return appendLine(f.MatchLogPath(p), source+": "+translated)
}

func (f *File) LoadNonMatches(_ context.Context, p Pair) (map[string]struct{}, error) {
	path := f.NonMatchesPath(p)
	set := make(map[string]struct{})

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return set, nil
}

func (f *File) AppendNonMatch(_ context.Context, p Pair, source string) error {
	return appendLine(f.NonMatchesPath(p), source)
}

// Close is a no-op; every write is complete when it returns
func (f *File) Close() error { return nil }

func readJSONMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, corrupt(path, err)
	}
	if m == nil {
		// a literal null document
		m = make(map[string]string)
	}
	return m, nil
}

// writeJSONMap replaces path with the indented document via a temp file and
// rename, so readers never see a truncated file.
func writeJSONMap(path string, m map[string]string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		file.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return file.Close()
}
