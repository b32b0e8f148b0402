package fingerprint

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/cipherpair/internal/config"
)

func TestOf(t *testing.T) {
	tests := []struct {
		word string
		want []int
	}{
		{"abba", []int{2, 2}},
		{"abc", []int{1, 1, 1}},
		{"Hello", []int{2, 1, 1, 1}},
		{"JYPFFQVY", []int{2, 2, 1, 1, 1, 1}},
		{"ябълка", []int{1, 1, 1, 1, 1, 1}},
		{"баба", []int{2, 2}},
		{"", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Of(tt.word); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Of(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal("abba", "CDDC") {
		t.Error("abba and CDDC should share a fingerprint")
	}
	if Equal("abba", "abca") {
		t.Error("abba and abca should differ")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		lang, word, want string
	}{
		{"en", "  Gato ", "gato"},
		{"de", "STRASSE", "strasse"},
		{"tr", "KIŞ", "kış"},
		{"xx", "Wort", "wort"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.lang, tt.word); got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.lang, tt.word, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewSet("cat", "dog", "cat", "", "bird")

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if want := []string{"cat", "dog", "bird"}; !reflect.DeepEqual(s.Words(), want) {
		t.Errorf("Words() = %v, want %v", s.Words(), want)
	}
	if !s.Contains("dog") || s.Contains("fish") {
		t.Error("Contains returned wrong result")
	}

	words := s.Words()
	words[0] = "modified"
	if !s.Contains("cat") || s.Words()[0] != "cat" {
		t.Error("set was modified through Words()")
	}

	var zero Set
	if zero.Contains("cat") || zero.Len() != 0 {
		t.Error("zero Set should be empty")
	}
}

func TestPath(t *testing.T) {
	got := Path("data/output", "en", 8)
	want := filepath.Join("data/output", "en-words-8-pattern.json")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir, "en", 3), []byte(`["Cat", "dog", "cat"]`), 0644); err != nil {
		t.Fatalf("Failed to write candidate file: %v", err)
	}

	set, err := NewLoader(dir, nil).Load("en", 3)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := []string{"cat", "dog"}; !reflect.DeepEqual(set.Words(), want) {
		t.Errorf("Words() = %v, want %v", set.Words(), want)
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	set, err := NewLoader(t.TempDir(), nil).Load("de", 8)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %v", set.Words())
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir, "en", 3), []byte(`{"not": "a list"`), 0644); err != nil {
		t.Fatalf("Failed to write candidate file: %v", err)
	}

	_, err := NewLoader(dir, nil).Load("en", 3)
	if err == nil {
		t.Fatal("expected error for malformed candidate set")
	}
	if !strings.Contains(err.Error(), "malformed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir, "en", 8), []byte(`["jeopardy"]`), 0644); err != nil {
		t.Fatalf("Failed to write candidate file: %v", err)
	}
	if err := os.WriteFile(Path(dir, "it", 8), []byte(`[`), 0644); err != nil {
		t.Fatalf("Failed to write candidate file: %v", err)
	}

	indexes, err := NewLoader(dir, nil).LoadAll(config.DefaultLanguages())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(indexes) != 2 {
		t.Fatalf("expected indexes for en and de, got %d", len(indexes))
	}
	if !indexes["en"].Contains("jeopardy") {
		t.Error("en index missing jeopardy")
	}
	if indexes["de"].Len() != 0 {
		t.Error("de index should be empty")
	}
	if _, ok := indexes["it"]; ok {
		t.Error("inactive language it should not be loaded")
	}
}
