// Package config holds the run configuration for cipherpair: the language
// table with each language's ciphertext word, input/output locations,
// batching and pacing, and the translation provider and storage backend
// selections. A Config is an explicit value handed to the processor.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/viper"
)

const (
	DefaultBatchSize = 10
	DefaultDelay     = time.Second
	DefaultSource    = "en"
)

// Known provider and store names
var (
	Providers = []string{"google", "openai", "gemini"}
	Stores    = []string{"file", "sqlite"}
)

// Language describes one configured language
type Language struct {
	Cipher string `mapstructure:"cipher"`
	Active bool   `mapstructure:"active"`
}

// WordLength is the expected candidate word length, the rune count of the cipher
func (l Language) WordLength() int {
	return utf8.RuneCountInString(l.Cipher)
}

// Config is the complete configuration of a run
type Config struct {
	Languages map[string]Language
	Source    string
	InputDir  string
	OutputDir string

	BatchSize int
	Delay     time.Duration

	Provider          string
	Model             string
	RequestsPerSecond float64

	Store string
}

// DefaultLanguages returns the built-in language table
func DefaultLanguages() map[string]Language {
	return map[string]Language{
		"en": {Cipher: "JYPFFQVY", Active: true},
		"de": {Cipher: "MJ?IGNPB", Active: true},
		"it": {Cipher: "NSULROLQ", Active: false},
		"fr": {Cipher: "QLEITRRC", Active: false},
	}
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Languages: DefaultLanguages(),
		Source:    DefaultSource,
		InputDir:  "data/input",
		OutputDir: "data/output",
		BatchSize: DefaultBatchSize,
		Delay:     DefaultDelay,
		Provider:  "google",
		Store:     "file",
	}
}

// ActiveLanguages returns the codes of all active languages, sorted
func (c Config) ActiveLanguages() []string {
	var codes []string
	for code, lang := range c.Languages {
		if lang.Active {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Targets returns the active languages other than the source, sorted
func (c Config) Targets() []string {
	var targets []string
	for _, code := range c.ActiveLanguages() {
		if code != c.Source {
			targets = append(targets, code)
		}
	}
	return targets
}

// Validate checks the configuration for values the pipeline cannot run with
func (c Config) Validate() error {
	src, ok := c.Languages[c.Source]
	if !ok {
		return fmt.Errorf("config: source language %q is not configured", c.Source)
	}
	if !src.Active {
		return fmt.Errorf("config: source language %q is inactive", c.Source)
	}
	for code, lang := range c.Languages {
		if lang.Active && lang.WordLength() == 0 {
			return fmt.Errorf("config: language %q has an empty cipher", code)
		}
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("config: batch size must be positive, got %d", c.BatchSize)
	}
	if c.Delay < 0 {
		return fmt.Errorf("config: delay must not be negative, got %s", c.Delay)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("config: requests per second must not be negative, got %g", c.RequestsPerSecond)
	}
	if !contains(Providers, c.Provider) {
		return fmt.Errorf("config: unknown translation provider %q (want one of %s)", c.Provider, strings.Join(Providers, ", "))
	}
	if !contains(Stores, c.Store) {
		return fmt.Errorf("config: unknown store %q (want one of %s)", c.Store, strings.Join(Stores, ", "))
	}
	return nil
}

// FromViper builds a Config from viper, falling back to defaults for unset keys
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()

	if v.IsSet("languages") {
		langs := make(map[string]Language)
		if err := v.UnmarshalKey("languages", &langs); err != nil {
			return cfg, fmt.Errorf("config: invalid languages table: %w", err)
		}
		cfg.Languages = langs
	}

	if v.IsSet("source") {
		cfg.Source = strings.ToLower(v.GetString("source"))
	}
	if v.IsSet("input.directory") {
		cfg.InputDir = v.GetString("input.directory")
	}
	if v.IsSet("output.directory") {
		cfg.OutputDir = v.GetString("output.directory")
	}
	if v.IsSet("batch.size") {
		cfg.BatchSize = v.GetInt("batch.size")
	}
	if v.IsSet("batch.delay") {
		cfg.Delay = v.GetDuration("batch.delay")
	}
	if v.IsSet("translation.provider") {
		cfg.Provider = strings.ToLower(v.GetString("translation.provider"))
	}
	if v.IsSet("translation.model") {
		cfg.Model = v.GetString("translation.model")
	}
	if v.IsSet("translation.rps") {
		cfg.RequestsPerSecond = v.GetFloat64("translation.rps")
	}
	if v.IsSet("store.backend") {
		cfg.Store = strings.ToLower(v.GetString("store.backend"))
	}

	return cfg, cfg.Validate()
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
