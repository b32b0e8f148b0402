package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "cipherpair" {
		t.Errorf("Expected Use to be 'cipherpair', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "cipher word pair") {
		t.Errorf("Expected Short description to mention 'cipher word pair', got %q", cmd.Short)
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"log-level", true},
		{"log-format", true},
		{"input", false},
		{"output", false},
		{"source", false},
		{"store", false},
		{"archive", false},
		{"list-models", false},
		{"batch-size", false},
		{"delay", false},
		{"provider", false},
		{"model", false},
		{"rps", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}

	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "fingerprint" {
			found = true
		}
	}
	if !found {
		t.Error("Expected fingerprint subcommand")
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	defaults := map[string]string{
		"input":      "data/input",
		"output":     "data/output",
		"source":     "en",
		"store":      "file",
		"batch-size": "10",
		"delay":      "1s",
		"provider":   "google",
		"rps":        "0",
	}

	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %s, got %s", name, want, flag.DefValue)
		}
	}
}

func TestFingerprintCommand(t *testing.T) {
	cmd := CreateFingerprintCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Hello", "abc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("fingerprint command failed: %v", err)
	}

	want := "Hello: [2 1 1 1]\nabc: [1 1 1]\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestFingerprintCommand_RequiresWord(t *testing.T) {
	cmd := CreateFingerprintCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error without arguments")
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantBatch int
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `batch:
  size: 25
translation:
  provider: openai
  openai_key: test-key
output:
  directory: /test/output`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			wantBatch: 25,
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
			wantBatch: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			InitConfig(tt.setupFunc(t))

			// Test environment variable prefix
			t.Setenv("CIPHERPAIR_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if got := viper.GetInt("batch.size"); got != tt.wantBatch {
				t.Errorf("batch.size = %d, want %d", got, tt.wantBatch)
			}
		})
	}
}

func TestInitConfig_NestedEnv(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	t.Setenv("CIPHERPAIR_BATCH_DELAY", "250ms")
	InitConfig("")

	if got := viper.GetDuration("batch.delay"); got != 250*time.Millisecond {
		t.Errorf("batch.delay = %s, want 250ms", got)
	}
}

func TestLoadConfig(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	viper.Set("source", "de")
	viper.Set("store.backend", "sqlite")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Source != "de" || cfg.Store != "sqlite" {
		t.Errorf("LoadConfig() = source %q store %q, want de sqlite", cfg.Source, cfg.Store)
	}

	viper.Set("translation.provider", "babelfish")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper
			viper.Reset()

			t.Setenv("OPENAI_API_KEY", tt.envKey)

			// Set up config
			if tt.configKey != "" {
				viper.Set("translation.openai_key", tt.configKey)
			}

			got := GetOpenAIKey()
			if got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	if got := GetGeminiKey(); got != "google-key" {
		t.Errorf("GetGeminiKey() = %v, want google-key", got)
	}

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	if got := GetGeminiKey(); got != "gemini-key" {
		t.Errorf("GetGeminiKey() = %v, want gemini-key", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	viper.Set("translation.gemini_key", "config-key")
	if got := GetGeminiKey(); got != "config-key" {
		t.Errorf("GetGeminiKey() = %v, want config-key", got)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("output", "/test/output")
	cmd.Flags().Set("batch-size", "5")
	cmd.Flags().Set("provider", "gemini")
	cmd.Flags().Set("delay", "2s")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}

	if viper.GetInt("batch.size") != 5 {
		t.Errorf("Expected batch.size to be 5, got %d", viper.GetInt("batch.size"))
	}

	if viper.GetString("translation.provider") != "gemini" {
		t.Errorf("Expected translation.provider to be gemini, got %s", viper.GetString("translation.provider"))
	}

	if viper.GetDuration("batch.delay") != 2*time.Second {
		t.Errorf("Expected batch.delay to be 2s, got %s", viper.GetDuration("batch.delay"))
	}

	// unchanged flags do not override config file values
	if viper.IsSet("source") {
		t.Error("Expected source to be unset when the flag was not changed")
	}
}
