package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/cipherpair/internal"
	"codeberg.org/snonux/cipherpair/internal/config"
	"codeberg.org/snonux/cipherpair/internal/fingerprint"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cipherpair",
		Short: "Cross-language cipher word pair finder",
		Long: `cipherpair searches for word pairs across languages that are translations
of each other and fit the same substitution cipher.

Candidate words per language are read from <input>/<lang>-words-<len>-pattern.json.
Every source word is translated once into each active target language; the
translations are cached, so an interrupted run resumes where it left off.

Examples:
  cipherpair                          # Run with defaults (en -> active targets)
  cipherpair --provider openai        # Translate with OpenAI instead of Google
  cipherpair --store sqlite           # Keep state in a single SQLite file
  cipherpair fingerprint Schlüssel    # Print the letter-frequency fingerprint`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(CreateFingerprintCommand())

	return rootCmd
}

// CreateFingerprintCommand creates the fingerprint subcommand
func CreateFingerprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <word>...",
		Short: "Print the letter-frequency fingerprint of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", word, fingerprint.Of(word))
			}
			return nil
		},
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.cipherpair.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: console or json")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputDir, "input", "i", flags.InputDir, "Directory holding the candidate word files")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Directory for translations and match results")
	cmd.Flags().StringVarP(&flags.Source, "source", "s", flags.Source, "Source language code")
	cmd.Flags().StringVar(&flags.Store, "store", flags.Store, "Storage backend: "+strings.Join(config.Stores, ", "))
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the current output directory aside and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Batching flags
	cmd.Flags().IntVarP(&flags.BatchSize, "batch-size", "b", flags.BatchSize, "Translations per flush")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause after each flush")

	// Translation flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", flags.Provider, "Translation provider: "+strings.Join(config.Providers, ", "))
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model for the openai or gemini provider (default: provider specific)")
	cmd.Flags().Float64Var(&flags.RequestsPerSecond, "rps", 0, "Cap provider requests per second (0 disables)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("input.directory", cmd.Flags().Lookup("input"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("store.backend", cmd.Flags().Lookup("store"))
	viper.BindPFlag("batch.size", cmd.Flags().Lookup("batch-size"))
	viper.BindPFlag("batch.delay", cmd.Flags().Lookup("delay"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translation.rps", cmd.Flags().Lookup("rps"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// API keys may live in a .env file next to the data
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".cipherpair" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cipherpair")
	}

	// Environment variables, CIPHERPAIR_BATCH_SIZE maps to batch.size
	viper.SetEnvPrefix("CIPHERPAIR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// LoadConfig builds the run configuration from the global viper instance
func LoadConfig() (config.Config, error) {
	return config.FromViper(viper.GetViper())
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("translation.gemini_key")
}
