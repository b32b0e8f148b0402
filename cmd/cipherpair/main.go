package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/cipherpair/internal/archive"
	"codeberg.org/snonux/cipherpair/internal/cli"
	"codeberg.org/snonux/cipherpair/internal/fingerprint"
	"codeberg.org/snonux/cipherpair/internal/models"
	"codeberg.org/snonux/cipherpair/internal/observability"
	"codeberg.org/snonux/cipherpair/internal/processor"
	"codeberg.org/snonux/cipherpair/internal/store"
	"codeberg.org/snonux/cipherpair/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	ctx := cmd.Context()

	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	// Handle --archive flag
	if flags.Archive {
		archivedPath, err := archive.ArchiveOutput(cfg.OutputDir, time.Now())
		if err != nil {
			return fmt.Errorf("failed to archive output: %w", err)
		}
		fmt.Printf("Output directory archived to: %s\n", archivedPath)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		return models.NewLister(cli.GetOpenAIKey()).ListAvailableModels(ctx, cmd.OutOrStdout())
	}

	logger, err := observability.NewLogger(viper.GetString("log.level"), viper.GetString("log.format"))
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", observability.NewRunID()))

	indexes, err := fingerprint.NewLoader(cfg.InputDir, logger).LoadAll(cfg.Languages)
	if err != nil {
		logger.Error("loading candidate sets failed", zap.Error(err))
		return err
	}

	backend, err := store.Open(cfg.Store, cfg.OutputDir)
	if err != nil {
		logger.Error("opening store failed", zap.Error(err))
		return err
	}
	defer backend.Close()

	translator, err := translation.NewProvider(ctx, &translation.ProviderConfig{
		Provider:          cfg.Provider,
		Model:             cfg.Model,
		OpenAIKey:         cli.GetOpenAIKey(),
		GeminiKey:         cli.GetGeminiKey(),
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("creating translation provider failed", zap.Error(err))
		return err
	}

	logger.Info("starting run",
		zap.String("source", cfg.Source),
		zap.Strings("targets", cfg.Targets()),
		zap.String("provider", cfg.Provider),
		zap.String("store", cfg.Store),
		zap.Int("batch_size", cfg.BatchSize),
		zap.Duration("delay", cfg.Delay))

	proc := processor.New(cfg, translator, backend, indexes, processor.WithLogger(logger))
	summaries, err := proc.Run(ctx)
	printSummaries(cmd.OutOrStdout(), summaries)
	if err != nil {
		logger.Error("run aborted", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nDone! Results saved to: %s\n", cfg.OutputDir)
	return nil
}

func printSummaries(w io.Writer, summaries []processor.Summary) {
	header := color.New(color.FgCyan, color.Bold)
	found := color.New(color.FgGreen, color.Bold)
	failed := color.New(color.FgYellow)

	for _, s := range summaries {
		header.Fprintf(w, "\n%s\n", s.Pair)
		fmt.Fprintf(w, "  words: %d  cached: %d  translated: %d  flushes: %d\n",
			s.Words, s.Cached, s.Translated, s.Flushes)
		if s.Failed > 0 {
			failed.Fprintf(w, "  failed: %d (retried on the next run)\n", s.Failed)
		}

		words := make([]string, 0, len(s.Matches))
		for word := range s.Matches {
			words = append(words, word)
		}
		sort.Strings(words)
		for _, word := range words {
			found.Fprintf(w, "  match: %s: %s\n", word, s.Matches[word])
		}
	}
}
