// Package main provides the CLI entry point for the LLM guessing game
// benchmark.
//
// handlers.go contains the RunE handler functions for all CLI commands.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/urban-eriksson/LLM-guessing-game/internal/config"
	"github.com/urban-eriksson/LLM-guessing-game/internal/experiment"
	"github.com/urban-eriksson/LLM-guessing-game/internal/observability"
	"github.com/urban-eriksson/LLM-guessing-game/internal/plot"
	"github.com/urban-eriksson/LLM-guessing-game/internal/providers"
	"github.com/urban-eriksson/LLM-guessing-game/internal/results"
)

// loadConfig merges the config file (if any) with flag overrides.
// Flags win over the file; the file wins over defaults.
func loadConfig(flags runFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.provider != "" {
		cfg.Provider = flags.provider
	}
	if flags.model != "" {
		cfg.Model = flags.model
	}
	if flags.numberRange > 0 {
		cfg.NumberRange = flags.numberRange
	}
	if flags.numGames > 0 {
		cfg.NumGames = flags.numGames
	}
	if flags.resultsDir != "" {
		cfg.ResultsDir = flags.resultsDir
	}
	if flags.debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runRun implements the run command: build the responder, play every
// game, persist the aggregate record, and print a summary.
func runRun(ctx context.Context, flags runFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	responder, err := providers.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to build provider: %w", err)
	}

	// Cancel in-flight API calls on SIGINT/SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = observability.AddRunID(ctx, uuid.NewString())
	logger.Info(ctx, "starting run",
		"version", version,
		"provider", cfg.Provider,
		"model", providers.ModelName(responder),
	)

	runner := experiment.New(responder, logger, experiment.Config{
		Provider:    cfg.Provider,
		Model:       providers.ModelName(responder),
		NumberRange: cfg.NumberRange,
		NumGames:    cfg.NumGames,
		MaxRepairs:  cfg.Repair.MaxAttempts,
	})

	res, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("experiment aborted: %w", err)
	}

	path, err := results.Save(cfg.ResultsDir, res)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	printSummary(os.Stdout, res, path)
	return nil
}

// printSummary writes the human-readable end-of-run report to w.
func printSummary(w io.Writer, res *results.Result, path string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\nRESULTS SUMMARY\n%s\n", rule, rule)

	for i, count := range res.AttemptCounts {
		percentage := float64(count) / float64(res.NumGames) * 100
		fmt.Fprintf(w, "Attempt %d: %d games (%.1f%%), Cumulative: %.1f%%\n",
			i+1, count, percentage, res.CumulativePercentage[i])
	}

	fmt.Fprintf(w, "\nTotal games played: %d\n", res.NumGames)
	fmt.Fprintf(w, "Games completed successfully: %d\n", res.GamesCompleted)
	if res.GamesFailed > 0 {
		fmt.Fprintf(w, "Games failed: %d\n", res.GamesFailed)
	}
	fmt.Fprintf(w, "Results saved to: %s\n", path)
}

// runPlot implements the plot command: load every stored record and
// render both comparison charts.
func runPlot(resultsDir, outDir string) error {
	records, err := results.LoadDir(resultsDir)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no result files found in %s", resultsDir)
	}

	if outDir == "" {
		outDir = resultsDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	staircase := filepath.Join(outDir, "cumulative_success.png")
	if err := plot.Staircase(records, staircase); err != nil {
		return fmt.Errorf("failed to render staircase chart: %w", err)
	}

	bars := filepath.Join(outDir, "attempt_distribution.png")
	if err := plot.Bars(records, bars); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}

	fmt.Printf("Charts written:\n  %s\n  %s\n", staircase, bars)
	return nil
}
