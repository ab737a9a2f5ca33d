// Package main provides the CLI entry point for the LLM guessing game
// benchmark.
//
// The benchmark plays repeated rounds of "guess the number" against a
// conversational LLM provider, records how many attempts each round took,
// and persists the aggregated histogram as JSON for later comparison.
//
// # Basic Usage
//
// Run an experiment:
//
//	guessgame run --provider anthropic --games 100
//
// Render comparison charts from stored results:
//
//	guessgame plot --results-dir results
//
// # Environment Variables
//
//   - ANTHROPIC_API_KEY: Anthropic API key for Claude models
//   - OPENAI_API_KEY: OpenAI API key for GPT models
//   - GOOGLE_API_KEY: Google API key for Gemini models
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information - populated by ldflags during build.
//
// Example build command:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	version = "dev"     // Semantic version (e.g., "v1.0.0")
	commit  = "none"    // Git commit SHA
	date    = "unknown" // Build timestamp
)

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildRootCmd creates the root command with all subcommands attached.
// This is separated from main() to facilitate testing.
func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "guessgame",
		Short: "Benchmark LLM consistency with a number guessing game",
		Long: `Guessgame benchmarks how reliably conversational LLMs hold a hidden
number across a multi-turn guessing game.

Each game asks the model to think of a number, then guesses every value
in random order until the model answers 'correct'. A perfectly consistent
model confirms exactly one guess per game; the aggregated per-attempt
histogram exposes models that drift, confirm early, or never confirm.

Supported providers: Anthropic (Claude), OpenAI (GPT), Google (Gemini),
plus a deterministic local control responder for calibration.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		buildRunCmd(),
		buildPlotCmd(),
		buildVersionCmd(),
	)

	return rootCmd
}
