// Package main provides the CLI entry point for the LLM guessing game
// benchmark.
//
// commands.go contains all cobra command definitions and their flag
// configurations. Each command builder function creates a command and wires
// it to its handler in handlers.go.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runFlags carries the run command's flag values into the handler. A zero
// value means the flag was not set and the config file's value applies.
type runFlags struct {
	configPath  string
	provider    string
	model       string
	numberRange int
	numGames    int
	resultsDir  string
	debug       bool
}

// buildRunCmd creates the "run" command that plays a full experiment
// against one provider and saves the aggregated result.
func buildRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a batch of guessing games against one provider",
		Long: `Play a batch of guessing games against a single provider and save the
aggregated per-attempt histogram as JSON in the results directory.

Flags override the corresponding config file settings. A config file is
optional; sensible defaults plus API keys from the environment are enough
for a quick run.`,
		Example: `  # 100 games against the local control responder
  guessgame run --provider control --games 100

  # Claude over a 1-10 range, using keys from the environment
  guessgame run --provider anthropic --range 10 --games 50

  # Everything from a config file
  guessgame run --config guessgame.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to YAML configuration file")
	cmd.Flags().StringVarP(&flags.provider, "provider", "p", "",
		"Provider to benchmark (anthropic, openai, google, control)")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "",
		"Model identifier (defaults to the provider's standard model)")
	cmd.Flags().IntVarP(&flags.numberRange, "range", "r", 0,
		"Upper bound of the guessing range (numbers run 1..range)")
	cmd.Flags().IntVarP(&flags.numGames, "games", "g", 0,
		"Number of games to play")
	cmd.Flags().StringVar(&flags.resultsDir, "results-dir", "",
		"Directory for result JSON files")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false,
		"Enable debug logging (logs every conversation turn)")

	return cmd
}

// buildPlotCmd creates the "plot" command that renders comparison charts
// from every stored result in a directory.
func buildPlotCmd() *cobra.Command {
	var (
		resultsDir string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render comparison charts from stored results",
		Long: `Load every result file from the results directory and render two
comparison charts: a cumulative success staircase and a grouped
per-attempt bar chart. Results from different runs and providers are
overlaid so models can be compared directly.`,
		Example: `  # Charts from the default results directory
  guessgame plot

  # Charts from a custom directory, written elsewhere
  guessgame plot --results-dir archive/2026 --out charts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(resultsDir, outDir)
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results-dir", "results",
		"Directory containing result JSON files")
	cmd.Flags().StringVarP(&outDir, "out", "o", "",
		"Output directory for chart PNGs (defaults to the results directory)")

	return cmd
}

// buildVersionCmd creates the "version" command.
func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("guessgame %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
