package experiment

import (
	"time"

	"github.com/urban-eriksson/LLM-guessing-game/internal/results"
)

// Summarize computes the cumulative success percentage for each attempt
// index. Percentages divide by the configured game count, not the
// completed count: failed games depress the curve, which is what the
// measurement wants. Pure and deterministic; calling it again on the
// same inputs yields identical values.
func Summarize(counts []int, numGames int) []float64 {
	cumulative := make([]float64, len(counts))
	sum := 0
	for i, count := range counts {
		sum += count
		cumulative[i] = float64(sum) / float64(numGames) * 100
	}
	return cumulative
}

// NewResult assembles the immutable run snapshot from the final
// histogram.
func NewResult(cfg Config, now time.Time, counts []int, failed int) *results.Result {
	attemptCounts := make(results.AttemptCounts, len(counts))
	copy(attemptCounts, counts)

	return &results.Result{
		APIProvider:          cfg.Provider,
		Model:                cfg.Model,
		Timestamp:            now.Format(results.TimestampLayout),
		NumberRange:          cfg.NumberRange,
		NumGames:             cfg.NumGames,
		AttemptCounts:        attemptCounts,
		CumulativePercentage: Summarize(counts, cfg.NumGames),
		GamesCompleted:       attemptCounts.Total(),
		GamesFailed:          failed,
	}
}
