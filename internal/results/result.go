// Package results defines the experiment result record and its file
// store: one JSON file per run, named so runs never collide.
package results

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// TimestampLayout gives run timestamps one-second resolution; combined
// with provider and model it makes stored filenames collision-resistant.
const TimestampLayout = "20060102_150405"

// AttemptCounts is the per-attempt success histogram: index i holds the
// number of games first won on attempt i+1. It marshals as a JSON list
// but also decodes the mapping shape older records used.
type AttemptCounts []int

// UnmarshalJSON accepts either a list ([3, 1, 0]) or a mapping keyed by
// 1-based attempt index ({"1": 3, "2": 1}).
func (a *AttemptCounts) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}

	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("attempt_counts is neither list nor mapping: %w", err)
	}

	max := 0
	for k := range m {
		if i, err := strconv.Atoi(k); err == nil && i > max {
			max = i
		}
	}

	counts := make([]int, max)
	for k, v := range m {
		if i, err := strconv.Atoi(k); err == nil && i >= 1 {
			counts[i-1] = int(v)
		}
	}
	*a = counts
	return nil
}

// Total returns the number of completed games in the histogram.
func (a AttemptCounts) Total() int {
	total := 0
	for _, c := range a {
		total += c
	}
	return total
}

// Result is the immutable aggregate snapshot of one experiment run,
// created once when the run ends and written once to the store.
type Result struct {
	APIProvider          string        `json:"api_provider"`
	Model                string        `json:"model"`
	Timestamp            string        `json:"timestamp"`
	NumberRange          int           `json:"number_range"`
	NumGames             int           `json:"num_games"`
	AttemptCounts        AttemptCounts `json:"attempt_counts"`
	CumulativePercentage []float64     `json:"cumulative_percentage"`
	GamesCompleted       int           `json:"games_completed"`
	GamesFailed          int           `json:"games_failed"`
}
