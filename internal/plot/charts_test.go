package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urban-eriksson/LLM-guessing-game/internal/results"
)

func sampleRecords() []*results.Result {
	return []*results.Result{
		{
			APIProvider:          "control",
			Model:                "control",
			NumberRange:          5,
			NumGames:             10,
			AttemptCounts:        results.AttemptCounts{2, 2, 2, 2, 2},
			CumulativePercentage: []float64{20, 40, 60, 80, 100},
			GamesCompleted:       10,
		},
		{
			APIProvider:          "anthropic",
			Model:                "claude-sonnet-4-20250514",
			NumberRange:          5,
			NumGames:             10,
			AttemptCounts:        results.AttemptCounts{4, 3, 1, 0, 1},
			CumulativePercentage: []float64{40, 70, 80, 80, 90},
			GamesCompleted:       9,
			GamesFailed:          1,
		},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")
	if err := Bars(sampleRecords(), path); err != nil {
		t.Fatalf("Bars() error = %v", err)
	}
	assertPNG(t, path)
}

func TestStaircase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staircase.png")
	if err := Staircase(sampleRecords(), path); err != nil {
		t.Fatalf("Staircase() error = %v", err)
	}
	assertPNG(t, path)
}

func TestChartsRejectEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := Bars(nil, path); err == nil {
		t.Error("Bars(nil) succeeded, want error")
	}
	if err := Staircase(nil, path); err == nil {
		t.Error("Staircase(nil) succeeded, want error")
	}
}

func TestChartsHandleMixedRanges(t *testing.T) {
	records := sampleRecords()
	records = append(records, &results.Result{
		APIProvider:          "openai",
		Model:                "gpt-4o-mini",
		NumberRange:          3,
		NumGames:             4,
		AttemptCounts:        results.AttemptCounts{1, 2, 0},
		CumulativePercentage: []float64{25, 75, 75},
		GamesCompleted:       3,
		GamesFailed:          1,
	})

	dir := t.TempDir()
	if err := Bars(records, filepath.Join(dir, "bars.png")); err != nil {
		t.Fatalf("Bars() with mixed ranges error = %v", err)
	}
	if err := Staircase(records, filepath.Join(dir, "staircase.png")); err != nil {
		t.Fatalf("Staircase() with mixed ranges error = %v", err)
	}
}
