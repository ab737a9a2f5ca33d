// Package plot renders comparison charts from stored experiment results.
// Charts are display artifacts only; nothing downstream consumes them.
package plot

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/urban-eriksson/LLM-guessing-game/internal/results"
)

var referenceGray = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}

// maxRange returns the widest attempt range across records so records
// with different N share one axis.
func maxRange(records []*results.Result) int {
	max := 0
	for _, res := range records {
		if res.NumberRange > max {
			max = res.NumberRange
		}
	}
	return max
}

func recordLabel(res *results.Result) string {
	return fmt.Sprintf("%s (n=%d)", res.Model, res.NumGames)
}

// Bars writes a grouped per-attempt success-percentage bar chart for all
// records to a PNG at path, with a dashed reference line at the
// uniform-random expectation of 100/N percent.
func Bars(records []*results.Result, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no result records to plot")
	}
	n := maxRange(records)

	p := plot.New()
	p.Title.Text = "Success Rate by Attempt Number"
	p.X.Label.Text = "Attempt Number"
	p.Y.Label.Text = "Success Percentage (%)"
	p.Y.Min, p.Y.Max = 0, 105
	p.Legend.Top = true

	width := vg.Points(36) / vg.Length(len(records))
	for i, res := range records {
		values := make(plotter.Values, n)
		for j, count := range res.AttemptCounts {
			if j < n && res.NumGames > 0 {
				values[j] = float64(count) / float64(res.NumGames) * 100
			}
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("bar chart for %s: %w", res.Model, err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		bars.Offset = width*vg.Length(i) - width*vg.Length(len(records)-1)/2

		p.Add(bars)
		p.Legend.Add(recordLabel(res), bars)
	}

	// Uniform-random expectation: every attempt succeeds 100/N percent
	// of the time.
	expected := 100 / float64(n)
	ref, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: expected},
		{X: float64(n) - 0.5, Y: expected},
	})
	if err != nil {
		return err
	}
	ref.LineStyle.Color = referenceGray
	ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ref)
	p.Legend.Add(fmt.Sprintf("random (%.1f%%)", expected), ref)

	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	p.NominalX(names...)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// Staircase writes the cumulative success curves for all records as
// post-step lines to a PNG at path, together with the theoretical-optimal
// curve i/N*100 a perfectly consistent responder would produce.
func Staircase(records []*results.Result, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no result records to plot")
	}
	n := maxRange(records)

	p := plot.New()
	p.Title.Text = "Cumulative Success Rate in Number Guessing Game"
	p.X.Label.Text = "Attempt Number"
	p.Y.Label.Text = "Cumulative Success Percentage (%)"
	p.X.Min, p.X.Max = 0.5, float64(n)+0.5
	p.Y.Min, p.Y.Max = 0, 105
	p.Legend.Top = true
	p.Legend.Left = true

	for i, res := range records {
		pts := make(plotter.XYs, len(res.CumulativePercentage))
		for j, pct := range res.CumulativePercentage {
			pts[j] = plotter.XY{X: float64(j + 1), Y: pct}
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("staircase for %s: %w", res.Model, err)
		}
		line.StepStyle = plotter.PostStep
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(2)
		points.Color = plotutil.Color(i)

		p.Add(line, points)
		p.Legend.Add(recordLabel(res), line, points)
	}

	theo := make(plotter.XYs, n)
	for i := range theo {
		theo[i] = plotter.XY{
			X: float64(i + 1),
			Y: float64(i+1) / float64(n) * 100,
		}
	}
	ref, err := plotter.NewLine(theo)
	if err != nil {
		return err
	}
	ref.StepStyle = plotter.PostStep
	ref.LineStyle.Color = referenceGray
	ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ref)
	p.Legend.Add("theoretical optimal", ref)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
