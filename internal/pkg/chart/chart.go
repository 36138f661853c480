// Package chart renders the dashboard charts as PNGs for export.
package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/treescount/treedash/internal/pkg/census"
	"github.com/treescount/treedash/internal/pkg/treestats"
)

// Chart colors matching the web view: green, orange, purple.
var healthColors = map[string]color.Color{
	census.HealthGood: color.RGBA{R: 0x10, G: 0x96, B: 0x18, A: 0xFF},
	census.HealthFair: color.RGBA{R: 0xFF, G: 0xA1, B: 0x5A, A: 0xFF},
	census.HealthPoor: color.RGBA{R: 0x99, G: 0x00, B: 0x99, A: 0xFF},
}

var barWidth = vg.Points(40)

// HealthPNG renders the health-proportion bar chart for one selection.
func HealthPNG(proportions []treestats.HealthProportion, borough, species string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Health of %s Trees in %s", species, borough)
	p.X.Label.Text = "Tree Health Condition"
	p.Y.Label.Text = "Proportion"
	p.Y.Min, p.Y.Max = 0, 1

	// One single-slot bar chart per state keeps the per-state colors while
	// the bars still land on their own nominal positions.
	names := make([]string, len(proportions))
	for i, hp := range proportions {
		names[i] = hp.Health

		values := make(plotter.Values, len(proportions))
		values[i] = hp.Proportion
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build health bar chart: %w", err)
		}
		bars.Color = healthColors[hp.Health]
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(names...)

	return writePNG(p)
}

// StewardshipPNG renders the stacked per-bucket chart for one selection.
func StewardshipPNG(impact treestats.StewardshipImpact, borough, species string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Health of %s Trees in %s by Stewardship", species, borough)
	p.X.Label.Text = "Number of Stewardship"
	p.Y.Label.Text = "Proportion"
	// Stacked rounded proportions can nudge past 1.0, so only pin the floor.
	p.Y.Min = 0

	var prev *plotter.BarChart
	for _, series := range impact.Series {
		bars, err := plotter.NewBarChart(plotter.Values(series.Proportions), barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build stewardship bar chart: %w", err)
		}
		bars.Color = healthColors[series.Health]
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(series.Health, bars)
		prev = bars
	}
	p.NominalX(impact.Buckets...)
	p.Legend.Top = true

	return writePNG(p)
}

func writePNG(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart PNG: %w", err)
	}
	return buf.Bytes(), nil
}
