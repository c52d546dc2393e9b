package benchmark

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var barColors = []color.RGBA{
	{R: 50, G: 100, B: 200, A: 255},
	{R: 200, G: 100, B: 100, A: 255},
	{G: 160, B: 90, A: 255},
}

// NewChart builds a bar chart of total elapsed seconds per provider.
func NewChart(timings []Timing) (*plot.Plot, error) {
	if len(timings) == 0 {
		return nil, fmt.Errorf("no timings to chart")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Fibonacci n=%d, %d runs", timings[0].N, timings[0].Runs)
	p.Y.Label.Text = "Total time (s)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	secs := make([]float64, len(timings))
	names := make([]string, len(timings))
	for i, t := range timings {
		secs[i] = t.Seconds()
		names[i] = Label(t.Provider)
	}
	// Headroom above the tallest bar keeps its top off the frame.
	if top := floats.Max(secs); top > 0 {
		p.Y.Max = top * 1.1
	}

	width := vg.Points(40)
	for i := range timings {
		values := make(plotter.Values, len(timings))
		values[i] = secs[i]
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = barColors[i%len(barColors)]
		p.Add(bars)
		p.Legend.Add(names[i], bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)
	return p, nil
}

// SaveChart renders the timing chart to path; the extension picks the
// format (svg, png, pdf, ...).
func SaveChart(timings []Timing, path string) error {
	p, err := NewChart(timings)
	if err != nil {
		return err
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		return fmt.Errorf("chart path %q needs a file extension", path)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
