package report

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"ripplefield/internal/ripple"
)

var (
	lineColor = color.RGBA{R: 40, G: 120, B: 200, A: 255}
	barColor  = color.RGBA{R: 127, G: 180, B: 230, A: 255}
)

// EnvelopePlot charts the intensity curve over one normalized cycle.
func EnvelopePlot(samples int) (*plot.Plot, error) {
	if samples < 2 {
		samples = 2
	}
	pts := make(plotter.XYs, samples)
	for i := range pts {
		x := float64(i) / float64(samples-1)
		pts[i] = plotter.XY{X: x, Y: ripple.Intensity(x)}
	}
	p := plot.New()
	p.Title.Text = "Ripple envelope"
	p.X.Label.Text = "Normalized cycle time"
	p.Y.Label.Text = "Intensity"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// DelayHistogram charts the distribution of per-point delays.
func DelayHistogram(f *ripple.Field, bins int) (*plot.Plot, error) {
	if bins < 1 {
		bins = 1
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Delay distribution (%d points, %d seeds)", f.Len(), len(f.Seeds()))
	p.X.Label.Text = "Delay (s)"
	p.Y.Label.Text = "Points"
	hist, err := plotter.NewHist(plotter.Values(f.Delays()), bins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = barColor
	p.Add(hist)
	return p, nil
}

// ActivityPlot charts the mean intensity over one cycle.
func ActivityPlot(f *ripple.Field, samples int) (*plot.Plot, error) {
	activity := Activity(f, samples)
	pts := make(plotter.XYs, len(activity))
	for i, a := range activity {
		pts[i] = plotter.XY{X: a.X, Y: a.Y}
	}
	p := plot.New()
	p.Title.Text = "Mean intensity over a cycle"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Mean intensity"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// WriteCharts saves the envelope, delay histogram and activity charts as PNG
// files in dir and returns their paths.
func WriteCharts(f *ripple.Field, dir string) ([]string, error) {
	envelope, err := EnvelopePlot(400)
	if err != nil {
		return nil, fmt.Errorf("envelope plot: %w", err)
	}
	hist, err := DelayHistogram(f, 40)
	if err != nil {
		return nil, fmt.Errorf("delay histogram: %w", err)
	}
	activity, err := ActivityPlot(f, activitySamples)
	if err != nil {
		return nil, fmt.Errorf("activity plot: %w", err)
	}
	charts := []struct {
		name string
		p    *plot.Plot
	}{
		{"envelope.png", envelope},
		{"delays.png", hist},
		{"activity.png", activity},
	}
	var paths []string
	for _, c := range charts {
		path := filepath.Join(dir, c.name)
		if err := c.p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, fmt.Errorf("save %s: %w", c.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
