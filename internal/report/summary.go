// Package report summarizes a ripple field: delay statistics, activity over
// a cycle, and charts of the envelope and delay distribution.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ripplefield/internal/core"
	"ripplefield/internal/ripple"
)

// Summary holds the headline numbers of a field.
type Summary struct {
	Points    int
	Seeds     int
	Viewbox   core.Viewbox
	Cycle     float64
	WaveSpeed float64

	DelayMean   float64
	DelayStdDev float64
	DelayMin    float64
	DelayMax    float64

	// PeakActivity is the highest mean intensity over one sampled cycle.
	PeakActivity float64
	// MeanActivity is the mean intensity averaged over the cycle.
	MeanActivity float64
}

// activitySamples is the number of time steps used to sample a cycle.
const activitySamples = 200

// Summarize computes a Summary of f.
func Summarize(f *ripple.Field) Summary {
	delays := f.Delays()
	mean, std := stat.MeanStdDev(delays, nil)
	activity := Activity(f, activitySamples)
	levels := make([]float64, len(activity))
	for i, a := range activity {
		levels[i] = a.Y
	}
	return Summary{
		Points:       f.Len(),
		Seeds:        len(f.Seeds()),
		Viewbox:      f.Viewbox(),
		Cycle:        f.Cycle(),
		WaveSpeed:    ripple.WaveSpeed(f.Viewbox(), f.Cycle()),
		DelayMean:    mean,
		DelayStdDev:  std,
		DelayMin:     floats.Min(delays),
		DelayMax:     floats.Max(delays),
		PeakActivity: floats.Max(levels),
		MeanActivity: stat.Mean(levels, nil),
	}
}

// Sample is one (time, value) pair.
type Sample struct {
	X, Y float64
}

// Activity samples the mean marker intensity at n evenly spaced times over
// one cycle.
func Activity(f *ripple.Field, n int) []Sample {
	if n < 1 {
		n = 1
	}
	cycle := f.Cycle()
	delays := f.Delays()
	out := make([]Sample, n)
	for k := 0; k < n; k++ {
		t := cycle * float64(k) / float64(n)
		sum := 0.0
		for _, d := range delays {
			sum += ripple.InstanceIntensity(t, d, cycle)
		}
		out[k] = Sample{X: t, Y: sum / float64(len(delays))}
	}
	return out
}

// WriteText prints the summary as an aligned table.
func (s Summary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"points", fmt.Sprint(s.Points)},
		{"seeds", fmt.Sprint(s.Seeds)},
		{"viewbox", fmt.Sprintf("%.2f,%.2f %.2fx%.2f", s.Viewbox.X, s.Viewbox.Y, s.Viewbox.Width, s.Viewbox.Height)},
		{"cycle (s)", fmt.Sprintf("%.2f", s.Cycle)},
		{"wave speed", fmt.Sprintf("%.3f", s.WaveSpeed)},
		{"delay mean", fmt.Sprintf("%.3f", s.DelayMean)},
		{"delay stddev", fmt.Sprintf("%.3f", s.DelayStdDev)},
		{"delay range", fmt.Sprintf("[%.4f, %.4f]", s.DelayMin, s.DelayMax)},
		{"activity mean", fmt.Sprintf("%.3f", s.MeanActivity)},
		{"activity peak", fmt.Sprintf("%.3f", s.PeakActivity)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
