package report

import (
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ripplefield/internal/ripple"
)

// DelayBins counts delays into n equal-width bins spanning [-cycle, 0].
// It returns the bin lower edges and counts.
func DelayBins(f *ripple.Field, n int) ([]float64, []float64) {
	if n < 1 {
		n = 1
	}
	cycle := f.Cycle()
	dividers := make([]float64, n+1)
	floats.Span(dividers, -cycle, 0)
	sorted := slices.Clone(f.Delays())
	slices.Sort(sorted)
	counts := stat.Histogram(nil, dividers, sorted, nil)
	return dividers[:n], counts
}

// WriteHTML renders an interactive page with the delay distribution and the
// mean intensity over one cycle.
func WriteHTML(f *ripple.Field, w io.Writer) error {
	edges, counts := DelayBins(f, 40)
	labels := make([]string, len(edges))
	bars := make([]opts.BarData, len(counts))
	for i := range edges {
		labels[i] = fmt.Sprintf("%.2f", edges[i])
		bars[i] = opts.BarData{Value: counts[i]}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Ripple field", Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Delay distribution", Subtitle: fmt.Sprintf("points=%d seeds=%d", f.Len(), len(f.Seeds()))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Delay (s)", NameLocation: "middle", NameGap: 25}),
	)
	bar.SetXAxis(labels).AddSeries("delays", bars)

	activity := Activity(f, activitySamples)
	times := make([]string, len(activity))
	levels := make([]opts.LineData, len(activity))
	for i, a := range activity {
		times[i] = fmt.Sprintf("%.2f", a.X)
		levels[i] = opts.LineData{Value: a.Y}
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Mean intensity over a cycle"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
	)
	line.SetXAxis(times).AddSeries("activity", levels)

	page := components.NewPage()
	page.AddCharts(bar, line)
	return page.Render(w)
}
