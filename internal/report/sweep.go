package report

import (
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"ripplefield/internal/core"
	"ripplefield/internal/ripple"
)

// SweepResult aggregates the trials of one seed fraction.
type SweepResult struct {
	SeedFraction float64
	Seeds        int
	// DelayStdDev is averaged over trials.
	DelayStdDev float64
	// PeakActivity is averaged over trials; lower values mean the ripples
	// are spread more evenly across the cycle.
	PeakActivity float64
	// PeakSpread is the standard deviation of PeakActivity across trials.
	PeakSpread float64
}

// Sweep evaluates each seed fraction over trials RNG seeds starting at
// baseSeed, using workers goroutines. Results are sorted by fraction.
func Sweep(points []core.Point, base ripple.Config, fractions []float64, trials int, baseSeed int64, workers int) ([]SweepResult, error) {
	if trials < 1 {
		trials = 1
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	type job struct {
		fraction float64
		trial    int
	}
	type outcome struct {
		fraction float64
		summary  Summary
		err      error
	}

	jobs := make(chan job)
	results := make(chan outcome)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.SeedFraction = j.fraction
				f, err := ripple.Build(points, cfg, core.NewRNG(baseSeed+int64(j.trial)))
				if err != nil {
					results <- outcome{fraction: j.fraction, err: err}
					continue
				}
				results <- outcome{fraction: j.fraction, summary: Summarize(f)}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, fr := range fractions {
			for t := 0; t < trials; t++ {
				jobs <- job{fraction: fr, trial: t}
			}
		}
		close(jobs)
	}()

	byFraction := map[float64][]Summary{}
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		byFraction[res.fraction] = append(byFraction[res.fraction], res.summary)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	out := make([]SweepResult, 0, len(byFraction))
	for fr, sums := range byFraction {
		std := make([]float64, len(sums))
		peaks := make([]float64, len(sums))
		for i, s := range sums {
			std[i] = s.DelayStdDev
			peaks[i] = s.PeakActivity
		}
		peakMean, peakSpread := stat.MeanStdDev(peaks, nil)
		if len(peaks) < 2 {
			peakSpread = 0
		}
		out = append(out, SweepResult{
			SeedFraction: fr,
			Seeds:        sums[0].Seeds,
			DelayStdDev:  stat.Mean(std, nil),
			PeakActivity: peakMean,
			PeakSpread:   peakSpread,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].SeedFraction < out[b].SeedFraction })
	core.Logger().Debug("seed fraction sweep done", "fractions", len(out), "trials", trials)
	return out, nil
}
