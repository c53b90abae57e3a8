// Command ripple-sweep compares seed fractions over many RNG seeds to show
// how evenly the ripples spread across a cycle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"ripplefield/internal/report"
	"ripplefield/internal/ripple"
	"ripplefield/internal/source"
)

func main() {
	data := flag.String("data", "", "point data: file path, - for stdin, or http(s) URL")
	trials := flag.Int("trials", 8, "RNG seeds evaluated per seed fraction")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "first RNG seed; trials use consecutive seeds")
	list := flag.String("fractions", "0.05,0.1,0.2,0.3,0.5", "comma separated seed fractions")
	cycle := flag.Float64("cycle", ripple.DefaultConfig().CycleSec, "seconds per ripple cycle")
	jitter := flag.Float64("jitter", ripple.DefaultConfig().RngJitter, "seconds of phase jitter")
	maxSeeds := flag.Int("max-seeds", ripple.DefaultConfig().MaxSeeds, "maximum number of wave origins")
	flag.Parse()

	fractions, err := parseFractions(*list)
	if err != nil {
		log.Fatal(err)
	}
	base := ripple.DefaultConfig()
	base.CycleSec = *cycle
	base.RngJitter = *jitter
	base.MaxSeeds = *maxSeeds

	points, err := source.NewLoader().Load(context.Background(), *data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %d seed fractions over %d points (%d trials, %d workers)\n", len(fractions), len(points), *trials, *workers)
	start := time.Now()
	results, err := report.Sweep(points, base, fractions, *trials, *seed, *workers)
	if err != nil {
		log.Fatal(err)
	}

	best := results[0]
	for _, r := range results {
		fmt.Printf("  fraction=%.3f seeds=%d delayStd=%.3f peak=%.3f±%.3f\n",
			r.SeedFraction, r.Seeds, r.DelayStdDev, r.PeakActivity, r.PeakSpread)
		if r.PeakActivity < best.PeakActivity {
			best = r
		}
	}
	fmt.Printf("\nFlattest activity: fraction=%.3f (peak %.3f) in %s\n", best.SeedFraction, best.PeakActivity, time.Since(start).Round(time.Millisecond))
}

func parseFractions(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad fraction %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no seed fractions given")
	}
	return out, nil
}
