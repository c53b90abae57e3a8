package ripple

import (
	"math"

	"ripplefield/internal/core"
)

const (
	// crossFraction is the share of the viewbox diagonal a wave covers per cycle.
	crossFraction = 0.60
	// zeroDelayNudge replaces a delay of exactly zero.
	zeroDelayNudge = -0.0001
)

// WaveSpeed returns the propagation speed in data units per second.
func WaveSpeed(vb core.Viewbox, cycle float64) float64 {
	return math.Hypot(vb.Width, vb.Height) / (cycle * crossFraction)
}

// NearestSeed returns the position in seeds of the seed closest to p. Ties go
// to the earliest seed in scan order.
func NearestSeed(p core.Point, points []core.Point, seeds []Seed) int {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range seeds {
		q := points[s.Index]
		d := math.Hypot(p.X-q.X, p.Y-q.Y)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// BuildDelays computes one delay per point in [-cycle, 0): the negated
// arrival phase of the ripple from the point's nearest seed, including a
// uniform jitter of total width jitter seconds.
func BuildDelays(points []core.Point, seeds []Seed, vb core.Viewbox, cycle, jitter float64, rng core.Source) []float64 {
	delays := make([]float64, len(points))
	if len(seeds) == 0 {
		for i := range delays {
			delays[i] = zeroDelayNudge
		}
		return delays
	}
	speed := WaveSpeed(vb, cycle)
	for i, p := range points {
		s := seeds[NearestSeed(p, points, seeds)]
		q := points[s.Index]
		travel := math.Hypot(p.X-q.X, p.Y-q.Y) / speed
		j := (rng.Float64() - 0.5) * jitter
		delays[i] = phaseToDelay(s.Phase+travel+j, cycle)
	}
	return delays
}

func phaseToDelay(raw, cycle float64) float64 {
	d := -Wrap(raw, cycle)
	if d == 0 {
		return zeroDelayNudge
	}
	return d
}

// Wrap returns x modulo m in [0, m) for positive m, also for negative x.
func Wrap(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}
