package ripple

import (
	"math"
	"slices"

	"ripplefield/internal/core"
)

// Seed is a wave origin: an index into the point set and its start phase in
// seconds, within [0, cycle).
type Seed struct {
	Index int
	Phase float64
}

// SeedCount returns round(n*fraction) clamped to [1, maxSeeds].
func SeedCount(n int, fraction float64, maxSeeds int) int {
	k := int(math.Round(float64(n) * fraction))
	if k > maxSeeds {
		k = maxSeeds
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	return k
}

// SelectSeeds picks a uniformly random subset of the n point indices. The
// chosen indices are returned in ascending order, each with an independent
// phase drawn from [0, cycle).
func SelectSeeds(n int, fraction float64, maxSeeds int, cycle float64, rng core.Source) []Seed {
	if n <= 0 {
		return nil
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	k := SeedCount(n, fraction, maxSeeds)
	chosen := perm[:k]
	slices.Sort(chosen)

	seeds := make([]Seed, k)
	for i, idx := range chosen {
		seeds[i] = Seed{Index: idx, Phase: rng.Float64() * cycle}
	}
	return seeds
}
