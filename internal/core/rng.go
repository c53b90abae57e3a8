package core

import "math/rand/v2"

// Source is the random number source consumed by seed selection and delay
// jitter. Implementations are not required to be safe for concurrent use.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Sequence replays a fixed list of values in [0, 1). It wraps around when
// exhausted. IntN scales the next value into [0, n).
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. An empty sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// IntN maps the next scripted value into [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int { return s.next }
