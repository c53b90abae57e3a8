package ripple

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Config holds the tunables of the ripple simulation.
type Config struct {
	// TargetDotPx is the desired marker edge length in screen pixels.
	TargetDotPx float64
	// CornerPct rounds marker corners, 0..1. It is halved internally.
	CornerPct float64
	// SeedFraction is the fraction of points chosen as wave origins.
	SeedFraction float64
	// CycleSec is the length of one ripple cycle in seconds.
	CycleSec float64
	// RngJitter is the width of the per-point phase jitter in seconds.
	RngJitter float64
	// MaxSeeds caps the number of wave origins.
	MaxSeeds int
	// Seed feeds the RNG. Zero means a time-based seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TargetDotPx:  4,
		CornerPct:    0.12,
		SeedFraction: 0.20,
		CycleSec:     10,
		RngJitter:    0.5,
		MaxSeeds:     64,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dot_px"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TargetDotPx = parsed
		}
	}
	if v, ok := cfg["corner_pct"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.CornerPct = parsed
		}
	}
	if v, ok := cfg["seed_fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.SeedFraction = parsed
		}
	}
	if v, ok := cfg["cycle"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CycleSec = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.RngJitter = parsed
		}
	}
	if v, ok := cfg["max_seeds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.MaxSeeds = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid ripple config")

// Validate reports the first out-of-range field. NaN and infinities are
// rejected everywhere.
func (c Config) Validate() error {
	switch {
	case !(c.TargetDotPx > 0) || math.IsInf(c.TargetDotPx, 0):
		return fmt.Errorf("%w: dot size %v must be positive and finite", ErrInvalidConfig, c.TargetDotPx)
	case !(c.CornerPct >= 0 && c.CornerPct <= 1):
		return fmt.Errorf("%w: corner pct %v outside [0,1]", ErrInvalidConfig, c.CornerPct)
	case !(c.SeedFraction > 0 && c.SeedFraction <= 1):
		return fmt.Errorf("%w: seed fraction %v outside (0,1]", ErrInvalidConfig, c.SeedFraction)
	case !(c.CycleSec > 0) || math.IsInf(c.CycleSec, 0):
		return fmt.Errorf("%w: cycle %v must be positive and finite", ErrInvalidConfig, c.CycleSec)
	case !(c.RngJitter >= 0) || math.IsInf(c.RngJitter, 0):
		return fmt.Errorf("%w: jitter %v must not be negative", ErrInvalidConfig, c.RngJitter)
	case c.MaxSeeds < 1:
		return fmt.Errorf("%w: max seeds %d must be at least 1", ErrInvalidConfig, c.MaxSeeds)
	}
	return nil
}
