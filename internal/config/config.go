// Package config holds the command-line and file configuration shared by
// every ripplefield frontend.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"ripplefield/internal/ripple"
)

// ReducedMotionEnv, when set to a true value, freezes the animation.
const ReducedMotionEnv = "RIPPLE_REDUCED_MOTION"

// ErrNoSource is returned by Validate when no data source is configured.
var ErrNoSource = errors.New("no data source given (use -data)")

// Config represents the command-line parameters for the application.
type Config struct {
	Source     string
	ConfigFile string

	Width  int
	Height int

	IdleColor   string
	BrightColor string

	ReducedMotion bool
	DPRCap        float64
	FPSCap        float64

	LogLevel string

	Ripple ripple.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       960,
		Height:      540,
		IdleColor:   "#1b2230",
		BrightColor: "#7fd4ff",
		LogLevel:    "info",
		Ripple:      ripple.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "data", c.Source, "point data: file path, - for stdin, or http(s) URL")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON config file")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.StringVar(&c.IdleColor, "idle-color", c.IdleColor, "idle marker color (hex)")
	fs.StringVar(&c.BrightColor, "bright-color", c.BrightColor, "bright marker color (hex)")
	fs.BoolVar(&c.ReducedMotion, "reduced-motion", c.ReducedMotion, "freeze the animation at time zero")
	fs.Float64Var(&c.DPRCap, "dpr-cap", c.DPRCap, "cap on device pixel ratio (0 = uncapped)")
	fs.Float64Var(&c.FPSCap, "fps-cap", c.FPSCap, "cap on drawn frames per second (0 = uncapped)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")

	r := &c.Ripple
	fs.Float64Var(&r.TargetDotPx, "dot-px", r.TargetDotPx, "marker edge length in screen pixels")
	fs.Float64Var(&r.CornerPct, "corner-pct", r.CornerPct, "corner rounding 0..1")
	fs.Float64Var(&r.SeedFraction, "seed-fraction", r.SeedFraction, "fraction of points used as wave origins")
	fs.Float64Var(&r.CycleSec, "cycle", r.CycleSec, "seconds per ripple cycle")
	fs.Float64Var(&r.RngJitter, "jitter", r.RngJitter, "seconds of random phase jitter per point")
	fs.IntVar(&r.MaxSeeds, "max-seeds", r.MaxSeeds, "maximum number of wave origins")
	fs.Int64Var(&r.Seed, "rng-seed", r.Seed, "random seed (0 = time based)")
}

// Resolve applies the optional config file and the environment. Flags that
// were set explicitly on fs win over file values.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.ConfigFile != "" {
		fc, err := LoadFile(c.ConfigFile)
		if err != nil {
			return err
		}
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fc.apply(c, explicit)
	}
	if v, ok := os.LookupEnv(ReducedMotionEnv); ok && envTrue(v) {
		c.ReducedMotion = true
	}
	return c.Validate()
}

// Validate checks the configuration before any data is loaded.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return ErrNoSource
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if !validCap(c.DPRCap) || !validCap(c.FPSCap) {
		return fmt.Errorf("caps must be finite and not negative (dpr %v, fps %v)", c.DPRCap, c.FPSCap)
	}
	return c.Ripple.Validate()
}

func validCap(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func envTrue(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
