package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const maxFileSize = 1 << 20

// File mirrors Config for JSON files. Only keys present in the file are
// applied.
type File struct {
	Data        *string  `json:"data,omitempty"`
	Width       *int     `json:"width,omitempty"`
	Height      *int     `json:"height,omitempty"`
	IdleColor   *string  `json:"idle_color,omitempty"`
	BrightColor *string  `json:"bright_color,omitempty"`
	DPRCap      *float64 `json:"dpr_cap,omitempty"`
	FPSCap      *float64 `json:"fps_cap,omitempty"`
	LogLevel    *string  `json:"log_level,omitempty"`

	DotPx        *float64 `json:"dot_px,omitempty"`
	CornerPct    *float64 `json:"corner_pct,omitempty"`
	SeedFraction *float64 `json:"seed_fraction,omitempty"`
	CycleSec     *float64 `json:"cycle_sec,omitempty"`
	RngJitter    *float64 `json:"rng_jitter,omitempty"`
	MaxSeeds     *int     `json:"max_seeds,omitempty"`
	RNGSeed      *int64   `json:"rng_seed,omitempty"`
}

// LoadFile reads a JSON config file.
func LoadFile(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	fc := &File{}
	if err := json.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return fc, nil
}

func (f *File) apply(c *Config, explicit map[string]bool) {
	setString(&c.Source, f.Data, explicit["data"])
	setInt(&c.Width, f.Width, explicit["width"])
	setInt(&c.Height, f.Height, explicit["height"])
	setString(&c.IdleColor, f.IdleColor, explicit["idle-color"])
	setString(&c.BrightColor, f.BrightColor, explicit["bright-color"])
	setFloat(&c.DPRCap, f.DPRCap, explicit["dpr-cap"])
	setFloat(&c.FPSCap, f.FPSCap, explicit["fps-cap"])
	setString(&c.LogLevel, f.LogLevel, explicit["log-level"])

	r := &c.Ripple
	setFloat(&r.TargetDotPx, f.DotPx, explicit["dot-px"])
	setFloat(&r.CornerPct, f.CornerPct, explicit["corner-pct"])
	setFloat(&r.SeedFraction, f.SeedFraction, explicit["seed-fraction"])
	setFloat(&r.CycleSec, f.CycleSec, explicit["cycle"])
	setFloat(&r.RngJitter, f.RngJitter, explicit["jitter"])
	setInt(&r.MaxSeeds, f.MaxSeeds, explicit["max-seeds"])
	if f.RNGSeed != nil && !explicit["rng-seed"] {
		r.Seed = *f.RNGSeed
	}
}

func setString(dst *string, v *string, skip bool) {
	if v != nil && !skip {
		*dst = *v
	}
}

func setInt(dst *int, v *int, skip bool) {
	if v != nil && !skip {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64, skip bool) {
	if v != nil && !skip {
		*dst = *v
	}
}
