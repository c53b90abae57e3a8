// Package session performs the one-time initialization shared by every
// frontend: config, point loading, field construction and theme.
package session

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"ripplefield/internal/config"
	"ripplefield/internal/core"
	"ripplefield/internal/driver"
	"ripplefield/internal/render"
	"ripplefield/internal/ripple"
	"ripplefield/internal/source"
)

// Session holds the state derived from a configuration. Nothing in it
// changes per frame; Reseed swaps the field pointer.
type Session struct {
	id      string
	cfg     *config.Config
	field   *ripple.Field
	theme   render.Theme
	rng     *core.RNG
	rngSeed int64
}

// New loads points through loader and builds the initial field. A zero RNG
// seed is replaced with a time-based one.
func New(ctx context.Context, cfg *config.Config, loader *source.Loader) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("session: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if loader == nil {
		loader = source.NewLoader()
	}
	points, err := loader.Load(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}
	return FromPoints(cfg, points)
}

// FromPoints builds a session from points that are already in memory.
func FromPoints(cfg *config.Config, points []core.Point) (*Session, error) {
	seed := cfg.Ripple.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := core.NewRNG(seed)
	field, err := ripple.Build(points, cfg.Ripple, rng)
	if err != nil {
		return nil, err
	}
	theme, errs := render.ThemeFromHex(cfg.IdleColor, cfg.BrightColor)
	for _, e := range errs {
		core.Logger().Warn("theme color ignored", "err", e)
	}
	s := &Session{id: uuid.New().String(), cfg: cfg, field: field, theme: theme, rng: rng, rngSeed: seed}
	core.Logger().Info("session ready", "session", s.id, "rng_seed", seed, "reduced_motion", cfg.ReducedMotion)
	return s, nil
}

// ID identifies the session in logs and export manifests.
func (s *Session) ID() string { return s.id }

// Config returns the resolved configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Field returns the current field.
func (s *Session) Field() *ripple.Field { return s.field }

// Theme returns the decoded colors.
func (s *Session) Theme() render.Theme { return s.theme }

// RNGSeed returns the seed the RNG was created with.
func (s *Session) RNGSeed() int64 { return s.rngSeed }

// Reseed draws new seeds and delays from the session RNG and makes the
// result current.
func (s *Session) Reseed() *ripple.Field {
	s.field = s.field.Reseed(s.rng)
	return s.field
}

// Instances packs the current field for a rasterizer.
func (s *Session) Instances() render.Instances { return render.NewInstances(s.field) }

// Uniforms returns the draw constants of the current field at time t.
func (s *Session) Uniforms(t float64) render.Uniforms {
	return render.NewUniforms(s.field, s.theme, t)
}

// Projection maps the current viewbox onto a w×h surface whose pixels are
// logical pixels.
func (s *Session) Projection(w, h int) render.Projection {
	return s.ScaledProjection(w, h, 1)
}

// ScaledProjection maps the viewbox onto a w×h physical surface drawn at
// scale physical pixels per logical pixel. Marker size stays in logical
// pixels, so it does not change with the device scale.
func (s *Session) ScaledProjection(w, h int, scale float64) render.Projection {
	if !(scale > 0) {
		scale = 1
	}
	proj := render.NewProjection(s.field.Viewbox(), float64(w), float64(h), s.cfg.Ripple.TargetDotPx*scale)
	core.Logger().Debug("projection updated", "width", w, "height", h, "scale", scale, "marker", proj.MarkerSize)
	return proj
}

// DeviceScale caps a device pixel ratio at limit (0 means uncapped) and
// falls back to 1 for unusable values.
func DeviceScale(dpr, limit float64) float64 {
	if limit > 0 && dpr > limit {
		dpr = limit
	}
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		return 1
	}
	return dpr
}

// NewDriver returns a frame driver honoring reduced motion and the fps cap.
func (s *Session) NewDriver() *driver.Driver {
	return driver.New(driver.Options{ReducedMotion: s.cfg.ReducedMotion, FPSCap: s.cfg.FPSCap})
}

// Parameters returns the read-only parameter snapshot shown by the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.field.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Session",
		Params: []core.Parameter{
			core.TextParam("session", "Session", s.id[:8]),
			core.TextParam("source", "Source", s.cfg.Source),
			core.TextParam("rng_seed", "RNG seed", fmt.Sprint(s.rngSeed)),
			core.TextParam("reduced_motion", "Reduced motion", fmt.Sprint(s.cfg.ReducedMotion)),
		},
	})
	return snap
}
