package ripple

import (
	"ripplefield/internal/core"
)

// Field is the immutable simulation state of one render session: the points,
// their viewbox, the wave origins and the per-point delays.
type Field struct {
	cfg     Config
	points  []core.Point
	viewbox core.Viewbox
	seeds   []Seed
	delays  []float64
}

// Build derives a Field from points. The viewbox is computed once; seeds and
// delays are drawn from rng.
func Build(points []core.Point, cfg Config, rng core.Source) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vb, err := ComputeViewbox(points)
	if err != nil {
		return nil, err
	}
	f := &Field{cfg: cfg, points: points, viewbox: vb}
	f.seeds, f.delays = f.draw(rng)
	core.Logger().Info("ripple field built",
		"points", len(points),
		"seeds", len(f.seeds),
		"viewbox_w", vb.Width,
		"viewbox_h", vb.Height)
	return f, nil
}

// Reseed returns a new Field over the same points and viewbox with freshly
// drawn seeds and delays. The receiver is left untouched.
func (f *Field) Reseed(rng core.Source) *Field {
	next := &Field{cfg: f.cfg, points: f.points, viewbox: f.viewbox}
	next.seeds, next.delays = next.draw(rng)
	core.Logger().Debug("ripple field reseeded", "seeds", len(next.seeds))
	return next
}

func (f *Field) draw(rng core.Source) ([]Seed, []float64) {
	seeds := SelectSeeds(len(f.points), f.cfg.SeedFraction, f.cfg.MaxSeeds, f.cfg.CycleSec, rng)
	delays := BuildDelays(f.points, seeds, f.viewbox, f.cfg.CycleSec, f.cfg.RngJitter, rng)
	return seeds, delays
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config { return f.cfg }

// Points exposes the point set. Callers must not modify it.
func (f *Field) Points() []core.Point { return f.points }

// Viewbox returns the padded bounds of the point set.
func (f *Field) Viewbox() core.Viewbox { return f.viewbox }

// Seeds exposes the wave origins in ascending index order.
func (f *Field) Seeds() []Seed { return f.seeds }

// Delays exposes the per-point delays. Callers must not modify it.
func (f *Field) Delays() []float64 { return f.delays }

// Cycle returns the ripple period in seconds.
func (f *Field) Cycle() float64 { return f.cfg.CycleSec }

// Len returns the number of points.
func (f *Field) Len() int { return len(f.points) }
