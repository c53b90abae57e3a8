package ripple

import (
	"ripplefield/internal/core"
)

// Parameters describes the field for the HUD.
func (f *Field) Parameters() core.ParameterSnapshot {
	cfg := f.cfg
	vb := f.viewbox
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Data",
			Params: []core.Parameter{
				core.IntParam("points", "Points", len(f.points)),
				core.FloatParam("viewbox_w", "Viewbox width", vb.Width, 2),
				core.FloatParam("viewbox_h", "Viewbox height", vb.Height, 2),
			},
		},
		{
			Name: "Ripple",
			Params: []core.Parameter{
				core.IntParam("seeds", "Seeds", len(f.seeds)),
				core.FloatParam("seed_fraction", "Seed fraction", cfg.SeedFraction, 2),
				core.IntParam("max_seeds", "Max seeds", cfg.MaxSeeds),
				core.FloatParam("cycle", "Cycle (s)", cfg.CycleSec, 1),
				core.FloatParam("jitter", "Jitter (s)", cfg.RngJitter, 2),
				core.FloatParam("wave_speed", "Wave speed", WaveSpeed(vb, cfg.CycleSec), 2),
			},
		},
		{
			Name: "Marker",
			Params: []core.Parameter{
				core.FloatParam("dot_px", "Dot size (px)", cfg.TargetDotPx, 1),
				core.FloatParam("corner_pct", "Corner", cfg.CornerPct, 2),
			},
		},
	}}
}
