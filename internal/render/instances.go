package render

import (
	"ripplefield/internal/ripple"
)

// UnitQuad is the shared marker shape, wound as two triangles over the
// corners (0,1,2) and (0,2,3).
var UnitQuad = [4][2]float32{
	{-0.5, -0.5},
	{0.5, -0.5},
	{0.5, 0.5},
	{-0.5, 0.5},
}

// QuadIndices indexes UnitQuad.
var QuadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// Instances holds the per-point attribute buffers: one center (x, y) and one
// delay per point.
type Instances struct {
	Centers []float32
	Delays  []float32
}

// NewInstances packs a field into attribute buffers.
func NewInstances(f *ripple.Field) Instances {
	points := f.Points()
	delays := f.Delays()
	inst := Instances{
		Centers: make([]float32, 2*len(points)),
		Delays:  make([]float32, len(points)),
	}
	for i, p := range points {
		inst.Centers[2*i] = float32(p.X)
		inst.Centers[2*i+1] = float32(p.Y)
		inst.Delays[i] = float32(delays[i])
	}
	return inst
}

// Len returns the number of instances.
func (in Instances) Len() int { return len(in.Delays) }

// Center returns the data-space center of instance i.
func (in Instances) Center(i int) (float64, float64) {
	return float64(in.Centers[2*i]), float64(in.Centers[2*i+1])
}

// Uniforms are the per-draw constants of the pipeline.
type Uniforms struct {
	Time   float64
	Cycle  float64
	Corner float64
	Theme  Theme
}

// NewUniforms builds uniforms for a field at time t.
func NewUniforms(f *ripple.Field, theme Theme, t float64) Uniforms {
	cfg := f.Config()
	return Uniforms{
		Time:   t,
		Cycle:  cfg.CycleSec,
		Corner: ripple.CornerFraction(cfg.CornerPct),
		Theme:  theme,
	}
}
