package ui

import (
	"fmt"
	"math"

	"ripplefield/internal/core"
	"ripplefield/internal/render"
	"ripplefield/internal/ripple"
)

// LineKind selects how a HUD line is styled.
type LineKind int

const (
	LineTitle LineKind = iota
	LineHeader
	LineParam
)

// Line is one row of the HUD panel.
type Line struct {
	Kind  LineKind
	Label string
	Value string
}

// Lines flattens a parameter snapshot into HUD rows, led by the run state
// and frame rate.
func Lines(snap core.ParameterSnapshot, state string, fps float64) []Line {
	lines := []Line{
		{Kind: LineTitle, Label: "Ripple field"},
		{Kind: LineParam, Label: "State", Value: state},
		{Kind: LineParam, Label: "FPS", Value: fmt.Sprintf("%.1f", fps)},
	}
	for _, group := range snap.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, Line{Kind: LineHeader, Label: group.Name})
		for _, p := range group.Params {
			lines = append(lines, Line{Kind: LineParam, Label: p.Label, Value: p.Value})
		}
	}
	return lines
}

// Mark is a seed origin in surface pixels.
type Mark struct {
	X, Y  float64
	Phase float64
}

// SeedMarks projects the wave origins of f onto a w×h surface.
func SeedMarks(f *ripple.Field, proj render.Projection, w, h int) []Mark {
	points := f.Points()
	seeds := f.Seeds()
	marks := make([]Mark, 0, len(seeds))
	for _, s := range seeds {
		p := points[s.Index]
		nx, ny := proj.Apply(p.X, p.Y)
		x, y := render.ToScreen(nx, ny, w, h)
		marks = append(marks, Mark{X: x, Y: y, Phase: s.Phase / f.Cycle()})
	}
	return marks
}

// Outline returns the viewbox corners in surface pixels, clockwise from the
// data-space origin.
func Outline(vb core.Viewbox, proj render.Projection, w, h int) [4][2]float64 {
	corners := [4][2]float64{
		{vb.X, vb.Y},
		{vb.X + vb.Width, vb.Y},
		{vb.X + vb.Width, vb.Y + vb.Height},
		{vb.X, vb.Y + vb.Height},
	}
	var out [4][2]float64
	for i, c := range corners {
		nx, ny := proj.Apply(c[0], c[1])
		out[i][0], out[i][1] = render.ToScreen(nx, ny, w, h)
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
