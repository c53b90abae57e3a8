package render

import (
	"math"

	"ripplefield/internal/core"
)

const minPxPerUnit = 1e-6

// Projection maps data space onto normalized device space ([-1, 1]², Y up)
// and carries the marker edge length in data units.
type Projection struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
	// PxPerUnit is the horizontal screen density of the viewbox.
	PxPerUnit float64
	// MarkerSize is the marker edge length in data units.
	MarkerSize float64
}

// NewProjection fits vb onto a screenW×screenH surface. Data Y grows
// downward on screen; the scale flips it for device space.
func NewProjection(vb core.Viewbox, screenW, screenH, targetDotPx float64) Projection {
	if screenW < 1 {
		screenW = 1
	}
	pxPerUnit := screenW / vb.Width
	if !(pxPerUnit > minPxPerUnit) || math.IsInf(pxPerUnit, 0) {
		pxPerUnit = minPxPerUnit
	}
	sx := 2 / vb.Width
	sy := -2 / vb.Height
	return Projection{
		ScaleX:     sx,
		ScaleY:     sy,
		OffsetX:    -1 - vb.X*sx,
		OffsetY:    1 - vb.Y*sy,
		PxPerUnit:  pxPerUnit,
		MarkerSize: targetDotPx / pxPerUnit,
	}
}

// Apply maps a data-space position to device space.
func (p Projection) Apply(x, y float64) (float64, float64) {
	return x*p.ScaleX + p.OffsetX, y*p.ScaleY + p.OffsetY
}

// ToScreen maps device coordinates onto a w×h pixel surface with Y down.
func ToScreen(nx, ny float64, w, h int) (float64, float64) {
	return (nx + 1) * 0.5 * float64(w), (1 - ny) * 0.5 * float64(h)
}

// MarkerPx returns the marker edge length in pixels on a surface of width w
// showing the projected viewbox.
func (p Projection) MarkerPx(w int) float64 {
	return p.MarkerSize * p.ScaleX * 0.5 * float64(w)
}
