//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"ripplefield/internal/render"
	"ripplefield/internal/ripple"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fieldProvider interface {
	Field() *ripple.Field
}

// Overlay draws the wave origins and the viewbox outline on top of the
// markers.
type Overlay struct {
	src     fieldProvider
	proj    render.Projection
	w, h    int
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay for src.
func NewOverlay(src fieldProvider) *Overlay {
	o := &Overlay{src: src}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Resize records the projection used to place marks.
func (o *Overlay) Resize(proj render.Projection, w, h int) {
	o.proj = proj
	o.w, o.h = w, h
}

// Update toggles visibility on O and reports whether it changed.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.visible = !o.visible
		return true
	}
	return false
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.w <= 0 || o.h <= 0 {
		return
	}
	field := o.src.Field()
	outline := Outline(field.Viewbox(), o.proj, o.w, o.h)
	edge := color.RGBA{R: 90, G: 130, B: 170, A: 160}
	for i := range outline {
		a, b := outline[i], outline[(i+1)%len(outline)]
		o.drawLine(screen, a[0], a[1], b[0], b[1], 1, edge)
	}

	size := math.Max(6, o.proj.MarkerPx(o.w)*2)
	for _, m := range SeedMarks(field, o.proj, o.w, o.h) {
		col := phaseColor(m.Phase)
		o.drawLine(screen, m.X-size, m.Y, m.X+size, m.Y, 1.5, col)
		o.drawLine(screen, m.X, m.Y-size, m.X, m.Y+size, 1.5, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// phaseColor shades a seed by where in the cycle it fires.
func phaseColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(255 - 120*t)),
		G: uint8(math.Round(170 + 70*t)),
		B: uint8(math.Round(80 + 150*t)),
		A: 230,
	}
}
