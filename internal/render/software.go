package render

import (
	"image"
	"image/color"
	"math"

	"ripplefield/internal/core"
)

// Software rasterizes instances on the CPU with the same vertex placement and
// fragment math as the GPU pipeline. It serves the headless and terminal
// frontends and doubles as the reference for the shader.
type Software struct {
	inst Instances
	proj Projection
	size core.Size
}

// NewSoftware returns a rasterizer for inst. Call Resize before Render.
func NewSoftware(inst Instances) *Software {
	return &Software{inst: inst}
}

// SetInstances swaps the attribute buffers, for example after a reseed.
func (s *Software) SetInstances(inst Instances) { s.inst = inst }

// Resize updates the projection and target size. Attribute buffers are not
// touched.
func (s *Software) Resize(proj Projection, w, h int) {
	s.proj = proj
	s.size = core.Size{W: w, H: h}
}

// Clear fills dst with c.
func Clear(dst *image.RGBA, c color.Color) {
	fillRGBA(dst, color.RGBAModel.Convert(c).(color.RGBA))
}

// Render draws every instance into dst at the time carried by uni. Pixels
// outside each marker's mask are left as they were.
func (s *Software) Render(dst *image.RGBA, uni Uniforms) {
	b := dst.Bounds()
	w, h := s.size.W, s.size.H
	if w <= 0 || h <= 0 {
		return
	}
	if b.Dx() < w {
		w = b.Dx()
	}
	if b.Dy() < h {
		h = b.Dy()
	}
	m := s.proj.MarkerSize
	for i := 0; i < s.inst.Len(); i++ {
		cx, cy := s.inst.Center(i)
		x0, y0 := s.screenPos(cx-0.5*m, cy-0.5*m)
		x1, y1 := s.screenPos(cx+0.5*m, cy+0.5*m)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		spanX, spanY := x1-x0, y1-y0
		if spanX <= 0 || spanY <= 0 {
			continue
		}
		px0 := clampInt(int(math.Floor(x0)), 0, w)
		px1 := clampInt(int(math.Ceil(x1)), 0, w)
		py0 := clampInt(int(math.Floor(y0)), 0, h)
		py1 := clampInt(int(math.Ceil(y1)), 0, h)
		delay := float64(s.inst.Delays[i])
		for py := py0; py < py1; py++ {
			v := (float64(py)+0.5-y0)/spanY - 0.5
			for px := px0; px < px1; px++ {
				u := (float64(px)+0.5-x0)/spanX - 0.5
				c, ok := ShadePixel(u, v, delay, uni)
				if !ok {
					continue
				}
				setRGBA(dst, px, py, c.RGBA())
			}
		}
	}
}

func (s *Software) screenPos(x, y float64) (float64, float64) {
	nx, ny := s.proj.Apply(x, y)
	return ToScreen(nx, ny, s.size.W, s.size.H)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
