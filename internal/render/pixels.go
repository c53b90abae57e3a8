package render

import (
	"image"
	"image/color"
)

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RGBA converts a shaded color to an opaque 8-bit pixel. Values are written
// as the shader produces them.
func (a LinearRGB) RGBA() color.RGBA {
	return color.RGBA{R: quantize(a.R), G: quantize(a.G), B: quantize(a.B), A: 255}
}

// fillRGBA paints every pixel of dst with c.
func fillRGBA(dst *image.RGBA, c color.RGBA) {
	buf := dst.Pix
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	}
}

// setRGBA writes c at (x, y) relative to dst's bounds origin.
func setRGBA(dst *image.RGBA, x, y int, c color.RGBA) {
	base := y*dst.Stride + x*4
	dst.Pix[base+0] = c.R
	dst.Pix[base+1] = c.G
	dst.Pix[base+2] = c.B
	dst.Pix[base+3] = c.A
}
