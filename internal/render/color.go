package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// DisplayGamma is the exponent used to decode 8-bit theme colors.
const DisplayGamma = 2.2

// LinearRGB is a color in linear space, components in [0, 1].
type LinearRGB struct {
	R, G, B float32
}

// DecodeRGB8 converts gamma-encoded 8-bit channels to linear space.
func DecodeRGB8(r, g, b uint8) LinearRGB {
	return LinearRGB{R: decodeChannel(r), G: decodeChannel(g), B: decodeChannel(b)}
}

func decodeChannel(v uint8) float32 {
	return float32(math.Pow(float64(v)/255, DisplayGamma))
}

// Lerp returns a + w*(b-a).
func (a LinearRGB) Lerp(b LinearRGB, w float32) LinearRGB {
	return LinearRGB{
		R: a.R + w*(b.R-a.R),
		G: a.G + w*(b.G-a.G),
		B: a.B + w*(b.B-a.B),
	}
}

// Vec3 returns the components as a Kage vec3 uniform value.
func (a LinearRGB) Vec3() []float32 { return []float32{a.R, a.G, a.B} }

// ErrBadColor is wrapped by ParseHex failures.
var ErrBadColor = errors.New("bad color")

// ParseHex parses "#rgb" or "#rrggbb" (leading # optional) and decodes it to
// linear space.
func ParseHex(s string) (LinearRGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return LinearRGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return LinearRGB{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return DecodeRGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Background fills every pixel no marker covers.
var Background = color.RGBA{A: 0xff}

// Theme holds the two colors markers blend between.
type Theme struct {
	Idle   LinearRGB
	Bright LinearRGB
}

// Fallback theme colors, used when a configured color does not parse.
const (
	DefaultIdleHex   = "#1b2230"
	DefaultBrightHex = "#7fd4ff"
)

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	idle, _ := ParseHex(DefaultIdleHex)
	bright, _ := ParseHex(DefaultBrightHex)
	return Theme{Idle: idle, Bright: bright}
}

// ThemeFromHex parses both colors. A color that does not parse falls back to
// the default and is reported in the returned error list.
func ThemeFromHex(idleHex, brightHex string) (Theme, []error) {
	theme := DefaultTheme()
	var errs []error
	if idleHex != "" {
		if c, err := ParseHex(idleHex); err != nil {
			errs = append(errs, fmt.Errorf("idle: %w", err))
		} else {
			theme.Idle = c
		}
	}
	if brightHex != "" {
		if c, err := ParseHex(brightHex); err != nil {
			errs = append(errs, fmt.Errorf("bright: %w", err))
		} else {
			theme.Bright = c
		}
	}
	return theme, errs
}
