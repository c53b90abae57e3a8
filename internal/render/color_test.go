package render

import (
	"errors"
	"math"
	"testing"
)

func TestDecodeRGB8Gamma(t *testing.T) {
	c := DecodeRGB8(0, 128, 255)
	if c.R != 0 || c.B != 1 {
		t.Fatalf("endpoints must decode exactly, got %+v", c)
	}
	want := math.Pow(128.0/255, 2.2)
	if math.Abs(float64(c.G)-want) > 1e-6 {
		t.Fatalf("mid channel = %v, want %v", c.G, want)
	}
}

func TestParseHex(t *testing.T) {
	short, err := ParseHex("#fff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if short != (LinearRGB{R: 1, G: 1, B: 1}) {
		t.Fatalf("#fff = %+v, want white", short)
	}
	if _, err := ParseHex("12345"); !errors.Is(err, ErrBadColor) {
		t.Fatalf("expected ErrBadColor, got %v", err)
	}
	if _, err := ParseHex("#zzzzzz"); !errors.Is(err, ErrBadColor) {
		t.Fatalf("expected ErrBadColor for non-hex digits, got %v", err)
	}
}

func TestThemeFromHexFallsBack(t *testing.T) {
	theme, errs := ThemeFromHex("nope", "#000000")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if theme.Idle != DefaultTheme().Idle {
		t.Fatal("bad idle color should fall back to the default")
	}
	if theme.Bright != (LinearRGB{}) {
		t.Fatalf("bright should be black, got %+v", theme.Bright)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := LinearRGB{R: 0.1, G: 0.2, B: 0.3}
	b := LinearRGB{R: 0.9, G: 0.8, B: 0.7}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Fatal("lerp must hit its endpoints")
	}
}
