package ripple

import (
	"math"
	"testing"
)

func TestCornerFractionHalvesAndClamps(t *testing.T) {
	if got := CornerFraction(0.12); math.Abs(got-0.06) > 1e-12 {
		t.Fatalf("CornerFraction(0.12) = %v, want 0.06", got)
	}
	if got := CornerFraction(1); got != MaxCorner {
		t.Fatalf("CornerFraction(1) = %v, want %v", got, MaxCorner)
	}
	if got := CornerFraction(-1); got != 0 {
		t.Fatalf("CornerFraction(-1) = %v, want 0", got)
	}
}

func TestRoundedSquareSymmetry(t *testing.T) {
	for _, corner := range []float64{0, 0.06, 0.2, 0.49} {
		for u := -0.6; u <= 0.6; u += 0.013 {
			for v := -0.6; v <= 0.6; v += 0.017 {
				in := InsideRoundedSquare(u, v, corner)
				if InsideRoundedSquare(-u, v, corner) != in {
					t.Fatalf("corner %v: x-mirror mismatch at (%v,%v)", corner, u, v)
				}
				if InsideRoundedSquare(u, -v, corner) != in {
					t.Fatalf("corner %v: y-mirror mismatch at (%v,%v)", corner, u, v)
				}
			}
		}
	}
}

func TestRoundedSquareZeroCornerIsSquare(t *testing.T) {
	for u := -0.7; u <= 0.7; u += 0.01 {
		for v := -0.7; v <= 0.7; v += 0.01 {
			want := math.Max(math.Abs(u), math.Abs(v)) <= 0.5
			if got := InsideRoundedSquare(u, v, 0); got != want {
				t.Fatalf("(%v,%v): got %v, want %v", u, v, got, want)
			}
		}
	}
}

func TestRoundedSquareTrimsCorners(t *testing.T) {
	const corner = 0.2
	if !InsideRoundedSquare(0, 0, corner) {
		t.Fatal("center must be inside")
	}
	if !InsideRoundedSquare(0.5, 0, corner) {
		t.Fatal("edge midpoint must be inside")
	}
	if InsideRoundedSquare(0.49, 0.49, corner) {
		t.Fatal("corner tip must be trimmed")
	}
	if InsideRoundedSquare(0.51, 0, corner) {
		t.Fatal("points past the edge must be outside")
	}
}

func TestRoundedSquareKeepsFullEdge(t *testing.T) {
	const corner = 0.06
	if !InsideRoundedSquare(0.48, 0, corner) {
		t.Fatal("points near the edge midpoint must stay inside the marker")
	}
	if !InsideRoundedSquare(0, -0.48, corner) {
		t.Fatal("edge must be kept on every side")
	}
}
