package render

import (
	"math"
	"testing"

	"ripplefield/internal/core"
)

func TestProjectionMapsViewboxCorners(t *testing.T) {
	vb := core.Viewbox{X: -3, Y: 12, Width: 40, Height: 25}
	proj := NewProjection(vb, 800, 500, 4)
	cases := []struct {
		x, y   float64
		nx, ny float64
	}{
		{vb.X, vb.Y, -1, 1},
		{vb.X + vb.Width, vb.Y, 1, 1},
		{vb.X, vb.Y + vb.Height, -1, -1},
		{vb.X + vb.Width, vb.Y + vb.Height, 1, -1},
	}
	for _, tc := range cases {
		nx, ny := proj.Apply(tc.x, tc.y)
		if math.Abs(nx-tc.nx) > 1e-12 || math.Abs(ny-tc.ny) > 1e-12 {
			t.Fatalf("corner (%v,%v) -> (%v,%v), want (%v,%v)", tc.x, tc.y, nx, ny, tc.nx, tc.ny)
		}
	}
}

func TestProjectionMarkerSize(t *testing.T) {
	vb := core.Viewbox{Width: 200, Height: 100}
	proj := NewProjection(vb, 400, 200, 4)
	if proj.PxPerUnit != 2 {
		t.Fatalf("PxPerUnit = %v, want 2", proj.PxPerUnit)
	}
	if proj.MarkerSize != 2 {
		t.Fatalf("MarkerSize = %v, want 2 data units", proj.MarkerSize)
	}
	if got := proj.MarkerPx(400); math.Abs(got-4) > 1e-12 {
		t.Fatalf("MarkerPx = %v, want 4", got)
	}
}

func TestProjectionGuardsZeroWidthScreen(t *testing.T) {
	proj := NewProjection(core.Viewbox{Width: 10, Height: 10}, 0, 0, 4)
	if math.IsInf(proj.MarkerSize, 0) || math.IsNaN(proj.MarkerSize) {
		t.Fatalf("marker size must stay finite, got %v", proj.MarkerSize)
	}
	if proj.PxPerUnit != 0.1 {
		t.Fatalf("screen width should floor at one pixel, got density %v", proj.PxPerUnit)
	}
}

func TestToScreenFlipsY(t *testing.T) {
	x, y := ToScreen(-1, 1, 640, 480)
	if x != 0 || y != 0 {
		t.Fatalf("top-left NDC should land at origin, got (%v,%v)", x, y)
	}
	x, y = ToScreen(1, -1, 640, 480)
	if x != 640 || y != 480 {
		t.Fatalf("bottom-right NDC should land at (640,480), got (%v,%v)", x, y)
	}
}
