package ripple

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ripplefield/internal/core"
)

func TestComputeViewboxEmpty(t *testing.T) {
	if _, err := ComputeViewbox(nil); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}

func TestComputeViewboxSinglePointUsesRadiusPad(t *testing.T) {
	vb, err := ComputeViewbox([]core.Point{{X: 5, Y: 5, R: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := core.Viewbox{X: 3, Y: 3, Width: 4, Height: 4}
	if diff := cmp.Diff(want, vb); diff != "" {
		t.Fatalf("viewbox mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeViewboxMinimumPad(t *testing.T) {
	vb, err := ComputeViewbox([]core.Point{{X: -2, Y: 7}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := core.Viewbox{X: -3, Y: 6, Width: 2, Height: 2}
	if diff := cmp.Diff(want, vb); diff != "" {
		t.Fatalf("zero-area input should pad by one unit (-want +got):\n%s", diff)
	}
}

func TestComputeViewboxContainsEveryPointAndRadius(t *testing.T) {
	rng := core.NewRNG(7)
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.IntN(40)
		points := make([]core.Point, n)
		for i := range points {
			points[i] = core.Point{
				X: rng.Float64()*200 - 100,
				Y: rng.Float64()*200 - 100,
			}
			if rng.IntN(2) == 0 {
				points[i].R = rng.Float64() * 6
			}
		}
		vb, err := ComputeViewbox(points)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}
		if !(vb.Width > 0) || !(vb.Height > 0) {
			t.Fatalf("trial %d: viewbox must have positive area, got %+v", trial, vb)
		}
		for i, p := range points {
			r := math.Max(p.R, 0)
			if !vb.Contains(p.X-r, p.Y-r) || !vb.Contains(p.X+r, p.Y+r) {
				t.Fatalf("trial %d: point %d %+v with radius not inside %+v", trial, i, p, vb)
			}
		}
	}
}
