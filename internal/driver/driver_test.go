package driver

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunningDrawsEveryTick(t *testing.T) {
	d := New(Options{})
	if d.State() != Running {
		t.Fatalf("expected Running, got %v", d.State())
	}
	for i := 0; i < 5; i++ {
		elapsed := time.Duration(i) * 16 * time.Millisecond
		dec := d.Tick(elapsed)
		if !dec.Draw || !dec.Reschedule {
			t.Fatalf("tick %d: expected draw+reschedule, got %+v", i, dec)
		}
		if dec.Time != elapsed.Seconds() {
			t.Fatalf("tick %d: time %v, want %v", i, dec.Time, elapsed.Seconds())
		}
	}
}

func TestReducedMotionDrawsOneStillFrame(t *testing.T) {
	d := New(Options{ReducedMotion: true})
	if d.State() != Paused {
		t.Fatalf("reduced motion should start Paused, got %v", d.State())
	}
	first := d.Tick(3 * time.Second)
	if !first.Draw || first.Time != 0 || first.Reschedule {
		t.Fatalf("expected one frame at t=0 without reschedule, got %+v", first)
	}
	d.SetVisible(false)
	d.SetVisible(true)
	if again := d.Tick(4 * time.Second); again.Draw || again.Reschedule {
		t.Fatalf("no further frames expected, got %+v", again)
	}
}

func TestVisibilityPausesAndResumes(t *testing.T) {
	d := New(Options{})
	d.SetVisible(false)
	if d.State() != Paused {
		t.Fatalf("hidden surface should pause, got %v", d.State())
	}
	dec := d.Tick(time.Second)
	if dec.Draw || !dec.Reschedule {
		t.Fatalf("paused tick should skip drawing but reschedule, got %+v", dec)
	}
	d.SetVisible(true)
	if d.State() != Running {
		t.Fatalf("visible surface should resume, got %v", d.State())
	}
	if dec := d.Tick(2 * time.Second); !dec.Draw || dec.Time != 2 {
		t.Fatalf("resumed tick should draw at elapsed time, got %+v", dec)
	}
}

func TestHoldOverridesVisibility(t *testing.T) {
	d := New(Options{})
	d.ToggleHold()
	d.SetVisible(true)
	if d.State() != Paused {
		t.Fatal("user hold should keep the loop paused")
	}
	d.ToggleHold()
	if d.State() != Running {
		t.Fatal("releasing the hold should resume")
	}
}

func TestFPSCapSkipsButReschedules(t *testing.T) {
	d := New(Options{FPSCap: 10})
	if dec := d.Tick(0); !dec.Draw {
		t.Fatalf("first tick should draw, got %+v", dec)
	}
	if dec := d.Tick(50 * time.Millisecond); dec.Draw || !dec.Reschedule {
		t.Fatalf("tick inside the cap window should be skipped, got %+v", dec)
	}
	if dec := d.Tick(100 * time.Millisecond); !dec.Draw {
		t.Fatalf("tick after 1/cap seconds should draw, got %+v", dec)
	}
}

func TestRunStopsAfterStillFrame(t *testing.T) {
	d := New(Options{ReducedMotion: true})
	var drawn []float64
	err := Run(context.Background(), d, time.Millisecond, func() time.Duration { return time.Second }, nil, func(t float64) error {
		drawn = append(drawn, t)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drawn) != 1 || drawn[0] != 0 {
		t.Fatalf("expected a single frame at t=0, got %v", drawn)
	}
}

func TestRunPropagatesDrawError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(), New(Options{}), time.Millisecond, nil, nil, func(float64) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected draw error, got %v", err)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	err := Run(ctx, New(Options{}), time.Millisecond, nil, nil, func(float64) error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if frames != 3 {
		t.Fatalf("expected 3 frames before cancel, got %d", frames)
	}
}
