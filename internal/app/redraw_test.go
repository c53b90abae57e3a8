package app

import (
	"testing"
	"time"

	"ripplefield/internal/driver"
)

func TestToggleHoldRepaintsOnce(t *testing.T) {
	d := driver.New(driver.Options{})
	var r redraw
	r.offer(d.Tick(time.Second))
	if tm, ok := r.take(); !ok || tm != 1 {
		t.Fatalf("running frame: got (%v, %v), want (1, true)", tm, ok)
	}

	r.toggleHold(d)
	if d.State() == driver.Running {
		t.Fatal("hold should stop the driver")
	}
	r.offer(d.Tick(2 * time.Second))
	tm, ok := r.take()
	if !ok {
		t.Fatal("pausing must repaint so the state change is visible")
	}
	if tm != 1 {
		t.Fatalf("paused repaint should keep the last time, got %v", tm)
	}
	r.offer(d.Tick(3 * time.Second))
	if _, ok := r.take(); ok {
		t.Fatal("no further repaints expected while held")
	}
}

func TestRedrawDirtyWithoutDecision(t *testing.T) {
	var r redraw
	if _, ok := r.take(); ok {
		t.Fatal("nothing to draw initially")
	}
	r.markDirty()
	if _, ok := r.take(); !ok {
		t.Fatal("dirty flag should request a repaint")
	}
}
