package app

import "ripplefield/internal/driver"

// redraw tracks whether the next Draw must repaint and at which time.
// Frames are painted when the driver asks for one or when something on
// screen changed outside the animation (hold, HUD, overlay, reseed, resize).
type redraw struct {
	pending  driver.Decision
	lastTime float64
	dirty    bool
}

func (r *redraw) markDirty() { r.dirty = true }

// toggleHold flips the driver's hold and repaints so the HUD shows the new
// state even though the driver stops drawing.
func (r *redraw) toggleHold(d *driver.Driver) {
	d.ToggleHold()
	r.markDirty()
}

func (r *redraw) offer(dec driver.Decision) {
	if dec.Draw {
		r.pending = dec
	}
}

// take reports whether a repaint is due and the time to draw, clearing the
// request.
func (r *redraw) take() (float64, bool) {
	if !r.pending.Draw && !r.dirty {
		return r.lastTime, false
	}
	if r.pending.Draw {
		r.lastTime = r.pending.Time
	}
	r.pending = driver.Decision{}
	r.dirty = false
	return r.lastTime, true
}
