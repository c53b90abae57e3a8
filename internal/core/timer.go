package core

import "time"

// FrameCap gates drawing to at most one frame per interval. Time is supplied
// by the caller so the cap can be driven by any clock.
type FrameCap struct {
	step  time.Duration
	last  time.Duration
	drawn bool
}

// NewFrameCap constructs a FrameCap targeting hz frames per second. A
// non-positive rate disables the cap.
func NewFrameCap(hz float64) *FrameCap {
	fc := &FrameCap{}
	fc.SetRate(hz)
	return fc
}

// SetRate changes the cap. It is safe to call from the main loop.
func (f *FrameCap) SetRate(hz float64) {
	if hz <= 0 {
		f.step = 0
		return
	}
	f.step = time.Duration(float64(time.Second) / hz)
}

// Allow reports whether a frame may be drawn at now and records it if so.
func (f *FrameCap) Allow(now time.Duration) bool {
	if f.step <= 0 || !f.drawn {
		f.last = now
		f.drawn = true
		return true
	}
	if now-f.last >= f.step {
		f.last = now
		return true
	}
	return false
}
