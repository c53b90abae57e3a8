package driver

import (
	"context"
	"time"
)

// Clock reports elapsed time since the loop started.
type Clock func() time.Duration

// WallClock returns a Clock anchored at the moment of the call.
func WallClock() Clock {
	start := time.Now()
	return func() time.Duration { return time.Since(start) }
}

// DrawFunc renders one frame at simulation time t.
type DrawFunc func(t float64) error

// Run ticks d every interval until ctx is done, the driver stops
// rescheduling (nil error), or draw fails. Between ticks it calls poll, if non-nil,
// so callers can apply resize or visibility changes on the loop goroutine.
func Run(ctx context.Context, d *Driver, interval time.Duration, clock Clock, poll func(), draw DrawFunc) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if clock == nil {
		clock = WallClock()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if poll != nil {
			poll()
		}
		dec := d.Tick(clock())
		if dec.Draw {
			if err := draw(dec.Time); err != nil {
				return err
			}
		}
		if !dec.Reschedule {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
