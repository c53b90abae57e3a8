// Package driver decides, tick by tick, whether a frame is drawn and at
// which simulation time.
package driver

import (
	"time"

	"ripplefield/internal/core"
)

// State is the run state of the frame loop.
type State int

const (
	// Running draws on every allowed tick.
	Running State = iota
	// Paused skips drawing but keeps the loop alive.
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// Options configures a Driver.
type Options struct {
	// ReducedMotion freezes the animation: one frame at time zero, then the
	// loop stops rescheduling.
	ReducedMotion bool
	// FPSCap limits drawn frames per second. Zero disables the cap.
	FPSCap float64
}

// Decision is the outcome of one tick.
type Decision struct {
	// Draw is true when the caller should render a frame.
	Draw bool
	// Time is the simulation time in seconds to render at.
	Time float64
	// Reschedule is false once the loop should stop calling Tick.
	Reschedule bool
}

// Driver is the Running/Paused state machine behind every frontend. It is
// not safe for concurrent use; all calls happen on the frame loop.
type Driver struct {
	state         State
	reducedMotion bool
	stillDrawn    bool
	visible       bool
	held          bool
	limiter       *core.FrameCap
}

// New returns a Driver. It starts Paused under reduced motion, otherwise
// Running.
func New(opts Options) *Driver {
	d := &Driver{
		reducedMotion: opts.ReducedMotion,
		visible:       true,
		limiter:       core.NewFrameCap(opts.FPSCap),
	}
	if opts.ReducedMotion {
		d.state = Paused
	}
	return d
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// ReducedMotion reports whether the driver was created frozen.
func (d *Driver) ReducedMotion() bool { return d.reducedMotion }

// SetVisible records whether the render surface can be seen. Hidden
// surfaces pause; visible ones resume unless held by SetHold.
func (d *Driver) SetVisible(visible bool) {
	if d.visible == visible {
		return
	}
	d.visible = visible
	d.update()
}

// SetHold pauses (true) or releases (false) the loop independently of
// visibility, for a user pause key.
func (d *Driver) SetHold(hold bool) {
	if d.held == hold {
		return
	}
	d.held = hold
	d.update()
}

// ToggleHold flips the user pause.
func (d *Driver) ToggleHold() { d.SetHold(!d.held) }

func (d *Driver) update() {
	if d.reducedMotion {
		return
	}
	next := Running
	if !d.visible || d.held {
		next = Paused
	}
	if next != d.state {
		core.Logger().Debug("frame driver state", "from", d.state.String(), "to", next.String())
		d.state = next
	}
}

// Tick evaluates one animation callback. elapsed is the time since the loop
// started.
func (d *Driver) Tick(elapsed time.Duration) Decision {
	if d.reducedMotion {
		if d.stillDrawn {
			return Decision{}
		}
		d.stillDrawn = true
		return Decision{Draw: true, Time: 0}
	}
	if d.state == Paused {
		return Decision{Reschedule: true}
	}
	if !d.limiter.Allow(elapsed) {
		return Decision{Reschedule: true}
	}
	return Decision{Draw: true, Time: elapsed.Seconds(), Reschedule: true}
}
