// Package term renders a ripple session into a terminal with half-block
// cells: each cell shows two vertically stacked pixels.
package term

import (
	"context"
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"ripplefield/internal/core"
	"ripplefield/internal/driver"
	"ripplefield/internal/render"
	"ripplefield/internal/session"
)

const upperHalf = '▀'

// Terminal drives a session on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	sess   *session.Session
	drv    *driver.Driver
	raster *render.Software
	frame  *image.RGBA

	cols, rows int
	events     chan tcell.Event
	quit       context.CancelFunc

	lastTime float64
	dirty    bool
}

// Open creates and initializes a terminal screen for sess.
func Open(sess *session.Session) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, sess), nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen, sess *session.Session) *Terminal {
	screen.EnableFocus()
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		sess:   sess,
		drv:    sess.NewDriver(),
		raster: render.NewSoftware(sess.Instances()),
		events: make(chan tcell.Event, 64),
	}
	t.resize(screen.Size())
	return t
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run animates until ctx is done or the user quits. Quitting returns nil.
func (t *Terminal) Run(ctx context.Context, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	t.quit = cancel
	go t.pollEvents(ctx)

	err := driver.Run(ctx, t.drv, interval, driver.WallClock(), t.drain, t.draw)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (t *Terminal) pollEvents(ctx context.Context) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// drain applies queued events on the loop goroutine.
func (t *Terminal) drain() {
	for {
		select {
		case ev := <-t.events:
			if t.handleEvent(ev) && t.quit != nil {
				t.quit()
				return
			}
		default:
			if t.dirty {
				if err := t.draw(t.lastTime); err != nil {
					core.Logger().Warn("terminal redraw failed", "err", err)
				}
			}
			return
		}
	}
}

// handleEvent updates state for ev and reports whether the user asked to
// quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				t.drv.ToggleHold()
			case 'r', 'R':
				t.sess.Reseed()
				t.raster.SetInstances(t.sess.Instances())
				t.dirty = true
			}
		}
	case *tcell.EventResize:
		t.resize(ev.Size())
		t.screen.Sync()
	case *tcell.EventFocus:
		t.drv.SetVisible(ev.Focused)
	}
	return false
}

func (t *Terminal) resize(cols, rows int) {
	if cols == t.cols && rows == t.rows && t.frame != nil {
		return
	}
	t.cols, t.rows = cols, rows
	w, h := max(cols, 1), max(2*rows, 1)
	t.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	t.raster.Resize(t.sess.Projection(w, h), w, h)
	t.dirty = true
}

func (t *Terminal) draw(tm float64) error {
	t.lastTime = tm
	t.dirty = false
	render.Clear(t.frame, render.Background)
	t.raster.Render(t.frame, t.sess.Uniforms(tm))
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			top, bottom := cellColors(t.frame, x, y)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			t.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// cellColors returns the two pixels that make up terminal cell (x, y).
func cellColors(img *image.RGBA, x, y int) (color.RGBA, color.RGBA) {
	return img.RGBAAt(x, 2*y), img.RGBAAt(x, 2*y+1)
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
