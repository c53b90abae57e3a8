//go:build !ebiten

package app

import (
	"errors"

	"ripplefield/internal/session"
)

// ErrNoGUI is returned by New in builds without the ebiten tag.
var ErrNoGUI = errors.New("app.New requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the GUI build tag is missing.
func New(*session.Session) (*Game, error) { return nil, ErrNoGUI }

// Close is a no-op placeholder.
func (g *Game) Close() {}

// Reseed is a no-op placeholder.
func (g *Game) Reseed() {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// TPS is the update rate the window runs at.
const TPS = 60
