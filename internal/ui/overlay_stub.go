//go:build !ebiten

package ui

import "ripplefield/internal/render"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(any) *Overlay { return &Overlay{} }

// Resize is a no-op in headless builds.
func (o *Overlay) Resize(render.Projection, int, int) {}

// Update never changes anything in headless builds.
func (o *Overlay) Update() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
