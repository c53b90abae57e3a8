//go:build !ebiten

package ui

import (
	"ripplefield/internal/core"
	"ripplefield/internal/driver"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, int) *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Visible is always false in the headless build.
func (h *HUD) Visible() bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(driver.State, float64) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
