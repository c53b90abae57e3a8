//go:build ebiten

package ui

import (
	"image/color"

	"ripplefield/internal/core"
	"ripplefield/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter panel over the right edge of the view.
type HUD struct {
	provider core.ParameterProvider
	width    int
	visible  bool

	panel      *ebiten.Image
	lastHeight int
	lines      []Line
}

// NewHUD constructs a hidden HUD for the provider and panel width.
func NewHUD(provider core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{provider: provider, width: width}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h.visible }

// Update refreshes the cached rows from the provider.
func (h *HUD) Update(state driver.State, fps float64) {
	if h == nil || !h.visible {
		return
	}
	h.lines = Lines(h.provider.Parameters(), state.String(), fps)
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	b := screen.Bounds()
	height := b.Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		switch line.Kind {
		case LineTitle:
			text.Draw(h.panel, line.Label, face, panelPadding, y, titleColor)
			y += titleSpacing
		case LineHeader:
			y += groupGap
			text.Draw(h.panel, line.Label, face, panelPadding, y, headerColor)
			y += lineHeight
		default:
			text.Draw(h.panel, line.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, line.Value)
			text.Draw(h.panel, line.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineHeight
		}
		if y > h.lastHeight {
			return
		}
	}
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	headerColor = color.RGBA{R: 127, G: 212, B: 255, A: 255}
	labelColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	titleSpacing   = 24
	groupGap       = 6
)
