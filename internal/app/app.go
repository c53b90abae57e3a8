//go:build ebiten

package app

import (
	"ripplefield/internal/core"
	"ripplefield/internal/driver"
	"ripplefield/internal/render"
	"ripplefield/internal/session"
	"ripplefield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a ripple session to the ebiten.Game interface.
type Game struct {
	sess     *session.Session
	pipeline *render.Pipeline
	driver   *driver.Driver
	clock    driver.Clock
	hud      *ui.HUD
	overlay  *ui.Overlay

	dprCap    float64
	scale     float64
	projScale float64
	size      core.Size

	frame redraw
}

// New compiles the marker pipeline for sess. The returned Game owns the
// pipeline; call Close after ebiten.RunGame returns.
func New(sess *session.Session) (*Game, error) {
	pipeline, err := render.NewPipeline(sess.Instances())
	if err != nil {
		return nil, err
	}
	g := &Game{
		sess:     sess,
		pipeline: pipeline,
		driver:   sess.NewDriver(),
		clock:    driver.WallClock(),
		dprCap:   sess.Config().DPRCap,
		scale:    1,
	}
	g.hud = ui.NewHUD(sess, hudWidth)
	g.overlay = ui.NewOverlay(sess)
	return g, nil
}

const hudWidth = 260

// Close releases GPU resources.
func (g *Game) Close() {
	g.pipeline.Close()
}

// Reseed draws new wave origins and pushes them to the pipeline.
func (g *Game) Reseed() {
	g.sess.Reseed()
	g.pipeline.SetInstances(g.sess.Instances())
	g.frame.markDirty()
}

// Update handles input and asks the driver whether to draw.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.frame.toggleHold(g.driver)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
		g.frame.markDirty()
	}
	if g.overlay.Update() {
		g.frame.markDirty()
	}
	g.driver.SetVisible(!ebiten.IsWindowMinimized())

	g.frame.offer(g.driver.Tick(g.clock()))
	g.hud.Update(g.driver.State(), ebiten.ActualFPS())
	return nil
}

// Draw renders a frame when the driver asked for one. The screen is not
// cleared between frames, so skipped frames keep the last image.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Dx() != g.size.W || b.Dy() != g.size.H || g.projScale != g.scale {
		g.resize(b.Dx(), b.Dy())
	}
	t, ok := g.frame.take()
	if !ok {
		return
	}
	screen.Fill(render.Background)
	g.pipeline.Draw(screen, g.sess.Uniforms(t))
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

func (g *Game) resize(w, h int) {
	g.size = core.Size{W: w, H: h}
	g.projScale = g.scale
	proj := g.sess.ScaledProjection(w, h, g.scale)
	g.pipeline.Resize(proj, w, h)
	g.overlay.Resize(proj, w, h)
	g.frame.markDirty()
	core.Logger().Info("surface resized", "w", w, "h", h, "scale", g.scale)
}

// Layout scales the window size by the device pixel ratio, capped by the
// configured limit. The applied scale is kept so markers stay sized in
// logical pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := session.DeviceScale(ebiten.Monitor().DeviceScaleFactor(), g.dprCap)
	g.scale = scale
	w := max(int(float64(outsideWidth)*scale), 1)
	h := max(int(float64(outsideHeight)*scale), 1)
	return w, h
}

// TPS is the update rate the window runs at.
const TPS = 60
