//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	hudWidth int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		session:  NewSession(cfg.Interval),
		painter:  render.NewGridPainter(size.W, size.H, cfg.Scale),
		overlay:  ui.NewOverlay(sim, cfg.Scale, 8),
		scale:    cfg.Scale,
		hudWidth: cfg.HUD,
	}
	g.painter.EnableGridLines(cfg.Grid, render.GridLineColor)
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	if cfg.HUD > 0 {
		g.hud = ui.NewHUD(sim, cfg.HUD, func() []string { return StatusLines(g.sim, g.session) })
	}
	log.Printf("session %s: %s %dx%d every %v", g.session.ID, sim.Name(), size.W, size.H, g.session.Interval())
	return g
}

// Session exposes the loop state.
func (g *Game) Session() *Session { return g.session }

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("session %s: quit after %d iterations", g.session.ID, g.session.Iterations)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.session.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.session.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.painter.EnableGridLines(!g.painter.GridLines(), render.GridLineColor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.RequestReset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.RequestReset(time.Now().UnixNano())
	}

	g.overlay.Update()
	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)
	g.session.Tick(g.sim, time.Now())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
