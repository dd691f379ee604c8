//go:build ebiten

package app

import (
	"ecosim/internal/core"
	"ecosim/internal/render"
	"ecosim/internal/sims/ecosim"
	"ecosim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an ecosim world to the ebiten.Game interface.
type Game struct {
	opts    Options
	world   *ecosim.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	paused   bool
	tickOnce bool
}

// New constructs a Game for the world built from opts.
func New(opts Options) *Game {
	opts = opts.normalized()
	world := opts.newWorld()
	size := world.Size()
	return &Game{
		opts:    opts,
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, opts.PanelWidth),
		overlay: ui.NewOverlay(world, opts.Scale),
		stepper: core.NewFixedStep(opts.StepsPerSecond),
		paused:  opts.StartPaused,
	}
}

// World exposes the running world.
func (g *Game) World() *ecosim.World { return g.world }

// Reset rebuilds the world from its starting grid.
func (g *Game) Reset() {
	g.world = g.opts.newWorld()
	g.hud.SetWorld(g.world)
	g.overlay.SetWorld(g.world)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	for key, layer := range layerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.world.SetLayer(layer)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.paused)

	if g.world.Done() {
		return nil
	}
	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

var layerKeys = map[ebiten.Key]ecosim.Species{
	ebiten.KeyDigit1: ecosim.Plant,
	ebiten.KeyDigit2: ecosim.Herbivore,
	ebiten.KeyDigit3: ecosim.Predator,
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.opts.Scale)
	g.overlay.Draw(screen)
	s := g.world.Size()
	_, height := g.opts.WindowSize(s)
	g.hud.Draw(screen, s.W*g.opts.Scale, height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.WindowSize(g.world.Size())
}
