//go:build ebiten

package ui

import (
	"image/color"

	"ecosim/internal/sims/ecosim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status and parameter panel to the right of the grid view.
type HUD struct {
	world      *ecosim.World
	width      int
	panel      *ebiten.Image
	lastHeight int

	status []string
	params []string
	title  string
}

// NewHUD constructs a HUD for world with the given panel width.
func NewHUD(world *ecosim.World, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	h.SetWorld(world)
	return h
}

// SetWorld points the HUD at a different world, e.g. after a reset.
func (h *HUD) SetWorld(world *ecosim.World) {
	if h == nil {
		return
	}
	h.world = world
	h.title = Title(world)
	h.params = ParameterLines(world.Parameters())
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status lines.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.status = StatusLines(h.world, paused)
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += sectionGap
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 230, G: 220, B: 150, A: 255})
		y += lineHeight
	}
	y += sectionGap - lineHeight
	for _, line := range h.params {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	sectionGap     = 28
)
