//go:build ebiten

package ui

import (
	"image/color"

	"ecosim/internal/sims/ecosim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional grid lines and a readout for the cell under the cursor.
type Overlay struct {
	world    *ecosim.World
	scale    int
	showGrid bool

	hover    ecosim.Coord
	hasHover bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for world drawn at the given scale.
func NewOverlay(world *ecosim.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetWorld points the overlay at a different world.
func (o *Overlay) SetWorld(world *ecosim.World) { o.world = world }

// Update toggles grid lines and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hover, o.hasHover = CellAt(mx, my, o.scale, o.world.Size())
}

// Draw paints the overlay on top of the grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.world.Size()
	w, h := size.W*o.scale, size.H*o.scale
	lineColor := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	if o.showGrid && o.scale >= 4 {
		for x := 0; x <= size.W; x++ {
			o.fillRect(screen, x*o.scale, 0, 1, h, lineColor)
		}
		for y := 0; y <= size.H; y++ {
			o.fillRect(screen, 0, y*o.scale, w, 1, lineColor)
		}
	}

	label := TotalsLine(o.world)
	if o.hasHover {
		hl := color.RGBA{R: 240, G: 240, B: 240, A: 255}
		x, y := o.hover.Col*o.scale, o.hover.Row*o.scale
		o.fillRect(screen, x, y, o.scale, 1, hl)
		o.fillRect(screen, x, y+o.scale-1, o.scale, 1, hl)
		o.fillRect(screen, x, y, 1, o.scale, hl)
		o.fillRect(screen, x+o.scale-1, y, 1, o.scale, hl)
		label = InspectLine(o.world, o.hover)
	}
	face := basicfont.Face7x13
	o.fillRect(screen, 0, h-18, w, 18, color.RGBA{A: 180})
	text.Draw(screen, label, face, 4, h-5, color.White)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
