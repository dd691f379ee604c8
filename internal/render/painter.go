//go:build ebiten

package render

import (
	"image/color"

	"ecosim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter turns a palette-indexed display buffer into an ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w x h cell buffer. Dimensions
// outside core.ByteGridFits get a single blank pixel.
func NewGridPainter(w, h int) *GridPainter {
	if !core.ByteGridFits(w, h) {
		w, h = 1, 1
	}
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, w*h*4),
	}
}

// Blit paints cells onto screen, one scale x scale square per cell.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) > p.w*p.h {
		cells = cells[:p.w*p.h]
	}
	fillPaletteRGBA(p.buf, cells, palette)
	p.img.WritePixels(p.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.img, op)
}
