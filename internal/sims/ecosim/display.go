package ecosim

import (
	"image/color"
	"math/bits"

	"ecosim/internal/core"
)

// HeatLevels is the number of palette entries per layer.
const HeatLevels = 16

var layerPalettes = [speciesCount][]color.RGBA{
	Plant:     buildRamp(color.RGBA{R: 20, G: 40, B: 20, A: 255}, color.RGBA{R: 120, G: 230, B: 90, A: 255}),
	Herbivore: buildRamp(color.RGBA{R: 40, G: 35, B: 15, A: 255}, color.RGBA{R: 250, G: 215, B: 80, A: 255}),
	Predator:  buildRamp(color.RGBA{R: 45, G: 15, B: 15, A: 255}, color.RGBA{R: 245, G: 70, B: 60, A: 255}),
}

// HeatLevel maps a population onto a palette index. Zero stays zero and each
// doubling climbs one level, saturating at HeatLevels-1.
func HeatLevel(n int) uint8 {
	if n <= 0 {
		return 0
	}
	level := bits.Len(uint(n))
	if level >= HeatLevels {
		return HeatLevels - 1
	}
	return uint8(level)
}

// Palette returns the colors for the current display layer.
func (w *World) Palette() []color.RGBA { return LayerPalette(w.layer) }

// PaletteSize reports the number of palette entries.
func (w *World) PaletteSize() int { return HeatLevels }

// LayerPalette returns the color ramp for a species.
func LayerPalette(s Species) []color.RGBA {
	if s >= speciesCount {
		return nil
	}
	return layerPalettes[s]
}

func buildRamp(lo, hi color.RGBA) []color.RGBA {
	ramp := make([]color.RGBA, HeatLevels)
	ramp[0] = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	for i := 1; i < HeatLevels; i++ {
		t := float64(i-1) / float64(HeatLevels-2)
		ramp[i] = color.RGBA{
			R: lerp(lo.R, hi.R, t),
			G: lerp(lo.G, hi.G, t),
			B: lerp(lo.B, hi.B, t),
			A: 255,
		}
	}
	return ramp
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
}

func (w *World) display() *core.ByteGrid {
	if w.heat == nil {
		w.heat = core.NewByteGrid(w.cfg.Cols, w.cfg.Rows)
	}
	if w.stale {
		w.rebuildDisplay()
		w.stale = false
	}
	return w.heat
}

func (w *World) rebuildDisplay() {
	w.heat.Clear()
	for c, cell := range w.grid.cells {
		w.heat.Set(c.Col, c.Row, HeatLevel(cell.Population(w.layer).Len()))
	}
}
