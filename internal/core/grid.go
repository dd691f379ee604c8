package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Viewers use it as the intensity buffer behind a heatmap.
type ByteGrid struct {
	W, H int
	data []uint8
}

// MaxByteGridCells caps the buffer NewByteGrid will allocate.
const MaxByteGridCells = 1 << 26

// ByteGridFits reports whether a w x h grid is non-empty and within
// MaxByteGridCells.
func ByteGridFits(w, h int) bool {
	return w > 0 && h > 0 && w <= MaxByteGridCells/h
}

// NewByteGrid allocates a grid with the given dimensions. Empty dimensions,
// and dimensions whose product exceeds MaxByteGridCells, produce a 0x0 grid.
func NewByteGrid(w, h int) *ByteGrid {
	if !ByteGridFits(w, h) {
		return &ByteGrid{}
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y), or -1 when
// the point lies outside the grid.
func (g *ByteGrid) Index(x, y int) int {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return -1
	}
	return y*g.W + x
}

// Set writes v at (x, y) when the point lies inside the grid.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if i := g.Index(x, y); i >= 0 {
		g.data[i] = v
	}
}

// At returns the value at (x, y), or zero outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if i := g.Index(x, y); i >= 0 {
		return g.data[i]
	}
	return 0
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
