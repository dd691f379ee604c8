package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a stepped simulation must implement to be
// driven by the viewers.
type Sim interface {
	Name() string
	Size() Size
	Advance()
	Cells() []uint8
}

// Palette is implemented by sims whose display buffer holds palette indices
// rather than binary on/off values.
type Palette interface {
	PaletteSize() int
}
