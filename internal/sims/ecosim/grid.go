package ecosim

import "sort"

// Grid is a sparse mapping from coordinates to cells. Missing entries have
// zero population in every species. The grid does not validate coordinates
// against the configured dimensions.
type Grid struct {
	cells map[Coord]*Cell
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Coord]*Cell)}
}

// Len reports how many cells are present.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell at c if present.
func (g *Grid) Cell(c Coord) (*Cell, bool) {
	cell, ok := g.cells[c]
	return cell, ok
}

// Ensure returns the cell at c, creating an empty one if needed.
func (g *Grid) Ensure(c Coord) *Cell {
	cell, ok := g.cells[c]
	if !ok {
		cell = &Cell{}
		g.cells[c] = cell
	}
	return cell
}

// Populate appends tokens to the cell at c, creating it if needed.
func (g *Grid) Populate(c Coord, plants, herbivores, predators int) *Cell {
	cell := g.Ensure(c)
	cell.pops[Plant].Append(plants)
	cell.pops[Herbivore].Append(herbivores)
	cell.pops[Predator].Append(predators)
	return cell
}

// Counts reports the populations at c; missing cells report zeros.
func (g *Grid) Counts(c Coord) Counts {
	cell, ok := g.cells[c]
	if !ok {
		return Counts{}
	}
	return cell.Counts()
}

// Coords lists the populated coordinates in row-major order.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Totals sums the populations of every cell.
func (g *Grid) Totals() Counts {
	var total Counts
	for _, cell := range g.cells {
		total = total.Add(cell.Counts())
	}
	return total
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{cells: make(map[Coord]*Cell, len(g.cells))}
	for c, cell := range g.cells {
		cp := *cell
		out.cells[c] = &cp
	}
	return out
}

// Equal reports whether two grids hold the same populations. A missing cell
// and a present cell with empty containers compare equal.
func (g *Grid) Equal(o *Grid) bool {
	for c := range g.cells {
		if g.Counts(c) != o.Counts(c) {
			return false
		}
	}
	for c := range o.cells {
		if g.Counts(c) != o.Counts(c) {
			return false
		}
	}
	return true
}
