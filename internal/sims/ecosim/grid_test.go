package ecosim

import (
	"slices"
	"testing"
)

func TestGridMissingCellsReportZero(t *testing.T) {
	g := NewGrid()
	if got := g.Counts(Coord{Row: 4, Col: 4}); got != (Counts{}) {
		t.Fatalf("missing cell should be empty, got %v", got)
	}
	if _, ok := g.Cell(Coord{Row: 4, Col: 4}); ok {
		t.Fatal("Counts must not create cells")
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty grid, got %d cells", g.Len())
	}
}

func TestGridCoordsRowMajor(t *testing.T) {
	g := NewGrid()
	g.Populate(Coord{Row: 1, Col: 0}, 1, 0, 0)
	g.Populate(Coord{Row: 0, Col: 2}, 1, 0, 0)
	g.Populate(Coord{Row: 0, Col: 1}, 1, 0, 0)
	g.Populate(Coord{Row: 12, Col: 3}, 1, 0, 0)

	want := []Coord{{0, 1}, {0, 2}, {1, 0}, {12, 3}}
	if got := g.Coords(); !slices.Equal(got, want) {
		t.Fatalf("coords %v, want %v", got, want)
	}
}

func TestGridCoordsDistinguishRowAndColumn(t *testing.T) {
	g := NewGrid()
	g.Populate(Coord{Row: 1, Col: 11}, 1, 0, 0)
	g.Populate(Coord{Row: 11, Col: 1}, 2, 0, 0)
	if g.Len() != 2 {
		t.Fatalf("expected two distinct cells, got %d", g.Len())
	}
	if g.Counts(Coord{Row: 1, Col: 11}).Plants != 1 || g.Counts(Coord{Row: 11, Col: 1}).Plants != 2 {
		t.Fatal("coordinates aliased")
	}
}

func TestGridEqualTreatsEmptyAsMissing(t *testing.T) {
	a := NewGrid()
	a.Populate(Coord{Row: 0, Col: 0}, 3, 2, 1)
	b := a.Clone()
	b.Ensure(Coord{Row: 5, Col: 5})
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("empty cell should equal a missing one")
	}
	b.Populate(Coord{Row: 5, Col: 5}, 0, 1, 0)
	if a.Equal(b) {
		t.Fatal("grids with different populations compared equal")
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	a := NewGrid()
	a.Populate(Coord{Row: 0, Col: 0}, 3, 2, 1)
	b := a.Clone()
	cell, _ := b.Cell(Coord{Row: 0, Col: 0})
	cell.Population(Plant).Append(10)
	if a.Counts(Coord{Row: 0, Col: 0}).Plants != 3 {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestGridTotals(t *testing.T) {
	_, g := SeedDefault(DefaultConfig())
	want := Counts{Plants: 36, Herbivores: 10, Predators: 3}
	if got := g.Totals(); got != want {
		t.Fatalf("totals %v, want %v", got, want)
	}
}
