package ecosim

import "fmt"

// Species enumerates the three trophic levels tracked per cell.
type Species uint8

const (
	Plant Species = iota
	Herbivore
	Predator
)

const speciesCount = 3

// AllSpecies lists the species in container order.
var AllSpecies = [speciesCount]Species{Plant, Herbivore, Predator}

// Tag returns the single-letter token tag used for the species.
func (s Species) Tag() string {
	switch s {
	case Plant:
		return "P"
	case Herbivore:
		return "H"
	case Predator:
		return "R"
	default:
		return "?"
	}
}

func (s Species) String() string {
	switch s {
	case Plant:
		return "plants"
	case Herbivore:
		return "herbivores"
	case Predator:
		return "predators"
	default:
		return fmt.Sprintf("species(%d)", uint8(s))
	}
}

// Population is an ordered container of identity-less organism tokens.
// Since tokens carry nothing beyond their species, only the length is stored;
// front and back removal both shrink it.
type Population struct {
	n int
}

// Len reports the number of tokens held.
func (p *Population) Len() int { return p.n }

// Append adds n tokens at the back. Non-positive n is a no-op.
func (p *Population) Append(n int) {
	if n > 0 {
		p.n += n
	}
}

// RemoveFront removes up to n of the oldest tokens and returns how many were removed.
func (p *Population) RemoveFront(n int) int { return p.remove(n) }

// RemoveBack removes up to n of the youngest tokens and returns how many were removed.
func (p *Population) RemoveBack(n int) int { return p.remove(n) }

func (p *Population) remove(n int) int {
	if n <= 0 {
		return 0
	}
	if n > p.n {
		n = p.n
	}
	p.n -= n
	return n
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string { return fmt.Sprintf("r%dc%d", c.Row, c.Col) }

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Counts holds the three population sizes of a cell.
type Counts struct {
	Plants     int `json:"plants"`
	Herbivores int `json:"herbivores"`
	Predators  int `json:"predators"`
}

// Of returns the count for a single species.
func (c Counts) Of(s Species) int {
	switch s {
	case Plant:
		return c.Plants
	case Herbivore:
		return c.Herbivores
	case Predator:
		return c.Predators
	default:
		return 0
	}
}

// Add returns the element-wise sum of two counts.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Plants:     c.Plants + o.Plants,
		Herbivores: c.Herbivores + o.Herbivores,
		Predators:  c.Predators + o.Predators,
	}
}

// Alive reports whether every species still has at least one token.
func (c Counts) Alive() bool {
	return c.Plants > 0 && c.Herbivores > 0 && c.Predators > 0
}

func (c Counts) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Plants, c.Herbivores, c.Predators)
}

// Cell holds one population container per species.
type Cell struct {
	pops [speciesCount]Population
}

// NewCell builds a cell with the given starting populations.
func NewCell(plants, herbivores, predators int) *Cell {
	c := &Cell{}
	c.pops[Plant].Append(plants)
	c.pops[Herbivore].Append(herbivores)
	c.pops[Predator].Append(predators)
	return c
}

// Population returns the container for a species.
func (c *Cell) Population(s Species) *Population {
	return &c.pops[s]
}

// Counts reports the container lengths.
func (c *Cell) Counts() Counts {
	return Counts{
		Plants:     c.pops[Plant].Len(),
		Herbivores: c.pops[Herbivore].Len(),
		Predators:  c.pops[Predator].Len(),
	}
}
