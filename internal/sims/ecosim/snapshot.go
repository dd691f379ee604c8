package ecosim

import (
	"encoding/json"
	"fmt"
)

// CellSnapshot is the serialized form of one populated cell.
type CellSnapshot struct {
	Row int `json:"row"`
	Col int `json:"col"`
	Counts
}

// Snapshot captures a world at a point in time.
type Snapshot struct {
	Step   int            `json:"step"`
	Rows   int            `json:"rows"`
	Cols   int            `json:"cols"`
	Steps  int            `json:"steps"`
	Params Params         `json:"params"`
	Cells  []CellSnapshot `json:"cells"`
	Totals Counts         `json:"totals"`
}

// Snapshot captures the current state of the world.
func (w *World) Snapshot() Snapshot {
	return TakeSnapshot(w.cfg, w.grid, w.step)
}

// TakeSnapshot captures cfg and g at the given step index.
func TakeSnapshot(cfg Config, g *Grid, step int) Snapshot {
	coords := g.Coords()
	cells := make([]CellSnapshot, 0, len(coords))
	for _, c := range coords {
		cells = append(cells, CellSnapshot{Row: c.Row, Col: c.Col, Counts: g.Counts(c)})
	}
	return Snapshot{
		Step:   step,
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Steps:  cfg.Steps,
		Params: cfg.Params,
		Cells:  cells,
		Totals: g.Totals(),
	}
}

// Restore rebuilds the config and grid captured by s.
func (s Snapshot) Restore() (Config, *Grid) {
	cfg := Config{Rows: s.Rows, Cols: s.Cols, Steps: s.Steps, Params: s.Params}
	g := NewGrid()
	for _, c := range s.Cells {
		g.Populate(Coord{Row: c.Row, Col: c.Col}, c.Plants, c.Herbivores, c.Predators)
	}
	return cfg, g
}

// ValidateSnapshot checks that coordinates are unique and non-negative and
// that no count is negative.
func ValidateSnapshot(s Snapshot) error {
	seen := make(map[Coord]struct{}, len(s.Cells))
	for i, c := range s.Cells {
		coord := Coord{Row: c.Row, Col: c.Col}
		if c.Row < 0 || c.Col < 0 {
			return fmt.Errorf("cell at index %d has negative coordinate %s", i, coord)
		}
		if _, dup := seen[coord]; dup {
			return fmt.Errorf("duplicate cell %s", coord)
		}
		seen[coord] = struct{}{}
		if c.Plants < 0 || c.Herbivores < 0 || c.Predators < 0 {
			return fmt.Errorf("cell %s has negative population %s", coord, c.Counts)
		}
	}
	return nil
}

// EncodeSnapshotJSON encodes a snapshot to JSON.
func EncodeSnapshotJSON(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshotJSON decodes and validates a snapshot.
func DecodeSnapshotJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := ValidateSnapshot(s); err != nil {
		return Snapshot{}, fmt.Errorf("invalid snapshot: %w", err)
	}
	return s, nil
}
