package report

import (
	"fmt"
	"strings"
)

// Window is a rectangular region of the grid in cell coordinates.
type Window struct {
	Row, Col   int
	Rows, Cols int
}

// Full returns the window covering a rows x cols grid.
func Full(rows, cols int) Window {
	return Window{Rows: max(rows, 0), Cols: max(cols, 0)}
}

// Clip restricts w to a rows x cols grid. Non-positive Rows or Cols extend
// the window to the grid edge.
func (w Window) Clip(rows, cols int) Window {
	rows, cols = max(rows, 0), max(cols, 0)
	w.Row = clamp(w.Row, 0, rows)
	w.Col = clamp(w.Col, 0, cols)
	if w.Rows <= 0 || w.Row+w.Rows > rows {
		w.Rows = rows - w.Row
	}
	if w.Cols <= 0 || w.Col+w.Cols > cols {
		w.Cols = cols - w.Col
	}
	return w
}

// Contains reports whether the cell (row, col) lies inside w.
func (w Window) Contains(row, col int) bool {
	return row >= w.Row && row < w.Row+w.Rows && col >= w.Col && col < w.Col+w.Cols
}

// Empty reports whether the window covers no cells.
func (w Window) Empty() bool { return w.Rows <= 0 || w.Cols <= 0 }

func (w Window) String() string {
	return fmt.Sprintf("rows %d-%d cols %d-%d", w.Row, w.Row+w.Rows-1, w.Col, w.Col+w.Cols-1)
}

// Corner names a quadrant of the grid.
type Corner int

const (
	CornerNone Corner = iota
	CornerNW
	CornerNE
	CornerSW
	CornerSE
)

func (c Corner) String() string {
	switch c {
	case CornerNW:
		return "nw"
	case CornerNE:
		return "ne"
	case CornerSW:
		return "sw"
	case CornerSE:
		return "se"
	default:
		return "all"
	}
}

// ParseCorner maps nw, ne, sw and se (any case) to a corner. The empty
// string and "all" mean the whole grid.
func ParseCorner(s string) (Corner, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CornerNone, nil
	case "nw":
		return CornerNW, nil
	case "ne":
		return CornerNE, nil
	case "sw":
		return CornerSW, nil
	case "se":
		return CornerSE, nil
	default:
		return CornerNone, fmt.Errorf("unknown quadrant %q (want nw, ne, sw, se or all)", s)
	}
}

// Quadrant returns one quarter of a rows x cols grid. Odd extents give the
// extra row and column to the north and west halves.
func Quadrant(rows, cols int, c Corner) Window {
	full := Full(rows, cols)
	northRows := (full.Rows + 1) / 2
	westCols := (full.Cols + 1) / 2
	switch c {
	case CornerNW:
		return Window{Rows: northRows, Cols: westCols}
	case CornerNE:
		return Window{Col: westCols, Rows: northRows, Cols: full.Cols - westCols}
	case CornerSW:
		return Window{Row: northRows, Rows: full.Rows - northRows, Cols: westCols}
	case CornerSE:
		return Window{Row: northRows, Col: westCols, Rows: full.Rows - northRows, Cols: full.Cols - westCols}
	default:
		return full
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
