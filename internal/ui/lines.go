package ui

import (
	"fmt"
	"strings"

	"ecosim/internal/core"
	"ecosim/internal/report"
	"ecosim/internal/sims/ecosim"
)

// StatusLines describes the run state shown at the top of the HUD.
func StatusLines(w *ecosim.World, paused bool) []string {
	if w == nil {
		return nil
	}
	state := "running"
	switch {
	case w.Done():
		state = "done"
	case paused:
		state = "paused"
	}
	t := w.Totals()
	return []string{
		fmt.Sprintf("Step %d/%d [%s]", w.StepIndex(), w.Config().Steps, state),
		"Layer: " + w.Layer().String(),
		fmt.Sprintf("Plants     %d", t.Plants),
		fmt.Sprintf("Herbivores %d", t.Herbivores),
		fmt.Sprintf("Predators  %d", t.Predators),
	}
}

// ParameterLines flattens a parameter snapshot into display lines, one
// header per group.
func ParameterLines(s core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range s.Groups {
		header := g.Name
		if g.Summary != "" {
			header += " (" + g.Summary + ")"
		}
		lines = append(lines, header)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

// Title returns the panel title for a sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Parameters"
}

// CellAt maps a screen position to the grid cell under it, given the pixel
// scale and the declared grid size.
func CellAt(x, y, scale int, size core.Size) (ecosim.Coord, bool) {
	if scale <= 0 {
		scale = 1
	}
	if x < 0 || y < 0 {
		return ecosim.Coord{}, false
	}
	col, row := x/scale, y/scale
	if col >= size.W || row >= size.H {
		return ecosim.Coord{}, false
	}
	return ecosim.Coord{Row: row, Col: col}, true
}

// InspectLine describes a single cell.
func InspectLine(v ecosim.View, c ecosim.Coord) string {
	n := v.Counts(c)
	return fmt.Sprintf("%s (P,H,R)=(%d,%d,%d)", c, n.Plants, n.Herbivores, n.Predators)
}

// TotalsLine is the one-line summary shown under the grid.
func TotalsLine(v ecosim.View) string {
	return report.TotalsLine(report.SumCounts(v))
}
