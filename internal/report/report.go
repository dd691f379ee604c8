// Package report renders console views of an ecosim world.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"ecosim/internal/sims/ecosim"
)

// Title is printed at the top of every run header.
const Title = "=== Predator–Prey Grid Simulation (Alpha) ==="

// Header writes the banner and the global parameters of cfg.
func Header(w io.Writer, cfg ecosim.Config) error {
	p := cfg.Params
	_, err := fmt.Fprintf(w, "\n%s\nGrid: %d x %d | Steps=%d | plantGrowth=%s | herbBirth=%s | predBirth=%s | starvationSteps=%d\n",
		Title, cfg.Rows, cfg.Cols, cfg.Steps,
		formatRate(p.PlantGrowth), formatRate(p.HerbBirth), formatRate(p.PredBirth), p.StarvationSteps)
	return err
}

// Table writes the (P,H,R) counts of every cell inside win, one grid row per
// line. Missing cells print as (0,0,0).
func Table(w io.Writer, title string, v ecosim.View, win Window) error {
	rows, cols := v.Dimensions()
	win = win.Clip(rows, cols)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n", title)
	for r := win.Row; r < win.Row+win.Rows; r++ {
		for c := win.Col; c < win.Col+win.Cols; c++ {
			n := v.Counts(ecosim.Coord{Row: r, Col: c})
			fmt.Fprintf(bw, "(%d,%d,%d) ", n.Plants, n.Herbivores, n.Predators)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Totals writes the summed populations of the whole grid.
func Totals(w io.Writer, v ecosim.View) error {
	_, err := fmt.Fprintln(w, TotalsLine(SumCounts(v)))
	return err
}

// TotalsLine formats summed populations.
func TotalsLine(t ecosim.Counts) string {
	return fmt.Sprintf("Totals: plants=%d herbivores=%d predators=%d", t.Plants, t.Herbivores, t.Predators)
}

// SumCounts adds up every populated cell of v, including cells outside the
// declared dimensions.
func SumCounts(v ecosim.View) ecosim.Counts {
	var total ecosim.Counts
	for _, c := range v.Coords() {
		total = total.Add(v.Counts(c))
	}
	return total
}

// StepTitle is the table title used for the snapshot after step t.
func StepTitle(t int) string {
	if t == 0 {
		return "Initial state:"
	}
	return "After step " + strconv.Itoa(t) + ":"
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
