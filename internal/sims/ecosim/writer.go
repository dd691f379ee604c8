package ecosim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write serializes cfg and g in the world file format. Parsing the output
// reproduces the same config and populations.
func Write(w io.Writer, cfg Config, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# ecosim world\n")
	fmt.Fprintf(bw, "%s %d %d\n", tagGrid, cfg.Rows, cfg.Cols)
	writeParam(bw, KeySteps, float64(cfg.Steps))
	writeParam(bw, KeyPlantGrowth, cfg.Params.PlantGrowth)
	writeParam(bw, KeyHerbBirth, cfg.Params.HerbBirth)
	writeParam(bw, KeyPredBirth, cfg.Params.PredBirth)
	writeParam(bw, KeyStarvationSteps, float64(cfg.Params.StarvationSteps))
	writeParam(bw, KeyMigrateRate, cfg.Params.MigrateRate)
	if g != nil {
		for _, c := range g.Coords() {
			n := g.Counts(c)
			fmt.Fprintf(bw, "%s %d %d %d %d %d\n", tagCell, c.Row, c.Col, n.Plants, n.Herbivores, n.Predators)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing world: %w", err)
	}
	return nil
}

func writeParam(w io.Writer, name string, value float64) {
	fmt.Fprintf(w, "%s %s %s\n", tagParam, name, strconv.FormatFloat(value, 'g', -1, 64))
}
