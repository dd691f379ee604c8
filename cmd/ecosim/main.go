// Command ecosim loads a world file (or the built-in seed), runs it for the
// configured number of steps and prints the grid to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"ecosim/internal/chart"
	"ecosim/internal/history"
	"ecosim/internal/logging"
	"ecosim/internal/report"
	"ecosim/internal/settings"
	"ecosim/internal/sims/ecosim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("ecosim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rc, err := settings.Resolve(fs, args, getenv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logging.NewWithWriter(rc.LogLevel, stderr)

	cfg, grid, _ := ecosim.LoadOrSeed(rc.World, ecosim.DefaultConfig(), log)
	cfg = rc.Apply(cfg)
	world := ecosim.NewWorld(cfg, grid, log)

	var db *history.DB
	if rc.History != "" {
		db, err = history.Open(rc.History)
		if err != nil {
			log.Errorf("opening history: %v", err)
			return 1
		}
		defer db.Close()
		if err := db.SaveConfig(cfg); err != nil {
			log.Errorf("saving run config: %v", err)
			return 1
		}
		if rc.HistoryCells {
			if err := db.RecordCells(0, world); err != nil {
				log.Errorf("recording initial cells: %v", err)
				return 1
			}
		}
	}

	var series chart.Series
	series.Add(0, world.Totals())

	printer := report.NewPrinter(stdout, rc.Viewport.Window(cfg.Rows, cfg.Cols), rc.Every)
	if err := printer.Start(cfg, world); err != nil {
		log.Errorf("writing output: %v", err)
		return 1
	}

	for !world.Done() {
		st := world.Step()
		series.Observe(st)
		if db != nil {
			if err := db.Record(st); err != nil {
				log.Errorf("recording step %d: %v", st.Step, err)
				return 1
			}
			if rc.HistoryCells {
				if err := db.RecordCells(st.Step, world); err != nil {
					log.Errorf("recording cells for step %d: %v", st.Step, err)
					return 1
				}
			}
		}
		if err := printer.Step(st.Step, world); err != nil {
			log.Errorf("writing output: %v", err)
			return 1
		}
	}
	if err := printer.Final(world); err != nil {
		log.Errorf("writing output: %v", err)
		return 1
	}

	if rc.Chart != "" {
		switch err := series.WriteFile(rc.Chart, chart.DefaultWidth, chart.DefaultHeight); {
		case errors.Is(err, chart.ErrTooFewPoints):
			log.Warnf("skipping chart: %v", err)
		case err != nil:
			log.Errorf("writing chart: %v", err)
			return 1
		default:
			log.Infof("wrote chart to %s", rc.Chart)
		}
	}
	if rc.Snapshot != "" {
		if err := writeSnapshot(rc.Snapshot, world); err != nil {
			log.Errorf("writing snapshot: %v", err)
			return 1
		}
		log.Infof("wrote snapshot to %s", rc.Snapshot)
	}
	if rc.Save != "" {
		if err := saveWorld(rc.Save, world); err != nil {
			log.Errorf("saving world: %v", err)
			return 1
		}
		log.Infof("saved world to %s", rc.Save)
	}
	return 0
}

func writeSnapshot(path string, world *ecosim.World) error {
	data, err := ecosim.EncodeSnapshotJSON(world.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func saveWorld(path string, world *ecosim.World) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	snap := world.Snapshot()
	cfg, grid := snap.Restore()
	if err := ecosim.Write(f, cfg, grid); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
