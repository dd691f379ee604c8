//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"ecosim/internal/app"
	"ecosim/internal/logging"
	"ecosim/internal/settings"
	"ecosim/internal/sims/ecosim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	fs := flag.NewFlagSet("ecosim-gui", flag.ExitOnError)
	scale := fs.Int("scale", 0, "pixels per cell; 0 picks one from the grid size")
	tps := fs.Int("tps", app.DefaultStepsPerSecond, "simulation steps per second")
	paused := fs.Bool("paused", false, "start paused")
	rc, err := settings.Resolve(fs, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(rc.LogLevel)

	cfg, grid, _ := ecosim.LoadOrSeed(rc.World, ecosim.DefaultConfig(), log)
	cfg = rc.Apply(cfg)

	opts := app.Options{
		Config:         cfg,
		Grid:           grid,
		Logger:         log,
		Scale:          *scale,
		StepsPerSecond: *tps,
		StartPaused:    *paused,
	}
	game := app.New(opts)

	size := game.World().Size()
	ebiten.SetWindowTitle(fmt.Sprintf("ecosim %dx%d", size.H, size.W))
	ebiten.SetWindowSize(opts.WindowSize(size))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("%v", err)
	}
}
