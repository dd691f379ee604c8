// Command ecosim-tui runs a world in the terminal. Space pauses, n steps
// once, arrows pan, m toggles heat mode, p/h/r pick the layer, q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"ecosim/internal/logging"
	"ecosim/internal/settings"
	"ecosim/internal/sims/ecosim"
	"ecosim/internal/tui"
)

func main() {
	fs := flag.NewFlagSet("ecosim-tui", flag.ExitOnError)
	paused := fs.Bool("paused", false, "start paused")
	rc, err := settings.Resolve(fs, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(rc.LogLevel)

	cfg, grid, _ := ecosim.LoadOrSeed(rc.World, ecosim.DefaultConfig(), log)
	cfg = rc.Apply(cfg)
	// Logging to stderr would tear the screen once tcell owns the terminal.
	world := ecosim.NewWorld(cfg, grid, nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initialising screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewer := tui.NewViewer(screen, world)
	viewer.SetPaused(*paused)
	err = viewer.Run(ctx, rc.Serve.Interval)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatalf("viewer: %v", err)
	}
	t := world.Totals()
	fmt.Printf("stopped at step %d/%d: plants=%d herbivores=%d predators=%d\n",
		world.StepIndex(), cfg.Steps, t.Plants, t.Herbivores, t.Predators)
}
