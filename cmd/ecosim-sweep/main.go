// Command ecosim-sweep searches growth and birth rates for settings under
// which plants, herbivores and predators coexist longest on a world.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ecosim/internal/logging"
	"ecosim/internal/settings"
	"ecosim/internal/sims/ecosim"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("ecosim-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	manualOnly := fs.Bool("manual", false, "skip sweeping and only evaluate the configured parameters")
	rc, err := settings.Resolve(fs, args, getenv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logging.NewWithWriter(rc.LogLevel, stderr)

	cfg, grid, _ := ecosim.LoadOrSeed(rc.World, ecosim.DefaultConfig(), log)
	cfg = rc.Apply(cfg)
	steps := rc.Sweep.Steps
	if rc.Steps > 0 {
		steps = rc.Steps
	}

	baseline := ecosim.RunCoexistence(cfg, grid, steps)
	fmt.Fprintf(stdout, "Baseline: %s\n", describe(baseline))

	if *manualOnly {
		fmt.Fprintln(stdout, "Manual evaluation requested; skipping sweep.")
		printParams(stdout, cfg.Params)
		return 0
	}

	params, result, trace, err := ecosim.CoexistenceSweep(ctx, cfg, grid, steps, rc.Sweep.Passes, rc.Sweep.Workers)
	if err != nil {
		log.Errorf("sweep: %v", err)
		return 1
	}

	fmt.Fprintf(stdout, "\nBest found: %s\n", describe(result))
	printParams(stdout, params)

	if len(trace) > 1 {
		fmt.Fprintln(stdout, "\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Fprintf(stdout, "  pass %d: %s=%s -> %s\n", rec.Pass, rec.Parameter, rec.Value, describe(rec.Result))
		}
	}
	return 0
}

func describe(r ecosim.CoexistenceResult) string {
	return fmt.Sprintf("all species alive for %d/%d steps, final plants=%d herbivores=%d predators=%d",
		r.StepsAlive, r.StepsSimulated, r.Final.Plants, r.Final.Herbivores, r.Final.Predators)
}

func printParams(w io.Writer, p ecosim.Params) {
	fmt.Fprintln(w, "Parameters:")
	fmt.Fprintf(w, "  %s=%.3f\n", ecosim.KeyPlantGrowth, p.PlantGrowth)
	fmt.Fprintf(w, "  %s=%.3f\n", ecosim.KeyHerbBirth, p.HerbBirth)
	fmt.Fprintf(w, "  %s=%.3f\n", ecosim.KeyPredBirth, p.PredBirth)
}
