// Command ecosim-serve steps a world on a timer and streams every snapshot
// to WebSocket clients on /stream. GET /snapshot returns the latest state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecosim/internal/history"
	"ecosim/internal/logging"
	"ecosim/internal/settings"
	"ecosim/internal/sims/ecosim"
	"ecosim/internal/stream"
)

func main() {
	fs := flag.NewFlagSet("ecosim-serve", flag.ExitOnError)
	linger := fs.Bool("linger", true, "keep serving the final snapshot after the run completes")
	rc, err := settings.Resolve(fs, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(rc.LogLevel)

	cfg, grid, _ := ecosim.LoadOrSeed(rc.World, ecosim.DefaultConfig(), log)
	cfg = rc.Apply(cfg)
	world := ecosim.NewWorld(cfg, grid, log)

	var observe func(ecosim.StepStats)
	if rc.History != "" {
		db, err := history.Open(rc.History)
		if err != nil {
			log.Fatalf("opening history: %v", err)
		}
		defer db.Close()
		if err := db.SaveConfig(cfg); err != nil {
			log.Fatalf("saving run config: %v", err)
		}
		observe = func(st ecosim.StepStats) {
			if err := db.Record(st); err != nil {
				log.Errorf("recording step %d: %v", st.Step, err)
			}
		}
	}

	hub := stream.NewHub(log)
	srv := &http.Server{
		Addr:              rc.Serve.Addr,
		Handler:           stream.NewMux(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on %s", rc.Serve.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server: %v", err)
			stop()
		}
	}()

	err = hub.Pump(ctx, world, rc.Serve.Interval, observe)
	switch {
	case err == nil:
		t := world.Totals()
		log.Infof("run complete at step %d: plants=%d herbivores=%d predators=%d",
			world.StepIndex(), t.Plants, t.Herbivores, t.Predators)
		if *linger {
			<-ctx.Done()
		}
	case errors.Is(err, context.Canceled):
	default:
		log.Errorf("pump: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	if err := hub.Close(); err != nil {
		log.Warnf("closing hub: %v", err)
	}
}
