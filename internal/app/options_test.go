package app

import (
	"testing"

	"ecosim/internal/core"
	"ecosim/internal/sims/ecosim"
)

func TestOptionsNormalized(t *testing.T) {
	o := Options{}.normalized()
	if o.Scale != DefaultScale || o.PanelWidth != DefaultPanelWidth || o.StepsPerSecond != DefaultStepsPerSecond {
		t.Fatalf("defaults not applied: %+v", o)
	}
	if o.Grid == nil {
		t.Fatal("nil grid should be replaced")
	}

	cfg := ecosim.DefaultConfig()
	cfg.Rows, cfg.Cols = 400, 100
	if got := (Options{Config: cfg}).normalized().Scale; got != 4 {
		t.Fatalf("large grids should shrink the scale, got %d", got)
	}
	cfg.Rows = 5000
	if got := (Options{Config: cfg}).normalized().Scale; got != minScale {
		t.Fatalf("scale should bottom out at %d, got %d", minScale, got)
	}
	if got := (Options{PanelWidth: -1}).normalized().PanelWidth; got != 0 {
		t.Fatalf("negative panel width should disable the panel, got %d", got)
	}
}

func TestWindowSize(t *testing.T) {
	w, h := Options{Scale: 10, PanelWidth: 100}.WindowSize(core.Size{W: 5, H: 50})
	if w != 150 || h != 500 {
		t.Fatalf("window %dx%d", w, h)
	}
	if _, h := (Options{Scale: 10}).WindowSize(core.Size{W: 2, H: 2}); h != minWindowHeight {
		t.Fatalf("small grids should keep the minimum height, got %d", h)
	}
}

func TestNewWorldClonesGrid(t *testing.T) {
	cfg, g := ecosim.SeedDefault(ecosim.DefaultConfig())
	o := Options{Config: cfg, Grid: g}.normalized()
	w := o.newWorld()
	w.Run(3, nil)
	if g.Counts(ecosim.Coord{}) != (ecosim.Counts{Plants: 10, Herbivores: 3, Predators: 1}) {
		t.Fatal("stepping the world must not touch the starting grid")
	}
	if fresh := o.newWorld(); fresh.StepIndex() != 0 || !fresh.Totals().Alive() {
		t.Fatal("a new world should start from the initial grid")
	}
}
