package ecosim

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Steps != 25 || cfg.Rows != 0 || cfg.Cols != 0 {
		t.Fatalf("unexpected dimensions %+v", cfg)
	}
	want := Params{PlantGrowth: 0.25, HerbBirth: 0.10, PredBirth: 0.05, StarvationSteps: 3, MigrateRate: 0.02}
	if cfg.Params != want {
		t.Fatalf("params %+v, want %+v", cfg.Params, want)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rows":            "4",
		"cols":            "5",
		"steps":           "40",
		"plantGrowth":     "0.5",
		"herbBirth":       "bogus",
		"starvationSteps": "7.9",
		"unknown":         "1",
	})
	if cfg.Rows != 4 || cfg.Cols != 5 || cfg.Steps != 40 {
		t.Fatalf("dimensions not applied: %+v", cfg)
	}
	if cfg.Params.PlantGrowth != 0.5 {
		t.Fatalf("plantGrowth %v, want 0.5", cfg.Params.PlantGrowth)
	}
	if cfg.Params.HerbBirth != 0.10 {
		t.Fatalf("unparseable value should be ignored, got %v", cfg.Params.HerbBirth)
	}
	if cfg.Params.StarvationSteps != 7 {
		t.Fatalf("starvationSteps should truncate to 7, got %d", cfg.Params.StarvationSteps)
	}
}

func TestWithLeavesReceiverUntouched(t *testing.T) {
	base := DefaultConfig()
	next := base.With(map[string]string{"predBirth": "0.9"})
	if base.Params.PredBirth != 0.05 {
		t.Fatal("With mutated its receiver")
	}
	if next.Params.PredBirth != 0.9 {
		t.Fatalf("override not applied: %v", next.Params.PredBirth)
	}
	if got := base.With(nil); got != base {
		t.Fatal("nil overrides should return an identical config")
	}
}

func TestWithTruncatesFractionalCounts(t *testing.T) {
	cfg := DefaultConfig().With(map[string]string{"steps": "30.5", "rows": "2.9", "cols": "-1"})
	if cfg.Steps != 30 || cfg.Rows != 2 {
		t.Fatalf("fractional counts should truncate, got steps=%d rows=%d", cfg.Steps, cfg.Rows)
	}
	if cfg.Cols != 0 {
		t.Fatalf("negative cols should be ignored, got %d", cfg.Cols)
	}

	fromFile, _, err := Parse(strings.NewReader("PARAM steps 30.5\nCELL 0 0 1 1 1\n"), DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if fromFile.Steps != cfg.Steps {
		t.Fatalf("world file steps %d, override steps %d", fromFile.Steps, cfg.Steps)
	}
	if got := DefaultConfig().With(map[string]string{"steps": "NaN"}).Steps; got != 25 {
		t.Fatalf("NaN steps should be ignored, got %d", got)
	}
	if got := DefaultConfig().With(map[string]string{"steps": "1e300"}).Steps; got != 25 {
		t.Fatalf("out of range steps should be ignored, got %d", got)
	}
}
