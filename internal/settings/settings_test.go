package settings

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ecosim/internal/report"
	"ecosim/internal/sims/ecosim"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func envOf(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	run := Defaults()
	if run.World != ecosim.DefaultWorldFile {
		t.Fatalf("world %q, want %q", run.World, ecosim.DefaultWorldFile)
	}
	if run.Steps != 0 || run.Every != 5 || run.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", run)
	}
	if run.Serve.Addr != ":8080" || run.Serve.Interval != 250*time.Millisecond {
		t.Fatalf("unexpected serve defaults %+v", run.Serve)
	}
	if run.Sweep.Passes != 3 || run.Sweep.Workers != 4 || run.Sweep.Steps != 100 {
		t.Fatalf("unexpected sweep defaults %+v", run.Sweep)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeYAML(t, "steps: 40\nserve:\n  interval: 1s\nparams:\n  plantGrowth: 0.4\n")
	run, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if run.Steps != 40 || run.Serve.Interval != time.Second {
		t.Fatalf("file values not applied: %+v", run)
	}
	if run.Every != 5 || run.Serve.Addr != ":8080" {
		t.Fatalf("defaults lost: %+v", run)
	}
	if run.Params["plantGrowth"] != 0.4 {
		t.Fatalf("params %v", run.Params)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeYAML(t, "steps: [1, 2\n")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if _, err := Load(writeYAML(t, "steps: -3\n")); err == nil {
		t.Fatal("expected error for negative steps")
	}
	if _, err := Load(writeYAML(t, "viewport:\n  quadrant: middle\n")); err == nil {
		t.Fatal("expected error for unknown quadrant")
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := writeYAML(t, "steps: 40\nevery: 2\nworld: from-yaml.txt\n")
	env := envOf(map[string]string{
		EnvConfig:      path,
		"ECOSIM_STEPS": "60",
		"ECOSIM_WORLD": "from-env.txt",
	})
	run, err := Resolve(newFlagSet(), []string{"-world", "from-flag.txt"}, env)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if run.World != "from-flag.txt" {
		t.Fatalf("flag should beat env, got %q", run.World)
	}
	if run.Steps != 60 {
		t.Fatalf("env should beat yaml, got %d", run.Steps)
	}
	if run.Every != 2 {
		t.Fatalf("yaml should beat defaults, got %d", run.Every)
	}
}

func TestResolveConfigFlagBeatsEnv(t *testing.T) {
	flagPath := writeYAML(t, "every: 9\n")
	env := envOf(map[string]string{EnvConfig: filepath.Join(t.TempDir(), "nope.yaml")})
	run, err := Resolve(newFlagSet(), []string{"-config", flagPath}, env)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if run.Every != 9 {
		t.Fatalf("every %d, want 9", run.Every)
	}
}

func TestResolveTypedValues(t *testing.T) {
	args := []string{
		"-interval", "2s",
		"-history-cells", "true",
		"-set", "plantGrowth=0.5, herbBirth=0.2",
		"-quadrant", "se",
		"-workers", "8",
	}
	run, err := Resolve(newFlagSet(), args, envOf(map[string]string{"ECOSIM_PARAMS": "predBirth=0.3"}))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if run.Serve.Interval != 2*time.Second || !run.HistoryCells || run.Sweep.Workers != 8 {
		t.Fatalf("typed values not applied: %+v", run)
	}
	if run.Params["plantGrowth"] != 0.5 || run.Params["herbBirth"] != 0.2 {
		t.Fatalf("params %v", run.Params)
	}
	if _, ok := run.Params["predBirth"]; ok {
		t.Fatalf("flag should replace the env override list entirely, got %v", run.Params)
	}
	if run.Viewport.Quadrant != "se" {
		t.Fatalf("quadrant %q", run.Viewport.Quadrant)
	}
}

func TestResolveRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"-steps", "many"},
		{"-interval", "soon"},
		{"-set", "plantGrowth"},
		{"-set", "plantGrowth=lots"},
		{"-quadrant", "centre"},
		{"-every", "-1"},
	}
	for _, args := range cases {
		if _, err := Resolve(newFlagSet(), args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestResolveKeepsCallerFlags(t *testing.T) {
	fs := newFlagSet()
	tui := fs.Bool("paused", false, "start paused")
	if _, err := Resolve(fs, []string{"-paused", "-steps", "3"}, nil); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !*tui {
		t.Fatal("caller flag not parsed")
	}
}

func TestApply(t *testing.T) {
	run := Defaults()
	run.Steps = 80
	run.Params = map[string]float64{"plantGrowth": 0.125, "starvationSteps": 7, "bogus": 1}
	cfg := run.Apply(ecosim.DefaultConfig())
	if cfg.Steps != 80 || cfg.Params.PlantGrowth != 0.125 || cfg.Params.StarvationSteps != 7 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	run.Steps = 0
	base := ecosim.DefaultConfig()
	base.Steps = 33
	if got := run.Apply(base).Steps; got != 33 {
		t.Fatalf("zero steps must keep the world value, got %d", got)
	}
	if keys := run.ParamKeys(); len(keys) != 3 || keys[0] != "bogus" {
		t.Fatalf("param keys %v", keys)
	}
}

func TestViewportWindow(t *testing.T) {
	v := ViewportConfig{Quadrant: "ne"}
	if got, want := v.Window(4, 6), report.Quadrant(4, 6, report.CornerNE); got != want {
		t.Fatalf("quadrant window %+v, want %+v", got, want)
	}
	v = ViewportConfig{Row: 1, Col: 1, Rows: 10, Cols: 10}
	if got := v.Window(3, 3); got != (report.Window{Row: 1, Col: 1, Rows: 2, Cols: 2}) {
		t.Fatalf("explicit window %+v", got)
	}
	v = ViewportConfig{}
	if got := v.Window(3, 5); got != (report.Window{Rows: 3, Cols: 5}) {
		t.Fatalf("empty viewport should cover the grid, got %+v", got)
	}
}
