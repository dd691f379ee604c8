// Package settings loads run configuration for the ecosim drivers.
//
// Values come from three layers: the embedded defaults.yaml, an optional
// user YAML file merged over it, then ECOSIM_* environment variables and
// command-line flags. A flag beats its environment variable, which beats
// the YAML value.
package settings

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"ecosim/internal/report"
	"ecosim/internal/sims/ecosim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Run holds the configuration of one driver invocation.
type Run struct {
	World    string `yaml:"world"`
	Steps    int    `yaml:"steps"`
	Every    int    `yaml:"every"`
	LogLevel string `yaml:"log_level"`

	History      string `yaml:"history"`
	HistoryCells bool   `yaml:"history_cells"`
	Chart        string `yaml:"chart"`
	Snapshot     string `yaml:"snapshot"`
	Save         string `yaml:"save"`

	Serve    ServeConfig    `yaml:"serve"`
	Viewport ViewportConfig `yaml:"viewport"`
	Sweep    SweepConfig    `yaml:"sweep"`

	// Params overrides world parameters by name after the world is loaded.
	Params map[string]float64 `yaml:"params"`
}

// ServeConfig configures the streaming server.
type ServeConfig struct {
	Addr     string        `yaml:"addr"`
	Interval time.Duration `yaml:"interval"`
}

// ViewportConfig restricts console output to part of the grid. A named
// quadrant takes precedence over the explicit window; zero Rows or Cols
// means the full extent.
type ViewportConfig struct {
	Quadrant string `yaml:"quadrant"`
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
}

// Window resolves the viewport against the declared grid dimensions.
func (v ViewportConfig) Window(rows, cols int) report.Window {
	if corner, err := report.ParseCorner(v.Quadrant); err == nil && corner != report.CornerNone {
		return report.Quadrant(rows, cols, corner)
	}
	return report.Window{Row: v.Row, Col: v.Col, Rows: v.Rows, Cols: v.Cols}.Clip(rows, cols)
}

// SweepConfig configures the coexistence sweep.
type SweepConfig struct {
	Steps   int `yaml:"steps"`
	Passes  int `yaml:"passes"`
	Workers int `yaml:"workers"`
}

// Defaults returns the embedded defaults.
func Defaults() Run {
	var run Run
	if err := yaml.Unmarshal(defaultsYAML, &run); err != nil {
		panic(fmt.Sprintf("settings: embedded defaults: %v", err))
	}
	return run
}

// Load reads a YAML file and merges it over the embedded defaults. An empty
// path yields the defaults alone.
func Load(path string) (Run, error) {
	run := Defaults()
	if path == "" {
		return run, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := run.Validate(); err != nil {
		return Run{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return run, nil
}

// Validate rejects values no driver can use.
func (r Run) Validate() error {
	if r.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", r.Steps)
	}
	if r.Every < 0 {
		return fmt.Errorf("every must be >= 0, got %d", r.Every)
	}
	if r.Serve.Interval < 0 {
		return fmt.Errorf("serve interval must be >= 0, got %s", r.Serve.Interval)
	}
	if _, err := report.ParseCorner(r.Viewport.Quadrant); err != nil {
		return err
	}
	return nil
}

// Overrides renders Params in the string form accepted by ecosim.Config.With.
func (r Run) Overrides() map[string]string {
	if len(r.Params) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Params))
	for k, v := range r.Params {
		out[k] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return out
}

// Apply overlays the parameter overrides and the step count onto a loaded
// world configuration.
func (r Run) Apply(cfg ecosim.Config) ecosim.Config {
	cfg = cfg.With(r.Overrides())
	if r.Steps > 0 {
		cfg.Steps = r.Steps
	}
	return cfg
}

// ParamKeys lists the override names in sorted order.
func (r Run) ParamKeys() []string {
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
