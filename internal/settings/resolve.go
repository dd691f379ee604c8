package settings

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EnvConfig names the environment variable holding the YAML config path.
const EnvConfig = "ECOSIM_CONFIG"

// resolver defines how a single value is overridden from a flag or the environment.
type resolver struct {
	flagName    string
	envVarName  string
	description string
	setter      func(*Run, string) error
}

func resolvers() []resolver {
	return []resolver{
		{
			flagName:    "world",
			envVarName:  "ECOSIM_WORLD",
			description: "path to the world description file",
			setter:      func(r *Run, v string) error { r.World = v; return nil },
		},
		{
			flagName:    "steps",
			envVarName:  "ECOSIM_STEPS",
			description: "number of steps to run; 0 keeps the world file value",
			setter:      intSetter(func(r *Run) *int { return &r.Steps }),
		},
		{
			flagName:    "every",
			envVarName:  "ECOSIM_EVERY",
			description: "print a snapshot every N steps; 0 prints only the initial and final state",
			setter:      intSetter(func(r *Run) *int { return &r.Every }),
		},
		{
			flagName:    "log-level",
			envVarName:  "ECOSIM_LOG_LEVEL",
			description: "log level: debug, info, warn, error",
			setter:      func(r *Run, v string) error { r.LogLevel = v; return nil },
		},
		{
			flagName:    "history",
			envVarName:  "ECOSIM_HISTORY",
			description: "SQLite file recording per-step totals; empty disables history",
			setter:      func(r *Run, v string) error { r.History = v; return nil },
		},
		{
			flagName:    "history-cells",
			envVarName:  "ECOSIM_HISTORY_CELLS",
			description: "also record per-cell populations in the history database",
			setter: func(r *Run, v string) error {
				b, err := strconv.ParseBool(v)
				if err != nil {
					return err
				}
				r.HistoryCells = b
				return nil
			},
		},
		{
			flagName:    "chart",
			envVarName:  "ECOSIM_CHART",
			description: "write a PNG chart of species totals to this path",
			setter:      func(r *Run, v string) error { r.Chart = v; return nil },
		},
		{
			flagName:    "snapshot",
			envVarName:  "ECOSIM_SNAPSHOT",
			description: "write the final JSON snapshot to this path",
			setter:      func(r *Run, v string) error { r.Snapshot = v; return nil },
		},
		{
			flagName:    "save",
			envVarName:  "ECOSIM_SAVE",
			description: "write the final state as a world file to this path",
			setter:      func(r *Run, v string) error { r.Save = v; return nil },
		},
		{
			flagName:    "addr",
			envVarName:  "ECOSIM_ADDR",
			description: "HTTP listen address for the streaming server",
			setter:      func(r *Run, v string) error { r.Serve.Addr = v; return nil },
		},
		{
			flagName:    "interval",
			envVarName:  "ECOSIM_INTERVAL",
			description: "time between steps for paced drivers (e.g. 250ms)",
			setter: func(r *Run, v string) error {
				d, err := time.ParseDuration(v)
				if err != nil {
					return err
				}
				r.Serve.Interval = d
				return nil
			},
		},
		{
			flagName:    "quadrant",
			envVarName:  "ECOSIM_QUADRANT",
			description: "restrict console output to a quadrant: nw, ne, sw, se",
			setter:      func(r *Run, v string) error { r.Viewport.Quadrant = v; return nil },
		},
		{
			flagName:    "passes",
			envVarName:  "ECOSIM_SWEEP_PASSES",
			description: "coordinate-descent passes for the sweep",
			setter:      intSetter(func(r *Run) *int { return &r.Sweep.Passes }),
		},
		{
			flagName:    "workers",
			envVarName:  "ECOSIM_SWEEP_WORKERS",
			description: "parallel sweep workers",
			setter:      intSetter(func(r *Run) *int { return &r.Sweep.Workers }),
		},
		{
			flagName:    "set",
			envVarName:  "ECOSIM_PARAMS",
			description: "comma-separated parameter overrides, e.g. plantGrowth=0.3,herbBirth=0.2",
			setter:      paramSetter,
		},
	}
}

func intSetter(field func(*Run) *int) func(*Run, string) error {
	return func(r *Run, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(r) = n
		return nil
	}
}

func paramSetter(r *Run, v string) error {
	params, err := ParseParams(v)
	if err != nil {
		return err
	}
	if r.Params == nil {
		r.Params = make(map[string]float64, len(params))
	}
	for k, val := range params {
		r.Params[k] = val
	}
	return nil
}

// ParseParams parses "name=value" pairs separated by commas.
func ParseParams(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("parameter override %q is not name=value", pair)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter override %q: %w", pair, err)
		}
		out[strings.TrimSpace(name)] = f
	}
	return out, nil
}

// Resolve registers the shared flags on fs, parses args and returns the
// merged configuration. Callers may register their own flags on fs first.
// getenv is usually os.Getenv.
func Resolve(fs *flag.FlagSet, args []string, getenv func(string) string) (Run, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	configPath := fs.String("config", "", "YAML run configuration merged over the built-in defaults (env "+EnvConfig+")")

	all := resolvers()
	flagVars := make(map[string]*string, len(all))
	for _, res := range all {
		flagVars[res.flagName] = fs.String(res.flagName, "", res.description+" (env "+res.envVarName+")")
	}
	if err := fs.Parse(args); err != nil {
		return Run{}, err
	}

	path := *configPath
	if path == "" {
		path = getenv(EnvConfig)
	}
	run, err := Load(path)
	if err != nil {
		return Run{}, err
	}

	for _, res := range all {
		var value string
		if v := *flagVars[res.flagName]; v != "" {
			value = v
		} else if v := getenv(res.envVarName); v != "" {
			value = v
		} else {
			continue
		}
		if err := res.setter(&run, value); err != nil {
			return Run{}, fmt.Errorf("invalid value %q for %s: %w", value, res.flagName, err)
		}
	}
	if err := run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}
