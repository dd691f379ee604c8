package ecosim

import (
	"math"
	"strconv"
)

// Params holds the rates shared by every cell.
type Params struct {
	PlantGrowth float64 `json:"plantGrowth"`
	HerbBirth   float64 `json:"herbBirth"`
	PredBirth   float64 `json:"predBirth"`

	// StarvationSteps is carried through load/save and display but no engine
	// stage consults it.
	StarvationSteps int `json:"starvationSteps"`
	// MigrateRate is carried like StarvationSteps; the migration stage is a no-op.
	MigrateRate float64 `json:"migrateRate"`
}

// Config is the read-only configuration of one run. It is passed by value so
// every run owns its own copy.
type Config struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Steps int `json:"steps"`

	Params Params `json:"params"`
}

// Parameter names shared by the world file PARAM directive and FromMap.
const (
	KeyRows            = "rows"
	KeyCols            = "cols"
	KeySteps           = "steps"
	KeyPlantGrowth     = "plantGrowth"
	KeyHerbBirth       = "herbBirth"
	KeyPredBirth       = "predBirth"
	KeyStarvationSteps = "starvationSteps"
	KeyMigrateRate     = "migrateRate"
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Steps: 25,
		Params: Params{
			PlantGrowth:     0.25,
			HerbBirth:       0.10,
			PredBirth:       0.05,
			StarvationSteps: 3,
			MigrateRate:     0.02,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().With(cfg)
}

// With returns a copy of c with the recognised keys in overrides applied.
// Values that do not parse are ignored.
func (c Config) With(overrides map[string]string) Config {
	if overrides == nil {
		return c
	}
	for key, field := range map[string]*int{KeyRows: &c.Rows, KeyCols: &c.Cols, KeySteps: &c.Steps} {
		v, ok := overrides[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		if n, ok := wholeCount(parsed); ok {
			*field = n
		}
	}
	for _, key := range []string{KeyPlantGrowth, KeyHerbBirth, KeyPredBirth, KeyStarvationSteps, KeyMigrateRate} {
		v, ok := overrides[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		c.setParam(key, parsed)
	}
	return c
}

// setParam applies a PARAM value by name. Integer-valued parameters are
// truncated. It reports whether the name was recognised.
func (c *Config) setParam(name string, value float64) bool {
	switch name {
	case KeyPlantGrowth:
		c.Params.PlantGrowth = value
	case KeyHerbBirth:
		c.Params.HerbBirth = value
	case KeyPredBirth:
		c.Params.PredBirth = value
	case KeySteps:
		c.Steps = int(value)
	case KeyStarvationSteps:
		c.Params.StarvationSteps = int(value)
	case KeyMigrateRate:
		c.Params.MigrateRate = value
	default:
		return false
	}
	return true
}

// wholeCount truncates v toward zero, rejecting negatives, NaN and values
// beyond the int range.
func wholeCount(v float64) (int, bool) {
	if !(v >= 0) || v >= math.MaxInt64 {
		return 0, false
	}
	return int(v), true
}
