package ecosim

import (
	"strconv"

	"ecosim/internal/core"
)

// Parameters reports the run configuration for display.
func (w *World) Parameters() core.ParameterSnapshot {
	return ParameterSnapshot(w.cfg)
}

// ParameterSnapshot groups a config's values for display.
func ParameterSnapshot(cfg Config) core.ParameterSnapshot {
	p := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam(KeyRows, "Rows", cfg.Rows),
				intParam(KeyCols, "Columns", cfg.Cols),
				intParam(KeySteps, "Steps", cfg.Steps),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam(KeyPlantGrowth, "Plant growth", p.PlantGrowth),
				floatParam(KeyHerbBirth, "Herbivore birth", p.HerbBirth),
				floatParam(KeyPredBirth, "Predator birth", p.PredBirth),
			},
		},
		{
			Name:    "Dormant",
			Summary: "configured but not applied by the engine",
			Params: []core.Parameter{
				intParam(KeyStarvationSteps, "Starvation steps", p.StarvationSteps),
				floatParam(KeyMigrateRate, "Migration rate", p.MigrateRate),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
