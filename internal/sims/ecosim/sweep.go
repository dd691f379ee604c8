package ecosim

import (
	"context"
	"math"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// CoexistenceResult captures how long all three species survived a run.
type CoexistenceResult struct {
	// StepsAlive counts steps, from the first, after which every species
	// still had a positive world total.
	StepsAlive int
	// StepsSimulated is the number of steps executed.
	StepsSimulated int
	// Final holds the world totals after the last step.
	Final Counts
}

// SweepRecord documents a single improvement found by the sweep.
type SweepRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    CoexistenceResult
	Params    Params
}

type floatSpec struct {
	name   string
	values []float64
	getter func(Params) float64
	setter func(*Params, float64)
}

// RunCoexistence steps a copy of grid under cfg and reports survival telemetry.
// The grid passed in is not modified.
func RunCoexistence(cfg Config, grid *Grid, steps int) CoexistenceResult {
	g := grid.Clone()
	engine := NewEngine(cfg, nil)
	res := CoexistenceResult{}
	alive := true
	for t := 1; t <= steps; t++ {
		stats := engine.Step(g, t)
		res.StepsSimulated = t
		res.Final = stats.Totals
		if alive && stats.Totals.Alive() {
			res.StepsAlive = t
		} else {
			alive = false
		}
	}
	if steps <= 0 {
		res.Final = g.Totals()
	}
	return res
}

// CoexistenceSweep performs a coordinate-descent search over the growth and
// birth rates, keeping candidates under which all species survive longest.
// Candidate runs for one parameter are evaluated in parallel on up to
// workers goroutines.
func CoexistenceSweep(ctx context.Context, base Config, grid *Grid, steps, passes, workers int) (Params, CoexistenceResult, []SweepRecord, error) {
	if steps <= 0 {
		steps = base.Steps
	}
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}

	currentParams := base.Params
	currentResult := RunCoexistence(base, grid, steps)
	records := []SweepRecord{{
		Pass:      0,
		Parameter: "baseline",
		Result:    currentResult,
		Params:    currentParams,
	}}

	specs := []floatSpec{
		{
			name:   KeyPlantGrowth,
			values: []float64{0.05, 0.1, 0.15, 0.25, 0.35, 0.5, 0.75},
			getter: func(p Params) float64 { return p.PlantGrowth },
			setter: func(p *Params, v float64) { p.PlantGrowth = v },
		},
		{
			name:   KeyHerbBirth,
			values: []float64{0.05, 0.1, 0.2, 0.3, 0.5, 0.75},
			getter: func(p Params) float64 { return p.HerbBirth },
			setter: func(p *Params, v float64) { p.HerbBirth = v },
		},
		{
			name:   KeyPredBirth,
			values: []float64{0.05, 0.1, 0.2, 0.34, 0.5, 1.0},
			getter: func(p Params) float64 { return p.PredBirth },
			setter: func(p *Params, v float64) { p.PredBirth = v },
		},
	}

	for pass := 1; pass <= passes; pass++ {
		improved := false
		for _, spec := range specs {
			bestParams, bestResult, changed, recs, err := evaluateFloatSpec(ctx, base, grid, currentParams, currentResult, spec, steps, workers, pass)
			if err != nil {
				return currentParams, currentResult, records, err
			}
			if changed {
				currentParams = bestParams
				currentResult = bestResult
				records = append(records, recs...)
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return currentParams, currentResult, records, nil
}

func evaluateFloatSpec(ctx context.Context, base Config, grid *Grid, params Params, baseline CoexistenceResult, spec floatSpec, steps, workers, pass int) (Params, CoexistenceResult, bool, []SweepRecord, error) {
	type candidate struct {
		result CoexistenceResult
		valid  bool
	}

	candidates := make([]candidate, len(spec.values))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for idx, value := range spec.values {
		if almostEqual(value, spec.getter(params)) {
			continue
		}
		idx, value := idx, value
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			candidateParams := params
			spec.setter(&candidateParams, value)
			cfg := base
			cfg.Params = candidateParams
			candidates[idx] = candidate{result: RunCoexistence(cfg, grid, steps), valid: true}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return params, baseline, false, nil, err
	}

	bestParams := params
	bestResult := baseline
	changed := false
	var records []SweepRecord
	for idx, value := range spec.values {
		cand := candidates[idx]
		if !cand.valid {
			continue
		}
		if betterCoexistence(cand.result, bestResult) {
			candidateParams := params
			spec.setter(&candidateParams, value)
			bestParams = candidateParams
			bestResult = cand.result
			changed = true
			records = append(records, SweepRecord{
				Pass:      pass,
				Parameter: spec.name,
				Value:     strconv.FormatFloat(value, 'f', -1, 64),
				Result:    cand.result,
				Params:    candidateParams,
			})
		}
	}

	return bestParams, bestResult, changed, records, nil
}

func betterCoexistence(a, b CoexistenceResult) bool {
	if a.StepsAlive != b.StepsAlive {
		return a.StepsAlive > b.StepsAlive
	}
	if a.Final.Predators != b.Final.Predators {
		return a.Final.Predators > b.Final.Predators
	}
	return a.Final.Herbivores > b.Final.Herbivores
}

func almostEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}
