package ecosim

import "math"

// StepStats summarises what one step did across all cells.
type StepStats struct {
	Step int `json:"step"`

	PlantsGrown       int `json:"plantsGrown"`
	PlantsEaten       int `json:"plantsEaten"`
	HerbivoresStarved int `json:"herbivoresStarved"`
	HerbivoresBorn    int `json:"herbivoresBorn"`
	HerbivoresEaten   int `json:"herbivoresEaten"`
	PredatorsStarved  int `json:"predatorsStarved"`
	PredatorsBorn     int `json:"predatorsBorn"`

	Totals Counts `json:"totals"`
}

func (s *StepStats) add(o StepStats) {
	s.PlantsGrown += o.PlantsGrown
	s.PlantsEaten += o.PlantsEaten
	s.HerbivoresStarved += o.HerbivoresStarved
	s.HerbivoresBorn += o.HerbivoresBorn
	s.HerbivoresEaten += o.HerbivoresEaten
	s.PredatorsStarved += o.PredatorsStarved
	s.PredatorsBorn += o.PredatorsBorn
}

// Engine applies the per-cell transition pipeline.
type Engine struct {
	params Params
	log    Logger
}

// NewEngine returns an engine bound to the rates in cfg.
func NewEngine(cfg Config, log Logger) *Engine {
	return &Engine{params: cfg.Params, log: orNoOp(log)}
}

// Step mutates every present cell of g in place for step index t. Cells
// never interact, so the order they are visited in does not matter. No cell
// is created or removed.
func (e *Engine) Step(g *Grid, t int) StepStats {
	stats := StepStats{Step: t}
	for _, c := range g.Coords() {
		cell := g.cells[c]
		stats.add(e.stepCell(cell))
		stats.Totals = stats.Totals.Add(cell.Counts())
	}
	e.log.Debugf("step %d: totals %s grown=%d eaten=%d hstarved=%d hborn=%d hunted=%d rstarved=%d rborn=%d",
		t, stats.Totals, stats.PlantsGrown, stats.PlantsEaten, stats.HerbivoresStarved,
		stats.HerbivoresBorn, stats.HerbivoresEaten, stats.PredatorsStarved, stats.PredatorsBorn)
	return stats
}

func (e *Engine) stepCell(cell *Cell) StepStats {
	var st StepStats
	plants := cell.Population(Plant)
	herbs := cell.Population(Herbivore)
	preds := cell.Population(Predator)

	// 1. plant growth, at least one new plant whenever any exist
	if p := plants.Len(); p > 0 {
		add := floorMul(e.params.PlantGrowth, p)
		if add < 1 {
			add = 1
		}
		plants.Append(add)
		st.PlantsGrown = add
	}

	// 2. herbivores eat the oldest plants
	herbBefore := herbs.Len()
	fed := min(herbBefore, plants.Len())
	st.PlantsEaten = plants.RemoveFront(fed)

	// 3. every third unfed herbivore starves; births follow feeding
	unfed := herbBefore - fed
	st.HerbivoresStarved = herbs.RemoveBack(unfed / 3)
	if born := floorMul(e.params.HerbBirth, fed); born > 0 {
		herbs.Append(born)
		st.HerbivoresBorn = born
	}

	// 4. predators hunt the oldest herbivores
	predBefore := preds.Len()
	eaten := min(predBefore, herbs.Len())
	st.HerbivoresEaten = herbs.RemoveFront(eaten)

	// 5. every second unfed predator starves
	unfedPred := predBefore - eaten
	st.PredatorsStarved = preds.RemoveBack(unfedPred / 2)

	// 6. predator births follow successful hunts
	if born := floorMul(e.params.PredBirth, eaten); born > 0 {
		preds.Append(born)
		st.PredatorsBorn = born
	}

	// 7. migration
	e.migrate(cell)

	return st
}

// migrate is the cross-cell movement stage. MigrateRate is configured but
// movement is not applied, so the stage leaves the cell untouched.
func (e *Engine) migrate(*Cell) {}

func floorMul(rate float64, n int) int {
	return int(math.Floor(rate * float64(n)))
}
