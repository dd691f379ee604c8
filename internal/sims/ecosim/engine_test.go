package ecosim

import "testing"

func stepOnce(params Params, start Counts) (Counts, StepStats) {
	cfg := DefaultConfig()
	cfg.Params = params
	g := gridOf(map[Coord]Counts{{}: start})
	stats := NewEngine(cfg, nil).Step(g, 1)
	return g.Counts(Coord{}), stats
}

func TestEngineDefaultCellScenario(t *testing.T) {
	got, stats := stepOnce(DefaultConfig().Params, Counts{Plants: 10, Herbivores: 3, Predators: 1})
	if want := (Counts{Plants: 9, Herbivores: 2, Predators: 1}); got != want {
		t.Fatalf("after one step got %v, want %v", got, want)
	}
	if stats.PlantsGrown != 2 || stats.PlantsEaten != 3 || stats.HerbivoresEaten != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.Totals != got {
		t.Fatalf("stats totals %v, want %v", stats.Totals, got)
	}
}

func TestEngineLargeCellScenario(t *testing.T) {
	got, stats := stepOnce(DefaultConfig().Params, Counts{Plants: 100, Herbivores: 10, Predators: 4})
	if want := (Counts{Plants: 115, Herbivores: 7, Predators: 4}); got != want {
		t.Fatalf("after one step got %v, want %v", got, want)
	}
	if stats.PlantsGrown != 25 || stats.PlantsEaten != 10 {
		t.Fatalf("plant stages: %+v", stats)
	}
	if stats.HerbivoresBorn != 1 || stats.HerbivoresEaten != 4 || stats.PredatorsBorn != 0 {
		t.Fatalf("animal stages: %+v", stats)
	}
}

func TestEngineStageEdgeCases(t *testing.T) {
	params := DefaultConfig().Params
	cases := []struct {
		name  string
		start Counts
		want  Counts
	}{
		{"no plants stay none", Counts{Herbivores: 0, Predators: 0}, Counts{}},
		{"single plant still grows", Counts{Plants: 1}, Counts{Plants: 2}},
		{"starving herbivores", Counts{Herbivores: 7}, Counts{Herbivores: 5}},
		{"starving predators", Counts{Predators: 5}, Counts{Predators: 3}},
		{"lone predator survives", Counts{Predators: 1}, Counts{Predators: 1}},
		{"plants without herbivores", Counts{Plants: 8, Predators: 2}, Counts{Plants: 10, Predators: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := stepOnce(params, tc.start)
			if got != tc.want {
				t.Fatalf("%v -> %v, want %v", tc.start, got, tc.want)
			}
		})
	}
}

func TestEngineNegativeRates(t *testing.T) {
	params := Params{PlantGrowth: -1, HerbBirth: -1, PredBirth: -1}
	got, stats := stepOnce(params, Counts{Plants: 4, Herbivores: 2, Predators: 1})
	if stats.PlantsGrown != 1 {
		t.Fatalf("negative growth should still add one plant, got %d", stats.PlantsGrown)
	}
	if stats.HerbivoresBorn != 0 || stats.PredatorsBorn != 0 {
		t.Fatalf("negative birth rates must not add tokens: %+v", stats)
	}
	if want := (Counts{Plants: 3, Herbivores: 1, Predators: 1}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEngineCountsStayNonNegative(t *testing.T) {
	_, g := SeedDefault(DefaultConfig())
	g.Populate(Coord{Row: 5, Col: 5}, 0, 40, 40)
	engine := NewEngine(DefaultConfig(), nil)
	for step := 1; step <= 200; step++ {
		engine.Step(g, step)
		for _, c := range g.Coords() {
			n := g.Counts(c)
			if n.Plants < 0 || n.Herbivores < 0 || n.Predators < 0 {
				t.Fatalf("step %d cell %s went negative: %v", step, c, n)
			}
		}
	}
	if g.Len() != 5 {
		t.Fatalf("engine must not add or remove cells, have %d", g.Len())
	}
}

func TestEngineDeterministic(t *testing.T) {
	_, a := SeedDefault(DefaultConfig())
	b := a.Clone()
	ea := NewEngine(DefaultConfig(), nil)
	eb := NewEngine(DefaultConfig(), nil)
	for step := 1; step <= 50; step++ {
		sa := ea.Step(a, step)
		sb := eb.Step(b, step)
		if sa != sb {
			t.Fatalf("step %d stats diverged: %+v vs %+v", step, sa, sb)
		}
	}
	if !a.Equal(b) {
		t.Fatal("identical inputs produced different grids")
	}
}

func TestEngineCellsAreIndependent(t *testing.T) {
	start := Counts{Plants: 10, Herbivores: 3, Predators: 1}
	alone, _ := stepOnce(DefaultConfig().Params, start)

	g := gridOf(map[Coord]Counts{
		{Row: 0, Col: 0}: start,
		{Row: 0, Col: 1}: {Predators: 30},
		{Row: 1, Col: 0}: {Herbivores: 50},
	})
	NewEngine(DefaultConfig(), nil).Step(g, 1)
	if got := g.Counts(Coord{}); got != alone {
		t.Fatalf("neighbours changed the result: %v vs %v", got, alone)
	}
}

func TestEngineMigrationLeavesCellUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MigrateRate = 1
	cell := NewCell(5, 5, 5)
	NewEngine(cfg, nil).migrate(cell)
	if cell.Counts() != (Counts{Plants: 5, Herbivores: 5, Predators: 5}) {
		t.Fatalf("migration changed the cell: %v", cell.Counts())
	}
}
