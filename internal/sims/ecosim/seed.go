package ecosim

// SeedDefault returns base with the fixed 2x2 fallback world applied: rows,
// cols and steps are reset, other parameters are kept.
func SeedDefault(base Config) (Config, *Grid) {
	cfg := base
	cfg.Rows, cfg.Cols, cfg.Steps = 2, 2, 25

	g := NewGrid()
	g.Populate(Coord{Row: 0, Col: 0}, 10, 3, 1)
	g.Populate(Coord{Row: 0, Col: 1}, 6, 2, 0)
	g.Populate(Coord{Row: 1, Col: 0}, 8, 1, 1)
	g.Populate(Coord{Row: 1, Col: 1}, 12, 4, 1)
	return cfg, g
}
