package ecosim

import "ecosim/internal/core"

// View is the read-only surface offered to display and reporting layers.
type View interface {
	Dimensions() (rows, cols int)
	Config() Config
	Counts(c Coord) Counts
	Coords() []Coord
}

// World owns one run: its configuration, grid, engine and step counter.
type World struct {
	cfg    Config
	grid   *Grid
	engine *Engine
	log    Logger

	step  int
	layer Species
	// heat is allocated on first use; headless runs never touch it.
	heat  *core.ByteGrid
	stale bool
}

// NewWorld wraps grid for stepping under cfg. The world takes ownership of
// grid; callers must not mutate it afterwards.
func NewWorld(cfg Config, grid *Grid, log Logger) *World {
	if grid == nil {
		grid = NewGrid()
	}
	log = orNoOp(log)
	w := &World{
		cfg:    cfg,
		grid:   grid,
		engine: NewEngine(cfg, log),
		log:    log,
		layer:  Plant,
		stale:  true,
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ecosim" }

// Size reports the declared grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Cols, H: w.cfg.Rows} }

// Dimensions reports rows and columns.
func (w *World) Dimensions() (int, int) { return w.cfg.Rows, w.cfg.Cols }

// Config returns the run configuration.
func (w *World) Config() Config { return w.cfg }

// StepIndex reports how many steps have completed.
func (w *World) StepIndex() int { return w.step }

// Done reports whether the configured step count has been reached.
func (w *World) Done() bool { return w.step >= w.cfg.Steps }

// Counts reports the populations at c.
func (w *World) Counts(c Coord) Counts { return w.grid.Counts(c) }

// Coords lists populated coordinates in row-major order.
func (w *World) Coords() []Coord { return w.grid.Coords() }

// Totals sums populations over all cells.
func (w *World) Totals() Counts { return w.grid.Totals() }

// Step advances the world by one step and returns its statistics.
func (w *World) Step() StepStats {
	w.step++
	stats := w.engine.Step(w.grid, w.step)
	w.stale = true
	return stats
}

// Advance steps the world, discarding statistics.
func (w *World) Advance() { w.Step() }

// Run advances n steps, handing each step's statistics to observe when set.
func (w *World) Run(n int, observe func(StepStats)) {
	for i := 0; i < n; i++ {
		stats := w.Step()
		if observe != nil {
			observe(stats)
		}
	}
}

// Layer reports the species shown in the display buffer.
func (w *World) Layer() Species { return w.layer }

// SetLayer picks the species shown in the display buffer.
func (w *World) SetLayer(s Species) {
	if s >= speciesCount {
		return
	}
	w.layer = s
	w.stale = true
}

// Cells exposes the display buffer: one palette index per declared cell.
// Grids larger than core.MaxByteGridCells have an empty display.
func (w *World) Cells() []uint8 { return w.display().Cells() }
