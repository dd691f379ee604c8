package app

import (
	"ecosim/internal/core"
	"ecosim/internal/sims/ecosim"
)

// Options configures the GUI viewer.
type Options struct {
	Config ecosim.Config
	// Grid is the starting state. The viewer clones it so Reset can return here.
	Grid   *ecosim.Grid
	Logger ecosim.Logger

	Scale          int
	PanelWidth     int
	StepsPerSecond int
	StartPaused    bool
}

// Defaults for zero Options fields.
const (
	DefaultScale          = 24
	DefaultPanelWidth     = 300
	DefaultStepsPerSecond = 4
	minScale              = 2
	maxWindowCells        = 1600
)

func (o Options) normalized() Options {
	if o.Grid == nil {
		o.Grid = ecosim.NewGrid()
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
		if long := max(o.Config.Rows, o.Config.Cols); long > 0 && long*o.Scale > maxWindowCells {
			o.Scale = max(maxWindowCells/long, minScale)
		}
	}
	if o.PanelWidth < 0 {
		o.PanelWidth = 0
	} else if o.PanelWidth == 0 {
		o.PanelWidth = DefaultPanelWidth
	}
	if o.StepsPerSecond <= 0 {
		o.StepsPerSecond = DefaultStepsPerSecond
	}
	return o
}

func (o Options) newWorld() *ecosim.World {
	return ecosim.NewWorld(o.Config, o.Grid.Clone(), o.Logger)
}

// WindowSize reports the window dimensions for a grid of the given size.
func (o Options) WindowSize(s core.Size) (int, int) {
	o = o.normalized()
	return s.W*o.Scale + o.PanelWidth, max(s.H*o.Scale, minWindowHeight)
}

const minWindowHeight = 320
