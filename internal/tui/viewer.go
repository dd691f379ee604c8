// Package tui is an interactive terminal viewer for an ecosim world.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"ecosim/internal/report"
	"ecosim/internal/sims/ecosim"
)

// Mode selects how cells are drawn.
type Mode int

const (
	// ModeCounts prints each cell's P/H/R counts.
	ModeCounts Mode = iota
	// ModeHeat draws one colored block per cell for the selected layer.
	ModeHeat
)

const (
	headerRows = 3
	countWidth = 12
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText   = tcell.StyleDefault
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Viewer draws a world onto a tcell screen and steps it on a ticker.
type Viewer struct {
	screen tcell.Screen
	world  *ecosim.World

	mode   Mode
	paused bool
	row    int
	col    int
}

// NewViewer returns a viewer over world. The screen must already be initialised.
func NewViewer(screen tcell.Screen, world *ecosim.World) *Viewer {
	return &Viewer{screen: screen, world: world}
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// SetPaused suspends or resumes automatic stepping.
func (v *Viewer) SetPaused(p bool) { v.paused = p }

// Mode reports the current drawing mode.
func (v *Viewer) Mode() Mode { return v.mode }

// Offset reports the grid coordinate drawn at the top-left corner.
func (v *Viewer) Offset() (row, col int) { return v.row, v.col }

// Tick advances the world one step unless paused or finished.
func (v *Viewer) Tick() {
	if v.paused || v.world.Done() {
		return
	}
	v.world.Step()
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.pan(-1, 0)
		case tcell.KeyDown:
			v.pan(1, 0)
		case tcell.KeyLeft:
			v.pan(0, -1)
		case tcell.KeyRight:
			v.pan(0, 1)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.pan(0, 0)
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n', '.':
		if !v.world.Done() {
			v.world.Step()
		}
	case 'm':
		if v.mode == ModeCounts {
			v.mode = ModeHeat
		} else {
			v.mode = ModeCounts
		}
	case 'p':
		v.world.SetLayer(ecosim.Plant)
	case 'h':
		v.world.SetLayer(ecosim.Herbivore)
	case 'r':
		v.world.SetLayer(ecosim.Predator)
	case 'g':
		v.row, v.col = 0, 0
	}
	return true
}

// pan moves the view, keeping at least one grid cell on screen.
func (v *Viewer) pan(dr, dc int) {
	rows, cols := v.world.Dimensions()
	v.row = clamp(v.row+dr, 0, max(rows-1, 0))
	v.col = clamp(v.col+dc, 0, max(cols-1, 0))
}

// Window reports the part of the grid that fits on screen.
func (v *Viewer) Window() report.Window {
	w, h := v.screen.Size()
	cellW := 1
	if v.mode == ModeCounts {
		cellW = countWidth
	}
	rows, cols := v.world.Dimensions()
	win := report.Window{
		Row:  v.row,
		Col:  v.col,
		Rows: max(h-headerRows, 0),
		Cols: max(w/cellW, 0),
	}
	if win.Rows == 0 || win.Cols == 0 {
		return report.Window{Row: v.row, Col: v.col}
	}
	return win.Clip(rows, cols)
}

// Draw renders the status lines and the visible part of the grid.
func (v *Viewer) Draw() {
	v.screen.Clear()
	rows, cols := v.world.Dimensions()
	cfg := v.world.Config()

	state := "running"
	switch {
	case v.world.Done():
		state = "done"
	case v.paused:
		state = "paused"
	}
	v.text(0, 0, styleTitle, fmt.Sprintf("ecosim %dx%d  step %d/%d  [%s]  layer %s",
		rows, cols, v.world.StepIndex(), cfg.Steps, state, v.world.Layer()))
	v.text(0, 1, styleStatus, report.TotalsLine(v.world.Totals()))

	win := v.Window()
	for r := 0; r < win.Rows; r++ {
		for c := 0; c < win.Cols; c++ {
			coord := ecosim.Coord{Row: win.Row + r, Col: win.Col + c}
			v.drawCell(headerRows+r, c, coord)
		}
	}
	v.screen.Show()
}

func (v *Viewer) drawCell(y, c int, coord ecosim.Coord) {
	n := v.world.Counts(coord)
	if v.mode == ModeCounts {
		style := styleText
		if n == (ecosim.Counts{}) {
			style = styleEmpty
		}
		v.text(c*countWidth, y, style, fmt.Sprintf("%d/%d/%d", n.Plants, n.Herbivores, n.Predators))
		return
	}
	level := ecosim.HeatLevel(n.Of(v.world.Layer()))
	if level == 0 {
		v.screen.SetContent(c, y, '·', nil, styleEmpty)
		return
	}
	rgba := v.world.Palette()[level]
	color := tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
	v.screen.SetContent(c, y, '█', nil, tcell.StyleDefault.Foreground(color))
}

func (v *Viewer) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run polls input and steps the world every interval until the user quits
// or ctx ends.
func (v *Viewer) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
