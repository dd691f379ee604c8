package report

import (
	"io"

	"ecosim/internal/sims/ecosim"
)

// Printer writes the console transcript of a run: header and initial state,
// a snapshot every few steps, then the final state.
type Printer struct {
	w     io.Writer
	win   Window
	every int
}

// NewPrinter returns a printer that shows win every `every` steps. A
// non-positive every prints only the initial and final states.
func NewPrinter(w io.Writer, win Window, every int) *Printer {
	return &Printer{w: w, win: win, every: every}
}

// Start prints the run header and the initial grid.
func (p *Printer) Start(cfg ecosim.Config, v ecosim.View) error {
	if err := Header(p.w, cfg); err != nil {
		return err
	}
	return p.snapshot(StepTitle(0), v)
}

// Step prints a snapshot when step t falls on the interval.
func (p *Printer) Step(t int, v ecosim.View) error {
	if p.every <= 0 || t%p.every != 0 {
		return nil
	}
	return p.snapshot(StepTitle(t), v)
}

// Final prints the closing state.
func (p *Printer) Final(v ecosim.View) error {
	return p.snapshot("Final state:", v)
}

func (p *Printer) snapshot(title string, v ecosim.View) error {
	if err := Table(p.w, title, v, p.win); err != nil {
		return err
	}
	return Totals(p.w, v)
}
