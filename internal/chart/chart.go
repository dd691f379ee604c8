// Package chart plots species totals over a run.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ecosim/internal/sims/ecosim"
)

// ErrTooFewPoints is returned when a series has fewer than two steps.
var ErrTooFewPoints = errors.New("chart needs at least two recorded steps")

// Default image dimensions.
const (
	DefaultWidth  = 960
	DefaultHeight = 400
)

var speciesColors = [...]drawing.Color{
	ecosim.Plant:     {R: 60, G: 170, B: 60, A: 255},
	ecosim.Herbivore: {R: 220, G: 170, B: 30, A: 255},
	ecosim.Predator:  chart.ColorRed,
}

// Series accumulates totals step by step.
type Series struct {
	Steps      []float64
	Plants     []float64
	Herbivores []float64
	Predators  []float64
}

// Add appends the totals for one step.
func (s *Series) Add(step int, c ecosim.Counts) {
	s.Steps = append(s.Steps, float64(step))
	s.Plants = append(s.Plants, float64(c.Plants))
	s.Herbivores = append(s.Herbivores, float64(c.Herbivores))
	s.Predators = append(s.Predators, float64(c.Predators))
}

// Observe records step statistics; it matches the World.Run observer.
func (s *Series) Observe(st ecosim.StepStats) { s.Add(st.Step, st.Totals) }

// Len reports the number of recorded steps.
func (s *Series) Len() int { return len(s.Steps) }

func (s *Series) values(sp ecosim.Species) []float64 {
	switch sp {
	case ecosim.Plant:
		return s.Plants
	case ecosim.Herbivore:
		return s.Herbivores
	default:
		return s.Predators
	}
}

func (s *Series) maxValue() float64 {
	m := 0.0
	for _, sp := range ecosim.AllSpecies {
		for _, v := range s.values(sp) {
			m = max(m, v)
		}
	}
	return m
}

// Render writes a PNG line chart of the series to w.
func (s *Series) Render(w io.Writer, width, height int) error {
	if s.Len() < 2 {
		return ErrTooFewPoints
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	series := make([]chart.Series, 0, len(ecosim.AllSpecies))
	for _, sp := range ecosim.AllSpecies {
		series = append(series, chart.ContinuousSeries{
			Name:    sp.String(),
			XValues: s.Steps,
			YValues: s.values(sp),
			Style:   chart.Style{StrokeColor: speciesColors[sp], StrokeWidth: 2.0},
		})
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: s.Steps[0], Max: s.Steps[len(s.Steps)-1]},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: max(s.maxValue(), 1)},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// WriteFile renders the chart into a PNG file at path.
func (s *Series) WriteFile(path string, width, height int) error {
	if s.Len() < 2 {
		return ErrTooFewPoints
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := s.Render(f, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
