package ecosim

import (
	"fmt"
	"sync"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(level, format string, v ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Debugf(format string, v ...any) { r.add("DEBUG", format, v...) }
func (r *recordingLogger) Infof(format string, v ...any)  { r.add("INFO", format, v...) }
func (r *recordingLogger) Warnf(format string, v ...any)  { r.add("WARN", format, v...) }
func (r *recordingLogger) Errorf(format string, v ...any) { r.add("ERROR", format, v...) }

func (r *recordingLogger) count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		if len(l) > len(level) && l[:len(level)+1] == level+" " {
			n++
		}
	}
	return n
}

func gridOf(cells map[Coord]Counts) *Grid {
	g := NewGrid()
	for c, n := range cells {
		g.Populate(c, n.Plants, n.Herbivores, n.Predators)
	}
	return g
}
