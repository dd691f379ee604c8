package ecosim

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteParseRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Steps = 3, 4, 60
	cfg.Params.PlantGrowth = 0.3333333333333333
	cfg.Params.StarvationSteps = 9

	g := NewGrid()
	g.Populate(Coord{Row: 2, Col: 3}, 1, 2, 3)
	g.Populate(Coord{Row: 0, Col: 0}, 100, 0, 7)

	var buf bytes.Buffer
	if err := Write(&buf, cfg, g); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	gotCfg, gotGrid, err := Parse(&buf, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if gotCfg != cfg {
		t.Fatalf("config round trip mismatch:\n got %+v\nwant %+v", gotCfg, cfg)
	}
	if !gotGrid.Equal(g) {
		t.Fatalf("grid round trip mismatch: %v", gotGrid.Coords())
	}
}

func TestWriteOrdersCellsRowMajor(t *testing.T) {
	g := NewGrid()
	g.Populate(Coord{Row: 1, Col: 0}, 1, 0, 0)
	g.Populate(Coord{Row: 0, Col: 1}, 2, 0, 0)

	var buf bytes.Buffer
	if err := Write(&buf, DefaultConfig(), g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	first := strings.Index(out, "CELL 0 1 2 0 0")
	second := strings.Index(out, "CELL 1 0 1 0 0")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("cells not written in row-major order:\n%s", out)
	}
}
