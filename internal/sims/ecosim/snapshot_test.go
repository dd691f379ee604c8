package ecosim

import (
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	w := newDefaultWorld(t)
	w.Run(3, nil)

	data, err := EncodeSnapshotJSON(w.Snapshot())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	snap, err := DecodeSnapshotJSON(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if snap.Step != 3 || snap.Totals != w.Totals() {
		t.Fatalf("snapshot header step=%d totals=%v", snap.Step, snap.Totals)
	}
	cfg, g := snap.Restore()
	if cfg != w.Config() {
		t.Fatalf("restored config %+v, want %+v", cfg, w.Config())
	}
	if !g.Equal(w.grid) {
		t.Fatal("restored grid differs")
	}
	if len(snap.Cells) != 4 || snap.Cells[0].Row != 0 || snap.Cells[0].Col != 0 {
		t.Fatalf("cells should be row-major, got %+v", snap.Cells)
	}
}

func TestSnapshotJSONShape(t *testing.T) {
	g := NewGrid()
	g.Populate(Coord{Row: 1, Col: 2}, 3, 4, 5)
	data, err := EncodeSnapshotJSON(TakeSnapshot(DefaultConfig(), g, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `{"row":1,"col":2,"plants":3,"herbivores":4,"predators":5}`) {
		t.Fatalf("unexpected cell encoding: %s", data)
	}
}

func TestDecodeSnapshotRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative coordinate": `{"cells":[{"row":-1,"col":0}]}`,
		"duplicate cell":      `{"cells":[{"row":0,"col":0},{"row":0,"col":0}]}`,
		"negative count":      `{"cells":[{"row":0,"col":0,"plants":-2}]}`,
		"malformed":           `{"cells":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeSnapshotJSON([]byte(body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
