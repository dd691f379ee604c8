package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ecosim/internal/sims/ecosim"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func runSeries(steps int) *Series {
	cfg, g := ecosim.SeedDefault(ecosim.DefaultConfig())
	w := ecosim.NewWorld(cfg, g, nil)
	s := &Series{}
	s.Add(0, w.Totals())
	w.Run(steps, s.Observe)
	return s
}

func TestRenderPNG(t *testing.T) {
	s := runSeries(10)
	if s.Len() != 11 || s.Steps[10] != 10 {
		t.Fatalf("unexpected series length %d", s.Len())
	}
	var buf bytes.Buffer
	if err := s.Render(&buf, 320, 200); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Fatal("output is not a PNG")
	}
}

func TestRenderFlatSeries(t *testing.T) {
	s := &Series{}
	s.Add(1, ecosim.Counts{})
	s.Add(2, ecosim.Counts{})
	var buf bytes.Buffer
	if err := s.Render(&buf, 0, 0); err != nil {
		t.Fatalf("an all-zero series should still render: %v", err)
	}
}

func TestRenderTooFewPoints(t *testing.T) {
	s := &Series{}
	s.Add(0, ecosim.Counts{Plants: 1})
	if err := s.Render(&bytes.Buffer{}, 0, 0); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "totals.png")
	if err := runSeries(5).WriteFile(path, 0, 0); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Fatal("file is not a PNG")
	}
}
