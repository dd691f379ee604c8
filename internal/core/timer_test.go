package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := NewFixedStepClock(10, func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}

	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval elapsed, should not step")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval elapsed, expected step")
	}
}

func TestFixedStepInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got interval %v", got)
	}
	fs.SetTPS(4)
	if got := fs.Interval(); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms interval, got %v", got)
	}
}
