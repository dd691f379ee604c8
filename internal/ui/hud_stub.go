//go:build !ebiten

package ui

import "ecosim/internal/sims/ecosim"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*ecosim.World, int) *HUD { return nil }

// SetWorld is a no-op in the headless build.
func (h *HUD) SetWorld(*ecosim.World) {}

// Width reports zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
