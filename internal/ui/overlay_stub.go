//go:build !ebiten

package ui

import "ecosim/internal/sims/ecosim"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*ecosim.World, int) *Overlay { return &Overlay{} }

// SetWorld is a no-op in headless builds.
func (o *Overlay) SetWorld(*ecosim.World) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
