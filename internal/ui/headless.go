//go:build !ebiten

package ui

import "smoothlife/internal/core"

// HUD and Overlay have no drawing surface without ebiten. NewHUD returns nil
// and every method is a nil-safe no-op so callers need no build tags.
type (
	HUD     struct{}
	Overlay struct{}
)

func NewHUD(core.Sim, int) *HUD { return nil }
func (h *HUD) Update(int, bool) {}
func (h *HUD) Draw(any, int, int) {}
func NewOverlay(core.Sim, int) *Overlay { return nil }
func (o *Overlay) Update() {}
func (o *Overlay) Draw(any) {}
