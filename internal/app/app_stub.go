//go:build !ebiten

package app

import (
	"errors"

	"smoothlife/internal/core"
)

// HUDWidth is zero because headless builds draw no panel.
const HUDWidth = 0

// ErrNoGUI is returned by every Game built without the ebiten tag.
var ErrNoGUI = errors.New("app: the GUI needs a build with -tags ebiten")

// Game keeps the GUI API available to headless builds; Update always fails
// with ErrNoGUI.
type Game struct {
	sim  core.Sim
	seed int64
}

// New wraps sim without opening a window.
func New(sim core.Sim, _ int, seed int64) *Game {
	return &Game{sim: sim, seed: seed}
}

// Reset reseeds the wrapped simulation.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if g.sim != nil {
		g.sim.Reset(seed)
	}
}

// Update reports ErrNoGUI.
func (g *Game) Update() error { return ErrNoGUI }

// Draw does nothing.
func (g *Game) Draw(any) {}

// Layout reports the bare grid size.
func (g *Game) Layout(int, int) (int, int) {
	if g.sim == nil {
		return 0, 0
	}
	s := g.sim.Size()
	return s.W, s.H
}
