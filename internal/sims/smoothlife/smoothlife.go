package smoothlife

import (
	"fmt"
	"math"

	"smoothlife/internal/core"
	rng "smoothlife/pkg/core"
)

// World owns the intensity grid, the pending delta buffer and the parameter
// set of one SmoothLife simulation.
type World struct {
	cfg Config

	w, h int

	params Params
	kernel Kernel
	conv   Convolver

	grid  *core.FloatGrid
	delta []float64
	inner []float64
	outer []float64

	// Scratch buffers filled by ComputeDelta and swapped in on success.
	nextDelta []float64
	nextInner []float64
	nextOuter []float64

	steps int
}

// New returns a SmoothLife world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The grid
// starts zeroed; call Reset to seed it.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kernel, err := NewKernel(cfg.Params.Ra)
	if err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:    cfg,
		w:      cfg.Width,
		h:      cfg.Height,
		params: cfg.Params,
		kernel: kernel,
		grid:   core.NewFloatGrid(cfg.Width, cfg.Height),
		delta:  make([]float64, total),
		inner:  make([]float64, total),
		outer:  make([]float64, total),

		nextDelta: make([]float64, total),
		nextInner: make([]float64, total),
		nextOuter: make([]float64, total),
	}
	switch cfg.Convolver {
	case ConvolverFFT:
		w.conv = NewFFTConvolver(w.w, w.h, kernel)
	default:
		w.cfg.Convolver = ConvolverDirect
		w.conv = NewDirectConvolver(w.w, w.h, kernel)
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "smoothlife" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Params returns the simulation constants.
func (w *World) Params() Params { return w.params }

// Kernel returns the neighbourhood classification in use.
func (w *World) Kernel() Kernel { return w.kernel }

// Convolver returns the neighbourhood-sum backend.
func (w *World) Convolver() Convolver { return w.conv }

// Cells exposes the current intensities in row-major order.
func (w *World) Cells() []float64 { return w.grid.Cells() }

// Grid exposes the current intensity grid.
func (w *World) Grid() *core.FloatGrid { return w.grid }

// Delta exposes the delta buffer computed by the last ComputeDelta.
func (w *World) Delta() []float64 { return w.delta }

// Averages exposes the inner-disk (m) and outer-ring (n) averages computed
// by the last ComputeDelta.
func (w *World) Averages() (inner, outer []float64) { return w.inner, w.outer }

// Steps reports how many steps completed since the last Reset.
func (w *World) Steps() int { return w.steps }

// Reset zeroes the grid and fills the centred (W/3)x(H/3) block with uniform
// random intensities. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	src := rng.NewRNG(effective)
	w.grid.Clear()
	for _, buf := range [][]float64{w.delta, w.inner, w.outer, w.nextDelta, w.nextInner, w.nextOuter} {
		clear(buf)
	}
	w.steps = 0

	bw := w.w / 3
	bh := w.h / 3
	cells := w.grid.Cells()
	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			x := dx + w.w/2 - bw/2
			y := dy + w.h/2 - bh/2
			cells[w.grid.Index(x, y)] = src.Float64()
		}
	}
}

// Step runs one convolution and integration cycle in place. When the delta
// contains a non-finite value the grid is left untouched.
func (w *World) Step() error {
	if err := w.ComputeDelta(); err != nil {
		return err
	}
	w.ApplyDelta()
	w.steps++
	return nil
}

// ComputeDelta fills the delta buffer from the current grid without
// modifying it. On error Delta and Averages keep the results of the last
// successful call.
func (w *World) ComputeDelta() error {
	if err := w.kernel.Validate(); err != nil {
		return err
	}
	w.conv.Sums(w.grid.Cells(), w.nextInner, w.nextOuter)

	innerCount := float64(w.kernel.M())
	outerCount := float64(w.kernel.N())
	for i := range w.nextDelta {
		m := w.nextInner[i] / innerCount
		n := w.nextOuter[i] / outerCount
		w.nextInner[i] = m
		w.nextOuter[i] = n
		d := 2*w.params.Transition(n, m) - 1
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w at (%d,%d): n=%g m=%g", ErrNonFinite, i%w.w, i/w.w, n, m)
		}
		w.nextDelta[i] = d
	}
	w.delta, w.nextDelta = w.nextDelta, w.delta
	w.inner, w.nextInner = w.nextInner, w.inner
	w.outer, w.nextOuter = w.nextOuter, w.outer
	return nil
}

// ApplyDelta advances the grid by one explicit Euler step and clamps every
// cell to [0, 1].
func (w *World) ApplyDelta() {
	dt := w.params.DT
	cells := w.grid.Cells()
	for i, d := range w.delta {
		v := cells[i] + dt*d
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		cells[i] = v
	}
}

func init() {
	core.Register("smoothlife", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
