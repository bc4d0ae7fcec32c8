package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"smoothlife/internal/core"
	"smoothlife/internal/render"
	"smoothlife/internal/sims/smoothlife"
)

type countingSim struct {
	steps  int
	failAt int
	cells  []float64
}

var errBoom = errors.New("boom")

func (s *countingSim) Name() string     { return "counting" }
func (s *countingSim) Size() core.Size  { return core.Size{W: 2, H: 1} }
func (s *countingSim) Reset(int64)      { s.steps = 0 }
func (s *countingSim) Cells() []float64 { return s.cells }
func (s *countingSim) Step() error {
	if s.failAt > 0 && s.steps+1 == s.failAt {
		return errBoom
	}
	s.steps++
	return nil
}

type countingSink struct{ frames int }

func (k *countingSink) Render(core.Size, []float64) error {
	k.frames++
	return nil
}

func newCountingSim() *countingSim {
	return &countingSim{cells: []float64{0, 1}}
}

func TestRunStopsAtMaxSteps(t *testing.T) {
	sim := newCountingSim()
	sink := &countingSink{}
	steps, err := Run(context.Background(), sim, sink, RunOptions{MaxSteps: 5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 5 || sim.steps != 5 {
		t.Fatalf("expected 5 steps, got %d (sim %d)", steps, sim.steps)
	}
	if sink.frames != 6 {
		t.Fatalf("expected initial frame plus 5, got %d", sink.frames)
	}
}

func TestRunStopsAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sim := newCountingSim()
	sink := &countingSink{}
	var seen []int
	observer := func(step int) error {
		seen = append(seen, step)
		if step == 3 {
			cancel()
		}
		return nil
	}
	steps, err := Run(ctx, sim, sink, RunOptions{Observers: []Observer{observer}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 steps before cancellation, got %d", steps)
	}
	if len(seen) != 4 || seen[0] != 0 || seen[3] != 3 {
		t.Fatalf("unexpected observer calls %v", seen)
	}
}

func TestRunCancelledBeforeStartRendersOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim := newCountingSim()
	sink := &countingSink{}
	steps, err := Run(ctx, sim, sink, RunOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 0 || sink.frames != 1 {
		t.Fatalf("expected only the initial frame, got steps=%d frames=%d", steps, sink.frames)
	}
}

func TestRunPropagatesStepError(t *testing.T) {
	sim := newCountingSim()
	sim.failAt = 2
	steps, err := Run(context.Background(), sim, &countingSink{}, RunOptions{MaxSteps: 10})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected step error, got %v", err)
	}
	if steps != 1 {
		t.Fatalf("expected 1 completed step, got %d", steps)
	}
}

func TestRunPropagatesObserverError(t *testing.T) {
	observer := func(step int) error {
		if step == 2 {
			return errBoom
		}
		return nil
	}
	steps, err := Run(context.Background(), newCountingSim(), &countingSink{}, RunOptions{MaxSteps: 10, Observers: []Observer{observer}})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected observer error, got %v", err)
	}
	if steps != 2 {
		t.Fatalf("expected 2 completed steps, got %d", steps)
	}
}

func TestRunPacedCompletes(t *testing.T) {
	sim := newCountingSim()
	steps, err := Run(context.Background(), sim, &countingSink{}, RunOptions{MaxSteps: 3, TPS: 1000})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 steps, got %d", steps)
	}
}

func TestRunWorldWithTextRenderer(t *testing.T) {
	cfg := smoothlife.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	cfg.Params.Ra = 4
	world, err := smoothlife.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	world.Reset(0)

	var buf bytes.Buffer
	steps, err := Run(context.Background(), world, render.NewTextRenderer(&buf, false), RunOptions{MaxSteps: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 2 || world.Steps() != 2 {
		t.Fatalf("expected 2 steps, got %d (world %d)", steps, world.Steps())
	}
	frame := len("\x1B[1J") + len(render.AppendFrame(nil, world.Size(), world.Cells()))
	if buf.Len() != 3*frame {
		t.Fatalf("expected 3 frames of %d bytes, got %d bytes", frame, buf.Len())
	}
}

func TestConfigSimOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Seed = 40, 30, 9
	cfg.FFT = true
	if err := cfg.Sets.Set("ra=6"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cfg.Sets.Set("w=50"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	opts := cfg.SimOptions()
	want := map[string]string{"w": "50", "h": "30", "seed": "9", "convolver": "fft", "ra": "6"}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("option %s: expected %q, got %q", k, v, opts[k])
		}
	}
	if err := cfg.Sets.Set("novalue"); err == nil {
		t.Fatalf("expected error for value without '='")
	}
}

func TestConfigValidateMode(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg.Mode = "vga"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown mode to fail")
	}
}
