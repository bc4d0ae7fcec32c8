package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestModWrapsNegatives(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{5, 3, 2},
		{-1, 3, 2},
		{-4, 3, 2},
		{0, 7, 0},
		{7, 7, 0},
	}
	for _, tc := range cases {
		if got := Mod(tc.a, tc.b); got != tc.want {
			t.Fatalf("Mod(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFloatGridWrapsAccess(t *testing.T) {
	g := NewFloatGrid(4, 3)
	g.Set(-1, -1, 0.5)
	if got := g.At(3, 2); got != 0.5 {
		t.Fatalf("expected wrapped write at (3,2), got %v", got)
	}
	if got := g.Cells()[g.Index(3, 2)]; got != 0.5 {
		t.Fatalf("Index mismatch, got %v", got)
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %v", i, v)
		}
	}
}

func TestNewFloatGridClampsDimensions(t *testing.T) {
	g := NewFloatGrid(0, -2)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.clock = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatalf("first tick should be due immediately")
	}
	if fs.ShouldStep() {
		t.Fatalf("second tick should wait")
	}
	if got := fs.Wait(); got != 100*time.Millisecond {
		t.Fatalf("expected 100ms wait, got %v", got)
	}
	now = now.Add(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatalf("tick due too early")
	}
	if got := fs.Wait(); got != 40*time.Millisecond {
		t.Fatalf("expected 40ms wait, got %v", got)
	}
	now = now.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatalf("tick should be due after a full interval")
	}
}

func TestFixedStepNextSleepsUntilDue(t *testing.T) {
	now := time.Unix(0, 0)
	var slept time.Duration
	fs := NewFixedStep(10)
	fs.clock = func() time.Time { return now }
	fs.sleep = func(_ context.Context, d time.Duration) error {
		slept += d
		now = now.Add(d)
		return nil
	}

	for i := 0; i < 3; i++ {
		if err := fs.Next(context.Background()); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if slept != 200*time.Millisecond {
		t.Fatalf("expected two 100ms waits, slept %v", slept)
	}
}

func TestFixedStepNextHonoursCancellation(t *testing.T) {
	fs := NewFixedStep(1)
	ctx, cancel := context.WithCancel(context.Background())
	if err := fs.Next(ctx); err != nil {
		t.Fatalf("first step should not block: %v", err)
	}
	cancel()
	if err := fs.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("expected y=2, got %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatalf("unexpected z")
	}
	flat := snap.Flatten()
	if len(flat) != 2 || flat["x"] != "1" {
		t.Fatalf("unexpected flatten %v", flat)
	}
}
