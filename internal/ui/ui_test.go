package ui

import (
	"math"
	"strings"
	"testing"

	"smoothlife/internal/sims/smoothlife"
)

func TestPanelLinesListsParameters(t *testing.T) {
	world, err := smoothlife.New(32, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lines := panelLines(world, 7, true)
	if len(lines) < 2 || lines[0] != "SMOOTHLIFE" {
		t.Fatalf("unexpected header %v", lines)
	}
	if lines[1] != "step 7 (paused)" {
		t.Fatalf("unexpected status line %q", lines[1])
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Kernel", "Transition", "Birth low", "Time step"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("panel missing %q:\n%s", want, joined)
		}
	}
}

func TestPanelLinesNilSim(t *testing.T) {
	if lines := panelLines(nil, 0, false); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestFillDeltaMaskTints(t *testing.T) {
	buf := make([]byte, 4*4)
	for i := range buf {
		buf[i] = 9
	}
	fillDeltaMask(buf, []float64{1, -1, 0, math.NaN()})
	if buf[0] != 0 || buf[1] != 140 || buf[3] != 140 {
		t.Fatalf("growth should tint green, got %v", buf[0:4])
	}
	if buf[4] != 140 || buf[5] != 0 || buf[7] != 140 {
		t.Fatalf("decay should tint red, got %v", buf[4:8])
	}
	for i := 8; i < 16; i++ {
		if buf[i] != 0 {
			t.Fatalf("zero and NaN should be transparent, got %v", buf[8:16])
		}
	}
}
