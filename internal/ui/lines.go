package ui

import (
	"fmt"
	"strings"

	"smoothlife/internal/core"
)

// panelLines formats the status line and parameter snapshot for the HUD.
func panelLines(sim core.Sim, steps int, paused bool) []string {
	if sim == nil {
		return nil
	}
	state := "running"
	if paused {
		state = "paused"
	}
	lines := []string{
		strings.ToUpper(sim.Name()),
		fmt.Sprintf("step %d (%s)", steps, state),
	}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return append(lines, "", "No parameters")
	}
	for _, group := range provider.Parameters().Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-14s %s", p.Label, p.Value))
		}
	}
	return append(lines, "", "space pause  n step", "r reset  s reseed", "1 delta overlay  q quit")
}
