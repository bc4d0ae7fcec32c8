//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"smoothlife/internal/app"
	"smoothlife/internal/core"
	_ "smoothlife/internal/sims/smoothlife"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := cfg.ResolveSeed(time.Now); err != nil {
		slog.Error("resolving seed", "error", err)
		os.Exit(2)
	}
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		slog.Error("unknown sim", "sim", cfg.Sim)
		os.Exit(2)
	}
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		slog.Error("creating sim", "sim", cfg.Sim, "error", err)
		os.Exit(2)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 30
	}
	ebiten.SetWindowTitle("smoothlife - " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
