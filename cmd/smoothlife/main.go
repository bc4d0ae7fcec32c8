package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"smoothlife/internal/app"
	"smoothlife/internal/core"
	"smoothlife/internal/render"
	_ "smoothlife/internal/sims/smoothlife"
	"smoothlife/internal/telemetry"
)

type deltaProvider interface {
	Delta() []float64
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run builds the simulation and its observers and drives it until ctx is
// cancelled or the step limit is reached. Text and ANSI frames go to out.
func run(ctx context.Context, cfg *app.Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ResolveSeed(time.Now); err != nil {
		return err
	}

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		return fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(simNames(), ", "))
	}
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	opts := app.RunOptions{MaxSteps: cfg.Steps, TPS: cfg.TPS}

	om, err := telemetry.NewOutputManager(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := om.Close(); err != nil {
			slog.Warn("closing output", "error", err)
		}
	}()
	if provider, ok := sim.(core.ParameterProvider); ok {
		snapshot := provider.Parameters()
		slog.Debug("parameters", "values", snapshot.Flatten())
		if err := om.WriteParams(snapshot); err != nil {
			return err
		}
	}
	if om != nil {
		opts.Observers = append(opts.Observers, func(step int) error {
			var delta []float64
			if dp, ok := sim.(deltaProvider); ok {
				delta = dp.Delta()
			}
			return om.WriteStep(telemetry.Compute(step, sim.Cells(), delta))
		})
		slog.Info("writing telemetry", "dir", om.Dir())
	}

	if cfg.Record != "" {
		rec, err := telemetry.NewRecorder(cfg.Record, sim.Size(), cfg.Scale, cfg.TPS)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				slog.Warn("closing recording", "error", err)
				return
			}
			slog.Info("recording saved", "path", cfg.Record, "frames", rec.Frames())
		}()
		opts.Observers = append(opts.Observers, func(int) error {
			return rec.AddFrame(sim.Cells())
		})
	}

	var mass *telemetry.MassSeries
	if cfg.Plot != "" {
		mass = &telemetry.MassSeries{}
		opts.Observers = append(opts.Observers, func(step int) error {
			mass.Add(step, telemetry.Compute(step, sim.Cells(), nil).Mean)
			return nil
		})
	}

	slog.Info("starting simulation",
		"sim", sim.Name(),
		"w", sim.Size().W,
		"h", sim.Size().H,
		"seed", cfg.Seed,
		"mode", cfg.Mode,
	)

	sink, cleanup, err := newSink(cfg, out)
	if err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if sr, ok := sink.(*render.ScreenRenderer); ok {
		sr.Listen(cancel)
	}

	start := time.Now()
	steps, runErr := app.Run(runCtx, sim, sink, opts)
	cleanup()
	if runCtx.Err() != nil {
		slog.Info("simulation cancelled", "steps", steps)
	}
	slog.Info("simulation stopped", "steps", steps, "elapsed", time.Since(start).String())
	if runErr != nil {
		return runErr
	}

	if mass != nil {
		if err := telemetry.SaveMassPlot(cfg.Plot, mass); err != nil {
			return err
		}
		slog.Info("plot saved", "path", cfg.Plot)
	}
	return nil
}

// newSink builds the renderer for the configured mode. cleanup restores the
// terminal. While the tcell screen owns the terminal the default logger is
// silenced and cleanup puts it back.
func newSink(cfg *app.Config, out io.Writer) (render.Renderer, func(), error) {
	switch cfg.Mode {
	case app.ModeANSI:
		return render.NewANSIRenderer(out, cfg.Home), func() {}, nil
	case app.ModeScreen:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("opening screen: %w", err)
		}
		return newScreenSink(screen)
	case app.ModeText:
		return render.NewTextRenderer(out, cfg.Home), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown render mode %q", cfg.Mode)
	}
}

func newScreenSink(screen tcell.Screen) (render.Renderer, func(), error) {
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("initialising screen: %w", err)
	}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cleanup := func() {
		screen.Fini()
		slog.SetDefault(prev)
	}
	return render.NewScreenRenderer(screen), cleanup, nil
}

func simNames() []string {
	names := make([]string, 0, len(core.Sims()))
	for name := range core.Sims() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
