package app

import (
	"context"
	"fmt"

	"smoothlife/internal/core"
	"smoothlife/internal/render"
)

// Observer is called after the initial frame with step 0 and after every
// completed step with the step number.
type Observer func(step int) error

// RunOptions controls the driver loop.
type RunOptions struct {
	// MaxSteps stops the loop after that many steps; 0 runs until cancelled.
	MaxSteps int
	// TPS paces the loop to that many steps per second; 0 runs unpaced.
	TPS int

	Observers []Observer
}

// Run renders the initial grid and then alternates Step and Render until ctx
// is cancelled, MaxSteps is reached or a step fails. Cancellation is only
// observed between completed steps. It returns the number of completed steps;
// cancellation is not an error.
func Run(ctx context.Context, sim core.Sim, sink render.Renderer, opts RunOptions) (int, error) {
	size := sim.Size()
	if err := sink.Render(size, sim.Cells()); err != nil {
		return 0, fmt.Errorf("render initial frame: %w", err)
	}
	if err := notify(opts.Observers, 0); err != nil {
		return 0, err
	}

	var pacer *core.FixedStep
	if opts.TPS > 0 {
		pacer = core.NewFixedStep(opts.TPS)
	}

	steps := 0
	for {
		if ctx.Err() != nil {
			return steps, nil
		}
		if opts.MaxSteps > 0 && steps >= opts.MaxSteps {
			return steps, nil
		}
		if pacer != nil && pacer.Next(ctx) != nil {
			return steps, nil
		}
		if err := sim.Step(); err != nil {
			return steps, fmt.Errorf("step %d: %w", steps+1, err)
		}
		steps++
		if err := sink.Render(size, sim.Cells()); err != nil {
			return steps, fmt.Errorf("render step %d: %w", steps, err)
		}
		if err := notify(opts.Observers, steps); err != nil {
			return steps, err
		}
	}
}

func notify(observers []Observer, step int) error {
	for _, o := range observers {
		if err := o(step); err != nil {
			return fmt.Errorf("observer at step %d: %w", step, err)
		}
	}
	return nil
}
