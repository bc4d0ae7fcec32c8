package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"smoothlife/internal/sims/smoothlife"
	"smoothlife/internal/telemetry"
)

type paramSet struct {
	b1, b2 float64
	d1, d2 float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("b1=%.3f b2=%.3f d1=%.3f d2=%.3f", p.b1, p.b2, p.d1, p.d2)
}

type scenarioResult struct {
	params   paramSet
	survived int
	final    telemetry.StepStats
	peakMean float64
	err      error
}

func main() {
	steps := flag.Int("steps", 120, "steps to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 64, "grid width and height")
	ra := flag.Float64("ra", 11, "outer radius")
	fft := flag.Bool("fft", false, "use the FFT convolver")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	top := flag.Int("top", 5, "number of ranked results to log")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	base := smoothlife.DefaultConfig()
	base.Width, base.Height = *size, *size
	base.Seed = *seed
	base.Params.Ra = *ra
	if *fft {
		base.Convolver = smoothlife.ConvolverFFT
	}

	sets := candidateSets(base.Params)
	slog.Info("starting sweep", "sets", len(sets), "workers", *workers, "steps", *steps)

	start := time.Now()
	all := sweep(base, sets, *steps, *workers)
	rank(all)

	for i := 0; i < len(all) && i < *top; i++ {
		logResult("ranked", i+1, all[i])
	}
	slog.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond).String())
}

// candidateSets spreads each interval bound around the base values.
func candidateSets(p smoothlife.Params) []paramSet {
	offsets := []float64{-0.02, 0, 0.02}
	var sets []paramSet
	for _, b1 := range offsets {
		for _, b2 := range offsets {
			for _, d1 := range offsets {
				for _, d2 := range offsets {
					sets = append(sets, paramSet{
						b1: p.B1 + b1,
						b2: p.B2 + b2,
						d1: p.D1 + d1,
						d2: p.D2 + d2,
					})
				}
			}
		}
	}
	return sets
}

func sweep(base smoothlife.Config, sets []paramSet, steps, workers int) []scenarioResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			logResult("scenario failed", 0, res)
		}
		all = append(all, res)
	}
	return all
}

// rank orders results by steps survived, then by final mean intensity.
func rank(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].survived != all[j].survived {
			return all[i].survived > all[j].survived
		}
		if all[i].final.Mean != all[j].final.Mean {
			return all[i].final.Mean > all[j].final.Mean
		}
		return all[i].params.String() < all[j].params.String()
	})
}

// runScenario steps one world until it dies out, fails or reaches steps.
func runScenario(base smoothlife.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Params.B1, cfg.Params.B2 = params.b1, params.b2
	cfg.Params.D1, cfg.Params.D2 = params.d1, params.d2

	res := scenarioResult{params: params}
	world, err := smoothlife.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	world.Reset(0)

	for step := 1; step <= steps; step++ {
		if err := world.Step(); err != nil {
			res.err = err
			return res
		}
		res.final = telemetry.Compute(step, world.Cells(), world.Delta())
		if res.final.Mean > res.peakMean {
			res.peakMean = res.final.Mean
		}
		if res.final.Max == 0 {
			return res
		}
		res.survived = step
	}
	return res
}

func logResult(msg string, position int, res scenarioResult) {
	attrs := []any{
		"params", res.params.String(),
		"survived", res.survived,
		"mean", res.final.Mean,
		"std_dev", res.final.StdDev,
		"alive", res.final.Alive,
		"peak_mean", res.peakMean,
	}
	if position > 0 {
		attrs = append(attrs, "rank", position)
	}
	if res.err != nil {
		attrs = append(attrs, "error", res.err)
		slog.Warn(msg, attrs...)
		return
	}
	slog.Info(msg, attrs...)
}
