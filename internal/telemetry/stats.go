package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AliveThreshold is the intensity above which a cell counts as alive.
const AliveThreshold = 0.5

// StepStats summarises the grid after one step.
type StepStats struct {
	Step      int     `csv:"step"`
	Mean      float64 `csv:"mean"`
	StdDev    float64 `csv:"std_dev"`
	Min       float64 `csv:"min"`
	Max       float64 `csv:"max"`
	Alive     int     `csv:"alive"`
	DeltaMean float64 `csv:"delta_mean"`
}

// Compute builds StepStats from the grid intensities and the last rate of
// change. delta may be nil before the first step.
func Compute(step int, cells, delta []float64) StepStats {
	s := StepStats{Step: step}
	if len(cells) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(cells, nil)
	s.Min = floats.Min(cells)
	s.Max = floats.Max(cells)
	for _, v := range cells {
		if v > AliveThreshold {
			s.Alive++
		}
	}
	if len(delta) > 0 {
		s.DeltaMean = stat.Mean(delta, nil)
	}
	return s
}
