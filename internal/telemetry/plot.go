package telemetry

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MassSeries collects the mean intensity of the grid per step.
type MassSeries struct {
	points plotter.XYs
}

// Add records the mean intensity after step.
func (m *MassSeries) Add(step int, mean float64) {
	m.points = append(m.points, plotter.XY{X: float64(step), Y: mean})
}

// Len returns the number of recorded samples.
func (m *MassSeries) Len() int { return len(m.points) }

// SaveMassPlot writes a line chart of the series. The image format follows
// the file extension.
func SaveMassPlot(path string, series *MassSeries) error {
	if series == nil || series.Len() == 0 {
		return fmt.Errorf("no samples to plot")
	}
	p := plot.New()
	p.Title.Text = "Mean intensity"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Mean"
	p.Y.Min, p.Y.Max = 0, 1

	if err := plotutil.AddLinePoints(p, "mean", series.points); err != nil {
		return fmt.Errorf("adding points: %w", err)
	}
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
