package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"smoothlife/internal/core"
)

// OutputManager writes per-step statistics and the run parameters to a
// directory.
type OutputManager struct {
	dir           string
	stepsFile     *os.File
	headerWritten bool
}

// NewOutputManager creates dir and opens steps.csv inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "steps.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating steps.csv: %w", err)
	}
	return &OutputManager{dir: dir, stepsFile: f}, nil
}

// WriteParams saves the parameter snapshot as params.yaml.
func (om *OutputManager) WriteParams(snapshot core.ParameterSnapshot) error {
	if om == nil {
		return nil
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling params: %w", err)
	}
	if err := os.WriteFile(filepath.Join(om.dir, "params.yaml"), data, 0644); err != nil {
		return fmt.Errorf("writing params.yaml: %w", err)
	}
	return nil
}

// WriteStep appends a record to steps.csv.
func (om *OutputManager) WriteStep(stats StepStats) error {
	if om == nil {
		return nil
	}
	records := []StepStats{stats}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.stepsFile); err != nil {
			return fmt.Errorf("writing steps: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.stepsFile); err != nil {
		return fmt.Errorf("writing steps: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes steps.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.stepsFile == nil {
		return nil
	}
	err := om.stepsFile.Close()
	om.stepsFile = nil
	return err
}
