package smoothlife

import (
	"fmt"
	"math"
	"strconv"
)

// Params holds the kernel, transition and integration constants.
type Params struct {
	Ra     float64 `yaml:"ra"`
	AlphaN float64 `yaml:"alpha_n"`
	AlphaM float64 `yaml:"alpha_m"`
	B1     float64 `yaml:"b1"`
	B2     float64 `yaml:"b2"`
	D1     float64 `yaml:"d1"`
	D2     float64 `yaml:"d2"`
	DT     float64 `yaml:"dt"`
}

// Config controls the SmoothLife world dimensions and kernel backend.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	// Convolver selects the neighbourhood-sum backend: "direct" or "fft".
	Convolver string `yaml:"convolver"`

	Params Params `yaml:"params"`
}

const (
	// ConvolverDirect scans every kernel offset per cell.
	ConvolverDirect = "direct"
	// ConvolverFFT multiplies the grid and kernel spectra.
	ConvolverFFT = "fft"
)

// DefaultParams returns the reference SmoothLife constants.
func DefaultParams() Params {
	return Params{
		Ra:     11,
		AlphaN: 0.028,
		AlphaM: 0.147,
		B1:     0.278,
		B2:     0.365,
		D1:     0.267,
		D2:     0.445,
		DT:     0.05,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     100,
		Height:    100,
		Seed:      1,
		Convolver: ConvolverDirect,
		Params:    DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable numbers are ignored. Parsed values are kept as given, even when
// out of range, so Validate can reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["convolver"]; ok {
		c.Convolver = v
	}
	floats := map[string]*float64{
		"ra":      &c.Params.Ra,
		"alpha_n": &c.Params.AlphaN,
		"alpha_m": &c.Params.AlphaM,
		"b1":      &c.Params.B1,
		"b2":      &c.Params.B2,
		"d1":      &c.Params.D1,
		"d2":      &c.Params.D2,
		"dt":      &c.Params.DT,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// Validate reports ErrInvalidParameters for values the kernel cannot run with.
func (p Params) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"ra", p.Ra}, {"alpha_n", p.AlphaN}, {"alpha_m", p.AlphaM},
		{"b1", p.B1}, {"b2", p.B2}, {"d1", p.D1}, {"d2", p.D2}, {"dt", p.DT},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, n.name)
		}
	}
	if p.Ra <= 0 {
		return fmt.Errorf("%w: ra must be positive, got %g", ErrInvalidParameters, p.Ra)
	}
	return nil
}

// Validate checks dimensions and parameters.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidParameters, c.Width, c.Height)
	}
	switch c.Convolver {
	case "", ConvolverDirect, ConvolverFFT:
	default:
		return fmt.Errorf("%w: unknown convolver %q", ErrInvalidParameters, c.Convolver)
	}
	return c.Params.Validate()
}
