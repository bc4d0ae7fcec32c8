package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters for the front ends.
type Config struct {
	Sim    string
	Width  int
	Height int
	Seed   int64
	Mode   string
	TPS    int
	Steps  int
	Scale  int
	FFT    bool
	Home   bool

	OutputDir string
	Record    string
	Plot      string

	Sets KVList
}

// Render modes for the terminal front end.
const (
	ModeText   = "text"
	ModeANSI   = "ansi"
	ModeScreen = "screen"
)

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "smoothlife",
		Width:  100,
		Height: 100,
		Mode:   ModeText,
		Scale:  4,
		Home:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid initialisation (0 = time-based)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "render mode: text, ansi or screen")
	fs.IntVar(&c.TPS, "tps", c.TPS, "steps per second (0 = unpaced)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "stop after N steps (0 = run until interrupted)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale for the window and recordings")
	fs.BoolVar(&c.FFT, "fft", c.FFT, "use the FFT convolver")
	fs.BoolVar(&c.Home, "home", c.Home, "move the cursor home before each text frame")
	fs.StringVar(&c.OutputDir, "out", c.OutputDir, "directory for steps.csv and params.yaml")
	fs.StringVar(&c.Record, "record", c.Record, "record frames to an MJPEG AVI file")
	fs.StringVar(&c.Plot, "plot", c.Plot, "save a PNG chart of mean intensity per step")
	fs.Var(&c.Sets, "set", "parameter override in key=value form (repeatable)")
}

// Validate checks values the flag package cannot.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeText, ModeANSI, ModeScreen:
	default:
		return fmt.Errorf("unknown render mode %q", c.Mode)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	return nil
}

// ResolveSeed settles the seed the run will use. A -set seed=N override wins
// over -seed, and a zero seed is replaced by one derived from now.
func (c *Config) ResolveSeed(now func() time.Time) error {
	if v, ok := c.Sets.Map()["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", v, err)
		}
		c.Seed = parsed
	}
	if c.Seed == 0 {
		c.Seed = now().UnixNano()
	}
	return nil
}

// SimOptions returns the key/value map passed to the simulation factory.
// Explicit -set overrides win over the dedicated flags; the seed always comes
// from c.Seed so call ResolveSeed first.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.FFT {
		opts["convolver"] = "fft"
	}
	for k, v := range c.Sets.Map() {
		if k == "seed" {
			continue
		}
		opts[k] = v
	}
	return opts
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a key=value pair, rejecting values without '='.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs override earlier ones.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
