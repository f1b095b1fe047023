package utils

import (
	"encoding/json"
	"flag"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Config holds the runtime settings for the animator.
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	Density             float64       `json:"density"`
	Pattern             string        `json:"pattern"`
	Seed                int64         `json:"seed"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		FrameRate:           150 * time.Millisecond,
		Density:             0.15,
		Pattern:             "",
		Seed:                0,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet, so command-line
// flags override whatever the config file supplied.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between frames")
	fs.Float64Var(&c.Density, "density", c.Density, "random seeding density in [0, 1]")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named seed pattern, empty for random seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for unpredictable")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many frames, 0 to run forever")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant frames before a restart")
}
