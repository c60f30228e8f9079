package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration, loaded from HOGSIM_* environment
// variables and overridable by flags.
type Config struct {
	// Seed is the base RNG seed; zero picks one from the current time.
	Seed int64 `env:"HOGSIM_SEED"`

	// Samples is the trial count per measurement.
	Samples int `env:"HOGSIM_SAMPLES" envDefault:"1000"`

	// Workers is the parallel worker count; zero uses all cores.
	Workers int `env:"HOGSIM_WORKERS"`

	// Output selects the report format: text or json.
	Output string `env:"HOGSIM_OUTPUT" envDefault:"text"`

	// Verbose enables progress logging.
	Verbose bool `env:"HOGSIM_VERBOSE"`
}

// LoadConfig parses configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
