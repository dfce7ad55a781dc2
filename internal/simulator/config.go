package simulator

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the device defaults. The zero value selects analytic
// measurements, a time-based seed, and one kernel worker per CPU.
type Config struct {
	// Shots switches Expval and Var from analytic computation to
	// Monte-Carlo estimation when nonzero.
	Shots uint64 `env:"SPINDLE_SHOTS" envDefault:"0"`

	// Seed fixes the random stream of the sampler and the collapse draw;
	// zero seeds from the clock.
	Seed int64 `env:"SPINDLE_SEED" envDefault:"0"`

	// Workers bounds kernel goroutines; zero means one per CPU.
	Workers int `env:"SPINDLE_WORKERS" envDefault:"0"`
}

// ConfigFromEnv loads the device configuration from SPINDLE_* environment
// variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
