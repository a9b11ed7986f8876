package optics

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are read from the environment.
type Settings struct {
	Debug     bool   `env:"POLARIZE_DEBUG"`
	Precision int    `env:"POLARIZE_PRECISION" envDefault:"6"`
	Config    string `env:"POLARIZE_CONFIG" envDefault:"trains/config.yaml"`
}

// LoadSettings parses Settings from environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	if s.Precision <= 0 {
		s.Precision = DefaultPrecision
	}
	if s.Config == "" {
		s.Config = DefaultConfig
	}
	return s, nil
}
