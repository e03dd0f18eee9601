// SPDX-License-Identifier: MIT

// Package config loads matcalc runtime settings from MATCALC_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the envconfig prefix: fields resolve to MATCALC_<NAME>.
const Prefix = "matcalc"

// Determinant methods accepted by DetMethod.
const (
	DetMethodCofactor = "cofactor"
	DetMethodLU       = "lu"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all application configuration.
// Fields are flat so each one maps to MATCALC_<TAG> without a section infix.
type Config struct {
	// Precision is the maximum number of fraction digits in printed results.
	Precision int `envconfig:"PRECISION" default:"2"`
	// DetMethod selects the determinant algorithm: "cofactor" or "lu".
	DetMethod string `envconfig:"DET_METHOD" default:"cofactor"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Precision: 2,
		DetMethod: DetMethodCofactor,
		LogLevel:  "warn",
		LogDev:    false,
	}
}

// Validate rejects negative precision and unknown determinant methods.
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("%w: PRECISION must be >= 0, got %d", ErrInvalidConfig, c.Precision)
	}
	switch c.DetMethod {
	case DetMethodCofactor, DetMethodLU:
	default:
		return fmt.Errorf("%w: DET_METHOD must be %q or %q, got %q",
			ErrInvalidConfig, DetMethodCofactor, DetMethodLU, c.DetMethod)
	}

	return nil
}
