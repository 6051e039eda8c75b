package engine

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veritest/veritest/errors"
)

// Config controls how a suite run is scheduled.
type Config struct {
	// Parallel is the number of worker goroutines running independent
	// invocations. A single invocation's parameter resolution is always
	// sequential regardless of this setting.
	Parallel int `yaml:"parallel"`

	// FailFast stops scheduling further tests after the first failure.
	// Tests that never ran are reported as skipped.
	FailFast bool `yaml:"fail_fast"`

	// Verbose enables per-resolution debug logging on the invoker.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a sequential, non-fail-fast configuration.
func DefaultConfig() *Config {
	return &Config{Parallel: 1}
}

func (c *Config) normalize() {
	if c.Parallel < 1 {
		c.Parallel = 1
	}
}

// LoadConfig reads a yaml run configuration. Missing keys keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseRun, errors.KindInvalidInput).
			Detail("read config %s", path).
			Cause(err).
			Build()
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.PhaseRun, errors.KindInvalidInput).
			Detail("parse config %s", path).
			Cause(err).
			Build()
	}
	cfg.normalize()
	return cfg, nil
}
