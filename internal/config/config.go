package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/physics"
)

const (
	DefaultRows     = 100
	DefaultLogLevel = "info"
)

type Config struct {
	Params   physics.Params `yaml:"params"`
	TimeStep float64        `yaml:"time_step"`
	MaxTime  float64        `yaml:"max_time"`
	Rows     int            `yaml:"rows"`
	LogLevel string         `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Params:   physics.DefaultParams(),
		TimeStep: flight.DefaultTimeStep,
		MaxTime:  flight.DefaultMaxTime,
		Rows:     DefaultRows,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Flight() flight.Config {
	return flight.Config{TimeStep: c.TimeStep, MaxTime: c.MaxTime}
}

func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Params.Validate(), c.Flight().Validate())
	if c.Rows < 0 {
		errs = append(errs, fmt.Errorf("rows must not be negative, got %d", c.Rows))
	}
	return errors.Join(errs...)
}
