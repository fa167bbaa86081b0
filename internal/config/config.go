// Package config loads gobarrel settings from a YAML file on top of defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

type Config struct {
	Units   string
	DataDir string
	Debug   bool
	Solver  Solver
}

// Solver holds the burst-pressure bisection settings.
type Solver struct {
	Tolerance     float64
	MaxIterations int
}

func Default() Config {
	return Config{
		Units: units.Metric.String(),
		Solver: Solver{
			Tolerance:     cylinder.DefaultTolerance,
			MaxIterations: cylinder.DefaultMaxIterations,
		},
	}
}

// Load reads path and applies its values on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if y.Units != "" {
		cfg.Units = y.Units
	}
	if y.DataDir != "" {
		cfg.DataDir = y.DataDir
	}
	if y.Debug != nil {
		cfg.Debug = *y.Debug
	}
	if y.Solver.Tolerance != nil {
		cfg.Solver.Tolerance = *y.Solver.Tolerance
	}
	if y.Solver.MaxIterations != nil {
		cfg.Solver.MaxIterations = *y.Solver.MaxIterations
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := units.ParseSystem(c.Units); err != nil {
		return err
	}
	if !(c.Solver.Tolerance > 0) {
		return fmt.Errorf("solver tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("solver max iterations must be positive, got %d", c.Solver.MaxIterations)
	}
	return nil
}

// UnitSystem returns the parsed display system; call Validate first.
func (c Config) UnitSystem() units.System {
	s, _ := units.ParseSystem(c.Units)
	return s
}

// BurstSolver returns a solver configured from the solver settings.
func (c Config) BurstSolver() cylinder.BurstSolver {
	s := cylinder.DefaultBurstSolver()
	s.Tolerance = c.Solver.Tolerance
	s.MaxIterations = c.Solver.MaxIterations
	return s
}

type yamlConfig struct {
	Units   string `yaml:"units"`
	DataDir string `yaml:"data_dir"`
	Debug   *bool  `yaml:"debug"`
	Solver  struct {
		Tolerance     *float64 `yaml:"tolerance"`
		MaxIterations *int     `yaml:"max_iterations"`
	} `yaml:"solver"`
}
