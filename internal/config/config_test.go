package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobarrel/internal/units"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gobarrel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.UnitSystem() != units.Metric || cfg.Solver.Tolerance != 1e-9 || cfg.Solver.MaxIterations != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DataDir != "" || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadAppliesOnTopOfDefaults(t *testing.T) {
	path := writeConfig(t, `
units: imperial
data_dir: /srv/gobarrel/data
solver:
  max_iterations: 250
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UnitSystem() != units.Imperial {
		t.Fatalf("expected imperial, got %s", cfg.Units)
	}
	if cfg.DataDir != "/srv/gobarrel/data" {
		t.Fatalf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.Solver.MaxIterations != 250 || cfg.Solver.Tolerance != 1e-9 {
		t.Fatalf("unexpected solver settings: %+v", cfg.Solver)
	}

	s := cfg.BurstSolver()
	if s.MaxIterations != 250 || s.Tolerance != 1e-9 {
		t.Fatalf("unexpected burst solver: %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "units: [metric"},
		{"unknown units", "units: cubits\n"},
		{"zero tolerance", "solver:\n  tolerance: 0\n"},
		{"negative iterations", "solver:\n  max_iterations: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
