package refdata

import (
	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// Material is a barrel or trunnion steel/alloy.
type Material struct {
	Name    string  `yaml:"name"`
	Sy      float64 `yaml:"sy"`      // Yield strength (MPa)
	Su      float64 `yaml:"su"`      // Ultimate strength (MPa)
	E       float64 `yaml:"e"`       // Elastic modulus (GPa)
	Nu      float64 `yaml:"nu"`      // Poisson ratio
	Density float64 `yaml:"density"` // kg/m³
}

// Strength returns the strengths used for safety margins.
func (m Material) Strength() domain.Material {
	return domain.Material{Sy: m.Sy, Su: m.Su}
}

// Elastic returns an elastic cylinder of this material, E converted to MPa.
func (m Material) Elastic(g domain.Geometry) domain.ElasticCylinder {
	return domain.ElasticCylinder{Geometry: g, E: m.E * 1000, Nu: m.Nu}
}

// Cartridge is a chambering with its rated maximum pressure.
type Cartridge struct {
	Name         string  `yaml:"name"`
	Standard     string  `yaml:"standard"`      // pressure standard, e.g. SAAMI
	MaxPressure  float64 `yaml:"max_pressure"`  // MPa
	BoreDiameter float64 `yaml:"bore_diameter"` // mm
}

// FitRef identifies one tabulated fit.
type FitRef struct {
	Standard    string
	FitClass    string
	MinDiameter float64 // mm
	MaxDiameter float64 // mm
}

// PressureStandard is the fractional pressure variation a standard allows
// above its rated maximum.
type PressureStandard struct {
	Name   string
	Factor float64
}
