package refdata

import "github.com/alexiusacademia/gobarrel/internal/tolerance"

type YAMLMaterials struct {
	Materials []Material `yaml:"materials"`
}

type YAMLCartridges struct {
	Cartridges []Cartridge `yaml:"cartridges"`
}

type YAMLTolerances struct {
	Tables []YAMLFitTable `yaml:"tables"`
}

type YAMLFitTable struct {
	Standard string       `yaml:"standard"`
	FitClass string       `yaml:"fit_class"`
	Rows     []YAMLFitRow `yaml:"rows"`
}

type YAMLFitRow struct {
	Diameter float64             `yaml:"diameter"` // mm, upper bound of the size range
	Bore     tolerance.Deviation `yaml:"bore"`     // µm
	Shaft    tolerance.Deviation `yaml:"shaft"`    // µm
}

type YAMLPressure struct {
	Standards map[string]float64 `yaml:"standards"`
}
