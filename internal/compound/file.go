package compound

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile loads an assembly definition from a JSON file
func LoadFromFile(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the bodies, the strengths and the fit.
func (p *Params) Validate() error {
	if _, err := ContactPressure(p.Barrel, p.Trunnion, p.Interference); err != nil {
		return err
	}
	if err := p.BarrelMaterial.Validate(); err != nil {
		return err
	}
	return p.TrunnionMaterial.Validate()
}
