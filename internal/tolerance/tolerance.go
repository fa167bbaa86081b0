// Package tolerance propagates manufacturing tolerances and pressure
// variation through the single-cylinder analysis to bound the safety margin.
package tolerance

import (
	"errors"
	"math"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// ErrNoSource is returned when a request names neither explicit values nor a provider.
var ErrNoSource = errors.New("tolerance: no value and no provider")

// Deviation is the allowed offset of one feature from nominal (µm).
type Deviation struct {
	Upper float64 `json:"upper" yaml:"upper"`
	Lower float64 `json:"lower" yaml:"lower"`
}

// Spec pairs the bore (inner) and shaft (outer) deviations.
type Spec struct {
	Bore  Deviation `json:"bore" yaml:"bore"`
	Shaft Deviation `json:"shaft" yaml:"shaft"`
}

// Symmetric returns ±bore and ±shaft deviations (µm).
func Symmetric(bore, shaft float64) Spec {
	return Spec{
		Bore:  Deviation{Upper: bore, Lower: -bore},
		Shaft: Deviation{Upper: shaft, Lower: -shaft},
	}
}

// Validate checks every offset is finite and upper >= lower.
func (s Spec) Validate() error {
	for _, f := range []struct {
		name string
		d    Deviation
	}{{"bore", s.Bore}, {"shaft", s.Shaft}} {
		if !finite(f.d.Upper) || !finite(f.d.Lower) {
			return domain.Errorf("tolerance.spec", domain.KindInvalidGeometry,
				"%s deviations must be finite: upper=%g µm, lower=%g µm", f.name, f.d.Upper, f.d.Lower)
		}
		if f.d.Upper < f.d.Lower {
			return domain.Errorf("tolerance.spec", domain.KindInvalidGeometry,
				"%s upper deviation below lower: upper=%g µm, lower=%g µm", f.name, f.d.Upper, f.d.Lower)
		}
	}
	return nil
}

// TableProvider maps a fit class to bore/shaft deviations at a nominal diameter (mm).
type TableProvider interface {
	Tolerance(standard, fitClass string, diameter float64) (Spec, error)
}

// PressureFactorProvider returns the fractional pressure variation allowed by a standard.
type PressureFactorProvider interface {
	PressureFactor(standard string) (float64, error)
}

func micronsToMM(um float64) float64 {
	return um / 1000
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
