// Package compound analyzes a shrink-fit barrel/trunnion assembly by
// superposing the interference preload on the operating pressure field.
package compound

import (
	"math"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// CompatibilityTolerance is the absolute gap allowed between the trunnion
// bore and the barrel outer radius less the interference (mm).
const CompatibilityTolerance = 1e-6

// ContactPressure returns the interface pressure produced by pressing the
// trunnion onto the barrel with the given radial interference (mm).
func ContactPressure(barrel, trunnion domain.ElasticCylinder, interference float64) (float64, error) {
	const op = "compound.contact_pressure"

	if err := barrel.Validate(); err != nil {
		return 0, domain.Wrap(op+": barrel", err)
	}
	if err := trunnion.Validate(); err != nil {
		return 0, domain.Wrap(op+": trunnion", err)
	}
	if math.IsNaN(interference) || math.IsInf(interference, 0) || interference < 0 {
		return 0, domain.Errorf(op, domain.KindInvalidGeometry,
			"interference must be non-negative: delta=%g mm", interference)
	}

	gap := math.Abs(trunnion.Ri - (barrel.Ro - interference))
	if gap > CompatibilityTolerance {
		return 0, domain.Errorf(op, domain.KindIncompatibleGeometry,
			"trunnion bore must equal barrel outer radius less interference: trunnion.ri=%g mm, barrel.ro=%g mm, delta=%g mm, gap=%g mm",
			trunnion.Ri, barrel.Ro, interference, gap)
	}

	if interference == 0 {
		return 0, nil
	}

	return interference / (compliance(barrel) + compliance(trunnion)), nil
}

// compliance is the plane-strain compliance (ro² + ri²)/(E·(ro² − ri²))·(1 − ν²).
func compliance(c domain.ElasticCylinder) float64 {
	ri2, ro2 := c.Ri*c.Ri, c.Ro*c.Ro
	return (ro2 + ri2) / (c.E * (ro2 - ri2)) * (1 - c.Nu*c.Nu)
}
