// Package cylinder solves a single thick-walled cylinder with the Lamé
// equations and derives equivalent stress, safety margins and the internal
// pressure that brings the bore to a given strength.
package cylinder

import (
	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// LameCoefficients returns A and B for a cylinder of bore ri and outer
// radius ro loaded by internal pressure pi and external pressure po.
//
//	A = (pi·ri² − po·ro²) / (ro² − ri²)
//	B = (pi − po)·ri²·ro² / (ro² − ri²)
func LameCoefficients(ri, ro, pi, po float64) (domain.Coefficients, error) {
	if err := (domain.Geometry{Ri: ri, Ro: ro}).Validate(); err != nil {
		return domain.Coefficients{}, err
	}
	if err := (domain.Load{Pi: pi, Po: po}).Validate(); err != nil {
		return domain.Coefficients{}, err
	}

	ri2, ro2 := ri*ri, ro*ro
	den := ro2 - ri2

	return domain.Coefficients{
		A: (pi*ri2 - po*ro2) / den,
		B: (pi - po) * ri2 * ro2 / den,
	}, nil
}

// Solve is LameCoefficients for value-typed inputs.
func Solve(g domain.Geometry, l domain.Load) (domain.Coefficients, error) {
	return LameCoefficients(g.Ri, g.Ro, l.Pi, l.Po)
}

// Stresses evaluates the radial and hoop stress at radius r.
func Stresses(r float64, c domain.Coefficients) (domain.StressState, error) {
	if !(r > 0) {
		return domain.StressState{}, domain.Errorf("lame.stresses", domain.KindInvalidGeometry,
			"radius must be positive: r=%g mm", r)
	}

	k := c.B / (r * r)
	return domain.StressState{
		Radius:     r,
		SigmaR:     c.A - k,
		SigmaTheta: c.A + k,
	}, nil
}

// StressesWithEnds is Stresses plus the axial stress of the end condition.
func StressesWithEnds(r float64, c domain.Coefficients, end domain.EndCondition) (domain.StressState, error) {
	s, err := Stresses(r, c)
	if err != nil {
		return s, err
	}
	s.SigmaAxial = end.AxialStress(c)
	return s, nil
}
