package cylinder

import (
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// Profile samples the stress field at n evenly spaced radii from ri to ro.
func Profile(g domain.Geometry, l domain.Load, n int, end domain.EndCondition) ([]domain.StressState, error) {
	if n < 2 {
		return nil, domain.Errorf("cylinder.profile", domain.KindInvalidGeometry,
			"a profile needs at least two radii: n=%d", n)
	}

	c, err := Solve(g, l)
	if err != nil {
		return nil, domain.Wrap("cylinder.profile", err)
	}

	radii := floats.Span(make([]float64, n), g.Ri, g.Ro)
	states := make([]domain.StressState, n)
	for i, r := range radii {
		states[i], err = StressesWithEnds(r, c, end)
		if err != nil {
			return nil, domain.Wrap("cylinder.profile", err)
		}
	}
	return states, nil
}
