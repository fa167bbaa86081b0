package compound

import (
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// Profile samples the combined stress field at n radii across each body,
// barrel first. The interface radius appears twice, once per body.
func (res *Result) Profile(n int) ([]domain.StressState, error) {
	const op = "compound.profile"
	if n < 2 {
		return nil, domain.Errorf(op, domain.KindInvalidGeometry,
			"a profile needs at least two radii per body: n=%d", n)
	}

	bodies := []struct {
		region Region
		g      domain.Geometry
	}{
		{Barrel, res.Params.Barrel.Geometry},
		{Trunnion, res.Params.Trunnion.Geometry},
	}

	states := make([]domain.StressState, 0, 2*n)
	for _, b := range bodies {
		f := res.Field(b.region)
		for _, r := range floats.Span(make([]float64, n), b.g.Ri, b.g.Ro) {
			s, err := f.At(r)
			if err != nil {
				return nil, domain.Wrap(op, err)
			}
			states = append(states, s.Combined)
		}
	}
	return states, nil
}
