package refdata

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/alexiusacademia/gobarrel/internal/tolerance"
)

// fitTable interpolates the four deviations of one fit class over diameter.
type fitTable struct {
	ref    FitRef
	rows   []YAMLFitRow
	curves [4]interp.PiecewiseLinear // bore upper, bore lower, shaft upper, shaft lower
}

func newFitTable(t YAMLFitTable) (*fitTable, error) {
	if t.Standard == "" || t.FitClass == "" {
		return nil, fmt.Errorf("fit table needs a standard and a fit class")
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("fit %s %s has no rows", t.Standard, t.FitClass)
	}

	rows := append([]YAMLFitRow(nil), t.Rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Diameter < rows[j].Diameter })

	for i, r := range rows {
		if !(r.Diameter > 0) {
			return nil, fmt.Errorf("fit %s %s: diameter must be positive: %g mm", t.Standard, t.FitClass, r.Diameter)
		}
		if i > 0 && r.Diameter == rows[i-1].Diameter {
			return nil, fmt.Errorf("fit %s %s: duplicate diameter %g mm", t.Standard, t.FitClass, r.Diameter)
		}
		if err := (tolerance.Spec{Bore: r.Bore, Shaft: r.Shaft}).Validate(); err != nil {
			return nil, fmt.Errorf("fit %s %s at %g mm: %w", t.Standard, t.FitClass, r.Diameter, err)
		}
	}

	ft := &fitTable{
		ref: FitRef{
			Standard:    t.Standard,
			FitClass:    t.FitClass,
			MinDiameter: rows[0].Diameter,
			MaxDiameter: rows[len(rows)-1].Diameter,
		},
		rows: rows,
	}
	if len(rows) == 1 {
		return ft, nil
	}

	xs := make([]float64, len(rows))
	cols := [4][]float64{}
	for i, r := range rows {
		xs[i] = r.Diameter
		cols[0] = append(cols[0], r.Bore.Upper)
		cols[1] = append(cols[1], r.Bore.Lower)
		cols[2] = append(cols[2], r.Shaft.Upper)
		cols[3] = append(cols[3], r.Shaft.Lower)
	}
	for i := range ft.curves {
		if err := ft.curves[i].Fit(xs, cols[i]); err != nil {
			return nil, fmt.Errorf("fit %s %s: %w", t.Standard, t.FitClass, err)
		}
	}
	return ft, nil
}

// at returns the deviations at diameter d, linear between rows and clamped
// to the end rows outside the tabulated range.
func (f *fitTable) at(d float64) tolerance.Spec {
	if len(f.rows) == 1 {
		return tolerance.Spec{Bore: f.rows[0].Bore, Shaft: f.rows[0].Shaft}
	}
	return tolerance.Spec{
		Bore:  tolerance.Deviation{Upper: f.curves[0].Predict(d), Lower: f.curves[1].Predict(d)},
		Shaft: tolerance.Deviation{Upper: f.curves[2].Predict(d), Lower: f.curves[3].Predict(d)},
	}
}
