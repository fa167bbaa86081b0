package tolerance

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// Request describes one worst-case analysis. Spec and PressureFactor, when
// set, take precedence over the provider lookups.
type Request struct {
	Geometry         domain.Geometry
	Pressure         float64 // nominal internal pressure (MPa)
	ExternalPressure float64 // MPa
	Material         domain.Material
	EndCondition     domain.EndCondition

	Spec     *Spec
	Standard string // tolerance standard, e.g. ISO286
	FitClass string // e.g. H7/p6

	PressureFactor   *float64
	PressureStandard string // e.g. SAAMI
}

// Case is one geometry/pressure combination and its analysis.
type Case struct {
	Label         string
	Geometry      domain.Geometry
	Load          domain.Load
	WallThickness float64 // mm
	Analysis      *cylinder.Analysis
}

// Result holds the nominal, worst and best cases.
type Result struct {
	Spec           Spec
	PressureFactor float64

	Nominal   Case
	WorstCase Case
	BestCase  Case

	// WorstCase.SFy / Nominal.SFy
	Degradation float64
	Message     string
}

// Analyzer runs worst-case analyses against injected reference data.
type Analyzer struct {
	Tables    TableProvider
	Pressures PressureFactorProvider
	Solver    cylinder.BurstSolver
	Logger    *slog.Logger
}

// NewAnalyzer returns an analyzer with the default burst solver.
func NewAnalyzer(tables TableProvider, pressures PressureFactorProvider) *Analyzer {
	return &Analyzer{
		Tables:    tables,
		Pressures: pressures,
		Solver:    cylinder.DefaultBurstSolver(),
	}
}

// Analyze derives worst-case and best-case dimensions and pressures and runs
// the single-cylinder analysis for each of the three cases.
func (a *Analyzer) Analyze(req Request) (*Result, error) {
	const op = "tolerance.analyze"
	log := a.logger()

	nominal := req.Geometry
	if err := nominal.Validate(); err != nil {
		return nil, domain.Wrap(op+": nominal geometry", err)
	}

	spec, err := a.spec(req)
	if err != nil {
		return nil, domain.Wrap(op+": tolerance lookup", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, domain.Wrap(op+": tolerance spec", err)
	}

	factor, err := a.factor(req)
	if err != nil {
		return nil, domain.Wrap(op+": pressure factor", err)
	}
	if !finite(factor) || factor < 0 || factor >= 1 {
		return nil, domain.Errorf(op, domain.KindInvalidLoad,
			"pressure tolerance factor must lie in [0, 1): factor=%g", factor)
	}

	// Largest bore on the thinnest outside maximizes hoop stress.
	worst := domain.Geometry{
		Ri: nominal.Ri + micronsToMM(spec.Bore.Upper),
		Ro: nominal.Ro + micronsToMM(spec.Shaft.Lower),
	}
	best := domain.Geometry{
		Ri: nominal.Ri + micronsToMM(spec.Bore.Lower),
		Ro: nominal.Ro + micronsToMM(spec.Shaft.Upper),
	}
	if worst.Ri >= worst.Ro {
		return nil, domain.Errorf(op, domain.KindNegativeWallThickness,
			"worst-case wall vanishes: ri=%g mm, ro=%g mm", worst.Ri, worst.Ro)
	}

	p := req.Pressure
	result := &Result{Spec: spec, PressureFactor: factor}

	cases := []struct {
		dst  *Case
		name string
		g    domain.Geometry
		pi   float64
	}{
		{&result.Nominal, "nominal", nominal, p},
		{&result.WorstCase, "worst case", worst, p * (1 + factor)},
		{&result.BestCase, "best case", best, p * (1 - factor)},
	}
	for _, c := range cases {
		in := cylinder.Input{
			Geometry:     c.g,
			Load:         domain.Load{Pi: c.pi, Po: req.ExternalPressure},
			Material:     req.Material,
			EndCondition: req.EndCondition,
		}
		an, err := cylinder.Analyze(in, a.Solver)
		if err != nil {
			return nil, domain.Wrap(op+": "+c.name, err)
		}
		*c.dst = Case{
			Label:         c.name,
			Geometry:      c.g,
			Load:          in.Load,
			WallThickness: c.g.WallThickness(),
			Analysis:      an,
		}
		log.Debug("tolerance.case", "case", c.name, "ri", c.g.Ri, "ro", c.g.Ro, "pi", c.pi, "sfy", an.Safety.Yield)
	}

	result.Degradation = degradation(result.WorstCase.Analysis.Safety.Yield, result.Nominal.Analysis.Safety.Yield)

	worstSF := result.WorstCase.Analysis.Safety.Yield
	switch {
	case worstSF < 1:
		result.Message = fmt.Sprintf("Worst case yields - SFy=%.2f < 1.00", worstSF)
	case worstSF < cylinder.TargetSafetyFactor:
		result.Message = fmt.Sprintf("Worst case below target margin - SFy=%.2f < %.2f", worstSF, cylinder.TargetSafetyFactor)
	default:
		result.Message = fmt.Sprintf("Design OK across tolerance band - worst SFy=%.2f", worstSF)
	}

	return result, nil
}

func (a *Analyzer) spec(req Request) (Spec, error) {
	if req.Spec != nil {
		return *req.Spec, nil
	}
	if a.Tables == nil {
		return Spec{}, fmt.Errorf("tolerance spec: %w", ErrNoSource)
	}
	return a.Tables.Tolerance(req.Standard, req.FitClass, 2*req.Geometry.Ri)
}

func (a *Analyzer) factor(req Request) (float64, error) {
	if req.PressureFactor != nil {
		return *req.PressureFactor, nil
	}
	if a.Pressures == nil {
		return 0, fmt.Errorf("pressure factor: %w", ErrNoSource)
	}
	return a.Pressures.PressureFactor(req.PressureStandard)
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func degradation(worst, nominal float64) float64 {
	if math.IsInf(worst, 1) && math.IsInf(nominal, 1) {
		return 1
	}
	return worst / nominal
}
