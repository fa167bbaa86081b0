package cylinder

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 100

	bracketFactor        = 10 // initial upper bracket, in multiples of the target strength
	maxBracketExpansions = 20
)

// BurstSolver finds, by bisection, the internal pressure at which the bore
// equivalent stress reaches a target strength.
type BurstSolver struct {
	Tolerance     float64 // on the objective (MPa) and on the bracket width (MPa)
	MaxIterations int
	EndCondition  domain.EndCondition
	Logger        *slog.Logger
}

// DefaultBurstSolver returns a solver with tolerance 1e-9 and 100 iterations.
func DefaultBurstSolver() BurstSolver {
	return BurstSolver{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// BurstResult is a converged root.
type BurstResult struct {
	Pressure    float64 // MPa
	Iterations  int     // bisection steps
	Evaluations int     // objective evaluations, bracketing included
}

// evaluation is one objective value. ok is false when the stress field could
// not be evaluated at the trial pressure.
type evaluation struct {
	value float64
	ok    bool
}

func (e evaluation) valid() bool {
	return e.ok && !math.IsNaN(e.value) && !math.IsInf(e.value, 0)
}

// Solve returns the smallest p >= 0 with σvm(ri; p, po) = strength.
func (s BurstSolver) Solve(g domain.Geometry, po, strength float64) (BurstResult, error) {
	const op = "burst"

	if err := g.Validate(); err != nil {
		return BurstResult{}, err
	}
	if err := (domain.Load{Po: po}).Validate(); err != nil {
		return BurstResult{}, err
	}
	if math.IsNaN(strength) || math.IsInf(strength, 0) || strength <= 0 {
		return BurstResult{}, domain.Errorf(op, domain.KindInvalidMaterial,
			"target strength must be positive and finite: S=%g MPa", strength)
	}
	if !(s.Tolerance > 0) || s.MaxIterations <= 0 {
		return BurstResult{}, domain.Errorf(op, domain.KindNumericalError,
			"solver needs a positive tolerance and iteration cap: tol=%g, maxIters=%d", s.Tolerance, s.MaxIterations)
	}

	log := s.logger()
	res := BurstResult{}
	f := func(p float64) evaluation {
		res.Evaluations++
		return s.objective(g, po, strength, p)
	}

	low, high := 0.0, bracketFactor*strength
	fLow := f(low)
	if !fLow.valid() {
		return res, domain.Errorf(op, domain.KindNumericalError, "objective not finite at p=0 MPa")
	}
	if math.Abs(fLow.value) < s.Tolerance {
		return res, nil
	}
	if fLow.value > 0 {
		return res, domain.Errorf(op, domain.KindBracketingFailure,
			"bore equivalent stress exceeds S=%g MPa with no internal pressure (po=%g MPa)", strength, po)
	}

	fHigh := f(high)
	for expansions := 0; fHigh.valid() && fHigh.value < 0; expansions++ {
		if expansions == maxBracketExpansions {
			return res, domain.Errorf(op, domain.KindBracketingFailure,
				"no sign change up to p=%g MPa after %d expansions", high, maxBracketExpansions)
		}
		high *= 2
		fHigh = f(high)
	}
	if !fHigh.valid() {
		return res, domain.Errorf(op, domain.KindNumericalError, "objective not finite at p=%g MPa", high)
	}
	log.Debug("burst.bracket", "low", low, "high", high, "strength", strength)

	for iter := 1; iter <= s.MaxIterations; iter++ {
		mid := (low + high) / 2
		fMid := f(mid)
		if !fMid.valid() {
			return res, domain.Errorf(op, domain.KindNumericalError, "objective not finite at p=%g MPa", mid)
		}

		if math.Abs(fMid.value) < s.Tolerance || high-low < s.Tolerance {
			res.Pressure = mid
			res.Iterations = iter
			log.Debug("burst.converged", "pressure", mid, "iterations", iter, "evaluations", res.Evaluations)
			return res, nil
		}

		if fMid.value*fLow.value < 0 {
			high = mid
		} else {
			low, fLow = mid, fMid
		}
	}

	return res, &domain.Error{
		Op:         op,
		Kind:       domain.KindConvergenceFailure,
		Msg:        fmt.Sprintf("bisection did not converge after %d iterations", s.MaxIterations),
		Iterations: s.MaxIterations,
	}
}

// objective is σvm at the bore minus the target strength.
func (s BurstSolver) objective(g domain.Geometry, po, strength, p float64) evaluation {
	c, err := LameCoefficients(g.Ri, g.Ro, p, po)
	if err != nil {
		return evaluation{}
	}
	st, err := StressesWithEnds(g.Ri, c, s.EndCondition)
	if err != nil {
		return evaluation{}
	}
	return evaluation{value: st.VonMises() - strength, ok: true}
}

func (s BurstSolver) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
