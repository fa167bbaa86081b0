package cylinder

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// Input describes one single-cylinder analysis.
type Input struct {
	Geometry     domain.Geometry
	Load         domain.Load
	Material     domain.Material
	EndCondition domain.EndCondition
}

// Analysis holds the results of a single-cylinder analysis
type Analysis struct {
	Input Input

	// Lamé solution
	Coefficients domain.Coefficients

	// Stress states at the bore and the outer surface
	Inner domain.StressState
	Outer domain.StressState

	// Equivalent stress (MPa)
	InnerVonMises float64
	OuterVonMises float64

	// Safety margins; the bore governs under internal pressure
	Safety      domain.SafetyFactors
	OuterSafety domain.SafetyFactors

	// Internal pressures bringing the bore Von Mises stress to a strength (MPa).
	// YieldPressure is the glossary's burst pressure (bore reaches Sy);
	// BurstPressure is the ultimate-strength root (bore reaches Su).
	YieldPressure   float64 // σvm(ri) = Sy
	BurstPressure   float64 // σvm(ri) = Su
	BurstIterations int     // bisection steps of the Su root

	// Status
	IsAdequate bool // yield safety factor at or above TargetSafetyFactor
	Message    string
}

// Analyze runs coefficients → stresses → Von Mises → safety factors →
// yield and burst pressure for one cylinder.
func Analyze(in Input, solver BurstSolver) (*Analysis, error) {
	const op = "cylinder.analyze"

	g, l := in.Geometry, in.Load
	if err := in.Material.Validate(); err != nil {
		return nil, domain.Wrap(op+": material", err)
	}

	c, err := Solve(g, l)
	if err != nil {
		return nil, domain.Wrap(op+": coefficients", err)
	}

	result := &Analysis{Input: in, Coefficients: c}

	result.Inner, err = StressesWithEnds(g.Ri, c, in.EndCondition)
	if err != nil {
		return nil, domain.Wrap(op+": bore stresses", err)
	}
	result.Outer, err = StressesWithEnds(g.Ro, c, in.EndCondition)
	if err != nil {
		return nil, domain.Wrap(op+": outer stresses", err)
	}

	result.InnerVonMises = result.Inner.VonMises()
	result.OuterVonMises = result.Outer.VonMises()

	result.Safety, err = SafetyFor(result.InnerVonMises, in.Material)
	if err != nil {
		return nil, domain.Wrap(op+": bore safety", err)
	}
	result.OuterSafety, err = SafetyFor(result.OuterVonMises, in.Material)
	if err != nil {
		return nil, domain.Wrap(op+": outer safety", err)
	}

	solver.EndCondition = in.EndCondition

	yield, err := solver.Solve(g, l.Po, in.Material.Sy)
	if err != nil {
		return nil, domain.Wrap(op+": yield pressure", err)
	}
	burst, err := solver.Solve(g, l.Po, in.Material.Su)
	if err != nil {
		return nil, domain.Wrap(op+": burst pressure", err)
	}
	result.YieldPressure = yield.Pressure
	result.BurstPressure = burst.Pressure
	result.BurstIterations = burst.Iterations

	result.IsAdequate = result.Safety.Yield >= TargetSafetyFactor
	switch {
	case math.IsInf(result.Safety.Yield, 1):
		result.Message = "Bore is unstressed"
	case result.Safety.Yield < 1:
		result.Message = fmt.Sprintf("Bore yields - SFy=%.2f < 1.00", result.Safety.Yield)
	case !result.IsAdequate:
		result.Message = fmt.Sprintf("Below target margin - SFy=%.2f < %.2f", result.Safety.Yield, TargetSafetyFactor)
	default:
		result.Message = fmt.Sprintf("Design OK - SFy=%.2f", result.Safety.Yield)
	}

	return result, nil
}
