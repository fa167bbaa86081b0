package domain

import (
	"fmt"
	"math"
)

// Geometry is the cross-section of a thick-walled cylinder.
type Geometry struct {
	Ri float64 `json:"ri"` // Inner (bore) radius (mm)
	Ro float64 `json:"ro"` // Outer radius (mm)
}

// Validate checks ri > 0 and ro > ri.
func (g Geometry) Validate() error {
	if !isFinite(g.Ri) || !isFinite(g.Ro) {
		return Errorf("geometry", KindInvalidGeometry, "radii must be finite: ri=%g mm, ro=%g mm", g.Ri, g.Ro)
	}
	if g.Ri <= 0 {
		return Errorf("geometry", KindInvalidGeometry, "inner radius must be positive: ri=%g mm", g.Ri)
	}
	if g.Ro <= g.Ri {
		return Errorf("geometry", KindInvalidGeometry, "outer radius must exceed inner radius: ri=%g mm, ro=%g mm", g.Ri, g.Ro)
	}
	return nil
}

// WallThickness returns ro - ri (mm).
func (g Geometry) WallThickness() float64 {
	return g.Ro - g.Ri
}

// DiameterRatio returns ro/ri.
func (g Geometry) DiameterRatio() float64 {
	return g.Ro / g.Ri
}

// Load is the pressure acting on the bore and the outer surface.
type Load struct {
	Pi float64 `json:"pi"` // Internal pressure (MPa)
	Po float64 `json:"po"` // External pressure (MPa)
}

// Validate checks both pressures are non-negative.
func (l Load) Validate() error {
	if !isFinite(l.Pi) || !isFinite(l.Po) {
		return Errorf("load", KindInvalidLoad, "pressures must be finite: pi=%g MPa, po=%g MPa", l.Pi, l.Po)
	}
	if l.Pi < 0 {
		return Errorf("load", KindInvalidLoad, "internal pressure must be non-negative: pi=%g MPa", l.Pi)
	}
	if l.Po < 0 {
		return Errorf("load", KindInvalidLoad, "external pressure must be non-negative: po=%g MPa", l.Po)
	}
	return nil
}

// Coefficients are the Lamé constants of one solved cylinder.
type Coefficients struct {
	A float64 // MPa
	B float64 // MPa·mm²
}

// Add superposes two stress fields on the same body.
func (c Coefficients) Add(o Coefficients) Coefficients {
	return Coefficients{A: c.A + o.A, B: c.B + o.B}
}

// StressState holds the principal stresses at one radius.
type StressState struct {
	Radius     float64 // mm
	SigmaR     float64 // Radial stress (MPa)
	SigmaTheta float64 // Hoop stress (MPa)
	SigmaAxial float64 // Axial stress (MPa), zero for open ends
}

// Add returns the component-wise sum of two states at the same radius.
func (s StressState) Add(o StressState) StressState {
	return StressState{
		Radius:     s.Radius,
		SigmaR:     s.SigmaR + o.SigmaR,
		SigmaTheta: s.SigmaTheta + o.SigmaTheta,
		SigmaAxial: s.SigmaAxial + o.SigmaAxial,
	}
}

// VonMises returns the equivalent stress of the state.
func (s StressState) VonMises() float64 {
	st, sr, sa := s.SigmaTheta, s.SigmaR, s.SigmaAxial
	q := st*st + sr*sr + sa*sa - st*sr - st*sa - sr*sa
	if q < 0 {
		// rounding only; the form is positive semi-definite
		return 0
	}
	return math.Sqrt(q)
}

// Material holds the strengths used for safety margins.
type Material struct {
	Sy float64 `json:"sy"` // Yield strength (MPa)
	Su float64 `json:"su"` // Ultimate strength (MPa)
}

// Validate checks sy > 0, su > 0 and su >= sy.
func (m Material) Validate() error {
	if !isFinite(m.Sy) || !isFinite(m.Su) {
		return Errorf("material", KindInvalidMaterial, "strengths must be finite: Sy=%g MPa, Su=%g MPa", m.Sy, m.Su)
	}
	if m.Sy <= 0 {
		return Errorf("material", KindInvalidMaterial, "yield strength must be positive: Sy=%g MPa", m.Sy)
	}
	if m.Su <= 0 {
		return Errorf("material", KindInvalidMaterial, "ultimate strength must be positive: Su=%g MPa", m.Su)
	}
	if m.Su < m.Sy {
		return Errorf("material", KindInvalidMaterial, "ultimate strength must not be below yield: Sy=%g MPa, Su=%g MPa", m.Sy, m.Su)
	}
	return nil
}

// SafetyFactors are strength-to-stress ratios. Both are +Inf for an unstressed point.
type SafetyFactors struct {
	Yield    float64
	Ultimate float64
}

// ElasticCylinder is a cylinder with the elastic constants needed for
// interference-fit compliance.
type ElasticCylinder struct {
	Geometry
	E  float64 `json:"e"`  // Elastic modulus (MPa)
	Nu float64 `json:"nu"` // Poisson ratio
}

// Validate checks the geometry, E > 0 and 0 <= nu < 0.5.
func (c ElasticCylinder) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if !isFinite(c.E) || c.E <= 0 {
		return Errorf("elastic cylinder", KindInvalidMaterial, "elastic modulus must be positive: E=%g MPa", c.E)
	}
	if !isFinite(c.Nu) || c.Nu < 0 || c.Nu >= 0.5 {
		return Errorf("elastic cylinder", KindInvalidMaterial, "Poisson ratio must lie in [0, 0.5): nu=%g", c.Nu)
	}
	return nil
}

// EndCondition selects the axial stress model.
type EndCondition int

const (
	// OpenEnds carries no axial stress.
	OpenEnds EndCondition = iota
	// ClosedEnds carries the uniform Lamé axial stress A.
	ClosedEnds
)

func (e EndCondition) String() string {
	switch e {
	case OpenEnds:
		return "open"
	case ClosedEnds:
		return "closed"
	}
	return "unknown"
}

// AxialStress returns the axial stress for coefficients c under this end condition.
func (e EndCondition) AxialStress(c Coefficients) float64 {
	if e == ClosedEnds {
		return c.A
	}
	return 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ParseEndCondition accepts "open" or "closed".
func ParseEndCondition(s string) (EndCondition, error) {
	switch s {
	case "", "open":
		return OpenEnds, nil
	case "closed":
		return ClosedEnds, nil
	}
	return OpenEnds, fmt.Errorf("unknown end condition %q (want open or closed)", s)
}

func (e EndCondition) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EndCondition) UnmarshalText(b []byte) error {
	v, err := ParseEndCondition(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
