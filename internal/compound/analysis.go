package compound

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// Params describes a barrel with a trunnion shrunk onto it.
type Params struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Bodies (mm, MPa)
	Barrel   domain.ElasticCylinder `json:"barrel"`
	Trunnion domain.ElasticCylinder `json:"trunnion"`

	// Strengths for safety margins
	BarrelMaterial   domain.Material `json:"barrel_material"`
	TrunnionMaterial domain.Material `json:"trunnion_material"`

	// Radial interference (mm)
	Interference float64 `json:"interference"`

	// Loading (MPa)
	OperatingPressure float64             `json:"operating_pressure"`
	ExternalPressure  float64             `json:"external_pressure,omitempty"`
	EndCondition      domain.EndCondition `json:"end_condition,omitempty"`
}

// Field is the superposed stress field of one body.
type Field struct {
	Region       Region
	Preload      domain.Coefficients // interference fit only
	Operating    domain.Coefficients // pressure only
	EndCondition domain.EndCondition // applied to the operating field
}

// Superposed holds both partial states and their sum at one radius.
type Superposed struct {
	Preload   domain.StressState
	Operating domain.StressState
	Combined  domain.StressState
}

// At evaluates the field at radius r (mm).
func (f Field) At(r float64) (Superposed, error) {
	pre, err := cylinder.Stresses(r, f.Preload)
	if err != nil {
		return Superposed{}, err
	}
	opr, err := cylinder.StressesWithEnds(r, f.Operating, f.EndCondition)
	if err != nil {
		return Superposed{}, err
	}
	return Superposed{
		Preload:   pre,
		Operating: opr,
		Combined:  pre.Add(opr),
	}, nil
}

// LocationResult holds the evaluation of one critical location.
type LocationResult struct {
	Location Location
	Region   Region
	Radius   float64 // mm
	Stress   Superposed
	VonMises float64 // MPa, of the combined state
	Safety   domain.SafetyFactors
}

// Result holds the results of a compound cylinder analysis
type Result struct {
	Params Params

	ContactPressure float64 // MPa
	InterfaceRadius float64 // mm

	Barrel   Field
	Trunnion Field

	Locations [NumLocations]LocationResult
	Governing Location // lowest yield safety factor

	IsAdequate bool
	Message    string
	Notes      []string // caveats on the evaluated locations
}

// Field returns the stress field of region r.
func (res *Result) Field(r Region) Field {
	switch r {
	case Barrel:
		return res.Barrel
	case Trunnion:
		return res.Trunnion
	}
	panic("compound: unknown region")
}

// Analyzer runs compound analyses. The zero value is ready to use.
type Analyzer struct {
	Logger *slog.Logger
}

// Analyze is Analyzer{}.Analyze.
func Analyze(p Params) (*Result, error) {
	return Analyzer{}.Analyze(p)
}

// Analyze solves the preload and operating fields of both bodies, superposes
// them and evaluates every critical location.
func (a Analyzer) Analyze(p Params) (*Result, error) {
	const op = "compound.analyze"
	log := a.logger()

	fail := func(stage string, err error) (*Result, error) {
		log.Debug("compound.failed", "stage", stage, "err", err)
		return nil, domain.WrapKind(op+": "+stage, domain.KindCompoundAnalysis, err)
	}

	pc, err := ContactPressure(p.Barrel, p.Trunnion, p.Interference)
	if err != nil {
		return fail("contact pressure", err)
	}
	if err := p.BarrelMaterial.Validate(); err != nil {
		return fail("barrel material", err)
	}
	if err := p.TrunnionMaterial.Validate(); err != nil {
		return fail("trunnion material", err)
	}

	b, t := p.Barrel, p.Trunnion
	result := &Result{
		Params:          p,
		ContactPressure: pc,
		InterfaceRadius: b.Ro,
		Barrel:          Field{Region: Barrel, EndCondition: p.EndCondition},
		Trunnion:        Field{Region: Trunnion, EndCondition: p.EndCondition},
	}
	log.Debug("compound.contact", "pressure", pc, "interference", p.Interference)

	// Preload: the trunnion squeezes the barrel and is pushed out by it.
	if result.Barrel.Preload, err = cylinder.LameCoefficients(b.Ri, b.Ro, 0, pc); err != nil {
		return fail("barrel preload", err)
	}
	if result.Trunnion.Preload, err = cylinder.LameCoefficients(t.Ri, t.Ro, pc, 0); err != nil {
		return fail("trunnion preload", err)
	}

	// Operating: chamber pressure acts on the barrel only.
	if result.Barrel.Operating, err = cylinder.LameCoefficients(b.Ri, b.Ro, p.OperatingPressure, p.ExternalPressure); err != nil {
		return fail("barrel operating", err)
	}
	if result.Trunnion.Operating, err = cylinder.LameCoefficients(t.Ri, t.Ro, p.ExternalPressure, p.ExternalPressure); err != nil {
		return fail("trunnion operating", err)
	}

	minSF := math.Inf(1)
	for _, loc := range Locations {
		lr, err := evaluate(result, loc)
		if err != nil {
			return fail(loc.String(), err)
		}
		result.Locations[loc] = lr

		if lr.Safety.Yield < minSF {
			minSF = lr.Safety.Yield
			result.Governing = loc
		}
	}

	if r := TrunnionOuter.Radius(result.InterfaceRadius); r > t.Ro {
		note := fmt.Sprintf("%s radius %.3f mm lies outside the trunnion (ro=%.3f mm)", TrunnionOuter, r, t.Ro)
		log.Warn("compound.location_outside_body", "location", TrunnionOuter.String(), "radius", r, "trunnion_ro", t.Ro)
		result.Notes = append(result.Notes, note)
	}

	gov := result.Locations[result.Governing]
	result.IsAdequate = gov.Safety.Yield >= cylinder.TargetSafetyFactor
	switch {
	case math.IsInf(gov.Safety.Yield, 1):
		result.Message = "Assembly is unstressed"
	case gov.Safety.Yield < 1:
		result.Message = fmt.Sprintf("Assembly yields at %s - SFy=%.2f < 1.00", gov.Location, gov.Safety.Yield)
	case !result.IsAdequate:
		result.Message = fmt.Sprintf("Below target margin at %s - SFy=%.2f < %.2f", gov.Location, gov.Safety.Yield, cylinder.TargetSafetyFactor)
	default:
		result.Message = fmt.Sprintf("Design OK - governing %s, SFy=%.2f", gov.Location, gov.Safety.Yield)
	}
	for _, n := range result.Notes {
		result.Message += "; note: " + n
	}

	return result, nil
}

func evaluate(res *Result, loc Location) (LocationResult, error) {
	region := loc.Region()
	r := loc.Radius(res.InterfaceRadius)

	s, err := res.Field(region).At(r)
	if err != nil {
		return LocationResult{}, err
	}

	m := res.Params.BarrelMaterial
	if region == Trunnion {
		m = res.Params.TrunnionMaterial
	}

	vm := s.Combined.VonMises()
	sf, err := cylinder.SafetyFor(vm, m)
	if err != nil {
		return LocationResult{}, err
	}

	return LocationResult{
		Location: loc,
		Region:   region,
		Radius:   r,
		Stress:   s,
		VonMises: vm,
		Safety:   sf,
	}, nil
}

func (a Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
