package tolerance

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

type fakeTables struct {
	spec Spec
	err  error

	standard, fitClass string
	diameter           float64
}

func (f *fakeTables) Tolerance(standard, fitClass string, diameter float64) (Spec, error) {
	f.standard, f.fitClass, f.diameter = standard, fitClass, diameter
	return f.spec, f.err
}

type fakePressures map[string]float64

func (f fakePressures) PressureFactor(standard string) (float64, error) {
	v, ok := f[standard]
	if !ok {
		return 0, errors.New("unknown standard " + standard)
	}
	return v, nil
}

func ptr(v float64) *float64 { return &v }

func baseRequest() Request {
	return Request{
		Geometry: domain.Geometry{Ri: 25, Ro: 50},
		Pressure: 100,
		Material: domain.Material{Sy: 800, Su: 1000},
	}
}

func TestAnalyzeOrdering(t *testing.T) {
	specs := []Spec{
		Symmetric(20, 15),
		{Bore: Deviation{Upper: 25, Lower: 0}, Shaft: Deviation{Upper: 0, Lower: -16}}, // H7/h6 at 50 mm
		{Bore: Deviation{Upper: 100, Lower: -10}, Shaft: Deviation{Upper: 5, Lower: -80}},
	}

	for _, spec := range specs {
		spec := spec
		req := baseRequest()
		req.Spec = &spec
		req.PressureFactor = ptr(0.1)

		res, err := NewAnalyzer(nil, nil).Analyze(req)
		if err != nil {
			t.Fatalf("spec %+v: unexpected error: %v", spec, err)
		}

		w, n, b := res.WorstCase, res.Nominal, res.BestCase
		if !(w.WallThickness <= n.WallThickness && n.WallThickness <= b.WallThickness) {
			t.Fatalf("spec %+v: wall ordering violated: %v, %v, %v", spec, w.WallThickness, n.WallThickness, b.WallThickness)
		}
		if !(w.Analysis.Safety.Yield <= n.Analysis.Safety.Yield) {
			t.Fatalf("spec %+v: worst-case margin above nominal", spec)
		}
		if !(res.Degradation > 0 && res.Degradation <= 1) {
			t.Fatalf("spec %+v: degradation=%v", spec, res.Degradation)
		}
	}
}

func TestAnalyzeDimensionsAndPressures(t *testing.T) {
	req := baseRequest()
	spec := Spec{Bore: Deviation{Upper: 30, Lower: 0}, Shaft: Deviation{Upper: -10, Lower: -29}}
	req.Spec = &spec
	req.PressureFactor = ptr(0.05)

	res, err := NewAnalyzer(nil, nil).Analyze(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		got, want float64
	}{
		{"worst ri", res.WorstCase.Geometry.Ri, 25.030},
		{"worst ro", res.WorstCase.Geometry.Ro, 49.971},
		{"best ri", res.BestCase.Geometry.Ri, 25},
		{"best ro", res.BestCase.Geometry.Ro, 49.990},
		{"worst pressure", res.WorstCase.Load.Pi, 105},
		{"best pressure", res.BestCase.Load.Pi, 95},
		{"nominal pressure", res.Nominal.Load.Pi, 100},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Fatalf("%s=%v, want %v", tt.name, tt.got, tt.want)
		}
	}

	want := res.WorstCase.Analysis.Safety.Yield / res.Nominal.Analysis.Safety.Yield
	if res.Degradation != want {
		t.Fatalf("degradation=%v, want %v", res.Degradation, want)
	}
}

func TestAnalyzeUsesProviders(t *testing.T) {
	tables := &fakeTables{spec: Symmetric(10, 10)}
	a := NewAnalyzer(tables, fakePressures{"SAAMI": 0.05})

	req := baseRequest()
	req.Standard, req.FitClass, req.PressureStandard = "ISO286", "H7/h6", "SAAMI"

	res, err := a.Analyze(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables.standard != "ISO286" || tables.fitClass != "H7/h6" || tables.diameter != 50 {
		t.Fatalf("unexpected lookup: %s %s %v", tables.standard, tables.fitClass, tables.diameter)
	}
	if res.PressureFactor != 0.05 || res.Spec != Symmetric(10, 10) {
		t.Fatalf("provider values not used: %+v", res)
	}
}

func TestAnalyzeProviderFailuresAreWrapped(t *testing.T) {
	lookup := errors.New("no such fit")
	a := NewAnalyzer(&fakeTables{err: lookup}, fakePressures{})

	if _, err := a.Analyze(baseRequest()); !errors.Is(err, lookup) {
		t.Fatalf("expected lookup error in chain, got=%v", err)
	}

	a = NewAnalyzer(&fakeTables{spec: Symmetric(1, 1)}, fakePressures{})
	req := baseRequest()
	req.PressureStandard = "unknown"
	if _, err := a.Analyze(req); err == nil {
		t.Fatalf("expected pressure factor error")
	}

	if _, err := NewAnalyzer(nil, nil).Analyze(baseRequest()); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got=%v", err)
	}
}

func TestAnalyzeNegativeWallThickness(t *testing.T) {
	req := baseRequest()
	req.Geometry = domain.Geometry{Ri: 10, Ro: 10.01}
	spec := Spec{Bore: Deviation{Upper: 20, Lower: 0}, Shaft: Deviation{Upper: 0, Lower: -5}}
	req.Spec = &spec
	req.PressureFactor = ptr(0)

	_, err := NewAnalyzer(nil, nil).Analyze(req)
	if !domain.IsKind(err, domain.KindNegativeWallThickness) {
		t.Fatalf("expected negative wall thickness, got=%v", err)
	}
}

func TestAnalyzeRejectsBadInputs(t *testing.T) {
	spec := Symmetric(10, 10)
	tests := []struct {
		name   string
		mutate func(*Request)
		kind   domain.Kind
	}{
		{"factor of one", func(r *Request) { r.PressureFactor = ptr(1) }, domain.KindInvalidLoad},
		{"negative factor", func(r *Request) { r.PressureFactor = ptr(-0.1) }, domain.KindInvalidLoad},
		{"inverted deviation", func(r *Request) {
			bad := Spec{Bore: Deviation{Upper: -5, Lower: 5}}
			r.Spec = &bad
		}, domain.KindInvalidGeometry},
		{"bad nominal geometry", func(r *Request) { r.Geometry.Ro = 1 }, domain.KindInvalidGeometry},
		{"negative pressure", func(r *Request) { r.Pressure = -1 }, domain.KindInvalidLoad},
		{"bad material", func(r *Request) { r.Material.Su = 1 }, domain.KindInvalidMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.Spec = &spec
			req.PressureFactor = ptr(0.1)
			tt.mutate(&req)

			_, err := NewAnalyzer(nil, nil).Analyze(req)
			if !domain.IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got=%v", tt.kind, err)
			}
		})
	}
}

func TestDegradationUnloaded(t *testing.T) {
	if got := degradation(math.Inf(1), math.Inf(1)); got != 1 {
		t.Fatalf("expected 1 for two unstressed cases, got=%v", got)
	}
}
