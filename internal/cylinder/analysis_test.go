package cylinder

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

func TestAnalyzeScenarioB(t *testing.T) {
	in := Input{
		Geometry: domain.Geometry{Ri: 75, Ro: 150},
		Load:     domain.Load{Pi: 400},
		Material: domain.Material{Sy: 800, Su: 1000},
	}

	res, err := Analyze(in, DefaultBurstSolver())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !(res.BurstPressure > 400 && res.BurstPressure < 4000) {
		t.Fatalf("burst pressure=%v, want in (400, 4000)", res.BurstPressure)
	}
	if !(res.Safety.Yield > 0.5 && res.Safety.Yield < 10) {
		t.Fatalf("SFy=%v, want in (0.5, 10)", res.Safety.Yield)
	}
	if !(res.YieldPressure < res.BurstPressure) {
		t.Fatalf("yield pressure %v must be below burst pressure %v", res.YieldPressure, res.BurstPressure)
	}
	if res.IsAdequate {
		t.Fatalf("a bore that yields at operating pressure must not be adequate")
	}
	if !near(res.Inner.SigmaR, -400, 1e-6) || !near(res.Outer.SigmaR, 0, 1e-6) {
		t.Fatalf("boundary conditions violated: inner=%+v outer=%+v", res.Inner, res.Outer)
	}
	if res.Outer.VonMises() >= res.InnerVonMises {
		t.Fatalf("the bore must govern")
	}
}

func TestAnalyzePressureTargets(t *testing.T) {
	g := domain.Geometry{Ri: 75, Ro: 150}
	m := domain.Material{Sy: 800, Su: 1000}
	res, err := Analyze(Input{Geometry: g, Load: domain.Load{Pi: 400}, Material: m}, DefaultBurstSolver())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		pressure float64
		strength float64
	}{
		{"yield pressure reaches Sy", res.YieldPressure, m.Sy},
		{"burst pressure reaches Su", res.BurstPressure, m.Su},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := boreVonMises(t, g, tt.pressure, 0, domain.OpenEnds)
			if !near(vm, tt.strength, 1e-6) {
				t.Fatalf("bore σvm=%v at p=%v, want %v", vm, tt.pressure, tt.strength)
			}
		})
	}
}

func TestAnalyzeAdequateDesign(t *testing.T) {
	in := Input{
		Geometry: domain.Geometry{Ri: 25, Ro: 50},
		Load:     domain.Load{Pi: 100},
		Material: domain.Material{Sy: 800, Su: 1000},
	}

	res, err := Analyze(in, DefaultBurstSolver())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsAdequate {
		t.Fatalf("expected adequate design, got %q", res.Message)
	}
	if !near(res.Safety.Yield, 800/(700.0/3), 1e-9) {
		t.Fatalf("SFy=%v", res.Safety.Yield)
	}
}

func TestAnalyzeUnloaded(t *testing.T) {
	in := Input{
		Geometry: domain.Geometry{Ri: 25, Ro: 50},
		Material: domain.Material{Sy: 800, Su: 1000},
	}

	res, err := Analyze(in, DefaultBurstSolver())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(res.Safety.Yield, 1) {
		t.Fatalf("expected infinite margin, got=%v", res.Safety.Yield)
	}
}

func TestAnalyzeWrapsStageFailures(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		kind domain.Kind
	}{
		{
			"geometry",
			Input{Geometry: domain.Geometry{Ri: 10, Ro: 5}, Load: domain.Load{Pi: 1}, Material: domain.Material{Sy: 1, Su: 2}},
			domain.KindInvalidGeometry,
		},
		{
			"load",
			Input{Geometry: domain.Geometry{Ri: 5, Ro: 10}, Load: domain.Load{Pi: -1}, Material: domain.Material{Sy: 1, Su: 2}},
			domain.KindInvalidLoad,
		},
		{
			"material",
			Input{Geometry: domain.Geometry{Ri: 5, Ro: 10}, Load: domain.Load{Pi: 1}, Material: domain.Material{Sy: 2, Su: 1}},
			domain.KindInvalidMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.in, DefaultBurstSolver())
			if domain.KindOf(err) != tt.kind {
				t.Fatalf("expected outer kind %s, got=%v", tt.kind, err)
			}
		})
	}
}

func TestProfileEndpoints(t *testing.T) {
	g := domain.Geometry{Ri: 25, Ro: 50}
	states, err := Profile(g, domain.Load{Pi: 100, Po: 5}, 11, domain.OpenEnds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(states) != 11 {
		t.Fatalf("expected 11 samples, got=%d", len(states))
	}
	if states[0].Radius != 25 || states[10].Radius != 50 {
		t.Fatalf("unexpected radii: %v .. %v", states[0].Radius, states[10].Radius)
	}
	if !near(states[0].SigmaR, -100, 1e-6) || !near(states[10].SigmaR, -5, 1e-6) {
		t.Fatalf("boundary conditions violated")
	}
	for i := 1; i < len(states); i++ {
		if states[i].SigmaTheta > states[i-1].SigmaTheta {
			t.Fatalf("hoop stress must fall with radius under net internal pressure")
		}
	}

	if _, err := Profile(g, domain.Load{Pi: 1}, 1, domain.OpenEnds); !domain.IsKind(err, domain.KindInvalidGeometry) {
		t.Fatalf("expected invalid geometry for n=1, got=%v", err)
	}
}
