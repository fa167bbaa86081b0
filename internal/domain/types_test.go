package domain

import (
	"math"
	"testing"
)

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		ok   bool
	}{
		{"valid", Geometry{Ri: 25, Ro: 50}, true},
		{"zero bore", Geometry{Ri: 0, Ro: 50}, false},
		{"negative bore", Geometry{Ri: -1, Ro: 50}, false},
		{"equal radii", Geometry{Ri: 50, Ro: 50}, false},
		{"inverted", Geometry{Ri: 60, Ro: 50}, false},
		{"nan", Geometry{Ri: math.NaN(), Ro: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !IsKind(err, KindInvalidGeometry) {
				t.Fatalf("expected invalid geometry, got=%v", err)
			}
		})
	}
}

func TestLoadValidate(t *testing.T) {
	if err := (Load{Pi: 100, Po: 0}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Load{Pi: -1}).Validate(); !IsKind(err, KindInvalidLoad) {
		t.Fatalf("expected invalid load, got=%v", err)
	}
	if err := (Load{Po: -0.5}).Validate(); !IsKind(err, KindInvalidLoad) {
		t.Fatalf("expected invalid load, got=%v", err)
	}
}

func TestMaterialValidate(t *testing.T) {
	bad := []Material{
		{Sy: 0, Su: 100},
		{Sy: 100, Su: 0},
		{Sy: 800, Su: 700},
	}
	for _, m := range bad {
		if err := m.Validate(); !IsKind(err, KindInvalidMaterial) {
			t.Fatalf("expected invalid material for %+v, got=%v", m, err)
		}
	}
	if err := (Material{Sy: 800, Su: 800}).Validate(); err != nil {
		t.Fatalf("Su == Sy must be accepted: %v", err)
	}
}

func TestElasticCylinderValidate(t *testing.T) {
	ok := ElasticCylinder{Geometry: Geometry{Ri: 5, Ro: 10}, E: 200000, Nu: 0.3}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noE := ok
	noE.E = 0
	if err := noE.Validate(); !IsKind(err, KindInvalidMaterial) {
		t.Fatalf("expected invalid material, got=%v", err)
	}

	incompressible := ok
	incompressible.Nu = 0.5
	if err := incompressible.Validate(); !IsKind(err, KindInvalidMaterial) {
		t.Fatalf("expected invalid material, got=%v", err)
	}

	flat := ok
	flat.Ro = flat.Ri
	if err := flat.Validate(); !IsKind(err, KindInvalidGeometry) {
		t.Fatalf("expected invalid geometry, got=%v", err)
	}
}

func TestStressStateVonMisesNeverNegativeRadicand(t *testing.T) {
	s := StressState{SigmaR: 1e8, SigmaTheta: 1e8, SigmaAxial: 1e8}
	if vm := s.VonMises(); vm < 0 || math.IsNaN(vm) {
		t.Fatalf("expected non-negative equivalent stress, got=%v", vm)
	}
}

func TestEndConditionAxialStress(t *testing.T) {
	c := Coefficients{A: 33.3, B: 1000}
	if OpenEnds.AxialStress(c) != 0 {
		t.Fatalf("open ends carry no axial stress")
	}
	if ClosedEnds.AxialStress(c) != 33.3 {
		t.Fatalf("closed ends carry A")
	}
}

func TestEndConditionText(t *testing.T) {
	var e EndCondition
	if err := e.UnmarshalText([]byte("closed")); err != nil || e != ClosedEnds {
		t.Fatalf("expected closed ends, got=%v err=%v", e, err)
	}
	if err := e.UnmarshalText([]byte("sealed")); err == nil {
		t.Fatalf("expected error for unknown end condition")
	}
	b, _ := OpenEnds.MarshalText()
	if string(b) != "open" {
		t.Fatalf("expected open, got=%s", b)
	}
}
