package compound

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/domain"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func shrinkFit(interference float64) Params {
	return Params{
		Barrel:            elastic(5, 10),
		Trunnion:          elastic(10-interference, 20),
		BarrelMaterial:    domain.Material{Sy: 1000, Su: 1200},
		TrunnionMaterial:  domain.Material{Sy: 700, Su: 900},
		Interference:      interference,
		OperatingPressure: 300,
	}
}

func TestAnalyzeSuperpositionLaw(t *testing.T) {
	res, err := Analyze(shrinkFit(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range []Field{res.Barrel, res.Trunnion} {
		s, err := f.At(res.InterfaceRadius)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !near(s.Combined.SigmaR, s.Preload.SigmaR+s.Operating.SigmaR, 1e-6) {
			t.Fatalf("%s: radial superposition violated", f.Region)
		}
		if !near(s.Combined.SigmaTheta, s.Preload.SigmaTheta+s.Operating.SigmaTheta, 1e-6) {
			t.Fatalf("%s: hoop superposition violated", f.Region)
		}
	}
}

func TestAnalyzePreloadBoundaryConditions(t *testing.T) {
	p := shrinkFit(0.01)
	res, err := Analyze(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pc := res.ContactPressure

	b, _ := res.Barrel.At(p.Barrel.Ro)
	tr, _ := res.Trunnion.At(p.Trunnion.Ri)
	if !near(b.Preload.SigmaR, -pc, 1e-6) || !near(tr.Preload.SigmaR, -pc, 1e-6) {
		t.Fatalf("interface radial preload must equal -pc=%v: barrel=%v trunnion=%v", -pc, b.Preload.SigmaR, tr.Preload.SigmaR)
	}

	bore, _ := res.Barrel.At(p.Barrel.Ri)
	if !(bore.Preload.SigmaTheta < 0) {
		t.Fatalf("the shrink fit must put the bore in hoop compression, got=%v", bore.Preload.SigmaTheta)
	}
	if !near(bore.Operating.SigmaR, -p.OperatingPressure, 1e-6) {
		t.Fatalf("operating bore radial stress must equal -p")
	}
}

func TestAnalyzeZeroInterferenceMatchesSingleCylinder(t *testing.T) {
	p := shrinkFit(0)
	p.ExternalPressure = 2
	res, err := Analyze(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ContactPressure != 0 {
		t.Fatalf("expected no contact pressure, got=%v", res.ContactPressure)
	}

	single, err := cylinder.Profile(p.Barrel.Geometry, domain.Load{Pi: p.OperatingPressure, Po: p.ExternalPressure}, 25, domain.OpenEnds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range single {
		got, err := res.Barrel.At(want.Radius)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !near(got.Combined.SigmaR, want.SigmaR, 1e-9) || !near(got.Combined.SigmaTheta, want.SigmaTheta, 1e-9) {
			t.Fatalf("r=%v: combined=%+v, single=%+v", want.Radius, got.Combined, want)
		}
	}
}

func TestAnalyzeLocations(t *testing.T) {
	res, err := Analyze(shrinkFit(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantRadius := map[Location]float64{
		BarrelNearInterface: 9.99,
		InterfaceBarrel:     10,
		InterfaceTrunnion:   10,
		TrunnionOuter:       15,
	}
	for _, loc := range Locations {
		lr := res.Locations[loc]
		if lr.Location != loc || lr.Region != loc.Region() {
			t.Fatalf("%s: mislabelled result %+v", loc, lr)
		}
		if !near(lr.Radius, wantRadius[loc], 1e-12) {
			t.Fatalf("%s: radius=%v, want %v", loc, lr.Radius, wantRadius[loc])
		}
		if !near(lr.VonMises, lr.Stress.Combined.VonMises(), 1e-12) {
			t.Fatalf("%s: equivalent stress must come from the combined state", loc)
		}
		if lr.Safety.Yield < res.Locations[res.Governing].Safety.Yield {
			t.Fatalf("%s is below the governing location", loc)
		}
	}

	tr := res.Locations[InterfaceTrunnion]
	if !near(tr.Safety.Yield, 700/tr.VonMises, 1e-12) {
		t.Fatalf("trunnion locations must use the trunnion material")
	}
	if res.Message == "" {
		t.Fatalf("expected a status message")
	}
}

func TestAnalyzeWrapsFailures(t *testing.T) {
	p := shrinkFit(0.01)
	p.Trunnion.Ri = 9.5

	_, err := Analyze(p)
	if !domain.IsKind(err, domain.KindCompoundAnalysis) {
		t.Fatalf("expected compound analysis failure, got=%v", err)
	}
	if !domain.IsKind(err, domain.KindIncompatibleGeometry) {
		t.Fatalf("expected incompatible geometry inside, got=%v", err)
	}

	p = shrinkFit(0.01)
	p.OperatingPressure = -5
	_, err = Analyze(p)
	if !domain.IsKind(err, domain.KindCompoundAnalysis) || !domain.IsKind(err, domain.KindInvalidLoad) {
		t.Fatalf("expected wrapped invalid load, got=%v", err)
	}
}

func TestLocationEnumerationIsClosed(t *testing.T) {
	for _, loc := range Locations {
		if loc.String() == "unknown" {
			t.Fatalf("location %d has no name", loc)
		}
		if r := loc.Region(); r != Barrel && r != Trunnion {
			t.Fatalf("location %s has no region", loc)
		}
	}
	if len(Locations) != int(NumLocations) {
		t.Fatalf("location table out of date")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assembly.json")
	body := `{
  "name": "rifle barrel",
  "barrel": {"ri": 5, "ro": 10, "e": 200000, "nu": 0.3},
  "trunnion": {"ri": 9.99, "ro": 20, "e": 200000, "nu": 0.3},
  "barrel_material": {"sy": 1000, "su": 1200},
  "trunnion_material": {"sy": 700, "su": 900},
  "interference": 0.01,
  "operating_pressure": 300,
  "end_condition": "closed"
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "rifle barrel" || p.Trunnion.Ri != 9.99 || p.EndCondition != domain.ClosedEnds {
		t.Fatalf("unexpected params: %+v", p)
	}

	bad := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(bad, []byte(`{"barrel": {"ri": 5, "ro": 10, "e": 200000, "nu": 0.3}, "trunnion": {"ri": 8, "ro": 20, "e": 200000, "nu": 0.3}, "interference": 0.01}`), 0o644)
	if _, err := LoadFromFile(bad); !domain.IsKind(err, domain.KindIncompatibleGeometry) {
		t.Fatalf("expected incompatible geometry, got=%v", err)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestAnalyzeNotesTrunnionOuterOutsideBody(t *testing.T) {
	// 1.5·R_if = 15 mm lies inside a 20 mm trunnion
	res, err := Analyze(shrinkFit(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Notes) != 0 {
		t.Fatalf("expected no notes, got %v", res.Notes)
	}

	// ...but outside a 12 mm one
	p := shrinkFit(0.01)
	p.Trunnion = elastic(10-0.01, 12)
	res, err = Analyze(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Notes) != 1 || !strings.Contains(res.Notes[0], "outside the trunnion") {
		t.Fatalf("expected an outside-body note, got %v", res.Notes)
	}
	if !strings.Contains(res.Message, "outside the trunnion") {
		t.Fatalf("expected the note in the message, got %q", res.Message)
	}
}
