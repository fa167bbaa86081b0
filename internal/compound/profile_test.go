package compound

import (
	"testing"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

func TestResultProfile(t *testing.T) {
	res, err := Analyze(shrinkFit(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	states, err := res.Profile(11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(states) != 22 {
		t.Fatalf("expected 22 samples, got %d", len(states))
	}

	bore, outer := states[0], states[len(states)-1]
	if bore.Radius != 5 || !near(bore.SigmaR, -300, 1e-6) {
		t.Fatalf("bore should carry the operating pressure: %+v", bore)
	}
	if outer.Radius != 20 || !near(outer.SigmaR, 0, 1e-6) {
		t.Fatalf("free outer surface should have no radial stress: %+v", outer)
	}

	// both bodies carry the contact pressure across the interface
	bIface, tIface := states[10], states[11]
	if !near(bIface.SigmaR, -res.ContactPressure, 1e-6) || !near(tIface.SigmaR, -res.ContactPressure, 1e-6) {
		t.Fatalf("interface radial stress should be -pc=%g: barrel %+v trunnion %+v", -res.ContactPressure, bIface, tIface)
	}
	if tIface.Radius > bIface.Radius {
		t.Fatalf("trunnion should start at its own bore: barrel %g, trunnion %g", bIface.Radius, tIface.Radius)
	}

	if _, err := res.Profile(1); !domain.IsKind(err, domain.KindInvalidGeometry) {
		t.Fatalf("expected invalid geometry for n=1, got %v", err)
	}
}
