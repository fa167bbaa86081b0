package cylinder

import (
	"math"
	"testing"
)

func TestVonMises(t *testing.T) {
	tests := []struct {
		name       string
		sr, st, sa float64
		want       float64
	}{
		{"pure hoop", 0, 100, 0, 100},
		{"uniaxial radial", -50, 0, 0, 50},
		{"hydrostatic", 70, 70, 70, 0},
		{"pure shear equivalent", -100, 100, 0, 100 * math.Sqrt(3)},
		{"thick cylinder bore k=2", -100, 500.0 / 3, 0, 700.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VonMises(tt.sr, tt.st, tt.sa)
			if !near(got, tt.want, 0.1) {
				t.Fatalf("VonMises(%v, %v, %v)=%v, want %v", tt.sr, tt.st, tt.sa, got, tt.want)
			}
		})
	}
}

func TestVonMisesIsSymmetric(t *testing.T) {
	a := VonMises(12, -40, 7)
	b := VonMises(7, 12, -40)
	c := VonMises(-40, 7, 12)
	if !near(a, b, 1e-9) || !near(b, c, 1e-9) {
		t.Fatalf("expected permutation invariance, got %v %v %v", a, b, c)
	}
}
