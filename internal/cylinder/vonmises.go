package cylinder

import "github.com/alexiusacademia/gobarrel/internal/domain"

// VonMises combines radial, hoop and axial stress into the equivalent stress
//
//	√(σθ² + σr² + σa² − σθσr − σθσa − σrσa)
func VonMises(sigmaR, sigmaTheta, sigmaAxial float64) float64 {
	return domain.StressState{
		SigmaR:     sigmaR,
		SigmaTheta: sigmaTheta,
		SigmaAxial: sigmaAxial,
	}.VonMises()
}
