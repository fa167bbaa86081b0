package cylinder

import (
	"math"

	"github.com/alexiusacademia/gobarrel/internal/domain"
)

// TargetSafetyFactor is the yield margin below which a design is flagged.
const TargetSafetyFactor = 2.0

// SafetyFactors returns Sy/σvm and Su/σvm. An unstressed point has infinite margins.
func SafetyFactors(sigmaVM, sy, su float64) (domain.SafetyFactors, error) {
	if err := (domain.Material{Sy: sy, Su: su}).Validate(); err != nil {
		return domain.SafetyFactors{}, err
	}
	if math.IsNaN(sigmaVM) || sigmaVM < 0 {
		return domain.SafetyFactors{}, domain.Errorf("safety", domain.KindInvalidStress,
			"equivalent stress must be non-negative: sigma_vm=%g MPa", sigmaVM)
	}

	if sigmaVM == 0 {
		return domain.SafetyFactors{Yield: math.Inf(1), Ultimate: math.Inf(1)}, nil
	}
	return domain.SafetyFactors{
		Yield:    sy / sigmaVM,
		Ultimate: su / sigmaVM,
	}, nil
}

// SafetyFor is SafetyFactors for a material value.
func SafetyFor(sigmaVM float64, m domain.Material) (domain.SafetyFactors, error) {
	return SafetyFactors(sigmaVM, m.Sy, m.Su)
}
