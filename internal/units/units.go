// Package units formats lengths, stresses and safety factors for display.
// Values are always carried in mm and MPa; only the output is converted.
package units

import (
	"fmt"
	"math"
	"strings"
)

// System selects the display units.
type System int

const (
	Metric   System = iota // mm, MPa
	Imperial               // in, ksi
)

const (
	mmPerInch = 25.4
	mpaPerKsi = 6.894757293168361
)

// ParseSystem accepts "metric" or "imperial" in any case.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return Metric, fmt.Errorf("unknown unit system %q (want metric or imperial)", s)
}

func (s System) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// LengthUnit is the length label, e.g. "mm".
func (s System) LengthUnit() string {
	if s == Imperial {
		return "in"
	}
	return "mm"
}

// StressUnit is the stress and pressure label, e.g. "MPa".
func (s System) StressUnit() string {
	if s == Imperial {
		return "ksi"
	}
	return "MPa"
}

// ConvertLength converts mm to the system's length unit.
func (s System) ConvertLength(mm float64) float64 {
	if s == Imperial {
		return mm / mmPerInch
	}
	return mm
}

// ConvertStress converts MPa to the system's stress unit.
func (s System) ConvertStress(mpa float64) float64 {
	if s == Imperial {
		return mpa / mpaPerKsi
	}
	return mpa
}

// Length formats a length given in mm.
func Length(mm float64, sys System) string {
	if sys == Imperial {
		return fmt.Sprintf("%.4f %s", sys.ConvertLength(mm), sys.LengthUnit())
	}
	return fmt.Sprintf("%.3f %s", mm, sys.LengthUnit())
}

// Stress formats a stress or pressure given in MPa.
func Stress(mpa float64, sys System) string {
	return fmt.Sprintf("%.2f %s", sys.ConvertStress(mpa), sys.StressUnit())
}

// Factor formats a dimensionless safety factor; infinite factors print as ∞.
func Factor(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3f", v)
}
