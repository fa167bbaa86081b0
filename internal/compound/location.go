package compound

// Region is one body of the shrink-fit assembly.
type Region int

const (
	Barrel Region = iota
	Trunnion
)

func (r Region) String() string {
	switch r {
	case Barrel:
		return "barrel"
	case Trunnion:
		return "trunnion"
	}
	return "unknown"
}

// Location is a critical radius evaluated by the analyzer.
type Location int

const (
	// BarrelNearInterface sits just inside the interface (0.999·R).
	BarrelNearInterface Location = iota
	// InterfaceBarrel is the interface radius, barrel side.
	InterfaceBarrel
	// InterfaceTrunnion is the interface radius, trunnion side.
	InterfaceTrunnion
	// TrunnionOuter is a representative outer trunnion radius (1.5·R).
	TrunnionOuter

	NumLocations
)

// Locations lists every critical location in evaluation order.
var Locations = [NumLocations]Location{
	BarrelNearInterface,
	InterfaceBarrel,
	InterfaceTrunnion,
	TrunnionOuter,
}

func (l Location) String() string {
	switch l {
	case BarrelNearInterface:
		return "barrel near interface"
	case InterfaceBarrel:
		return "interface (barrel side)"
	case InterfaceTrunnion:
		return "interface (trunnion side)"
	case TrunnionOuter:
		return "trunnion outer"
	}
	return "unknown"
}

// Region returns the body whose stress field applies at l.
func (l Location) Region() Region {
	switch l {
	case BarrelNearInterface, InterfaceBarrel:
		return Barrel
	case InterfaceTrunnion, TrunnionOuter:
		return Trunnion
	}
	panic("compound: unknown location")
}

// Radius returns the radius of l for an interface radius r (mm).
func (l Location) Radius(r float64) float64 {
	switch l {
	case BarrelNearInterface:
		return 0.999 * r
	case InterfaceBarrel, InterfaceTrunnion:
		return r
	case TrunnionOuter:
		return 1.5 * r
	}
	panic("compound: unknown location")
}
