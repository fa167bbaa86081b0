package refdata

import "github.com/alexiusacademia/gobarrel/internal/tolerance"

// Built-in reference data, used when no data directory is configured or a
// file is absent from it.

func builtinMaterials() YAMLMaterials {
	return YAMLMaterials{Materials: []Material{
		{Name: "4140", Sy: 655, Su: 1020, E: 205, Nu: 0.29, Density: 7850},
		{Name: "4150", Sy: 862, Su: 1034, E: 205, Nu: 0.29, Density: 7850},
		{Name: "416R", Sy: 758, Su: 896, E: 200, Nu: 0.28, Density: 7750},
		{Name: "17-4PH H900", Sy: 1170, Su: 1310, E: 197, Nu: 0.27, Density: 7800},
		{Name: "Ti-6Al-4V", Sy: 880, Su: 950, E: 113.8, Nu: 0.342, Density: 4430},
		{Name: "7075-T6", Sy: 503, Su: 572, E: 71.7, Nu: 0.33, Density: 2810},
	}}
}

func builtinCartridges() YAMLCartridges {
	return YAMLCartridges{Cartridges: []Cartridge{
		{Name: "9x19mm Parabellum", Standard: "CIP", MaxPressure: 235, BoreDiameter: 9.02},
		{Name: ".223 Remington", Standard: "SAAMI", MaxPressure: 379, BoreDiameter: 5.56},
		{Name: "5.56x45mm NATO", Standard: "CIP", MaxPressure: 430, BoreDiameter: 5.56},
		{Name: ".308 Winchester", Standard: "SAAMI", MaxPressure: 415, BoreDiameter: 7.62},
		{Name: ".300 Winchester Magnum", Standard: "SAAMI", MaxPressure: 441, BoreDiameter: 7.62},
		{Name: ".50 BMG", Standard: "SAAMI", MaxPressure: 379, BoreDiameter: 12.7},
	}}
}

func builtinPressure() YAMLPressure {
	return YAMLPressure{Standards: map[string]float64{
		"SAAMI": 0.05,
		"CIP":   0.10,
		"MIL":   0.08,
	}}
}

// ISO 286-2 deviations, tabulated at the upper bound of each size range.
func builtinTolerances() YAMLTolerances {
	diameters := []float64{10, 18, 30, 50, 80, 120, 180}
	h7 := [][2]float64{{15, 0}, {18, 0}, {21, 0}, {25, 0}, {30, 0}, {35, 0}, {40, 0}}
	shafts := map[string][][2]float64{
		"h6": {{0, -9}, {0, -11}, {0, -13}, {0, -16}, {0, -19}, {0, -22}, {0, -25}},
		"g6": {{-5, -14}, {-6, -17}, {-7, -20}, {-9, -25}, {-10, -29}, {-12, -34}, {-14, -39}},
		"p6": {{24, 15}, {29, 18}, {35, 22}, {42, 26}, {51, 32}, {59, 37}, {68, 43}},
		"s6": {{32, 23}, {39, 28}, {48, 35}, {59, 43}, {78, 59}, {101, 79}, {133, 108}},
	}

	var out YAMLTolerances
	for _, shaft := range []string{"g6", "h6", "p6", "s6"} {
		t := YAMLFitTable{Standard: "ISO286", FitClass: "H7/" + shaft}
		for i, d := range diameters {
			t.Rows = append(t.Rows, YAMLFitRow{
				Diameter: d,
				Bore:     tolerance.Deviation{Upper: h7[i][0], Lower: h7[i][1]},
				Shaft:    tolerance.Deviation{Upper: shafts[shaft][i][0], Lower: shafts[shaft][i][1]},
			})
		}
		out.Tables = append(out.Tables, t)
	}
	return out
}
