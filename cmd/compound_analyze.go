package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/compound"
	"github.com/alexiusacademia/gobarrel/internal/diagram"
	"github.com/alexiusacademia/gobarrel/internal/domain"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

var (
	compoundAnalyzeFile        string
	compoundRi                 float64
	compoundInterface          float64
	compoundRo                 float64
	compoundInterference       float64
	compoundBarrelMaterial     string
	compoundTrunnionMaterial   string
	compoundPressure           float64
	compoundExternal           float64
	compoundClosedEnds         bool
	compoundAnalyzeShowDiagram bool
	compoundAnalyzeExportFile  string
)

var compoundAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a shrink-fit barrel and trunnion",
	Long: `Calculate the contact pressure from the radial interference,
superpose the preload and operating stress fields and evaluate the
Von Mises safety factors at the critical locations.

The trunnion bore is the interface radius minus the interference.

Examples:
  gobarrel compound analyze --ri 2.85 --interface 8 --ro 14 --interference 0.01 \
      --barrel-material 4150 --trunnion-material 4140 -p 380
  gobarrel compound analyze --file assembly.json --diagram`,
	RunE: runCompoundAnalyze,
}

func init() {
	compoundCmd.AddCommand(compoundAnalyzeCmd)

	f := compoundAnalyzeCmd.Flags()
	f.StringVarP(&compoundAnalyzeFile, "file", "f", "", "Path to assembly JSON file")
	f.Float64Var(&compoundRi, "ri", 0, "Barrel bore radius in mm")
	f.Float64Var(&compoundInterface, "interface", 0, "Interface radius (barrel outer radius) in mm")
	f.Float64Var(&compoundRo, "ro", 0, "Trunnion outer radius in mm")
	f.Float64VarP(&compoundInterference, "interference", "i", 0, "Radial interference in mm")
	f.StringVar(&compoundBarrelMaterial, "barrel-material", "", "Barrel material name from the catalogue")
	f.StringVar(&compoundTrunnionMaterial, "trunnion-material", "", "Trunnion material name from the catalogue")
	f.Float64VarP(&compoundPressure, "pressure", "p", 0, "Operating (chamber) pressure in MPa")
	f.Float64Var(&compoundExternal, "external", 0, "External pressure in MPa")
	f.BoolVar(&compoundClosedEnds, "closed-ends", false, "Include the closed-end axial stress in the operating field")
	compoundAnalyzeCmd.MarkFlagsMutuallyExclusive("file", "ri")
	compoundAnalyzeCmd.MarkFlagsMutuallyExclusive("file", "barrel-material")

	// Diagram options
	f.BoolVar(&compoundAnalyzeShowDiagram, "diagram", false, "Show ASCII stress profile across both bodies")
	f.StringVarP(&compoundAnalyzeExportFile, "output", "o", "", "Export stress profile to file (png, svg, pdf)")
}

func runCompoundAnalyze(cmd *cobra.Command, args []string) error {
	params, err := compoundParams(cmd)
	if err != nil {
		return fmt.Errorf("loading assembly: %w", err)
	}

	result, err := compound.Analyzer{Logger: slog.Default()}.Analyze(*params)
	if err != nil {
		return fmt.Errorf("analyzing assembly: %w", err)
	}

	out := cmd.OutOrStdout()
	sys := unitSystem()
	p := result.Params

	printHeader(out, "COMPOUND CYLINDER ANALYSIS - SHRINK FIT")

	if p.Name != "" {
		fmt.Fprintf(out, "  Assembly: %s\n", p.Name)
	}
	if p.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", p.Description)
	}
	if p.Name != "" || p.Description != "" {
		fmt.Fprintln(out)
	}

	// Geometry and materials
	printSection(out, "BODIES")
	w := newTabWriter(out)
	fmt.Fprintf(w, "  Body\tri\tro\tE\tν\tSy\tSu\n")
	fmt.Fprintf(w, "  ────\t──\t──\t─\t─\t──\t──\n")
	bodies := []struct {
		name string
		c    domain.ElasticCylinder
		m    domain.Material
	}{
		{"Barrel", p.Barrel, p.BarrelMaterial},
		{"Trunnion", p.Trunnion, p.TrunnionMaterial},
	}
	for _, b := range bodies {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.3f\t%s\t%s\n", b.name,
			units.Length(b.c.Ri, sys), units.Length(b.c.Ro, sys), units.Stress(b.c.E, sys), b.c.Nu,
			units.Stress(b.m.Sy, sys), units.Stress(b.m.Su, sys))
	}
	w.Flush()
	fmt.Fprintln(out)

	// Fit
	printSection(out, "INTERFERENCE FIT")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  Radial interference (δ):\t%s\n", units.Length(p.Interference, sys))
	fmt.Fprintf(w, "  Interface radius:\t%s\n", units.Length(result.InterfaceRadius, sys))
	fmt.Fprintf(w, "  Contact pressure (pc):\t%s\n", units.Stress(result.ContactPressure, sys))
	fmt.Fprintf(w, "  Operating pressure:\t%s\n", units.Stress(p.OperatingPressure, sys))
	fmt.Fprintf(w, "  External pressure:\t%s\n", units.Stress(p.ExternalPressure, sys))
	fmt.Fprintf(w, "  Ends:\t%s\n", p.EndCondition)
	w.Flush()
	fmt.Fprintln(out)

	// Critical locations
	printSection(out, "CRITICAL LOCATIONS (PRELOAD + OPERATING)")
	w = newTabWriter(out)
	printStressHeader(w)
	for _, loc := range compound.Locations {
		lr := result.Locations[loc]
		label := loc.String()
		if loc == result.Governing {
			label += " ◄"
		}
		printStressRow(w, label, lr.Stress.Combined, lr.Safety, sys)
	}
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "PRELOAD CONTRIBUTION")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  Location\tσr (preload)\tσθ (preload)\tσθ (operating)\n")
	fmt.Fprintf(w, "  ────────\t────────────\t────────────\t──────────────\n")
	for _, loc := range compound.Locations {
		s := result.Locations[loc].Stress
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", loc,
			units.Stress(s.Preload.SigmaR, sys), units.Stress(s.Preload.SigmaTheta, sys), units.Stress(s.Operating.SigmaTheta, sys))
	}
	w.Flush()
	fmt.Fprintln(out)

	gov := result.Locations[result.Governing]
	fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING LOCATION", []string{
		fmt.Sprintf("%s (%s)", gov.Location, gov.Region),
		fmt.Sprintf("σvm = %s", units.Stress(gov.VonMises, sys)),
		fmt.Sprintf("SFy = %s   SFu = %s", units.Factor(gov.Safety.Yield), units.Factor(gov.Safety.Ultimate)),
	}))
	fmt.Fprintln(out)

	printStatus(out, result.IsAdequate, result.Message)

	if compoundAnalyzeShowDiagram || compoundAnalyzeExportFile != "" {
		states, err := result.Profile(defaultSamples)
		if err != nil {
			return fmt.Errorf("sampling profile: %w", err)
		}
		data := diagram.ProfileData{
			Title:  "Combined stresses",
			States: states,
			Marks:  []diagram.Mark{{Radius: result.InterfaceRadius, Label: "interface"}},
			Units:  sys,
		}
		return showProfile(cmd, data, compoundAnalyzeShowDiagram, compoundAnalyzeExportFile)
	}
	return nil
}

// compoundParams reads the assembly from --file or builds it from the
// geometry flags and catalogue materials.
func compoundParams(cmd *cobra.Command) (*compound.Params, error) {
	if compoundAnalyzeFile != "" {
		return compound.LoadFromFile(compoundAnalyzeFile)
	}

	fs := cmd.Flags()
	if err := requireAll(fs, "ri", "interface", "ro", "interference", "barrel-material", "trunnion-material"); err != nil {
		return nil, fmt.Errorf("%w (or use --file)", err)
	}

	bm, err := repo.Material(compoundBarrelMaterial)
	if err != nil {
		return nil, err
	}
	tm, err := repo.Material(compoundTrunnionMaterial)
	if err != nil {
		return nil, err
	}

	p := &compound.Params{
		Barrel:            bm.Elastic(domain.Geometry{Ri: compoundRi, Ro: compoundInterface}),
		Trunnion:          tm.Elastic(domain.Geometry{Ri: compoundInterface - compoundInterference, Ro: compoundRo}),
		BarrelMaterial:    bm.Strength(),
		TrunnionMaterial:  tm.Strength(),
		Interference:      compoundInterference,
		OperatingPressure: compoundPressure,
		ExternalPressure:  compoundExternal,
		EndCondition:      endCondition(compoundClosedEnds),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
