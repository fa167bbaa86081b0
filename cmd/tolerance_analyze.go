package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/tolerance"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

var (
	toleranceFlags            cylinderFlags
	toleranceBoreUpper        float64
	toleranceBoreLower        float64
	toleranceShaftUpper       float64
	toleranceShaftLower       float64
	toleranceStandard         string
	toleranceFitClass         string
	tolerancePressureFactor   float64
	tolerancePressureStandard string
)

var toleranceAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a barrel wall across its tolerance band",
	Long: `Run the single-cylinder analysis three times:

  nominal     - nominal radii at nominal pressure
  worst case  - largest bore, smallest outer radius, pressure × (1 + factor)
  best case   - smallest bore, largest outer radius, pressure × (1 − factor)

and report how much of the yield margin the tolerances consume.

Examples:
  gobarrel tolerance analyze --ri 10 --ro 20 -p 100 -m 4140 --fit H7/h6 --pressure-standard SAAMI
  gobarrel tolerance analyze -c ".308 Winchester" --ro 14 -m 416R \
      --bore-upper 25 --shaft-lower -16 --pressure-factor 0.1`,
	RunE: runToleranceAnalyze,
}

func init() {
	toleranceCmd.AddCommand(toleranceAnalyzeCmd)

	f := toleranceAnalyzeCmd.Flags()
	toleranceFlags.register(f)
	toleranceAnalyzeCmd.MarkFlagRequired("ro")

	f.Float64Var(&toleranceBoreUpper, "bore-upper", 0, "Bore upper deviation in µm")
	f.Float64Var(&toleranceBoreLower, "bore-lower", 0, "Bore lower deviation in µm")
	f.Float64Var(&toleranceShaftUpper, "shaft-upper", 0, "Outer diameter upper deviation in µm")
	f.Float64Var(&toleranceShaftLower, "shaft-lower", 0, "Outer diameter lower deviation in µm")
	f.StringVar(&toleranceStandard, "standard", "ISO286", "Tolerance standard for --fit")
	f.StringVar(&toleranceFitClass, "fit", "", "Fit class looked up at the bore diameter (e.g. H7/h6)")
	f.Float64Var(&tolerancePressureFactor, "pressure-factor", 0, "Fractional pressure variation in [0, 1)")
	f.StringVar(&tolerancePressureStandard, "pressure-standard", "", "Pressure standard (defaults to the cartridge's)")
}

func runToleranceAnalyze(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	in, cart, err := toleranceFlags.input(fs)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	req := tolerance.Request{
		Geometry:         in.Geometry,
		Pressure:         in.Load.Pi,
		ExternalPressure: in.Load.Po,
		Material:         in.Material,
		EndCondition:     in.EndCondition,
		Standard:         toleranceStandard,
		FitClass:         toleranceFitClass,
		PressureStandard: tolerancePressureStandard,
	}

	explicit := false
	for _, n := range []string{"bore-upper", "bore-lower", "shaft-upper", "shaft-lower"} {
		explicit = explicit || fs.Changed(n)
	}
	switch {
	case explicit && toleranceFitClass != "":
		return fmt.Errorf("reading input: give either deviations or --fit, not both")
	case explicit:
		req.Spec = &tolerance.Spec{
			Bore:  tolerance.Deviation{Upper: toleranceBoreUpper, Lower: toleranceBoreLower},
			Shaft: tolerance.Deviation{Upper: toleranceShaftUpper, Lower: toleranceShaftLower},
		}
	case toleranceFitClass == "":
		return fmt.Errorf("reading input: give --fit or --bore-*/--shaft-* deviations")
	}

	if fs.Changed("pressure-factor") {
		req.PressureFactor = &tolerancePressureFactor
	} else if req.PressureStandard == "" {
		if cart == nil {
			return fmt.Errorf("reading input: give --pressure-factor, --pressure-standard or --cartridge")
		}
		req.PressureStandard = cart.Standard
	}

	a := tolerance.NewAnalyzer(repo, repo)
	a.Solver = solver(in.EndCondition)
	a.Logger = slog.Default()

	result, err := a.Analyze(req)
	if err != nil {
		return fmt.Errorf("analyzing tolerances: %w", err)
	}

	out := cmd.OutOrStdout()
	sys := unitSystem()

	printHeader(out, "WORST-CASE TOLERANCE ANALYSIS")

	printSection(out, "TOLERANCES")
	w := newTabWriter(out)
	if req.Spec == nil {
		fmt.Fprintf(w, "  Fit:\t%s %s at Ø%s\n", req.Standard, req.FitClass, units.Length(2*in.Geometry.Ri, sys))
	}
	fmt.Fprintf(w, "  Bore deviation:\t%+.1f / %+.1f µm\n", result.Spec.Bore.Upper, result.Spec.Bore.Lower)
	fmt.Fprintf(w, "  Outer deviation:\t%+.1f / %+.1f µm\n", result.Spec.Shaft.Upper, result.Spec.Shaft.Lower)
	if req.PressureFactor == nil {
		fmt.Fprintf(w, "  Pressure standard:\t%s\n", req.PressureStandard)
	}
	fmt.Fprintf(w, "  Pressure factor:\t±%.1f%%\n", result.PressureFactor*100)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "CASES")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  Case\tri\tro\tWall\tPressure\tσvm (bore)\tSFy\tSFu\tBurst\n")
	fmt.Fprintf(w, "  ────\t──\t──\t────\t────────\t──────────\t───\t───\t─────\n")
	for _, c := range []tolerance.Case{result.Nominal, result.WorstCase, result.BestCase} {
		an := c.Analysis
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", c.Label,
			units.Length(c.Geometry.Ri, sys), units.Length(c.Geometry.Ro, sys), units.Length(c.WallThickness, sys),
			units.Stress(c.Load.Pi, sys), units.Stress(an.InnerVonMises, sys),
			units.Factor(an.Safety.Yield), units.Factor(an.Safety.Ultimate), units.Stress(an.BurstPressure, sys))
	}
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "MARGIN")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  Degradation (worst SFy / nominal SFy):\t%.3f\n", result.Degradation)
	fmt.Fprintf(w, "  Yield margin lost:\t%.1f%%\n", (1-result.Degradation)*100)
	w.Flush()
	fmt.Fprintln(out)

	printStatus(out, result.WorstCase.Analysis.IsAdequate, result.Message)
	return nil
}
