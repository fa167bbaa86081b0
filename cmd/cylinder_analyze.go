package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/diagram"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

var (
	cylinderAnalyzeFlags       cylinderFlags
	cylinderAnalyzeShowDiagram bool
	cylinderAnalyzeExportFile  string
)

var cylinderAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze stresses and safety margins of a barrel wall",
	Long: `Calculate the Lamé stresses at the bore and the outer surface,
the Von Mises equivalent stress, the safety factors against yield
and ultimate strength, and the yield and burst pressures.

Examples:
  gobarrel cylinder analyze --ri 10 --ro 20 -p 100 --sy 500 --su 600
  gobarrel cylinder analyze -c "5.56x45mm NATO" --ro 9.5 -m 4150
  gobarrel cylinder analyze -c ".308 Winchester" --ro 14 -m 416R --closed-ends --diagram`,
	RunE: runCylinderAnalyze,
}

func init() {
	cylinderCmd.AddCommand(cylinderAnalyzeCmd)

	cylinderAnalyzeFlags.register(cylinderAnalyzeCmd.Flags())
	cylinderAnalyzeCmd.MarkFlagRequired("ro")

	// Diagram options
	cylinderAnalyzeCmd.Flags().BoolVar(&cylinderAnalyzeShowDiagram, "diagram", false, "Show ASCII stress profile")
	cylinderAnalyzeCmd.Flags().StringVarP(&cylinderAnalyzeExportFile, "output", "o", "", "Export stress profile to file (png, svg, pdf)")
}

func runCylinderAnalyze(cmd *cobra.Command, args []string) error {
	in, cart, err := cylinderAnalyzeFlags.input(cmd.Flags())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := cylinder.Analyze(in, solver(in.EndCondition))
	if err != nil {
		return fmt.Errorf("analyzing cylinder: %w", err)
	}

	out := cmd.OutOrStdout()
	sys := unitSystem()

	printHeader(out, "THICK-WALLED CYLINDER ANALYSIS - LAMÉ / VON MISES")

	if cart != nil {
		fmt.Fprintf(out, "  Cartridge: %s (%s, max %s)\n", cart.Name, cart.Standard, units.Stress(cart.MaxPressure, sys))
		fmt.Fprintln(out)
	}

	// Input parameters
	printSection(out, "INPUT PARAMETERS")
	w := newTabWriter(out)
	fmt.Fprintf(w, "  Bore radius (ri):\t%s\n", units.Length(in.Geometry.Ri, sys))
	fmt.Fprintf(w, "  Outer radius (ro):\t%s\n", units.Length(in.Geometry.Ro, sys))
	fmt.Fprintf(w, "  Wall thickness:\t%s\n", units.Length(in.Geometry.WallThickness(), sys))
	fmt.Fprintf(w, "  Diameter ratio (ro/ri):\t%.3f\n", in.Geometry.DiameterRatio())
	fmt.Fprintf(w, "  Internal pressure:\t%s\n", units.Stress(in.Load.Pi, sys))
	fmt.Fprintf(w, "  External pressure:\t%s\n", units.Stress(in.Load.Po, sys))
	fmt.Fprintf(w, "  Ends:\t%s\n", in.EndCondition)
	fmt.Fprintf(w, "  Yield strength (Sy):\t%s\n", units.Stress(in.Material.Sy, sys))
	fmt.Fprintf(w, "  Ultimate strength (Su):\t%s\n", units.Stress(in.Material.Su, sys))
	w.Flush()
	fmt.Fprintln(out)

	// Lamé coefficients
	printSection(out, "LAMÉ COEFFICIENTS")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  A:\t%.4f MPa\n", result.Coefficients.A)
	fmt.Fprintf(w, "  B:\t%.4f MPa·mm²\n", result.Coefficients.B)
	w.Flush()
	fmt.Fprintln(out)

	// Stresses
	printSection(out, "STRESSES")
	w = newTabWriter(out)
	printStressHeader(w)
	printStressRow(w, "Bore", result.Inner, result.Safety, sys)
	printStressRow(w, "Outer", result.Outer, result.OuterSafety, sys)
	w.Flush()
	fmt.Fprintln(out)

	// Pressure capacity
	printSection(out, "PRESSURE CAPACITY")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  Yield pressure (bore at Sy):\t%s\n", units.Stress(result.YieldPressure, sys))
	fmt.Fprintf(w, "  Burst pressure (bore at Su):\t%s\n", units.Stress(result.BurstPressure, sys))
	fmt.Fprintf(w, "  Bisection iterations:\t%d\n", result.BurstIterations)
	if in.Load.Pi > 0 {
		fmt.Fprintf(w, "  Burst / operating:\t%.2f\n", result.BurstPressure/in.Load.Pi)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("BORE SAFETY", []string{
		fmt.Sprintf("SFy = %s   SFu = %s", units.Factor(result.Safety.Yield), units.Factor(result.Safety.Ultimate)),
		fmt.Sprintf("Target SFy >= %.2f", cylinder.TargetSafetyFactor),
	}))
	fmt.Fprintln(out)

	printStatus(out, result.IsAdequate, result.Message)

	if cylinderAnalyzeShowDiagram || cylinderAnalyzeExportFile != "" {
		data, err := cylinderProfileData("Barrel wall stresses", in, defaultSamples)
		if err != nil {
			return fmt.Errorf("sampling profile: %w", err)
		}
		return showProfile(cmd, data, cylinderAnalyzeShowDiagram, cylinderAnalyzeExportFile)
	}
	return nil
}
