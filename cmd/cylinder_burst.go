package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

var cylinderBurstFlags cylinderFlags

var cylinderBurstCmd = &cobra.Command{
	Use:   "burst",
	Short: "Find the yield and burst pressure of a barrel wall",
	Long: `Solve for the internal pressure at which the Von Mises stress
at the bore reaches the yield strength and the ultimate strength.

The root is found by bisection on [0, 10·S], expanding the upper
bound when needed. Solver tolerance and iteration cap come from the
config file.

Examples:
  gobarrel cylinder burst --ri 10 --ro 20 --sy 500 --su 600
  gobarrel cylinder burst -c "9x19mm Parabellum" --ro 7 -m "17-4PH H900"`,
	RunE: runCylinderBurst,
}

func init() {
	cylinderCmd.AddCommand(cylinderBurstCmd)

	cylinderBurstFlags.register(cylinderBurstCmd.Flags())
	cylinderBurstCmd.MarkFlagRequired("ro")
}

func runCylinderBurst(cmd *cobra.Command, args []string) error {
	in, cart, err := cylinderBurstFlags.input(cmd.Flags())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := in.Material.Validate(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	s := solver(in.EndCondition)
	yield, err := s.Solve(in.Geometry, in.Load.Po, in.Material.Sy)
	if err != nil {
		return fmt.Errorf("solving yield pressure: %w", err)
	}
	burst, err := s.Solve(in.Geometry, in.Load.Po, in.Material.Su)
	if err != nil {
		return fmt.Errorf("solving burst pressure: %w", err)
	}

	out := cmd.OutOrStdout()
	sys := unitSystem()

	printHeader(out, "YIELD AND BURST PRESSURE - BISECTION")

	printSection(out, "INPUT PARAMETERS")
	w := newTabWriter(out)
	fmt.Fprintf(w, "  Bore radius (ri):\t%s\n", units.Length(in.Geometry.Ri, sys))
	fmt.Fprintf(w, "  Outer radius (ro):\t%s\n", units.Length(in.Geometry.Ro, sys))
	fmt.Fprintf(w, "  External pressure:\t%s\n", units.Stress(in.Load.Po, sys))
	fmt.Fprintf(w, "  Ends:\t%s\n", in.EndCondition)
	fmt.Fprintf(w, "  Solver tolerance:\t%g\n", s.Tolerance)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "RESULTS")
	w = newTabWriter(out)
	fmt.Fprintf(w, "  Target\tStrength\tPressure\tIterations\tEvaluations\n")
	fmt.Fprintf(w, "  ──────\t────────\t────────\t──────────\t───────────\n")
	fmt.Fprintf(w, "  Yield\t%s\t%s\t%d\t%d\n", units.Stress(in.Material.Sy, sys), units.Stress(yield.Pressure, sys), yield.Iterations, yield.Evaluations)
	fmt.Fprintf(w, "  Burst\t%s\t%s\t%d\t%d\n", units.Stress(in.Material.Su, sys), units.Stress(burst.Pressure, sys), burst.Iterations, burst.Evaluations)
	w.Flush()
	fmt.Fprintln(out)

	if cart == nil {
		return nil
	}

	ratio := burst.Pressure / cart.MaxPressure
	printStatus(out, ratio >= cylinder.TargetSafetyFactor, fmt.Sprintf("%s: burst pressure is %.2f× the %s maximum of %s",
		cart.Name, ratio, cart.Standard, units.Stress(cart.MaxPressure, sys)))
	return nil
}
