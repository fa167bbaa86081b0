package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/units"
)

var catalogFitDiameter float64

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List reference data",
	Long: `List the materials, cartridges, fit classes and pressure
standards available to the other commands.

Built-in tables are used unless --data-dir points at a directory
holding materials.yaml, cartridges.yaml, tolerances.yaml or
pressure.yaml; each file present replaces its built-in table.`,
}

var catalogMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List barrel and trunnion materials",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := repo.Materials()
		if err != nil {
			return fmt.Errorf("loading materials: %w", err)
		}
		out := cmd.OutOrStdout()
		sys := unitSystem()

		printHeader(out, "MATERIALS")
		w := newTabWriter(out)
		fmt.Fprintf(w, "  Name\tSy\tSu\tE (GPa)\tν\tDensity (kg/m³)\n")
		fmt.Fprintf(w, "  ────\t──\t──\t───────\t─\t───────────────\n")
		for _, m := range list {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.1f\t%.3f\t%.0f\n", m.Name,
				units.Stress(m.Sy, sys), units.Stress(m.Su, sys), m.E, m.Nu, m.Density)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

var catalogCartridgesCmd = &cobra.Command{
	Use:   "cartridges",
	Short: "List cartridges and their rated maximum pressures",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := repo.Cartridges()
		if err != nil {
			return fmt.Errorf("loading cartridges: %w", err)
		}
		out := cmd.OutOrStdout()
		sys := unitSystem()

		printHeader(out, "CARTRIDGES")
		w := newTabWriter(out)
		fmt.Fprintf(w, "  Name\tStandard\tMax pressure\tBore Ø\n")
		fmt.Fprintf(w, "  ────\t────────\t────────────\t──────\n")
		for _, c := range list {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", c.Name, c.Standard,
				units.Stress(c.MaxPressure, sys), units.Length(c.BoreDiameter, sys))
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

var catalogFitsCmd = &cobra.Command{
	Use:   "fits",
	Short: "List tabulated fit classes",
	Long: `List the tabulated fit classes and their diameter range.
With --diameter, also print the interpolated deviations at that
nominal diameter (clamped to the tabulated range).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := repo.FitClasses()
		if err != nil {
			return fmt.Errorf("loading tolerance tables: %w", err)
		}
		out := cmd.OutOrStdout()
		sys := unitSystem()
		withDeviations := cmd.Flags().Changed("diameter")

		printHeader(out, "FIT CLASSES")
		w := newTabWriter(out)
		if withDeviations {
			fmt.Fprintf(w, "  Standard\tFit\tRange\tBore (µm)\tShaft (µm)\n")
			fmt.Fprintf(w, "  ────────\t───\t─────\t─────────\t──────────\n")
		} else {
			fmt.Fprintf(w, "  Standard\tFit\tRange\n")
			fmt.Fprintf(w, "  ────────\t───\t─────\n")
		}
		for _, f := range list {
			rng := units.Length(f.MinDiameter, sys) + " - " + units.Length(f.MaxDiameter, sys)
			if !withDeviations {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Standard, f.FitClass, rng)
				continue
			}
			s, err := repo.Tolerance(f.Standard, f.FitClass, catalogFitDiameter)
			if err != nil {
				return fmt.Errorf("looking up %s %s: %w", f.Standard, f.FitClass, err)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%+.1f / %+.1f\t%+.1f / %+.1f\n", f.Standard, f.FitClass, rng,
				s.Bore.Upper, s.Bore.Lower, s.Shaft.Upper, s.Shaft.Lower)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

var catalogPressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "List pressure standards and their variation factors",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := repo.PressureStandards()
		if err != nil {
			return fmt.Errorf("loading pressure standards: %w", err)
		}
		out := cmd.OutOrStdout()

		printHeader(out, "PRESSURE STANDARDS")
		w := newTabWriter(out)
		fmt.Fprintf(w, "  Standard\tFactor\n")
		fmt.Fprintf(w, "  ────────\t──────\n")
		for _, p := range list {
			fmt.Fprintf(w, "  %s\t±%.1f%%\n", p.Name, p.Factor*100)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogMaterialsCmd, catalogCartridgesCmd, catalogFitsCmd, catalogPressureCmd)

	catalogFitsCmd.Flags().Float64VarP(&catalogFitDiameter, "diameter", "d", 0, "Nominal diameter in mm")
}
