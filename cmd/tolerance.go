package cmd

import (
	"github.com/spf13/cobra"
)

var toleranceCmd = &cobra.Command{
	Use:   "tolerance",
	Short: "Worst-case tolerance and pressure-variation analysis",
	Long: `Bound the safety margin of a barrel wall over its manufacturing
tolerances and the pressure variation allowed by a standard.

Subcommands:
  analyze  - Nominal, worst-case and best-case analyses

Deviations come from explicit --bore-*/--shaft-* flags (µm) or from
a fit class looked up in the tolerance tables at the bore diameter.
The pressure factor comes from --pressure-factor or from a pressure
standard (SAAMI, CIP, MIL by default).`,
}

func init() {
	rootCmd.AddCommand(toleranceCmd)
}
