package cmd

import (
	"github.com/spf13/cobra"
)

var cylinderCmd = &cobra.Command{
	Use:   "cylinder",
	Short: "Single thick-walled cylinder analysis",
	Long: `Analyze a barrel wall as a single thick-walled cylinder
using the Lamé solution.

Subcommands:
  analyze  - Stresses, safety factors, yield and burst pressure
  burst    - Internal pressure that brings the bore to Sy and Su
  profile  - Radial stress distribution through the wall

The material comes from --material (catalogue) or --sy/--su.
A --cartridge sets the bore radius and chamber pressure from the
catalogue when --ri and --pressure are not given.`,
}

func init() {
	rootCmd.AddCommand(cylinderCmd)
}
