package cmd

import (
	"github.com/spf13/cobra"
)

var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Shrink-fit barrel and trunnion analysis",
	Long: `Analyze a barrel with a trunnion shrunk onto it as a compound
cylinder: the interference fit preloads both bodies, then chamber
pressure acts on the assembled barrel.

Subcommands:
  analyze  - Contact pressure and stresses at the critical locations

The assembly is defined on the command line with catalogue
materials, or in a JSON file.

Example JSON file structure:
{
  "name": "AR-15 barrel extension",
  "barrel":   {"ri": 2.85, "ro": 8.0, "e": 205000, "nu": 0.29},
  "trunnion": {"ri": 7.99, "ro": 14.0, "e": 205000, "nu": 0.29},
  "barrel_material":   {"sy": 862, "su": 1034},
  "trunnion_material": {"sy": 655, "su": 1020},
  "interference": 0.01,
  "operating_pressure": 380,
  "end_condition": "closed"
}`,
}

func init() {
	rootCmd.AddCommand(compoundCmd)
}
