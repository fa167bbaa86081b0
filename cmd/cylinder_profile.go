package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/diagram"
)

const (
	defaultSamples = 41
	chartHeight    = 15
)

var (
	cylinderProfileFlags       cylinderFlags
	cylinderProfileSamples     int
	cylinderProfileShowDiagram bool
	cylinderProfileExportFile  string
)

var cylinderProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Tabulate the radial stress distribution through the wall",
	Long: `Sample σr, σθ, σa and the Von Mises stress at evenly spaced
radii from the bore to the outer surface.

Examples:
  gobarrel cylinder profile --ri 10 --ro 20 -p 100 --sy 500 --su 600 -n 11
  gobarrel cylinder profile -c ".50 BMG" --ro 19 -m 4150 --diagram -o profile.png`,
	RunE: runCylinderProfile,
}

func init() {
	cylinderCmd.AddCommand(cylinderProfileCmd)

	cylinderProfileFlags.register(cylinderProfileCmd.Flags())
	cylinderProfileCmd.MarkFlagRequired("ro")
	cylinderProfileCmd.Flags().IntVarP(&cylinderProfileSamples, "samples", "n", 11, "Number of radii to tabulate")

	// Diagram options
	cylinderProfileCmd.Flags().BoolVar(&cylinderProfileShowDiagram, "diagram", false, "Show ASCII stress profile")
	cylinderProfileCmd.Flags().StringVarP(&cylinderProfileExportFile, "output", "o", "", "Export stress profile to file (png, svg, pdf)")
}

func runCylinderProfile(cmd *cobra.Command, args []string) error {
	in, _, err := cylinderProfileFlags.input(cmd.Flags())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	states, err := cylinder.Profile(in.Geometry, in.Load, cylinderProfileSamples, in.EndCondition)
	if err != nil {
		return fmt.Errorf("sampling profile: %w", err)
	}

	out := cmd.OutOrStdout()
	sys := unitSystem()

	printHeader(out, "RADIAL STRESS PROFILE")

	printSection(out, "STRESS DISTRIBUTION")
	w := newTabWriter(out)
	printStressHeader(w)
	for i, s := range states {
		sf, err := cylinder.SafetyFor(s.VonMises(), in.Material)
		if err != nil {
			return fmt.Errorf("computing safety factors: %w", err)
		}
		printStressRow(w, fmt.Sprintf("%d", i+1), s, sf, sys)
	}
	w.Flush()
	fmt.Fprintln(out)

	data := diagram.ProfileData{Title: "Barrel wall stresses", States: states, Units: sys}
	return showProfile(cmd, data, cylinderProfileShowDiagram, cylinderProfileExportFile)
}

// cylinderProfileData samples in's stress field for the diagrams.
func cylinderProfileData(title string, in cylinder.Input, n int) (diagram.ProfileData, error) {
	states, err := cylinder.Profile(in.Geometry, in.Load, n, in.EndCondition)
	if err != nil {
		return diagram.ProfileData{}, err
	}
	return diagram.ProfileData{Title: title, States: states, Units: unitSystem()}, nil
}

// showProfile prints the ASCII chart and/or exports the image.
func showProfile(cmd *cobra.Command, data diagram.ProfileData, ascii bool, file string) error {
	out := cmd.OutOrStdout()
	if ascii {
		fmt.Fprintln(out, diagram.DrawASCIIProfile(data, chartHeight))
	}
	if file != "" {
		if err := diagram.ExportProfile(data, file); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", file)
	}
	return nil
}
