package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gobarrel/internal/domain"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, lightRule)
}

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printStatus(out io.Writer, adequate bool, msg string) {
	printSection(out, "STATUS")
	mark := "✓"
	if !adequate {
		mark = "⚠"
	}
	fmt.Fprintf(out, "  %s %s\n", mark, msg)
	fmt.Fprintln(out)
}

// printStressRow writes one tab-separated row of a stress table.
func printStressRow(w io.Writer, label string, s domain.StressState, sf domain.SafetyFactors, sys units.System) {
	fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		label,
		units.Length(s.Radius, sys),
		units.Stress(s.SigmaR, sys),
		units.Stress(s.SigmaTheta, sys),
		units.Stress(s.SigmaAxial, sys),
		units.Stress(s.VonMises(), sys),
		units.Factor(sf.Yield),
		units.Factor(sf.Ultimate),
	)
}

func printStressHeader(w io.Writer) {
	fmt.Fprintf(w, "  Location\tRadius\tσr\tσθ\tσa\tσvm\tSFy\tSFu\n")
	fmt.Fprintf(w, "  ────────\t──────\t──\t──\t──\t───\t───\t───\n")
}
