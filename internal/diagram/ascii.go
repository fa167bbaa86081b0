package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobarrel/internal/domain"
	"github.com/alexiusacademia/gobarrel/internal/units"
)

// Mark is a labelled radius drawn on a profile, such as a shrink-fit interface.
type Mark struct {
	Radius float64 // mm
	Label  string
}

// ProfileData holds a radial stress profile for drawing
type ProfileData struct {
	Title  string
	States []domain.StressState // ordered by radius
	Marks  []Mark
	Units  units.System
}

// series holds the converted curves of a profile
type series struct {
	radius, sigmaR, sigmaTheta, sigmaAxial, vonMises []float64
	hasAxial                                         bool
}

func (d ProfileData) series() series {
	var s series
	for _, st := range d.States {
		s.radius = append(s.radius, d.Units.ConvertLength(st.Radius))
		s.sigmaR = append(s.sigmaR, d.Units.ConvertStress(st.SigmaR))
		s.sigmaTheta = append(s.sigmaTheta, d.Units.ConvertStress(st.SigmaTheta))
		s.sigmaAxial = append(s.sigmaAxial, d.Units.ConvertStress(st.SigmaAxial))
		s.vonMises = append(s.vonMises, d.Units.ConvertStress(st.VonMises()))
		if st.SigmaAxial != 0 {
			s.hasAxial = true
		}
	}
	return s
}

// DrawASCIIProfile plots σr, σθ (and σa when present) and the Von Mises
// stress against the sample index, bore on the left.
func DrawASCIIProfile(data ProfileData, height int) string {
	if len(data.States) < 2 {
		return ""
	}
	s := data.series()

	curves := [][]float64{s.sigmaR, s.sigmaTheta, s.vonMises}
	legends := []string{"σr", "σθ", "σvm"}
	colors := []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Red, asciigraph.Default}
	if s.hasAxial {
		curves = append(curves, s.sigmaAxial)
		legends = append(legends, "σa")
		colors = append(colors, asciigraph.Green)
	}

	first, last := data.States[0].Radius, data.States[len(data.States)-1].Radius
	caption := fmt.Sprintf("%s (%s) from r = %s to r = %s",
		data.Title, data.Units.StressUnit(), units.Length(first, data.Units), units.Length(last, data.Units))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.PlotMany(curves,
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")

	for _, m := range data.Marks {
		sb.WriteString(fmt.Sprintf("  %s at r = %s\n", m.Label, units.Length(m.Radius, data.Units)))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := width(title)
	for _, line := range lines {
		if w := width(line); w > maxLen {
			maxLen = w
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// width counts runes so σ and ∞ take one column.
func width(s string) int {
	return len([]rune(s))
}

func pad(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
