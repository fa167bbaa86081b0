package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	radialColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	hoopColor   = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	axialColor  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	vmColor     = color.Black
)

type curve struct {
	name  string
	ys    []float64
	color color.Color
	width float64
}

// ExportProfile exports a stress profile to an image file. The format follows
// the extension (.png, .svg, .pdf); anything else is saved as png.
func ExportProfile(data ProfileData, filename string) error {
	if len(data.States) < 2 {
		return fmt.Errorf("diagram: profile needs at least two samples, got %d", len(data.States))
	}
	s := data.series()

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = fmt.Sprintf("Radius (%s)", data.Units.LengthUnit())
	p.Y.Label.Text = fmt.Sprintf("Stress (%s)", data.Units.StressUnit())
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	curves := []curve{
		{"σr", s.sigmaR, radialColor, 1.5},
		{"σθ", s.sigmaTheta, hoopColor, 1.5},
		{"σvm", s.vonMises, vmColor, 2},
	}
	if s.hasAxial {
		curves = append(curves, curve{"σa", s.sigmaAxial, axialColor, 1.5})
	}

	for _, c := range curves {
		pts := make(plotter.XYs, len(s.radius))
		for i := range s.radius {
			pts[i] = plotter.XY{X: s.radius[i], Y: c.ys[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(c.width)
		line.LineStyle.Color = c.color
		p.Add(line)
		p.Legend.Add(c.name, line)
	}

	// Zero stress reference
	zero, err := plotter.NewLine(plotter.XYs{
		{X: s.radius[0], Y: 0},
		{X: s.radius[len(s.radius)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	// Bore peak markers
	peaks, err := plotter.NewScatter(plotter.XYs{
		{X: s.radius[0], Y: s.sigmaTheta[0]},
		{X: s.radius[0], Y: s.vonMises[0]},
	})
	if err != nil {
		return err
	}
	peaks.GlyphStyle.Color = hoopColor
	peaks.GlyphStyle.Radius = vg.Points(4)
	peaks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(peaks)

	if err := addMarks(p, data, s); err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("diagram: %w", err)
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// addMarks draws a dashed vertical line and label for every mark.
func addMarks(p *plot.Plot, data ProfileData, s series) error {
	if len(data.Marks) == 0 {
		return nil
	}

	lo, hi := s.vonMises[0], s.vonMises[0]
	for _, ys := range [][]float64{s.sigmaR, s.sigmaTheta, s.vonMises} {
		for _, y := range ys {
			lo = min(lo, y)
			hi = max(hi, y)
		}
	}

	for _, m := range data.Marks {
		x := data.Units.ConvertLength(m.Radius)
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: x, Y: hi}},
			Labels: []string{m.Label},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}
	return nil
}
