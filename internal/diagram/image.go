package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/steelform/internal/geometry"
)

func ringXYs(r geometry.Ring) plotter.XYs {
	xys := make(plotter.XYs, len(r))
	for i, v := range r {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

// ExportProfileDiagram exports a profile cross-section to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png.
func ExportProfileDiagram(data ProfileDiagramData, filename string) error {
	if len(data.Outline.Parts) == 0 {
		return fmt.Errorf("nothing to draw for %q", data.Title)
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	for _, part := range data.Outline.Parts {
		rings := []plotter.XYer{ringXYs(part.Outer)}
		for _, h := range part.Holes {
			rings = append(rings, ringXYs(h))
		}
		poly, err := plotter.NewPolygon(rings...)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		poly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	}

	// Mark the centroid
	c := data.Outline.Centroid()
	centroid, err := plotter.NewScatter(plotter.XYs{{X: c.X, Y: c.Y}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	_, max := data.Outline.Bounds()
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{X: c.X, Y: max.Y}},
		Labels: []string{fmt.Sprintf("A=%.0fmm²  U=%.0fmm  %.2fkg/m",
			data.Area, data.Perimeter, data.Weight)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	// Keep the section undistorted
	min, _ := data.Outline.Bounds()
	span := max.X - min.X
	if dy := max.Y - min.Y; dy > span {
		span = dy
	}
	p.X.Min, p.X.Max = min.X-0.1*span, min.X+1.1*span
	p.Y.Min, p.Y.Max = min.Y-0.1*span, min.Y+1.1*span

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	width := 6 * vg.Inch
	height := 6 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
