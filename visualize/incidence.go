// Package visualize renders circuit-assembly structures for inspection: an
// incidence matrix's nonzero structure as a spy plot, and a circuit's net
// graph as an interactive page.
package visualize

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/RuiCat/dkcircuit/maths"
)

// PlotIncidence renders the nonzero structure of an incidence (or tv/ti)
// matrix as a spy plot: one point per nonzero entry, colored by sign, with
// rows on the vertical axis (net/basis index) and columns on the horizontal
// axis (branch index). Output format is chosen by ext ("svg", "png", "pdf").
func PlotIncidence(w io.Writer, a maths.Matrix[float64], ext string) error {
	p := plot.New()
	p.Title.Text = "Incidence structure"
	p.X.Label.Text = "branch"
	p.Y.Label.Text = "net"

	var positive, negative plotter.XYs
	for r := 0; r < a.Rows(); r++ {
		cols, vals := a.Row(r)
		for i, c := range cols {
			pt := plotter.XY{X: float64(c), Y: float64(a.Rows() - 1 - r)}
			if vals[i] > 0 {
				positive = append(positive, pt)
			} else {
				negative = append(negative, pt)
			}
		}
	}

	if len(positive) > 0 {
		s, err := plotter.NewScatter(positive)
		if err != nil {
			return fmt.Errorf("visualize: plotting positive entries: %w", err)
		}
		s.GlyphStyle.Shape = draw.PlusGlyph{}
		s.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		p.Add(s)
	}
	if len(negative) > 0 {
		s, err := plotter.NewScatter(negative)
		if err != nil {
			return fmt.Errorf("visualize: plotting negative entries: %w", err)
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Color = color.RGBA{B: 200, A: 255}
		p.Add(s)
	}

	writer, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, ext)
	if err != nil {
		return fmt.Errorf("visualize: rendering incidence plot: %w", err)
	}
	_, err = writer.WriteTo(w)
	return err
}
