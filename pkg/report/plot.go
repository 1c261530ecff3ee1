// Package report writes motif search results: text tables and gonum plots.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Size of a saved plot in inches
type Size struct {
	Width  float64
	Height float64
}

var DefaultSize = Size{Width: 6, Height: 4}

func (s Size) lengths() (vg.Length, vg.Length) {
	if s.Width <= 0 || s.Height <= 0 {
		s = DefaultSize
	}
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

var (
	trialColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bestColor  = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// PlotTrace saves the score of every trial and the best score so far.
// The format follows the file extension (png, svg, pdf ...).
func PlotTrace(scores []float64, title, path string, size Size) error {
	if len(scores) == 0 {
		return fmt.Errorf("plot %s: no scores", path)
	}
	var (
		trials = make(plotter.XYs, len(scores))
		best   = make(plotter.XYs, len(scores))
	)
	for i, score := range scores {
		trials[i].X = float64(i + 1)
		trials[i].Y = score
		best[i].X = float64(i + 1)
		best[i].Y = score
		if i > 0 && best[i-1].Y < score {
			best[i].Y = best[i-1].Y
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "trial"
	p.Y.Label.Text = "score"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(trials)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = trialColor
	scatter.GlyphStyle.Radius = vg.Points(2)

	line, err := plotter.NewLine(best)
	if err != nil {
		return err
	}
	line.LineStyle.Color = bestColor
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(scatter, line)
	p.Legend.Add("trial", scatter)
	p.Legend.Add("best", line)
	p.Legend.Top = true

	w, h := size.lengths()
	return p.Save(w, h, path)
}

// PlotHistogram saves the distribution of trial scores, bins <= 0 picks a default.
func PlotHistogram(scores []float64, bins int, title, path string, size Size) error {
	if len(scores) == 0 {
		return fmt.Errorf("plot %s: no scores", path)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "score"
	p.Y.Label.Text = "trials"

	hist, err := plotter.NewHist(plotter.Values(scores), bins)
	if err != nil {
		return err
	}
	hist.FillColor = trialColor
	p.Add(hist)

	w, h := size.lengths()
	return p.Save(w, h, path)
}

// PlotColumnEntropy saves one bar per motif column, lower bars are more conserved.
func PlotColumnEntropy(entropy []float64, title, path string, size Size) error {
	if len(entropy) == 0 {
		return fmt.Errorf("plot %s: no columns", path)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "position"
	p.Y.Label.Text = "entropy (bits)"
	p.Y.Min = 0
	p.Y.Max = 2

	bars, err := plotter.NewBarChart(plotter.Values(entropy), vg.Points(12))
	if err != nil {
		return err
	}
	bars.Color = trialColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	var names = make([]string, len(entropy))
	for i := range names {
		names[i] = fmt.Sprint(i + 1)
	}
	p.NominalX(names...)

	w, h := size.lengths()
	return p.Save(w, h, path)
}
