// Package chart renders scenario categories as PNG bar charts.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one set of bars, drawn in a single color.
type Series struct {
	Name   string
	Color  color.Color
	Values []float64
}

// BarChart describes one chart. Each series holds one value per label.
// Series with more than one entry are drawn as groups side by side.
type BarChart struct {
	File       string
	Title      string
	ValueLabel string
	Labels     []string
	Series     []Series
	Horizontal bool
	Ticks      func(float64) string
}

// Default canvas size.
const (
	DefaultWidth  = 14 * vg.Inch
	DefaultHeight = 7 * vg.Inch
)

// Plot builds the gonum plot for c. Non-finite values are drawn as zero.
func (c BarChart) Plot() (*plot.Plot, error) {
	if len(c.Series) == 0 || len(c.Labels) == 0 {
		return nil, fmt.Errorf("chart %q has no data", c.Title)
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.Add(plotter.NewGrid())

	valueAxis := &p.Y
	if c.Horizontal {
		valueAxis = &p.X
	}
	valueAxis.Label.Text = c.ValueLabel
	if c.Ticks != nil {
		valueAxis.Tick.Marker = labelTicks{format: c.Ticks}
	}

	n := len(c.Series)
	width := vg.Points(60) / vg.Length(n)
	for i, s := range c.Series {
		if len(s.Values) != len(c.Labels) {
			return nil, fmt.Errorf("chart %q series %q: %d values for %d labels", c.Title, s.Name, len(s.Values), len(c.Labels))
		}

		bars, err := plotter.NewBarChart(finite(s.Values), width)
		if err != nil {
			return nil, fmt.Errorf("chart %q series %q: %w", c.Title, s.Name, err)
		}
		bars.Color = s.Color
		bars.LineStyle.Width = vg.Length(0)
		bars.Horizontal = c.Horizontal
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * width

		p.Add(bars)
		if n > 1 {
			p.Legend.Add(s.Name, bars)
		}
	}
	p.Legend.Top = true

	if c.Horizontal {
		p.NominalY(c.Labels...)
	} else {
		p.NominalX(c.Labels...)
	}
	return p, nil
}

// Save renders c as an image at path; the extension selects the format.
func (c BarChart) Save(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}

func finite(values []float64) plotter.Values {
	out := make(plotter.Values, len(values))
	for i, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out[i] = v
		}
	}
	return out
}

// labelTicks relabels the default tick marks with a custom formatter.
type labelTicks struct {
	format func(float64) string
}

func (t labelTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = t.format(ticks[i].Value)
		}
	}
	return ticks
}

// HexColor parses a "#RRGGBB" color. Invalid input yields mid gray.
func HexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Gray{Y: 0x80}
	}
	return c
}

// PaletteColor returns the i-th color of the default plot palette.
func PaletteColor(i int) color.Color {
	return plotutil.Color(i)
}
