// Package config holds the run configuration. A Config is built once at
// process start and passed to every stage that prints or draws.
package config

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// DefaultOutputDir is the folder the charts are written to.
const DefaultOutputDir = "plots"

// Style controls how every chart is drawn.
type Style struct {
	Name   string
	Width  vg.Length
	Height vg.Length
	// Grid draws major grid lines behind the data.
	Grid       bool
	Background color.Color
	// Palette colours categorical groups in label order.
	Palette   []color.Color
	LineColor color.Color
	LineWidth vg.Length
	HistFill  color.Color
	HistEdge  color.Color
	// PointRadius is the scatter glyph radius.
	PointRadius vg.Length
}

// WhiteGrid is a white background with grey grid lines and a muted
// three-colour palette.
func WhiteGrid() Style {
	return Style{
		Name:       "whitegrid",
		Width:      8 * vg.Inch,
		Height:     5 * vg.Inch,
		Grid:       true,
		Background: color.White,
		Palette: []color.Color{
			color.RGBA{R: 76, G: 114, B: 176, A: 255},
			color.RGBA{R: 221, G: 132, B: 82, A: 255},
			color.RGBA{R: 85, G: 168, B: 104, A: 255},
		},
		LineColor:   color.RGBA{B: 255, A: 255},
		LineWidth:   vg.Points(1.5),
		HistFill:    color.RGBA{G: 128, A: 255},
		HistEdge:    color.Black,
		PointRadius: vg.Points(4),
	}
}

// Color returns the palette entry for the i-th group, cycling when there are
// more groups than colours.
func (s Style) Color(i int) color.Color {
	if len(s.Palette) == 0 {
		return color.Black
	}
	return s.Palette[i%len(s.Palette)]
}

// Config is the complete run configuration.
type Config struct {
	OutputDir string
	Style     Style
	// HeadRows is how many leading rows the report prints.
	HeadRows int
	// Bins is the histogram bin count.
	Bins int
}

// Default returns the configuration used by the command.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Style:     WhiteGrid(),
		HeadRows:  5,
		Bins:      10,
	}
}

// Validate rejects configurations that cannot produce the report and charts.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("config: output directory is empty")
	}
	if c.Style.Width <= 0 || c.Style.Height <= 0 {
		return errors.Errorf("config: invalid figure size %vx%v", c.Style.Width, c.Style.Height)
	}
	if c.HeadRows < 0 {
		return errors.Errorf("config: negative head rows %d", c.HeadRows)
	}
	if c.Bins <= 0 {
		return errors.Errorf("config: histogram needs at least one bin, got %d", c.Bins)
	}
	return nil
}
