// Package render draws the four iris charts with gonum/plot and writes them
// as PNG files.
package render

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"irisplot/pkg/aggregate"
	"irisplot/pkg/config"
	"irisplot/pkg/data"
)

// Output file names, relative to the configured output directory.
const (
	TrendFile        = "sepal_length_trend.png"
	CategoryBarFile  = "average_petal_length_per_species.png"
	HistogramFile    = "sepal_width_distribution.png"
	ScatterFile      = "sepal_vs_petal_scatter.png"
	outputPermission = 0o755
)

// Artifacts lists every file RenderAll writes, in write order.
var Artifacts = []string{TrendFile, CategoryBarFile, HistogramFile, ScatterFile}

// Renderer turns a table and its aggregate into chart files.
type Renderer struct {
	cfg config.Config
	log logrus.FieldLogger
}

// New returns a Renderer drawing with cfg.Style into cfg.OutputDir.
func New(cfg config.Config, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{cfg: cfg, log: log}
}

// RenderAll creates the output directory when needed and writes the four
// charts, overwriting earlier copies. Other files in the directory are left
// alone. It returns the paths written.
func (r *Renderer) RenderAll(t *data.Table, agg *aggregate.Aggregate) ([]string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, outputPermission); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %q", r.cfg.OutputDir)
	}

	charts := []struct {
		file  string
		build func() (*plot.Plot, error)
	}{
		{TrendFile, func() (*plot.Plot, error) { return r.TrendChart(t, data.SepalLength) }},
		{CategoryBarFile, func() (*plot.Plot, error) { return r.CategoryBarChart(agg, data.PetalLength) }},
		{HistogramFile, func() (*plot.Plot, error) { return r.Histogram(t, data.SepalWidth) }},
		{ScatterFile, func() (*plot.Plot, error) { return r.ScatterChart(t, agg, data.SepalLength, data.PetalLength) }},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		p, err := c.build()
		if err != nil {
			return paths, errors.Wrapf(err, "building %s", c.file)
		}
		path := filepath.Join(r.cfg.OutputDir, c.file)
		if err := p.Save(r.cfg.Style.Width, r.cfg.Style.Height, path); err != nil {
			return paths, errors.Wrapf(err, "saving %s", path)
		}
		r.log.WithField("path", path).Debug("chart saved")
		paths = append(paths, path)
	}
	return paths, nil
}

// newPlot applies the configured style to an empty plot.
func (r *Renderer) newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.BackgroundColor = r.cfg.Style.Background
	if r.cfg.Style.Grid {
		p.Add(plotter.NewGrid())
	}
	return p
}
