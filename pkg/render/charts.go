package render

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"irisplot/pkg/aggregate"
	"irisplot/pkg/data"
	"irisplot/pkg/stats"
)

const (
	// barPadding keeps the outer bars half a slot away from the plot edges.
	barPadding = 0.5
	// barHeadroom leaves space above the tallest bar.
	barHeadroom = 1.1
)

var (
	titles = map[data.Column]string{
		data.SepalLength: "Sepal Length",
		data.SepalWidth:  "Sepal Width",
		data.PetalLength: "Petal Length",
		data.PetalWidth:  "Petal Width",
	}
	axisLabels = map[data.Column]string{
		data.SepalLength: "Sepal Length (cm)",
		data.SepalWidth:  "Sepal Width (cm)",
		data.PetalLength: "Petal Length (cm)",
		data.PetalWidth:  "Petal Width (cm)",
	}
)

func numeric(c data.Column) error {
	if !c.IsNumeric() {
		return errors.Errorf("column %q is not numeric", c)
	}
	return nil
}

// TrendChart plots column c against the row index as a single line.
func (r *Renderer) TrendChart(t *data.Table, c data.Column) (*plot.Plot, error) {
	if err := numeric(c); err != nil {
		return nil, err
	}
	p := r.newPlot(titles[c]+" Trend", "Index", axisLabels[c])

	vals := t.Values(c)
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = r.cfg.Style.LineColor
	l.LineStyle.Width = r.cfg.Style.LineWidth
	p.Add(l)
	p.Legend.Add(titles[c], l)
	p.Legend.Top = true
	return p, nil
}

// CategoryBars returns one label and one bar height per group, in the
// aggregate's label order.
func CategoryBars(agg *aggregate.Aggregate, c data.Column) ([]string, plotter.Values) {
	labels := make([]string, len(agg.Labels))
	for i, l := range agg.Labels {
		labels[i] = string(l)
	}
	return labels, plotter.Values(agg.Column(c))
}

// CategoryBarChart draws the per-species mean of column c as one bar per
// label.
func (r *Renderer) CategoryBarChart(agg *aggregate.Aggregate, c data.Column) (*plot.Plot, error) {
	if err := numeric(c); err != nil {
		return nil, err
	}
	if agg == nil || len(agg.Labels) == 0 {
		return nil, aggregate.ErrNoGroups
	}
	p := r.newPlot("Average "+titles[c]+" per Species", "Species", axisLabels[c])

	labels, values := CategoryBars(agg, c)
	for i, v := range values {
		b, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(80))
		if err != nil {
			return nil, err
		}
		b.XMin = float64(i)
		b.Color = r.cfg.Style.Color(i)
		b.LineStyle.Width = 0
		p.Add(b)
	}
	p.NominalX(labels...)
	p.X.Min = -barPadding
	p.X.Max = float64(len(values)-1) + barPadding
	p.Y.Min = 0
	if _, max := stats.MinMax(values); max > 0 {
		p.Y.Max = max * barHeadroom
	}
	return p, nil
}

// Histogram draws the frequency distribution of column c using the
// configured number of equal-width bins spanning the observed range.
func (r *Renderer) Histogram(t *data.Table, c data.Column) (*plot.Plot, error) {
	h, err := r.histogram(t, c)
	if err != nil {
		return nil, err
	}
	p := r.newPlot("Distribution of "+titles[c], axisLabels[c], "Frequency")
	p.Add(h)
	return p, nil
}

func (r *Renderer) histogram(t *data.Table, c data.Column) (*plotter.Histogram, error) {
	if err := numeric(c); err != nil {
		return nil, err
	}
	h, err := plotter.NewHist(plotter.Values(t.Values(c)), r.cfg.Bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = r.cfg.Style.HistFill
	h.LineStyle.Color = r.cfg.Style.HistEdge
	return h, nil
}

// ScatterChart plots x against y with one point per row, one colour per
// species, and a legend naming the species.
func (r *Renderer) ScatterChart(t *data.Table, agg *aggregate.Aggregate, x, y data.Column) (*plot.Plot, error) {
	if err := numeric(x); err != nil {
		return nil, err
	}
	if err := numeric(y); err != nil {
		return nil, err
	}
	if agg == nil || len(agg.Labels) == 0 {
		return nil, aggregate.ErrNoGroups
	}
	p := r.newPlot(titles[x]+" vs "+titles[y], axisLabels[x], axisLabels[y])

	groups := make(map[data.Species]plotter.XYs, len(agg.Labels))
	for _, row := range t.Rows() {
		groups[row.Species] = append(groups[row.Species], plotter.XY{X: row.Value(x), Y: row.Value(y)})
	}
	for i, label := range agg.Labels {
		pts := groups[label]
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.Color = r.cfg.Style.Color(i)
		s.Shape = draw.CircleGlyph{}
		s.Radius = r.cfg.Style.PointRadius
		p.Add(s)
		p.Legend.Add(string(label), s)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}
