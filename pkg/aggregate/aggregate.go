// Package aggregate computes per-species summaries of the iris table.
package aggregate

import (
	"sort"

	"github.com/pkg/errors"

	"irisplot/pkg/data"
	"irisplot/pkg/stats"
)

// ErrNoGroups is returned when grouping yields no labelled rows.
var ErrNoGroups = errors.New("grouping produced no groups")

// Means holds one arithmetic mean per measurement column, indexed by
// data.Column.
type Means [data.NumMeasurements]float64

// Aggregate maps each species label to the means of its rows. Labels is the
// iteration order used by every consumer; it is sorted so charts come out the
// same on every run.
type Aggregate struct {
	Labels []data.Species
	Means  map[data.Species]Means
	Counts map[data.Species]int
}

// BySpecies groups the table by its label column and averages every
// measurement column inside each group.
func BySpecies(t *data.Table) (*Aggregate, error) {
	if t.Len() == 0 {
		return nil, data.ErrEmptyTable
	}
	if !t.HasColumn(data.SpeciesColumn) {
		return nil, errors.Wrapf(data.ErrMissingColumn, "cannot group by %q", data.SpeciesColumn)
	}

	groups := t.Frame().GroupBy(data.SpeciesColumn.String()).GetGroups()
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	agg := &Aggregate{
		Means:  make(map[data.Species]Means, len(groups)),
		Counts: make(map[data.Species]int, len(groups)),
	}
	for _, g := range groups {
		if g.Nrow() == 0 {
			continue
		}
		label := data.Species(g.Col(data.SpeciesColumn.String()).Records()[0])
		var m Means
		for _, c := range data.NumericColumns {
			m[c] = stats.Mean(g.Col(c.String()).Float())
		}
		agg.Labels = append(agg.Labels, label)
		agg.Means[label] = m
		agg.Counts[label] = g.Nrow()
	}
	if len(agg.Labels) == 0 {
		return nil, ErrNoGroups
	}
	sort.Slice(agg.Labels, func(i, j int) bool { return agg.Labels[i] < agg.Labels[j] })
	return agg, nil
}

// Mean returns the mean of column c for the given label.
func (a *Aggregate) Mean(label data.Species, c data.Column) float64 {
	if !c.IsNumeric() {
		return 0
	}
	return a.Means[label][c]
}

// Column returns the means of column c in label order.
func (a *Aggregate) Column(c data.Column) []float64 {
	out := make([]float64, len(a.Labels))
	for i, l := range a.Labels {
		out[i] = a.Mean(l, c)
	}
	return out
}
