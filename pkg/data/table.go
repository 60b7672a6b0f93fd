package data

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the immutable in-memory dataset. It keeps the typed rows alongside
// the dataframe they were parsed from.
type Table struct {
	rows  []Row
	frame dataframe.DataFrame
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns a copy of every row in load order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Head returns up to n leading rows.
func (t *Table) Head(n int) []Row {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return t.Rows()[:n]
}

// Values returns a numeric column in row order. It returns nil for the label
// column.
func (t *Table) Values(c Column) []float64 {
	if !c.IsNumeric() {
		return nil
	}
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Measurements[c]
	}
	return out
}

// Labels returns the species column in row order.
func (t *Table) Labels() []Species {
	out := make([]Species, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Species
	}
	return out
}

// Frame returns a copy of the underlying dataframe.
func (t *Table) Frame() dataframe.DataFrame { return t.frame.Copy() }

// HasColumn reports whether the dataframe carries the named column.
func (t *Table) HasColumn(c Column) bool {
	for _, n := range t.frame.Names() {
		if n == c.String() {
			return true
		}
	}
	return false
}

// Types returns the storage type of every column in schema order: "float64"
// for measurements and "category" for the label.
func (t *Table) Types() []string {
	out := make([]string, 0, len(Columns))
	for _, c := range Columns {
		out = append(out, dtype(t.frame.Col(c.String()).Type()))
	}
	return out
}

// Missing counts the absent cells of every column in schema order.
func (t *Table) Missing() []int {
	out := make([]int, 0, len(Columns))
	for _, c := range Columns {
		n := 0
		for _, nan := range t.frame.Col(c.String()).IsNaN() {
			if nan {
				n++
			}
		}
		out = append(out, n)
	}
	return out
}

// NonNull counts the present cells of every column in schema order.
func (t *Table) NonNull() []int {
	missing := t.Missing()
	out := make([]int, len(missing))
	for i, m := range missing {
		out[i] = t.frame.Nrow() - m
	}
	return out
}

func dtype(typ series.Type) string {
	switch typ {
	case series.Float:
		return "float64"
	case series.Int:
		return "int64"
	case series.Bool:
		return "bool"
	case series.String:
		return "category"
	}
	return "object"
}
