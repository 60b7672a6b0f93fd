// Package explore prints the descriptive report of the iris table.
package explore

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"irisplot/pkg/aggregate"
	"irisplot/pkg/config"
	"irisplot/pkg/data"
	"irisplot/pkg/stats"
)

// Explorer writes the report sections to out. Output depends only on the
// table, so two runs over the same data print the same bytes.
type Explorer struct {
	out  *stickyWriter
	head int
}

// New returns an Explorer printing cfg.HeadRows sample rows.
func New(out io.Writer, cfg config.Config) *Explorer {
	return &Explorer{out: &stickyWriter{w: out}, head: cfg.HeadRows}
}

// stickyWriter remembers the first write error and drops every later write,
// so a section only has to check once at its end.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

// Report prints, in order: the leading rows, column types with non-null
// counts, missing values per column and summary statistics of the numeric
// columns.
func (e *Explorer) Report(t *data.Table) error {
	if t.Len() == 0 {
		return data.ErrEmptyTable
	}
	for _, section := range []func(*data.Table) error{e.Head, e.Info, e.Missing, e.Describe} {
		if err := section(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *Explorer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
}

// flush ends a section with a blank line and reports the first write error
// of the section.
func (e *Explorer) flush(w *tabwriter.Writer, section string) error {
	if w != nil {
		w.Flush()
	}
	fmt.Fprintln(e.out)
	return errors.Wrapf(e.out.err, "writing %s", section)
}

// Head prints the first rows in schema order.
func (e *Explorer) Head(t *data.Table) error {
	fmt.Fprintf(e.out, "First %d rows of the dataset:\n", e.head)
	w := e.table()
	fmt.Fprintln(w, "\t"+joinColumns(data.Columns))
	for i, r := range t.Head(e.head) {
		cells := []string{fmt.Sprint(i)}
		for _, c := range data.NumericColumns {
			cells = append(cells, fmt.Sprintf("%.1f", r.Value(c)))
		}
		cells = append(cells, string(r.Species))
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return e.flush(w, "head")
}

// Info prints each column's type and non-null count.
func (e *Explorer) Info(t *data.Table) error {
	fmt.Fprintln(e.out, "Dataset info:")
	fmt.Fprintf(e.out, "Table: %d entries, 0 to %d\n", t.Len(), t.Len()-1)
	fmt.Fprintf(e.out, "Data columns (total %d columns):\n", len(data.Columns))

	types := t.Types()
	nonNull := t.NonNull()
	w := e.table()
	fmt.Fprintln(w, " #\tColumn\tNon-Null Count\tDtype")
	fmt.Fprintln(w, "---\t------\t--------------\t-----")
	for i, c := range data.Columns {
		fmt.Fprintf(w, " %d\t%s\t%d non-null\t%s\n", i, c, nonNull[i], types[i])
	}
	w.Flush()

	counts := map[string]int{}
	for _, typ := range types {
		counts[typ]++
	}
	names := make([]string, 0, len(counts))
	for typ := range counts {
		names = append(names, typ)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, typ := range names {
		parts[i] = fmt.Sprintf("%s(%d)", typ, counts[typ])
	}
	fmt.Fprintf(e.out, "dtypes: %s\n", strings.Join(parts, ", "))
	return e.flush(nil, "info")
}

// Missing prints the number of absent cells per column.
func (e *Explorer) Missing(t *data.Table) error {
	fmt.Fprintln(e.out, "Missing values per column:")
	w := e.table()
	missing := t.Missing()
	for i, c := range data.Columns {
		fmt.Fprintf(w, "%s\t%d\n", c, missing[i])
	}
	return e.flush(w, "missing values")
}

// Describe prints count, mean, std, min, quartiles and max for every numeric
// column.
func (e *Explorer) Describe(t *data.Table) error {
	fmt.Fprintln(e.out, "Summary statistics:")
	summaries := make([][]float64, len(data.NumericColumns))
	for i, c := range data.NumericColumns {
		summaries[i] = stats.Describe(t.Values(c)).Values()
	}

	w := e.table()
	fmt.Fprintln(w, "\t"+joinColumns(data.NumericColumns))
	for k, label := range stats.SummaryLabels {
		cells := []string{label}
		for i := range data.NumericColumns {
			cells = append(cells, fmt.Sprintf("%.6f", summaries[i][k]))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return e.flush(w, "summary statistics")
}

// GroupMeans prints the per-species means in the aggregate's label order.
func (e *Explorer) GroupMeans(agg *aggregate.Aggregate) error {
	fmt.Fprintln(e.out, "Mean values by species:")
	w := e.table()
	fmt.Fprintln(w, "\t"+joinColumns(data.NumericColumns))
	fmt.Fprintln(w, data.SpeciesColumn.String())
	for _, label := range agg.Labels {
		cells := []string{string(label)}
		for _, c := range data.NumericColumns {
			cells = append(cells, fmt.Sprintf("%.3f", agg.Mean(label, c)))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return e.flush(w, "group means")
}

func joinColumns(cols []data.Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.String()
	}
	return strings.Join(names, "\t")
}
