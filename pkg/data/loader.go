package data

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

//go:embed iris.csv
var irisCSV []byte

var (
	// ErrEmptyTable is returned when a dataset has no rows.
	ErrEmptyTable = errors.New("dataset has no rows")
	// ErrMissingColumn is returned when a dataset lacks a schema column.
	ErrMissingColumn = errors.New("dataset is missing a required column")
)

// missingValues are the raw cell values treated as absent.
var missingValues = []string{"", "NA", "NaN"}

// Load materialises the built-in iris dataset.
func Load() (*Table, error) {
	t, err := Parse(bytes.NewReader(irisCSV))
	if err != nil {
		return nil, errors.Wrap(err, "loading built-in iris dataset")
	}
	return t, nil
}

// Parse reads a CSV stream with the iris header and returns the typed table.
// The stream must carry every schema column, in schema order, with no
// missing cells and only known species labels.
func Parse(r io.Reader) (*Table, error) {
	types := make(map[string]series.Type, len(Columns))
	for _, c := range NumericColumns {
		types[c.String()] = series.Float
	}
	types[SpeciesColumn.String()] = series.String

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "reading csv")
	}
	if err := checkSchema(df); err != nil {
		return nil, err
	}
	if df.Nrow() == 0 {
		return nil, ErrEmptyTable
	}

	n := df.Nrow()
	rows := make([]Row, n)
	for _, c := range NumericColumns {
		col := df.Col(c.String())
		nan := col.IsNaN()
		vals := col.Float()
		for i := 0; i < n; i++ {
			if nan[i] {
				return nil, errors.Errorf("row %d: missing or malformed %q", i, c)
			}
			rows[i].Measurements[c] = vals[i]
		}
	}

	labels := df.Col(SpeciesColumn.String())
	nan := labels.IsNaN()
	for i, rec := range labels.Records() {
		s := Species(rec)
		if nan[i] || !s.Valid() {
			return nil, errors.Errorf("row %d: unknown species %q", i, rec)
		}
		rows[i].Species = s
	}

	return &Table{rows: rows, frame: df}, nil
}

func checkSchema(df dataframe.DataFrame) error {
	names := df.Names()
	if len(names) != len(Columns) {
		return errors.Wrapf(ErrMissingColumn, "got %d columns, want %d", len(names), len(Columns))
	}
	for i, c := range Columns {
		if names[i] != c.String() {
			return errors.Wrapf(ErrMissingColumn, "column %d is %q, want %q", i, names[i], c)
		}
	}
	return nil
}
