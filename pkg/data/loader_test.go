package data

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "sepal length (cm),sepal width (cm),petal length (cm),petal width (cm),species\n"

func TestLoad(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	t.Run("shape", func(t *testing.T) {
		assert.Equal(t, 150, table.Len())
		assert.Equal(t, len(Columns), table.Frame().Ncol())
		assert.Equal(t, 150, table.Frame().Nrow())
	})

	t.Run("three labels, fifty rows each", func(t *testing.T) {
		counts := map[Species]int{}
		for _, s := range table.Labels() {
			counts[s]++
		}
		assert.Len(t, counts, 3)
		for _, s := range SpeciesNames {
			assert.Equal(t, 50, counts[s], "label %s", s)
		}
	})

	t.Run("no missing values", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0, 0, 0}, table.Missing())
		assert.Equal(t, []int{150, 150, 150, 150, 150}, table.NonNull())
	})

	t.Run("types", func(t *testing.T) {
		assert.Equal(t, []string{"float64", "float64", "float64", "float64", "category"}, table.Types())
	})

	t.Run("first and last rows", func(t *testing.T) {
		first := table.Row(0)
		assert.Equal(t, [NumMeasurements]float64{5.1, 3.5, 1.4, 0.2}, first.Measurements)
		assert.Equal(t, Setosa, first.Species)

		last := table.Row(149)
		assert.Equal(t, [NumMeasurements]float64{5.9, 3.0, 5.1, 1.8}, last.Measurements)
		assert.Equal(t, Virginica, last.Species)
	})

	t.Run("values follow row order", func(t *testing.T) {
		sl := table.Values(SepalLength)
		require.Len(t, sl, 150)
		assert.Equal(t, 5.1, sl[0])
		assert.Equal(t, 7.0, sl[50])
		assert.Nil(t, table.Values(SpeciesColumn))
	})

	t.Run("head", func(t *testing.T) {
		head := table.Head(5)
		require.Len(t, head, 5)
		assert.Equal(t, 4.6, head[3].Value(SepalLength))
		assert.Len(t, table.Head(500), 150)
	})

	t.Run("rows are copies", func(t *testing.T) {
		rows := table.Rows()
		rows[0].Measurements[0] = 99
		assert.Equal(t, 5.1, table.Row(0).Value(SepalLength))
	})
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := header + "5.1,3.5,1.4,0.2,setosa\n6.3,3.3,6.0,2.5,virginica\n"
		table, err := Parse(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []Species{Setosa, Virginica}, table.Labels())
		assert.True(t, table.HasColumn(SpeciesColumn))
	})

	t.Run("missing column", func(t *testing.T) {
		in := "sepal length (cm),sepal width (cm),petal length (cm),petal width (cm)\n5.1,3.5,1.4,0.2\n"
		_, err := Parse(strings.NewReader(in))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn))
	})

	t.Run("columns out of order", func(t *testing.T) {
		in := "species,sepal length (cm),sepal width (cm),petal length (cm),petal width (cm)\nsetosa,5.1,3.5,1.4,0.2\n"
		_, err := Parse(strings.NewReader(in))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn))
	})

	t.Run("malformed measurement", func(t *testing.T) {
		in := header + "5.1,abc,1.4,0.2,setosa\n"
		_, err := Parse(strings.NewReader(in))
		assert.Error(t, err)
	})

	t.Run("missing cell", func(t *testing.T) {
		in := header + "5.1,,1.4,0.2,setosa\n"
		_, err := Parse(strings.NewReader(in))
		assert.Error(t, err)
	})

	t.Run("unknown label", func(t *testing.T) {
		in := header + "5.1,3.5,1.4,0.2,rose\n"
		_, err := Parse(strings.NewReader(in))
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestColumn(t *testing.T) {
	assert.Equal(t, "petal width (cm)", PetalWidth.String())
	assert.Equal(t, "species", SpeciesColumn.String())
	assert.Equal(t, "unknown", Column(42).String())
	assert.True(t, SepalWidth.IsNumeric())
	assert.False(t, SpeciesColumn.IsNumeric())
	assert.Equal(t, 0.0, Row{Species: Setosa}.Value(SpeciesColumn))
}
