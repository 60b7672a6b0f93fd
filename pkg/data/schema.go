package data

// Column identifies one field of the iris schema. The order of the constants
// is the order of the columns in the dataset.
type Column int

const (
	SepalLength Column = iota
	SepalWidth
	PetalLength
	PetalWidth
	SpeciesColumn
)

// NumMeasurements is the number of numeric columns in a Row.
const NumMeasurements = 4

var columnNames = [...]string{
	SepalLength:   "sepal length (cm)",
	SepalWidth:    "sepal width (cm)",
	PetalLength:   "petal length (cm)",
	PetalWidth:    "petal width (cm)",
	SpeciesColumn: "species",
}

// Columns lists every column in schema order.
var Columns = []Column{SepalLength, SepalWidth, PetalLength, PetalWidth, SpeciesColumn}

// NumericColumns lists the measurement columns in schema order.
var NumericColumns = []Column{SepalLength, SepalWidth, PetalLength, PetalWidth}

// String returns the column header as it appears in the dataset.
func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return "unknown"
	}
	return columnNames[c]
}

// IsNumeric reports whether c is one of the measurement columns.
func (c Column) IsNumeric() bool { return c >= SepalLength && c <= PetalWidth }

// Species is the categorical label of a Row.
type Species string

const (
	Setosa     Species = "setosa"
	Versicolor Species = "versicolor"
	Virginica  Species = "virginica"
)

// SpeciesNames holds the three labels in dataset order.
var SpeciesNames = []Species{Setosa, Versicolor, Virginica}

// Valid reports whether s is one of the known labels.
func (s Species) Valid() bool {
	for _, n := range SpeciesNames {
		if s == n {
			return true
		}
	}
	return false
}

// Row is a single flower: four measurements in centimetres and its label.
type Row struct {
	Measurements [NumMeasurements]float64
	Species      Species
}

// Value returns the measurement stored for a numeric column, or 0 for the
// label column.
func (r Row) Value(c Column) float64 {
	if !c.IsNumeric() {
		return 0
	}
	return r.Measurements[c]
}
