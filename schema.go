package myria

// Schema is an ordered sequence of (name, type) pairs describing the columns
// of a TupleBatch. Column names are unique within a Schema.
type Schema interface {
	NumColumns() int
	ColumnName(i int) string
	ColumnType(i int) ColumnType
	ColumnNames() []string
	ColumnTypes() []ColumnType
	IndexOf(colName string) (int, error)
	HasColumn(colName string) bool
	Equals(otherSchema Schema) error
	Project(columnIndices []int) (newSchema Schema, err error)
	ToString() string
}
