package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// schemaImpl is Myria's internal implementation of Schema
type schemaImpl struct {
	names []string
	types []myria.ColumnType
	index map[string]int
}

// CreateSchema is a factory for Schemas. Column names must be unique.
func CreateSchema(names []string, types []myria.ColumnType) (myria.Schema, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("Schema requires one type per column name (%d names, %d types)", len(names), len(types))
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, exists := index[name]; exists {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		index[name] = i
	}
	s := &schemaImpl{
		names: append([]string{}, names...),
		types: append([]myria.ColumnType{}, types...),
		index: index,
	}
	return s, nil
}

// NumColumns returns the number of columns in this Schema
func (s *schemaImpl) NumColumns() int {
	return len(s.names)
}

// ColumnName returns the name of the i-th column
func (s *schemaImpl) ColumnName(i int) string {
	return s.names[i]
}

// ColumnType returns the ColumnType of the i-th column
func (s *schemaImpl) ColumnType(i int) myria.ColumnType {
	return s.types[i]
}

// ColumnNames returns a copy of the ordered column names of this Schema
func (s *schemaImpl) ColumnNames() []string {
	return append([]string{}, s.names...)
}

// ColumnTypes returns a copy of the ordered ColumnTypes of this Schema
func (s *schemaImpl) ColumnTypes() []myria.ColumnType {
	return append([]myria.ColumnType{}, s.types...)
}

// IndexOf returns the position of the named column within this Schema
func (s *schemaImpl) IndexOf(colName string) (int, error) {
	i, ok := s.index[colName]
	if !ok {
		return -1, errors.NoSuchColumnError{Name: colName}
	}
	return i, nil
}

// HasColumn returns true iff this Schema contains the named column
func (s *schemaImpl) HasColumn(colName string) bool {
	_, ok := s.index[colName]
	return ok
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schemaImpl) Equals(otherSchema myria.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for i := range s.names {
		if s.names[i] != otherSchema.ColumnName(i) {
			return fmt.Errorf("Column %d names do not match (%s vs %s)", i, s.names[i], otherSchema.ColumnName(i))
		}
		if reflect.TypeOf(s.types[i]) != reflect.TypeOf(otherSchema.ColumnType(i)) {
			return fmt.Errorf("Column %s types do not match", s.names[i])
		}
		if s.types[i].Size() != otherSchema.ColumnType(i).Size() {
			return fmt.Errorf("Column %s type sizes do not match", s.names[i])
		}
	}
	return nil
}

// Project returns a new Schema containing only the indicated columns, in order
func (s *schemaImpl) Project(columnIndices []int) (myria.Schema, error) {
	names := make([]string, 0, len(columnIndices))
	types := make([]myria.ColumnType, 0, len(columnIndices))
	for _, i := range columnIndices {
		if i < 0 || i >= len(s.names) {
			return nil, errors.ColumnOutOfBoundsError{Column: i, NumColumns: len(s.names)}
		}
		names = append(names, s.names[i])
		types = append(types, s.types[i])
	}
	return CreateSchema(names, types)
}

// ToString returns a string representation of this Schema
func (s *schemaImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "(")
	for i, name := range s.names {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%s %s", name, myria.ColumnTypeName(s.types[i]))
	}
	fmt.Fprint(&res, ")")
	return res.String()
}
