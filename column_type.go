package myria

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ColumnTypeName produces a short descriptive name for a ColumnType,
// e.g. "Int32" for Int32ColumnType
func ColumnTypeName(ct ColumnType) string {
	t := reflect.TypeOf(ct)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strings.TrimSuffix(t.Name(), "ColumnType")
}

// ColumnType is an interface which is implemented to define a supported
// column type. Myria provides built-in types covering the values a
// TupleBatch can carry.
type ColumnType interface {
	Size() int                     // returns the size in bytes of a single value of this type, or 0 for variable-length types
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Size in bytes of a bool value
func (b *BoolColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Int32ColumnType is a column type which stores an int32 value
type Int32ColumnType struct{}

// Size in bytes of an int32 value
func (b *Int32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of an Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Size in bytes of an int64 value
func (b *Int64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Size in bytes of a float32 value
func (b *Float32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Size in bytes of a float64 value
func (b *Float64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// StringColumnType is a column type which stores a variable-length string value
type StringColumnType struct{}

// Size in bytes of a string value. Strings are variable-length, so Size returns 0.
func (b *StringColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return v.(string)
}
