package tuplebatch

import (
	"fmt"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// Sealed typed columns. Each stores its values in a typed slice and is
// immutable once handed to a TupleBatch.

type boolColumn struct{ values []bool }

func (c *boolColumn) Type() myria.ColumnType         { return &myria.BoolColumnType{} }
func (c *boolColumn) Length() int                    { return len(c.values) }
func (c *boolColumn) GetValue(row int) interface{}   { return c.values[row] }

type int32Column struct{ values []int32 }

func (c *int32Column) Type() myria.ColumnType        { return &myria.Int32ColumnType{} }
func (c *int32Column) Length() int                   { return len(c.values) }
func (c *int32Column) GetValue(row int) interface{}  { return c.values[row] }

type int64Column struct{ values []int64 }

func (c *int64Column) Type() myria.ColumnType        { return &myria.Int64ColumnType{} }
func (c *int64Column) Length() int                   { return len(c.values) }
func (c *int64Column) GetValue(row int) interface{}  { return c.values[row] }

type float32Column struct{ values []float32 }

func (c *float32Column) Type() myria.ColumnType       { return &myria.Float32ColumnType{} }
func (c *float32Column) Length() int                  { return len(c.values) }
func (c *float32Column) GetValue(row int) interface{} { return c.values[row] }

type float64Column struct{ values []float64 }

func (c *float64Column) Type() myria.ColumnType       { return &myria.Float64ColumnType{} }
func (c *float64Column) Length() int                  { return len(c.values) }
func (c *float64Column) GetValue(row int) interface{} { return c.values[row] }

type stringColumn struct{ values []string }

func (c *stringColumn) Type() myria.ColumnType        { return &myria.StringColumnType{} }
func (c *stringColumn) Length() int                   { return len(c.values) }
func (c *stringColumn) GetValue(row int) interface{}  { return c.values[row] }

// columnBuffer accumulates values for a single column of a TupleBatchBuffer,
// sealing them into an immutable Column once the batch is complete
type columnBuffer interface {
	append(v interface{}) error
	length() int
	seal() myria.Column
}

func valueMismatch(columnType myria.ColumnType, v interface{}) error {
	return errors.TypeMismatchError{
		Expected: fmt.Sprintf("%T", v),
		Actual:   myria.ColumnTypeName(columnType),
	}
}

type boolColumnBuffer struct{ values []bool }

func (b *boolColumnBuffer) append(v interface{}) error {
	val, ok := v.(bool)
	if !ok {
		return valueMismatch(&myria.BoolColumnType{}, v)
	}
	if len(b.values) >= myria.BatchSize {
		return errors.TupleBatchFullError{}
	}
	b.values = append(b.values, val)
	return nil
}
func (b *boolColumnBuffer) length() int { return len(b.values) }
func (b *boolColumnBuffer) seal() myria.Column {
	col := &boolColumn{values: append([]bool{}, b.values...)}
	b.values = b.values[:0]
	return col
}

type int32ColumnBuffer struct{ values []int32 }

func (b *int32ColumnBuffer) append(v interface{}) error {
	val, ok := v.(int32)
	if !ok {
		return valueMismatch(&myria.Int32ColumnType{}, v)
	}
	if len(b.values) >= myria.BatchSize {
		return errors.TupleBatchFullError{}
	}
	b.values = append(b.values, val)
	return nil
}
func (b *int32ColumnBuffer) length() int { return len(b.values) }
func (b *int32ColumnBuffer) seal() myria.Column {
	col := &int32Column{values: append([]int32{}, b.values...)}
	b.values = b.values[:0]
	return col
}

type int64ColumnBuffer struct{ values []int64 }

func (b *int64ColumnBuffer) append(v interface{}) error {
	val, ok := v.(int64)
	if !ok {
		return valueMismatch(&myria.Int64ColumnType{}, v)
	}
	if len(b.values) >= myria.BatchSize {
		return errors.TupleBatchFullError{}
	}
	b.values = append(b.values, val)
	return nil
}
func (b *int64ColumnBuffer) length() int { return len(b.values) }
func (b *int64ColumnBuffer) seal() myria.Column {
	col := &int64Column{values: append([]int64{}, b.values...)}
	b.values = b.values[:0]
	return col
}

type float32ColumnBuffer struct{ values []float32 }

func (b *float32ColumnBuffer) append(v interface{}) error {
	val, ok := v.(float32)
	if !ok {
		return valueMismatch(&myria.Float32ColumnType{}, v)
	}
	if len(b.values) >= myria.BatchSize {
		return errors.TupleBatchFullError{}
	}
	b.values = append(b.values, val)
	return nil
}
func (b *float32ColumnBuffer) length() int { return len(b.values) }
func (b *float32ColumnBuffer) seal() myria.Column {
	col := &float32Column{values: append([]float32{}, b.values...)}
	b.values = b.values[:0]
	return col
}

type float64ColumnBuffer struct{ values []float64 }

func (b *float64ColumnBuffer) append(v interface{}) error {
	val, ok := v.(float64)
	if !ok {
		return valueMismatch(&myria.Float64ColumnType{}, v)
	}
	if len(b.values) >= myria.BatchSize {
		return errors.TupleBatchFullError{}
	}
	b.values = append(b.values, val)
	return nil
}
func (b *float64ColumnBuffer) length() int { return len(b.values) }
func (b *float64ColumnBuffer) seal() myria.Column {
	col := &float64Column{values: append([]float64{}, b.values...)}
	b.values = b.values[:0]
	return col
}

type stringColumnBuffer struct{ values []string }

func (b *stringColumnBuffer) append(v interface{}) error {
	val, ok := v.(string)
	if !ok {
		return valueMismatch(&myria.StringColumnType{}, v)
	}
	if len(b.values) >= myria.BatchSize {
		return errors.TupleBatchFullError{}
	}
	b.values = append(b.values, val)
	return nil
}
func (b *stringColumnBuffer) length() int { return len(b.values) }
func (b *stringColumnBuffer) seal() myria.Column {
	col := &stringColumn{values: append([]string{}, b.values...)}
	b.values = b.values[:0]
	return col
}

// createColumnBuffer creates an empty columnBuffer for the given ColumnType
func createColumnBuffer(ct myria.ColumnType) (columnBuffer, error) {
	switch ct.(type) {
	case *myria.BoolColumnType:
		return &boolColumnBuffer{}, nil
	case *myria.Int32ColumnType:
		return &int32ColumnBuffer{}, nil
	case *myria.Int64ColumnType:
		return &int64ColumnBuffer{}, nil
	case *myria.Float32ColumnType:
		return &float32ColumnBuffer{}, nil
	case *myria.Float64ColumnType:
		return &float64ColumnBuffer{}, nil
	case *myria.StringColumnType:
		return &stringColumnBuffer{}, nil
	default:
		return nil, fmt.Errorf("%s is not a supported ColumnType", myria.ColumnTypeName(ct))
	}
}
