package tuplebatch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// tupleBatchImpl is Myria's internal implementation of TupleBatch
type tupleBatchImpl struct {
	schema  myria.Schema
	columns []myria.Column
	numRows int
	valid   *roaring.Bitmap
}

// CreateTupleBatch creates an immutable TupleBatch in which every row is
// valid. The batch is structurally validated before being returned.
func CreateTupleBatch(schema myria.Schema, columns []myria.Column, numRows int) (myria.TupleBatch, error) {
	valid := roaring.New()
	if numRows > 0 {
		valid.AddRange(0, uint64(numRows))
	}
	b := &tupleBatchImpl{schema: schema, columns: columns, numRows: numRows, valid: valid}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// createTupleBatchWithValidity creates a TupleBatch sharing column storage
// with an existing one, under a caller-supplied validity bitmap. The bitmap
// is cloned, since it is the only piece of batch state anyone mutates.
func createTupleBatchWithValidity(schema myria.Schema, columns []myria.Column, numRows int, valid *roaring.Bitmap) (*tupleBatchImpl, error) {
	b := &tupleBatchImpl{schema: schema, columns: columns, numRows: numRows, valid: valid.Clone()}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Schema returns the Schema of the tuples in this batch
func (b *tupleBatchImpl) Schema() myria.Schema {
	return b.schema
}

// NumRows returns the number of rows physically stored in this batch
func (b *tupleBatchImpl) NumRows() int {
	return b.numRows
}

// NumValidRows returns the cardinality of the validity bitmap
func (b *tupleBatchImpl) NumValidRows() int {
	return int(b.valid.GetCardinality())
}

// RowIsValid returns true iff the given row is within bounds and valid
func (b *tupleBatchImpl) RowIsValid(row int) bool {
	return row >= 0 && row < b.numRows && b.valid.Contains(uint32(row))
}

// ValidRowIndices returns the indices of all valid rows, in ascending order
func (b *tupleBatchImpl) ValidRowIndices() []int {
	res := make([]int, 0, b.valid.GetCardinality())
	it := b.valid.Iterator()
	for it.HasNext() {
		res = append(res, int(it.Next()))
	}
	return res
}

// Validate performs a structural self-check of this batch
func (b *tupleBatchImpl) Validate() error {
	if b.schema == nil {
		return errors.CorruptBatchError{Reason: "batch has no schema"}
	}
	if b.numRows < 0 || b.numRows > myria.BatchSize {
		return errors.CorruptBatchError{Reason: fmt.Sprintf("row count %d is outside [0, %d]", b.numRows, myria.BatchSize)}
	}
	if len(b.columns) != b.schema.NumColumns() {
		return errors.CorruptBatchError{Reason: fmt.Sprintf("%d columns for a schema of %d columns", len(b.columns), b.schema.NumColumns())}
	}
	for i, col := range b.columns {
		if col.Length() != b.numRows {
			return errors.CorruptBatchError{Reason: fmt.Sprintf("column %d holds %d values for a row count of %d", i, col.Length(), b.numRows)}
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(b.schema.ColumnType(i)) {
			return errors.CorruptBatchError{Reason: fmt.Sprintf("column %d is typed %s but the schema declares %s", i, myria.ColumnTypeName(col.Type()), myria.ColumnTypeName(b.schema.ColumnType(i)))}
		}
	}
	if int(b.valid.GetCardinality()) > b.numRows {
		return errors.CorruptBatchError{Reason: fmt.Sprintf("validity bitmap marks %d rows valid out of %d", b.valid.GetCardinality(), b.numRows)}
	}
	if !b.valid.IsEmpty() && int(b.valid.Maximum()) >= myria.BatchSize {
		return errors.CorruptBatchError{Reason: fmt.Sprintf("validity bitmap marks row %d, outside [0, %d)", b.valid.Maximum(), myria.BatchSize)}
	}
	return nil
}

// Filter returns a new TupleBatch retaining only the valid rows for which fn
// returns true. Column storage is shared with this batch; only the validity
// bitmap is cloned.
func (b *tupleBatchImpl) Filter(fn myria.FilterOperation) (myria.TupleBatch, error) {
	valid := b.valid.Clone()
	it := b.valid.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		keep, err := fn(b, row)
		if err != nil {
			return nil, err
		}
		if !keep {
			valid.Remove(uint32(row))
		}
	}
	return &tupleBatchImpl{schema: b.schema, columns: b.columns, numRows: b.numRows, valid: valid}, nil
}

// Project returns a new TupleBatch referencing only the indicated columns,
// under a narrowed Schema. Column storage is shared with this batch.
func (b *tupleBatchImpl) Project(columnIndices []int) (myria.TupleBatch, error) {
	newSchema, err := b.schema.Project(columnIndices)
	if err != nil {
		return nil, err
	}
	newColumns := make([]myria.Column, 0, len(columnIndices))
	for _, i := range columnIndices {
		newColumns = append(newColumns, b.columns[i])
	}
	return createTupleBatchWithValidity(newSchema, newColumns, b.numRows, b.valid)
}

func (b *tupleBatchImpl) checkBounds(col int, row int) error {
	if col < 0 || col >= len(b.columns) {
		return errors.ColumnOutOfBoundsError{Column: col, NumColumns: len(b.columns)}
	}
	if row < 0 || row >= b.numRows {
		return errors.RowOutOfBoundsError{Row: row, NumRows: b.numRows}
	}
	return nil
}

// GetBool returns the bool at the specified column and row position
func (b *tupleBatchImpl) GetBool(col int, row int) (bool, error) {
	if err := b.checkBounds(col, row); err != nil {
		return false, err
	}
	c, ok := b.columns[col].(*boolColumn)
	if !ok {
		return false, errors.TypeMismatchError{Expected: "Bool", Actual: myria.ColumnTypeName(b.columns[col].Type())}
	}
	return c.values[row], nil
}

// GetInt32 returns the int32 at the specified column and row position
func (b *tupleBatchImpl) GetInt32(col int, row int) (int32, error) {
	if err := b.checkBounds(col, row); err != nil {
		return 0, err
	}
	c, ok := b.columns[col].(*int32Column)
	if !ok {
		return 0, errors.TypeMismatchError{Expected: "Int32", Actual: myria.ColumnTypeName(b.columns[col].Type())}
	}
	return c.values[row], nil
}

// GetInt64 returns the int64 at the specified column and row position
func (b *tupleBatchImpl) GetInt64(col int, row int) (int64, error) {
	if err := b.checkBounds(col, row); err != nil {
		return 0, err
	}
	c, ok := b.columns[col].(*int64Column)
	if !ok {
		return 0, errors.TypeMismatchError{Expected: "Int64", Actual: myria.ColumnTypeName(b.columns[col].Type())}
	}
	return c.values[row], nil
}

// GetFloat32 returns the float32 at the specified column and row position
func (b *tupleBatchImpl) GetFloat32(col int, row int) (float32, error) {
	if err := b.checkBounds(col, row); err != nil {
		return 0, err
	}
	c, ok := b.columns[col].(*float32Column)
	if !ok {
		return 0, errors.TypeMismatchError{Expected: "Float32", Actual: myria.ColumnTypeName(b.columns[col].Type())}
	}
	return c.values[row], nil
}

// GetFloat64 returns the float64 at the specified column and row position
func (b *tupleBatchImpl) GetFloat64(col int, row int) (float64, error) {
	if err := b.checkBounds(col, row); err != nil {
		return 0, err
	}
	c, ok := b.columns[col].(*float64Column)
	if !ok {
		return 0, errors.TypeMismatchError{Expected: "Float64", Actual: myria.ColumnTypeName(b.columns[col].Type())}
	}
	return c.values[row], nil
}

// GetString returns the string at the specified column and row position
func (b *tupleBatchImpl) GetString(col int, row int) (string, error) {
	if err := b.checkBounds(col, row); err != nil {
		return "", err
	}
	c, ok := b.columns[col].(*stringColumn)
	if !ok {
		return "", errors.TypeMismatchError{Expected: "String", Actual: myria.ColumnTypeName(b.columns[col].Type())}
	}
	return c.values[row], nil
}

// GetValue returns the untyped value at the specified column and row position
func (b *tupleBatchImpl) GetValue(col int, row int) (interface{}, error) {
	if err := b.checkBounds(col, row); err != nil {
		return nil, err
	}
	return b.columns[col].GetValue(row), nil
}

// AppendRowInto appends every field of the given row into buffer
func (b *tupleBatchImpl) AppendRowInto(row int, buffer myria.TupleBatchBuffer) error {
	if row < 0 || row >= b.numRows {
		return errors.RowOutOfBoundsError{Row: row, NumRows: b.numRows}
	}
	for i, col := range b.columns {
		if err := buffer.Put(i, col.GetValue(row)); err != nil {
			return err
		}
	}
	return nil
}

// PartitionInto hashes each valid row of this batch over the given key
// columns and appends it into destinations[hash mod len(destinations)]
func (b *tupleBatchImpl) PartitionInto(destinations []myria.TupleBatchBuffer, keyColumns []int) error {
	if len(destinations) == 0 {
		return fmt.Errorf("PartitionInto requires at least one destination buffer")
	}
	it := b.valid.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		h, err := HashRow(b, row, keyColumns)
		if err != nil {
			return err
		}
		if err := b.AppendRowInto(row, destinations[int(h%uint64(len(destinations)))]); err != nil {
			return err
		}
	}
	return nil
}

// ToString returns a string representation of the valid rows of this batch
func (b *tupleBatchImpl) ToString() string {
	var res strings.Builder
	it := b.valid.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		fmt.Fprint(&res, "|\t")
		for i, col := range b.columns {
			fmt.Fprint(&res, b.schema.ColumnType(i).ToString(col.GetValue(row)))
			fmt.Fprint(&res, "\t|\t")
		}
		fmt.Fprint(&res, "\n")
	}
	return res.String()
}
