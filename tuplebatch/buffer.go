package tuplebatch

import (
	"fmt"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// tupleBatchBufferImpl is Myria's internal implementation of TupleBatchBuffer
type tupleBatchBufferImpl struct {
	schema        myria.Schema
	builders      []columnBuffer
	columnsPut    []bool
	numColumnsPut int
	pendingRows   int
	ready         []myria.TupleBatch
}

// CreateTupleBatchBuffer creates an empty TupleBatchBuffer for the given Schema
func CreateTupleBatchBuffer(schema myria.Schema) (myria.TupleBatchBuffer, error) {
	if schema == nil {
		return nil, fmt.Errorf("TupleBatchBuffer requires a Schema")
	}
	builders := make([]columnBuffer, schema.NumColumns())
	for i := range builders {
		cb, err := createColumnBuffer(schema.ColumnType(i))
		if err != nil {
			return nil, err
		}
		builders[i] = cb
	}
	return &tupleBatchBufferImpl{
		schema:     schema,
		builders:   builders,
		columnsPut: make([]bool, schema.NumColumns()),
	}, nil
}

// Schema returns the Schema this buffer accumulates rows for
func (t *tupleBatchBufferImpl) Schema() myria.Schema {
	return t.schema
}

// NumPendingRows returns the number of complete rows accumulated but not yet sealed
func (t *tupleBatchBufferImpl) NumPendingRows() int {
	return t.pendingRows
}

// NumReadyBatches returns the number of sealed batches awaiting a Pop
func (t *tupleBatchBufferImpl) NumReadyBatches() int {
	return len(t.ready)
}

// Put appends a single field value to the given column of the row currently
// being accumulated. Once every column of the current row has a value, the
// row is complete; once BatchSize rows are complete, a batch is sealed.
func (t *tupleBatchBufferImpl) Put(col int, value interface{}) error {
	if col < 0 || col >= len(t.builders) {
		return errors.ColumnOutOfBoundsError{Column: col, NumColumns: len(t.builders)}
	}
	if t.columnsPut[col] {
		return fmt.Errorf("Column %d already has a value for the current row", col)
	}
	if err := t.builders[col].append(value); err != nil {
		return err
	}
	t.columnsPut[col] = true
	t.numColumnsPut++
	if t.numColumnsPut == len(t.builders) {
		for i := range t.columnsPut {
			t.columnsPut[i] = false
		}
		t.numColumnsPut = 0
		t.pendingRows++
		if t.pendingRows == myria.BatchSize {
			return t.sealPending()
		}
	}
	return nil
}

// AppendRow appends one complete row of field values, in column order
func (t *tupleBatchBufferImpl) AppendRow(values []interface{}) error {
	if len(values) != len(t.builders) {
		return fmt.Errorf("Row has %d values for a schema of %d columns", len(values), len(t.builders))
	}
	for i, v := range values {
		if err := t.Put(i, v); err != nil {
			return err
		}
	}
	return nil
}

// sealPending seals the accumulated rows into an immutable TupleBatch,
// resetting internal storage for the next batch
func (t *tupleBatchBufferImpl) sealPending() error {
	columns := make([]myria.Column, len(t.builders))
	for i, cb := range t.builders {
		columns[i] = cb.seal()
	}
	batch, err := CreateTupleBatch(t.schema, columns, t.pendingRows)
	if err != nil {
		return err
	}
	t.pendingRows = 0
	t.ready = append(t.ready, batch)
	return nil
}

// PopFilled returns the oldest sealed batch, or nil if none is sealed
func (t *tupleBatchBufferImpl) PopFilled() myria.TupleBatch {
	if len(t.ready) == 0 {
		return nil
	}
	batch := t.ready[0]
	t.ready = t.ready[1:]
	return batch
}

// PopAny returns the oldest sealed batch if one exists, otherwise seals and
// returns the partially-accumulated rows, otherwise returns nil
func (t *tupleBatchBufferImpl) PopAny() (myria.TupleBatch, error) {
	if len(t.ready) > 0 {
		return t.PopFilled(), nil
	}
	if t.numColumnsPut != 0 {
		return nil, fmt.Errorf("Cannot seal a batch while a row is partially accumulated")
	}
	if t.pendingRows == 0 {
		return nil, nil
	}
	if err := t.sealPending(); err != nil {
		return nil, err
	}
	return t.PopFilled(), nil
}

// PopAll flushes everything, returning all remaining batches in order
func (t *tupleBatchBufferImpl) PopAll() ([]myria.TupleBatch, error) {
	var res []myria.TupleBatch
	for {
		batch, err := t.PopAny()
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return res, nil
		}
		res = append(res, batch)
	}
}
