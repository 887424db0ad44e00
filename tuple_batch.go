package myria

// BatchSize is the hard upper bound on the number of rows in a TupleBatch.
const BatchSize = 100

// A TupleBatch is an immutable bundle of columnar rows, bounded at BatchSize
// rows, with a validity bitmap marking which rows are live. Filtering and
// projecting produce new batches which share the underlying column storage.
type TupleBatch interface {
	Schema() Schema
	NumRows() int           // NumRows returns the number of rows physically stored in this batch
	NumValidRows() int      // NumValidRows returns the cardinality of the validity bitmap
	RowIsValid(row int) bool
	ValidRowIndices() []int
	Validate() error // Validate performs a structural self-check, returning a CorruptBatchError on failure

	// Filter returns a new TupleBatch retaining only the valid rows for which
	// fn returns true. Column storage is shared; only the bitmap is cloned.
	Filter(fn FilterOperation) (TupleBatch, error)
	// Project returns a new TupleBatch referencing the given subset of
	// columns under a narrowed Schema. Column storage is shared.
	Project(columnIndices []int) (TupleBatch, error)

	GetBool(col int, row int) (bool, error)
	GetInt32(col int, row int) (int32, error)
	GetInt64(col int, row int) (int64, error)
	GetFloat32(col int, row int) (float32, error)
	GetFloat64(col int, row int) (float64, error)
	GetString(col int, row int) (string, error)
	GetValue(col int, row int) (interface{}, error)

	// AppendRowInto appends every field of the given row into buffer
	AppendRowInto(row int, buffer TupleBatchBuffer) error
	// PartitionInto hashes each valid row over the given key columns and
	// appends it into destinations[hash mod len(destinations)]. This is the
	// physical mechanism underlying shuffle.
	PartitionInto(destinations []TupleBatchBuffer, keyColumns []int) error

	ToString() string
}

// A TupleBatchBuffer is a growable row accumulator which seals an immutable
// TupleBatch every time it reaches BatchSize rows, or on explicit flush.
type TupleBatchBuffer interface {
	Schema() Schema
	NumPendingRows() int  // NumPendingRows returns the number of rows accumulated but not yet sealed
	NumReadyBatches() int // NumReadyBatches returns the number of sealed batches awaiting a Pop

	// Put appends a single field value to the given column of the row
	// currently being accumulated. Once every column of the current row has
	// a value, the row is complete and accumulation moves to the next row.
	Put(col int, value interface{}) error
	// AppendRow appends one complete row of field values, in column order
	AppendRow(values []interface{}) error

	// PopFilled returns the oldest sealed batch, or nil if none is sealed
	PopFilled() TupleBatch
	// PopAny returns the oldest sealed batch if one exists, otherwise seals
	// and returns the partially-accumulated rows, otherwise returns nil
	PopAny() (TupleBatch, error)
	// PopAll flushes everything, returning all remaining batches in order
	PopAll() ([]TupleBatch, error)
}
