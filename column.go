package myria

// Column is a sealed, typed array of values belonging to a TupleBatch.
// Columns are append-only while being accumulated by a TupleBatchBuffer,
// and immutable once sealed into a batch.
type Column interface {
	Type() ColumnType             // Type returns the ColumnType of this Column
	Length() int                  // Length returns the number of values stored in this Column
	GetValue(row int) interface{} // GetValue returns the value at the given row as an untyped value
}
