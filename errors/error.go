package errors

import (
	"fmt"
)

// TypeMismatchError occurs when a typed accessor disagrees with a column's declared type
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Column holds %s values, not %s values", e.Actual, e.Expected)
}

// RowOutOfBoundsError occurs when a row index falls outside [0, NumRows)
type RowOutOfBoundsError struct {
	Row     int
	NumRows int
}

// Error returns a textual representation of this RowOutOfBoundsError
func (e RowOutOfBoundsError) Error() string {
	return fmt.Sprintf("Row %d is out of bounds for a batch of %d rows", e.Row, e.NumRows)
}

// ColumnOutOfBoundsError occurs when a column index falls outside a Schema
type ColumnOutOfBoundsError struct {
	Column     int
	NumColumns int
}

// Error returns a textual representation of this ColumnOutOfBoundsError
func (e ColumnOutOfBoundsError) Error() string {
	return fmt.Sprintf("Column %d is out of bounds for a schema of %d columns", e.Column, e.NumColumns)
}

// NoSuchColumnError occurs when a column name is not present in a Schema
type NoSuchColumnError struct {
	Name string
}

// Error returns a textual representation of this NoSuchColumnError
func (e NoSuchColumnError) Error() string {
	return fmt.Sprintf("Schema has no column named %s", e.Name)
}

// DuplicateColumnError occurs when a Schema is constructed with a repeated column name
type DuplicateColumnError struct {
	Name string
}

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column name %s appears more than once", e.Name)
}

// TupleBatchFullError occurs when a row is appended to a buffer column which has already reached BatchSize
type TupleBatchFullError struct{}

// Error returns a textual representation of this TupleBatchFullError
func (e TupleBatchFullError) Error() string {
	return "Tuple batch is full"
}

// CorruptBatchError occurs when a batch fails a structural invariant check,
// such as a declared row count disagreeing with its column lengths. It is
// fatal: the query must abort rather than truncate or repair the batch.
type CorruptBatchError struct {
	Reason string
}

// Error returns a textual representation of this CorruptBatchError
func (e CorruptBatchError) Error() string {
	return fmt.Sprintf("Structurally corrupt tuple batch: %s", e.Reason)
}

// DuplicateWorkerError occurs when a worker id appears more than once in an exchange roster
type DuplicateWorkerError struct {
	Worker int
}

// Error returns a textual representation of this DuplicateWorkerError
func (e DuplicateWorkerError) Error() string {
	return fmt.Sprintf("Worker %d appears more than once in the roster", e.Worker)
}

// UnknownWorkerError occurs when a message arrives from a worker id which is not in the roster
type UnknownWorkerError struct {
	Worker int
}

// Error returns a textual representation of this UnknownWorkerError
func (e UnknownWorkerError) Error() string {
	return fmt.Sprintf("Worker %d is not in the roster for this exchange", e.Worker)
}

// SchemaMismatchError occurs when a producer and its paired consumer disagree on a Schema
type SchemaMismatchError struct {
	Cause error
}

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("Producer and consumer schemas do not match: %s", e.Cause)
}

// TransportInterruptedError occurs when a blocking wait for inbound data is
// interrupted. It is surfaced as an execution failure and never retried
// inside the exchange core.
type TransportInterruptedError struct {
	Cause error
}

// Error returns a textual representation of this TransportInterruptedError
func (e TransportInterruptedError) Error() string {
	return fmt.Sprintf("Interrupted while awaiting inbound exchange data: %s", e.Cause)
}

// UnknownExchangeError occurs when a message addresses an exchange pair id with no registered inbox
type UnknownExchangeError struct {
	PairID string
}

// Error returns a textual representation of this UnknownExchangeError
func (e UnknownExchangeError) Error() string {
	return fmt.Sprintf("No inbox is registered for exchange %s", e.PairID)
}

// ReleasedInboxError occurs when fetch is called on a consumer whose inbox has been released by Cleanup
type ReleasedInboxError struct{}

// Error returns a textual representation of this ReleasedInboxError
func (e ReleasedInboxError) Error() string {
	return "Exchange inbox has been released"
}
