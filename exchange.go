package myria

import "context"

// WorkerID identifies a worker process within a query's roster
type WorkerID int

// ExchangePairID is an opaque process-wide-unique token naming one logical
// exchange channel. It is minted once when a query plan is compiled, and
// shared verbatim between the producer-side and consumer-side operator
// instances that must rendezvous.
type ExchangePairID string

// A SchemaBearer exposes the Schema of the batches it produces or consumes
type SchemaBearer interface {
	GetSchema() Schema
}

// A PullSource is an operator which batches are pulled from, such as the
// consumer half of an exchange. FetchNext may block awaiting inbound data;
// FetchNextReady never blocks and is used by schedulers which must keep a
// single thread progressing across multiple ready-or-not operators.
type PullSource interface {
	SchemaBearer
	FetchNext(ctx context.Context) (FetchResult, error)
	FetchNextReady() (FetchResult, error)
	// Cleanup releases the inbound queue and resets end-of-stream state.
	// Idempotent, and safe to call even if a fetch call was never made.
	Cleanup() error
}

// A PushSink is an operator which batches are pushed into, such as the
// producer half of an exchange. Close signals local exhaustion, emitting
// one end-of-stream marker per registered destination.
type PushSink interface {
	SchemaBearer
	Send(ctx context.Context, batch TupleBatch) error
	Close(ctx context.Context) error
}
