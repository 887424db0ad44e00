package exchange

import (
	"context"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// defaultInboxCapacity bounds the number of undelivered messages buffered
// per exchange before Deliver blocks the feeding goroutine.
const defaultInboxCapacity = 1024

// An Inbox is the concurrent inbound queue for the consumer side of one
// exchange. It is fed by transport goroutines (typically one per remote
// connection) and drained by the single goroutine which owns the consumer.
// Messages from a single source stay in FIFO order; interleaving across
// sources is deliberately unordered.
type Inbox struct {
	pairID   myria.ExchangePairID
	schema   myria.Schema
	messages chan Message
}

// CreateInbox creates an Inbox for the given exchange, accepting batches of
// the given Schema, with the default capacity
func CreateInbox(pairID myria.ExchangePairID, schema myria.Schema) *Inbox {
	return CreateInboxWithCapacity(pairID, schema, 0)
}

// CreateInboxWithCapacity creates an Inbox buffering at most capacity
// undelivered messages. Capacities below 1 fall back to the default.
func CreateInboxWithCapacity(pairID myria.ExchangePairID, schema myria.Schema, capacity int) *Inbox {
	if capacity < 1 {
		capacity = defaultInboxCapacity
	}
	return &Inbox{
		pairID:   pairID,
		schema:   schema,
		messages: make(chan Message, capacity),
	}
}

// PairID returns the exchange this Inbox belongs to
func (in *Inbox) PairID() myria.ExchangePairID {
	return in.pairID
}

// Schema returns the Schema of batches flowing through this Inbox
func (in *Inbox) Schema() myria.Schema {
	return in.schema
}

// Deliver enqueues a message, blocking if the Inbox is full. Cancelling ctx
// unblocks the wait with an error.
func (in *Inbox) Deliver(ctx context.Context, m Message) error {
	select {
	case in.messages <- m:
		return nil
	case <-ctx.Done():
		return errors.TransportInterruptedError{Cause: ctx.Err()}
	}
}

// take dequeues the next message, blocking until one arrives. Cancelling
// ctx unblocks the wait with an error, leaving the queue untouched.
func (in *Inbox) take(ctx context.Context) (Message, error) {
	select {
	case m := <-in.messages:
		return m, nil
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}

// takeReady dequeues the next message if one is immediately available
func (in *Inbox) takeReady() (Message, bool) {
	select {
	case m := <-in.messages:
		return m, true
	default:
		return Message{}, false
	}
}
