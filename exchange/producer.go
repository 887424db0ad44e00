package exchange

import (
	"context"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
	"github.com/hashicorp/go-multierror"
)

// producerBase is the shared send side of every exchange variant: the
// identity of the exchange, the local worker emitting on it, and the Sinks
// leading to its consumer(s). Variants differ only in how Send routes a
// batch across the destinations.
type producerBase struct {
	pairID       myria.ExchangePairID
	source       myria.WorkerID
	schema       myria.Schema
	destinations []Sink
	child        myria.PullSource
	closed       bool
}

// GetSchema returns the Schema of the batches this producer accepts
func (p *producerBase) GetSchema() myria.Schema {
	return p.schema
}

// checkSchema rejects batches whose Schema differs from the exchange's
func (p *producerBase) checkSchema(batch myria.TupleBatch) error {
	if err := p.schema.Equals(batch.Schema()); err != nil {
		return errors.SchemaMismatchError{Cause: err}
	}
	return nil
}

// deliver pushes a batch to one destination
func (p *producerBase) deliver(ctx context.Context, dest int, batch myria.TupleBatch) error {
	return p.destinations[dest].Deliver(ctx, CreateDataMessage(p.pairID, p.source, batch))
}

// closeAll marks end-of-stream to every destination. It attempts every
// destination even when some fail, aggregating the failures. Calling it a
// second time is a no-op.
func (p *producerBase) closeAll(ctx context.Context) error {
	if p.closed {
		return nil
	}
	p.closed = true
	var errs *multierror.Error
	for _, dest := range p.destinations {
		if err := dest.Deliver(ctx, CreateEOSMessage(p.pairID, p.source)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// drain pulls the producer's child operator to exhaustion, pushing each
// batch through the variant's Send and closing the variant when the child
// reports end-of-stream
func (p *producerBase) drain(ctx context.Context, sink myria.PushSink) error {
	for {
		res, err := p.child.FetchNext(ctx)
		if err != nil {
			return err
		}
		switch res.Status {
		case myria.FetchData:
			if err := sink.Send(ctx, res.Batch); err != nil {
				return err
			}
		case myria.FetchEOS:
			if err := sink.Close(ctx); err != nil {
				return err
			}
			return p.child.Cleanup()
		}
	}
}
