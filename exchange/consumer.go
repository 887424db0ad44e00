package exchange

import (
	"context"

	"github.com/RoaringBitmap/roaring"
	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// consumerImpl is the shared receive side of every exchange variant. It
// drains one Inbox, tracks which of its source workers have signalled
// end-of-stream, and surfaces a merged stream of batches which terminates
// only once every source has finished.
type consumerImpl struct {
	inbox     *Inbox
	sources   map[myria.WorkerID]uint32
	workerEOS *roaring.Bitmap
	eos       bool
}

// createConsumer creates the receive side of an exchange fed by the given
// set of source workers via the given Inbox
func createConsumer(inbox *Inbox, sources []myria.WorkerID) (*consumerImpl, error) {
	index := make(map[myria.WorkerID]uint32, len(sources))
	for i, w := range sources {
		if _, ok := index[w]; ok {
			return nil, errors.DuplicateWorkerError{Worker: int(w)}
		}
		index[w] = uint32(i)
	}
	return &consumerImpl{
		inbox:     inbox,
		sources:   index,
		workerEOS: roaring.New(),
	}, nil
}

// GetSchema returns the Schema of the batches this consumer produces
func (c *consumerImpl) GetSchema() myria.Schema {
	return c.inbox.Schema()
}

// FetchNext returns the next available batch, blocking until one arrives or
// every source has signalled end-of-stream. Cancelling ctx unblocks the
// wait without disturbing the end-of-stream bookkeeping, so the fetch may
// be retried.
func (c *consumerImpl) FetchNext(ctx context.Context) (myria.FetchResult, error) {
	for {
		if c.eos {
			return myria.FetchResult{Status: myria.FetchEOS}, nil
		}
		if c.inbox == nil {
			return myria.FetchResult{}, errors.ReleasedInboxError{}
		}
		m, err := c.inbox.take(ctx)
		if err != nil {
			return myria.FetchResult{}, errors.TransportInterruptedError{Cause: err}
		}
		res, done, err := c.absorb(m)
		if err != nil {
			return myria.FetchResult{}, err
		}
		if done {
			return res, nil
		}
	}
}

// FetchNextReady returns the next batch if one is already queued, without
// blocking. A FetchNotReady result means nothing is available yet; it says
// nothing about end-of-stream.
func (c *consumerImpl) FetchNextReady() (myria.FetchResult, error) {
	for {
		if c.eos {
			return myria.FetchResult{Status: myria.FetchEOS}, nil
		}
		if c.inbox == nil {
			return myria.FetchResult{}, errors.ReleasedInboxError{}
		}
		m, ok := c.inbox.takeReady()
		if !ok {
			return myria.FetchResult{Status: myria.FetchNotReady}, nil
		}
		res, done, err := c.absorb(m)
		if err != nil {
			return myria.FetchResult{}, err
		}
		if done {
			return res, nil
		}
	}
}

// absorb applies one inbound message to the consumer state. done is true
// when the message yields a result for the caller; EOS markers from
// not-yet-final sources yield nothing and the fetch loop continues.
func (c *consumerImpl) absorb(m Message) (myria.FetchResult, bool, error) {
	idx, ok := c.sources[m.Source]
	if !ok {
		return myria.FetchResult{}, false, errors.UnknownWorkerError{Worker: int(m.Source)}
	}
	if m.IsEOS() {
		c.workerEOS.Add(idx)
		if int(c.workerEOS.GetCardinality()) == len(c.sources) {
			c.eos = true
			return myria.FetchResult{Status: myria.FetchEOS}, true, nil
		}
		return myria.FetchResult{}, false, nil
	}
	if err := c.inbox.Schema().Equals(m.Batch.Schema()); err != nil {
		return myria.FetchResult{}, false, errors.SchemaMismatchError{Cause: err}
	}
	if err := m.Batch.Validate(); err != nil {
		return myria.FetchResult{}, false, err
	}
	return myria.FetchResult{Status: myria.FetchData, Batch: m.Batch}, true, nil
}

// Cleanup releases the consumer's Inbox, dropping any still-queued messages
// and end-of-stream bookkeeping. Safe to call more than once; fetches after
// Cleanup fail unless the stream had already finished.
func (c *consumerImpl) Cleanup() error {
	c.inbox = nil
	c.workerEOS.Clear()
	return nil
}
