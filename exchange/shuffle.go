package exchange

import (
	"context"
	"fmt"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/tuplebatch"
)

// A GenericShuffleProducer is the send side of a shuffle exchange: each row
// of each accepted batch is routed by a PartitionFunction to one of the
// destinations, accumulating per-destination buffers which are flushed as
// full batches and drained at close.
type GenericShuffleProducer struct {
	producerBase
	pf      myria.PartitionFunction
	buffers []myria.TupleBatchBuffer
}

// CreateShuffleProducer creates the send side of a shuffle exchange, run on
// worker source. pf must partition across exactly len(destinations)
// partitions.
func CreateShuffleProducer(pairID myria.ExchangePairID, source myria.WorkerID, schema myria.Schema, destinations []Sink, pf myria.PartitionFunction) (*GenericShuffleProducer, error) {
	if pf.NumPartitions() != len(destinations) {
		return nil, fmt.Errorf("partition function covers %d partitions but shuffle has %d destinations", pf.NumPartitions(), len(destinations))
	}
	buffers := make([]myria.TupleBatchBuffer, len(destinations))
	for i := range buffers {
		b, err := tuplebatch.CreateTupleBatchBuffer(schema)
		if err != nil {
			return nil, err
		}
		buffers[i] = b
	}
	return &GenericShuffleProducer{
		producerBase: producerBase{
			pairID:       pairID,
			source:       source,
			schema:       schema,
			destinations: destinations,
		},
		pf:      pf,
		buffers: buffers,
	}, nil
}

// CreateShuffleProducerFromChild creates a GenericShuffleProducer which
// drains the given child operator when Run, taking its Schema from the child
func CreateShuffleProducerFromChild(pairID myria.ExchangePairID, source myria.WorkerID, child myria.PullSource, destinations []Sink, pf myria.PartitionFunction) (*GenericShuffleProducer, error) {
	p, err := CreateShuffleProducer(pairID, source, child.GetSchema(), destinations, pf)
	if err != nil {
		return nil, err
	}
	p.child = child
	return p, nil
}

// keyColumnsBearer is implemented by partition functions which route purely
// by the hash of a fixed set of key columns, letting the shuffle hand whole
// batches to the batch-level partitioning path
type keyColumnsBearer interface {
	KeyColumns() []int
}

// Send routes each valid row of the batch to its destination's buffer and
// flushes any buffer which filled a whole batch
func (p *GenericShuffleProducer) Send(ctx context.Context, batch myria.TupleBatch) error {
	if err := p.checkSchema(batch); err != nil {
		return err
	}
	if kb, ok := p.pf.(keyColumnsBearer); ok {
		if err := batch.PartitionInto(p.buffers, kb.KeyColumns()); err != nil {
			return err
		}
	} else {
		for _, row := range batch.ValidRowIndices() {
			dest, err := p.pf.Partition(batch, row)
			if err != nil {
				return err
			}
			if err := batch.AppendRowInto(row, p.buffers[dest]); err != nil {
				return err
			}
		}
	}
	return p.flushFilled(ctx)
}

// flushFilled delivers every sealed batch sitting in the per-destination
// buffers
func (p *GenericShuffleProducer) flushFilled(ctx context.Context) error {
	for i, buffer := range p.buffers {
		for batch := buffer.PopFilled(); batch != nil; batch = buffer.PopFilled() {
			if err := p.deliver(ctx, i, batch); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close flushes every remaining buffered row and then signals end-of-stream
// to every destination. Idempotent.
func (p *GenericShuffleProducer) Close(ctx context.Context) error {
	if p.closed {
		return nil
	}
	for i, buffer := range p.buffers {
		batches, err := buffer.PopAll()
		if err != nil {
			return err
		}
		for _, batch := range batches {
			if err := p.deliver(ctx, i, batch); err != nil {
				return err
			}
		}
	}
	return p.closeAll(ctx)
}

// Run drains the producer's child operator to exhaustion and then closes
// the exchange. Only valid on producers created FromChild.
func (p *GenericShuffleProducer) Run(ctx context.Context) error {
	return p.drain(ctx, p)
}

// A GenericShuffleConsumer is the receive side of a shuffle exchange,
// merging the partitioned streams routed to this worker and reporting
// end-of-stream once every contributing worker has finished.
type GenericShuffleConsumer struct {
	*consumerImpl
	inbox *Inbox
}

// CreateShuffleConsumer creates the receive side of a shuffle exchange fed
// by the given set of contributing workers. Its Inbox must be registered
// with the local worker's Registry before producers start sending.
func CreateShuffleConsumer(pairID myria.ExchangePairID, schema myria.Schema, sources []myria.WorkerID) (*GenericShuffleConsumer, error) {
	return CreateShuffleConsumerWithCapacity(pairID, schema, sources, 0)
}

// CreateShuffleConsumerWithCapacity creates a GenericShuffleConsumer whose
// Inbox buffers at most capacity undelivered messages, typically the
// hosting worker's configured bound
func CreateShuffleConsumerWithCapacity(pairID myria.ExchangePairID, schema myria.Schema, sources []myria.WorkerID, capacity int) (*GenericShuffleConsumer, error) {
	inbox := CreateInboxWithCapacity(pairID, schema, capacity)
	c, err := createConsumer(inbox, sources)
	if err != nil {
		return nil, err
	}
	return &GenericShuffleConsumer{consumerImpl: c, inbox: inbox}, nil
}

// Inbox returns the Inbox feeding this consumer, for transport registration
func (c *GenericShuffleConsumer) Inbox() *Inbox {
	return c.inbox
}
