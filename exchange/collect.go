package exchange

import (
	"context"

	"github.com/atcbosselut/myria"
)

// A CollectProducer is the send side of a collect exchange: every batch it
// accepts is forwarded to the single consumer, which merges the streams of
// all participating workers.
type CollectProducer struct {
	producerBase
}

// CreateCollectProducer creates the send side of a collect exchange, run on
// worker source and feeding the consumer reachable via dest
func CreateCollectProducer(pairID myria.ExchangePairID, source myria.WorkerID, schema myria.Schema, dest Sink) *CollectProducer {
	return &CollectProducer{producerBase{
		pairID:       pairID,
		source:       source,
		schema:       schema,
		destinations: []Sink{dest},
	}}
}

// CreateCollectProducerFromChild creates a CollectProducer which drains the
// given child operator when Run, taking its Schema from the child
func CreateCollectProducerFromChild(pairID myria.ExchangePairID, source myria.WorkerID, child myria.PullSource, dest Sink) *CollectProducer {
	p := CreateCollectProducer(pairID, source, child.GetSchema(), dest)
	p.child = child
	return p
}

// Send forwards one batch to the consumer
func (p *CollectProducer) Send(ctx context.Context, batch myria.TupleBatch) error {
	if err := p.checkSchema(batch); err != nil {
		return err
	}
	return p.deliver(ctx, 0, batch)
}

// Close signals end-of-stream to the consumer. Idempotent.
func (p *CollectProducer) Close(ctx context.Context) error {
	return p.closeAll(ctx)
}

// Run drains the producer's child operator to exhaustion and then closes
// the exchange. Only valid on producers created FromChild.
func (p *CollectProducer) Run(ctx context.Context) error {
	return p.drain(ctx, p)
}

// A CollectConsumer is the receive side of a collect exchange: it merges
// the streams of every participating worker into one, in arbitrary
// cross-worker interleaving, and reports end-of-stream once every worker
// has finished.
type CollectConsumer struct {
	*consumerImpl
	inbox *Inbox
}

// CreateCollectConsumer creates the receive side of a collect exchange fed
// by the given set of source workers. Its Inbox must be registered with the
// local worker's Registry before producers start sending.
func CreateCollectConsumer(pairID myria.ExchangePairID, schema myria.Schema, sources []myria.WorkerID) (*CollectConsumer, error) {
	return CreateCollectConsumerWithCapacity(pairID, schema, sources, 0)
}

// CreateCollectConsumerWithCapacity creates a CollectConsumer whose Inbox
// buffers at most capacity undelivered messages, typically the hosting
// worker's configured bound
func CreateCollectConsumerWithCapacity(pairID myria.ExchangePairID, schema myria.Schema, sources []myria.WorkerID, capacity int) (*CollectConsumer, error) {
	inbox := CreateInboxWithCapacity(pairID, schema, capacity)
	c, err := createConsumer(inbox, sources)
	if err != nil {
		return nil, err
	}
	return &CollectConsumer{consumerImpl: c, inbox: inbox}, nil
}

// CreateCollectConsumerFromSource creates a CollectConsumer whose Schema is
// inherited from a paired local operator, typically the producer feeding
// the same exchange in single-process plans
func CreateCollectConsumerFromSource(pairID myria.ExchangePairID, source myria.SchemaBearer, sources []myria.WorkerID) (*CollectConsumer, error) {
	return CreateCollectConsumer(pairID, source.GetSchema(), sources)
}

// Inbox returns the Inbox feeding this consumer, for transport registration
func (c *CollectConsumer) Inbox() *Inbox {
	return c.inbox
}
