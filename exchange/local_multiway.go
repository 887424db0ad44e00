package exchange

import (
	"context"

	"github.com/atcbosselut/myria"
)

// A LocalMultiwayProducer fans a single local stream out to several
// consumers in the same process. Batches are immutable, so every consumer
// receives the same batch without copying.
type LocalMultiwayProducer struct {
	producerBase
}

// CreateLocalMultiwayProducer creates a fan-out producer on worker source
// feeding the given local destinations
func CreateLocalMultiwayProducer(pairID myria.ExchangePairID, source myria.WorkerID, schema myria.Schema, destinations []Sink) *LocalMultiwayProducer {
	return &LocalMultiwayProducer{producerBase{
		pairID:       pairID,
		source:       source,
		schema:       schema,
		destinations: destinations,
	}}
}

// CreateLocalMultiwayProducerFromChild creates a LocalMultiwayProducer
// which drains the given child operator when Run, taking its Schema from
// the child
func CreateLocalMultiwayProducerFromChild(pairID myria.ExchangePairID, source myria.WorkerID, child myria.PullSource, destinations []Sink) *LocalMultiwayProducer {
	p := CreateLocalMultiwayProducer(pairID, source, child.GetSchema(), destinations)
	p.child = child
	return p
}

// Send forwards one batch to every destination
func (p *LocalMultiwayProducer) Send(ctx context.Context, batch myria.TupleBatch) error {
	if err := p.checkSchema(batch); err != nil {
		return err
	}
	for i := range p.destinations {
		if err := p.deliver(ctx, i, batch); err != nil {
			return err
		}
	}
	return nil
}

// Close signals end-of-stream to every destination. Idempotent.
func (p *LocalMultiwayProducer) Close(ctx context.Context) error {
	return p.closeAll(ctx)
}

// Run drains the producer's child operator to exhaustion and then closes
// the exchange. Only valid on producers created FromChild.
func (p *LocalMultiwayProducer) Run(ctx context.Context) error {
	return p.drain(ctx, p)
}

// A LocalMultiwayConsumer is the receive side of one leg of a local
// fan-out: a single-source consumer in the same process as its producer.
type LocalMultiwayConsumer struct {
	*consumerImpl
	inbox *Inbox
}

// CreateLocalMultiwayConsumer creates one receive leg of a local fan-out,
// fed by the local worker source
func CreateLocalMultiwayConsumer(pairID myria.ExchangePairID, schema myria.Schema, source myria.WorkerID) (*LocalMultiwayConsumer, error) {
	inbox := CreateInbox(pairID, schema)
	c, err := createConsumer(inbox, []myria.WorkerID{source})
	if err != nil {
		return nil, err
	}
	return &LocalMultiwayConsumer{consumerImpl: c, inbox: inbox}, nil
}

// Inbox returns the Inbox feeding this consumer, for wiring it as the
// producer's destination
func (c *LocalMultiwayConsumer) Inbox() *Inbox {
	return c.inbox
}
