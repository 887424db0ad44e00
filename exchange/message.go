package exchange

import (
	"context"

	"github.com/atcbosselut/myria"
)

// Message is the unit of traffic on an exchange channel: a tuple batch or an
// end-of-stream marker, stamped with the exchange it addresses and the
// worker it came from. EOS is a distinguished variant, never an empty batch.
type Message struct {
	PairID myria.ExchangePairID
	Source myria.WorkerID
	Batch  myria.TupleBatch // nil iff this is an EOS marker
	eos    bool
}

// CreateDataMessage creates a Message carrying a tuple batch
func CreateDataMessage(pairID myria.ExchangePairID, source myria.WorkerID, batch myria.TupleBatch) Message {
	return Message{PairID: pairID, Source: source, Batch: batch}
}

// CreateEOSMessage creates a Message marking that source will emit no
// further batches on this exchange
func CreateEOSMessage(pairID myria.ExchangePairID, source myria.WorkerID) Message {
	return Message{PairID: pairID, Source: source, eos: true}
}

// IsEOS returns true iff this Message is an end-of-stream marker
func (m Message) IsEOS() bool {
	return m.eos
}

// A Sink accepts exchange messages destined for a consumer. An Inbox is a
// Sink for consumers in the same process; the cluster transport provides
// Sinks which carry messages to consumers on remote workers.
type Sink interface {
	Deliver(ctx context.Context, m Message) error
}
