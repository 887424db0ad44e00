package exchange

import (
	"context"

	"github.com/atcbosselut/myria"
)

// An EOSController watches one exchange on which every worker of a query
// participates, and converts the moment the last worker signals
// end-of-stream into a single synthetic EOS injected into each of a set of
// local downstream Inboxes. It is how operators with no upstream exchange
// of their own learn that a distributed phase has completed.
type EOSController struct {
	consumer *consumerImpl
	inbox    *Inbox
	source   myria.WorkerID
	targets  []*Inbox
	fired    bool
}

// CreateEOSController creates a controller for the exchange pairID with the
// given full worker roster, running on worker source. When the roster
// completes, one EOS message is injected into each target.
func CreateEOSController(pairID myria.ExchangePairID, schema myria.Schema, sources []myria.WorkerID, source myria.WorkerID, targets []*Inbox) (*EOSController, error) {
	inbox := CreateInbox(pairID, schema)
	c, err := createConsumer(inbox, sources)
	if err != nil {
		return nil, err
	}
	return &EOSController{
		consumer: c,
		inbox:    inbox,
		source:   source,
		targets:  targets,
	}, nil
}

// Inbox returns the Inbox feeding this controller, for transport
// registration
func (e *EOSController) Inbox() *Inbox {
	return e.inbox
}

// Run blocks until every roster worker has signalled end-of-stream, then
// injects one EOS into each target and returns. Data batches arriving on
// the controller's exchange carry no information and are discarded. Once
// the controller has fired, further Runs return immediately without
// emitting anything.
func (e *EOSController) Run(ctx context.Context) error {
	if e.fired {
		return nil
	}
	for {
		res, err := e.consumer.FetchNext(ctx)
		if err != nil {
			return err
		}
		if res.Status != myria.FetchEOS {
			continue
		}
		e.fired = true
		for _, target := range e.targets {
			if err := target.Deliver(ctx, CreateEOSMessage(target.PairID(), e.source)); err != nil {
				return err
			}
		}
		return e.consumer.Cleanup()
	}
}
