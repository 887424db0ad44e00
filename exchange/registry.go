package exchange

import (
	"sync"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
)

// A Registry maps exchange pair ids to the Inboxes of the consumers running
// on this worker, so that inbound transport traffic can be routed. It is
// safe for concurrent use.
type Registry struct {
	lock    sync.RWMutex
	inboxes map[myria.ExchangePairID]*Inbox
}

// CreateRegistry creates an empty Registry
func CreateRegistry() *Registry {
	return &Registry{inboxes: make(map[myria.ExchangePairID]*Inbox)}
}

// Register makes an Inbox routable under its pair id
func (r *Registry) Register(in *Inbox) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.inboxes[in.PairID()] = in
}

// Deregister removes the Inbox registered under pairID, if any
func (r *Registry) Deregister(pairID myria.ExchangePairID) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.inboxes, pairID)
}

// Lookup returns the Inbox registered under pairID, or an
// UnknownExchangeError if none is
func (r *Registry) Lookup(pairID myria.ExchangePairID) (*Inbox, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	in, ok := r.inboxes[pairID]
	if !ok {
		return nil, errors.UnknownExchangeError{PairID: string(pairID)}
	}
	return in, nil
}
