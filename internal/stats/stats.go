package stats

import (
	"sync"

	"github.com/atcbosselut/myria"
)

// ExchangeCounters are cumulative traffic counters for one exchange on one
// worker
type ExchangeCounters struct {
	Batches    int64
	Rows       int64
	Bytes      int64
	EOSMarkers int64
}

// ExchangeStatistics tracks inbound exchange traffic per exchange id, per
// source worker. It is safe for concurrent use by transport goroutines.
type ExchangeStatistics struct {
	lock     sync.Mutex
	counters map[myria.ExchangePairID]map[myria.WorkerID]*ExchangeCounters
}

// CreateExchangeStatistics creates an empty ExchangeStatistics
func CreateExchangeStatistics() *ExchangeStatistics {
	return &ExchangeStatistics{
		counters: make(map[myria.ExchangePairID]map[myria.WorkerID]*ExchangeCounters),
	}
}

func (s *ExchangeStatistics) countersFor(pairID myria.ExchangePairID, source myria.WorkerID) *ExchangeCounters {
	bySource, ok := s.counters[pairID]
	if !ok {
		bySource = make(map[myria.WorkerID]*ExchangeCounters)
		s.counters[pairID] = bySource
	}
	c, ok := bySource[source]
	if !ok {
		c = &ExchangeCounters{}
		bySource[source] = c
	}
	return c
}

// CountBatch records one inbound data batch
func (s *ExchangeStatistics) CountBatch(pairID myria.ExchangePairID, source myria.WorkerID, rows int, bytes int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	c := s.countersFor(pairID, source)
	c.Batches++
	c.Rows += int64(rows)
	c.Bytes += int64(bytes)
}

// CountEOS records one inbound end-of-stream marker
func (s *ExchangeStatistics) CountEOS(pairID myria.ExchangePairID, source myria.WorkerID) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.countersFor(pairID, source).EOSMarkers++
}

// Snapshot returns a copy of the counters for one exchange, keyed by source
// worker
func (s *ExchangeStatistics) Snapshot(pairID myria.ExchangePairID) map[myria.WorkerID]ExchangeCounters {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := make(map[myria.WorkerID]ExchangeCounters)
	for source, c := range s.counters[pairID] {
		result[source] = *c
	}
	return result
}
