package integration_test

import (
	"context"
	"sort"
	"testing"

	"github.com/atcbosselut/myria/cluster"
	"github.com/atcbosselut/myria/exchange"
	mytest "github.com/atcbosselut/myria/testing"
	"github.com/stretchr/testify/require"
)

func TestClusterShuffle(t *testing.T) {
	ctx := context.Background()
	s := makeClusterSchema(t)
	lc, err := mytest.StartLocalCluster(ctx, &cluster.NodeOptions{}, 2)
	require.Nil(t, err)
	defer lc.Stop()

	// one shuffle consumer per worker, all sharing one exchange id
	pairID := exchange.NewExchangePairID()
	consumers := make([]*exchange.GenericShuffleConsumer, len(lc.WorkerIDs))
	for i, id := range lc.WorkerIDs {
		w := lc.WorkerByID(id)
		c, err := exchange.CreateShuffleConsumerWithCapacity(pairID, s, lc.WorkerIDs, w.InboxCapacity())
		require.Nil(t, err)
		consumers[i] = c
		w.Registry().Register(c.Inbox())
		defer w.Registry().Deregister(pairID)
	}

	// every worker shuffles its share of the rows to all consumers by key
	for i, w := range lc.Workers {
		destinations := make([]exchange.Sink, len(lc.WorkerIDs))
		for j, id := range lc.WorkerIDs {
			if id == w.WorkerID() {
				destinations[j] = consumers[j].Inbox()
				continue
			}
			sink, closeSink, err := w.OpenRemoteSink(ctx, id)
			require.Nil(t, err)
			defer func() { require.Nil(t, closeSink()) }()
			destinations[j] = sink
		}
		pf, err := exchange.CreateSingleFieldHashPartitionFunction(len(destinations), 0)
		require.Nil(t, err)
		producer, err := exchange.CreateShuffleProducer(pairID, w.WorkerID(), s, destinations, pf)
		require.Nil(t, err)
		require.Nil(t, producer.Send(ctx, makeClusterBatch(t, s, i*60, 60)))
		require.Nil(t, producer.Close(ctx))
	}

	// every row arrives exactly once, and equal keys are never split
	// across consumers
	owner := make(map[int64]int)
	var all []int64
	for i, c := range consumers {
		for _, key := range drainKeys(t, c) {
			prev, seen := owner[key]
			require.False(t, seen, "key %d seen on consumers %d and %d", key, prev, i)
			owner[key] = i
			all = append(all, key)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	require.Len(t, all, 120)
	for i, key := range all {
		require.Equal(t, int64(i), key)
	}
}
