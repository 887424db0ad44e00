package integration_test

import (
	"context"
	"sort"
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/cluster"
	"github.com/atcbosselut/myria/exchange"
	"github.com/atcbosselut/myria/schema"
	mytest "github.com/atcbosselut/myria/testing"
	"github.com/atcbosselut/myria/tuplebatch"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func makeClusterSchema(t *testing.T) myria.Schema {
	s, err := schema.CreateSchema(
		[]string{"key", "val"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.Int32ColumnType{}},
	)
	require.Nil(t, err)
	return s
}

func makeClusterBatch(t *testing.T, s myria.Schema, start int, count int) myria.TupleBatch {
	buffer, err := tuplebatch.CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	for i := 0; i < count; i++ {
		require.Nil(t, buffer.AppendRow([]interface{}{int64(start + i), int32(i)}))
	}
	batch, err := buffer.PopAny()
	require.Nil(t, err)
	return batch
}

func drainKeys(t *testing.T, c myria.PullSource) []int64 {
	var keys []int64
	for {
		res, err := c.FetchNext(context.Background())
		require.Nil(t, err)
		if res.Status == myria.FetchEOS {
			return keys
		}
		for _, row := range res.Batch.ValidRowIndices() {
			key, err := res.Batch.GetInt64(0, row)
			require.Nil(t, err)
			keys = append(keys, key)
		}
	}
}

func TestClusterCollect(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	s := makeClusterSchema(t)
	lc, err := mytest.StartLocalCluster(ctx, &cluster.NodeOptions{}, 2)
	require.Nil(t, err)
	defer lc.Stop()

	pairID := exchange.NewExchangePairID()
	sinkWorker := lc.Workers[0]
	consumer, err := exchange.CreateCollectConsumerWithCapacity(pairID, s, lc.WorkerIDs, sinkWorker.InboxCapacity())
	require.Nil(t, err)
	sinkWorker.Registry().Register(consumer.Inbox())
	defer sinkWorker.Registry().Deregister(pairID)

	// the worker collocated with the consumer sends in-process; the other
	// worker sends over the transport
	for i, w := range lc.Workers {
		var dest exchange.Sink = consumer.Inbox()
		if w.WorkerID() != sinkWorker.WorkerID() {
			sink, closeSink, err := w.OpenRemoteSink(ctx, sinkWorker.WorkerID())
			require.Nil(t, err)
			defer func() { require.Nil(t, closeSink()) }()
			dest = sink
		}
		producer := exchange.CreateCollectProducer(pairID, w.WorkerID(), s, dest)
		require.Nil(t, producer.Send(ctx, makeClusterBatch(t, s, i*100, 50)))
		require.Nil(t, producer.Close(ctx))
	}

	keys := drainKeys(t, consumer)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	require.Len(t, keys, 100)
	require.Equal(t, int64(0), keys[0])
	require.Equal(t, int64(149), keys[99])

	// the transport counted the remote worker's traffic
	snapshot := sinkWorker.Stats().Snapshot(pairID)
	var remote myria.WorkerID
	for _, id := range lc.WorkerIDs {
		if id != sinkWorker.WorkerID() {
			remote = id
		}
	}
	require.Equal(t, int64(1), snapshot[remote].Batches)
	require.Equal(t, int64(50), snapshot[remote].Rows)
	require.Equal(t, int64(1), snapshot[remote].EOSMarkers)
}
