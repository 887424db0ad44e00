package exchange

import (
	"context"
	"sort"
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/tuplebatch"
	"github.com/stretchr/testify/require"
)

// runShuffle drives a 2-producer, 2-consumer shuffle over the given key
// range and returns the sorted keys each consumer received
func runShuffle(t *testing.T, rowsPerWorker int) [][]int64 {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	workers := []myria.WorkerID{1, 2}

	consumers := make([]*GenericShuffleConsumer, 2)
	destinations := make([]Sink, 2)
	for i := range consumers {
		c, err := CreateShuffleConsumer(pairID, s, workers)
		require.Nil(t, err)
		consumers[i] = c
		destinations[i] = c.Inbox()
	}

	for i, w := range workers {
		pf, err := CreateSingleFieldHashPartitionFunction(len(destinations), 0)
		require.Nil(t, err)
		producer, err := CreateShuffleProducer(pairID, w, s, destinations, pf)
		require.Nil(t, err)
		require.Nil(t, producer.Send(ctx, makeBatch(t, s, i*rowsPerWorker, rowsPerWorker)))
		require.Nil(t, producer.Close(ctx))
	}

	received := make([][]int64, 2)
	for i, c := range consumers {
		keys := collectKeys(t, c)
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
		received[i] = keys
	}
	return received
}

func TestShufflePartitionsEveryRowExactlyOnce(t *testing.T) {
	received := runShuffle(t, 40)
	var all []int64
	for _, keys := range received {
		all = append(all, keys...)
	}
	sort.Slice(all, func(a, b int) bool { return all[a] < all[b] })
	require.Len(t, all, 80)
	for i, key := range all {
		require.Equal(t, int64(i), key)
	}
}

func TestShuffleIsDeterministic(t *testing.T) {
	first := runShuffle(t, 30)
	second := runShuffle(t, 30)
	require.Equal(t, first, second)
}

func TestShuffleGroupsEqualKeys(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	workers := []myria.WorkerID{1, 2}

	consumers := make([]*GenericShuffleConsumer, 2)
	destinations := make([]Sink, 2)
	for i := range consumers {
		c, err := CreateShuffleConsumer(pairID, s, workers)
		require.Nil(t, err)
		consumers[i] = c
		destinations[i] = c.Inbox()
	}

	// both workers emit the same key range; every key must land on exactly
	// one consumer, from both workers
	for _, w := range workers {
		pf, err := CreateSingleFieldHashPartitionFunction(2, 0)
		require.Nil(t, err)
		producer, err := CreateShuffleProducer(pairID, w, s, destinations, pf)
		require.Nil(t, err)
		require.Nil(t, producer.Send(ctx, makeBatch(t, s, 0, 20)))
		require.Nil(t, producer.Close(ctx))
	}

	seen := make(map[int64]int)
	for i, c := range consumers {
		for _, key := range collectKeys(t, c) {
			owner, ok := seen[key]
			if ok {
				require.Equal(t, i, owner, "key %d split across consumers", key)
			} else {
				seen[key] = i
			}
		}
	}
	require.Len(t, seen, 20)
}

// runKeyedShuffle shuffles 1000 rows carrying 10 distinct keys across 4
// destinations and returns the sorted key set each destination received
func runKeyedShuffle(t *testing.T) [][]int64 {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()

	consumers := make([]*GenericShuffleConsumer, 4)
	destinations := make([]Sink, 4)
	for i := range consumers {
		c, err := CreateShuffleConsumer(pairID, s, []myria.WorkerID{1})
		require.Nil(t, err)
		consumers[i] = c
		destinations[i] = c.Inbox()
	}
	pf, err := CreateSingleFieldHashPartitionFunction(4, 0)
	require.Nil(t, err)
	producer, err := CreateShuffleProducer(pairID, 1, s, destinations, pf)
	require.Nil(t, err)

	buffer, err := tuplebatch.CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	for i := 0; i < 1000; i++ {
		require.Nil(t, buffer.AppendRow([]interface{}{int64(i % 10), int32(i)}))
		if buffer.NumReadyBatches() > 0 {
			require.Nil(t, producer.Send(ctx, buffer.PopFilled()))
		}
	}
	require.Nil(t, producer.Close(ctx))

	received := make([][]int64, 4)
	for i, c := range consumers {
		seen := make(map[int64]bool)
		total := 0
		for _, key := range collectKeys(t, c) {
			seen[key] = true
			total++
		}
		var keys []int64
		for key := range seen {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
		// every row of a key lands where the key does
		require.Equal(t, len(keys)*100, total)
		received[i] = keys
	}
	return received
}

func TestShuffleKeyDistributionIsStable(t *testing.T) {
	first := runKeyedShuffle(t)
	second := runKeyedShuffle(t)
	require.Equal(t, first, second)
	distinct := 0
	for _, keys := range first {
		distinct += len(keys)
	}
	require.Equal(t, 10, distinct)
}

func TestShuffleFlushesFullBuffers(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()

	consumer, err := CreateShuffleConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	pf, err := CreateRoundRobinPartitionFunction(1)
	require.Nil(t, err)
	producer, err := CreateShuffleProducer(pairID, 1, s, []Sink{consumer.Inbox()}, pf)
	require.Nil(t, err)

	// 3 batches of 90 rows overflow the 100-row rebatching buffer twice
	// before close
	for i := 0; i < 3; i++ {
		require.Nil(t, producer.Send(ctx, makeBatch(t, s, i*90, 90)))
	}
	res, err := consumer.FetchNextReady()
	require.Nil(t, err)
	require.Equal(t, myria.FetchData, res.Status)
	require.Equal(t, myria.BatchSize, res.Batch.NumValidRows())

	require.Nil(t, producer.Close(ctx))
	keys := collectKeys(t, consumer)
	require.Len(t, keys, 170) // 270 total minus the batch already fetched
}

func TestShuffleRoundRobinBalances(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()

	consumers := make([]*GenericShuffleConsumer, 3)
	destinations := make([]Sink, 3)
	for i := range consumers {
		c, err := CreateShuffleConsumer(pairID, s, []myria.WorkerID{1})
		require.Nil(t, err)
		consumers[i] = c
		destinations[i] = c.Inbox()
	}
	pf, err := CreateRoundRobinPartitionFunction(3)
	require.Nil(t, err)
	producer, err := CreateShuffleProducer(pairID, 1, s, destinations, pf)
	require.Nil(t, err)
	require.Nil(t, producer.Send(ctx, makeBatch(t, s, 0, 30)))
	require.Nil(t, producer.Close(ctx))

	for _, c := range consumers {
		require.Len(t, collectKeys(t, c), 10)
	}
}

func TestShufflePartitionCountMismatch(t *testing.T) {
	s := makeTestSchema(t)
	pf, err := CreateSingleFieldHashPartitionFunction(3, 0)
	require.Nil(t, err)
	consumer, err := CreateShuffleConsumer(NewExchangePairID(), s, []myria.WorkerID{1})
	require.Nil(t, err)
	_, err = CreateShuffleProducer(NewExchangePairID(), 1, s, []Sink{consumer.Inbox()}, pf)
	require.NotNil(t, err)
}

func TestShuffleProducerRunDrainsChild(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateShuffleConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	child := &stubChild{
		schema:  s,
		batches: []myria.TupleBatch{makeBatch(t, s, 0, 10), makeBatch(t, s, 10, 10)},
	}
	pf, err := CreateSingleFieldHashPartitionFunction(1, 0)
	require.Nil(t, err)
	producer, err := CreateShuffleProducerFromChild(pairID, 1, child, []Sink{consumer.Inbox()}, pf)
	require.Nil(t, err)
	require.Nil(t, producer.Run(ctx))
	require.True(t, child.cleaned)

	keys := collectKeys(t, consumer)
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	require.Len(t, keys, 20)
	require.Equal(t, int64(0), keys[0])
	require.Equal(t, int64(19), keys[19])
}
