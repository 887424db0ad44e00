package exchange

import (
	"context"
	"sort"
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
	"github.com/atcbosselut/myria/schema"
	"github.com/stretchr/testify/require"
)

func TestCollectMergesAllWorkers(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	workers := []myria.WorkerID{1, 2, 3}
	consumer, err := CreateCollectConsumer(pairID, s, workers)
	require.Nil(t, err)

	for i, w := range workers {
		producer := CreateCollectProducer(pairID, w, s, consumer.Inbox())
		require.Nil(t, producer.Send(ctx, makeBatch(t, s, i*10, 5)))
		require.Nil(t, producer.Close(ctx))
	}

	keys := collectKeys(t, consumer)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var expected []int64
	for i := range workers {
		for j := 0; j < 5; j++ {
			expected = append(expected, int64(i*10+j))
		}
	}
	require.Equal(t, expected, keys)

	// stream is terminal: further fetches keep reporting EOS
	res, err := consumer.FetchNext(ctx)
	require.Nil(t, err)
	require.Equal(t, myria.FetchEOS, res.Status)
}

func TestCollectEmptyStream(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	workers := []myria.WorkerID{1, 2, 3}
	consumer, err := CreateCollectConsumer(pairID, s, workers)
	require.Nil(t, err)

	// every worker closes without sending a single batch: the stream is
	// empty and terminal, not an error
	for _, w := range workers {
		producer := CreateCollectProducer(pairID, w, s, consumer.Inbox())
		require.Nil(t, producer.Close(ctx))
	}
	res, err := consumer.FetchNext(ctx)
	require.Nil(t, err)
	require.Equal(t, myria.FetchEOS, res.Status)
}

func TestCollectConsumerFromSource(t *testing.T) {
	s := makeTestSchema(t)
	pairID := NewExchangePairID()
	child := &stubChild{schema: s}
	consumer, err := CreateCollectConsumerFromSource(pairID, child, []myria.WorkerID{1})
	require.Nil(t, err)
	require.Nil(t, s.Equals(consumer.GetSchema()))
}

func TestCollectDataAfterPartialEOS(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1, 2})
	require.Nil(t, err)
	p1 := CreateCollectProducer(pairID, 1, s, consumer.Inbox())
	p2 := CreateCollectProducer(pairID, 2, s, consumer.Inbox())

	// worker 1 finishes first; worker 2's data must still flow
	require.Nil(t, p1.Close(ctx))
	require.Nil(t, p2.Send(ctx, makeBatch(t, s, 100, 4)))
	require.Nil(t, p2.Close(ctx))

	res, err := consumer.FetchNext(ctx)
	require.Nil(t, err)
	require.Equal(t, myria.FetchData, res.Status)
	require.Equal(t, 4, res.Batch.NumValidRows())
	res, err = consumer.FetchNext(ctx)
	require.Nil(t, err)
	require.Equal(t, myria.FetchEOS, res.Status)
}

func TestCollectPerSourceOrder(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{7})
	require.Nil(t, err)
	producer := CreateCollectProducer(pairID, 7, s, consumer.Inbox())
	for i := 0; i < 5; i++ {
		require.Nil(t, producer.Send(ctx, makeBatch(t, s, i*100, 1)))
	}
	require.Nil(t, producer.Close(ctx))

	keys := collectKeys(t, consumer)
	require.Equal(t, []int64{0, 100, 200, 300, 400}, keys)
}

func TestCollectFetchNextReady(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1, 2})
	require.Nil(t, err)

	res, err := consumer.FetchNextReady()
	require.Nil(t, err)
	require.Equal(t, myria.FetchNotReady, res.Status)

	// an EOS marker from one of two workers is absorbed without a result
	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 1)))
	res, err = consumer.FetchNextReady()
	require.Nil(t, err)
	require.Equal(t, myria.FetchNotReady, res.Status)

	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateDataMessage(pairID, 2, makeBatch(t, s, 0, 2))))
	res, err = consumer.FetchNextReady()
	require.Nil(t, err)
	require.Equal(t, myria.FetchData, res.Status)

	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 2)))
	res, err = consumer.FetchNextReady()
	require.Nil(t, err)
	require.Equal(t, myria.FetchEOS, res.Status)
}

func TestCollectTerminalUnderAllEOSOrderings(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	orderings := [][]myria.WorkerID{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, order := range orderings {
		pairID := NewExchangePairID()
		consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1, 2, 3})
		require.Nil(t, err)
		for i, w := range order {
			require.Nil(t, consumer.Inbox().Deliver(ctx, CreateEOSMessage(pairID, w)))
			res, err := consumer.FetchNextReady()
			require.Nil(t, err)
			if i < len(order)-1 {
				require.Equal(t, myria.FetchNotReady, res.Status, "ordering %v: terminal after %d of 3 markers", order, i+1)
			} else {
				require.Equal(t, myria.FetchEOS, res.Status, "ordering %v: not terminal with the full roster closed", order)
			}
		}
		res, err := consumer.FetchNext(ctx)
		require.Nil(t, err)
		require.Equal(t, myria.FetchEOS, res.Status)
	}
}

func TestCollectCancelledFetchPreservesState(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1, 2})
	require.Nil(t, err)

	// absorb worker 1's EOS first
	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 1)))
	res, err := consumer.FetchNextReady()
	require.Nil(t, err)
	require.Equal(t, myria.FetchNotReady, res.Status)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = consumer.FetchNext(cancelled)
	require.NotNil(t, err)
	_, ok := err.(errors.TransportInterruptedError)
	require.True(t, ok)

	// worker 1's EOS bit survived the interruption
	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 2)))
	res, err = consumer.FetchNext(ctx)
	require.Nil(t, err)
	require.Equal(t, myria.FetchEOS, res.Status)
}

func TestCollectCleanup(t *testing.T) {
	s := makeTestSchema(t)
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	require.Nil(t, consumer.Cleanup())
	require.Nil(t, consumer.Cleanup())
	_, err = consumer.FetchNext(context.Background())
	require.NotNil(t, err)
	_, ok := err.(errors.ReleasedInboxError)
	require.True(t, ok)
}

func TestCollectDuplicateRoster(t *testing.T) {
	s := makeTestSchema(t)
	_, err := CreateCollectConsumer(NewExchangePairID(), s, []myria.WorkerID{1, 2, 1})
	require.NotNil(t, err)
	_, ok := err.(errors.DuplicateWorkerError)
	require.True(t, ok)
}

func TestCollectUnknownSource(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateDataMessage(pairID, 9, makeBatch(t, s, 0, 1))))
	_, err = consumer.FetchNext(ctx)
	require.NotNil(t, err)
	_, ok := err.(errors.UnknownWorkerError)
	require.True(t, ok)
}

func TestCollectSchemaMismatch(t *testing.T) {
	s := makeTestSchema(t)
	other, err := schema.CreateSchema([]string{"key"}, []myria.ColumnType{&myria.Int64ColumnType{}})
	require.Nil(t, err)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)

	producer := CreateCollectProducer(pairID, 1, other, consumer.Inbox())
	err = producer.Send(ctx, makeBatch(t, s, 0, 1))
	require.NotNil(t, err)
	_, ok := err.(errors.SchemaMismatchError)
	require.True(t, ok)

	// an unchecked sender is caught on the consumer side
	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateDataMessage(pairID, 1, makeBatch(t, other, 0, 1))))
	_, err = consumer.FetchNext(ctx)
	require.NotNil(t, err)
	_, ok = err.(errors.SchemaMismatchError)
	require.True(t, ok)
}

// corruptBatch wraps a well-formed batch but fails structural validation
type corruptBatch struct {
	myria.TupleBatch
}

func (c corruptBatch) Validate() error {
	return errors.CorruptBatchError{Reason: "row count disagrees with column lengths"}
}

func TestCollectCorruptBatchAbortsFetch(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	bad := corruptBatch{makeBatch(t, s, 0, 1)}
	require.Nil(t, consumer.Inbox().Deliver(ctx, CreateDataMessage(pairID, 1, bad)))
	_, err = consumer.FetchNext(ctx)
	require.NotNil(t, err)
	_, ok := err.(errors.CorruptBatchError)
	require.True(t, ok)
}

func TestCollectProducerRunDrainsChild(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	child := &stubChild{
		schema:  s,
		batches: []myria.TupleBatch{makeBatch(t, s, 0, 3), makeBatch(t, s, 10, 2)},
	}
	producer := CreateCollectProducerFromChild(pairID, 1, child, consumer.Inbox())
	require.Nil(t, producer.Run(ctx))
	require.True(t, child.cleaned)

	keys := collectKeys(t, consumer)
	require.Equal(t, []int64{0, 1, 2, 10, 11}, keys)
}

func TestCollectProducerCloseIdempotent(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	consumer, err := CreateCollectConsumer(pairID, s, []myria.WorkerID{1})
	require.Nil(t, err)
	producer := CreateCollectProducer(pairID, 1, s, consumer.Inbox())
	require.Nil(t, producer.Close(ctx))
	require.Nil(t, producer.Close(ctx))

	res, err := consumer.FetchNext(ctx)
	require.Nil(t, err)
	require.Equal(t, myria.FetchEOS, res.Status)
	// exactly one EOS marker was sent
	_, ok := consumer.Inbox().takeReady()
	require.False(t, ok)
}
