package exchange

import (
	"context"
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/stretchr/testify/require"
)

func TestLocalMultiwayFansOutEveryBatch(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	const localWorker myria.WorkerID = 3

	consumers := make([]*LocalMultiwayConsumer, 3)
	destinations := make([]Sink, 3)
	for i := range consumers {
		c, err := CreateLocalMultiwayConsumer(pairID, s, localWorker)
		require.Nil(t, err)
		consumers[i] = c
		destinations[i] = c.Inbox()
	}
	producer := CreateLocalMultiwayProducer(pairID, localWorker, s, destinations)
	first := makeBatch(t, s, 0, 5)
	second := makeBatch(t, s, 5, 5)
	require.Nil(t, producer.Send(ctx, first))
	require.Nil(t, producer.Send(ctx, second))
	require.Nil(t, producer.Close(ctx))

	for _, c := range consumers {
		res, err := c.FetchNext(ctx)
		require.Nil(t, err)
		require.Equal(t, myria.FetchData, res.Status)
		// batches are immutable, so fan-out shares rather than copies
		require.True(t, res.Batch == first)
		res, err = c.FetchNext(ctx)
		require.Nil(t, err)
		require.True(t, res.Batch == second)
		res, err = c.FetchNext(ctx)
		require.Nil(t, err)
		require.Equal(t, myria.FetchEOS, res.Status)
	}
}

func TestLocalMultiwayProducerRunDrainsChild(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	pairID := NewExchangePairID()
	const localWorker myria.WorkerID = 0

	left, err := CreateLocalMultiwayConsumer(pairID, s, localWorker)
	require.Nil(t, err)
	right, err := CreateLocalMultiwayConsumer(pairID, s, localWorker)
	require.Nil(t, err)

	child := &stubChild{schema: s, batches: []myria.TupleBatch{makeBatch(t, s, 0, 7)}}
	producer := CreateLocalMultiwayProducerFromChild(pairID, localWorker, child, []Sink{left.Inbox(), right.Inbox()})
	require.Nil(t, producer.Run(ctx))
	require.True(t, child.cleaned)

	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6}, collectKeys(t, left))
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6}, collectKeys(t, right))
}
