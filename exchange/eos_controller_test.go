package exchange

import (
	"context"
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/stretchr/testify/require"
)

func TestEOSControllerFiresAfterFullRoster(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	const localWorker myria.WorkerID = 0
	roster := []myria.WorkerID{1, 2}

	downstream := make([]*CollectConsumer, 2)
	targets := make([]*Inbox, 2)
	for i := range downstream {
		c, err := CreateCollectConsumer(NewExchangePairID(), s, []myria.WorkerID{localWorker})
		require.Nil(t, err)
		downstream[i] = c
		targets[i] = c.Inbox()
	}

	controller, err := CreateEOSController(NewExchangePairID(), s, roster, localWorker, targets)
	require.Nil(t, err)
	pairID := controller.Inbox().PairID()

	// one worker done, plus a stray data batch which carries no information
	require.Nil(t, controller.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 1)))
	require.Nil(t, controller.Inbox().Deliver(ctx, CreateDataMessage(pairID, 2, makeBatch(t, s, 0, 1))))
	for _, c := range downstream {
		res, err := c.FetchNextReady()
		require.Nil(t, err)
		require.Equal(t, myria.FetchNotReady, res.Status)
	}

	require.Nil(t, controller.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 2)))
	require.Nil(t, controller.Run(ctx))

	for _, c := range downstream {
		res, err := c.FetchNext(ctx)
		require.Nil(t, err)
		require.Equal(t, myria.FetchEOS, res.Status)
	}
}

func TestEOSControllerFiresOnlyOnce(t *testing.T) {
	s := makeTestSchema(t)
	ctx := context.Background()
	target := CreateInbox(NewExchangePairID(), s)
	controller, err := CreateEOSController(NewExchangePairID(), s, []myria.WorkerID{1}, 0, []*Inbox{target})
	require.Nil(t, err)
	pairID := controller.Inbox().PairID()

	require.Nil(t, controller.Inbox().Deliver(ctx, CreateEOSMessage(pairID, 1)))
	require.Nil(t, controller.Run(ctx))
	require.Nil(t, controller.Run(ctx))

	m, ok := target.takeReady()
	require.True(t, ok)
	require.True(t, m.IsEOS())
	require.Equal(t, target.PairID(), m.PairID)
	_, ok = target.takeReady()
	require.False(t, ok)
}

func TestEOSControllerDuplicateRoster(t *testing.T) {
	s := makeTestSchema(t)
	_, err := CreateEOSController(NewExchangePairID(), s, []myria.WorkerID{1, 1}, 0, nil)
	require.NotNil(t, err)
}
