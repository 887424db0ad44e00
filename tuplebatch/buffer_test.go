package tuplebatch

import (
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
	"github.com/atcbosselut/myria/schema"
	"github.com/stretchr/testify/require"
)

func createBufferTestSchema(t *testing.T) myria.Schema {
	s, err := schema.CreateSchema(
		[]string{"id", "label"},
		[]myria.ColumnType{&myria.Int32ColumnType{}, &myria.StringColumnType{}},
	)
	require.Nil(t, err)
	return s
}

func TestBufferSealsAtCapacity(t *testing.T) {
	s := createBufferTestSchema(t)
	buffer, err := CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	for i := 0; i < myria.BatchSize; i++ {
		require.Nil(t, buffer.AppendRow([]interface{}{int32(i), "x"}))
	}
	require.Equal(t, 1, buffer.NumReadyBatches())
	require.Equal(t, 0, buffer.NumPendingRows())
	batch := buffer.PopFilled()
	require.NotNil(t, batch)
	require.Equal(t, myria.BatchSize, batch.NumRows())
	require.Nil(t, buffer.PopFilled())
}

func TestBufferPopAnyFlushesPartial(t *testing.T) {
	s := createBufferTestSchema(t)
	buffer, err := CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	for i := 0; i < 7; i++ {
		require.Nil(t, buffer.AppendRow([]interface{}{int32(i), "x"}))
	}
	require.Nil(t, buffer.PopFilled())
	batch, err := buffer.PopAny()
	require.Nil(t, err)
	require.Equal(t, 7, batch.NumRows())
	// buffer resets for the next batch
	batch, err = buffer.PopAny()
	require.Nil(t, err)
	require.Nil(t, batch)
	require.Nil(t, buffer.AppendRow([]interface{}{int32(0), "y"}))
	require.Equal(t, 1, buffer.NumPendingRows())
}

func TestBufferPopAll(t *testing.T) {
	s := createBufferTestSchema(t)
	buffer, err := CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	numRows := 2*myria.BatchSize + 30
	for i := 0; i < numRows; i++ {
		require.Nil(t, buffer.AppendRow([]interface{}{int32(i), "x"}))
	}
	batches, err := buffer.PopAll()
	require.Nil(t, err)
	require.Equal(t, 3, len(batches))
	require.Equal(t, myria.BatchSize, batches[0].NumRows())
	require.Equal(t, myria.BatchSize, batches[1].NumRows())
	require.Equal(t, 30, batches[2].NumRows())
	// rows arrive in insertion order
	id, err := batches[2].GetInt32(0, 0)
	require.Nil(t, err)
	require.Equal(t, int32(2*myria.BatchSize), id)
}

func TestBufferPutTypeMismatch(t *testing.T) {
	s := createBufferTestSchema(t)
	buffer, err := CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	err = buffer.Put(0, "not an int32")
	require.NotNil(t, err)
	_, ok := err.(errors.TypeMismatchError)
	require.True(t, ok)
}

func TestBufferPutSameColumnTwice(t *testing.T) {
	s := createBufferTestSchema(t)
	buffer, err := CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	require.Nil(t, buffer.Put(0, int32(1)))
	require.NotNil(t, buffer.Put(0, int32(2)))
}

func TestBufferPopAnyMidRow(t *testing.T) {
	s := createBufferTestSchema(t)
	buffer, err := CreateTupleBatchBuffer(s)
	require.Nil(t, err)
	require.Nil(t, buffer.Put(0, int32(1)))
	_, err = buffer.PopAny()
	require.NotNil(t, err)
}
