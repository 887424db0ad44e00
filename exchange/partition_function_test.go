package exchange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPartitionDeterminism(t *testing.T) {
	s := makeTestSchema(t)
	batch := makeBatch(t, s, 0, 50)
	pf, err := CreateSingleFieldHashPartitionFunction(4, 0)
	require.Nil(t, err)
	again, err := CreateSingleFieldHashPartitionFunction(4, 0)
	require.Nil(t, err)
	for _, row := range batch.ValidRowIndices() {
		p1, err := pf.Partition(batch, row)
		require.Nil(t, err)
		p2, err := again.Partition(batch, row)
		require.Nil(t, err)
		require.Equal(t, p1, p2)
		require.True(t, p1 >= 0 && p1 < 4)
	}
}

func TestMultiFieldHashUsesEveryField(t *testing.T) {
	s := makeTestSchema(t)
	batch := makeBatch(t, s, 0, 50)
	single, err := CreateSingleFieldHashPartitionFunction(16, 1)
	require.Nil(t, err)
	multi, err := CreateMultiFieldHashPartitionFunction(16, []int{1, 0})
	require.Nil(t, err)
	differs := false
	for _, row := range batch.ValidRowIndices() {
		p1, err := single.Partition(batch, row)
		require.Nil(t, err)
		p2, err := multi.Partition(batch, row)
		require.Nil(t, err)
		if p1 != p2 {
			differs = true
		}
	}
	require.True(t, differs)
}

func TestRoundRobinRotation(t *testing.T) {
	s := makeTestSchema(t)
	batch := makeBatch(t, s, 0, 6)
	pf, err := CreateRoundRobinPartitionFunction(3)
	require.Nil(t, err)
	var got []int
	for _, row := range batch.ValidRowIndices() {
		p, err := pf.Partition(batch, row)
		require.Nil(t, err)
		got = append(got, p)
	}
	require.Equal(t, []int{0, 1, 2, 0, 1, 2}, got)
}

func TestPartitionFunctionValidation(t *testing.T) {
	_, err := CreateSingleFieldHashPartitionFunction(0, 0)
	require.NotNil(t, err)
	_, err = CreateMultiFieldHashPartitionFunction(2, nil)
	require.NotNil(t, err)
	_, err = CreateRoundRobinPartitionFunction(-1)
	require.NotNil(t, err)
}
