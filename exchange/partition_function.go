package exchange

import (
	"fmt"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/tuplebatch"
)

// singleFieldHashPartitionFunction routes a row by the hash of one column.
// Rows with equal values in that column always land on the same partition.
type singleFieldHashPartitionFunction struct {
	numPartitions int
	field         int
}

// CreateSingleFieldHashPartitionFunction creates a PartitionFunction which
// hashes the given column across numPartitions partitions
func CreateSingleFieldHashPartitionFunction(numPartitions int, field int) (myria.PartitionFunction, error) {
	if numPartitions < 1 {
		return nil, fmt.Errorf("partition function requires at least 1 partition, got %d", numPartitions)
	}
	return &singleFieldHashPartitionFunction{numPartitions: numPartitions, field: field}, nil
}

func (f *singleFieldHashPartitionFunction) NumPartitions() int {
	return f.numPartitions
}

func (f *singleFieldHashPartitionFunction) Partition(b myria.TupleBatch, row int) (int, error) {
	h, err := tuplebatch.HashRow(b, row, []int{f.field})
	if err != nil {
		return 0, err
	}
	return int(h % uint64(f.numPartitions)), nil
}

// KeyColumns returns the columns this function hashes
func (f *singleFieldHashPartitionFunction) KeyColumns() []int {
	return []int{f.field}
}

// multiFieldHashPartitionFunction routes a row by the combined hash of
// several columns, in a fixed order
type multiFieldHashPartitionFunction struct {
	numPartitions int
	fields        []int
}

// CreateMultiFieldHashPartitionFunction creates a PartitionFunction which
// hashes the given columns, in order, across numPartitions partitions
func CreateMultiFieldHashPartitionFunction(numPartitions int, fields []int) (myria.PartitionFunction, error) {
	if numPartitions < 1 {
		return nil, fmt.Errorf("partition function requires at least 1 partition, got %d", numPartitions)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("multi-field partition function requires at least one field")
	}
	copied := make([]int, len(fields))
	copy(copied, fields)
	return &multiFieldHashPartitionFunction{numPartitions: numPartitions, fields: copied}, nil
}

func (f *multiFieldHashPartitionFunction) NumPartitions() int {
	return f.numPartitions
}

func (f *multiFieldHashPartitionFunction) Partition(b myria.TupleBatch, row int) (int, error) {
	h, err := tuplebatch.HashRow(b, row, f.fields)
	if err != nil {
		return 0, err
	}
	return int(h % uint64(f.numPartitions)), nil
}

// KeyColumns returns the columns this function hashes
func (f *multiFieldHashPartitionFunction) KeyColumns() []int {
	return f.fields
}

// roundRobinPartitionFunction spreads rows evenly across partitions without
// regard to their contents. Useful for load balancing when no downstream
// operator needs co-location.
type roundRobinPartitionFunction struct {
	numPartitions int
	next          int
}

// CreateRoundRobinPartitionFunction creates a PartitionFunction which deals
// rows out to partitions in rotation
func CreateRoundRobinPartitionFunction(numPartitions int) (myria.PartitionFunction, error) {
	if numPartitions < 1 {
		return nil, fmt.Errorf("partition function requires at least 1 partition, got %d", numPartitions)
	}
	return &roundRobinPartitionFunction{numPartitions: numPartitions}, nil
}

func (f *roundRobinPartitionFunction) NumPartitions() int {
	return f.numPartitions
}

func (f *roundRobinPartitionFunction) Partition(b myria.TupleBatch, row int) (int, error) {
	p := f.next
	f.next = (f.next + 1) % f.numPartitions
	return p, nil
}
