package myria

// A PartitionFunction deterministically maps a row of a TupleBatch to a
// destination index in [0, NumPartitions()). The producer side and every
// consumer side of a shuffle must agree on NumPartitions and on the key
// column selection; that agreement is a contract enforced by plan
// construction, not by the exchange core.
type PartitionFunction interface {
	NumPartitions() int
	Partition(b TupleBatch, row int) (int, error)
}
