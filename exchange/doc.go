// Package exchange implements the operators which move tuple batches
// between the workers of a distributed query plan: producer/consumer pairs
// for collect (many workers to one sink), shuffle (many to many,
// partitioned) and local multiway fan-out, along with the partition
// functions which route shuffle rows and the EOSController which converts
// per-worker end-of-stream signals into a single coordinated completion
// event for downstream local operators.
package exchange
