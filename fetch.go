package myria

// FetchStatus describes the outcome of a fetch call against a PullSource
type FetchStatus int

const (
	// FetchNotReady indicates that no data was available without blocking
	FetchNotReady FetchStatus = iota
	// FetchData indicates that a TupleBatch was fetched
	FetchData
	// FetchEOS indicates that the source is terminal and will never produce
	// another batch
	FetchEOS
)

// FetchResult is the tagged result of a fetch call. Batch is non-nil iff
// Status is FetchData.
type FetchResult struct {
	Status FetchStatus
	Batch  TupleBatch
}
