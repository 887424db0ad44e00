package util

import (
	"sync"
)

// CreateAsyncErrorChannel produces a channel for errors
func CreateAsyncErrorChannel() chan error {
	return make(chan error)
}

// WaitAndFetchError attempts to fetch an error from an async goroutine
func WaitAndFetchError(wg *sync.WaitGroup, errors chan error) error {
	// use reading from the errors channel to block, rather than
	// the WaitGroup directly. The channel closes once every goroutine
	// is done, so a clean finish yields nil here.
	go func() {
		defer close(errors)
		wg.Wait()
	}()
	return <-errors
}
