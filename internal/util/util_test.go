package util

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitAndFetchErrorPropagates(t *testing.T) {
	var wg sync.WaitGroup
	errors := CreateAsyncErrorChannel()
	wg.Add(1)
	go func() {
		defer wg.Done()
		errors <- fmt.Errorf("async failure")
	}()
	err := WaitAndFetchError(&wg, errors)
	require.NotNil(t, err)
	require.Equal(t, "async failure", err.Error())
}

func TestWaitAndFetchErrorNilOnSuccess(t *testing.T) {
	var wg sync.WaitGroup
	errors := CreateAsyncErrorChannel()
	wg.Add(1)
	go func() {
		defer wg.Done()
	}()
	require.Nil(t, WaitAndFetchError(&wg, errors))
}
