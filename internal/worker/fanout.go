package worker

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// ProcessFunc processes a single item.
type ProcessFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Run processes items concurrently with at most concurrency calls in flight.
// Results are returned in input order. Items not started before ctx is
// cancelled carry ctx's error.
func Run[T, R any](ctx context.Context, items []T, concurrency int, process ProcessFunc[T, R]) []Result[T, R] {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result[T, R], len(items))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		results[i].Item = item
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}: // acquire
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-sem }() // release

			value, err := process(ctx, item)
			results[i].Value = value
			results[i].Err = err
		}(i, item)
	}

	wg.Wait()
	return results
}
