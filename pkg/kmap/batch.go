package kmap

import (
	"context"
	"sync"

	"github.com/gitrdm/gokmap/internal/parallel"
)

// BatchResult is the outcome of minimizing one input of a batch.
type BatchResult struct {
	Input      string // the truth table as given
	Expression string // sum-of-products result, empty on error
	Err        error  // wraps one of the package sentinels, or ctx.Err()
}

// SolveBatch minimizes many truth tables concurrently and returns one
// result per input, in input order. Solve calls share no state, so the
// only coordination is a bounded worker pool; workers <= 0 uses one
// worker per CPU core.
//
// Cancelling ctx stops dispatching further inputs; inputs never
// dispatched carry the context's error as their result. Inputs already
// running finish normally.
func SolveBatch(ctx context.Context, inputs []string, workers int) []BatchResult {
	results := make([]BatchResult, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i, input := range inputs {
		i, input := i, input
		results[i].Input = input

		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i].Expression, results[i].Err = Solve(input)
		})
		if err != nil {
			wg.Done()
			// Dispatch stopped: mark this and every remaining input.
			for j := i; j < len(inputs); j++ {
				results[j].Input = inputs[j]
				results[j].Err = err
			}
			break
		}
	}
	wg.Wait()

	return results
}
