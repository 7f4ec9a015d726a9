package util

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerCount returns the number of workers for concurrent operations.
func WorkerCount() int {
	return runtime.NumCPU()
}

// Parallel calls fn for every input on at most workerLimit goroutines.
// Every input is visited even after a failure; the first error is returned.
func Parallel[T any](inputs []T, workerLimit int, fn func(T) error) error {
	var g errgroup.Group
	g.SetLimit(max(workerLimit, 1))
	for _, in := range inputs {
		in := in
		g.Go(func() error { return fn(in) })
	}
	return g.Wait()
}
