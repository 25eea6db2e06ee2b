// Package parallel provides the bounded parallel-for used by the network
// engine for its per-neuron inner loops.
//
// Layers are sequentially dependent, so callers only ever parallelize
// across the neurons of a single layer; For returns once every iteration
// has finished, which gives the implicit barrier between layer steps.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For splits work across goroutines.
type Config struct {
	// Workers is the number of goroutines to spread iterations over.
	Workers int
	// MinSpan is the smallest iteration count worth parallelizing.
	// Loops below it run sequentially on the calling goroutine.
	MinSpan int
}

// DefaultConfig sizes the worker pool from the CPU count.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		MinSpan: 32,
	}
}

// Sequential returns a Config that disables parallel execution entirely.
func Sequential() Config {
	return Config{Workers: 1, MinSpan: 1}
}

// For executes f(i) for every i in [0, n) and blocks until all calls
// have returned. Iterations touch disjoint state by contract, so no
// locking is performed. Small loops and single-worker configs run
// inline on the calling goroutine.
func For(n int, cfg Config, f func(i int)) {
	if cfg.Workers <= 1 || n < cfg.MinSpan {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	span := (n + cfg.Workers - 1) / cfg.Workers
	if span < cfg.MinSpan {
		span = cfg.MinSpan
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += span {
		end := min(start+span, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
