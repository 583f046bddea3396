// Package parallel provides CPU-chunked loop helpers for embarrassingly
// parallel work such as evaluating independent hyperparameter points.
package parallel

import (
	"runtime"
	"sync"
)

// ForEach runs fn(i) for every i in [0, items), distributing the indices
// over up to runtime.NumCPU() workers in contiguous chunks. Each index is
// visited exactly once; fn must be safe to call concurrently.
func ForEach(items int, fn func(i int)) {
	Chunked(items, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// Chunked divides [0, items) into contiguous ranges, one per worker, and
// executes fn(start, end) for each range concurrently.
func Chunked(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}

	// Ceiling division so every index is covered.
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForEachWithThreshold runs fn sequentially when items is at or below
// threshold, avoiding goroutine overhead for small workloads.
func ForEachWithThreshold(items, threshold int, fn func(i int)) {
	if items <= threshold {
		for i := 0; i < items; i++ {
			fn(i)
		}
		return
	}
	ForEach(items, fn)
}
