// Package parallel splits row-wise matrix work across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// RowThreshold is the row count at or below which work stays on the calling goroutine.
const RowThreshold = 1000

// Parallelize splits [0, items) into one contiguous chunk per worker and
// runs fn on each chunk concurrently. It returns after every chunk finishes.
func Parallelize(items int, fn func(start, end int)) {
	ParallelizeN(items, runtime.NumCPU(), fn)
}

// ParallelizeN is Parallelize with an explicit worker count.
func ParallelizeN(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > items {
		workers = items
	}
	if workers == 1 {
		fn(0, items)
		return
	}

	chunkSize := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := min(start+chunkSize, items)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) sequentially when items <= threshold
// and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// Rows runs fn over the rows of an n-row matrix using RowThreshold.
func Rows(n int, fn func(start, end int)) {
	ParallelizeWithThreshold(n, RowThreshold, fn)
}
