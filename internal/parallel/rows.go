// Package parallel splits row-oriented pixel work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerBand keeps bands large enough that goroutine start-up does not
// dominate small images.
const minRowsPerBand = 16

// Workers returns the number of bands Rows will use for n rows when asked
// for the given worker count. If workers is 0 or negative, GOMAXPROCS is used.
func Workers(n, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if most := (n + minRowsPerBand - 1) / minRowsPerBand; workers > most {
		workers = most
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Rows divides [0, n) into contiguous bands and calls fn(lo, hi) for each
// band on its own goroutine, returning once every band has finished.
//
// Bands never overlap, so fn may write to per-row storage without locking.
// A single band runs on the calling goroutine.
func Rows(n, workers int, fn func(lo, hi int)) {
	if n <= 0 || fn == nil {
		return
	}

	bands := Workers(n, workers)
	if bands == 1 {
		fn(0, n)
		return
	}

	step := (n + bands - 1) / bands
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += step {
		hi := min(lo+step, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}
