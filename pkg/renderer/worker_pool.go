package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs one task per scanline across a bounded set of goroutines.
// Tasks must write disjoint state; Run returns only after every task finished.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls task for every row in [0, rows) and waits for all of them
func (wp *WorkerPool) Run(rows int, task func(row int) error) error {
	var g errgroup.Group
	g.SetLimit(wp.numWorkers)

	for row := range rows {
		g.Go(func() error {
			return task(row)
		})
	}

	return g.Wait()
}
