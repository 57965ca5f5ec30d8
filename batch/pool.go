package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs submitted tasks with bounded concurrency. Wait blocks until every
// submitted task has returned and reports the first error. There is no
// cancellation: once submitted, tasks run to completion even when another
// task fails, and their results are discarded by the caller. A Pool serves a
// single batch run.
type Pool interface {
	Go(task func() error)
	Wait() error
}

// WorkerPool returns a Pool running at most workers tasks concurrently.
// workers <= 0 selects half the available CPUs, at least one.
func WorkerPool(workers int) Pool {
	if workers <= 0 {
		workers = runtime.NumCPU() / 2
		if workers < 1 {
			workers = 1
		}
	}
	g := new(errgroup.Group)
	g.SetLimit(workers)
	return g
}
