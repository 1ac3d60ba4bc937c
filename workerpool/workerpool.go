// Copyright 2025 wordpack Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for fanning
// out independent jobs, such as running every strategy against every dataset
// of a measurement matrix. Workers are spawned once at creation and reused,
// so repeated fan-outs pay no per-call goroutine or channel setup cost.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(jobs), func(i int) {
//	    jobs[i].run()
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of persistent worker goroutines. A Pool is safe for
// concurrent use, but each ParallelFor call blocks until its own jobs finish.
type Pool struct {
	workers   int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// task pairs a job with the barrier its ParallelFor call is waiting on.
type task struct {
	run     func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// If workers <= 0, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		// Room for every worker to have one task queued behind its current one.
		tasks: make(chan task, workers*2),
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.run()
		t.barrier.Done()
	}
}

// NumWorkers returns the pool size.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close shuts the pool down after all queued work completes. Close is
// idempotent, and calls on a closed pool fall back to running sequentially
// in the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor partitions [0, n) into contiguous ranges, one per worker, and
// blocks until fn has run on all of them. fn receives half-open [start, end)
// bounds. Suited to jobs of even cost.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.tasks <- task{
			run:     func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic runs fn once for each index in [0, n), handing indices to
// workers one at a time through an atomic counter. The stealing balances load
// when job cost varies, as it does across datasets of different sizes.
// Blocks until all indices are done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := min(p.workers, n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		p.tasks <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
