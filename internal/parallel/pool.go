// Package parallel runs indexed jobs across a fixed set of goroutines.
//
// It backs the per-cell fan-out of plot.RenderCells: every job owns its
// own mask and random source, so nothing here synchronizes job state.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// job is one index of a Run call together with the batch it belongs to.
type job struct {
	index int
	batch *batch
}

// batch tracks a single Run call: the function every index runs, the jobs
// still outstanding and the first panic raised by any of them.
type batch struct {
	fn      func(i int)
	pending sync.WaitGroup

	mu       sync.Mutex
	panicked bool
	failed   int
	cause    any
}

func (b *batch) exec(i int) {
	defer b.pending.Done()
	defer func() {
		if r := recover(); r != nil {
			b.mu.Lock()
			if !b.panicked || i < b.failed {
				b.panicked, b.failed, b.cause = true, i, r
			}
			b.mu.Unlock()
		}
	}()
	b.fn(i)
}

// WorkerPool is a pool of goroutines with one job queue per worker.
// Consecutive indexes are dealt to the same worker, and idle workers steal
// from the other queues so a few slow cells do not hold up the rest.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan job
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan job, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan job, max(workers*4, 8))
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		if j, ok := p.next(id, own); ok {
			j.batch.exec(j.index)
			continue
		}
		select {
		case <-p.done:
			for {
				select {
				case j := <-own:
					j.batch.exec(j.index)
				default:
					return
				}
			}
		case j := <-own:
			j.batch.exec(j.index)
		}
	}
}

// next returns a queued job without blocking, preferring the worker's own
// queue over the others.
func (p *WorkerPool) next(id int, own chan job) (job, bool) {
	select {
	case j := <-own:
		return j, true
	default:
	}
	for k := 1; k < p.workers; k++ {
		select {
		case j := <-p.queues[(id+k)%p.workers]:
			return j, true
		default:
		}
	}
	return job{}, false
}

// Run calls fn for every index in [0, n) and waits for all of them.
// Indexes are dealt in contiguous blocks, one block per worker. If any call
// panics, Run re-panics in the caller with the lowest failing index once
// the rest of the batch has finished. Run is a no-op on a closed pool.
func (p *WorkerPool) Run(n int, fn func(i int)) {
	if n <= 0 || !p.running.Load() {
		return
	}
	b := &batch{fn: fn}
	b.pending.Add(n)
	block := (n + p.workers - 1) / p.workers
	for i := range n {
		select {
		case p.queues[(i/block)%p.workers] <- job{index: i, batch: b}:
		case <-p.done:
			b.pending.Done()
		}
	}
	b.pending.Wait()
	if b.panicked {
		panic(fmt.Sprintf("parallel: job %d: %v", b.failed, b.cause))
	}
}

// Close stops the pool after the queued jobs have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting jobs.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Map runs fn for every index in [0, n) on the pool and returns the results
// in index order, independent of scheduling.
func Map[T any](p *WorkerPool, n int, fn func(i int) T) []T {
	out := make([]T, max(n, 0))
	p.Run(n, func(i int) { out[i] = fn(i) })
	return out
}
