// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool splits slice work across goroutines in ranges that
// line up with vector boundaries.
//
// A Pool keeps its workers alive between calls, so it can be reused for
// many small operations:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	for _, layer := range layers {
//		pool.ParallelFor(rows, func(start, end int) {
//			processRows(layer, start, end)
//		})
//	}
//
// ParallelForAligned adds cancellation and error propagation for work that
// can fail.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while work is sent, so Close cannot close
	// workC under a sender.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the workers down once pending work completes. It is safe to
// call more than once and concurrently with the ParallelFor methods; a
// closed pool runs everything on the caller.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

func (p *Pool) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// run executes fns on the workers and waits for them, or runs them in
// order on the caller if the pool is closed.
func (p *Pool) run(fns []func()) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for _, fn := range fns {
			fn()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Chunks splits [0, n) into at most parts contiguous ranges. Every range but
// the last starts and ends on a multiple of align, so vector loops over the
// ranges see a partial vector only at the very end.
func Chunks(n, parts, align int) [][2]int {
	if n <= 0 {
		return nil
	}
	align = max(align, 1)
	parts = max(min(parts, (n+align-1)/align), 1)
	blocks := (n + align - 1) / align
	size := (blocks + parts - 1) / parts * align
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// ParallelFor calls fn on contiguous ranges covering [0, n), one range per
// worker, and blocks until all complete.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	chunks := Chunks(n, p.numWorkers, 1)
	if len(chunks) <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	fns := make([]func(), len(chunks))
	for i, c := range chunks {
		fns[i] = func() { fn(c[0], c[1]) }
	}
	p.run(fns)
}

// ParallelForAtomicBatched hands out batches of batchSize indices from a
// shared counter, which balances load when the cost per item varies.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	workers := min(p.numWorkers, (n+batchSize-1)/batchSize)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	batches := func() {
		for {
			start := int(next.Add(int64(batchSize))) - batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	fns := make([]func(), workers)
	for i := range fns {
		fns[i] = batches
	}
	p.run(fns)
}

// ParallelForAligned runs fn on the ranges of Chunks(n, NumWorkers(), align)
// concurrently. The first error cancels the context passed to the other
// calls and is returned once all of them have finished.
func (p *Pool) ParallelForAligned(ctx context.Context, n, align int, fn func(ctx context.Context, start, end int) error) error {
	chunks := Chunks(n, p.numWorkers, align)
	if len(chunks) <= 1 || p.isClosed() {
		for _, c := range chunks {
			if err := fn(ctx, c[0], c[1]); err != nil {
				return err
			}
		}
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.numWorkers)
	for _, c := range chunks {
		g.Go(func() error { return fn(gctx, c[0], c[1]) })
	}
	return g.Wait()
}
