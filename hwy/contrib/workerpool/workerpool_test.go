// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

func TestChunks(t *testing.T) {
	tests := []struct {
		n, parts, align int
		want            [][2]int
	}{
		{0, 4, 8, nil},
		{5, 4, 8, [][2]int{{0, 5}}},
		{100, 4, 1, [][2]int{{0, 25}, {25, 50}, {50, 75}, {75, 100}}},
		{100, 4, 8, [][2]int{{0, 32}, {32, 64}, {64, 96}, {96, 100}}},
		{17, 8, 8, [][2]int{{0, 8}, {8, 16}, {16, 17}}},
		{10, 3, 0, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
	}
	for _, tt := range tests {
		got := Chunks(tt.n, tt.parts, tt.align)
		assert.Equal(t, tt.want, got, "Chunks(%d, %d, %d)", tt.n, tt.parts, tt.align)
		for _, c := range got[:max(len(got)-1, 0)] {
			assert.Zero(t, c[1]%max(tt.align, 1), "chunk end %d not aligned", c[1])
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var count atomic.Int32
	pool.ParallelFor(3, func(start, end int) {
		count.Add(int32(end - start))
	})
	assert.Equal(t, int32(3), count.Load())

	pool.ParallelFor(0, func(start, end int) {
		t.Error("ParallelFor with n=0 should not call fn")
	})
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	var hits [103]atomic.Int32
	pool.ParallelForAtomicBatched(n, 10, func(start, end int) {
		assert.LessOrEqual(t, end-start, 10)
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})
	for i := range n {
		assert.Equal(t, int32(1), hits[i].Load(), "index %d", i)
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 70
	results := make([]int, n)
	err := pool.ParallelForAligned(context.Background(), n, 16, func(_ context.Context, start, end int) error {
		assert.Zero(t, start%16)
		for i := start; i < end; i++ {
			results[i] = i + 1
		}
		return nil
	})
	require.NoError(t, err)
	for i := range n {
		assert.Equal(t, i+1, results[i])
	}
}

func TestParallelForAlignedError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	err := pool.ParallelForAligned(context.Background(), 64, 8, func(ctx context.Context, start, end int) error {
		if start == 0 {
			return boom
		}
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pool.ParallelForAligned(ctx, 64, 8, func(ctx context.Context, start, end int) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		require.Equal(t, i*2, results[i])
	}

	var calls int
	require.NoError(t, pool.ParallelForAligned(context.Background(), n, 8, func(_ context.Context, start, end int) error {
		calls++
		return nil
	}))
	assert.Equal(t, 4, calls)
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelForAtomicBatched(1000, 10, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func TestCloseDuringParallelFor(t *testing.T) {
	pool := New(4)
	const n = 1000
	var wg sync.WaitGroup
	totals := make([]int64, 8)
	for g := range totals {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				var sum atomic.Int64
				pool.ParallelFor(n, func(start, end int) {
					sum.Add(int64(end - start))
				})
				pool.ParallelForAtomicBatched(n, 16, func(start, end int) {
					sum.Add(int64(end - start))
				})
				totals[g] += sum.Load()
			}
		}()
	}
	runtime.Gosched()
	pool.Close()
	wg.Wait()
	for g, total := range totals {
		assert.Equal(t, int64(50*2*n), total, "goroutine %d", g)
	}
}
