// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import (
	"context"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/workerpool"
)

// VecFunc maps one vector to another lane-wise.
type VecFunc[T hwy.Lanes, N hwy.Count] func(hwy.Vec[T, N]) hwy.Vec[T, N]

// Transform stores fn(input) into output over min(len(input), len(output))
// elements. fn must be lane-wise: the tail vector carries zeros in its
// unused lanes and those results are discarded.
func Transform[N hwy.Count, T hwy.Lanes](input, output []T, fn VecFunc[T, N]) {
	n := min(len(input), len(output))
	hwy.ProcessWithTail[N](n,
		func(offset int) { hwy.Store(fn(hwy.Load[T, N](input[offset:])), output[offset:]) },
		func(offset, count int) {
			m := hwy.FirstN[N](count)
			hwy.MaskStore(m, fn(hwy.MaskLoad(m, input[offset:])), output[offset:])
		},
	)
}

// Transform2 stores fn(a, b) into output over the common length of the three
// slices.
func Transform2[N hwy.Count, T hwy.Lanes](a, b, output []T, fn func(x, y hwy.Vec[T, N]) hwy.Vec[T, N]) {
	n := min(len(a), len(b), len(output))
	hwy.ProcessWithTail[N](n,
		func(offset int) {
			hwy.Store(fn(hwy.Load[T, N](a[offset:]), hwy.Load[T, N](b[offset:])), output[offset:])
		},
		func(offset, count int) {
			m := hwy.FirstN[N](count)
			hwy.MaskStore(m, fn(hwy.MaskLoad(m, a[offset:]), hwy.MaskLoad(m, b[offset:])), output[offset:])
		},
	)
}

// ParallelTransform runs Transform on pool workers. Each worker gets a range
// that starts on a vector boundary, so only the final range has a tail.
// It stops early and returns ctx.Err() when ctx is cancelled.
func ParallelTransform[N hwy.Count, T hwy.Lanes](ctx context.Context, pool *workerpool.Pool, input, output []T, fn VecFunc[T, N]) error {
	n := min(len(input), len(output))
	lanes := hwy.ShapeOf[T, N]().Lanes
	return pool.ParallelForAligned(ctx, n, lanes, func(ctx context.Context, start, end int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		Transform[N](input[start:end], output[start:end], fn)
		return nil
	})
}

// Sqrt stores the square root of each element of input into output.
func Sqrt[N hwy.Count, T hwy.Floats](input, output []T) {
	Transform[N](input, output, hwy.Sqrt[T, N])
}

// Abs stores the absolute value of each element of input into output.
func Abs[N hwy.Count, T hwy.Lanes](input, output []T) {
	Transform[N](input, output, hwy.Abs[T, N])
}
