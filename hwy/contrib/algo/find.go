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

import "github.com/ajroetker/hwyvec/hwy"

// scan calls fn with each vector of slice and the mask of lanes that hold
// data, stopping early when fn returns false. Lanes past the end of slice
// load as zero.
func scan[N hwy.Count, T hwy.Lanes](slice []T, fn func(offset int, v hwy.Vec[T, N], valid hwy.Mask[N]) bool) {
	lanes := hwy.ShapeOf[T, N]().Lanes
	all := hwy.FirstN[N](lanes)
	i := 0
	for ; i+lanes <= len(slice); i += lanes {
		if !fn(i, hwy.Load[T, N](slice[i:]), all) {
			return
		}
	}
	if i < len(slice) {
		m := hwy.FirstN[N](len(slice) - i)
		fn(i, hwy.MaskLoad(m, slice[i:]), m)
	}
}

// Find returns the index of the first element equal to value, or -1.
func Find[N hwy.Count, T hwy.Lanes](slice []T, value T) int {
	return FindIf[N](slice, Equal[T, N]{Value: value})
}

// Count returns the number of elements equal to value.
func Count[N hwy.Count, T hwy.Lanes](slice []T, value T) int {
	return CountIf[N](slice, Equal[T, N]{Value: value})
}

// Contains reports whether slice holds value.
func Contains[N hwy.Count, T hwy.Lanes](slice []T, value T) bool {
	return Find[N](slice, value) >= 0
}

// FindIf returns the index of the first element satisfying pred, or -1.
func FindIf[N hwy.Count, T hwy.Lanes, P Predicate[T, N]](slice []T, pred P) int {
	found := -1
	scan(slice, func(offset int, v hwy.Vec[T, N], valid hwy.Mask[N]) bool {
		if i := hwy.MaskAnd(pred.Apply(v), valid).FindFirstTrue(); i >= 0 {
			found = offset + i
			return false
		}
		return true
	})
	return found
}

// CountIf returns the number of elements satisfying pred.
func CountIf[N hwy.Count, T hwy.Lanes, P Predicate[T, N]](slice []T, pred P) int {
	count := 0
	scan(slice, func(_ int, v hwy.Vec[T, N], valid hwy.Mask[N]) bool {
		count += hwy.MaskAnd(pred.Apply(v), valid).CountTrue()
		return true
	})
	return count
}

// All reports whether every element satisfies pred. It is true for an empty
// slice.
func All[N hwy.Count, T hwy.Lanes, P Predicate[T, N]](slice []T, pred P) bool {
	return FindIf[N](slice, Not[T, N, P]{Pred: pred}) < 0
}

// Any reports whether some element satisfies pred.
func Any[N hwy.Count, T hwy.Lanes, P Predicate[T, N]](slice []T, pred P) bool {
	return FindIf[N](slice, pred) >= 0
}

// None reports whether no element satisfies pred.
func None[N hwy.Count, T hwy.Lanes, P Predicate[T, N]](slice []T, pred P) bool {
	return !Any[N](slice, pred)
}
