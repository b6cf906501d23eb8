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

package hwy

import (
	"errors"
	"fmt"
)

// This file provides shuffle and permutation operations for vectors.

// ErrSwizzleIndex is returned by NewSwizzle for an index outside [0, N).
var ErrSwizzleIndex = errors.New("hwy: swizzle index out of range")

// Swizzle is a lane permutation for vectors of N lanes: lane i of the
// result is lane Index(i) of the source. Indices repeat freely.
//
// The zero Swizzle is the identity.
type Swizzle[N Count] struct {
	idx []uint8
}

// NewSwizzle builds a swizzle from N source lane indices.
func NewSwizzle[N Count](indices []int) (Swizzle[N], error) {
	n := lanesOf[N]()
	if len(indices) != n {
		return Swizzle[N]{}, fmt.Errorf("swizzle of %d lanes from %d indices: %w", n, len(indices), ErrSwizzleIndex)
	}
	idx := make([]uint8, n)
	for i, x := range indices {
		if x < 0 || x >= n {
			return Swizzle[N]{}, fmt.Errorf("lane %d: index %d: %w", i, x, ErrSwizzleIndex)
		}
		idx[i] = uint8(x)
	}
	return Swizzle[N]{idx: idx}, nil
}

// SwizzleIota returns the identity permutation.
func SwizzleIota[N Count]() Swizzle[N] {
	return swizzleFunc[N](func(i, _ int) int { return i })
}

// SwizzleReverse returns the permutation that reverses the lanes.
func SwizzleReverse[N Count]() Swizzle[N] {
	return swizzleFunc[N](func(i, n int) int { return n - 1 - i })
}

func swizzleFunc[N Count](f func(i, n int) int) Swizzle[N] {
	n := lanesOf[N]()
	idx := make([]uint8, n)
	for i := range idx {
		idx[i] = uint8(f(i, n))
	}
	return Swizzle[N]{idx: idx}
}

// Index returns the source lane of result lane i.
func (s Swizzle[N]) Index(i int) int {
	checkLane(i, lanesOf[N]())
	if s.idx == nil {
		return i
	}
	return int(s.idx[i])
}

// Permute reorders the lanes of v: result[i] = v[s.Index(i)].
func Permute[T Lanes, N Count](v Vec[T, N], s Swizzle[N]) Vec[T, N] {
	if s.idx == nil {
		return v
	}
	r := v.reg()
	out := make([]T, len(s.idx))
	for i, j := range s.idx {
		out[i] = r.extract(int(j))
	}
	return newVec[T, N](out)
}

// TableLookupLanes returns tbl[idx[i]] for each lane. Indices must lie in
// [0, N).
func TableLookupLanes[T Lanes, I Integers, N Count](tbl Vec[T, N], idx Vec[I, N]) Vec[T, N] {
	r, ir := tbl.reg(), idx.reg()
	out := make([]T, lanesOf[N]())
	for i := range out {
		out[i] = r.extract(int(ir.extract(i)))
	}
	return newVec[T, N](out)
}

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes, N Count](v Vec[T, N]) Vec[T, N] {
	return Permute(v, SwizzleReverse[N]())
}

// reverseGroups reverses the lanes within each group of k lanes.
func reverseGroups[T Lanes, N Count](v Vec[T, N], k int) Vec[T, N] {
	k = min(k, lanesOf[N]())
	return Permute(v, swizzleFunc[N](func(i, _ int) int {
		base := i - i%k
		return base + k - 1 - i%k
	}))
}

// Reverse2 reverses pairs of lanes.
// [0,1,2,3,4,5,6,7] -> [1,0,3,2,5,4,7,6]
func Reverse2[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return reverseGroups(v, 2) }

// Reverse4 reverses groups of 4 lanes.
// [0,1,2,3,4,5,6,7] -> [3,2,1,0,7,6,5,4]
func Reverse4[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return reverseGroups(v, 4) }

// Reverse8 reverses groups of 8 lanes.
func Reverse8[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return reverseGroups(v, 8) }

// Broadcast broadcasts a single lane to all lanes in the vector.
// It panics if lane is out of range.
func Broadcast[T Lanes, N Count](v Vec[T, N], lane int) Vec[T, N] {
	return Set[T, N](v.Extract(lane))
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] {
	return interleave(a, b, 0)
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] {
	return interleave(a, b, lanesOf[N]()/2)
}

func interleave[T Lanes, N Count](a, b Vec[T, N], from int) Vec[T, N] {
	n := lanesOf[N]()
	if n == 1 {
		return a
	}
	ra, rb := a.reg(), b.reg()
	out := make([]T, n)
	for i := range n / 2 {
		out[2*i] = ra.extract(from + i)
		out[2*i+1] = rb.extract(from + i)
	}
	return newVec[T, N](out)
}

// OddEven takes odd lanes from a and even lanes from b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3]
func OddEven[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] {
	return Blend(MaskFromBits[N](0x5555555555555555), a, b)
}

// DupEven duplicates even lanes into the odd lanes above them.
// [0,1,2,3] -> [0,0,2,2]
func DupEven[T Lanes, N Count](v Vec[T, N]) Vec[T, N] {
	return Permute(v, swizzleFunc[N](func(i, _ int) int { return i &^ 1 }))
}

// DupOdd duplicates odd lanes into the even lanes below them.
// [0,1,2,3] -> [1,1,3,3]
func DupOdd[T Lanes, N Count](v Vec[T, N]) Vec[T, N] {
	return Permute(v, swizzleFunc[N](func(i, n int) int { return min(i|1, n-1) }))
}

// SlideUpLanes shifts all lanes up (toward higher indices) by the given offset.
// Lower lanes are filled with zeros, upper lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [0,0,1,2,3,4,5,6]
func SlideUpLanes[T Lanes, N Count](v Vec[T, N], offset int) Vec[T, N] {
	n := lanesOf[N]()
	if offset <= 0 {
		return v
	}
	out := make([]T, n)
	if offset < n {
		copy(out[offset:], v.Lanes()[:n-offset])
	}
	return newVec[T, N](out)
}

// SlideDownLanes shifts all lanes down (toward lower indices) by the given offset.
// Upper lanes are filled with zeros, lower lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [3,4,5,6,7,8,0,0]
func SlideDownLanes[T Lanes, N Count](v Vec[T, N], offset int) Vec[T, N] {
	n := lanesOf[N]()
	if offset <= 0 {
		return v
	}
	out := make([]T, n)
	if offset < n {
		copy(out, v.Lanes()[offset:])
	}
	return newVec[T, N](out)
}

// Slide1Up shifts all lanes up by 1, filling the first lane with zero.
func Slide1Up[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return SlideUpLanes(v, 1) }

// Slide1Down shifts all lanes down by 1, filling the last lane with zero.
func Slide1Down[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return SlideDownLanes(v, 1) }
