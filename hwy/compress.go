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

// This file provides compress and expand operations for vectors.
// Compress packs elements where the mask is true to the front.
// Expand unpacks elements into positions where the mask is true.

// Compress packs elements where mask is true to the front, in lane order.
// Returns compressed vector and count of valid elements; lanes at and above
// the count are zero.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,0,0], count=2
func Compress[T Lanes, N Count](v Vec[T, N], mask Mask[N]) (Vec[T, N], int) {
	r, m := v.reg(), mask.reg()
	out := make([]T, lanesOf[N]())
	count := 0
	for i := range out {
		if m.extract(i) {
			out[count] = r.extract(i)
			count++
		}
	}
	return newVec[T, N](out), count
}

// Expand unpacks elements into positions where mask is true.
// Elements from v fill true positions, false positions get zero.
// For example: v=[1,2,0,0], mask=[T,F,T,F] -> result=[1,0,2,0]
func Expand[T Lanes, N Count](v Vec[T, N], mask Mask[N]) Vec[T, N] {
	r, m := v.reg(), mask.reg()
	out := make([]T, lanesOf[N]())
	src := 0
	for i := range out {
		if m.extract(i) {
			out[i] = r.extract(src)
			src++
		}
	}
	return newVec[T, N](out)
}

// CompressStore writes the selected lanes of v to dst in lane order and
// returns how many were written. Only dst[:count] is touched.
func CompressStore[T Lanes, N Count](v Vec[T, N], mask Mask[N], dst []T) int {
	r, m := v.reg(), mask.reg()
	count := 0
	for i := range lanesOf[N]() {
		if m.extract(i) {
			dst[count] = r.extract(i)
			count++
		}
	}
	return count
}
