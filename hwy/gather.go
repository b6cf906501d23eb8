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

// Gather and scatter address caller memory through an index vector with the
// same lane count as the data vector. Indices are not range checked beyond
// Go's own slice indexing, and masked variants never touch the memory of
// unselected lanes.

// GatherIndex loads src[indices[i]] into lane i.
func GatherIndex[T Lanes, I Integers, N Count](src []T, indices Vec[I, N]) Vec[T, N] {
	idx := indices.reg()
	out := make([]T, lanesOf[N]())
	for i := range out {
		out[i] = src[int(idx.extract(i))]
	}
	return newVec[T, N](out)
}

// MaskedGatherIndex loads src[indices[i]] into the lanes selected by m and
// keeps the lanes of v elsewhere.
func MaskedGatherIndex[T Lanes, I Integers, N Count](m Mask[N], v Vec[T, N], src []T, indices Vec[I, N]) Vec[T, N] {
	idx, mr := indices.reg(), m.reg()
	out := v.Lanes()
	for i := range out {
		if mr.extract(i) {
			out[i] = src[int(idx.extract(i))]
		}
	}
	return newVec[T, N](out)
}

// GatherIndexOffset loads src[base + indices[i]*scale] into lane i.
// This is useful for accessing elements with a fixed stride.
func GatherIndexOffset[T Lanes, I Integers, N Count](src []T, base int, indices Vec[I, N], scale int) Vec[T, N] {
	idx := indices.reg()
	out := make([]T, lanesOf[N]())
	for i := range out {
		out[i] = src[base+int(idx.extract(i))*scale]
	}
	return newVec[T, N](out)
}

// ScatterIndex stores lane i of v to dst[indices[i]]. Lanes are stored in
// ascending order, so with duplicate indices the highest lane wins.
func ScatterIndex[T Lanes, I Integers, N Count](v Vec[T, N], dst []T, indices Vec[I, N]) {
	r, idx := v.reg(), indices.reg()
	for i := range lanesOf[N]() {
		dst[int(idx.extract(i))] = r.extract(i)
	}
}

// MaskedScatterIndex stores the lanes of v selected by m to dst[indices[i]].
func MaskedScatterIndex[T Lanes, I Integers, N Count](m Mask[N], v Vec[T, N], dst []T, indices Vec[I, N]) {
	r, idx, mr := v.reg(), indices.reg(), m.reg()
	for i := range lanesOf[N]() {
		if mr.extract(i) {
			dst[int(idx.extract(i))] = r.extract(i)
		}
	}
}

// IndicesFromFunc creates an index vector by calling a function for each lane.
// This is useful for creating custom gather patterns.
func IndicesFromFunc[I Integers, N Count](f func(lane int) I) Vec[I, N] {
	out := make([]I, lanesOf[N]())
	for i := range out {
		out[i] = f(i)
	}
	return newVec[I, N](out)
}

// IndicesStride creates an index vector with values [start, start+stride, start+2*stride, ...].
func IndicesStride[I Integers, N Count](start, stride I) Vec[I, N] {
	return IndicesFromFunc[I, N](func(lane int) I { return start + I(lane)*stride })
}
