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

import "unsafe"

// Load creates a vector from the first N elements of src.
// It panics if len(src) < N.
func Load[T Lanes, N Count](src []T) Vec[T, N] {
	n := lanesOf[N]()
	data := make([]T, n)
	copy(data, src[:n])
	return newVec[T, N](data)
}

// LoadAligned is Load for src whose first element is aligned to the vector
// size (N * sizeof(T) bytes), as returned by AlignedSlice. The alignment is
// a precondition and is not checked.
func LoadAligned[T Lanes, N Count](src []T) Vec[T, N] {
	return Load[T, N](src)
}

// Store writes a vector's lanes to dst[:N]. It panics if len(dst) < N.
func Store[T Lanes, N Count](v Vec[T, N], dst []T) {
	n := lanesOf[N]()
	if v.r == nil {
		clear(dst[:n])
		return
	}
	v.r.storeTo(dst[:n])
}

// StoreAligned is Store for an aligned destination; see LoadAligned.
func StoreAligned[T Lanes, N Count](v Vec[T, N], dst []T) {
	Store(v, dst)
}

// MaskLoad loads the lanes selected by mask from src. Unselected lanes are
// zero and their memory is never read, so src may be shorter than N as long
// as it covers the last selected lane.
func MaskLoad[T Lanes, N Count](mask Mask[N], src []T) Vec[T, N] {
	return MaskLoadOr(mask, Vec[T, N]{}, src)
}

// MaskLoadOr loads the lanes selected by mask from src and keeps the lanes
// of v elsewhere. Unselected memory is never read.
func MaskLoadOr[T Lanes, N Count](mask Mask[N], v Vec[T, N], src []T) Vec[T, N] {
	data := v.Lanes()
	m := mask.reg()
	for i := range data {
		if m.extract(i) {
			data[i] = src[i]
		}
	}
	return newVec[T, N](data)
}

// MaskStore stores elements from v to dst only where mask is true.
// Elements of dst at unselected lanes are neither read nor written.
func MaskStore[T Lanes, N Count](mask Mask[N], v Vec[T, N], dst []T) {
	m := mask.reg()
	r := v.reg()
	for i := range lanesOf[N]() {
		if m.extract(i) {
			dst[i] = r.extract(i)
		}
	}
}

// LoadDup128 loads a 128-bit (16 byte) block from src and repeats it to fill
// the vector. Vectors of 16 bytes or less load directly.
func LoadDup128[T Lanes, N Count](src []T) Vec[T, N] {
	var zero T
	block := 16 / int(unsafe.Sizeof(zero))
	n := lanesOf[N]()
	block = min(block, n)
	data := make([]T, n)
	copy(data, src[:block])
	for i := block; i < n; i += block {
		copy(data[i:], data[:block])
	}
	return newVec[T, N](data)
}

// LoadInterleaved2 loads interleaved pairs and deinterleaves into two vectors.
//
//	[a0, b0, a1, b1, ...] -> [a0, a1, ...], [b0, b1, ...]
//
// src must hold 2*N elements.
func LoadInterleaved2[T Lanes, N Count](src []T) (Vec[T, N], Vec[T, N]) {
	n := lanesOf[N]()
	_ = src[2*n-1]
	a, b := make([]T, n), make([]T, n)
	for i := range n {
		a[i] = src[2*i]
		b[i] = src[2*i+1]
	}
	return newVec[T, N](a), newVec[T, N](b)
}

// StoreInterleaved2 interleaves two vectors into dst, the inverse of
// LoadInterleaved2. dst must hold 2*N elements.
func StoreInterleaved2[T Lanes, N Count](a, b Vec[T, N], dst []T) {
	n := lanesOf[N]()
	_ = dst[2*n-1]
	ra, rb := a.reg(), b.reg()
	for i := range n {
		dst[2*i] = ra.extract(i)
		dst[2*i+1] = rb.extract(i)
	}
}

// AlignedSlice allocates a slice of n elements whose first element is
// aligned to the size of Vec[T, N], for use with LoadAligned and
// StoreAligned.
func AlignedSlice[T Lanes, N Count](n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := size * lanesOf[N]()
	buf := make([]T, n+align/size)
	off := 0
	for !IsAligned[T, N](buf[off:]) {
		off++
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of p is aligned to the size
// of Vec[T, N]. An empty slice is aligned.
func IsAligned[T Lanes, N Count](p []T) bool {
	if cap(p) == 0 {
		return true
	}
	var zero T
	align := uintptr(unsafe.Sizeof(zero)) * uintptr(lanesOf[N]())
	return uintptr(unsafe.Pointer(unsafe.SliceData(p)))%align == 0
}
