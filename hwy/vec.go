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
	"fmt"
	"strings"
)

// Vec is a vector of N lanes of type T.
//
// A Vec is a value: assigning or passing it copies the vector, and no
// operation on one copy is visible through another. The zero Vec has every
// lane zero.
type Vec[T Lanes, N Count] struct {
	r register[T]
}

// newVec builds a vector in the representation the trait table selects for
// (T, N). The vector takes ownership of data, which must hold N lanes.
func newVec[T Lanes, N Count](data []T) Vec[T, N] {
	return Vec[T, N]{r: buildRegister(entryOf[T, N](), data)}
}

func wrap[T Lanes, N Count](r register[T]) Vec[T, N] {
	return Vec[T, N]{r: r}
}

func (v Vec[T, N]) reg() register[T] {
	if v.r == nil {
		return buildRegister(entryOf[T, N](), make([]T, lanesOf[N]()))
	}
	return v.r
}

// NumLanes returns N.
func (v Vec[T, N]) NumLanes() int { return lanesOf[N]() }

// Extract returns lane i. It panics if i is out of range.
func (v Vec[T, N]) Extract(i int) T {
	checkLane(i, lanesOf[N]())
	if v.r == nil {
		return 0
	}
	return v.r.extract(i)
}

// Insert sets lane i to x in place. It panics if i is out of range.
// Other copies of v are not affected.
func (v *Vec[T, N]) Insert(i int, x T) {
	checkLane(i, lanesOf[N]())
	v.r = v.reg().with(i, x)
}

// With returns a copy of v with lane i set to x.
func (v Vec[T, N]) With(i int, x T) Vec[T, N] {
	v.Insert(i, x)
	return v
}

// Lanes returns a copy of the lanes of v.
func (v Vec[T, N]) Lanes() []T {
	return lanesOfRegister(v.reg())
}

// Store writes the N lanes of v to dst. It panics if len(dst) < N.
func (v Vec[T, N]) Store(dst []T) {
	Store(v, dst)
}

// Trait returns the trait record of v's type under the active backend.
func (v Vec[T, N]) Trait() Trait { return TraitsOf[T, N]() }

// Repr reports how v itself is stored. It can differ from Trait().Repr for
// vectors built before the active backend changed.
func (v Vec[T, N]) Repr() Representation { return v.reg().repr() }

// IsAccelerated reports whether every part of v is held by backend
// registers whose kernels cover the arithmetic core, as Trait.Accelerated.
func (v Vec[T, N]) IsAccelerated() bool { return accelerated(v.reg()) }

func accelerated[T Lanes](r register[T]) bool {
	switch r := r.(type) {
	case native[T]:
		return r.k.coversCore()
	case decomposed[T]:
		return accelerated(r.lo) && accelerated(r.hi)
	}
	return false
}

// String formats the lanes of v, e.g. "[1 2 3 4]".
func (v Vec[T, N]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.Lanes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes, N Count](value T) Vec[T, N] {
	data := make([]T, lanesOf[N]())
	for i := range data {
		data[i] = value
	}
	return newVec[T, N](data)
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes, N Count]() Vec[T, N] {
	return newVec[T, N](make([]T, lanesOf[N]()))
}

// Iota creates a vector with lanes set to 0, 1, 2, ...
// Integer lanes wrap when N exceeds the range of T.
func Iota[T Lanes, N Count]() Vec[T, N] {
	data := make([]T, lanesOf[N]())
	for i := range data {
		data[i] = T(i)
	}
	return newVec[T, N](data)
}

// Const creates a vector with all lanes set to the given float64 constant
// converted to T. This allows writing generic code without T(constant)
// conversions.
func Const[T Lanes, N Count](val float64) Vec[T, N] {
	if isFloat[T]() {
		return Set[T, N](T(val))
	}
	return Set[T, N](floatToInt[T](val))
}

// FromArray1 builds a vector from a 1-lane array.
func FromArray1[T Lanes](a [1]T) Vec[T, N1] { return Load[T, N1](a[:]) }

// FromArray2 builds a vector from a 2-lane array.
func FromArray2[T Lanes](a [2]T) Vec[T, N2] { return Load[T, N2](a[:]) }

// FromArray4 builds a vector from a 4-lane array.
func FromArray4[T Lanes](a [4]T) Vec[T, N4] { return Load[T, N4](a[:]) }

// FromArray8 builds a vector from an 8-lane array.
func FromArray8[T Lanes](a [8]T) Vec[T, N8] { return Load[T, N8](a[:]) }

// FromArray16 builds a vector from a 16-lane array.
func FromArray16[T Lanes](a [16]T) Vec[T, N16] { return Load[T, N16](a[:]) }

// FromArray32 builds a vector from a 32-lane array.
func FromArray32[T Lanes](a [32]T) Vec[T, N32] { return Load[T, N32](a[:]) }

// FromArray64 builds a vector from a 64-lane array.
func FromArray64[T Lanes](a [64]T) Vec[T, N64] { return Load[T, N64](a[:]) }
