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

// Package hwy provides fixed-width vector registers with a single portable API.
//
// A Vec[T, N] is a vector of N lanes of scalar type T. The physical
// representation behind each vector is chosen from a trait table keyed by
// (T, N): a native register owned by a registered backend, a pair of
// half-width vectors, or the scalar emulation register. Every representation
// produces the same observable results, so kernels are written once:
//
//	import "github.com/ajroetker/hwyvec/hwy"
//
//	a := hwy.Load[float32, hwy.N8](x)
//	b := hwy.Load[float32, hwy.N8](y)
//	m := hwy.LessThan(a, b)
//	r := hwy.MaskedAdd(m, a, b)
//	hwy.Store(r, out)
//
// Backends are plugins (see Register and RegisterKernels); without one, every
// vector runs on the scalar emulation register.
package hwy

import (
	"math"
	"unsafe"
)

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is the closed set of scalar types that can be stored in a lane.
type Lanes interface {
	Floats | Integers
}

// Kind is the category of a lane type.
type Kind uint8

const (
	// Unsigned integer lanes.
	Unsigned Kind = iota
	// Signed integer lanes.
	Signed
	// Float lanes.
	Float
)

// String returns "unsigned", "signed" or "float".
func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

func (k Kind) prefix() byte {
	switch k {
	case Signed:
		return 'i'
	case Float:
		return 'f'
	default:
		return 'u'
	}
}

// kindOf returns the category and bit width of T.
func kindOf[T Lanes]() (Kind, int) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Unsigned, 8
	case uint16:
		return Unsigned, 16
	case uint32:
		return Unsigned, 32
	case uint64:
		return Unsigned, 64
	case int8:
		return Signed, 8
	case int16:
		return Signed, 16
	case int32:
		return Signed, 32
	case int64:
		return Signed, 64
	case float32:
		return Float, 32
	default:
		return Float, 64
	}
}

func isFloat[T Lanes]() bool {
	k, _ := kindOf[T]()
	return k == Float
}

// LaneBits returns the bit pattern of x, zero-extended to 64 bits.
//
// Together with LaneFromBits this is the public byte-layout contract used by
// reinterpreting casts: a lane of B bits occupies the low B bits of the word.
func LaneBits[T Lanes](x T) uint64 {
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

// LaneFromBits builds a lane of type T from the low bits of u.
// Bits above the lane width are discarded.
func LaneFromBits[T Lanes](u uint64) T {
	var x T
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(u)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(u)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(u)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = u
	}
	return x
}

// laneLimits returns the smallest and largest values of T.
// For floats these are -Inf and +Inf.
func laneLimits[T Lanes]() (lo, hi T) {
	k, bits := kindOf[T]()
	switch k {
	case Unsigned:
		return 0, LaneFromBits[T](math.MaxUint64)
	case Signed:
		return LaneFromBits[T](1 << (bits - 1)), LaneFromBits[T](1<<(bits-1) - 1)
	}
	if bits == 32 {
		return LaneFromBits[T](uint64(math.Float32bits(float32(math.Inf(-1))))),
			LaneFromBits[T](uint64(math.Float32bits(float32(math.Inf(1)))))
	}
	return LaneFromBits[T](math.Float64bits(math.Inf(-1))), LaneFromBits[T](math.Float64bits(math.Inf(1)))
}

// floatToInt converts f to the integer lane type T: truncation toward zero,
// NaN becomes zero and out-of-range values saturate to the bounds of T.
func floatToInt[T Lanes](f float64) T {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	k, bits := kindOf[T]()
	lo, hi := laneLimits[T]()
	if k == Signed {
		if f < -math.Ldexp(1, bits-1) {
			return lo
		}
		if f >= math.Ldexp(1, bits-1) {
			return hi
		}
		return LaneFromBits[T](uint64(int64(f)))
	}
	if f <= 0 {
		return 0
	}
	if f >= math.Ldexp(1, bits) {
		return hi
	}
	return LaneFromBits[T](uint64(f))
}
