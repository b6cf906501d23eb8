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

import "math/bits"

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// SaturatedAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4)
func SaturatedAdd[T Integers, N Count](a, b Vec[T, N]) Vec[T, N] {
	return binary(OpSaturatedAdd, a, b)
}

// MaskedSaturatedAdd adds with saturation where m is set and keeps a elsewhere.
func MaskedSaturatedAdd[T Integers, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, SaturatedAdd(a, b))
}

// SaturatedAddScalar adds s to every lane with saturation.
func SaturatedAddScalar[T Integers, N Count](a Vec[T, N], s T) Vec[T, N] {
	return SaturatedAdd(a, Set[T, N](s))
}

// MaskedSaturatedAddScalar adds s with saturation where m is set and keeps
// a elsewhere.
func MaskedSaturatedAddScalar[T Integers, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedSaturatedAdd(m, a, Set[T, N](s))
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T Integers, N Count](a, b Vec[T, N]) Vec[T, N] {
	return binary(OpSaturatedSub, a, b)
}

// MaskedSaturatedSub subtracts with saturation where m is set and keeps a
// elsewhere.
func MaskedSaturatedSub[T Integers, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, SaturatedSub(a, b))
}

// SaturatedSubScalar subtracts s from every lane with saturation.
func SaturatedSubScalar[T Integers, N Count](a Vec[T, N], s T) Vec[T, N] {
	return SaturatedSub(a, Set[T, N](s))
}

// MaskedSaturatedSubScalar subtracts s with saturation where m is set and
// keeps a elsewhere.
func MaskedSaturatedSubScalar[T Integers, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedSaturatedSub(m, a, Set[T, N](s))
}

// AbsDiff computes the absolute difference |a - b| for each element.
// For unsigned types, this is max(a,b) - min(a,b). Signed results that do
// not fit the lane wrap.
func AbsDiff[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] {
	return binary(OpAbsDiff, a, b)
}

// MaskedAbsDiff computes |a - b| where m is set and keeps a elsewhere.
func MaskedAbsDiff[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, AbsDiff(a, b))
}

// AbsDiffScalar computes |a[i] - s|.
func AbsDiffScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] {
	return AbsDiff(a, Set[T, N](s))
}

// MaskedAbsDiffScalar computes |a[i] - s| where m is set and keeps a
// elsewhere.
func MaskedAbsDiffScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedAbsDiff(m, a, Set[T, N](s))
}

// Clamp clamps each element to the range [lo, hi].
// Elements less than lo become lo, elements greater than hi become hi.
func Clamp[T Lanes, N Count](v, lo, hi Vec[T, N]) Vec[T, N] {
	return Min(Max(v, lo), hi)
}

// Avg computes the rounded average (a + b + 1) / 2 for each element
// without intermediate overflow.
func Avg[T UnsignedInts, N Count](a, b Vec[T, N]) Vec[T, N] {
	// (a >> 1) + (b >> 1) + ((a | b) & 1)
	one := Set[T, N](1)
	half := Add(ShiftRight(a, 1), ShiftRight(b, 1))
	return Add(half, And(Or(a, b), one))
}

// MulHigh returns the high bits of the widening multiplication a * b.
// For n-bit integers, multiplying produces 2n bits; this returns the upper n bits.
func MulHigh[T Integers, N Count](a, b Vec[T, N]) Vec[T, N] {
	ra, rb := a.reg(), b.reg()
	out := make([]T, lanesOf[N]())
	for i := range out {
		out[i] = mulHigh(ra.extract(i), rb.extract(i))
	}
	return newVec[T, N](out)
}

func mulHigh[T Integers](a, b T) T {
	k, w := kindOf[T]()
	if w < 64 {
		if k == Signed {
			return T(int64(a) * int64(b) >> w)
		}
		return T(uint64(a) * uint64(b) >> w)
	}
	hi, _ := bits.Mul64(LaneBits(a), LaneBits(b))
	if k == Signed {
		// Two's complement correction of the unsigned high word.
		if a < 0 {
			hi -= LaneBits(b)
		}
		if b < 0 {
			hi -= LaneBits(a)
		}
	}
	return LaneFromBits[T](hi)
}
