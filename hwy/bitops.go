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

// This file provides bit manipulation operations for integer vectors.

// PopCount counts the number of set bits (1s) in each lane.
func PopCount[T Integers, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpPopCount, v) }

// MaskedPopCount counts set bits where m is set and keeps v elsewhere.
func MaskedPopCount[T Integers, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, PopCount(v))
}

// shiftCount encodes a scalar shift count as a lane of T. Counts are clamped
// to [0, 127], which keeps them in range of every lane type.
func shiftCount[T Integers](n int) T {
	return LaneFromBits[T](uint64(max(0, min(n, 127))))
}

// ShiftLeft shifts every lane left by n bits. Shifting by the lane width or
// more yields zero.
func ShiftLeft[T Integers, N Count](v Vec[T, N], n int) Vec[T, N] {
	return binary(OpShiftLeft, v, Set[T, N](shiftCount[T](n)))
}

// ShiftRight shifts every lane right by n bits: arithmetic for signed lanes,
// logical for unsigned. Shifting by the lane width or more yields zero, or
// the sign fill for signed lanes.
func ShiftRight[T Integers, N Count](v Vec[T, N], n int) Vec[T, N] {
	return binary(OpShiftRight, v, Set[T, N](shiftCount[T](n)))
}

// MaskedShiftLeft shifts left by n where m is set and keeps v elsewhere.
func MaskedShiftLeft[T Integers, N Count](m Mask[N], v Vec[T, N], n int) Vec[T, N] {
	return masked(m, v, ShiftLeft(v, n))
}

// MaskedShiftRight shifts right by n where m is set and keeps v elsewhere.
func MaskedShiftRight[T Integers, N Count](m Mask[N], v Vec[T, N], n int) Vec[T, N] {
	return masked(m, v, ShiftRight(v, n))
}

// ShiftLeftVec shifts lane i of v left by counts[i]. Counts are read as
// unsigned, so a negative signed count shifts everything out.
func ShiftLeftVec[T Integers, N Count](v, counts Vec[T, N]) Vec[T, N] {
	return binary(OpShiftLeft, v, counts)
}

// ShiftRightVec shifts lane i of v right by counts[i]; see ShiftLeftVec.
func ShiftRightVec[T Integers, N Count](v, counts Vec[T, N]) Vec[T, N] {
	return binary(OpShiftRight, v, counts)
}

// MaskedShiftLeftVec shifts by counts where m is set and keeps v elsewhere.
func MaskedShiftLeftVec[T Integers, N Count](m Mask[N], v, counts Vec[T, N]) Vec[T, N] {
	return masked(m, v, ShiftLeftVec(v, counts))
}

// MaskedShiftRightVec shifts by counts where m is set and keeps v elsewhere.
func MaskedShiftRightVec[T Integers, N Count](m Mask[N], v, counts Vec[T, N]) Vec[T, N] {
	return masked(m, v, ShiftRightVec(v, counts))
}

// mapLanes applies f to every lane. It is the fallback for operations with
// no op code and therefore no backend kernel.
func mapLanes[T Lanes, N Count](v Vec[T, N], f func(T) T) Vec[T, N] {
	out := v.Lanes()
	for i, x := range out {
		out[i] = f(x)
	}
	return newVec[T, N](out)
}

// LeadingZeroCount counts the number of leading zero bits in each lane.
func LeadingZeroCount[T Integers, N Count](v Vec[T, N]) Vec[T, N] {
	_, w := kindOf[T]()
	return mapLanes(v, func(x T) T {
		return T(bits.LeadingZeros64(LaneBits(x)) - (64 - w))
	})
}

// TrailingZeroCount counts the number of trailing zero bits in each lane.
// A zero lane yields the lane width.
func TrailingZeroCount[T Integers, N Count](v Vec[T, N]) Vec[T, N] {
	_, w := kindOf[T]()
	return mapLanes(v, func(x T) T {
		return T(min(bits.TrailingZeros64(LaneBits(x)), w))
	})
}

// RotateRight rotates the bits in each lane to the right by the specified count.
func RotateRight[T Integers, N Count](v Vec[T, N], count int) Vec[T, N] {
	_, w := kindOf[T]()
	count = (count%w + w) % w
	return mapLanes(v, func(x T) T {
		u := LaneBits(x)
		return LaneFromBits[T](u>>count | u<<(w-count))
	})
}

// ReverseBits reverses the bit order in each lane.
func ReverseBits[T Integers, N Count](v Vec[T, N]) Vec[T, N] {
	_, w := kindOf[T]()
	return mapLanes(v, func(x T) T {
		return LaneFromBits[T](bits.Reverse64(LaneBits(x)) >> (64 - w))
	})
}

// HighestSetBitIndex returns the index of the highest set bit in each lane.
// This is equivalent to floor(log2(x)) for non-zero values. Zero lanes
// yield all bits set: -1 for signed types, the maximum for unsigned.
func HighestSetBitIndex[T Integers, N Count](v Vec[T, N]) Vec[T, N] {
	return mapLanes(v, func(x T) T {
		return LaneFromBits[T](uint64(bits.Len64(LaneBits(x)) - 1))
	})
}
