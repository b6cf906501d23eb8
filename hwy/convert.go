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

// This file provides same-width lane conversions. Value casts convert each
// lane numerically: integer to integer keeps the bit pattern (wrapping),
// integer to float rounds to nearest, and float to integer truncates toward
// zero, maps NaN to 0 and saturates out-of-range values to the bounds of
// the target type. Bit casts reinterpret the lane bits through LaneBits and
// LaneFromBits.

func convertLanes[To, From Lanes, N Count](v Vec[From, N], f func(From) To) Vec[To, N] {
	r := v.reg()
	out := make([]To, lanesOf[N]())
	for i := range out {
		out[i] = f(r.extract(i))
	}
	return newVec[To, N](out)
}

func castInt[To, From Integers, N Count](v Vec[From, N]) Vec[To, N] {
	return convertLanes(v, func(x From) To { return To(x) })
}

func intToFloat[To Floats, From Integers, N Count](v Vec[From, N]) Vec[To, N] {
	return convertLanes(v, func(x From) To { return To(x) })
}

func floatToIntLanes[To Integers, From Floats, N Count](v Vec[From, N]) Vec[To, N] {
	return convertLanes(v, func(x From) To { return floatToInt[To](float64(x)) })
}

func reinterpret[To, From Lanes, N Count](v Vec[From, N]) Vec[To, N] {
	return convertLanes(v, func(x From) To { return LaneFromBits[To](LaneBits(x)) })
}

// UToI8 converts uint8 lanes to int8, wrapping values above 127.
func UToI8[N Count](v Vec[uint8, N]) Vec[int8, N] { return castInt[int8](v) }

// UToI16 converts uint16 lanes to int16, wrapping.
func UToI16[N Count](v Vec[uint16, N]) Vec[int16, N] { return castInt[int16](v) }

// UToI32 converts uint32 lanes to int32, wrapping.
func UToI32[N Count](v Vec[uint32, N]) Vec[int32, N] { return castInt[int32](v) }

// UToI64 converts uint64 lanes to int64, wrapping.
func UToI64[N Count](v Vec[uint64, N]) Vec[int64, N] { return castInt[int64](v) }

// IToU8 converts int8 lanes to uint8, wrapping negative values.
func IToU8[N Count](v Vec[int8, N]) Vec[uint8, N] { return castInt[uint8](v) }

// IToU16 converts int16 lanes to uint16, wrapping.
func IToU16[N Count](v Vec[int16, N]) Vec[uint16, N] { return castInt[uint16](v) }

// IToU32 converts int32 lanes to uint32, wrapping.
func IToU32[N Count](v Vec[int32, N]) Vec[uint32, N] { return castInt[uint32](v) }

// IToU64 converts int64 lanes to uint64, wrapping.
func IToU64[N Count](v Vec[int64, N]) Vec[uint64, N] { return castInt[uint64](v) }

// UToF32 converts uint32 lanes to float32, rounding to nearest.
func UToF32[N Count](v Vec[uint32, N]) Vec[float32, N] { return intToFloat[float32](v) }

// UToF64 converts uint64 lanes to float64, rounding to nearest.
func UToF64[N Count](v Vec[uint64, N]) Vec[float64, N] { return intToFloat[float64](v) }

// IToF32 converts int32 lanes to float32, rounding to nearest.
func IToF32[N Count](v Vec[int32, N]) Vec[float32, N] { return intToFloat[float32](v) }

// IToF64 converts int64 lanes to float64, rounding to nearest.
func IToF64[N Count](v Vec[int64, N]) Vec[float64, N] { return intToFloat[float64](v) }

// FToU32 converts float32 lanes to uint32: truncation toward zero, NaN and
// negative values become 0, values above the range become MaxUint32.
func FToU32[N Count](v Vec[float32, N]) Vec[uint32, N] { return floatToIntLanes[uint32](v) }

// FToU64 converts float64 lanes to uint64 with the rules of FToU32.
func FToU64[N Count](v Vec[float64, N]) Vec[uint64, N] { return floatToIntLanes[uint64](v) }

// FToI32 converts float32 lanes to int32: truncation toward zero, NaN
// becomes 0 and out-of-range values saturate to MinInt32 or MaxInt32.
func FToI32[N Count](v Vec[float32, N]) Vec[int32, N] { return floatToIntLanes[int32](v) }

// FToI64 converts float64 lanes to int64 with the rules of FToI32.
func FToI64[N Count](v Vec[float64, N]) Vec[int64, N] { return floatToIntLanes[int64](v) }

// BitCastU8ToI8 reinterprets uint8 lanes as int8.
func BitCastU8ToI8[N Count](v Vec[uint8, N]) Vec[int8, N] { return reinterpret[int8](v) }

// BitCastI8ToU8 reinterprets int8 lanes as uint8.
func BitCastI8ToU8[N Count](v Vec[int8, N]) Vec[uint8, N] { return reinterpret[uint8](v) }

// BitCastU16ToI16 reinterprets uint16 lanes as int16.
func BitCastU16ToI16[N Count](v Vec[uint16, N]) Vec[int16, N] { return reinterpret[int16](v) }

// BitCastI16ToU16 reinterprets int16 lanes as uint16.
func BitCastI16ToU16[N Count](v Vec[int16, N]) Vec[uint16, N] { return reinterpret[uint16](v) }

// BitCastU32ToI32 reinterprets uint32 lanes as int32.
func BitCastU32ToI32[N Count](v Vec[uint32, N]) Vec[int32, N] { return reinterpret[int32](v) }

// BitCastI32ToU32 reinterprets int32 lanes as uint32.
func BitCastI32ToU32[N Count](v Vec[int32, N]) Vec[uint32, N] { return reinterpret[uint32](v) }

// BitCastU64ToI64 reinterprets uint64 lanes as int64.
func BitCastU64ToI64[N Count](v Vec[uint64, N]) Vec[int64, N] { return reinterpret[int64](v) }

// BitCastI64ToU64 reinterprets int64 lanes as uint64.
func BitCastI64ToU64[N Count](v Vec[int64, N]) Vec[uint64, N] { return reinterpret[uint64](v) }

// BitCastF32ToI32 reinterprets float32 bits as int32.
func BitCastF32ToI32[N Count](v Vec[float32, N]) Vec[int32, N] { return reinterpret[int32](v) }

// BitCastI32ToF32 reinterprets int32 bits as float32.
func BitCastI32ToF32[N Count](v Vec[int32, N]) Vec[float32, N] { return reinterpret[float32](v) }

// BitCastF32ToU32 reinterprets float32 bits as uint32.
func BitCastF32ToU32[N Count](v Vec[float32, N]) Vec[uint32, N] { return reinterpret[uint32](v) }

// BitCastU32ToF32 reinterprets uint32 bits as float32.
func BitCastU32ToF32[N Count](v Vec[uint32, N]) Vec[float32, N] { return reinterpret[float32](v) }

// BitCastF64ToI64 reinterprets float64 bits as int64.
func BitCastF64ToI64[N Count](v Vec[float64, N]) Vec[int64, N] { return reinterpret[int64](v) }

// BitCastI64ToF64 reinterprets int64 bits as float64.
func BitCastI64ToF64[N Count](v Vec[int64, N]) Vec[float64, N] { return reinterpret[float64](v) }

// BitCastF64ToU64 reinterprets float64 bits as uint64.
func BitCastF64ToU64[N Count](v Vec[float64, N]) Vec[uint64, N] { return reinterpret[uint64](v) }

// BitCastU64ToF64 reinterprets uint64 bits as float64.
func BitCastU64ToF64[N Count](v Vec[uint64, N]) Vec[float64, N] { return reinterpret[float64](v) }

// Round rounds each lane to the nearest integer, ties to even.
func Round[T Floats, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpRound, v) }

// Trunc truncates each lane toward zero.
func Trunc[T Floats, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpTrunc, v) }

// Ceil rounds each lane up.
func Ceil[T Floats, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpCeil, v) }

// Floor rounds each lane down.
func Floor[T Floats, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpFloor, v) }

// MaskedRound rounds where m is set and keeps v elsewhere.
func MaskedRound[T Floats, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Round(v))
}

// MaskedTrunc truncates where m is set and keeps v elsewhere.
func MaskedTrunc[T Floats, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Trunc(v))
}

// MaskedCeil rounds up where m is set and keeps v elsewhere.
func MaskedCeil[T Floats, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Ceil(v))
}

// MaskedFloor rounds down where m is set and keeps v elsewhere.
func MaskedFloor[T Floats, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Floor(v))
}
