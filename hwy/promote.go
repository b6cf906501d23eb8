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

// This file provides type promotion and demotion operations.
//
// Promote operations widen lanes (e.g., float32 -> float64, int16 -> int32)
// keeping the lane count: integers are zero- or sign-extended and floats
// widen exactly. Demote operations narrow lanes: integers saturate to the
// narrow range and float64 rounds to the nearest float32. Truncate
// operations narrow integers by keeping the low bits.
//
// Go generics don't support type relationships like "T is narrower than U",
// so we provide concrete type-specific functions. The Lower and Upper
// variants promote one half of a vector; the DemoteTwo variants demote two
// half-width vectors into one full vector.

func valueCast[To, From Lanes, N Count](v Vec[From, N]) Vec[To, N] {
	return convertLanes(v, func(x From) To { return To(x) })
}

func saturate[To, From Integers, N Count](v Vec[From, N]) Vec[To, N] {
	lo, hi := laneLimits[To]()
	flo, fhi := From(lo), From(hi)
	return convertLanes(v, func(x From) To { return To(min(max(x, flo), fhi)) })
}

// PromoteU8ToU16 widens uint8 to uint16 (zero-extended).
func PromoteU8ToU16[N Count](v Vec[uint8, N]) Vec[uint16, N] { return valueCast[uint16](v) }

// PromoteU16ToU32 widens uint16 to uint32 (zero-extended).
func PromoteU16ToU32[N Count](v Vec[uint16, N]) Vec[uint32, N] { return valueCast[uint32](v) }

// PromoteU32ToU64 widens uint32 to uint64 (zero-extended).
func PromoteU32ToU64[N Count](v Vec[uint32, N]) Vec[uint64, N] { return valueCast[uint64](v) }

// PromoteI8ToI16 widens int8 to int16 (sign-extended).
func PromoteI8ToI16[N Count](v Vec[int8, N]) Vec[int16, N] { return valueCast[int16](v) }

// PromoteI16ToI32 widens int16 to int32 (sign-extended).
func PromoteI16ToI32[N Count](v Vec[int16, N]) Vec[int32, N] { return valueCast[int32](v) }

// PromoteI32ToI64 widens int32 to int64 (sign-extended).
func PromoteI32ToI64[N Count](v Vec[int32, N]) Vec[int64, N] { return valueCast[int64](v) }

// PromoteF32ToF64 widens float32 to float64.
func PromoteF32ToF64[N Count](v Vec[float32, N]) Vec[float64, N] { return valueCast[float64](v) }

// PromoteLowerU8ToU16 widens the lower half of v:
//
//	w := hwy.PromoteLowerU8ToU16[hwy.N8](v) // v is Vec[uint8, N16]
func PromoteLowerU8ToU16[H Count, N Doubled[H]](v Vec[uint8, N]) Vec[uint16, H] {
	return PromoteU8ToU16(UnpackLo[H](v))
}

// PromoteUpperU8ToU16 widens the upper half of v.
func PromoteUpperU8ToU16[H Count, N Doubled[H]](v Vec[uint8, N]) Vec[uint16, H] {
	return PromoteU8ToU16(UnpackHi[H](v))
}

// PromoteLowerU16ToU32 widens the lower half of v.
func PromoteLowerU16ToU32[H Count, N Doubled[H]](v Vec[uint16, N]) Vec[uint32, H] {
	return PromoteU16ToU32(UnpackLo[H](v))
}

// PromoteUpperU16ToU32 widens the upper half of v.
func PromoteUpperU16ToU32[H Count, N Doubled[H]](v Vec[uint16, N]) Vec[uint32, H] {
	return PromoteU16ToU32(UnpackHi[H](v))
}

// PromoteLowerU32ToU64 widens the lower half of v.
func PromoteLowerU32ToU64[H Count, N Doubled[H]](v Vec[uint32, N]) Vec[uint64, H] {
	return PromoteU32ToU64(UnpackLo[H](v))
}

// PromoteUpperU32ToU64 widens the upper half of v.
func PromoteUpperU32ToU64[H Count, N Doubled[H]](v Vec[uint32, N]) Vec[uint64, H] {
	return PromoteU32ToU64(UnpackHi[H](v))
}

// PromoteLowerI8ToI16 widens the lower half of v.
func PromoteLowerI8ToI16[H Count, N Doubled[H]](v Vec[int8, N]) Vec[int16, H] {
	return PromoteI8ToI16(UnpackLo[H](v))
}

// PromoteUpperI8ToI16 widens the upper half of v.
func PromoteUpperI8ToI16[H Count, N Doubled[H]](v Vec[int8, N]) Vec[int16, H] {
	return PromoteI8ToI16(UnpackHi[H](v))
}

// PromoteLowerI32ToI64 widens the lower half of v.
func PromoteLowerI32ToI64[H Count, N Doubled[H]](v Vec[int32, N]) Vec[int64, H] {
	return PromoteI32ToI64(UnpackLo[H](v))
}

// PromoteUpperI32ToI64 widens the upper half of v.
func PromoteUpperI32ToI64[H Count, N Doubled[H]](v Vec[int32, N]) Vec[int64, H] {
	return PromoteI32ToI64(UnpackHi[H](v))
}

// PromoteLowerI16ToI32 widens the lower half of v.
func PromoteLowerI16ToI32[H Count, N Doubled[H]](v Vec[int16, N]) Vec[int32, H] {
	return PromoteI16ToI32(UnpackLo[H](v))
}

// PromoteUpperI16ToI32 widens the upper half of v.
func PromoteUpperI16ToI32[H Count, N Doubled[H]](v Vec[int16, N]) Vec[int32, H] {
	return PromoteI16ToI32(UnpackHi[H](v))
}

// PromoteLowerF32ToF64 widens the lower half of v.
func PromoteLowerF32ToF64[H Count, N Doubled[H]](v Vec[float32, N]) Vec[float64, H] {
	return PromoteF32ToF64(UnpackLo[H](v))
}

// PromoteUpperF32ToF64 widens the upper half of v.
func PromoteUpperF32ToF64[H Count, N Doubled[H]](v Vec[float32, N]) Vec[float64, H] {
	return PromoteF32ToF64(UnpackHi[H](v))
}

// DemoteU16ToU8 narrows uint16 to uint8, saturating at 255.
func DemoteU16ToU8[N Count](v Vec[uint16, N]) Vec[uint8, N] { return saturate[uint8](v) }

// DemoteU32ToU16 narrows uint32 to uint16, saturating.
func DemoteU32ToU16[N Count](v Vec[uint32, N]) Vec[uint16, N] { return saturate[uint16](v) }

// DemoteU64ToU32 narrows uint64 to uint32, saturating.
func DemoteU64ToU32[N Count](v Vec[uint64, N]) Vec[uint32, N] { return saturate[uint32](v) }

// DemoteI16ToI8 narrows int16 to int8, saturating to [-128, 127].
func DemoteI16ToI8[N Count](v Vec[int16, N]) Vec[int8, N] { return saturate[int8](v) }

// DemoteI32ToI16 narrows int32 to int16, saturating.
func DemoteI32ToI16[N Count](v Vec[int32, N]) Vec[int16, N] { return saturate[int16](v) }

// DemoteI64ToI32 narrows int64 to int32, saturating.
func DemoteI64ToI32[N Count](v Vec[int64, N]) Vec[int32, N] { return saturate[int32](v) }

// DemoteF64ToF32 narrows float64 to float32, rounding to nearest. Values
// beyond the float32 range become infinities.
func DemoteF64ToF32[N Count](v Vec[float64, N]) Vec[float32, N] { return valueCast[float32](v) }

// DemoteTwoI16ToI8 demotes two int16 vectors into one int8 vector, lo in
// the low lanes:
//
//	b := hwy.DemoteTwoI16ToI8[hwy.N16](lo, hi) // lo, hi are Vec[int16, N8]
func DemoteTwoI16ToI8[N Doubled[H], H Count](lo, hi Vec[int16, H]) Vec[int8, N] {
	return Pack[N](DemoteI16ToI8(lo), DemoteI16ToI8(hi))
}

// DemoteTwoU16ToU8 demotes two uint16 vectors into one uint8 vector.
func DemoteTwoU16ToU8[N Doubled[H], H Count](lo, hi Vec[uint16, H]) Vec[uint8, N] {
	return Pack[N](DemoteU16ToU8(lo), DemoteU16ToU8(hi))
}

// DemoteTwoI32ToI16 demotes two int32 vectors into one int16 vector.
func DemoteTwoI32ToI16[N Doubled[H], H Count](lo, hi Vec[int32, H]) Vec[int16, N] {
	return Pack[N](DemoteI32ToI16(lo), DemoteI32ToI16(hi))
}

// DemoteTwoU32ToU16 demotes two uint32 vectors into one uint16 vector.
func DemoteTwoU32ToU16[N Doubled[H], H Count](lo, hi Vec[uint32, H]) Vec[uint16, N] {
	return Pack[N](DemoteU32ToU16(lo), DemoteU32ToU16(hi))
}

// DemoteTwoU64ToU32 demotes two uint64 vectors into one uint32 vector.
func DemoteTwoU64ToU32[N Doubled[H], H Count](lo, hi Vec[uint64, H]) Vec[uint32, N] {
	return Pack[N](DemoteU64ToU32(lo), DemoteU64ToU32(hi))
}

// DemoteTwoI64ToI32 demotes two int64 vectors into one int32 vector.
func DemoteTwoI64ToI32[N Doubled[H], H Count](lo, hi Vec[int64, H]) Vec[int32, N] {
	return Pack[N](DemoteI64ToI32(lo), DemoteI64ToI32(hi))
}

// DemoteTwoF64ToF32 demotes two float64 vectors into one float32 vector.
func DemoteTwoF64ToF32[N Doubled[H], H Count](lo, hi Vec[float64, H]) Vec[float32, N] {
	return Pack[N](DemoteF64ToF32(lo), DemoteF64ToF32(hi))
}

// TruncateU16ToU8 keeps the low 8 bits of each uint16 lane.
func TruncateU16ToU8[N Count](v Vec[uint16, N]) Vec[uint8, N] { return castInt[uint8](v) }

// TruncateU32ToU16 keeps the low 16 bits of each uint32 lane.
func TruncateU32ToU16[N Count](v Vec[uint32, N]) Vec[uint16, N] { return castInt[uint16](v) }

// TruncateU64ToU32 keeps the low 32 bits of each uint64 lane.
func TruncateU64ToU32[N Count](v Vec[uint64, N]) Vec[uint32, N] { return castInt[uint32](v) }

// TruncateI16ToI8 keeps the low 8 bits of each int16 lane.
func TruncateI16ToI8[N Count](v Vec[int16, N]) Vec[int8, N] { return castInt[int8](v) }

// TruncateI32ToI16 keeps the low 16 bits of each int32 lane.
func TruncateI32ToI16[N Count](v Vec[int32, N]) Vec[int16, N] { return castInt[int16](v) }

// TruncateI64ToI32 keeps the low 32 bits of each int64 lane.
func TruncateI64ToI32[N Count](v Vec[int64, N]) Vec[int32, N] { return castInt[int32](v) }
