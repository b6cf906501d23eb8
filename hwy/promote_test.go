package hwy

import (
	"math"
	"testing"
)

func TestPromote(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		expectLanes(t, "PromoteU8ToU16", PromoteU8ToU16(FromArray4([4]uint8{0, 1, 128, 255})), []uint16{0, 1, 128, 255})
		expectLanes(t, "PromoteU16ToU32", PromoteU16ToU32(FromArray2([2]uint16{0xFFFF, 7})), []uint32{0xFFFF, 7})
		expectLanes(t, "PromoteU32ToU64", PromoteU32ToU64(FromArray2([2]uint32{math.MaxUint32, 0})), []uint64{math.MaxUint32, 0})
		expectLanes(t, "PromoteI8ToI16", PromoteI8ToI16(FromArray4([4]int8{-128, -1, 0, 127})), []int16{-128, -1, 0, 127})
		expectLanes(t, "PromoteI16ToI32", PromoteI16ToI32(FromArray2([2]int16{math.MinInt16, 5})), []int32{math.MinInt16, 5})
		expectLanes(t, "PromoteI32ToI64", PromoteI32ToI64(FromArray2([2]int32{math.MinInt32, -7})), []int64{math.MinInt32, -7})
		expectLanes(t, "PromoteF32ToF64", PromoteF32ToF64(FromArray4([4]float32{1.5, -inf32, nan32, 0.1})),
			[]float64{1.5, -inf64, nan64, float64(float32(0.1))})
	})
}

func TestPromoteHalves(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		u := Iota[uint8, N16]()
		u = u.With(15, 255)
		expectLanes(t, "PromoteLowerU8ToU16", PromoteLowerU8ToU16[N8](u), []uint16{0, 1, 2, 3, 4, 5, 6, 7})
		expectLanes(t, "PromoteUpperU8ToU16", PromoteUpperU8ToU16[N8](u), []uint16{8, 9, 10, 11, 12, 13, 14, 255})

		i := FromArray8([8]int16{-1, -2, -3, -4, 100, 200, 300, math.MinInt16})
		expectLanes(t, "PromoteLowerI16ToI32", PromoteLowerI16ToI32[N4](i), []int32{-1, -2, -3, -4})
		expectLanes(t, "PromoteUpperI16ToI32", PromoteUpperI16ToI32[N4](i), []int32{100, 200, 300, math.MinInt16})

		s8 := FromArray8([8]int8{-128, -1, 0, 1, 2, 3, 127, -5})
		expectLanes(t, "PromoteLowerI8ToI16", PromoteLowerI8ToI16[N4](s8), []int16{-128, -1, 0, 1})
		expectLanes(t, "PromoteUpperI8ToI16", PromoteUpperI8ToI16[N4](s8), []int16{2, 3, 127, -5})

		u16 := FromArray4([4]uint16{1, 0xFFFF, 0x8000, 3})
		expectLanes(t, "PromoteLowerU16ToU32", PromoteLowerU16ToU32[N2](u16), []uint32{1, 0xFFFF})
		expectLanes(t, "PromoteUpperU16ToU32", PromoteUpperU16ToU32[N2](u16), []uint32{0x8000, 3})

		u32 := FromArray4([4]uint32{math.MaxUint32, 2, 1 << 31, 4})
		expectLanes(t, "PromoteLowerU32ToU64", PromoteLowerU32ToU64[N2](u32), []uint64{math.MaxUint32, 2})
		expectLanes(t, "PromoteUpperU32ToU64", PromoteUpperU32ToU64[N2](u32), []uint64{1 << 31, 4})

		i32 := FromArray8([8]int32{1, 2, 3, 4, math.MinInt32, -1, math.MaxInt32, 0})
		expectLanes(t, "PromoteLowerI32ToI64", PromoteLowerI32ToI64[N4](i32), []int64{1, 2, 3, 4})
		expectLanes(t, "PromoteUpperI32ToI64", PromoteUpperI32ToI64[N4](i32), []int64{math.MinInt32, -1, math.MaxInt32, 0})

		f := FromArray8([8]float32{1, 2, 3, 4, 5, 6, 7, 8})
		expectLanes(t, "PromoteLowerF32ToF64", PromoteLowerF32ToF64[N4](f), []float64{1, 2, 3, 4})
		expectLanes(t, "PromoteUpperF32ToF64", PromoteUpperF32ToF64[N4](f), []float64{5, 6, 7, 8})
	})
}

func TestDemoteSaturates(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		expectLanes(t, "DemoteI16ToI8", DemoteI16ToI8(FromArray4([4]int16{-200, -128, 127, 1000})), []int8{-128, -128, 127, 127})
		expectLanes(t, "DemoteI32ToI16", DemoteI32ToI16(FromArray4([4]int32{-40000, -5, 5, 40000})), []int16{math.MinInt16, -5, 5, math.MaxInt16})
		expectLanes(t, "DemoteI64ToI32", DemoteI64ToI32(FromArray2([2]int64{math.MinInt64, 1 << 40})), []int32{math.MinInt32, math.MaxInt32})
		expectLanes(t, "DemoteU16ToU8", DemoteU16ToU8(FromArray4([4]uint16{0, 255, 256, 0xFFFF})), []uint8{0, 255, 255, 255})
		expectLanes(t, "DemoteU32ToU16", DemoteU32ToU16(FromArray2([2]uint32{70000, 3})), []uint16{math.MaxUint16, 3})
		expectLanes(t, "DemoteU64ToU32", DemoteU64ToU32(FromArray2([2]uint64{math.MaxUint64, 9})), []uint32{math.MaxUint32, 9})
	})
}

func TestDemoteF64ToF32(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		d := FromArray4([4]float64{0.1, 1e300, -1e300, nan64})
		expectLanes(t, "DemoteF64ToF32", DemoteF64ToF32(d), []float32{0.1, inf32, -inf32, nan32})

		f := FromArray4([4]float32{1.25, -3, 1e-20, 65504})
		expectLanes(t, "Demote(Promote)", DemoteF64ToF32(PromoteF32ToF64(f)), f.Lanes())
	})
}

func TestDemoteTwo(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		lo := FromArray4([4]int32{1, -70000, 3, 4})
		hi := FromArray4([4]int32{5, 6, 70000, 8})
		expectLanes(t, "DemoteTwoI32ToI16", DemoteTwoI32ToI16[N8](lo, hi),
			[]int16{1, math.MinInt16, 3, 4, 5, 6, math.MaxInt16, 8})

		a := Set[int16, N8](-300)
		b := Iota[int16, N8]()
		got := DemoteTwoI16ToI8[N16](a, b)
		if got.Extract(0) != -128 || got.Extract(15) != 7 {
			t.Errorf("DemoteTwoI16ToI8: got %v", got)
		}

		u := DemoteTwoU16ToU8[N16](Set[uint16, N8](1000), Set[uint16, N8](1))
		if u.Extract(7) != 255 || u.Extract(8) != 1 {
			t.Errorf("DemoteTwoU16ToU8: got %v", u)
		}

		expectLanes(t, "DemoteTwoU32ToU16",
			DemoteTwoU32ToU16[N4](FromArray2([2]uint32{70000, 65535}), FromArray2([2]uint32{0, math.MaxUint32})),
			[]uint16{math.MaxUint16, math.MaxUint16, 0, math.MaxUint16})
		expectLanes(t, "DemoteTwoU64ToU32",
			DemoteTwoU64ToU32[N4](FromArray2([2]uint64{1 << 32, 5}), FromArray2([2]uint64{math.MaxUint32, math.MaxUint64})),
			[]uint32{math.MaxUint32, 5, math.MaxUint32, math.MaxUint32})
		expectLanes(t, "DemoteTwoI64ToI32",
			DemoteTwoI64ToI32[N4](FromArray2([2]int64{math.MinInt64, -1 << 31}), FromArray2([2]int64{1 << 31, -7})),
			[]int32{math.MinInt32, math.MinInt32, math.MaxInt32, -7})

		f := DemoteTwoF64ToF32[N8](Set[float64, N4](0.5), Set[float64, N4](-0.25))
		expectLanes(t, "DemoteTwoF64ToF32", f, []float32{0.5, 0.5, 0.5, 0.5, -0.25, -0.25, -0.25, -0.25})
	})
}

func TestTruncate(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		expectLanes(t, "TruncateI16ToI8", TruncateI16ToI8(FromArray4([4]int16{0x1234, -1, 128, 256})), []int8{0x34, -1, -128, 0})
		expectLanes(t, "TruncateI32ToI16", TruncateI32ToI16(FromArray2([2]int32{0x12345678, -2})), []int16{0x5678, -2})
		expectLanes(t, "TruncateI64ToI32", TruncateI64ToI32(FromArray2([2]int64{1<<32 + 5, -3})), []int32{5, -3})
		expectLanes(t, "TruncateU16ToU8", TruncateU16ToU8(FromArray2([2]uint16{0xABCD, 0xFF})), []uint8{0xCD, 0xFF})
		expectLanes(t, "TruncateU32ToU16", TruncateU32ToU16(FromArray2([2]uint32{0xDEADBEEF, 1})), []uint16{0xBEEF, 1})
		expectLanes(t, "TruncateU64ToU32", TruncateU64ToU32(FromArray2([2]uint64{1<<40 | 7, 0})), []uint32{7, 0})
	})
}
