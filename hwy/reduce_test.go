package hwy

import (
	"math"
	"testing"
)

func TestReduce(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		v := FromArray8([8]int32{3, -1, 4, 1, -5, 9, 2, -6})
		if got := ReduceSum(v); got != 7 {
			t.Errorf("ReduceSum: got %d, want 7", got)
		}
		if got := ReduceMin(v); got != -6 {
			t.Errorf("ReduceMin: got %d, want -6", got)
		}
		if got := ReduceMax(v); got != 9 {
			t.Errorf("ReduceMax: got %d, want 9", got)
		}
		if got := ReduceMul(FromArray4([4]int32{2, -3, 4, 1})); got != -24 {
			t.Errorf("ReduceMul: got %d, want -24", got)
		}

		u := FromArray4([4]uint16{0xF0F0, 0xFF00, 0x0FF0, 0xF000})
		if got := ReduceAnd(u); got != 0 {
			t.Errorf("ReduceAnd: got %#x", got)
		}
		if got := ReduceOr(u); got != 0xFFF0 {
			t.Errorf("ReduceOr: got %#x", got)
		}
		if got := ReduceXor(u); got != 0xF0F0^0xFF00^0x0FF0^0xF000 {
			t.Errorf("ReduceXor: got %#x", got)
		}
	})
}

func TestReduceFloat(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		v := Iota[float32, N16]()
		if got := ReduceSum(v); got != 120 {
			t.Errorf("ReduceSum: got %v, want 120", got)
		}
		if got := ReduceMax(v); got != 15 {
			t.Errorf("ReduceMax: got %v, want 15", got)
		}
		d := FromArray2([2]float64{1.5, -2})
		if got := ReduceMul(d); got != -3 {
			t.Errorf("ReduceMul: got %v, want -3", got)
		}
	})
}

func TestMaskedReduce(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		v := FromArray8([8]int64{3, -1, 4, 1, -5, 9, 2, -6})
		m := MaskFromBits[N8](0b0011_0110)
		if got := MaskedReduceSum(m, v); got != 7 {
			t.Errorf("MaskedReduceSum: got %d, want 7", got)
		}
		if got := MaskedReduceMin(m, v); got != -5 {
			t.Errorf("MaskedReduceMin: got %d, want -5", got)
		}
		if got := MaskedReduceMax(m, v); got != 9 {
			t.Errorf("MaskedReduceMax: got %d, want 9", got)
		}
		if got := MaskedReduceMul(m, v); got != 180 {
			t.Errorf("MaskedReduceMul: got %d, want 180", got)
		}
		if got := MaskedReduceOr(m, v); got != -1 {
			t.Errorf("MaskedReduceOr: got %d, want -1", got)
		}
		if got := MaskedReduceAnd(m, Set[int64, N8](6)); got != 6 {
			t.Errorf("MaskedReduceAnd: got %d, want 6", got)
		}
		if got := MaskedReduceXor(m, Set[int64, N8](6)); got != 0 {
			t.Errorf("MaskedReduceXor: got %d, want 0", got)
		}
	})
}

func TestMaskedReduceEmpty(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		none := MaskAll[N8](false)
		i := Iota[int8, N8]()
		if got := MaskedReduceSum(none, i); got != 0 {
			t.Errorf("sum: got %d", got)
		}
		if got := MaskedReduceMul(none, i); got != 1 {
			t.Errorf("mul: got %d", got)
		}
		if got := MaskedReduceMin(none, i); got != math.MaxInt8 {
			t.Errorf("min: got %d", got)
		}
		if got := MaskedReduceMax(none, i); got != math.MinInt8 {
			t.Errorf("max: got %d", got)
		}
		if got := MaskedReduceAnd(none, i); got != -1 {
			t.Errorf("and: got %d", got)
		}
		u := Iota[uint8, N8]()
		if got := MaskedReduceMin(none, u); got != math.MaxUint8 {
			t.Errorf("unsigned min: got %d", got)
		}
		f := Iota[float32, N8]()
		if got := MaskedReduceMin(none, f); !math.IsInf(float64(got), 1) {
			t.Errorf("float min: got %v, want +Inf", got)
		}
		if got := MaskedReduceMax(none, f); !math.IsInf(float64(got), -1) {
			t.Errorf("float max: got %v, want -Inf", got)
		}
	})
}
