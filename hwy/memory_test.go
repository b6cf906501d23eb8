package hwy

import "testing"

func TestMaskLoad(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		// src is shorter than the vector; unselected lanes are never read.
		src := []int32{1, 2, 3}
		m := FirstN[N8](3)
		expectLanes(t, "MaskLoad", MaskLoad(m, src), []int32{1, 2, 3, 0, 0, 0, 0, 0})

		fallback := Set[int32, N8](-1)
		expectLanes(t, "MaskLoadOr", MaskLoadOr(MaskFromBits[N8](0b101), fallback, src),
			[]int32{1, -1, 3, -1, -1, -1, -1, -1})
	})
}

func TestMaskStore(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		dst := []float32{9, 9, 9, 9, 9, 9, 9, 9}
		v := Iota[float32, N8]()
		MaskStore(MaskFromBits[N8](0b1001_0110), v, dst)
		want := []float32{9, 1, 2, 9, 4, 9, 9, 7}
		for i := range want {
			if dst[i] != want[i] {
				t.Errorf("MaskStore: dst[%d] = %v, want %v", i, dst[i], want[i])
			}
		}

		short := []float32{9, 9}
		MaskStore(FirstN[N8](2), v, short)
		if short[0] != 0 || short[1] != 1 {
			t.Errorf("MaskStore into short slice: got %v", short)
		}
	})
}

func TestStoreZeroVec(t *testing.T) {
	dst := []uint8{1, 2, 3, 4, 5}
	var v Vec[uint8, N4]
	Store(v, dst)
	for i, want := range []uint8{0, 0, 0, 0, 5} {
		if dst[i] != want {
			t.Errorf("Store zero Vec: dst[%d] = %d, want %d", i, dst[i], want)
		}
	}
}

func TestLoadDup128(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		src := []uint32{1, 2, 3, 4, 5, 6}
		expectLanes(t, "LoadDup128 N8", LoadDup128[uint32, N8](src), []uint32{1, 2, 3, 4, 1, 2, 3, 4})
		expectLanes(t, "LoadDup128 N2", LoadDup128[uint32, N2](src), []uint32{1, 2})

		b := make([]uint8, 16)
		for i := range b {
			b[i] = uint8(i)
		}
		got := LoadDup128[uint8, N64](b)
		if got.Extract(17) != 1 || got.Extract(63) != 15 {
			t.Errorf("LoadDup128 uint8: lane 17 = %d, lane 63 = %d", got.Extract(17), got.Extract(63))
		}
	})
}

func TestInterleaved2(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		src := []int16{0, 10, 1, 11, 2, 12, 3, 13}
		a, b := LoadInterleaved2[int16, N4](src)
		expectLanes(t, "LoadInterleaved2 a", a, []int16{0, 1, 2, 3})
		expectLanes(t, "LoadInterleaved2 b", b, []int16{10, 11, 12, 13})

		out := make([]int16, 8)
		StoreInterleaved2(a, b, out)
		for i := range src {
			if out[i] != src[i] {
				t.Errorf("StoreInterleaved2: out[%d] = %d, want %d", i, out[i], src[i])
			}
		}
	})
}

func TestAlignedSlice(t *testing.T) {
	buf := AlignedSlice[float32, N8](100)
	if len(buf) != 100 || cap(buf) != 100 {
		t.Fatalf("AlignedSlice: len %d cap %d", len(buf), cap(buf))
	}
	if !IsAligned[float32, N8](buf) {
		t.Error("AlignedSlice result is not aligned to 32 bytes")
	}
	if IsAligned[float32, N8](buf[1:]) {
		t.Error("buf[1:] reported aligned to 32 bytes")
	}
	for i := range 100 {
		buf[i] = float32(i)
	}
	v := LoadAligned[float32, N8](buf[8:])
	StoreAligned(AddScalar(v, 1), buf[16:])
	if buf[16] != 9 || buf[23] != 16 {
		t.Errorf("LoadAligned/StoreAligned: got %v", buf[16:24])
	}
	if !IsAligned[float64, N8](nil) {
		t.Error("empty slice reported unaligned")
	}
}
