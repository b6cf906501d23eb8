package hwy

import "testing"

func TestMaskConstructors(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		expectMask(t, "MaskAll(true)", MaskAll[N4](true), []bool{true, true, true, true})
		expectMask(t, "MaskAll(false)", MaskAll[N4](false), []bool{false, false, false, false})
		expectMask(t, "FirstN", FirstN[N8](3), []bool{true, true, true, false, false, false, false, false})
		expectMask(t, "LastN", LastN[N8](2), []bool{false, false, false, false, false, false, true, true})
		expectMask(t, "FirstN clamp", FirstN[N4](9), []bool{true, true, true, true})
		expectMask(t, "LastN negative", LastN[N4](-1), []bool{false, false, false, false})
		expectMask(t, "MaskFromBits", MaskFromBits[N4](0b1_1010), []bool{false, true, false, true})
		expectMask(t, "MaskFromBools", MaskFromBools[N2]([]bool{true, false, true}), []bool{true, false})

		if got := MaskFromBits[N4](0xFF).Bits(); got != 0xF {
			t.Errorf("MaskFromBits ignores high bits: got %#x, want 0xf", got)
		}
		if got := MaskAll[N64](true).Bits(); got != ^uint64(0) {
			t.Errorf("MaskAll[N64] bits: got %#x", got)
		}

		var zero Mask[N16]
		if zero.AnyTrue() || !zero.AllFalse() {
			t.Error("zero Mask has set lanes")
		}
	})
}

func TestMaskQueries(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		tests := []struct {
			bits        uint64
			count       int
			first, last int
			all, any    bool
			parity      bool
		}{
			{0, 0, -1, -1, false, false, false},
			{0b0000_0001, 1, 0, 0, false, true, true},
			{0b1001_0100, 3, 2, 7, false, true, true},
			{0b1111_1111, 8, 0, 7, true, true, false},
			{0b0110_0000, 2, 5, 6, false, true, false},
		}
		for _, tt := range tests {
			m := MaskFromBits[N8](tt.bits)
			if got := m.CountTrue(); got != tt.count {
				t.Errorf("%08b CountTrue: got %d, want %d", tt.bits, got, tt.count)
			}
			if got := m.FindFirstTrue(); got != tt.first {
				t.Errorf("%08b FindFirstTrue: got %d, want %d", tt.bits, got, tt.first)
			}
			if got := m.FindLastTrue(); got != tt.last {
				t.Errorf("%08b FindLastTrue: got %d, want %d", tt.bits, got, tt.last)
			}
			if got := m.AllTrue(); got != tt.all {
				t.Errorf("%08b AllTrue: got %v, want %v", tt.bits, got, tt.all)
			}
			if got := m.AnyTrue(); got != tt.any {
				t.Errorf("%08b AnyTrue: got %v, want %v", tt.bits, got, tt.any)
			}
			if got := m.AllFalse(); got == tt.any {
				t.Errorf("%08b AllFalse: got %v, want %v", tt.bits, got, !tt.any)
			}
			if got := m.Parity(); got != tt.parity {
				t.Errorf("%08b Parity: got %v, want %v", tt.bits, got, tt.parity)
			}
		}
	})
}

func TestMaskLogic(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		a := MaskFromBits[N4](0b0011)
		b := MaskFromBits[N4](0b0101)
		checks := []struct {
			name string
			m    Mask[N4]
			want uint64
		}{
			{"And", MaskAnd(a, b), 0b0001},
			{"Or", MaskOr(a, b), 0b0111},
			{"Xor", MaskXor(a, b), 0b0110},
			{"AndNot", MaskAndNot(a, b), 0b0100},
			{"Not", MaskNot(a), 0b1100},
			{"AndBool true", MaskAndBool(a, true), 0b0011},
			{"AndBool false", MaskAndBool(a, false), 0},
			{"OrBool true", MaskOrBool(a, true), 0b1111},
			{"OrBool false", MaskOrBool(a, false), 0b0011},
			{"XorBool true", MaskXorBool(a, true), 0b1100},
		}
		for _, c := range checks {
			if got := c.m.Bits(); got != c.want {
				t.Errorf("%s: got %04b, want %04b", c.name, got, c.want)
			}
		}
	})
}

func TestMaskLogicAcrossEncodings(t *testing.T) {
	if err := SelectBackend(""); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = SelectBackend("auto") })
	bools := MaskFromBits[N8](0b1010_1010)

	useBackend(t, Backend{Name: "test-bits", Width: 16}, nil)
	words := MaskFromBits[N8](0b1111_0000)
	pair := PackMask[N8](MaskFromBits[N4](0b0011), MaskFromBits[N4](0b1100))

	if got := MaskAnd(bools, words).Bits(); got != 0b1010_0000 {
		t.Errorf("bool & word: got %08b", got)
	}
	if got := MaskOr(words, bools).Bits(); got != 0b1111_1010 {
		t.Errorf("word | bool: got %08b", got)
	}
	if got := MaskXor(pair, bools).Bits(); got != 0b0110_1001 {
		t.Errorf("pair ^ bool: got %08b", got)
	}
}

func TestMaskInsertExtract(t *testing.T) {
	forEachRepr(t, func(t *testing.T) {
		m := MaskAll[N8](false)
		n := m
		n.Insert(5, true)
		if m.Extract(5) {
			t.Error("Insert on a copy changed the original")
		}
		if !n.Extract(5) || n.CountTrue() != 1 {
			t.Errorf("Insert: got %v", n)
		}
		n.Insert(5, false)
		if n.AnyTrue() {
			t.Errorf("Insert false: got %v", n)
		}
	})
}

func TestMaskExtractPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(laneError); !ok {
			t.Error("Mask.Extract(4) on N4 did not panic with laneError")
		}
	}()
	MaskAll[N4](true).Extract(4)
}

func TestMaskFromArray(t *testing.T) {
	m := MaskFromArray4([4]bool{true, false, false, true})
	if got := m.String(); got != "[1 0 0 1]" {
		t.Errorf("String: got %q", got)
	}
	if got := MaskFromArray1([1]bool{true}).Bits(); got != 1 {
		t.Errorf("MaskFromArray1: got %d", got)
	}
}
