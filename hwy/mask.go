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
	"math/bits"
	"strings"
)

// maskRegister is the physical storage behind a Mask. Masks produced by
// emulated compares hold one bool per lane, native compares produce a
// predicate word with one bit per lane, and decomposed compares produce a
// pair of half masks. Operations mixing encodings go through the boolean
// view of each lane.
type maskRegister interface {
	lanes() int
	extract(i int) bool
	with(i int, b bool) maskRegister
	// logic combines two masks with OpAnd, OpOr, OpXor or OpAndNot.
	logic(op BinaryOp, b maskRegister) maskRegister
	not() maskRegister
}

func logicLane(op BinaryOp, a, b bool) bool {
	switch op {
	case OpAnd:
		return a && b
	case OpOr:
		return a || b
	case OpXor:
		return a != b
	case OpAndNot:
		return !a && b
	}
	return false
}

type boolMask []bool

func (m boolMask) lanes() int         { return len(m) }
func (m boolMask) extract(i int) bool { return m[i] }

func (m boolMask) with(i int, b bool) maskRegister {
	out := make(boolMask, len(m))
	copy(out, m)
	out[i] = b
	return out
}

func (m boolMask) logic(op BinaryOp, b maskRegister) maskRegister {
	out := make(boolMask, len(m))
	for i, x := range m {
		out[i] = logicLane(op, x, b.extract(i))
	}
	return out
}

func (m boolMask) not() maskRegister {
	out := make(boolMask, len(m))
	for i, x := range m {
		out[i] = !x
	}
	return out
}

// bitMask is a predicate word: bit i holds lane i. Bits at or above n are
// always clear.
type bitMask struct {
	bits uint64
	n    int
}

func lowBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

func (m bitMask) lanes() int         { return m.n }
func (m bitMask) extract(i int) bool { return m.bits>>i&1 != 0 }

func (m bitMask) with(i int, b bool) maskRegister {
	if b {
		return bitMask{bits: m.bits | 1<<i, n: m.n}
	}
	return bitMask{bits: m.bits &^ (1 << i), n: m.n}
}

func (m bitMask) logic(op BinaryOp, b maskRegister) maskRegister {
	y := maskBits(b)
	var r uint64
	switch op {
	case OpAnd:
		r = m.bits & y
	case OpOr:
		r = m.bits | y
	case OpXor:
		r = m.bits ^ y
	case OpAndNot:
		r = ^m.bits & y
	}
	return bitMask{bits: r & lowBits(m.n), n: m.n}
}

func (m bitMask) not() maskRegister {
	return bitMask{bits: ^m.bits & lowBits(m.n), n: m.n}
}

// pairMask is the mask of a decomposed register, low half first.
type pairMask struct {
	lo, hi maskRegister
}

func (m pairMask) lanes() int { return m.lo.lanes() + m.hi.lanes() }

func (m pairMask) extract(i int) bool {
	if h := m.lo.lanes(); i >= h {
		return m.hi.extract(i - h)
	}
	return m.lo.extract(i)
}

func (m pairMask) with(i int, b bool) maskRegister {
	if h := m.lo.lanes(); i >= h {
		return pairMask{lo: m.lo, hi: m.hi.with(i-h, b)}
	}
	return pairMask{lo: m.lo.with(i, b), hi: m.hi}
}

func (m pairMask) logic(op BinaryOp, b maskRegister) maskRegister {
	blo, bhi := splitMask(b, m.lo.lanes())
	return pairMask{lo: m.lo.logic(op, blo), hi: m.hi.logic(op, bhi)}
}

func (m pairMask) not() maskRegister {
	return pairMask{lo: m.lo.not(), hi: m.hi.not()}
}

// splitMask returns the first h lanes of m and the rest.
// A nil mask splits into two nil masks.
func splitMask(m maskRegister, h int) (lo, hi maskRegister) {
	switch m := m.(type) {
	case nil:
		return nil, nil
	case pairMask:
		if m.lo.lanes() == h {
			return m.lo, m.hi
		}
	case bitMask:
		return bitMask{bits: m.bits & lowBits(h), n: h}, bitMask{bits: m.bits >> h, n: m.n - h}
	case boolMask:
		return m[:h:h], m[h:]
	}
	b := maskBools(m)
	return boolMask(b[:h:h]), boolMask(b[h:])
}

func maskBits(m maskRegister) uint64 {
	if b, ok := m.(bitMask); ok {
		return b.bits
	}
	var r uint64
	for i := range m.lanes() {
		if m.extract(i) {
			r |= 1 << i
		}
	}
	return r
}

func maskBools(m maskRegister) []bool {
	out := make([]bool, m.lanes())
	for i := range out {
		out[i] = m.extract(i)
	}
	return out
}

// newMaskRegister encodes a standalone mask of n lanes the way compares on
// the active backend would: a predicate word when a backend is selected,
// one bool per lane otherwise.
func newMaskRegister(n int, bits uint64) maskRegister {
	if _, ok := ActiveBackend(); ok {
		return bitMask{bits: bits & lowBits(n), n: n}
	}
	out := make(boolMask, n)
	for i := range out {
		out[i] = bits>>i&1 != 0
	}
	return out
}

// Mask is a per-lane boolean predicate for vectors of N lanes. It is keyed
// by the lane count only, so a mask from a float32 compare can select lanes
// of any other vector with the same count.
//
// The zero Mask has every lane false.
type Mask[N Count] struct {
	r maskRegister
}

func (m Mask[N]) reg() maskRegister {
	if m.r == nil {
		return newMaskRegister(lanesOf[N](), 0)
	}
	return m.r
}

// MaskAll returns a mask with every lane set to b.
func MaskAll[N Count](b bool) Mask[N] {
	var bits uint64
	if b {
		bits = ^uint64(0)
	}
	return Mask[N]{r: newMaskRegister(lanesOf[N](), bits)}
}

// MaskFromBools builds a mask from the first N entries of b.
// It panics if len(b) < N.
func MaskFromBools[N Count](b []bool) Mask[N] {
	n := lanesOf[N]()
	_ = b[n-1]
	var bits uint64
	for i := range n {
		if b[i] {
			bits |= 1 << i
		}
	}
	return Mask[N]{r: newMaskRegister(n, bits)}
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of bits corresponds to lane i; bits at or above N are ignored.
func MaskFromBits[N Count](bits uint64) Mask[N] {
	return Mask[N]{r: newMaskRegister(lanesOf[N](), bits)}
}

// FirstN creates a mask with the first n lanes set to true.
// n is clamped to [0, N].
func FirstN[N Count](n int) Mask[N] {
	lanes := lanesOf[N]()
	n = max(0, min(n, lanes))
	return Mask[N]{r: newMaskRegister(lanes, lowBits(n))}
}

// LastN creates a mask with the last n lanes set to true.
// n is clamped to [0, N].
func LastN[N Count](n int) Mask[N] {
	lanes := lanesOf[N]()
	n = max(0, min(n, lanes))
	return Mask[N]{r: newMaskRegister(lanes, lowBits(n)<<(lanes-n))}
}

// NumLanes returns N.
func (m Mask[N]) NumLanes() int { return lanesOf[N]() }

// Extract returns lane i. It panics if i is out of range.
func (m Mask[N]) Extract(i int) bool {
	checkLane(i, lanesOf[N]())
	return m.reg().extract(i)
}

// Insert sets lane i to b in place. It panics if i is out of range.
func (m *Mask[N]) Insert(i int, b bool) {
	checkLane(i, lanesOf[N]())
	m.r = m.reg().with(i, b)
}

// Bits returns the mask as an integer, lane i in bit i.
func (m Mask[N]) Bits() uint64 { return maskBits(m.reg()) }

// Bools returns a copy of the mask lanes.
func (m Mask[N]) Bools() []bool { return maskBools(m.reg()) }

// CountTrue returns the number of set lanes.
func (m Mask[N]) CountTrue() int { return bits.OnesCount64(m.Bits()) }

// AllTrue reports whether every lane is set.
func (m Mask[N]) AllTrue() bool { return m.Bits() == lowBits(lanesOf[N]()) }

// AnyTrue reports whether at least one lane is set.
func (m Mask[N]) AnyTrue() bool { return m.Bits() != 0 }

// AllFalse reports whether no lane is set.
func (m Mask[N]) AllFalse() bool { return m.Bits() == 0 }

// Parity reports whether an odd number of lanes is set.
func (m Mask[N]) Parity() bool { return m.CountTrue()&1 == 1 }

// FindFirstTrue returns index of first true lane, or -1 if none.
func (m Mask[N]) FindFirstTrue() int {
	b := m.Bits()
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(b)
}

// FindLastTrue returns index of last true lane, or -1 if none.
func (m Mask[N]) FindLastTrue() int {
	b := m.Bits()
	if b == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(b)
}

// String formats the mask as a lane list, e.g. "[1 0 0 1]".
func (m Mask[N]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	r := m.reg()
	for i := range r.lanes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if r.extract(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// MaskAnd returns a & b lane-wise.
func MaskAnd[N Count](a, b Mask[N]) Mask[N] {
	return Mask[N]{r: a.reg().logic(OpAnd, b.reg())}
}

// MaskOr returns a | b lane-wise.
func MaskOr[N Count](a, b Mask[N]) Mask[N] {
	return Mask[N]{r: a.reg().logic(OpOr, b.reg())}
}

// MaskXor returns a ^ b lane-wise.
func MaskXor[N Count](a, b Mask[N]) Mask[N] {
	return Mask[N]{r: a.reg().logic(OpXor, b.reg())}
}

// MaskAndNot performs (~a) & b on masks.
func MaskAndNot[N Count](a, b Mask[N]) Mask[N] {
	return Mask[N]{r: a.reg().logic(OpAndNot, b.reg())}
}

// MaskNot inverts all lanes of a mask.
func MaskNot[N Count](m Mask[N]) Mask[N] {
	return Mask[N]{r: m.reg().not()}
}

// MaskAndBool combines every lane of m with a scalar boolean.
// MaskAndBool(m, true) is m and MaskAndBool(m, false) is all false.
func MaskAndBool[N Count](m Mask[N], b bool) Mask[N] {
	return MaskAnd(m, MaskAll[N](b))
}

// MaskOrBool combines every lane of m with a scalar boolean.
func MaskOrBool[N Count](m Mask[N], b bool) Mask[N] {
	return MaskOr(m, MaskAll[N](b))
}

// MaskXorBool combines every lane of m with a scalar boolean.
// MaskXorBool(m, true) is MaskNot(m).
func MaskXorBool[N Count](m Mask[N], b bool) Mask[N] {
	return MaskXor(m, MaskAll[N](b))
}

// MaskFromArray1 builds a mask from a 1-lane array.
func MaskFromArray1(a [1]bool) Mask[N1] { return MaskFromBools[N1](a[:]) }

// MaskFromArray2 builds a mask from a 2-lane array.
func MaskFromArray2(a [2]bool) Mask[N2] { return MaskFromBools[N2](a[:]) }

// MaskFromArray4 builds a mask from a 4-lane array.
func MaskFromArray4(a [4]bool) Mask[N4] { return MaskFromBools[N4](a[:]) }

// MaskFromArray8 builds a mask from an 8-lane array.
func MaskFromArray8(a [8]bool) Mask[N8] { return MaskFromBools[N8](a[:]) }

// MaskFromArray16 builds a mask from a 16-lane array.
func MaskFromArray16(a [16]bool) Mask[N16] { return MaskFromBools[N16](a[:]) }

// MaskFromArray32 builds a mask from a 32-lane array.
func MaskFromArray32(a [32]bool) Mask[N32] { return MaskFromBools[N32](a[:]) }

// MaskFromArray64 builds a mask from a 64-lane array.
func MaskFromArray64(a [64]bool) Mask[N64] { return MaskFromBools[N64](a[:]) }

func checkLane(i, n int) {
	if i < 0 || i >= n {
		panic(laneError{index: i, lanes: n})
	}
}

type laneError struct {
	index, lanes int
}

func (e laneError) Error() string {
	return fmt.Sprintf("hwy: lane index %d out of range [0, %d)", e.index, e.lanes)
}
