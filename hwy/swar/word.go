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

package swar

import "github.com/ajroetker/hwyvec/hwy"

// word128 holds a register: lanes 0 to perWord-1 in lo, the rest in hi, lane
// i of each word at bit offset i*bits.
type word128 struct {
	lo, hi uint64
}

// layout describes how lanes of one type sit in a 64-bit word.
type layout struct {
	bits    int
	perWord int
	// high has the top bit of every lane set.
	high uint64
	// lane masks one lane at offset 0.
	lane uint64
}

func laneBits[T hwy.Lanes]() int {
	return hwy.ShapeOf[T, hwy.N1]().Bits
}

func layoutOf[T hwy.Lanes]() layout {
	l := layout{bits: laneBits[T]()}
	l.perWord = 64 / l.bits
	l.lane = ^uint64(0) >> (64 - l.bits)
	for i := range l.perWord {
		l.high |= 1 << (i*l.bits + l.bits - 1)
	}
	return l
}

func load[T hwy.Lanes](a []T, l layout) word128 {
	var w word128
	for i, x := range a {
		v := hwy.LaneBits(x) << ((i % l.perWord) * l.bits)
		if i < l.perWord {
			w.lo |= v
		} else {
			w.hi |= v
		}
	}
	return w
}

func store[T hwy.Lanes](dst []T, w word128, l layout) {
	for i := range dst {
		word := w.lo
		if i >= l.perWord {
			word = w.hi
		}
		dst[i] = hwy.LaneFromBits[T](word >> ((i % l.perWord) * l.bits) & l.lane)
	}
}

// add adds lane-wise. Clearing the top bit of every lane keeps carries
// inside the lane; the top bits are then fixed up with xor.
func add(x, y uint64, l layout) uint64 {
	return ((x &^ l.high) + (y &^ l.high)) ^ ((x ^ y) & l.high)
}

// sub subtracts lane-wise. Setting the top bit of every lane in x stops
// borrows from crossing into the lane above.
func sub(x, y uint64, l layout) uint64 {
	return ((x | l.high) - (y &^ l.high)) ^ ((x ^ ^y) & l.high)
}

// nonZeroLanes sets the top bit of every lane of t that is not zero and
// clears all other bits.
func nonZeroLanes(t uint64, l layout) uint64 {
	return (((t &^ l.high) + ^l.high) | t) & l.high
}

// gatherHighBits packs the top bit of each lane into bit i of the result.
func gatherHighBits(h uint64, l layout) uint64 {
	var bits uint64
	for i := range l.perWord {
		bits |= (h >> (i*l.bits + l.bits - 1) & 1) << i
	}
	return bits
}
