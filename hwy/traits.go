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
)

// Representation names the physical storage chosen for a vector shape.
type Representation uint8

const (
	// Emulated shapes hold one Go value per lane and run scalar loops.
	Emulated Representation = iota
	// Native shapes run on kernels registered by the active backend.
	Native
	// Decomposed shapes are wider than the backend register and hold two
	// half-width vectors, each resolved on its own.
	Decomposed
)

func (r Representation) String() string {
	switch r {
	case Native:
		return "native"
	case Decomposed:
		return "decomposed"
	default:
		return "emulated"
	}
}

// Shape identifies a vector type by lane kind, lane width in bits and lane
// count. Its String form is the usual short name: "u32x8", "f64x16".
type Shape struct {
	Kind  Kind
	Bits  int
	Lanes int
}

func (s Shape) String() string {
	return fmt.Sprintf("%c%dx%d", s.Kind.prefix(), s.Bits, s.Lanes)
}

// Bytes returns the size of one vector of this shape.
func (s Shape) Bytes() int { return s.Bits / 8 * s.Lanes }

// Valid reports whether s names one of the supported vector types.
func (s Shape) Valid() bool {
	return shapeIndex(s) >= 0
}

// Trait describes everything derivable from a vector shape: its mask, its
// same-width counterparts, its half type and how it is represented on the
// active backend.
type Trait struct {
	Shape Shape
	// MaskLanes is the lane count of the mask type; always Shape.Lanes.
	MaskLanes int
	// Unsigned and Signed are the integer shapes with the same lane width
	// and count. For an unsigned shape Unsigned is the shape itself.
	Unsigned Shape
	Signed   Shape
	// Float is the float shape of the same width; HasFloat is false for 8-
	// and 16-bit lanes.
	Float    Shape
	HasFloat bool
	// Half is the shape with half the lanes; HasHalf is false for one lane.
	Half    Shape
	HasHalf bool
	// SwizzleLanes is the lane count of the swizzle index vector.
	SwizzleLanes int
	Repr         Representation
	// Backend is the name of the active backend, empty under emulation.
	Backend string
	// Accelerated reports that the backend runs add, subtract, multiply and
	// equality (and divide for floats) natively on every part of the vector.
	// Other operations of a Native shape may still use the scalar loop.
	Accelerated bool
}

// traitEntry is a resolved trait plus the data needed to build registers
// for the shape.
type traitEntry struct {
	Trait
	half    *traitEntry
	kernels any // *Kernels[T] for Native entries
}

// traitTable is an immutable snapshot of every shape's trait. A new table
// is built and swapped in whenever the backend set or selection changes.
type traitTable struct {
	backend *backendEntry
	entries [numShapes]*traitEntry
}

var laneKinds = []struct {
	kind Kind
	bits int
}{
	{Unsigned, 8}, {Unsigned, 16}, {Unsigned, 32}, {Unsigned, 64},
	{Signed, 8}, {Signed, 16}, {Signed, 32}, {Signed, 64},
	{Float, 32}, {Float, 64},
}

// numShapes is len(laneKinds) * len(laneCounts).
const numShapes = 70

// shapeIndex maps a shape to its slot in the table, or -1.
func shapeIndex(s Shape) int {
	li := -1
	if s.Lanes > 0 && s.Lanes <= MaxCount && s.Lanes&(s.Lanes-1) == 0 {
		li = bits.TrailingZeros(uint(s.Lanes))
	}
	if li < 0 {
		return -1
	}
	for ki, lk := range laneKinds {
		if lk.kind == s.Kind && lk.bits == s.Bits {
			return ki*len(laneCounts) + li
		}
	}
	return -1
}

func buildTable(b *backendEntry) *traitTable {
	t := &traitTable{backend: b}
	for _, lk := range laneKinds {
		// Ascending lane counts, so every half is resolved first.
		for _, n := range laneCounts {
			s := Shape{Kind: lk.kind, Bits: lk.bits, Lanes: n}
			t.entries[shapeIndex(s)] = t.resolve(s)
		}
	}
	return t
}

func (t *traitTable) resolve(s Shape) *traitEntry {
	e := &traitEntry{Trait: Trait{
		Shape:        s,
		MaskLanes:    s.Lanes,
		Unsigned:     Shape{Kind: Unsigned, Bits: s.Bits, Lanes: s.Lanes},
		Signed:       Shape{Kind: Signed, Bits: s.Bits, Lanes: s.Lanes},
		SwizzleLanes: s.Lanes,
	}}
	if s.Bits >= 32 {
		e.Float, e.HasFloat = Shape{Kind: Float, Bits: s.Bits, Lanes: s.Lanes}, true
	}
	if s.Lanes > 1 {
		e.Half, e.HasHalf = Shape{Kind: s.Kind, Bits: s.Bits, Lanes: s.Lanes / 2}, true
	}
	b := t.backend
	switch {
	case b == nil:
		e.Repr = Emulated
	case s.Bytes() > b.Width && s.Lanes > 1:
		e.half = t.entries[shapeIndex(e.Half)]
		e.Repr = Decomposed
		e.Accelerated = e.half.Accelerated
	case b.kernels[s] != nil:
		e.kernels = b.kernels[s]
		e.Repr = Native
		e.Accelerated = b.core[s]
	default:
		e.Repr = Emulated
	}
	if b != nil {
		e.Backend = b.Name
	}
	return e
}

// ShapeOf returns the shape of Vec[T, N].
func ShapeOf[T Lanes, N Count]() Shape {
	k, b := kindOf[T]()
	return Shape{Kind: k, Bits: b, Lanes: lanesOf[N]()}
}

func entryOf[T Lanes, N Count]() *traitEntry {
	return currentTable().entries[shapeIndex(ShapeOf[T, N]())]
}

// TraitsOf returns the trait record of Vec[T, N] under the active backend.
// Every supported (T, N) has one, so the lookup cannot fail.
func TraitsOf[T Lanes, N Count]() Trait {
	return entryOf[T, N]().Trait
}

// Lookup returns the trait of a shape given at run time.
func Lookup(s Shape) (Trait, bool) {
	i := shapeIndex(s)
	if i < 0 {
		return Trait{}, false
	}
	return currentTable().entries[i].Trait, true
}

// Table returns the trait of every supported shape, ordered by kind, lane
// width and lane count.
func Table() []Trait {
	t := currentTable()
	out := make([]Trait, 0, numShapes)
	for _, e := range t.entries {
		out = append(out, e.Trait)
	}
	return out
}

// buildRegister lays data out in the representation chosen for e. The
// register takes ownership of data.
func buildRegister[T Lanes](e *traitEntry, data []T) register[T] {
	switch e.Repr {
	case Native:
		return native[T]{data: data, k: e.kernels.(*Kernels[T])}
	case Decomposed:
		h := len(data) / 2
		return decomposed[T]{
			lo: buildRegister(e.half, data[:h:h]),
			hi: buildRegister(e.half, data[h:]),
		}
	}
	return emulated[T]{data: data}
}
