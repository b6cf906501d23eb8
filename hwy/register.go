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

// register is the physical storage behind a Vec. Every implementation holds
// exactly the lane count of the vector it backs and is immutable once built:
// operations return new registers.
type register[T Lanes] interface {
	lanes() int
	extract(i int) T
	// storeTo copies every lane into dst[:lanes()].
	storeTo(dst []T)
	with(i int, x T) register[T]
	binary(op BinaryOp, b register[T]) register[T]
	unary(op UnaryOp) register[T]
	compare(op CompareOp, b register[T]) maskRegister
	// blend returns a copy of the receiver whose lanes selected by m are
	// taken from b.
	blend(m maskRegister, b register[T]) register[T]
	// fold combines the lanes selected by m (all lanes when m is nil) in
	// ascending order into acc. seeded reports whether acc already holds a
	// lane value; the first selected lane replaces an unseeded acc.
	fold(op BinaryOp, acc T, seeded bool, m maskRegister) (T, bool)
	repr() Representation
}

// lanesOfRegister copies the lanes of r into a new slice.
func lanesOfRegister[T Lanes](r register[T]) []T {
	out := make([]T, r.lanes())
	r.storeTo(out)
	return out
}

// emulated is the scalar-emulation register: one Go value per lane and a
// plain loop per operation. It backs every shape with no native support.
type emulated[T Lanes] struct {
	data []T
}

func (r emulated[T]) lanes() int           { return len(r.data) }
func (r emulated[T]) extract(i int) T      { return r.data[i] }
func (r emulated[T]) storeTo(dst []T)      { copy(dst[:len(r.data)], r.data) }
func (r emulated[T]) repr() Representation { return Emulated }

func (r emulated[T]) with(i int, x T) register[T] {
	data := make([]T, len(r.data))
	copy(data, r.data)
	data[i] = x
	return emulated[T]{data: data}
}

func (r emulated[T]) binary(op BinaryOp, b register[T]) register[T] {
	out := make([]T, len(r.data))
	for i, x := range r.data {
		out[i] = applyBinary(op, x, b.extract(i))
	}
	return emulated[T]{data: out}
}

func (r emulated[T]) unary(op UnaryOp) register[T] {
	out := make([]T, len(r.data))
	for i, x := range r.data {
		out[i] = applyUnary(op, x)
	}
	return emulated[T]{data: out}
}

func (r emulated[T]) compare(op CompareOp, b register[T]) maskRegister {
	out := make([]bool, len(r.data))
	for i, x := range r.data {
		out[i] = applyCompare(op, x, b.extract(i))
	}
	return boolMask(out)
}

func (r emulated[T]) blend(m maskRegister, b register[T]) register[T] {
	out := make([]T, len(r.data))
	for i, x := range r.data {
		if m.extract(i) {
			x = b.extract(i)
		}
		out[i] = x
	}
	return emulated[T]{data: out}
}

func (r emulated[T]) fold(op BinaryOp, acc T, seeded bool, m maskRegister) (T, bool) {
	return foldLanes(r.data, op, acc, seeded, m)
}

// foldLanes is the reference reduction loop shared by the flat registers.
func foldLanes[T Lanes](data []T, op BinaryOp, acc T, seeded bool, m maskRegister) (T, bool) {
	for i, x := range data {
		if m != nil && !m.extract(i) {
			continue
		}
		if !seeded {
			acc, seeded = x, true
			continue
		}
		acc = applyBinary(op, acc, x)
	}
	return acc, seeded
}
