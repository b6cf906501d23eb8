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

// native is a register owned by a backend. Its lanes live in a slice of
// exactly the shape's lane count and every operation goes through the
// backend's kernel for the shape, falling back to the reference loop for
// empty kernel slots. Compares produce bit masks.
type native[T Lanes] struct {
	data []T
	k    *Kernels[T]
}

func (r native[T]) lanes() int           { return len(r.data) }
func (r native[T]) extract(i int) T      { return r.data[i] }
func (r native[T]) storeTo(dst []T)      { copy(dst[:len(r.data)], r.data) }
func (r native[T]) repr() Representation { return Native }

func (r native[T]) with(i int, x T) register[T] {
	data := make([]T, len(r.data))
	copy(data, r.data)
	data[i] = x
	return native[T]{data: data, k: r.k}
}

// operand returns the lanes of b without copying when b is flat.
func operand[T Lanes](b register[T]) []T {
	switch b := b.(type) {
	case native[T]:
		return b.data
	case emulated[T]:
		return b.data
	}
	return lanesOfRegister(b)
}

func (r native[T]) binary(op BinaryOp, b register[T]) register[T] {
	out := make([]T, len(r.data))
	if fn := r.k.Binary[op]; fn != nil {
		fn(out, r.data, operand(b))
		return native[T]{data: out, k: r.k}
	}
	for i, x := range r.data {
		out[i] = applyBinary(op, x, b.extract(i))
	}
	return native[T]{data: out, k: r.k}
}

func (r native[T]) unary(op UnaryOp) register[T] {
	out := make([]T, len(r.data))
	if fn := r.k.Unary[op]; fn != nil {
		fn(out, r.data)
		return native[T]{data: out, k: r.k}
	}
	for i, x := range r.data {
		out[i] = applyUnary(op, x)
	}
	return native[T]{data: out, k: r.k}
}

func (r native[T]) compare(op CompareOp, b register[T]) maskRegister {
	if fn := r.k.Compare[op]; fn != nil {
		n := len(r.data)
		return bitMask{bits: fn(r.data, operand(b)) & lowBits(n), n: n}
	}
	var bits uint64
	for i, x := range r.data {
		if applyCompare(op, x, b.extract(i)) {
			bits |= 1 << i
		}
	}
	return bitMask{bits: bits, n: len(r.data)}
}

func (r native[T]) blend(m maskRegister, b register[T]) register[T] {
	out := make([]T, len(r.data))
	for i, x := range r.data {
		if m.extract(i) {
			x = b.extract(i)
		}
		out[i] = x
	}
	return native[T]{data: out, k: r.k}
}

func (r native[T]) fold(op BinaryOp, acc T, seeded bool, m maskRegister) (T, bool) {
	return foldLanes(r.data, op, acc, seeded, m)
}
