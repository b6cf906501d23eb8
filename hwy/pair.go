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

// decomposed is a register built from two half-width registers, low half
// first. Elementwise operations apply to each half independently; masks are
// split alongside.
type decomposed[T Lanes] struct {
	lo, hi register[T]
}

func (r decomposed[T]) lanes() int           { return r.lo.lanes() + r.hi.lanes() }
func (r decomposed[T]) repr() Representation { return Decomposed }

func (r decomposed[T]) extract(i int) T {
	if h := r.lo.lanes(); i >= h {
		return r.hi.extract(i - h)
	}
	return r.lo.extract(i)
}

func (r decomposed[T]) storeTo(dst []T) {
	h := r.lo.lanes()
	r.lo.storeTo(dst[:h])
	r.hi.storeTo(dst[h:])
}

func (r decomposed[T]) with(i int, x T) register[T] {
	if h := r.lo.lanes(); i >= h {
		return decomposed[T]{lo: r.lo, hi: r.hi.with(i-h, x)}
	}
	return decomposed[T]{lo: r.lo.with(i, x), hi: r.hi}
}

// splitRegister returns the halves of b matching the split of r.
func splitRegister[T Lanes](r decomposed[T], b register[T]) (lo, hi register[T]) {
	if p, ok := b.(decomposed[T]); ok && p.lo.lanes() == r.lo.lanes() {
		return p.lo, p.hi
	}
	data := lanesOfRegister(b)
	h := r.lo.lanes()
	return emulated[T]{data: data[:h:h]}, emulated[T]{data: data[h:]}
}

func (r decomposed[T]) binary(op BinaryOp, b register[T]) register[T] {
	blo, bhi := splitRegister(r, b)
	return decomposed[T]{lo: r.lo.binary(op, blo), hi: r.hi.binary(op, bhi)}
}

func (r decomposed[T]) unary(op UnaryOp) register[T] {
	return decomposed[T]{lo: r.lo.unary(op), hi: r.hi.unary(op)}
}

func (r decomposed[T]) compare(op CompareOp, b register[T]) maskRegister {
	blo, bhi := splitRegister(r, b)
	return pairMask{lo: r.lo.compare(op, blo), hi: r.hi.compare(op, bhi)}
}

func (r decomposed[T]) blend(m maskRegister, b register[T]) register[T] {
	blo, bhi := splitRegister(r, b)
	mlo, mhi := splitMask(m, r.lo.lanes())
	return decomposed[T]{lo: r.lo.blend(mlo, blo), hi: r.hi.blend(mhi, bhi)}
}

func (r decomposed[T]) fold(op BinaryOp, acc T, seeded bool, m maskRegister) (T, bool) {
	var mlo, mhi maskRegister
	if m != nil {
		mlo, mhi = splitMask(m, r.lo.lanes())
	}
	acc, seeded = r.lo.fold(op, acc, seeded, mlo)
	return r.hi.fold(op, acc, seeded, mhi)
}
