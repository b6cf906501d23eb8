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

// Pack concatenates two half-width vectors, lo in the low lanes:
//
//	v := hwy.Pack[hwy.N16](lo, hi) // lo, hi are Vec[T, N8]
//
// When Vec[T, N] is decomposed on the active backend the halves are kept as
// they are, with no copy.
func Pack[N Doubled[H], T Lanes, H Count](lo, hi Vec[T, H]) Vec[T, N] {
	e := entryOf[T, N]()
	if e.Repr == Decomposed {
		return wrap[T, N](decomposed[T]{lo: lo.reg(), hi: hi.reg()})
	}
	h := lanesOf[H]()
	data := make([]T, 2*h)
	lo.reg().storeTo(data[:h])
	hi.reg().storeTo(data[h:])
	return wrap[T, N](buildRegister(e, data))
}

// UnpackLo returns the low half of v:
//
//	lo := hwy.UnpackLo[hwy.N8](v) // v is Vec[T, N16]
func UnpackLo[H Count, T Lanes, N Doubled[H]](v Vec[T, N]) Vec[T, H] {
	lo, _ := Split[H](v)
	return lo
}

// UnpackHi returns the high half of v.
func UnpackHi[H Count, T Lanes, N Doubled[H]](v Vec[T, N]) Vec[T, H] {
	_, hi := Split[H](v)
	return hi
}

// Split returns both halves of v, low half first.
// UnpackLo(Pack(lo, hi)) == lo and UnpackHi(Pack(lo, hi)) == hi.
func Split[H Count, T Lanes, N Doubled[H]](v Vec[T, N]) (lo, hi Vec[T, H]) {
	if p, ok := v.reg().(decomposed[T]); ok {
		return wrap[T, H](p.lo), wrap[T, H](p.hi)
	}
	data := v.Lanes()
	h := lanesOf[H]()
	return newVec[T, H](data[:h:h]), newVec[T, H](data[h:])
}

// PackMask concatenates two half-width masks, lo in the low lanes.
func PackMask[N Doubled[H], H Count](lo, hi Mask[H]) Mask[N] {
	return Mask[N]{r: pairMask{lo: lo.reg(), hi: hi.reg()}}
}

// UnpackMaskLo returns the low half of m.
func UnpackMaskLo[H Count, N Doubled[H]](m Mask[N]) Mask[H] {
	lo, _ := splitMask(m.reg(), lanesOf[H]())
	return Mask[H]{r: lo}
}

// UnpackMaskHi returns the high half of m.
func UnpackMaskHi[H Count, N Doubled[H]](m Mask[N]) Mask[H] {
	_, hi := splitMask(m.reg(), lanesOf[H]())
	return Mask[H]{r: hi}
}
