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

// Reductions fold lanes in ascending index order, seeding the accumulator
// with the first selected lane. With no selected lane they return the
// identity of the operation: 0 for sums, 1 for products, all ones for AND,
// the type maximum for Min and the type minimum for Max (+Inf and -Inf for
// floats).

func reduce[T Lanes, N Count](op BinaryOp, v Vec[T, N], m maskRegister) T {
	acc, ok := v.reg().fold(op, 0, false, m)
	if !ok {
		return identity[T](op)
	}
	return acc
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes, N Count](v Vec[T, N]) T { return reduce(OpAdd, v, nil) }

// MaskedReduceSum returns the sum of the lanes selected by m.
func MaskedReduceSum[T Lanes, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpAdd, v, m.reg())
}

// ReduceMul returns the product of all lanes.
func ReduceMul[T Lanes, N Count](v Vec[T, N]) T { return reduce(OpMul, v, nil) }

// MaskedReduceMul returns the product of the lanes selected by m.
func MaskedReduceMul[T Lanes, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpMul, v, m.reg())
}

// ReduceMin returns the smallest lane.
func ReduceMin[T Lanes, N Count](v Vec[T, N]) T { return reduce(OpMin, v, nil) }

// MaskedReduceMin returns the smallest lane selected by m.
func MaskedReduceMin[T Lanes, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpMin, v, m.reg())
}

// ReduceMax returns the largest lane.
func ReduceMax[T Lanes, N Count](v Vec[T, N]) T { return reduce(OpMax, v, nil) }

// MaskedReduceMax returns the largest lane selected by m.
func MaskedReduceMax[T Lanes, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpMax, v, m.reg())
}

// ReduceAnd returns the bitwise AND of all lanes.
func ReduceAnd[T Integers, N Count](v Vec[T, N]) T { return reduce(OpAnd, v, nil) }

// MaskedReduceAnd returns the bitwise AND of the lanes selected by m.
func MaskedReduceAnd[T Integers, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpAnd, v, m.reg())
}

// ReduceOr returns the bitwise OR of all lanes.
func ReduceOr[T Integers, N Count](v Vec[T, N]) T { return reduce(OpOr, v, nil) }

// MaskedReduceOr returns the bitwise OR of the lanes selected by m.
func MaskedReduceOr[T Integers, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpOr, v, m.reg())
}

// ReduceXor returns the bitwise XOR of all lanes.
func ReduceXor[T Integers, N Count](v Vec[T, N]) T { return reduce(OpXor, v, nil) }

// MaskedReduceXor returns the bitwise XOR of the lanes selected by m.
func MaskedReduceXor[T Integers, N Count](m Mask[N], v Vec[T, N]) T {
	return reduce(OpXor, v, m.reg())
}
