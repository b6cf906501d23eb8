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

import "math"

// Every binary operation comes in four call shapes generated from one op
// code:
//
//	X(a, b)                  op(a, b)
//	MaskedX(m, a, b)         op(a, b) where m is set, a elsewhere
//	XScalar(a, s)            op(a, Set(s))
//	MaskedXScalar(m, a, s)   op(a, Set(s)) where m is set, a elsewhere
//
// Masked forms merge: unselected lanes keep the first operand.

func binary[T Lanes, N Count](op BinaryOp, a, b Vec[T, N]) Vec[T, N] {
	return wrap[T, N](a.reg().binary(op, b.reg()))
}

func unary[T Lanes, N Count](op UnaryOp, v Vec[T, N]) Vec[T, N] {
	return wrap[T, N](v.reg().unary(op))
}

// masked keeps the lanes of a where m is clear and takes r elsewhere.
func masked[T Lanes, N Count](m Mask[N], a, r Vec[T, N]) Vec[T, N] {
	return wrap[T, N](a.reg().blend(m.reg(), r.reg()))
}

// Add performs element-wise addition. Integer lanes wrap.
func Add[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpAdd, a, b) }

// MaskedAdd adds where m is set and keeps a elsewhere.
func MaskedAdd[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Add(a, b))
}

// AddScalar adds s to every lane.
func AddScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Add(a, Set[T, N](s)) }

// MaskedAddScalar adds s where m is set and keeps a elsewhere.
func MaskedAddScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedAdd(m, a, Set[T, N](s))
}

// Sub performs element-wise subtraction. Integer lanes wrap.
func Sub[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpSub, a, b) }

// MaskedSub subtracts where m is set and keeps a elsewhere.
func MaskedSub[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Sub(a, b))
}

// SubScalar subtracts s from every lane.
func SubScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Sub(a, Set[T, N](s)) }

// MaskedSubScalar subtracts s where m is set and keeps a elsewhere.
func MaskedSubScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedSub(m, a, Set[T, N](s))
}

// Mul performs element-wise multiplication. Integer lanes keep the low bits.
func Mul[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpMul, a, b) }

// MaskedMul multiplies where m is set and keeps a elsewhere.
func MaskedMul[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Mul(a, b))
}

// MulScalar multiplies every lane by s.
func MulScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Mul(a, Set[T, N](s)) }

// MaskedMulScalar multiplies by s where m is set and keeps a elsewhere.
func MaskedMulScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedMul(m, a, Set[T, N](s))
}

// Div performs element-wise division. Integer division by zero panics,
// as it does in Go.
func Div[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpDiv, a, b) }

// MaskedDiv divides where m is set and keeps a elsewhere. Divisors of
// unselected lanes are never used, so they may be zero.
func MaskedDiv[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	safe := IfThenElse(m, b, Set[T, N](1))
	return masked(m, a, Div(a, safe))
}

// DivScalar divides every lane by s.
func DivScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Div(a, Set[T, N](s)) }

// MaskedDivScalar divides by s where m is set and keeps a elsewhere.
func MaskedDivScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedDiv(m, a, Set[T, N](s))
}

// Min returns the element-wise minimum.
func Min[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpMin, a, b) }

// MaskedMin takes the minimum where m is set and keeps a elsewhere.
func MaskedMin[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Min(a, b))
}

// MinScalar returns min(a[i], s).
func MinScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Min(a, Set[T, N](s)) }

// MaskedMinScalar takes min(a[i], s) where m is set and keeps a elsewhere.
func MaskedMinScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedMin(m, a, Set[T, N](s))
}

// Max returns the element-wise maximum.
func Max[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpMax, a, b) }

// MaskedMax takes the maximum where m is set and keeps a elsewhere.
func MaskedMax[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Max(a, b))
}

// MaxScalar returns max(a[i], s).
func MaxScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Max(a, Set[T, N](s)) }

// MaskedMaxScalar takes max(a[i], s) where m is set and keeps a elsewhere.
func MaskedMaxScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedMax(m, a, Set[T, N](s))
}

// And performs bitwise AND. Float lanes operate on their bit patterns.
func And[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpAnd, a, b) }

// MaskedAnd computes a & b where m is set and keeps a elsewhere.
func MaskedAnd[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, And(a, b))
}

// AndScalar computes a[i] & s.
func AndScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return And(a, Set[T, N](s)) }

// MaskedAndScalar computes a[i] & s where m is set and keeps a elsewhere.
func MaskedAndScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedAnd(m, a, Set[T, N](s))
}

// Or performs bitwise OR. Float lanes operate on their bit patterns.
func Or[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpOr, a, b) }

// MaskedOr computes a | b where m is set and keeps a elsewhere.
func MaskedOr[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Or(a, b))
}

// OrScalar computes a[i] | s.
func OrScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Or(a, Set[T, N](s)) }

// MaskedOrScalar computes a[i] | s where m is set and keeps a elsewhere.
func MaskedOrScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedOr(m, a, Set[T, N](s))
}

// Xor performs bitwise XOR. Float lanes operate on their bit patterns.
func Xor[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpXor, a, b) }

// MaskedXor computes a ^ b where m is set and keeps a elsewhere.
func MaskedXor[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, Xor(a, b))
}

// XorScalar computes a[i] ^ s.
func XorScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] { return Xor(a, Set[T, N](s)) }

// MaskedXorScalar computes a[i] ^ s where m is set and keeps a elsewhere.
func MaskedXorScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedXor(m, a, Set[T, N](s))
}

// AndNot computes (^a) & b.
func AndNot[T Lanes, N Count](a, b Vec[T, N]) Vec[T, N] { return binary(OpAndNot, a, b) }

// MaskedAndNot computes (^a) & b where m is set and keeps a elsewhere.
func MaskedAndNot[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, AndNot(a, b))
}

// AndNotScalar computes (^a[i]) & s.
func AndNotScalar[T Lanes, N Count](a Vec[T, N], s T) Vec[T, N] {
	return AndNot(a, Set[T, N](s))
}

// MaskedAndNotScalar computes (^a[i]) & s where m is set and keeps a
// elsewhere.
func MaskedAndNotScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Vec[T, N] {
	return MaskedAndNot(m, a, Set[T, N](s))
}

// Neg negates every lane. Integer lanes wrap.
func Neg[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpNeg, v) }

// MaskedNeg negates where m is set and keeps v elsewhere.
func MaskedNeg[T Lanes, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Neg(v))
}

// Abs returns the absolute value of every lane. The minimum signed integer
// maps to itself; float lanes have their sign bit cleared.
func Abs[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpAbs, v) }

// MaskedAbs takes the absolute value where m is set and keeps v elsewhere.
func MaskedAbs[T Lanes, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Abs(v))
}

// Not inverts every bit.
func Not[T Lanes, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpNot, v) }

// MaskedNot inverts the bits where m is set and keeps v elsewhere.
func MaskedNot[T Lanes, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Not(v))
}

// Sqrt computes the element-wise square root.
func Sqrt[T Floats, N Count](v Vec[T, N]) Vec[T, N] { return unary(OpSqrt, v) }

// MaskedSqrt takes the square root where m is set and keeps v elsewhere.
func MaskedSqrt[T Floats, N Count](m Mask[N], v Vec[T, N]) Vec[T, N] {
	return masked(m, v, Sqrt(v))
}

// FMA computes a*b + c with a single rounding.
func FMA[T Floats, N Count](a, b, c Vec[T, N]) Vec[T, N] {
	ra, rb, rc := a.reg(), b.reg(), c.reg()
	out := make([]T, lanesOf[N]())
	for i := range out {
		x, y, z := ra.extract(i), rb.extract(i), rc.extract(i)
		switch any(x).(type) {
		case float32:
			out[i] = T(fma32(float32(x), float32(y), float32(z)))
		default:
			out[i] = T(math.FMA(float64(x), float64(y), float64(z)))
		}
	}
	return newVec[T, N](out)
}

// fma32 rounds x*y + z to float32 once. The product is exact in float64;
// the sum is rounded to odd in float64 so the final conversion cannot hit
// a tie that a second rounding created.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	c := float64(z)
	s := p + c
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bb := s - p
	e := (p - (s - bb)) + (c - bb)
	if e != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
	}
	return float32(s)
}

// MaskedFMA computes a*b + c where m is set and keeps a elsewhere.
func MaskedFMA[T Floats, N Count](m Mask[N], a, b, c Vec[T, N]) Vec[T, N] {
	return masked(m, a, FMA(a, b, c))
}

// MulAdd computes a*b + c with two roundings, using the backend's multiply
// and add kernels.
func MulAdd[T Lanes, N Count](a, b, c Vec[T, N]) Vec[T, N] {
	return Add(Mul(a, b), c)
}

// Blend takes lanes of b where m is set and lanes of a elsewhere.
func Blend[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Vec[T, N] {
	return masked(m, a, b)
}

// IfThenElse selects yes where m is set and no elsewhere.
func IfThenElse[T Lanes, N Count](m Mask[N], yes, no Vec[T, N]) Vec[T, N] {
	return masked(m, no, yes)
}

// IfThenElseZero selects yes where m is set and zero elsewhere.
func IfThenElseZero[T Lanes, N Count](m Mask[N], yes Vec[T, N]) Vec[T, N] {
	return masked(m, Zero[T, N](), yes)
}

// IfThenZeroElse selects zero where m is set and no elsewhere.
func IfThenZeroElse[T Lanes, N Count](m Mask[N], no Vec[T, N]) Vec[T, N] {
	return masked(m, no, Zero[T, N]())
}

// ZeroIfNegative replaces negative lanes with zero.
func ZeroIfNegative[T Lanes, N Count](v Vec[T, N]) Vec[T, N] {
	return IfThenZeroElse(LessThanScalar(v, 0), v)
}
