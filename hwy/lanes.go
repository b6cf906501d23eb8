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
	"math"
	"math/bits"
)

// This file holds the per-lane scalar semantics of every operation. The
// emulation register applies these functions lane by lane; backend kernels
// must produce identical results for every input.

// BinaryOp identifies a lane-wise operation with two vector operands.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMin
	OpMax
	OpAnd
	OpOr
	OpXor
	// OpAndNot computes ^a & b.
	OpAndNot
	OpSaturatedAdd
	OpSaturatedSub
	OpAbsDiff
	// OpShiftLeft and OpShiftRight read the second operand as an unsigned
	// shift count. Right shifts are arithmetic for signed lanes.
	OpShiftLeft
	OpShiftRight
	numBinaryOps
)

var binaryOpNames = [numBinaryOps]string{
	"add", "sub", "mul", "div", "min", "max", "and", "or", "xor", "andnot",
	"saturated-add", "saturated-sub", "absdiff", "shl", "shr",
}

func (op BinaryOp) String() string {
	if op < numBinaryOps {
		return binaryOpNames[op]
	}
	return "unknown"
}

// UnaryOp identifies a lane-wise operation with one vector operand.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpAbs
	OpNot
	OpSqrt
	OpFloor
	OpCeil
	OpTrunc
	// OpRound rounds half to even.
	OpRound
	OpPopCount
	numUnaryOps
)

var unaryOpNames = [numUnaryOps]string{
	"neg", "abs", "not", "sqrt", "floor", "ceil", "trunc", "round", "popcount",
}

func (op UnaryOp) String() string {
	if op < numUnaryOps {
		return unaryOpNames[op]
	}
	return "unknown"
}

// CompareOp identifies a lane-wise comparison.
type CompareOp uint8

const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	numCompareOps
)

var compareOpNames = [numCompareOps]string{"eq", "ne", "lt", "le", "gt", "ge"}

func (op CompareOp) String() string {
	if op < numCompareOps {
		return compareOpNames[op]
	}
	return "unknown"
}

func applyBinary[T Lanes](op BinaryOp, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMin:
		if b < a {
			return b
		}
		return a
	case OpMax:
		if b > a {
			return b
		}
		return a
	case OpAnd:
		return LaneFromBits[T](LaneBits(a) & LaneBits(b))
	case OpOr:
		return LaneFromBits[T](LaneBits(a) | LaneBits(b))
	case OpXor:
		return LaneFromBits[T](LaneBits(a) ^ LaneBits(b))
	case OpAndNot:
		return LaneFromBits[T](^LaneBits(a) & LaneBits(b))
	case OpSaturatedAdd:
		return saturatedAdd(a, b)
	case OpSaturatedSub:
		return saturatedSub(a, b)
	case OpAbsDiff:
		if a > b {
			return a - b
		}
		return b - a
	case OpShiftLeft:
		return shiftLeft(a, LaneBits(b))
	case OpShiftRight:
		return shiftRight(a, LaneBits(b))
	}
	return a
}

func applyUnary[T Lanes](op UnaryOp, a T) T {
	switch op {
	case OpNeg:
		return -a
	case OpAbs:
		k, n := kindOf[T]()
		if k == Float {
			// Clear the sign bit so -0 and -NaN come out positive.
			return LaneFromBits[T](LaneBits(a) &^ (1 << (n - 1)))
		}
		if a < 0 {
			return -a
		}
		return a
	case OpNot:
		return LaneFromBits[T](^LaneBits(a))
	case OpSqrt:
		return T(math.Sqrt(float64(a)))
	case OpFloor:
		return T(math.Floor(float64(a)))
	case OpCeil:
		return T(math.Ceil(float64(a)))
	case OpTrunc:
		return T(math.Trunc(float64(a)))
	case OpRound:
		return T(math.RoundToEven(float64(a)))
	case OpPopCount:
		return T(bits.OnesCount64(LaneBits(a)))
	}
	return a
}

func applyCompare[T Lanes](op CompareOp, a, b T) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	case OpGreater:
		return a > b
	case OpGreaterEqual:
		return a >= b
	}
	return false
}

// identity returns the value a reduction over no selected lanes yields.
func identity[T Lanes](op BinaryOp) T {
	lo, hi := laneLimits[T]()
	switch op {
	case OpMul:
		return 1
	case OpAnd:
		return LaneFromBits[T](math.MaxUint64)
	case OpMin:
		return hi
	case OpMax:
		return lo
	}
	return 0
}

func saturatedAdd[T Lanes](a, b T) T {
	k, _ := kindOf[T]()
	lo, hi := laneLimits[T]()
	s := a + b
	switch k {
	case Unsigned:
		if s < a {
			return hi
		}
	case Signed:
		if b > 0 && s < a {
			return hi
		}
		if b < 0 && s > a {
			return lo
		}
	}
	return s
}

func saturatedSub[T Lanes](a, b T) T {
	k, _ := kindOf[T]()
	lo, hi := laneLimits[T]()
	s := a - b
	switch k {
	case Unsigned:
		if b > a {
			return 0
		}
	case Signed:
		if b < 0 && s < a {
			return hi
		}
		if b > 0 && s > a {
			return lo
		}
	}
	return s
}

func shiftLeft[T Lanes](a T, n uint64) T {
	_, width := kindOf[T]()
	if n >= uint64(width) {
		return 0
	}
	return LaneFromBits[T](LaneBits(a) << n)
}

func shiftRight[T Lanes](a T, n uint64) T {
	k, width := kindOf[T]()
	u := LaneBits(a)
	if k == Signed {
		s := int64(u<<(64-width)) >> (64 - width)
		if n >= uint64(width) {
			n = uint64(width) - 1
		}
		return LaneFromBits[T](uint64(s >> n))
	}
	if n >= uint64(width) {
		return 0
	}
	return LaneFromBits[T](u >> n)
}
