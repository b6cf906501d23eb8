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

// Compares return a Mask of the vector's lane count. Masked compares clear
// the unselected lanes: MaskedLessThan(m, a, b) == MaskAnd(m, LessThan(a, b)).

func compare[T Lanes, N Count](op CompareOp, a, b Vec[T, N]) Mask[N] {
	return Mask[N]{r: a.reg().compare(op, b.reg())}
}

func maskedCompare[T Lanes, N Count](op CompareOp, m Mask[N], a, b Vec[T, N]) Mask[N] {
	return MaskAnd(m, compare(op, a, b))
}

// Equal returns a == b per lane. NaN lanes compare unequal.
func Equal[T Lanes, N Count](a, b Vec[T, N]) Mask[N] { return compare(OpEqual, a, b) }

// EqualScalar returns a[i] == s.
func EqualScalar[T Lanes, N Count](a Vec[T, N], s T) Mask[N] {
	return Equal(a, Set[T, N](s))
}

// MaskedEqual returns a == b where m is set, false elsewhere.
func MaskedEqual[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Mask[N] {
	return maskedCompare(OpEqual, m, a, b)
}

// MaskedEqualScalar returns a[i] == s where m is set, false elsewhere.
func MaskedEqualScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Mask[N] {
	return maskedCompare(OpEqual, m, a, Set[T, N](s))
}

// NotEqual returns a != b per lane.
func NotEqual[T Lanes, N Count](a, b Vec[T, N]) Mask[N] { return compare(OpNotEqual, a, b) }

// NotEqualScalar returns a[i] != s.
func NotEqualScalar[T Lanes, N Count](a Vec[T, N], s T) Mask[N] {
	return NotEqual(a, Set[T, N](s))
}

// MaskedNotEqual returns a != b where m is set, false elsewhere.
func MaskedNotEqual[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Mask[N] {
	return maskedCompare(OpNotEqual, m, a, b)
}

// MaskedNotEqualScalar returns a[i] != s where m is set, false elsewhere.
func MaskedNotEqualScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Mask[N] {
	return maskedCompare(OpNotEqual, m, a, Set[T, N](s))
}

// LessThan returns a < b per lane.
func LessThan[T Lanes, N Count](a, b Vec[T, N]) Mask[N] { return compare(OpLess, a, b) }

// LessThanScalar returns a[i] < s.
func LessThanScalar[T Lanes, N Count](a Vec[T, N], s T) Mask[N] {
	return LessThan(a, Set[T, N](s))
}

// MaskedLessThan returns a < b where m is set, false elsewhere.
func MaskedLessThan[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Mask[N] {
	return maskedCompare(OpLess, m, a, b)
}

// MaskedLessThanScalar returns a[i] < s where m is set, false elsewhere.
func MaskedLessThanScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Mask[N] {
	return maskedCompare(OpLess, m, a, Set[T, N](s))
}

// LessEqual returns a <= b per lane.
func LessEqual[T Lanes, N Count](a, b Vec[T, N]) Mask[N] { return compare(OpLessEqual, a, b) }

// LessEqualScalar returns a[i] <= s.
func LessEqualScalar[T Lanes, N Count](a Vec[T, N], s T) Mask[N] {
	return LessEqual(a, Set[T, N](s))
}

// MaskedLessEqual returns a <= b where m is set, false elsewhere.
func MaskedLessEqual[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Mask[N] {
	return maskedCompare(OpLessEqual, m, a, b)
}

// MaskedLessEqualScalar returns a[i] <= s where m is set, false elsewhere.
func MaskedLessEqualScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Mask[N] {
	return maskedCompare(OpLessEqual, m, a, Set[T, N](s))
}

// GreaterThan returns a > b per lane.
func GreaterThan[T Lanes, N Count](a, b Vec[T, N]) Mask[N] { return compare(OpGreater, a, b) }

// GreaterThanScalar returns a[i] > s.
func GreaterThanScalar[T Lanes, N Count](a Vec[T, N], s T) Mask[N] {
	return GreaterThan(a, Set[T, N](s))
}

// MaskedGreaterThan returns a > b where m is set, false elsewhere.
func MaskedGreaterThan[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Mask[N] {
	return maskedCompare(OpGreater, m, a, b)
}

// MaskedGreaterThanScalar returns a[i] > s where m is set, false elsewhere.
func MaskedGreaterThanScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Mask[N] {
	return maskedCompare(OpGreater, m, a, Set[T, N](s))
}

// GreaterEqual returns a >= b per lane.
func GreaterEqual[T Lanes, N Count](a, b Vec[T, N]) Mask[N] {
	return compare(OpGreaterEqual, a, b)
}

// GreaterEqualScalar returns a[i] >= s.
func GreaterEqualScalar[T Lanes, N Count](a Vec[T, N], s T) Mask[N] {
	return GreaterEqual(a, Set[T, N](s))
}

// MaskedGreaterEqual returns a >= b where m is set, false elsewhere.
func MaskedGreaterEqual[T Lanes, N Count](m Mask[N], a, b Vec[T, N]) Mask[N] {
	return maskedCompare(OpGreaterEqual, m, a, b)
}

// MaskedGreaterEqualScalar returns a[i] >= s where m is set, false elsewhere.
func MaskedGreaterEqualScalar[T Lanes, N Count](m Mask[N], a Vec[T, N], s T) Mask[N] {
	return maskedCompare(OpGreaterEqual, m, a, Set[T, N](s))
}

// IsNaN returns a mask of the NaN lanes.
func IsNaN[T Floats, N Count](v Vec[T, N]) Mask[N] {
	return NotEqual(v, v)
}

// IsInf returns a mask of the infinite lanes. sign > 0 selects +Inf only,
// sign < 0 selects -Inf only and sign == 0 selects both.
func IsInf[T Floats, N Count](v Vec[T, N], sign int) Mask[N] {
	r := v.reg()
	var bits uint64
	for i := range r.lanes() {
		if math.IsInf(float64(r.extract(i)), sign) {
			bits |= 1 << i
		}
	}
	return MaskFromBits[N](bits)
}

// IsFinite returns a mask of the lanes that are neither NaN nor infinite.
func IsFinite[T Floats, N Count](v Vec[T, N]) Mask[N] {
	return LessThan(Abs(v), Set[T, N](T(math.Inf(1))))
}

// TestBit returns a mask of the lanes whose bit number bit is set.
func TestBit[T Integers, N Count](v Vec[T, N], bit int) Mask[N] {
	return NotEqualScalar(AndScalar(v, LaneFromBits[T](1<<uint(bit))), 0)
}
