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

package algo

import "github.com/ajroetker/hwyvec/hwy"

// Predicate tests values one lane at a time or a whole vector at once. The
// two methods must agree.
type Predicate[T hwy.Lanes, N hwy.Count] interface {
	// Test reports whether a single value satisfies the predicate.
	Test(value T) bool
	// Apply returns the mask of lanes of v that satisfy the predicate.
	Apply(v hwy.Vec[T, N]) hwy.Mask[N]
}

// GreaterThan matches values above Threshold.
type GreaterThan[T hwy.Lanes, N hwy.Count] struct {
	Threshold T
}

func (p GreaterThan[T, N]) Test(value T) bool { return value > p.Threshold }

func (p GreaterThan[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.GreaterThan(v, hwy.Set[T, N](p.Threshold))
}

// LessThan matches values below Threshold.
type LessThan[T hwy.Lanes, N hwy.Count] struct {
	Threshold T
}

func (p LessThan[T, N]) Test(value T) bool { return value < p.Threshold }

func (p LessThan[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.LessThan(v, hwy.Set[T, N](p.Threshold))
}

// GreaterEqual matches values at or above Threshold.
type GreaterEqual[T hwy.Lanes, N hwy.Count] struct {
	Threshold T
}

func (p GreaterEqual[T, N]) Test(value T) bool { return value >= p.Threshold }

func (p GreaterEqual[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.GreaterEqual(v, hwy.Set[T, N](p.Threshold))
}

// LessEqual matches values at or below Threshold.
type LessEqual[T hwy.Lanes, N hwy.Count] struct {
	Threshold T
}

func (p LessEqual[T, N]) Test(value T) bool { return value <= p.Threshold }

func (p LessEqual[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.LessEqual(v, hwy.Set[T, N](p.Threshold))
}

// Equal matches values equal to Value. NaN never matches.
type Equal[T hwy.Lanes, N hwy.Count] struct {
	Value T
}

func (p Equal[T, N]) Test(value T) bool { return value == p.Value }

func (p Equal[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.Equal(v, hwy.Set[T, N](p.Value))
}

// NotEqual matches values different from Value.
type NotEqual[T hwy.Lanes, N hwy.Count] struct {
	Value T
}

func (p NotEqual[T, N]) Test(value T) bool { return value != p.Value }

func (p NotEqual[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.NotEqual(v, hwy.Set[T, N](p.Value))
}

// InRange matches values in the closed interval [Min, Max].
type InRange[T hwy.Lanes, N hwy.Count] struct {
	Min, Max T
}

func (p InRange[T, N]) Test(value T) bool { return value >= p.Min && value <= p.Max }

func (p InRange[T, N]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] {
	return hwy.MaskAnd(
		hwy.GreaterEqual(v, hwy.Set[T, N](p.Min)),
		hwy.LessEqual(v, hwy.Set[T, N](p.Max)),
	)
}

// Not inverts another predicate.
type Not[T hwy.Lanes, N hwy.Count, P Predicate[T, N]] struct {
	Pred P
}

func (p Not[T, N, P]) Test(value T) bool { return !p.Pred.Test(value) }

func (p Not[T, N, P]) Apply(v hwy.Vec[T, N]) hwy.Mask[N] { return hwy.MaskNot(p.Pred.Apply(v)) }
