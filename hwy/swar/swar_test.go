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

package swar

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyvec/hwy"
)

func useSWAR(t *testing.T) {
	t.Helper()
	require.NoError(t, hwy.SelectBackend(Name))
	t.Cleanup(func() { _ = hwy.SelectBackend("auto") })
}

func TestRegistered(t *testing.T) {
	names := []string{}
	for _, b := range hwy.Backends() {
		names = append(names, b.Name)
	}
	assert.Contains(t, names, Name)
	assert.ErrorIs(t, Register(), hwy.ErrDuplicateBackend)

	useSWAR(t)
	tr := hwy.TraitsOf[uint8, hwy.N16]()
	assert.Equal(t, hwy.Native, tr.Repr)
	assert.Equal(t, Name, tr.Backend)
	// Multiply of 8-bit lanes runs the scalar loop.
	assert.False(t, tr.Accelerated)

	wide := hwy.TraitsOf[int32, hwy.N16]()
	assert.Equal(t, hwy.Decomposed, wide.Repr)
	assert.False(t, wide.Accelerated)

	assert.True(t, hwy.TraitsOf[uint64, hwy.N2]().Accelerated)
	assert.True(t, hwy.TraitsOf[int64, hwy.N8]().Accelerated)
	assert.True(t, hwy.Set[int64, hwy.N4](3).IsAccelerated())
}

func TestFloatShapesNotAccelerated(t *testing.T) {
	useSWAR(t)
	for _, tr := range []hwy.Trait{
		hwy.TraitsOf[float32, hwy.N4](),
		hwy.TraitsOf[float32, hwy.N2](),
		hwy.TraitsOf[float64, hwy.N2](),
		hwy.TraitsOf[float64, hwy.N8](),
	} {
		assert.NotEqual(t, hwy.Emulated, tr.Repr, tr.Shape.String())
		assert.False(t, tr.Accelerated, tr.Shape.String())
	}
	assert.False(t, hwy.Set[float32, hwy.N4](1).IsAccelerated())
}

func TestLayout(t *testing.T) {
	l := layoutOf[uint16]()
	assert.Equal(t, 4, l.perWord)
	assert.Equal(t, uint64(0x8000_8000_8000_8000), l.high)
	assert.Equal(t, uint64(0xFFFF), l.lane)

	a := []int16{-1, 2, -3, 4, 5, 6, 7, -8}
	w := load(a, l)
	assert.Equal(t, uint64(0x0004_FFFD_0002_FFFF), w.lo)
	out := make([]int16, len(a))
	store(out, w, l)
	assert.Equal(t, a, out)
}

func TestAddSubCarries(t *testing.T) {
	useSWAR(t)
	a := hwy.FromArray16([16]uint8{255, 0, 128, 1, 255, 255, 0, 0, 7, 8, 9, 10, 250, 251, 252, 253})
	b := hwy.Set[uint8, hwy.N16](1)
	assert.Equal(t,
		[]uint8{0, 1, 129, 2, 0, 0, 1, 1, 8, 9, 10, 11, 251, 252, 253, 254},
		hwy.Add(a, b).Lanes())
	assert.Equal(t,
		[]uint8{254, 255, 127, 0, 254, 254, 255, 255, 6, 7, 8, 9, 249, 250, 251, 252},
		hwy.Sub(a, b).Lanes())

	s := hwy.FromArray2([2]int64{-1, 1 << 62})
	assert.Equal(t, []int64{-2, math.MinInt64}, hwy.Add(s, s).Lanes())
}

func randomLanes[T hwy.Integers](r *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = hwy.LaneFromBits[T](r.Uint64())
	}
	return out
}

// checkAgainstEmulation computes every swar-backed operation on random
// inputs with the backend and with pure emulation and compares the lanes.
func checkAgainstEmulation[T hwy.Integers, N hwy.Count](t *testing.T, r *rand.Rand) {
	t.Helper()
	n := hwy.ShapeOf[T, N]().Lanes
	for range 50 {
		x, y := randomLanes[T](r, n), randomLanes[T](r, n)
		// Force some equal lanes.
		for i := 0; i < n; i += 3 {
			y[i] = x[i]
		}
		run := func() [][]T {
			a, b := hwy.Load[T, N](x), hwy.Load[T, N](y)
			return [][]T{
				hwy.Add(a, b).Lanes(),
				hwy.Sub(a, b).Lanes(),
				hwy.Mul(a, b).Lanes(),
				hwy.And(a, b).Lanes(),
				hwy.Or(a, b).Lanes(),
				hwy.Xor(a, b).Lanes(),
				hwy.AndNot(a, b).Lanes(),
				hwy.Not(a).Lanes(),
				hwy.Neg(a).Lanes(),
				hwy.IfThenElseZero(hwy.Equal(a, b), a).Lanes(),
				hwy.IfThenElseZero(hwy.NotEqual(a, b), b).Lanes(),
			}
		}
		require.NoError(t, hwy.SelectBackend(Name))
		got := run()
		require.NoError(t, hwy.SelectBackend(""))
		want := run()
		require.Equal(t, want, got, "shape %v, inputs %v %v", hwy.ShapeOf[T, N](), x, y)
	}
}

func TestMatchesEmulation(t *testing.T) {
	t.Cleanup(func() { _ = hwy.SelectBackend("auto") })
	r := rand.New(rand.NewPCG(1, 2))
	t.Run("u8x16", func(t *testing.T) { checkAgainstEmulation[uint8, hwy.N16](t, r) })
	t.Run("u8x4", func(t *testing.T) { checkAgainstEmulation[uint8, hwy.N4](t, r) })
	t.Run("i8x16", func(t *testing.T) { checkAgainstEmulation[int8, hwy.N16](t, r) })
	t.Run("u16x8", func(t *testing.T) { checkAgainstEmulation[uint16, hwy.N8](t, r) })
	t.Run("i16x8", func(t *testing.T) { checkAgainstEmulation[int16, hwy.N8](t, r) })
	t.Run("i16x2", func(t *testing.T) { checkAgainstEmulation[int16, hwy.N2](t, r) })
	t.Run("u32x4", func(t *testing.T) { checkAgainstEmulation[uint32, hwy.N4](t, r) })
	t.Run("i32x4", func(t *testing.T) { checkAgainstEmulation[int32, hwy.N4](t, r) })
	t.Run("i32x16", func(t *testing.T) { checkAgainstEmulation[int32, hwy.N16](t, r) })
	t.Run("u64x2", func(t *testing.T) { checkAgainstEmulation[uint64, hwy.N2](t, r) })
	t.Run("i64x1", func(t *testing.T) { checkAgainstEmulation[int64, hwy.N1](t, r) })
}

func TestFloatBitwise(t *testing.T) {
	useSWAR(t)
	a := hwy.FromArray4([4]float32{-1, 2, -3, 4})
	signs := hwy.Set[float32, hwy.N4](float32(math.Copysign(0, -1)))
	assert.Equal(t, []float32{1, 2, 3, 4}, hwy.AndNot(signs, a).Lanes())
	assert.Equal(t, []float32{-1, -2, -3, -4}, hwy.Or(a, signs).Lanes())
	assert.Equal(t, []float32{1, -2, 3, -4}, hwy.Xor(a, signs).Lanes())

	// Arithmetic on floats still goes through the reference loop.
	assert.Equal(t, []float32{-2, 4, -6, 8}, hwy.Add(a, a).Lanes())
	assert.Equal(t, uint64(0b1111), hwy.Equal(a, a).Bits())
}
