//go:build amd64 && goexperiment.simd

package avx2

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyvec/hwy"
)

func useAVX2(t *testing.T) {
	t.Helper()
	if !hwy.HasAVX2() {
		t.Skip("AVX2 not available")
	}
	require.NoError(t, hwy.SelectBackend(Name))
	t.Cleanup(func() { _ = hwy.SelectBackend("auto") })
}

func TestTraits(t *testing.T) {
	useAVX2(t)
	assert.Equal(t, hwy.Native, hwy.TraitsOf[float32, hwy.N8]().Repr)
	assert.Equal(t, hwy.Decomposed, hwy.TraitsOf[float32, hwy.N16]().Repr)
	assert.True(t, hwy.TraitsOf[float64, hwy.N8]().Accelerated)
	assert.Equal(t, hwy.Emulated, hwy.TraitsOf[uint8, hwy.N32]().Repr)
	assert.ErrorIs(t, Register(), hwy.ErrDuplicateBackend)
}

func TestFloat32MatchesEmulation(t *testing.T) {
	useAVX2(t)
	r := rand.New(rand.NewPCG(3, 4))
	x := make([]float32, 16)
	y := make([]float32, 16)
	for i := range x {
		x[i] = float32(r.NormFloat64() * 100)
		y[i] = float32(r.NormFloat64() * 100)
	}
	x[3], y[5], y[7] = float32(math.NaN()), float32(math.Inf(1)), x[7]

	run := func() [][]float32 {
		a, b := hwy.Load[float32, hwy.N16](x), hwy.Load[float32, hwy.N16](y)
		return [][]float32{
			hwy.Add(a, b).Lanes(),
			hwy.Mul(a, b).Lanes(),
			hwy.Div(a, b).Lanes(),
			hwy.Sqrt(hwy.Abs(a)).Lanes(),
			hwy.Round(a).Lanes(),
			hwy.Floor(a).Lanes(),
			hwy.IfThenElseZero(hwy.LessThan(a, b), a).Lanes(),
			hwy.IfThenElseZero(hwy.Equal(a, b), a).Lanes(),
			hwy.IfThenElseZero(hwy.GreaterEqual(a, b), b).Lanes(),
		}
	}
	got := run()
	require.NoError(t, hwy.SelectBackend(""))
	want := run()
	require.Len(t, got, len(want))
	for i := range want {
		for j := range want[i] {
			w, g := want[i][j], got[i][j]
			if math.IsNaN(float64(w)) {
				assert.True(t, math.IsNaN(float64(g)), "op %d lane %d", i, j)
				continue
			}
			assert.Equal(t, math.Float32bits(w), math.Float32bits(g), "op %d lane %d", i, j)
		}
	}
}

func TestInt32(t *testing.T) {
	useAVX2(t)
	a := hwy.FromArray8([8]int32{1, -2, 3, math.MaxInt32, 5, -6, 7, 0})
	b := hwy.Set[int32, hwy.N8](1)
	assert.Equal(t, []int32{2, -1, 4, math.MinInt32, 6, -5, 8, 1}, hwy.Add(a, b).Lanes())
	assert.Equal(t, []int32{1, -2, 1, 1, 1, -6, 1, 0}, hwy.Min(a, b).Lanes())
	assert.Equal(t, []int32{0, 1, 0, 0, 0, 1, 0, 1}, hwy.AndNot(a, b).Lanes())
	assert.Equal(t, uint64(0b1010_0010), hwy.LessThan(a, b).Bits())
	assert.Equal(t, uint64(0b0101_1100), hwy.GreaterThan(a, b).Bits())
	assert.Equal(t, []int32{1, -2, 3, math.MaxInt32, 5, -6, 7, 0}, hwy.Mul(a, b).Lanes())
	assert.Equal(t, []int32{1, 4, 9, 1, 25, 36, 49, 0}, hwy.Mul(a, a).Lanes())
	assert.True(t, hwy.Add(a, b).IsAccelerated())
	assert.True(t, hwy.TraitsOf[int32, hwy.N8]().Accelerated)
	assert.False(t, hwy.TraitsOf[int64, hwy.N4]().Accelerated)
}
