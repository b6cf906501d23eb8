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

//go:build amd64 && goexperiment.simd

package avx2

import (
	"fmt"
	"simd/archsimd"

	"github.com/ajroetker/hwyvec/hwy"
)

func init() {
	if err := Register(); err != nil {
		panic(err)
	}
}

// Register adds the backend and its kernels to the hwy registry.
func Register() error {
	if err := hwy.Register(hwy.Backend{
		Name:      Name,
		Level:     hwy.DispatchAVX2,
		Width:     Width,
		Priority:  20,
		Available: hwy.HasAVX2,
	}); err != nil {
		return err
	}
	if err := hwy.RegisterKernels(Name, 8, float32Kernels()); err != nil {
		return fmt.Errorf("avx2: %w", err)
	}
	if err := hwy.RegisterKernels(Name, 4, float64Kernels()); err != nil {
		return fmt.Errorf("avx2: %w", err)
	}
	if err := hwy.RegisterKernels(Name, 8, int32Kernels()); err != nil {
		return fmt.Errorf("avx2: %w", err)
	}
	if err := hwy.RegisterKernels(Name, 4, int64Kernels()); err != nil {
		return fmt.Errorf("avx2: %w", err)
	}
	return nil
}

// Min, Max and NotEqual are left to the scalar loop: the hardware forms
// disagree with it on NaN inputs.
func float32Kernels() *hwy.Kernels[float32] {
	load := archsimd.LoadFloat32x8Slice
	bin := func(f func(a, b archsimd.Float32x8) archsimd.Float32x8) func(dst, a, b []float32) {
		return func(dst, a, b []float32) { f(load(a), load(b)).StoreSlice(dst) }
	}
	un := func(f func(a archsimd.Float32x8) archsimd.Float32x8) func(dst, a []float32) {
		return func(dst, a []float32) { f(load(a)).StoreSlice(dst) }
	}
	cmp := func(f func(a, b archsimd.Float32x8) archsimd.Mask32x8) func(a, b []float32) uint64 {
		return func(a, b []float32) uint64 { return uint64(f(load(a), load(b)).ToBits()) }
	}

	k := &hwy.Kernels[float32]{}
	k.Binary[hwy.OpAdd] = bin(archsimd.Float32x8.Add)
	k.Binary[hwy.OpSub] = bin(archsimd.Float32x8.Sub)
	k.Binary[hwy.OpMul] = bin(archsimd.Float32x8.Mul)
	k.Binary[hwy.OpDiv] = bin(archsimd.Float32x8.Div)
	k.Unary[hwy.OpSqrt] = un(archsimd.Float32x8.Sqrt)
	k.Unary[hwy.OpFloor] = un(archsimd.Float32x8.Floor)
	k.Unary[hwy.OpCeil] = un(archsimd.Float32x8.Ceil)
	k.Unary[hwy.OpTrunc] = un(archsimd.Float32x8.Trunc)
	k.Unary[hwy.OpRound] = un(archsimd.Float32x8.RoundToEven)
	k.Compare[hwy.OpEqual] = cmp(archsimd.Float32x8.Equal)
	k.Compare[hwy.OpLess] = cmp(archsimd.Float32x8.Less)
	k.Compare[hwy.OpLessEqual] = cmp(archsimd.Float32x8.LessEqual)
	k.Compare[hwy.OpGreater] = cmp(archsimd.Float32x8.Greater)
	k.Compare[hwy.OpGreaterEqual] = cmp(archsimd.Float32x8.GreaterEqual)
	return k
}

func float64Kernels() *hwy.Kernels[float64] {
	load := archsimd.LoadFloat64x4Slice
	bin := func(f func(a, b archsimd.Float64x4) archsimd.Float64x4) func(dst, a, b []float64) {
		return func(dst, a, b []float64) { f(load(a), load(b)).StoreSlice(dst) }
	}
	un := func(f func(a archsimd.Float64x4) archsimd.Float64x4) func(dst, a []float64) {
		return func(dst, a []float64) { f(load(a)).StoreSlice(dst) }
	}
	cmp := func(f func(a, b archsimd.Float64x4) archsimd.Mask64x4) func(a, b []float64) uint64 {
		return func(a, b []float64) uint64 { return uint64(f(load(a), load(b)).ToBits()) }
	}

	k := &hwy.Kernels[float64]{}
	k.Binary[hwy.OpAdd] = bin(archsimd.Float64x4.Add)
	k.Binary[hwy.OpSub] = bin(archsimd.Float64x4.Sub)
	k.Binary[hwy.OpMul] = bin(archsimd.Float64x4.Mul)
	k.Binary[hwy.OpDiv] = bin(archsimd.Float64x4.Div)
	k.Unary[hwy.OpSqrt] = un(archsimd.Float64x4.Sqrt)
	k.Unary[hwy.OpFloor] = un(archsimd.Float64x4.Floor)
	k.Unary[hwy.OpCeil] = un(archsimd.Float64x4.Ceil)
	k.Unary[hwy.OpTrunc] = un(archsimd.Float64x4.Trunc)
	k.Unary[hwy.OpRound] = un(archsimd.Float64x4.RoundToEven)
	k.Compare[hwy.OpEqual] = cmp(archsimd.Float64x4.Equal)
	k.Compare[hwy.OpLess] = cmp(archsimd.Float64x4.Less)
	k.Compare[hwy.OpLessEqual] = cmp(archsimd.Float64x4.LessEqual)
	k.Compare[hwy.OpGreater] = cmp(archsimd.Float64x4.Greater)
	k.Compare[hwy.OpGreaterEqual] = cmp(archsimd.Float64x4.GreaterEqual)
	return k
}

func int32Kernels() *hwy.Kernels[int32] {
	load := archsimd.LoadInt32x8Slice
	bin := func(f func(a, b archsimd.Int32x8) archsimd.Int32x8) func(dst, a, b []int32) {
		return func(dst, a, b []int32) { f(load(a), load(b)).StoreSlice(dst) }
	}

	k := &hwy.Kernels[int32]{}
	k.Binary[hwy.OpAdd] = bin(archsimd.Int32x8.Add)
	k.Binary[hwy.OpSub] = bin(archsimd.Int32x8.Sub)
	k.Binary[hwy.OpMul] = bin(archsimd.Int32x8.Mul)
	k.Binary[hwy.OpMin] = bin(archsimd.Int32x8.Min)
	k.Binary[hwy.OpMax] = bin(archsimd.Int32x8.Max)
	k.Binary[hwy.OpAnd] = bin(archsimd.Int32x8.And)
	k.Binary[hwy.OpOr] = bin(archsimd.Int32x8.Or)
	k.Binary[hwy.OpXor] = bin(archsimd.Int32x8.Xor)
	// x.AndNot(y) is x &^ y; the hwy operation is ^a & b.
	k.Binary[hwy.OpAndNot] = bin(func(a, b archsimd.Int32x8) archsimd.Int32x8 { return b.AndNot(a) })
	k.Compare[hwy.OpEqual] = func(a, b []int32) uint64 {
		return uint64(load(a).Equal(load(b)).ToBits())
	}
	k.Compare[hwy.OpGreater] = func(a, b []int32) uint64 {
		return uint64(load(a).Greater(load(b)).ToBits())
	}
	k.Compare[hwy.OpLess] = func(a, b []int32) uint64 {
		return uint64(load(b).Greater(load(a)).ToBits())
	}
	return k
}

func int64Kernels() *hwy.Kernels[int64] {
	load := archsimd.LoadInt64x4Slice
	bin := func(f func(a, b archsimd.Int64x4) archsimd.Int64x4) func(dst, a, b []int64) {
		return func(dst, a, b []int64) { f(load(a), load(b)).StoreSlice(dst) }
	}

	// AVX2 has no 64-bit multiply, so this shape is Native but not
	// Accelerated.
	k := &hwy.Kernels[int64]{}
	k.Binary[hwy.OpAdd] = bin(archsimd.Int64x4.Add)
	k.Binary[hwy.OpSub] = bin(archsimd.Int64x4.Sub)
	k.Binary[hwy.OpAnd] = bin(archsimd.Int64x4.And)
	k.Binary[hwy.OpOr] = bin(archsimd.Int64x4.Or)
	k.Binary[hwy.OpXor] = bin(archsimd.Int64x4.Xor)
	k.Compare[hwy.OpEqual] = func(a, b []int64) uint64 {
		return uint64(load(a).Equal(load(b)).ToBits())
	}
	return k
}
