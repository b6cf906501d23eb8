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

import (
	"slices"
	"testing"

	"github.com/ajroetker/hwyvec/hwy"
)

func scalarPrefixSum[T hwy.Lanes](data []T, carry T) []T {
	out := slices.Clone(data)
	for i := range out {
		carry += out[i]
		out[i] = carry
	}
	return out
}

func TestPrefixSum(t *testing.T) {
	for _, size := range []int{0, 1, 3, 4, 8, 13, 64, 100} {
		data := make([]int64, size)
		for i := range data {
			data[i] = int64(i%5) - 1
		}
		want := scalarPrefixSum(data, 0)
		PrefixSum[hwy.N4](data)
		if !slices.Equal(data, want) {
			t.Errorf("size %d: got %v, want %v", size, data, want)
		}
	}

	data := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	PrefixSum[hwy.N4](data)
	if want := []int64{1, 3, 6, 10, 15, 21, 28, 36}; !slices.Equal(data, want) {
		t.Errorf("got %v, want %v", data, want)
	}
}

func TestPrefixSumFloat32(t *testing.T) {
	data := []float32{0.5, 0.5, 1, 2, 4, 8, 16, 32, 64}
	PrefixSum[hwy.N8](data)
	want := []float32{0.5, 1, 2, 4, 8, 16, 32, 64, 128}
	if !slices.Equal(data, want) {
		t.Errorf("got %v, want %v", data, want)
	}
}

func TestDeltaDecode(t *testing.T) {
	data := []uint64{3, 2, 5, 1}
	DeltaDecode[hwy.N2](data, 10)
	if want := []uint64{13, 15, 20, 21}; !slices.Equal(data, want) {
		t.Errorf("got %v, want %v", data, want)
	}

	wrap := []uint8{200, 100, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	want := scalarPrefixSum(wrap, 50)
	DeltaDecode[hwy.N16](wrap, 50)
	if !slices.Equal(wrap, want) {
		t.Errorf("uint8 wrap: got %v, want %v", wrap, want)
	}
}

func TestPrefixSumVec(t *testing.T) {
	v := hwy.Iota[int32, hwy.N8]()
	got := PrefixSumVec(v).Lanes()
	want := []int32{0, 1, 3, 6, 10, 15, 21, 28}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	one := hwy.Set[int32, hwy.N1](5)
	if got := PrefixSumVec(one).Extract(0); got != 5 {
		t.Errorf("single lane: got %d", got)
	}
}
