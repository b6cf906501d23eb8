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

// PrefixSum computes the inclusive prefix sum in place:
// data[i] = data[0] + ... + data[i]. Integer sums wrap.
//
//	data := []int64{1, 2, 3, 4, 5, 6, 7, 8}
//	algo.PrefixSum[hwy.N4](data)
//	// data = [1, 3, 6, 10, 15, 21, 28, 36]
func PrefixSum[N hwy.Count, T hwy.Lanes](data []T) {
	prefixSum[N](data, 0)
}

// DeltaDecode decodes delta-encoded values in place:
// data[i] = base + data[0] + ... + data[i].
//
//	// Deltas [3, 2, 5, 1] with base 10 are the ids 13, 15, 20, 21.
//	data := []uint64{3, 2, 5, 1}
//	algo.DeltaDecode[hwy.N4](data, 10)
func DeltaDecode[N hwy.Count, T hwy.Integers](data []T, base T) {
	prefixSum[N](data, base)
}

func prefixSum[N hwy.Count, T hwy.Lanes](data []T, carry T) {
	lanes := hwy.ShapeOf[T, N]().Lanes
	hwy.ProcessWithTail[N](len(data),
		func(offset int) {
			v := hwy.AddScalar(PrefixSumVec(hwy.Load[T, N](data[offset:])), carry)
			hwy.Store(v, data[offset:])
			carry = v.Extract(lanes - 1)
		},
		func(offset, count int) {
			m := hwy.FirstN[N](count)
			v := hwy.AddScalar(PrefixSumVec(hwy.MaskLoad(m, data[offset:])), carry)
			hwy.MaskStore(m, v, data[offset:])
		},
	)
}

// PrefixSumVec computes the inclusive prefix sum within one vector with
// log2(N) shift-and-add steps (Hillis-Steele):
//
//	[a, b, c, d] -> [a, a+b, b+c, c+d] -> [a, a+b, a+b+c, a+b+c+d]
func PrefixSumVec[T hwy.Lanes, N hwy.Count](v hwy.Vec[T, N]) hwy.Vec[T, N] {
	for shift := 1; shift < v.NumLanes(); shift *= 2 {
		v = hwy.Add(v, hwy.SlideUpLanes(v, shift))
	}
	return v
}
