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

// Fill sets every element of dst to value.
func Fill[N hwy.Count, T hwy.Lanes](dst []T, value T) {
	v := hwy.Set[T, N](value)
	hwy.ProcessWithTail[N](len(dst),
		func(offset int) { hwy.Store(v, dst[offset:]) },
		func(offset, count int) { hwy.MaskStore(hwy.FirstN[N](count), v, dst[offset:]) },
	)
}

// Copy copies min(len(src), len(dst)) elements and returns the count.
func Copy[N hwy.Count, T hwy.Lanes](src, dst []T) int {
	n := min(len(src), len(dst))
	hwy.ProcessWithTail[N](n,
		func(offset int) { hwy.Store(hwy.Load[T, N](src[offset:]), dst[offset:]) },
		func(offset, count int) {
			m := hwy.FirstN[N](count)
			hwy.MaskStore(m, hwy.MaskLoad(m, src[offset:]), dst[offset:])
		},
	)
	return n
}

// CopyIf packs the elements of src that satisfy pred into the front of dst,
// preserving their order, and returns how many were written. Copying stops
// when dst is full.
func CopyIf[N hwy.Count, T hwy.Lanes, P Predicate[T, N]](src, dst []T, pred P) int {
	written := 0
	scan(src, func(_ int, v hwy.Vec[T, N], valid hwy.Mask[N]) bool {
		m := hwy.MaskAnd(pred.Apply(v), valid)
		if room := len(dst) - written; m.CountTrue() > room {
			packed, _ := hwy.Compress(v, m)
			copy(dst[written:], packed.Lanes()[:room])
			written += room
			return false
		}
		written += hwy.CompressStore(v, m, dst[written:])
		return written < len(dst)
	})
	return written
}
