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

// ProcessWithTail is a helper for processing arrays with vectors of N lanes
// that handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of N
//
// Example:
//
//	hwy.ProcessWithTail[hwy.N8](len(data),
//	    func(offset int) {
//	        v := hwy.Load[float32, hwy.N8](data[offset:])
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.FirstN[hwy.N8](count)
//	        v := hwy.MaskLoad[float32](mask, data[offset:])
//	        hwy.MaskStore(mask, hwy.Add(v, v), output[offset:])
//	    },
//	)
func ProcessWithTail[N Count](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := lanesOf[N]()
	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}
	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes an overlapping vector for the tail,
// so elements near the end may be visited twice. Inputs shorter than N are
// passed to fullFn once at offset 0; the caller must handle them.
func ProcessWithTailNoMask[N Count](size int, fullFn func(offset int)) {
	lanes := lanesOf[N]()
	if size < lanes {
		fullFn(0)
		return
	}
	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}
	if size%lanes > 0 {
		fullFn(size - lanes)
	}
}

// AlignedSize rounds up size to the next multiple of N.
// This is useful for allocating buffers that will be processed in full vectors.
func AlignedSize[N Count](size int) int {
	lanes := lanesOf[N]()
	return (size + lanes - 1) / lanes * lanes
}
