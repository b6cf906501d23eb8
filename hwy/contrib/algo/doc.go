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

// Package algo provides slice algorithms built on hwy vectors: search,
// counting, predicates, stream compaction, prefix sums and transforms.
//
// Every function takes the vector lane count N as its first type parameter,
// so one call site picks the register shape and the rest is inferred:
//
//	idx := algo.Find[hwy.N8](data, 42)
//	n := algo.CopyIf[hwy.N16](src, dst, algo.GreaterThan[float32, hwy.N16]{Threshold: 0})
//	algo.Transform[hwy.N8](in, out, func(v hwy.Vec[float32, hwy.N8]) hwy.Vec[float32, hwy.N8] {
//		return hwy.Mul(v, v)
//	})
//
// Full vectors are processed with plain loads; the final partial vector is
// processed with a lane mask, never with a scalar loop.
package algo
