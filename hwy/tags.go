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

// Lane counts are marker types. A vector's lane count is part of its type, so
// mixing vectors or masks of different widths is a compile error, and so is
// asking for a lane count outside the supported set.
//
// Every count above one has a Half method naming the next smaller count. That
// relation types the pack/unpack operations:
//
//	lo := hwy.Set[float32, hwy.N8](1)
//	hi := hwy.Set[float32, hwy.N8](2)
//	v := hwy.Pack[hwy.N16](lo, hi) // Vec[float32, N16]

// N1 is a single-lane count.
type N1 struct{}

// N2 is a two-lane count.
type N2 struct{}

// N4 is a four-lane count.
type N4 struct{}

// N8 is an eight-lane count.
type N8 struct{}

// N16 is a sixteen-lane count.
type N16 struct{}

// N32 is a 32-lane count.
type N32 struct{}

// N64 is a 64-lane count.
type N64 struct{}

// Lanes returns 1.
func (N1) Lanes() int { return 1 }

// Lanes returns 2.
func (N2) Lanes() int { return 2 }

// Lanes returns 4.
func (N4) Lanes() int { return 4 }

// Lanes returns 8.
func (N8) Lanes() int { return 8 }

// Lanes returns 16.
func (N16) Lanes() int { return 16 }

// Lanes returns 32.
func (N32) Lanes() int { return 32 }

// Lanes returns 64.
func (N64) Lanes() int { return 64 }

// Half returns N1.
func (N2) Half() N1 { return N1{} }

// Half returns N2.
func (N4) Half() N2 { return N2{} }

// Half returns N4.
func (N8) Half() N4 { return N4{} }

// Half returns N8.
func (N16) Half() N8 { return N8{} }

// Half returns N16.
func (N32) Half() N16 { return N16{} }

// Half returns N32.
func (N64) Half() N32 { return N32{} }

// Count is the closed set of supported lane counts.
type Count interface {
	N1 | N2 | N4 | N8 | N16 | N32 | N64
	Lanes() int
}

// Doubled is satisfied by the lane count whose half is H.
// Doubled[N8] admits only N16.
type Doubled[H Count] interface {
	Count
	Half() H
}

// MaxCount is the largest supported lane count.
const MaxCount = 64

// lanesOf returns the lane count carried by N.
func lanesOf[N Count]() int {
	var n N
	return n.Lanes()
}

// laneCounts lists every supported lane count in ascending order.
var laneCounts = []int{1, 2, 4, 8, 16, 32, 64}
