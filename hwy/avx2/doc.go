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

// Package avx2 registers a 256-bit x86 backend built on simd/archsimd.
//
// The backend only exists in builds with GOEXPERIMENT=simd on amd64; other
// builds compile this package to nothing, so it is always safe to import:
//
//	import _ "github.com/ajroetker/hwyvec/hwy/avx2"
//
// Automatic selection picks it when the CPU has AVX2 and FMA.
package avx2

// Name is the registered backend name.
const Name = "avx2"

// Width is the register width in bytes.
const Width = 32
