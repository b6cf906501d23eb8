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

import (
	"math"
	"testing"
)

// laneEqual compares float lanes bit-exactly, so -0 differs from +0, except
// that any two NaNs are equal.
func laneEqual[T Lanes](a, b T) bool {
	if isFloat[T]() {
		if a != a && b != b {
			return true
		}
		return LaneBits(a) == LaneBits(b)
	}
	return a == b
}

func expectLanes[T Lanes, N Count](t *testing.T, name string, v Vec[T, N], want []T) {
	t.Helper()
	got := v.Lanes()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d lanes, want %d", name, len(got), len(want))
	}
	for i := range want {
		if !laneEqual(got[i], want[i]) {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

func expectMask[N Count](t *testing.T, name string, m Mask[N], want []bool) {
	t.Helper()
	got := m.Bools()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

// loopKernels fills every kernel slot with the reference loop, so a backend
// built from it takes the native code path with known-good results.
func loopKernels[T Lanes]() *Kernels[T] {
	k := &Kernels[T]{}
	for op := range numBinaryOps {
		k.Binary[op] = func(dst, a, b []T) {
			for i := range dst {
				dst[i] = applyBinary(op, a[i], b[i])
			}
		}
	}
	for op := range numUnaryOps {
		k.Unary[op] = func(dst, a []T) {
			for i := range dst {
				dst[i] = applyUnary(op, a[i])
			}
		}
	}
	for op := range numCompareOps {
		k.Compare[op] = func(a, b []T) uint64 {
			var bits uint64
			for i := range a {
				if applyCompare(op, a[i], b[i]) {
					bits |= 1 << i
				}
			}
			return bits
		}
	}
	return k
}

func registerLoopKernels[T Lanes](t *testing.T, backend string, width int) {
	t.Helper()
	_, bits := kindOf[T]()
	for _, n := range laneCounts {
		if n*bits/8 > width {
			break
		}
		if err := RegisterKernels(backend, n, loopKernels[T]()); err != nil {
			t.Fatalf("RegisterKernels(%s, %d): %v", backend, n, err)
		}
	}
}

// useBackend registers b, selects it and restores automatic selection when
// the test ends.
func useBackend(t *testing.T, b Backend, kernels func(t *testing.T)) {
	t.Helper()
	if err := Register(b); err != nil {
		t.Fatalf("Register(%s): %v", b.Name, err)
	}
	t.Cleanup(func() {
		Unregister(b.Name)
		if err := SelectBackend("auto"); err != nil {
			t.Errorf("SelectBackend(auto): %v", err)
		}
	})
	if kernels != nil {
		kernels(t)
	}
	if err := SelectBackend(b.Name); err != nil {
		t.Fatalf("SelectBackend(%s): %v", b.Name, err)
	}
}

// forEachRepr runs fn under pure emulation, under a 16-byte backend with no
// kernels (wide shapes decompose onto emulated halves) and under a 16-byte
// backend whose kernels cover every shape that fits.
func forEachRepr(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	t.Run("emulated", func(t *testing.T) {
		if err := SelectBackend(""); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = SelectBackend("auto") })
		fn(t)
	})
	t.Run("decomposed", func(t *testing.T) {
		useBackend(t, Backend{Name: "test-narrow", Width: 16}, nil)
		fn(t)
	})
	t.Run("native", func(t *testing.T) {
		useBackend(t, Backend{Name: "test-loop", Width: 16}, func(t *testing.T) {
			registerLoopKernels[uint8](t, "test-loop", 16)
			registerLoopKernels[uint16](t, "test-loop", 16)
			registerLoopKernels[uint32](t, "test-loop", 16)
			registerLoopKernels[uint64](t, "test-loop", 16)
			registerLoopKernels[int8](t, "test-loop", 16)
			registerLoopKernels[int16](t, "test-loop", 16)
			registerLoopKernels[int32](t, "test-loop", 16)
			registerLoopKernels[int64](t, "test-loop", 16)
			registerLoopKernels[float32](t, "test-loop", 16)
			registerLoopKernels[float64](t, "test-loop", 16)
		})
		fn(t)
	})
}

var (
	nan32 = float32(math.NaN())
	inf32 = float32(math.Inf(1))
	nan64 = math.NaN()
	inf64 = math.Inf(1)
)
