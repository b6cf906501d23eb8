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

// Package swar is a portable 128-bit backend. It packs the lanes of a vector
// into two 64-bit words and runs integer add, subtract, bitwise logic and
// equality on all lanes at once with SIMD-within-a-register arithmetic, so
// it speeds up integer code on any architecture.
//
// Importing the package registers the backend:
//
//	import _ "github.com/ajroetker/hwyvec/hwy/swar"
//
// It has the lowest priority of the bundled backends, so hardware backends
// win automatic selection where they are available.
package swar

import (
	"fmt"

	"github.com/ajroetker/hwyvec/hwy"
)

// Name is the registered backend name.
const Name = "swar"

// Width is the register width in bytes.
const Width = 16

func init() {
	if err := Register(); err != nil {
		panic(err)
	}
}

// Register adds the backend and its kernels to the hwy registry. It is
// called from init; calling it again returns hwy.ErrDuplicateBackend.
func Register() error {
	if err := hwy.Register(hwy.Backend{
		Name:     Name,
		Level:    hwy.DispatchScalar,
		Width:    Width,
		Priority: 1,
	}); err != nil {
		return err
	}
	for _, err := range []error{
		registerInts[uint8](), registerInts[uint16](), registerInts[uint32](), registerInts[uint64](),
		registerInts[int8](), registerInts[int16](), registerInts[int32](), registerInts[int64](),
		registerBitwise[float32](), registerBitwise[float64](),
	} {
		if err != nil {
			return fmt.Errorf("swar: %w", err)
		}
	}
	return nil
}

// lanesPerRegister lists the lane counts of T that fit in one register.
func lanesPerRegister[T hwy.Lanes]() []int {
	var counts []int
	for n := 1; n*laneBits[T]()/8 <= Width; n *= 2 {
		counts = append(counts, n)
	}
	return counts
}

func registerInts[T hwy.Integers]() error {
	for _, n := range lanesPerRegister[T]() {
		if err := hwy.RegisterKernels(Name, n, intKernels[T]()); err != nil {
			return err
		}
	}
	return nil
}

func registerBitwise[T hwy.Floats]() error {
	for _, n := range lanesPerRegister[T]() {
		if err := hwy.RegisterKernels(Name, n, bitwiseKernels[T]()); err != nil {
			return err
		}
	}
	return nil
}

// bitwiseKernels covers the operations that act on lane bits only, which is
// every operation whose result does not depend on how T interprets its bits.
func bitwiseKernels[T hwy.Lanes]() *hwy.Kernels[T] {
	k := &hwy.Kernels[T]{}
	k.Binary[hwy.OpAnd] = binaryKernel[T](func(x, y uint64, _ layout) uint64 { return x & y })
	k.Binary[hwy.OpOr] = binaryKernel[T](func(x, y uint64, _ layout) uint64 { return x | y })
	k.Binary[hwy.OpXor] = binaryKernel[T](func(x, y uint64, _ layout) uint64 { return x ^ y })
	k.Binary[hwy.OpAndNot] = binaryKernel[T](func(x, y uint64, _ layout) uint64 { return ^x & y })
	k.Unary[hwy.OpNot] = unaryKernel[T](func(x uint64, _ layout) uint64 { return ^x })
	return k
}

func intKernels[T hwy.Integers]() *hwy.Kernels[T] {
	k := bitwiseKernels[T]()
	k.Binary[hwy.OpAdd] = binaryKernel[T](add)
	k.Binary[hwy.OpSub] = binaryKernel[T](sub)
	k.Unary[hwy.OpNeg] = unaryKernel[T](func(x uint64, l layout) uint64 { return sub(0, x, l) })
	k.Compare[hwy.OpEqual] = compareKernel[T](false)
	k.Compare[hwy.OpNotEqual] = compareKernel[T](true)
	if layoutOf[T]().perWord == 1 {
		// One lane per word: the word product is the lane product.
		k.Binary[hwy.OpMul] = binaryKernel[T](func(x, y uint64, _ layout) uint64 { return x * y })
	}
	return k
}

func binaryKernel[T hwy.Lanes](f func(x, y uint64, l layout) uint64) func(dst, a, b []T) {
	l := layoutOf[T]()
	return func(dst, a, b []T) {
		x, y := load(a, l), load(b, l)
		store(dst, word128{lo: f(x.lo, y.lo, l), hi: f(x.hi, y.hi, l)}, l)
	}
}

func unaryKernel[T hwy.Lanes](f func(x uint64, l layout) uint64) func(dst, a []T) {
	l := layoutOf[T]()
	return func(dst, a []T) {
		x := load(a, l)
		store(dst, word128{lo: f(x.lo, l), hi: f(x.hi, l)}, l)
	}
}

func compareKernel[T hwy.Lanes](notEqual bool) func(a, b []T) uint64 {
	l := layoutOf[T]()
	return func(a, b []T) uint64 {
		x, y := load(a, l), load(b, l)
		lo := nonZeroLanes(x.lo^y.lo, l)
		hi := nonZeroLanes(x.hi^y.hi, l)
		bits := gatherHighBits(lo, l) | gatherHighBits(hi, l)<<l.perWord
		if !notEqual {
			bits = ^bits
		}
		return bits & (1<<len(a) - 1)
	}
}
