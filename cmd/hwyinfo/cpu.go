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

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/hwyvec/hwy"
)

func printCPU(w io.Writer) {
	printHeader(w)
	fmt.Fprintf(w, "CPU: %s (%s)\n", cpuid.CPU.BrandName, cpuid.CPU.VendorString)
	fmt.Fprintf(w, "Cores: %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "HWY_NO_SIMD is set: vectors run on emulation")
	}
	if env := hwy.BackendEnv(); env != "" {
		fmt.Fprintf(w, "HWY_BACKEND: %s\n", env)
	}
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features(w)
	case "arm64":
		printARM64Features(w)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "cpuid features: %s\n", strings.Join(cpuid.CPU.FeatureSet(), " "))
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Fprintf(w, "  cpuid AVX2+FMA3: %v\n", cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3))
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasASIMDHP: %v\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
	fmt.Fprintf(w, "  cpuid ASIMD: %v\n", cpuid.CPU.Supports(cpuid.ASIMD))
}
