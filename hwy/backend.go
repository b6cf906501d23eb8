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
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Backend describes a register implementation that can be plugged into the
// trait table. Backend packages call Register from an init function and then
// RegisterKernels for every shape they implement, so importing the package
// for side effects is enough to enable it:
//
//	import _ "github.com/ajroetker/hwyvec/hwy/swar"
type Backend struct {
	// Name identifies the backend, e.g. "avx2".
	Name string
	// Level is the dispatch level the backend targets.
	Level DispatchLevel
	// Width is the register width in bytes. Shapes wider than this are
	// decomposed into halves.
	Width int
	// Priority orders automatic selection; the highest available wins.
	Priority int
	// Available reports whether the backend can run on this machine.
	// A nil Available means always.
	Available func() bool
}

func (b Backend) available() bool {
	return b.Available == nil || b.Available()
}

// Kernels holds a backend's implementation of one shape. Each function works
// on lane slices of exactly the shape's lane count. Empty slots fall back to
// the scalar loop.
type Kernels[T Lanes] struct {
	// Binary[op](dst, a, b) stores op(a, b) into dst.
	Binary [numBinaryOps]func(dst, a, b []T)
	// Unary[op](dst, a) stores op(a) into dst.
	Unary [numUnaryOps]func(dst, a []T)
	// Compare[op](a, b) returns the predicate word of op(a, b), lane i in
	// bit i.
	Compare [numCompareOps]func(a, b []T) uint64
}

// coversCore reports whether k runs the arithmetic core of its shape
// without the scalar loop: add, subtract, multiply and equality, plus divide
// for floats.
func (k *Kernels[T]) coversCore() bool {
	ops := []BinaryOp{OpAdd, OpSub, OpMul}
	if kind, _ := kindOf[T](); kind == Float {
		ops = append(ops, OpDiv)
	}
	for _, op := range ops {
		if k.Binary[op] == nil {
			return false
		}
	}
	return k.Compare[OpEqual] != nil
}

var (
	// ErrDuplicateBackend is returned when a backend name is registered twice.
	ErrDuplicateBackend = errors.New("hwy: backend already registered")
	// ErrUnknownBackend is returned for names that were never registered.
	ErrUnknownBackend = errors.New("hwy: unknown backend")
	// ErrInvalidWidth is returned for register widths that are not a power of
	// two between 8 and 256 bytes.
	ErrInvalidWidth = errors.New("hwy: invalid register width")
	// ErrLaneMismatch is returned when kernels are registered for a lane
	// count that is unsupported or does not fit the backend register.
	ErrLaneMismatch = errors.New("hwy: lane count does not fit backend")
	// ErrBackendUnavailable is returned when selecting a backend whose CPU
	// features are missing.
	ErrBackendUnavailable = errors.New("hwy: backend not available on this CPU")
)

type backendEntry struct {
	Backend
	kernels map[Shape]any
	// core records the shapes whose kernels cover the arithmetic core.
	core map[Shape]bool
}

type selectMode uint8

const (
	selectAuto selectMode = iota
	selectNone
	selectNamed
)

var registry struct {
	mu       sync.Mutex
	backends map[string]*backendEntry
	mode     selectMode
	name     string
}

var table atomic.Pointer[traitTable]

func init() {
	registry.backends = make(map[string]*backendEntry)
	table.Store(buildTable(nil))
}

func currentTable() *traitTable {
	return table.Load()
}

// Register adds a backend. It does not become active until it has kernels
// and wins automatic selection, or is chosen with SelectBackend.
func Register(b Backend) error {
	if b.Name == "" {
		return fmt.Errorf("register backend: empty name: %w", ErrUnknownBackend)
	}
	if b.Width < 8 || b.Width > 256 || b.Width&(b.Width-1) != 0 {
		return fmt.Errorf("register backend %q: width %d: %w", b.Name, b.Width, ErrInvalidWidth)
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.backends[b.Name]; ok {
		return fmt.Errorf("register backend %q: %w", b.Name, ErrDuplicateBackend)
	}
	registry.backends[b.Name] = &backendEntry{Backend: b, kernels: make(map[Shape]any), core: make(map[Shape]bool)}
	rebuildLocked()
	return nil
}

// RegisterKernels installs the kernels of shape (T, lanes) for a registered
// backend, replacing any earlier set. The shape must fit the backend
// register.
func RegisterKernels[T Lanes](backend string, lanes int, k *Kernels[T]) error {
	kind, bits := kindOf[T]()
	s := Shape{Kind: kind, Bits: bits, Lanes: lanes}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	b, ok := registry.backends[backend]
	if !ok {
		return fmt.Errorf("register kernels %s: %q: %w", s, backend, ErrUnknownBackend)
	}
	if !s.Valid() || s.Bytes() > b.Width {
		return fmt.Errorf("register kernels %s on %q (%d bytes): %w", s, backend, b.Width, ErrLaneMismatch)
	}
	if k == nil {
		delete(b.kernels, s)
		delete(b.core, s)
	} else {
		b.kernels[s] = k
		b.core[s] = k.coversCore()
	}
	rebuildLocked()
	return nil
}

// Unregister removes a backend and reports whether it was registered. If it
// was the selected backend, selection reverts to automatic.
func Unregister(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.backends[name]; !ok {
		return false
	}
	delete(registry.backends, name)
	if registry.mode == selectNamed && registry.name == name {
		registry.mode = selectAuto
	}
	rebuildLocked()
	return true
}

// Backends returns every registered backend, highest priority first.
func Backends() []Backend {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]Backend, 0, len(registry.backends))
	for _, b := range registry.backends {
		out = append(out, b.Backend)
	}
	sortBackends(out)
	return out
}

func sortBackends(bs []Backend) {
	slices.SortFunc(bs, func(a, b Backend) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// ActiveBackend returns the backend the trait table currently resolves
// against. It returns false under pure emulation.
func ActiveBackend() (Backend, bool) {
	b := currentTable().backend
	if b == nil {
		return Backend{}, false
	}
	return b.Backend, true
}

// SelectBackend fixes the active backend by name. The empty name selects
// pure emulation and "auto" restores automatic selection: the available
// backend of highest priority, unless HWY_NO_SIMD is set or HWY_BACKEND
// names another.
//
// Vectors built before a selection change keep their representation.
func SelectBackend(name string) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	switch name {
	case "":
		registry.mode = selectNone
	case "auto":
		registry.mode = selectAuto
	default:
		b, ok := registry.backends[name]
		if !ok {
			return fmt.Errorf("select backend %q: %w", name, ErrUnknownBackend)
		}
		if !b.available() {
			return fmt.Errorf("select backend %q: %w", name, ErrBackendUnavailable)
		}
		registry.mode, registry.name = selectNamed, name
	}
	rebuildLocked()
	return nil
}

func rebuildLocked() {
	table.Store(buildTable(chooseLocked()))
}

func chooseLocked() *backendEntry {
	switch registry.mode {
	case selectNone:
		return nil
	case selectNamed:
		return registry.backends[registry.name]
	}
	if NoSimdEnv() {
		return nil
	}
	if name := BackendEnv(); name != "" {
		if b, ok := registry.backends[name]; ok && b.available() {
			return b
		}
	}
	var best *backendEntry
	for _, b := range registry.backends {
		if !b.available() {
			continue
		}
		if best == nil || b.Priority > best.Priority ||
			(b.Priority == best.Priority && b.Name < best.Name) {
			best = b
		}
	}
	return best
}
