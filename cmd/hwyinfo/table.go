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
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/hwyvec/hwy"
)

var title = cases.Title(language.English)

func printBackends(w io.Writer) {
	active, ok := hwy.ActiveBackend()
	backends := hwy.Backends()
	if len(backends) == 0 {
		fmt.Fprintln(w, "No backends registered")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BACKEND\tLEVEL\tWIDTH\tPRIORITY\tAVAILABLE\tACTIVE")
	for _, b := range backends {
		available := b.Available == nil || b.Available()
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%v\t%v\n",
			b.Name, b.Level, b.Width, b.Priority, available, ok && active.Name == b.Name)
	}
	tw.Flush()
	names := lo.Map(lo.Filter(backends, func(b hwy.Backend, _ int) bool {
		return b.Available == nil || b.Available()
	}), func(b hwy.Backend, _ int) string { return b.Name })
	fmt.Fprintf(w, "Available: %s\n", strings.Join(names, ", "))
}

// filterTraits applies the traits command filters. Kinds match the first
// letter of the shape name; shapes match the full name.
func filterTraits(traits []hwy.Trait, opts *options) []hwy.Trait {
	return lo.Filter(traits, func(t hwy.Trait, _ int) bool {
		name := t.Shape.String()
		if len(opts.kinds) > 0 && !lo.Contains(opts.kinds, name[:1]) {
			return false
		}
		if len(opts.shapes) > 0 && !slices.Contains(opts.shapes, name) {
			return false
		}
		return !opts.accelerated || t.Accelerated
	})
}

func printTraits(w io.Writer, opts *options) error {
	for _, s := range opts.shapes {
		if !lo.ContainsBy(hwy.Table(), func(t hwy.Trait) bool { return t.Shape.String() == s }) {
			return fmt.Errorf("unknown shape %q", s)
		}
	}
	traits := filterTraits(hwy.Table(), opts)
	backend := "emulation"
	if b, ok := hwy.ActiveBackend(); ok {
		backend = b.Name
	}
	fmt.Fprintf(w, "%s trait table (%d of %d shapes)\n", title.String(backend), len(traits), len(hwy.Table()))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHAPE\tBYTES\tREPR\tACCEL\tUNSIGNED\tSIGNED\tFLOAT\tHALF")
	for _, t := range traits {
		float, half := "-", "-"
		if t.HasFloat {
			float = t.Float.String()
		}
		if t.HasHalf {
			half = t.Half.String()
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%v\t%s\t%s\t%s\t%s\n",
			t.Shape, t.Shape.Bytes(), title.String(t.Repr.String()), t.Accelerated,
			t.Unsigned, t.Signed, float, half)
	}
	tw.Flush()

	counts := lo.CountValuesBy(traits, func(t hwy.Trait) hwy.Representation { return t.Repr })
	fmt.Fprintf(w, "native %d, decomposed %d, emulated %d\n",
		counts[hwy.Native], counts[hwy.Decomposed], counts[hwy.Emulated])
	return nil
}
