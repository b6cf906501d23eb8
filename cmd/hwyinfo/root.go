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

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyvec/hwy"
)

type options struct {
	backend     string
	kinds       []string
	shapes      []string
	accelerated bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "hwyinfo",
		Short:         "Print CPU features, vector backends and the hwy trait table",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return hwy.SelectBackend(opts.backend)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			printCPU(w)
			fmt.Fprintln(w)
			printBackends(w)
			fmt.Fprintln(w)
			return printTraits(w, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.backend, "backend", "b", "auto",
		`backend to select: a registered name, "auto", or "" for emulation`)
	root.AddCommand(
		&cobra.Command{
			Use:   "cpu",
			Short: "Print the CPU features used for dispatch",
			Args:  cobra.NoArgs,
			Run:   func(cmd *cobra.Command, _ []string) { printCPU(cmd.OutOrStdout()) },
		},
		&cobra.Command{
			Use:   "backends",
			Short: "List registered backends in selection order",
			Args:  cobra.NoArgs,
			Run:   func(cmd *cobra.Command, _ []string) { printBackends(cmd.OutOrStdout()) },
		},
		newTraitsCmd(opts),
	)
	return root
}

func newTraitsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traits",
		Short: "Print the resolved trait of every vector shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTraits(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.kinds, "kind", "k", nil, "lane kinds to show (u, i, f)")
	cmd.Flags().StringSliceVarP(&opts.shapes, "shape", "s", nil, "shapes to show, e.g. f32x8,u8x16")
	cmd.Flags().BoolVar(&opts.accelerated, "accelerated", false, "only show accelerated shapes")
	return cmd
}

func printHeader(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
}
