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

// Command pixelway converts images to grayscale or inverts their colors
// with SIMD-width pixel transforms, and optionally benchmarks every
// variant on the input first.
//
// Usage:
//
//	pixelway grayscale photo.png        # writes grey_photo.png
//	pixelway invert -b photo.jpg        # benchmarks, then writes invert_photo.jpg
//	pixelway version
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pixelway:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pixelway",
		Short:         "SIMD pixel transforms for images",
		Long:          "Converts images to grayscale or inverts their colors using vectorized pixel transforms.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	for _, kind := range pixel.Kinds() {
		rootCmd.AddCommand(newTransformCmd(kind))
	}
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
