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
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixelway/hwy"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and SIMD target",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pixelway %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
			if hwy.CurrentWidth() == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "SIMD: none, production width %s\n", hwy.PreferredWidth())
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SIMD: %s, %d-byte vectors, production width %s\n",
				hwy.CurrentName(), hwy.CurrentWidth(), hwy.PreferredWidth())
		},
	}
}
