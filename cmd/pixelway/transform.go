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
	"log"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
	"github.com/ajroetker/go-pixelway/pipeline"
)

var shortHelp = map[pixel.Kind]string{
	pixel.KindGrayscale: "Convert image to grayscale",
	pixel.KindInvert:    "Invert the colors of an image",
}

func newTransformCmd(kind pixel.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String() + " <file>",
		Short: shortHelp[kind],
		Long: shortHelp[kind] + ".\n\nThe result is written as " + kind.Tag() +
			"<file name> in the current directory, in the format named by its extension.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchmark, _ := cmd.Flags().GetBool("benchmark")

			_, err := pipeline.Run(pipeline.Config{
				Kind:      kind,
				InputPath: args[0],
				Benchmark: benchmark,
				Logger:    log.New(cmd.ErrOrStderr(), "", 0),
				Out:       cmd.OutOrStdout(),
			})
			return err
		},
	}
	cmd.Flags().BoolP("benchmark", "b", false, "Verify and benchmark every SIMD width before converting")
	return cmd
}
