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

// Package pipeline runs one transform end to end: decode an image file,
// optionally verify and benchmark every variant, transform with the
// production variant and encode the result next to the configured output
// directory.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/ajroetker/go-pixelway/hwy/contrib/bench"
	"github.com/ajroetker/go-pixelway/hwy/contrib/image"
	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
)

// Config describes a single pipeline run.
type Config struct {
	// Kind is the transform to apply.
	Kind pixel.Kind

	// InputPath is the image to read.
	InputPath string

	// OutputDir receives the output file. Empty means the current
	// directory.
	OutputDir string

	// Benchmark enables verification and benchmarking of every variant
	// before the output is produced.
	Benchmark bool

	// Bench configures the benchmark. The zero value means
	// bench.DefaultOptions(Kind).
	Bench bench.Options

	// Measurer times benchmark trials. Nil means bench.Clock.
	Measurer bench.Measurer

	// Logger receives progress lines. Nil discards them.
	Logger *log.Logger

	// Out receives the benchmark report. Nil discards it.
	Out io.Writer
}

// OutputPath returns where Run writes the result for input: the base name
// of input prefixed with the tag of kind, inside dir.
func OutputPath(kind pixel.Kind, input, dir string) string {
	return filepath.Join(dir, kind.Tag()+filepath.Base(input))
}

// verify checks the variants before benchmarking; tests replace it.
var verify = pixel.Verify

var progress = map[pixel.Kind]string{
	pixel.KindGrayscale: "Converting image to grayscale...",
	pixel.KindInvert:    "Inverting image...",
}

// Run executes cfg and returns the path of the written file. On error no
// file is written.
func Run(cfg Config) (string, error) {
	if !cfg.Kind.Valid() {
		return "", fmt.Errorf("%w: %v", pixel.ErrUnknownKind, cfg.Kind)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	out := OutputPath(cfg.Kind, cfg.InputPath, cfg.OutputDir)
	if !image.CanEncode(out) {
		return "", &image.EncodeError{
			Path: out,
			Err:  fmt.Errorf("%w: %q", image.ErrUnsupportedFormat, filepath.Ext(out)),
		}
	}

	img, err := image.Decode(cfg.InputPath)
	if err != nil {
		return "", err
	}
	bounds := img.Bounds()
	ch := image.ToChannels(img)
	logger.Printf("Loaded %s (%dx%d)", cfg.InputPath, bounds.Dx(), bounds.Dy())

	if cfg.Benchmark {
		if err := benchmark(cfg, ch, logger); err != nil {
			return "", err
		}
	}

	logger.Println(progress[cfg.Kind])
	v := pixel.Production(cfg.Kind)
	result, err := pixel.Apply(v, ch)
	if err != nil {
		return "", err
	}

	dst, err := image.FromChannels(result, bounds.Dx(), bounds.Dy())
	if err != nil {
		return "", err
	}
	if err := image.Encode(dst, out); err != nil {
		return "", err
	}
	logger.Printf("Wrote %s using %s", out, v)
	return out, nil
}

func benchmark(cfg Config, ch pixel.Channels, logger *log.Logger) error {
	logger.Printf("Verifying %d variants of %s", len(pixel.Variants(cfg.Kind)), cfg.Kind)
	if err := verify(cfg.Kind, ch); err != nil {
		return err
	}

	opts := cfg.Bench
	if opts == (bench.Options{}) {
		opts = bench.DefaultOptions(cfg.Kind)
	}
	logger.Printf("Benchmarking %s: %d samples, %v warm-up", cfg.Kind, opts.Samples, opts.Warmup)
	report, err := bench.Run(cfg.Kind, ch, opts, cfg.Measurer)
	if err != nil {
		return err
	}

	w := cfg.Out
	if w == nil {
		w = io.Discard
	}
	return report.Write(w)
}
