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

package pipeline

import (
	"bytes"
	goimage "image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pixelway/hwy"
	"github.com/ajroetker/go-pixelway/hwy/contrib/bench"
	"github.com/ajroetker/go-pixelway/hwy/contrib/image"
	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
)

// writePNG writes a w x h image whose first pixel is (0, 255, 128) and
// the rest a gradient, and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x + y), A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 255, B: 128, A: 255})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func readChannels(t *testing.T, path string) (pixel.Channels, goimage.Rectangle) {
	t.Helper()
	img, err := image.Decode(path)
	require.NoError(t, err)
	return image.ToChannels(img), img.Bounds()
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		kind       pixel.Kind
		input, dir string
		want       string
	}{
		{pixel.KindGrayscale, "photo.png", "", "grey_photo.png"},
		{pixel.KindInvert, "photo.png", "", "invert_photo.png"},
		{pixel.KindGrayscale, "a/b/photo.jpg", "out", filepath.Join("out", "grey_photo.jpg")},
		{pixel.KindInvert, "/abs/dir/x.webp", "/tmp", filepath.Join("/tmp", "invert_x.webp")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.kind, tt.input, tt.dir), tt.input)
	}
}

func TestRunGrayscale(t *testing.T) {
	in := writePNG(t, t.TempDir(), "in.png", 37, 11)
	outDir := t.TempDir()
	var logs bytes.Buffer

	out, err := Run(Config{
		Kind:      pixel.KindGrayscale,
		InputPath: in,
		OutputDir: outDir,
		Logger:    log.New(&logs, "", 0),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "grey_in.png"), out)
	assert.Contains(t, logs.String(), "Converting image to grayscale...")

	src, _ := readChannels(t, in)
	got, bounds := readChannels(t, out)
	assert.Equal(t, 37, bounds.Dx())
	assert.Equal(t, 11, bounds.Dy())
	require.Equal(t, src.Len(), got.Len())
	for i := range src.Len() {
		want := pixel.Luma(src.Pixel(i))
		r, g, b := got.Pixel(i)
		require.Equal(t, [3]uint8{want, want, want}, [3]uint8{r, g, b}, "pixel %d", i)
	}
}

func TestRunInvert(t *testing.T) {
	in := writePNG(t, t.TempDir(), "in.png", 65, 2)
	outDir := t.TempDir()
	var logs bytes.Buffer

	out, err := Run(Config{
		Kind:      pixel.KindInvert,
		InputPath: in,
		OutputDir: outDir,
		Logger:    log.New(&logs, "", 0),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "invert_in.png"), out)
	assert.Contains(t, logs.String(), "Inverting image...")

	got, _ := readChannels(t, out)
	r, g, b := got.Pixel(0)
	assert.Equal(t, [3]uint8{255, 0, 127}, [3]uint8{r, g, b})

	// Inverting the output restores the input.
	back, err := Run(Config{Kind: pixel.KindInvert, InputPath: out, OutputDir: t.TempDir()})
	require.NoError(t, err)
	src, _ := readChannels(t, in)
	restored, _ := readChannels(t, back)
	assert.True(t, src.Equal(restored))
}

func TestRunBenchmark(t *testing.T) {
	in := writePNG(t, t.TempDir(), "in.png", 20, 20)
	outDir := t.TempDir()
	var logs, report bytes.Buffer
	calls := 0

	out, err := Run(Config{
		Kind:      pixel.KindGrayscale,
		InputPath: in,
		OutputDir: outDir,
		Benchmark: true,
		Bench:     bench.Options{Samples: 3, Confidence: 0.95},
		Measurer: bench.MeasureFunc(func(v pixel.Variant, _ pixel.Channels) time.Duration {
			calls++
			return time.Duration(100/v.Width.Lanes()) * time.Microsecond
		}),
		Logger: log.New(&logs, "", 0),
		Out:    &report,
	})
	require.NoError(t, err)
	assert.FileExists(t, out)
	assert.Equal(t, 5*3, calls)

	assert.Contains(t, report.String(), "grayscale: 400 pixels")
	assert.Contains(t, report.String(), "grayscale no simd")
	assert.Contains(t, report.String(), "fastest: grayscale simd 64")
	assert.Contains(t, logs.String(), "Verifying 5 variants of grayscale")
	assert.Contains(t, logs.String(), "Converting image to grayscale...")
}

func TestRunFailuresWriteNothing(t *testing.T) {
	srcDir := t.TempDir()
	good := writePNG(t, srcDir, "in.png", 4, 4)
	misnamed := writePNG(t, srcDir, "in.unknown", 4, 4)
	text := filepath.Join(srcDir, "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("plain text, not pixels"), 0o644))

	tests := []struct {
		name  string
		cfg   Config
		wants []error
	}{
		{
			name:  "missing input",
			cfg:   Config{Kind: pixel.KindGrayscale, InputPath: filepath.Join(srcDir, "nope.png")},
			wants: []error{image.ErrDecode, os.ErrNotExist},
		},
		{
			name:  "not an image",
			cfg:   Config{Kind: pixel.KindInvert, InputPath: text},
			wants: []error{image.ErrDecode, image.ErrUnsupportedFormat},
		},
		{
			name:  "unsupported output extension",
			cfg:   Config{Kind: pixel.KindInvert, InputPath: misnamed},
			wants: []error{image.ErrEncode, image.ErrUnsupportedFormat},
		},
		{
			name:  "unknown kind",
			cfg:   Config{Kind: pixel.Kind(9), InputPath: good},
			wants: []error{pixel.ErrUnknownKind},
		},
		{
			name: "invalid benchmark options",
			cfg: Config{
				Kind:      pixel.KindGrayscale,
				InputPath: good,
				Benchmark: true,
				Bench:     bench.Options{Samples: 1, Confidence: 0.9},
			},
			wants: []error{bench.ErrInvalidOptions},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := t.TempDir()
			tt.cfg.OutputDir = outDir

			out, err := Run(tt.cfg)
			require.Error(t, err)
			assert.Empty(t, out)
			for _, want := range tt.wants {
				assert.ErrorIs(t, err, want)
			}
			assertEmptyDir(t, outDir)
		})
	}
}

func TestRunVariantMismatchWritesNothing(t *testing.T) {
	orig := verify
	t.Cleanup(func() { verify = orig })
	verify = func(kind pixel.Kind, in pixel.Channels) error {
		return &pixel.MismatchError{
			Variant: pixel.Variant{Kind: kind, Width: hwy.Lanes32},
			Channel: "G",
			Index:   3,
			Got:     1,
			Want:    2,
			GotLen:  in.Len(),
			WantLen: in.Len(),
		}
	}

	in := writePNG(t, t.TempDir(), "in.png", 8, 8)
	outDir := t.TempDir()
	measured := false

	out, err := Run(Config{
		Kind:      pixel.KindGrayscale,
		InputPath: in,
		OutputDir: outDir,
		Benchmark: true,
		Measurer: bench.MeasureFunc(func(pixel.Variant, pixel.Channels) time.Duration {
			measured = true
			return time.Microsecond
		}),
	})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, pixel.ErrEquivalenceMismatch)
	var mismatch *pixel.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, hwy.Lanes32, mismatch.Variant.Width)
	assert.False(t, measured, "benchmark ran after a failed verification")
	assertEmptyDir(t, outDir)
}
