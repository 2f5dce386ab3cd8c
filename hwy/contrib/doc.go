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

// Package contrib groups the pixel-processing packages built on hwy.
//
// # Subpackages
//
//   - pixel: grayscale and invert transforms at scalar and 8/16/32/64-lane
//     widths, plus the equivalence verifier
//   - image: conversion between image.Image and channel triples, and file
//     decoding/encoding
//   - bench: throughput benchmarking of every transform variant
//
// # Pixel Transforms (hwy/contrib/pixel)
//
//	import "github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
//
//	gray := pixel.Grayscale(ch, hwy.Lanes32)        // fixed width
//	inv, err := pixel.Apply(pixel.Production(pixel.KindInvert), ch)
//	err = pixel.Verify(pixel.KindGrayscale, ch)     // all widths agree with scalar
//
// # Images (hwy/contrib/image)
//
//	img, err := image.Decode("photo.jpg")
//	ch := image.ToChannels(img)
//	out, err := image.FromChannels(ch, img.Bounds().Dx(), img.Bounds().Dy())
//	err = image.Encode(out, "grey_photo.png")
//
// # Benchmarks (hwy/contrib/bench)
//
//	report, err := bench.Run(pixel.KindGrayscale, ch, bench.DefaultOptions(pixel.KindGrayscale), nil)
//	report.Write(os.Stdout)
//
// All packages are pure Go and build on every GOOS/GOARCH; the lane width
// used for production output follows hwy.PreferredWidth.
package contrib
