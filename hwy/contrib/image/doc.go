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

// Package image converts between decoded raster images and the
// channel-separated buffers of package pixel, and reads and writes image
// files.
//
// # Channel Conversion
//
//	ch := image.ToChannels(img)           // row-major R, G, B; alpha dropped
//	out, err := image.FromChannels(ch, w, h) // *image.NRGBA, alpha 255
//
// FromChannels is the only place alpha is synthesized; it is never carried
// over from the input.
//
// # Files
//
//	img, err := image.Decode("photo.jpg") // format sniffed from content
//	err = image.Encode(img, "grey_photo.jpg") // format from extension
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding supports
// the same formats; WebP output is lossless. A failed Encode leaves no file
// behind.
package image
