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

// Package pixel provides per-pixel transforms over channel-separated RGB
// data, each implemented once and run at any lane width.
//
// Pixels are held as three equal-length Channel Sequences (R, G, B) in
// row-major order. Every transform has a scalar reference and vector
// variants for 8, 16, 32 and 64 lanes, all produced by the same generic
// routine with the lane width as a parameter:
//
//	out := pixel.Grayscale(in, hwy.Lanes32)
//	ref := pixel.Grayscale(in, hwy.Scalar)
//
// # Transforms
//
//	Grayscale: gray = (R*299 + G*587 + B*114) / 1000, integer arithmetic
//	Invert:    out  = 255 - in, per channel
//
// # Remainder Handling
//
// Input is processed in blocks of exactly L lanes. The len mod L trailing
// elements go through the scalar formula, so every variant is bit-identical
// to the scalar reference. Verify checks this for a given input.
package pixel
