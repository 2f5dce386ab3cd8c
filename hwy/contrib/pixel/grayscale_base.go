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

package pixel

import (
	"slices"

	"github.com/ajroetker/go-pixelway/hwy"
)

// Grayscale converts every pixel of in to its luma and returns a triple in
// which R, G and B hold the same values in separate slices.
//
// With hwy.Scalar every pixel goes through Luma. Any other width loads
// blocks of w lanes, widens them to uint32, computes the weighted sum and
// the quotient lane by lane, and truncates back to uint8; the trailing
// len mod w pixels go through Luma.
//
// Grayscale panics if in does not satisfy Validate or w is not a valid
// width; Apply checks both and returns errors instead.
func Grayscale(in Channels, w hwy.Width) Channels {
	mustValidate(in, w)
	var gray []uint8
	if w.IsScalar() {
		gray = grayscaleScalar(in)
	} else {
		gray = grayscaleLanes(in, w.Lanes())
	}
	return Channels{R: gray, G: slices.Clone(gray), B: slices.Clone(gray)}
}

func grayscaleScalar(in Channels) []uint8 {
	gray := make([]uint8, 0, in.Len())
	for i := range in.R {
		gray = append(gray, Luma(in.R[i], in.G[i], in.B[i]))
	}
	return gray
}

func grayscaleLanes(in Channels, lanes int) []uint8 {
	n := in.Len()
	gray := make([]uint8, 0, n)

	wr := hwy.SetN[uint32](LumaR, lanes)
	wg := hwy.SetN[uint32](LumaG, lanes)
	wb := hwy.SetN[uint32](LumaB, lanes)
	div := hwy.SetN[uint32](LumaDivisor, lanes)

	vr := hwy.ZeroN[uint32](lanes)
	vg := hwy.ZeroN[uint32](lanes)
	vb := hwy.ZeroN[uint32](lanes)
	acc := hwy.ZeroN[uint32](lanes)
	narrow := hwy.ZeroN[uint8](lanes)

	hwy.ProcessWithTail(n, lanes,
		func(offset int) {
			end := offset + lanes
			hwy.LoadU8AsU32Into(vr, in.R[offset:end])
			hwy.LoadU8AsU32Into(vg, in.G[offset:end])
			hwy.LoadU8AsU32Into(vb, in.B[offset:end])

			// acc = (R*299 + G*587 + B*114) / 1000
			hwy.MulInto(acc, vr, wr)
			hwy.MulAddInto(acc, vg, wg, acc)
			hwy.MulAddInto(acc, vb, wb, acc)
			hwy.DivInto(acc, acc, div)

			hwy.TruncateU32ToU8Into(narrow, acc)
			gray = append(gray, narrow.Data()...)
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				gray = append(gray, Luma(in.R[i], in.G[i], in.B[i]))
			}
		},
	)
	return gray
}
