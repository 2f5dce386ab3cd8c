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

import "github.com/ajroetker/go-pixelway/hwy"

// Invert returns 255 - v for every value of every channel of in.
//
// With hwy.Scalar every value goes through InvertValue. Any other width
// subtracts blocks of w lanes from a vector of 255s; the trailing
// len mod w values go through InvertValue.
//
// Invert panics under the same conditions as Grayscale.
func Invert(in Channels, w hwy.Width) Channels {
	mustValidate(in, w)
	if w.IsScalar() {
		return Channels{
			R: invertScalar(in.R),
			G: invertScalar(in.G),
			B: invertScalar(in.B),
		}
	}
	return invertLanes(in, w.Lanes())
}

func invertScalar(src []uint8) []uint8 {
	out := make([]uint8, 0, len(src))
	for _, v := range src {
		out = append(out, InvertValue(v))
	}
	return out
}

func invertLanes(in Channels, lanes int) Channels {
	n := in.Len()
	out := Channels{
		R: make([]uint8, 0, n),
		G: make([]uint8, 0, n),
		B: make([]uint8, 0, n),
	}

	// 255 - v never leaves [0, 255], so uint8 lanes need no widening.
	full := hwy.SetN[uint8](255, lanes)
	v := hwy.ZeroN[uint8](lanes)
	res := hwy.ZeroN[uint8](lanes)

	hwy.ProcessWithTail(n, lanes,
		func(offset int) {
			end := offset + lanes

			hwy.LoadInto(v, in.R[offset:end])
			hwy.SubInto(res, full, v)
			out.R = append(out.R, res.Data()...)

			hwy.LoadInto(v, in.G[offset:end])
			hwy.SubInto(res, full, v)
			out.G = append(out.G, res.Data()...)

			hwy.LoadInto(v, in.B[offset:end])
			hwy.SubInto(res, full, v)
			out.B = append(out.B, res.Data()...)
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				out.R = append(out.R, InvertValue(in.R[i]))
				out.G = append(out.G, InvertValue(in.G[i]))
				out.B = append(out.B, InvertValue(in.B[i]))
			}
		},
	)
	return out
}
