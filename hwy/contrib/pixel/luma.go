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

// Luma weights scaled by 1000 (ITU-R BT.601: 0.299, 0.587, 0.114).
// The weighted sum of an 8-bit pixel is at most 255*1000 = 255000, so the
// arithmetic is done in uint32.
const (
	LumaR       = 299
	LumaG       = 587
	LumaB       = 114
	LumaDivisor = 1000
)

// Luma returns (r*299 + g*587 + b*114) / 1000 with truncating integer
// division. This is the reference formula of the grayscale transform.
func Luma(r, g, b uint8) uint8 {
	sum := uint32(r)*LumaR + uint32(g)*LumaG + uint32(b)*LumaB
	return uint8(sum / LumaDivisor)
}

// InvertValue returns 255 - v.
func InvertValue(v uint8) uint8 {
	return 255 - v
}
