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

import "math/rand/v2"

// SampleLength is the default length of SampleChannels input. It is not a
// multiple of 8, 16, 32 or 64, so every width takes its remainder path.
const SampleLength = 4099

// SampleChannels returns a deterministic pseudo-random triple of n pixels.
// The first pixels cover the extremes (black, white, pure primaries) so
// narrowing edge cases always appear.
func SampleChannels(n int, seed uint64) Channels {
	c := NewChannels(n)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	fixed := [][3]uint8{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{100, 150, 200},
		{0, 255, 128},
	}
	for i := range n {
		if i < len(fixed) {
			c.R[i], c.G[i], c.B[i] = fixed[i][0], fixed[i][1], fixed[i][2]
			continue
		}
		v := rng.Uint32()
		c.R[i] = uint8(v)
		c.G[i] = uint8(v >> 8)
		c.B[i] = uint8(v >> 16)
	}
	return c
}
