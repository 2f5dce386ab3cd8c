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
	"errors"
	"fmt"
	"slices"
)

// ErrDimensionMismatch is returned when the channels of a triple have
// different lengths, or do not match the expected pixel count.
var ErrDimensionMismatch = errors.New("channel dimension mismatch")

// Channels is a channel-separated RGB buffer. Element i of each slice
// belongs to the same pixel; pixels are in row-major order.
type Channels struct {
	R []uint8
	G []uint8
	B []uint8
}

// NewChannels allocates a zeroed triple of n pixels.
func NewChannels(n int) Channels {
	return Channels{
		R: make([]uint8, n),
		G: make([]uint8, n),
		B: make([]uint8, n),
	}
}

// Len returns the number of pixels, taken from the red channel.
func (c Channels) Len() int {
	return len(c.R)
}

// Validate checks that all three channels have the same length.
func (c Channels) Validate() error {
	if len(c.R) != len(c.G) || len(c.R) != len(c.B) {
		return fmt.Errorf("%w: len(R)=%d len(G)=%d len(B)=%d",
			ErrDimensionMismatch, len(c.R), len(c.G), len(c.B))
	}
	return nil
}

// Clone returns a deep copy, so the clone can be handed to another stage
// without aliasing.
func (c Channels) Clone() Channels {
	return Channels{
		R: slices.Clone(c.R),
		G: slices.Clone(c.G),
		B: slices.Clone(c.B),
	}
}

// Equal reports whether both triples hold the same values.
func (c Channels) Equal(other Channels) bool {
	return slices.Equal(c.R, other.R) &&
		slices.Equal(c.G, other.G) &&
		slices.Equal(c.B, other.B)
}

// Pixel returns the (r, g, b) values of pixel i.
func (c Channels) Pixel(i int) (r, g, b uint8) {
	return c.R[i], c.G[i], c.B[i]
}

// channel returns the slice for the channel index 0 (R), 1 (G) or 2 (B).
func (c Channels) channel(i int) []uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

var channelNames = [3]string{"R", "G", "B"}
