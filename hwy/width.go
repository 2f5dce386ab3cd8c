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

package hwy

import (
	"errors"
	"strconv"
)

// ErrUnknownWidth is returned for lane widths outside of Scalar, 8, 16, 32 and 64.
var ErrUnknownWidth = errors.New("unknown lane width")

// Width is the number of lanes a vectorized routine processes per block.
//
// Scalar means no vector blocks at all: every element goes through the
// scalar path. The remaining widths are fixed lane counts, independent of
// the element type or the register size of the running CPU.
type Width int

const (
	// Scalar processes one element at a time.
	Scalar Width = 1

	// Lanes8 processes blocks of 8 elements.
	Lanes8 Width = 8

	// Lanes16 processes blocks of 16 elements (one 128-bit register of uint8).
	Lanes16 Width = 16

	// Lanes32 processes blocks of 32 elements (one 256-bit register of uint8).
	Lanes32 Width = 32

	// Lanes64 processes blocks of 64 elements (one 512-bit register of uint8).
	Lanes64 Width = 64
)

// Widths returns the vector widths in ascending order, excluding Scalar.
func Widths() []Width {
	return []Width{Lanes8, Lanes16, Lanes32, Lanes64}
}

// Lanes returns the lane count as an int.
func (w Width) Lanes() int {
	return int(w)
}

// IsScalar reports whether w selects the scalar path.
func (w Width) IsScalar() bool {
	return w == Scalar
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Scalar, Lanes8, Lanes16, Lanes32, Lanes64:
		return true
	}
	return false
}

// String returns "scalar" or the lane count, e.g. "16".
func (w Width) String() string {
	if w == Scalar {
		return "scalar"
	}
	return strconv.Itoa(int(w))
}

// WidthForBytes returns the widest vector Width whose uint8 lanes fit in a
// register of the given size in bytes, or Scalar if none does.
func WidthForBytes(bytes int) Width {
	best := Scalar
	for _, w := range Widths() {
		if w.Lanes() <= bytes {
			best = w
		}
	}
	return best
}
