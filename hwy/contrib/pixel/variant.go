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

	"github.com/ajroetker/go-pixelway/hwy"
)

// ErrUnknownKind is returned for transforms that are not supported.
var ErrUnknownKind = errors.New("unknown transform")

// Kind selects a transform.
type Kind int

const (
	// KindGrayscale replaces R, G and B with the integer luma of the pixel.
	KindGrayscale Kind = iota

	// KindInvert replaces each channel value v with 255 - v.
	KindInvert
)

// Kinds returns all supported transforms.
func Kinds() []Kind {
	return []Kind{KindGrayscale, KindInvert}
}

// String returns the transform name used on the command line.
func (k Kind) String() string {
	switch k {
	case KindGrayscale:
		return "grayscale"
	case KindInvert:
		return "invert"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Tag returns the prefix added to output file names.
func (k Kind) Tag() string {
	switch k {
	case KindGrayscale:
		return "grey_"
	case KindInvert:
		return "invert_"
	default:
		return ""
	}
}

// Valid reports whether k is a supported transform.
func (k Kind) Valid() bool {
	return k == KindGrayscale || k == KindInvert
}

// Variant identifies one implementation of a transform: the transform kind
// and the lane width it runs at.
type Variant struct {
	Kind  Kind
	Width hwy.Width
}

// String returns the benchmark id of the variant, e.g. "grayscale no simd"
// or "invert simd 32".
func (v Variant) String() string {
	if v.Width.IsScalar() {
		return v.Kind.String() + " no simd"
	}
	return fmt.Sprintf("%s simd %d", v.Kind, v.Width.Lanes())
}

// Func runs a transform over a channel triple.
type Func func(in Channels) Channels

// Func returns the implementation of v. It panics if v is not valid, and
// the returned function panics on an invalid triple; callers holding
// unchecked input use Apply instead.
func (v Variant) Func() Func {
	if !v.Width.Valid() {
		panic(fmt.Sprintf("pixel: invalid width %d", int(v.Width)))
	}
	w := v.Width
	switch v.Kind {
	case KindGrayscale:
		return func(in Channels) Channels { return Grayscale(in, w) }
	case KindInvert:
		return func(in Channels) Channels { return Invert(in, w) }
	}
	panic(fmt.Sprintf("pixel: invalid kind %d", int(v.Kind)))
}

// Variants returns the five implementations of k, scalar first, then the
// vector widths in ascending order.
func Variants(k Kind) []Variant {
	out := []Variant{{Kind: k, Width: hwy.Scalar}}
	for _, w := range hwy.Widths() {
		out = append(out, Variant{Kind: k, Width: w})
	}
	return out
}

// Production returns the variant used to produce output on this CPU.
func Production(k Kind) Variant {
	return Variant{Kind: k, Width: hwy.PreferredWidth()}
}
