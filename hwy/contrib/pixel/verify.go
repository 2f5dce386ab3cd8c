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

// ErrEquivalenceMismatch is matched by every *MismatchError.
var ErrEquivalenceMismatch = errors.New("vector variant disagrees with scalar reference")

// MismatchError reports the first element at which a vector variant
// differs from the scalar reference. Index is -1 when the output lengths
// differ, in which case GotLen and WantLen are set.
type MismatchError struct {
	Variant Variant
	Channel string
	Index   int
	Got     uint8
	Want    uint8
	GotLen  int
	WantLen int
}

func (e *MismatchError) Error() string {
	ref := Variant{Kind: e.Variant.Kind, Width: hwy.Scalar}
	if e.Index < 0 {
		return fmt.Sprintf("%v: %q produced %d values in channel %s, %q produced %d",
			ErrEquivalenceMismatch, e.Variant, e.GotLen, e.Channel, ref, e.WantLen)
	}
	return fmt.Sprintf("%v: %q channel %s index %d: got %d, want %d",
		ErrEquivalenceMismatch, e.Variant, e.Channel, e.Index, e.Got, e.Want)
}

// Unwrap makes errors.Is(err, ErrEquivalenceMismatch) hold.
func (e *MismatchError) Unwrap() error {
	return ErrEquivalenceMismatch
}

// apply runs a variant for Verify; tests replace it to inject faults.
var apply = Apply

// Verify runs every variant of kind over in and checks that each vector
// variant produces exactly the scalar output. The first disagreement is
// returned as a *MismatchError. Inputs whose length is not a multiple of
// 64 exercise the remainder path of every width.
func Verify(kind Kind, in Channels) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	variants := Variants(kind)
	want, err := apply(variants[0], in)
	if err != nil {
		return err
	}
	for _, v := range variants[1:] {
		got, err := apply(v, in)
		if err != nil {
			return err
		}
		if err := compare(v, got, want); err != nil {
			return err
		}
	}
	return nil
}

// VerifyAll runs Verify for every supported kind.
func VerifyAll(in Channels) error {
	for _, k := range Kinds() {
		if err := Verify(k, in); err != nil {
			return err
		}
	}
	return nil
}

// compareWidth is the block size compare uses to skip equal runs.
const compareWidth = hwy.Lanes64

func compare(v Variant, got, want Channels) *MismatchError {
	lanes := compareWidth.Lanes()
	gv := hwy.ZeroN[uint8](lanes)
	wv := hwy.ZeroN[uint8](lanes)

	for c := range channelNames {
		g, w := got.channel(c), want.channel(c)
		if len(g) != len(w) {
			return &MismatchError{
				Variant: v,
				Channel: channelNames[c],
				Index:   -1,
				GotLen:  len(g),
				WantLen: len(w),
			}
		}

		var mismatch *MismatchError
		scan := func(from, to int) {
			for i := from; i < to; i++ {
				if g[i] != w[i] {
					mismatch = &MismatchError{
						Variant: v,
						Channel: channelNames[c],
						Index:   i,
						Got:     g[i],
						Want:    w[i],
						GotLen:  len(g),
						WantLen: len(w),
					}
					return
				}
			}
		}
		hwy.ProcessWithTail(len(w), lanes,
			func(offset int) {
				if mismatch != nil {
					return
				}
				hwy.LoadInto(gv, g[offset:offset+lanes])
				hwy.LoadInto(wv, w[offset:offset+lanes])
				if !hwy.Equal(gv, wv) {
					scan(offset, offset+lanes)
				}
			},
			func(offset, count int) {
				if mismatch == nil {
					scan(offset, offset+count)
				}
			},
		)
		if mismatch != nil {
			return mismatch
		}
	}
	return nil
}
