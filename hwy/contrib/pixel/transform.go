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
	"fmt"

	"github.com/ajroetker/go-pixelway/hwy"
)

// Apply runs variant v over in after checking that in is a valid triple and
// that v names a supported kind and width.
func Apply(v Variant, in Channels) (Channels, error) {
	if err := in.Validate(); err != nil {
		return Channels{}, err
	}
	if !v.Width.Valid() {
		return Channels{}, fmt.Errorf("%w: %d", hwy.ErrUnknownWidth, int(v.Width))
	}
	switch v.Kind {
	case KindGrayscale:
		return Grayscale(in, v.Width), nil
	case KindInvert:
		return Invert(in, v.Width), nil
	}
	return Channels{}, fmt.Errorf("%w: %v", ErrUnknownKind, v.Kind)
}

// mustValidate is the unchecked-entry-point form of Apply's checks.
func mustValidate(in Channels, w hwy.Width) {
	if err := in.Validate(); err != nil {
		panic(err)
	}
	if !w.Valid() {
		panic(fmt.Errorf("%w: %d", hwy.ErrUnknownWidth, int(w)))
	}
}
