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

package image

import (
	"fmt"
	goimage "image"
	"image/color"

	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
)

// ToChannels flattens img into row-major R, G and B channels of
// Dx()*Dy() values each. Colors are taken non-premultiplied and alpha is
// dropped.
func ToChannels(img goimage.Image) pixel.Channels {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ch := pixel.NewChannels(width * height)

	switch src := img.(type) {
	case *goimage.NRGBA:
		i := 0
		for y := range height {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range width {
				ch.R[i], ch.G[i], ch.B[i] = row[4*x], row[4*x+1], row[4*x+2]
				i++
			}
		}
		return ch

	case *goimage.RGBA:
		if !src.Opaque() {
			break // premultiplied, take the generic path
		}
		i := 0
		for y := range height {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range width {
				ch.R[i], ch.G[i], ch.B[i] = row[4*x], row[4*x+1], row[4*x+2]
				i++
			}
		}
		return ch

	case *goimage.Gray:
		i := 0
		for y := range height {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range width {
				ch.R[i], ch.G[i], ch.B[i] = row[x], row[x], row[x]
				i++
			}
		}
		return ch

	case *goimage.YCbCr:
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				yi, ci := src.YOffset(x, y), src.COffset(x, y)
				ch.R[i], ch.G[i], ch.B[i] = color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				i++
			}
		}
		return ch
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			ch.R[i], ch.G[i], ch.B[i] = c.R, c.G, c.B
			i++
		}
	}
	return ch
}

// FromChannels rebuilds a width x height image from ch. Pixel i is placed
// at (i % width, i / width) with alpha 255.
//
// All three channels must hold exactly width*height values; otherwise
// FromChannels returns an error matching pixel.ErrDimensionMismatch.
func FromChannels(ch pixel.Channels, width, height int) (*goimage.NRGBA, error) {
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 || ch.Len() != width*height {
		return nil, fmt.Errorf("%w: %d values for a %dx%d image",
			pixel.ErrDimensionMismatch, ch.Len(), width, height)
	}

	img := goimage.NewNRGBA(goimage.Rect(0, 0, width, height))
	pix := img.Pix
	for i := range ch.Len() {
		// Stride is 4*width, so pixel (i%width, i/width) starts at 4*i.
		p := pix[4*i : 4*i+4 : 4*i+4]
		p[0] = ch.R[i]
		p[1] = ch.G[i]
		p[2] = ch.B[i]
		p[3] = 0xff
	}
	return img, nil
}
