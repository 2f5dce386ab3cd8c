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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	goimage "image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("decode failed")

	// ErrEncode is matched by every *EncodeError.
	ErrEncode = errors.New("encode failed")

	// ErrUnsupportedFormat is returned for content types or file extensions
	// without a codec.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// JPEGQuality is the quality used when writing JPEG files.
const JPEGQuality = 95

// FileMode is the permission of files written by Encode.
const FileMode os.FileMode = 0o644

// DecodeError reports a file that could not be read or decoded.
type DecodeError struct {
	Path string
	// MIME is the sniffed content type, empty if the file was not readable.
	MIME string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.MIME != "" {
		return fmt.Sprintf("decode %s (%s): %v", e.Path, e.MIME, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrDecode and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// EncodeError reports a file that could not be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrEncode and the underlying cause.
func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncode, e.Err}
}

type decoder struct {
	mime   string
	decode func(io.Reader) (goimage.Image, error)
}

// Checked in order with mimetype.MIME.Is, which also matches aliases such
// as image/x-ms-bmp.
var decoders = []decoder{
	{"image/png", png.Decode},
	{"image/jpeg", jpeg.Decode},
	{"image/gif", gif.Decode},
	{"image/bmp", bmp.Decode},
	{"image/tiff", tiff.Decode},
	{"image/webp", webp.Decode},
}

type encodeFunc func(io.Writer, goimage.Image) error

var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".webp": encodeWebP,
}

func encodeJPEG(w io.Writer, img goimage.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeGIF(w io.Writer, img goimage.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeWebP(w io.Writer, img goimage.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img goimage.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Decode reads the image file at path. The format is detected from the
// file content, not its name.
func Decode(path string) (goimage.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	mime := mimetype.Detect(data)
	for _, d := range decoders {
		if !mime.Is(d.mime) {
			continue
		}
		img, err := d.decode(bytes.NewReader(data))
		if err != nil {
			return nil, &DecodeError{Path: path, MIME: mime.String(), Err: err}
		}
		return img, nil
	}
	return nil, &DecodeError{Path: path, MIME: mime.String(), Err: ErrUnsupportedFormat}
}

// CanEncode reports whether Encode supports the extension of path.
func CanEncode(path string) bool {
	_, ok := encoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Encode writes img to path in the format named by the file extension.
//
// The image is written to a temporary file in the same directory and
// renamed into place, so on error no file exists at path. The file gets
// FileMode rather than the owner-only mode of temporary files.
func Encode(img goimage.Image, path string) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return &EncodeError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := encode(w, img); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := tmp.Chmod(FileMode); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
