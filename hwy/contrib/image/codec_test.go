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
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLossless(t *testing.T) {
	src := gradient(17, 9)
	want := ToChannels(src)

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			require.NoError(t, Encode(src, path))

			img, err := Decode(path)
			require.NoError(t, err)
			require.Equal(t, src.Bounds().Size(), img.Bounds().Size())
			assert.True(t, ToChannels(img).Equal(want), "pixels changed through %s", ext)
		})
	}
}

func TestEncodeFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	for _, ext := range []string{".png", ".jpg", ".webp"} {
		path := filepath.Join(t.TempDir(), "grey_out"+ext)
		require.NoError(t, Encode(gradient(5, 5), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, FileMode, info.Mode().Perm(), ext)
	}
}

func TestEncodeDecodeLossy(t *testing.T) {
	src := gradient(33, 20)
	for _, ext := range []string{".jpg", ".jpeg", ".gif", ".webp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			require.NoError(t, Encode(src, path))

			img, err := Decode(path)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds().Size(), img.Bounds().Size())
		})
	}
}

func TestDecodeSniffsContent(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "real.png")
	require.NoError(t, Encode(gradient(4, 4), pngPath))

	// Same bytes under a misleading name still decode as PNG.
	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	renamed := filepath.Join(dir, "picture.jpg")
	require.NoError(t, os.WriteFile(renamed, data, 0o644))

	img, err := Decode(renamed)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Empty(t, decodeErr.MIME)
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("just some text, not pixels\n"), 0o644))

	_, err := Decode(path)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
	assert.Contains(t, decodeErr.MIME, "text/plain")
}

func TestDecodeCorruptImage(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	require.NoError(t, Encode(gradient(8, 8), good))
	data, err := os.ReadFile(good)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, data[:len(data)/2], 0o644))

	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xyz")

	err := Encode(gradient(2, 2), path)
	assert.ErrorIs(t, err, ErrEncode)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.False(t, CanEncode(path))
	assertEmptyDir(t, dir)
}

func TestEncodeMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	err := Encode(gradient(2, 2), filepath.Join(dir, "missing", "out.png"))
	assert.ErrorIs(t, err, ErrEncode)
	assertEmptyDir(t, dir)
}

func TestEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gif")

	// GIF cannot hold an image this wide, so the encoder fails midway.
	err := Encode(gradient(70000, 1), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncode)
	assertEmptyDir(t, dir)
}

func TestCanEncode(t *testing.T) {
	for _, p := range []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.bmp", "f.tif", "g.TIFF", "h.webp"} {
		assert.True(t, CanEncode(p), p)
	}
	assert.False(t, CanEncode("noext"))
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "directory should hold no files")
}
