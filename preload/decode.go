// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preload

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/planesgl/planes/base/errors"
	"golang.org/x/image/webp"
)

// ErrNotImage is returned by [Decode] for data that is not an image.
var ErrNotImage = errors.New("preload: not an image")

// Decode decodes image data, identifying the format from its content,
// and downscales it so that neither side exceeds maxSize
// (no limit if maxSize <= 0), preserving the aspect ratio.
func Decode(data []byte, maxSize int) (image.Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)
	var img image.Image
	switch kind.Extension {
	case "png":
		img, err = png.Decode(r)
	case "jpg":
		img, err = jpeg.Decode(r)
	case "gif":
		img, err = gif.Decode(r)
	case "webp":
		img, err = webp.Decode(r)
	default:
		return nil, fmt.Errorf("preload: unsupported image format %q", kind.MIME.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("preload: decoding %s: %w", kind.Extension, err)
	}
	return Downscale(img, maxSize), nil
}

// Downscale returns the image resized so that neither side exceeds
// maxSize, or the image itself if it already fits.
func Downscale(img image.Image, maxSize int) image.Image {
	sz := img.Bounds().Size()
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return img
	}
	w, h := maxSize, maxSize
	if sz.X >= sz.Y {
		h = max(1, sz.Y*maxSize/sz.X)
	} else {
		w = max(1, sz.X*maxSize/sz.Y)
	}
	return transform.Resize(img, w, h, transform.Linear)
}
