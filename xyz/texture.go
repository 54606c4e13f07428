// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Texture is a decoded image for drawing on planes.
// It uses an [image.RGBA] as the underlying image storage
// to facilitate upload to the GPU.
type Texture struct {

	// Name is the name of the texture, typically the image url;
	// textures are connected to planes by name.
	Name string

	// Transparent is whether the texture has transparency.
	Transparent bool

	// Placeholder is whether the texture stands in for an image
	// that could not be loaded.
	Placeholder bool

	// RGBA is the image.
	RGBA *image.RGBA
}

// NewTexture returns a new texture with the given name for the given image,
// which is converted to [image.RGBA] if needed.
func NewTexture(name string, img image.Image) *Texture {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rectangle{Max: img.Bounds().Size()})
		draw.Draw(rgba, rgba.Rect, img, img.Bounds().Min, draw.Src)
	}
	return &Texture{Name: name, RGBA: rgba, Transparent: !rgba.Opaque()}
}

// NewPlaceholder returns a 1x1 placeholder texture of the given color.
func NewPlaceholder(name string, c color.Color) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	tx := NewTexture(name, img)
	tx.Placeholder = true
	return tx
}

// Size returns the image size.
func (tx *Texture) Size() image.Point {
	if tx.RGBA == nil {
		return image.Point{}
	}
	return tx.RGBA.Rect.Size()
}

// Aspect returns the width / height ratio of the image, or 1 if empty.
func (tx *Texture) Aspect() float32 {
	sz := tx.Size()
	if sz.X == 0 || sz.Y == 0 {
		return 1
	}
	return float32(sz.X) / float32(sz.Y)
}
