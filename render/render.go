// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws the planes of a scene: [Software] rasterizes
// into an image on the CPU, and WebGL draws into a browser canvas.
package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
)

// Renderer draws a group of planes as seen by a camera.
type Renderer interface {

	// SetSize sets the size of the surface in CSS pixels, and the
	// number of device pixels per CSS pixel.
	SetSize(width, height int, pixelRatio float32)

	// Render draws all visible planes under root.
	Render(root *xyz.Group, camera *xyz.Camera) error

	// Close releases the resources of the renderer.
	Close()
}

// DefaultBackground is the clear color of the render surface.
var DefaultBackground = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}

// PlaceholderColor is drawn for planes without a texture.
var PlaceholderColor = color.RGBA{0xd9, 0xd9, 0xd9, 0xff}

// Drawable is a plane to draw with its world matrix.
type Drawable struct {
	Plane *xyz.Plane
	World mgl32.Mat4

	// Depth is the world z of the plane center.
	Depth float32
}

// Drawables returns the visible, non transparent planes under root
// in drawing order, back to front. Planes at the same depth keep
// their order in the group.
func Drawables(root *xyz.Group) []Drawable {
	var ds []Drawable
	root.Walk(func(p *xyz.Plane, world mgl32.Mat4) {
		if p.Opacity <= 0 {
			return
		}
		ds = append(ds, Drawable{Plane: p, World: world, Depth: world.Col(3).Z()})
	})
	slices.SortStableFunc(ds, func(a, b Drawable) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return ds
}

// SourceRect returns the part of the texture shown on the plane, in
// texture pixels: the centered crop with the aspect ratio of the plane
// that covers it, zoomed in by the hover amount.
func SourceRect(planeSize math32.Vector2, textureWidth, textureHeight int, hover float32) (x0, y0, x1, y1 float32) {
	tw, th := float32(textureWidth), float32(textureHeight)
	w, h := tw, th
	if planeSize.X > 0 && planeSize.Y > 0 && tw > 0 && th > 0 {
		pa := planeSize.X / planeSize.Y
		if tw/th > pa {
			w = th * pa
		} else {
			h = tw / pa
		}
	}
	z := 1 + math32.Max(hover, 0)
	w, h = w/z, h/z
	x0, y0 = (tw-w)/2, (th-h)/2
	return x0, y0, x0 + w, y0 + h
}

func planeSize(p *xyz.Plane) math32.Vector2 {
	if !p.Uniforms.PlaneSize.IsZero() {
		return p.Uniforms.PlaneSize
	}
	return p.Scale.XY()
}
