// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	green = color.RGBA{0, 0xff, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
)

func solid(w, h int, c color.Color) *xyz.Texture {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return xyz.NewTexture("solid", img)
}

func square(name string, size float32, tx *xyz.Texture) *xyz.Plane {
	p := xyz.NewPlane(name, 0)
	p.Scale.Set(size, size, 1)
	if tx != nil {
		p.SetTexture(tx)
	}
	return p
}

func setup() (*Software, *xyz.Camera, *xyz.Group) {
	cam := xyz.NewCamera()
	cam.SetPixelPerfect(200, 200, 50)
	return NewSoftware(200, 200), cam, xyz.NewGroup("root")
}

func TestSoftwarePlane(t *testing.T) {
	sw, cam, root := setup()
	root.Add(square("red", 100, solid(4, 4, red)))
	require.NoError(t, sw.Render(root, cam))
	img := sw.Image()
	assert.Equal(t, red, img.RGBAAt(100, 100))
	assert.Equal(t, red, img.RGBAAt(60, 140))
	assert.Equal(t, DefaultBackground, img.RGBAAt(40, 100))
	assert.Equal(t, DefaultBackground, img.RGBAAt(10, 10))
}

func TestSoftwareOpacity(t *testing.T) {
	sw, cam, root := setup()
	p := square("red", 100, solid(4, 4, red))
	p.Opacity = 0.5
	root.Add(p)
	require.NoError(t, sw.Render(root, cam))
	c := sw.Image().RGBAAt(100, 100)
	assert.InDelta(t, 250, int(c.R), 3)
	assert.InDelta(t, 122, int(c.G), 3)

	p.Opacity = 0
	require.NoError(t, sw.Render(root, cam))
	assert.Equal(t, DefaultBackground, sw.Image().RGBAAt(100, 100))
}

func TestSoftwareDepthOrder(t *testing.T) {
	sw, cam, root := setup()
	front := square("front", 100, solid(2, 2, red))
	back := square("back", 100, solid(2, 2, blue))
	back.Pos.Z = -10
	root.Add(front, back)
	require.NoError(t, sw.Render(root, cam))
	assert.Equal(t, red, sw.Image().RGBAAt(100, 100))
}

func TestSoftwarePlaceholder(t *testing.T) {
	sw, cam, root := setup()
	root.Add(square("none", 100, nil))
	require.NoError(t, sw.Render(root, cam))
	assert.Equal(t, PlaceholderColor, sw.Image().RGBAAt(100, 100))
}

func TestSoftwareCover(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 100))
	for y := range 100 {
		for x := range 300 {
			c := green
			if x >= 100 && x < 200 {
				c = red
			}
			img.SetRGBA(x, y, c)
		}
	}
	sw, cam, root := setup()
	root.Add(square("wide", 100, xyz.NewTexture("wide", img)))
	require.NoError(t, sw.Render(root, cam))
	assert.Equal(t, red, sw.Image().RGBAAt(100, 100))
	assert.Equal(t, red, sw.Image().RGBAAt(56, 100))
	assert.Equal(t, red, sw.Image().RGBAAt(144, 100))
}

func TestSourceRect(t *testing.T) {
	x0, y0, x1, y1 := SourceRect(math32.Vec2(100, 100), 300, 100, 0)
	assert.Equal(t, [4]float32{100, 0, 200, 100}, [4]float32{x0, y0, x1, y1})

	x0, y0, x1, y1 = SourceRect(math32.Vec2(100, 100), 100, 300, 0)
	assert.Equal(t, [4]float32{0, 100, 100, 200}, [4]float32{x0, y0, x1, y1})

	x0, y0, x1, y1 = SourceRect(math32.Vec2(100, 100), 300, 100, 1)
	assert.Equal(t, [4]float32{125, 25, 175, 75}, [4]float32{x0, y0, x1, y1})

	x0, y0, x1, y1 = SourceRect(math32.Vector2{}, 300, 100, 0)
	assert.Equal(t, [4]float32{0, 0, 300, 100}, [4]float32{x0, y0, x1, y1})
}

func TestDrawables(t *testing.T) {
	root := xyz.NewGroup("root")
	a := square("a", 10, nil)
	b := square("b", 10, nil)
	b.Pos.Z = -5
	hidden := square("hidden", 10, nil)
	hidden.Visible = false
	faded := square("faded", 10, nil)
	faded.Opacity = 0
	sub := xyz.NewGroup("sub")
	sub.Pos.Z = -20
	c := square("c", 10, nil)
	sub.Add(c)
	root.Add(a, b, hidden, faded)
	root.AddGroup(sub)

	ds := Drawables(root)
	require.Len(t, ds, 3)
	assert.Equal(t, c, ds[0].Plane)
	assert.Equal(t, float32(-20), ds[0].Depth)
	assert.Equal(t, b, ds[1].Plane)
	assert.Equal(t, a, ds[2].Plane)
}

func TestSoftwareSize(t *testing.T) {
	sw := NewSoftware(200, 100)
	sw.SetSize(200, 100, 2)
	assert.Equal(t, image.Pt(400, 200), sw.Image().Rect.Size())
	sw.SetSize(0, 0, 0)
	assert.Equal(t, image.Pt(1, 1), sw.Image().Rect.Size())

	sw.SetSize(20, 10, 1)
	var buf bytes.Buffer
	require.NoError(t, sw.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 10), img.Bounds().Size())

	sw.Close()
	assert.Error(t, sw.Render(xyz.NewGroup("root"), xyz.NewCamera()))
	assert.Error(t, sw.WritePNG(&buf))
}
