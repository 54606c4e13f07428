// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"testing"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/dom/domtest"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frame = clock.Tick{Delta: clock.IdealFrameInterval, SlowDownFactor: 1}

// galleryFixture is one 100x50 element at the origin of a
// 1000x600 wrapper, in an 800x600 renderer.
func galleryFixture() (*domtest.Document, *domtest.Element, *ScrollState, *GalleryItem) {
	doc := domtest.NewDocument()
	wrapper := doc.NewElement("div").SetAttr(dom.WrapperAttr, "wrapper").SetRect(0, 0, 1000, 600)
	el := doc.NewElement("figure").SetAttr(dom.SrcAttr, "a.jpg").SetRect(0, 0, 100, 50)
	doc.Body.Add(wrapper.Add(el))
	s := &ScrollState{}
	gi := NewGalleryItem(Item{Src: "a.jpg"}, el, wrapper, s.View())
	gi.SetRendererBounds(Bounds{Width: 800, Height: 600})
	return doc, el, s, gi
}

func TestGalleryItemPlace(t *testing.T) {
	_, _, s, gi := galleryFixture()
	p := gi.Plane
	assert.Equal(t, math32.Vec3(100, 50, 1), p.Scale)
	assert.Equal(t, float32(-350), p.Pos.X)
	assert.Equal(t, float32(275), p.Pos.Y)
	assert.Equal(t, math32.Vec2(100, 50), p.Uniforms.PlaneSize)

	s.Current = math32.Vec2(30, -20)
	gi.Update(frame)
	assert.Equal(t, float32(-380), p.Pos.X)
	assert.Equal(t, float32(295), p.Pos.Y)
}

func TestGalleryItemWrapOnce(t *testing.T) {
	_, _, s, gi := galleryFixture()
	s.Current.X = 150
	s.Direction.X = Left
	gi.Update(frame)
	assert.Equal(t, float32(-1000), gi.Extra.X)
	assert.Equal(t, float32(500), gi.Plane.Pos.X)

	// already wrapped: the same scroll does not wrap again
	gi.Update(frame)
	assert.Equal(t, float32(-1000), gi.Extra.X)

	s.Current.X = -1000
	s.Direction.X = Right
	gi.Update(frame)
	assert.Equal(t, float32(0), gi.Extra.X)
	gi.Update(frame)
	assert.Equal(t, float32(1000), gi.Extra.X)
	assert.Equal(t, float32(-350), gi.Plane.Pos.X)

	// resizing clears the wrap offset
	gi.OnResize()
	assert.Zero(t, gi.Extra.X)
}

func TestGalleryItemWrapVertical(t *testing.T) {
	_, _, s, gi := galleryFixture()
	s.Current.Y = -700
	s.Direction.Y = Down
	gi.Update(frame)
	assert.Equal(t, float32(600), gi.Extra.Y)
	assert.Equal(t, float32(375), gi.Plane.Pos.Y)
}

func TestGalleryItemNoWrapper(t *testing.T) {
	doc := domtest.NewDocument()
	el := doc.NewElement("figure").SetRect(0, 0, 100, 50)
	doc.Body.Add(el)
	s := &ScrollState{Current: math32.Vec2(150, 0)}
	gi := NewGalleryItem(Item{}, el, nil, s.View())
	gi.SetRendererBounds(Bounds{Width: 800, Height: 600})
	gi.Update(frame)
	assert.Zero(t, gi.Extra.X)
	assert.Equal(t, float32(-500), gi.Plane.Pos.X)
}

func TestGalleryItemMissingElement(t *testing.T) {
	s := &ScrollState{}
	gi := NewGalleryItem(Item{Key: 2}, nil, nil, s.View())
	gi.SetRendererBounds(Bounds{Width: 800, Height: 600})
	gi.Update(frame)
	assert.Equal(t, math32.Vec3(1, 1, 1), gi.Plane.Scale)
	assert.Equal(t, math32.Vector3{}, gi.Plane.Pos)
	assert.Equal(t, "item-2", gi.Plane.Name)
}

func TestGalleryItemLateElement(t *testing.T) {
	_, el, _, gi := galleryFixture()
	el.Detached = true
	gi.OnResize()
	gi.Plane.Pos.X = 7
	gi.Update(frame)
	assert.Equal(t, float32(7), gi.Plane.Pos.X)

	el.Detached = false
	gi.Update(frame)
	assert.Equal(t, float32(-350), gi.Plane.Pos.X)
}

func TestCardItem(t *testing.T) {
	doc := domtest.NewDocument()
	el := doc.NewElement("figure").SetRect(100, 100, 200, 100)
	doc.Body.Add(el)
	r := newRunner()
	ci := NewCardItem(Item{Src: "b.jpg"}, el, r.tweens)
	ci.SetRendererBounds(Bounds{Width: 800, Height: 600})
	assert.Equal(t, float32(-400+100+100), ci.Plane.Pos.X)
	assert.Equal(t, float32(300-100-50), ci.Plane.Pos.Y)
	assert.Zero(t, ci.Plane.Opacity)

	tx := xyz.NewPlaceholder("b.jpg", color.White)
	ci.SetTexture(tx)
	assert.Equal(t, tx, ci.Texture())
	assert.Equal(t, math32.Vec2(1, 1), ci.Plane.Uniforms.ImageSize)

	ci.AnimateIn(100 * clock.IdealFrameInterval)
	r.run(10, ci.Update)
	assert.Zero(t, ci.Plane.Opacity)
	r.run(150, ci.Update)
	assert.Equal(t, float32(1), ci.Plane.Opacity)

	ci.AnimateOut()
	r.run(10, ci.Update)
	assert.Greater(t, ci.Plane.Opacity, float32(0))
	assert.Less(t, ci.Plane.Opacity, float32(1))
	ci.Destroy()
	assert.Zero(t, r.tweens.Len())

	s := &ScrollState{Current: math32.Vec2(50, 0)}
	ci.SetScroll(s.View())
	ci.Update(frame)
	assert.Equal(t, float32(-250), ci.Plane.Pos.X)

	ci.SetIntersectPoint(math32.Vec3(1, 2, 3))
	assert.Equal(t, math32.Vec3(1, 2, 3), ci.Plane.Uniforms.IntersectPoint)
}

func TestMediaResizeIdempotent(t *testing.T) {
	_, _, s, gi := galleryFixture()
	s.Current.X = 150
	s.Direction.X = Left
	gi.Update(frame)
	require.NotZero(t, gi.Extra.X)

	b := Bounds{Width: 640, Height: 480}
	gi.SetRendererBounds(b)
	pos, scale, extra := gi.Plane.Pos, gi.Plane.Scale, gi.Extra
	assert.Zero(t, extra)
	gi.SetRendererBounds(b)
	assert.Equal(t, pos, gi.Plane.Pos)
	assert.Equal(t, scale, gi.Plane.Scale)
	assert.Equal(t, extra, gi.Extra)

	doc := domtest.NewDocument()
	el := doc.NewElement("figure").SetRect(100, 100, 200, 100)
	doc.Body.Add(el)
	ci := NewCardItem(Item{Src: "b.jpg"}, el, nil)
	ci.SetScroll((&ScrollState{Current: math32.Vec2(50, 0)}).View())
	ci.SetRendererBounds(b)
	pos, scale = ci.Plane.Pos, ci.Plane.Scale
	ci.SetRendererBounds(b)
	assert.Equal(t, pos, ci.Plane.Pos)
	assert.Equal(t, scale, ci.Plane.Scale)
	assert.Equal(t, float32(-320+100+100-50), ci.Plane.Pos.X)
}

func TestItems(t *testing.T) {
	its := Items("a", "b")
	assert.Equal(t, []Item{{Key: 0, Src: "a"}, {Key: 1, Src: "b"}}, its)
}
