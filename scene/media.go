// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strconv"
	"time"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/tween"
	"github.com/planesgl/planes/xyz"
)

// Item is a media item: an image and its position in the list.
type Item struct {
	Key   int
	Src   string
	Title string
}

// Items returns items for the given image urls, keyed by position.
func Items(urls ...string) []Item {
	its := make([]Item, len(urls))
	for i, u := range urls {
		its[i] = Item{Key: i, Src: u}
	}
	return its
}

// Proxy is a plane that stands in for a DOM element.
type Proxy interface {
	AsMediaObject() *MediaObject
	SetRendererBounds(b Bounds)
	OnResize()
	Update(tick clock.Tick)
}

// MediaObject is the part common to all proxies: the plane showing the
// item image, the renderer bounds and the wrap offset.
type MediaObject struct {
	Item  Item
	Plane *xyz.Plane

	// Bounds are the renderer bounds.
	Bounds Bounds

	// Extra is the wrap offset, subtracted from the plane position.
	// It changes by whole wrap units only.
	Extra math32.Vector2
}

func newMediaObject(it Item) MediaObject {
	name := it.Src
	if name == "" {
		name = "item-" + strconv.Itoa(it.Key)
	}
	return MediaObject{Item: it, Plane: xyz.NewPlane(name, it.Key)}
}

func (mo *MediaObject) AsMediaObject() *MediaObject {
	return mo
}

// SetTexture sets the plane texture.
func (mo *MediaObject) SetTexture(tx *xyz.Texture) {
	mo.Plane.SetTexture(tx)
}

// Texture returns the plane texture.
func (mo *MediaObject) Texture() *xyz.Texture {
	return mo.Plane.Texture
}

// binding is a DOM element whose rect drives the plane placement.
type binding struct {
	el   dom.Element
	rect dom.Rect
	ok   bool
}

func (b *binding) measure() {
	b.ok = false
	if b.el == nil {
		return
	}
	r, ok := b.el.Rect()
	if !ok || r.Empty() {
		return
	}
	b.rect, b.ok = r, true
}

// place sets the scale of the plane to the element size and its
// position such that it covers the element, offset by scroll and extra.
func (mo *MediaObject) place(b *binding, scroll math32.Vector2) {
	p := mo.Plane
	p.Scale.Set(b.rect.Width, b.rect.Height, 1)
	p.Uniforms.PlaneSize.Set(b.rect.Width, b.rect.Height)
	h := mo.Bounds.Half()
	p.Pos.X = -scroll.X + b.rect.Left() - h.X + p.Scale.X/2 - mo.Extra.X
	p.Pos.Y = -scroll.Y - b.rect.Top() + h.Y - p.Scale.Y/2 - mo.Extra.Y
}

// GalleryItem is a proxy for an element in a scrolling collection that
// wraps around: planes leaving the viewport on one side come back
// on the other, one wrapper extent away.
type GalleryItem struct {
	MediaObject

	elem    binding
	wrapper binding
	scroll  ScrollView
}

// NewGalleryItem returns a new [GalleryItem] for the given element,
// in the given wrapper, following the given scroll state.
// Nil elements are allowed: the plane then stays unplaced.
func NewGalleryItem(it Item, el, wrapper dom.Element, scroll ScrollView) *GalleryItem {
	return &GalleryItem{MediaObject: newMediaObject(it), elem: binding{el: el}, wrapper: binding{el: wrapper}, scroll: scroll}
}

func (gi *GalleryItem) SetRendererBounds(b Bounds) {
	gi.Bounds = b
	gi.OnResize()
}

// OnResize resets the wrap offset and places the plane from freshly
// measured element and wrapper rects.
func (gi *GalleryItem) OnResize() {
	gi.Extra.SetZero()
	gi.elem.measure()
	gi.wrapper.measure()
	if !gi.elem.ok {
		return
	}
	gi.place(&gi.elem, gi.scroll.Current())
}

// Update places the plane at the current scroll, then wraps it
// around if it left the viewport in the scroll direction.
func (gi *GalleryItem) Update(tick clock.Tick) {
	if !gi.elem.ok {
		gi.OnResize()
		if !gi.elem.ok {
			return
		}
	}
	cur := gi.scroll.Current()
	gi.place(&gi.elem, cur)
	gi.Plane.Uniforms.Strength = gi.scroll.Strength()
	if gi.wrap() {
		gi.place(&gi.elem, cur)
	}
}

// wrap changes the wrap offset by at most one wrapper extent per axis,
// returning whether it changed.
func (gi *GalleryItem) wrap() bool {
	if !gi.wrapper.ok {
		return false
	}
	p := gi.Plane
	h := gi.Bounds.Half()
	dir := gi.scroll.Direction()
	wrapped := false

	half := p.Scale.X / 2
	switch {
	case dir.X == Left && p.Pos.X+half < -h.X:
		gi.Extra.X -= gi.wrapper.rect.Width
		wrapped = true
	case dir.X == Right && p.Pos.X-half > h.X:
		gi.Extra.X += gi.wrapper.rect.Width
		wrapped = true
	}

	half = p.Scale.Y / 2
	switch {
	case dir.Y == Up && p.Pos.Y+half < -h.Y:
		gi.Extra.Y -= gi.wrapper.rect.Height
		wrapped = true
	case dir.Y == Down && p.Pos.Y-half > h.Y:
		gi.Extra.Y += gi.wrapper.rect.Height
		wrapped = true
	}
	return wrapped
}

// CardItem is a proxy for an element of a fixed collection. It fades
// in and out, and shows the pointer intersection point.
type CardItem struct {
	MediaObject

	elem   binding
	scroll ScrollView
	tweens *tween.Group
	fade   *tween.Tween
}

// NewCardItem returns a new [CardItem] for the given element, running
// its animations on the given tween group. The element may be nil.
func NewCardItem(it Item, el dom.Element, tweens *tween.Group) *CardItem {
	ci := &CardItem{MediaObject: newMediaObject(it), elem: binding{el: el}, tweens: tweens}
	ci.Plane.Opacity = 0
	return ci
}

// SetScroll sets the scroll state followed by the card;
// nil keeps the card at its element position.
func (ci *CardItem) SetScroll(s ScrollView) {
	ci.scroll = s
}

func (ci *CardItem) current() math32.Vector2 {
	if ci.scroll == nil {
		return math32.Vector2{}
	}
	return ci.scroll.Current()
}

func (ci *CardItem) SetRendererBounds(b Bounds) {
	ci.Bounds = b
	ci.OnResize()
}

func (ci *CardItem) OnResize() {
	ci.elem.measure()
	if ci.elem.ok {
		ci.place(&ci.elem, ci.current())
	}
}

func (ci *CardItem) Update(tick clock.Tick) {
	if !ci.elem.ok {
		ci.OnResize()
		if !ci.elem.ok {
			return
		}
	}
	ci.place(&ci.elem, ci.current())
	if ci.scroll != nil {
		ci.Plane.Uniforms.Strength = ci.scroll.Strength()
	}
}

// SetIntersectPoint sets the pointer intersection uniform.
func (ci *CardItem) SetIntersectPoint(p math32.Vector3) {
	ci.Plane.Uniforms.IntersectPoint = p
}

// AnimateIn fades the card in after the given delay.
func (ci *CardItem) AnimateIn(delay time.Duration) {
	ci.animateOpacity(1, delay, tween.CubicOut)
}

// AnimateOut fades the card out.
func (ci *CardItem) AnimateOut() {
	ci.animateOpacity(0, 0, tween.CubicInOut)
}

func (ci *CardItem) animateOpacity(to float32, delay time.Duration, e tween.EasingFunc) {
	if ci.fade != nil {
		ci.fade.Stop()
	}
	if ci.tweens == nil {
		ci.Plane.Opacity = to
		return
	}
	ci.fade = tween.New(ci.Plane.Opacity, to, 800*time.Millisecond).
		Delay(delay).
		Easing(e).
		OnUpdate(func(v float32) { ci.Plane.Opacity = v }).
		Start(ci.tweens)
}

// Destroy stops the card animations.
func (ci *CardItem) Destroy() {
	if ci.fade != nil {
		ci.fade.Stop()
	}
}
