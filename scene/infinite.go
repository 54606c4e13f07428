// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/dom"
)

// InfiniteScroll moves a plain DOM element in lockstep with a scroll
// state through a CSS transform, wrapping it by the extent of its
// parent the same way a [GalleryItem] wraps its plane.
type InfiniteScroll struct {
	el     dom.Element
	scroll ScrollView

	// Factor scales the vertical scroll into the translation.
	Factor float32

	// Extra is the wrap offset; it changes by whole parent heights only.
	Extra float32

	bounds Bounds
	elem   binding
	parent binding
}

// NewInfiniteScroll returns a new [InfiniteScroll] for the given element.
func NewInfiniteScroll(el dom.Element, scroll ScrollView, factor float32) *InfiniteScroll {
	is := &InfiniteScroll{el: el, scroll: scroll, Factor: factor}
	is.measure()
	return is
}

// measure clears the transform, so that the element is measured
// at its layout position, and measures the element and its parent.
func (is *InfiniteScroll) measure() {
	if is.el == nil {
		return
	}
	is.el.SetStyle("transform", dom.TranslateX(0))
	is.elem.el = is.el
	is.elem.measure()
	is.parent.el = is.el.Parent()
	is.parent.measure()
}

// SetRendererBounds resets the wrap offset and re-measures.
func (is *InfiniteScroll) SetRendererBounds(b Bounds) {
	is.bounds = b
	is.Extra = 0
	is.measure()
}

// Translate returns the current translation in pixels.
func (is *InfiniteScroll) Translate() float32 {
	return is.scroll.Current().Y*is.Factor + is.Extra
}

// Update sets the transform for the current scroll, then wraps.
func (is *InfiniteScroll) Update(tick clock.Tick) {
	if !is.elem.ok || !is.parent.ok {
		return
	}
	t := is.scroll.Current().Y * is.Factor
	is.el.SetStyle("transform", dom.TranslateX(t+is.Extra))

	r := is.elem.rect
	y := r.Y + r.Height - t - is.Extra
	switch is.scroll.Direction().Y {
	case Up:
		if y < 0 {
			is.Extra -= is.parent.rect.Height
		}
	case Down:
		if y > is.bounds.Height+r.Height {
			is.Extra += is.parent.rect.Height
		}
	}
}
