// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom defines the small part of the HTML document that the
// scenes depend on: finding companion elements by data attribute,
// measuring their layout, and setting inline styles. Implementations
// are in [github.com/planesgl/planes/dom/domjs] for the browser and
// [github.com/planesgl/planes/dom/domtest] for tests and headless runs.
package dom

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is the layout rectangle of an element in viewport pixels,
// as returned by getBoundingClientRect.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Left returns the left edge.
func (r Rect) Left() float32 { return r.X }

// Top returns the top edge.
func (r Rect) Top() float32 { return r.Y }

// Right returns the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Empty returns whether the rect has no area, which is the
// case for elements that have not been laid out yet.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", r.X, r.Y, r.Width, r.Height)
}

// Querier finds elements by CSS selector. Only attribute selectors
// of the form [name="value"] are required to be supported.
type Querier interface {
	// Query returns the first matching element, or nil.
	Query(selector string) Element

	// QueryAll returns all matching elements in document order.
	QueryAll(selector string) []Element
}

// Document is the page the scenes are mounted in.
type Document interface {
	Querier
}

// Element is one DOM element.
type Element interface {
	Querier

	// Rect returns the current layout rectangle of the element.
	// It returns false if the element is detached or cannot be measured.
	Rect() (Rect, bool)

	// Parent returns the parent element, or nil.
	Parent() Element

	// ClientWidth returns the inner width of the element in pixels.
	ClientWidth() float32

	// ComputedStyle returns the computed value of the given CSS property.
	ComputedStyle(property string) string

	// SetStyle sets an inline CSS property.
	SetStyle(property, value string)

	// Attr returns the value of the given attribute, or "".
	Attr(name string) string

	// AppendChild appends the given element as the last child.
	AppendChild(child Element)

	// RemoveChild removes the given child element.
	RemoveChild(child Element)
}

// Data attributes used to bind planes to their companion elements.
const (
	// WrapperAttr marks the collection wrapper element, whose
	// rect is the wrap unit of infinite scrolling.
	WrapperAttr = "data-collection-wrapper"

	// SrcAttr marks the element laid out for one media item;
	// its value is the image url.
	SrcAttr = "data-src"

	// MirrorAttr marks plain DOM content that scrolls in lockstep
	// with the planes by way of a CSS transform.
	MirrorAttr = "data-scroll-mirror"
)

// AttrSelector returns the selector matching elements whose attribute
// name has the given value.
func AttrSelector(name, value string) string {
	return "[" + name + "=" + strconv.Quote(value) + "]"
}

// WrapperSelector matches the collection wrapper element.
var WrapperSelector = AttrSelector(WrapperAttr, "wrapper")

// MirrorSelector matches the scroll mirrored elements.
var MirrorSelector = AttrSelector(MirrorAttr, "mirror")

// SrcSelector returns the selector of the element of the media item
// with the given image url.
func SrcSelector(url string) string {
	return AttrSelector(SrcAttr, url)
}

// Pixels parses a CSS pixel length such as "12px" or "12.5",
// returning 0 for empty, "auto" and other non-numeric values.
func Pixels(s string) float32 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// TranslateX returns a CSS transform value translating by x pixels.
func TranslateX(x float32) string {
	return "translateX(" + strconv.FormatFloat(float64(x), 'f', -1, 32) + "px)"
}
