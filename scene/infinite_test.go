// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/dom/domtest"
	"github.com/stretchr/testify/assert"
)

func TestInfiniteScroll(t *testing.T) {
	doc := domtest.NewDocument()
	box := doc.NewElement("div").SetRect(0, 0, 1280, 800)
	el := doc.NewElement("p").SetRect(0, 700, 1280, 100)
	doc.Body.Add(box.Add(el))

	s := &ScrollState{}
	is := NewInfiniteScroll(el, s.View(), 1.5)
	is.SetRendererBounds(Bounds{Width: 1280, Height: 800})
	assert.Equal(t, dom.TranslateX(0), el.Style("transform"))

	s.Current.Y = 100
	s.Direction.Y = Up
	is.Update(frame)
	assert.Equal(t, dom.TranslateX(150), el.Style("transform"))
	assert.Zero(t, is.Extra)

	// the element scrolled out of the top comes back one parent height down
	s.Current.Y = 1000
	is.Update(frame)
	assert.Equal(t, float32(-800), is.Extra)
	assert.Equal(t, float32(700), is.Translate())
	is.Update(frame)
	assert.Equal(t, float32(-800), is.Extra)
	assert.Equal(t, dom.TranslateX(700), el.Style("transform"))

	s.Current.Y = -1000
	s.Direction.Y = Down
	is.Update(frame)
	assert.Equal(t, float32(0), is.Extra)
	is.Update(frame)
	assert.Equal(t, float32(800), is.Extra)

	is.SetRendererBounds(Bounds{Width: 1280, Height: 800})
	assert.Zero(t, is.Extra)
	assert.Equal(t, dom.TranslateX(0), el.Style("transform"))
}

func TestInfiniteScrollMissing(t *testing.T) {
	s := &ScrollState{}
	is := NewInfiniteScroll(nil, s.View(), 1.2)
	is.SetRendererBounds(Bounds{Width: 1280, Height: 800})
	is.Update(frame)
	assert.Zero(t, is.Extra)

	doc := domtest.NewDocument()
	el := doc.NewElement("p").SetRect(0, 0, 10, 10)
	is = NewInfiniteScroll(el, s.View(), 1.2)
	is.Update(frame)
	assert.Zero(t, is.Extra)
}
