// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domtest

import (
	"strconv"

	"github.com/planesgl/planes/dom"
)

// Layouts are the arrangements of media elements made by [NewPage].
type Layouts int32

const (
	// Row lays items out in one horizontal strip, as for a slider.
	Row Layouts = iota

	// Grid lays items out in rows of [PageOptions.Columns], as for a gallery.
	Grid
)

// PageOptions configures [NewPage].
type PageOptions struct {
	Width, Height float32

	URLs   []string
	Layout Layouts

	ItemWidth, ItemHeight float32

	// Gap is the space between items, also reported as
	// the computed margin-right of each item.
	Gap float32

	// Columns is the number of columns of a Grid.
	Columns int

	// Mirrors is the number of scroll mirrored text elements.
	Mirrors int
}

// Defaults sets default values for unset options.
func (o *PageOptions) Defaults() {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.ItemWidth <= 0 {
		o.ItemWidth = 300
	}
	if o.ItemHeight <= 0 {
		o.ItemHeight = 400
	}
	if o.Columns <= 0 {
		o.Columns = 4
	}
}

// Page is a laid out document with the elements the scenes bind to.
type Page struct {
	*Document

	// Mount is the element that holds the canvas.
	Mount *Element

	Wrapper *Element
	Items   []*Element
	Mirrors []*Element
}

// NewPage returns a document laid out with the given options:
// a full viewport mount element, a collection wrapper holding one
// element per url, and the requested mirror elements in their own container.
func NewPage(o PageOptions) *Page {
	o.Defaults()
	p := &Page{Document: NewDocument()}
	p.Body.SetRect(0, 0, o.Width, o.Height)
	p.Mount = p.NewElement("div").SetRect(0, 0, o.Width, o.Height)
	p.Wrapper = p.NewElement("div").SetAttr(dom.WrapperAttr, "wrapper")
	p.Body.Add(p.Mount, p.Wrapper)

	cols := len(o.URLs)
	if o.Layout == Grid {
		cols = o.Columns
	}
	cols = max(cols, 1)
	for i, url := range o.URLs {
		c, r := i%cols, i/cols
		x := float32(c) * (o.ItemWidth + o.Gap)
		y := float32(r) * (o.ItemHeight + o.Gap)
		it := p.NewElement("figure").SetAttr(dom.SrcAttr, url).SetRect(x, y, o.ItemWidth, o.ItemHeight)
		it.SetComputed("margin-right", strconv.FormatFloat(float64(o.Gap), 'f', -1, 32)+"px")
		p.Wrapper.Add(it)
		p.Items = append(p.Items, it)
	}
	rows := (len(o.URLs) + cols - 1) / cols
	w := float32(min(cols, max(len(o.URLs), 1))) * (o.ItemWidth + o.Gap)
	h := float32(rows) * (o.ItemHeight + o.Gap)
	if o.Layout == Grid {
		w = max(w, o.Width)
	}
	p.Wrapper.SetRect(0, 0, w, h)

	if o.Mirrors > 0 {
		box := p.NewElement("div").SetRect(0, 0, o.Width, o.Height)
		lh := o.Height / float32(o.Mirrors)
		for i := range o.Mirrors {
			m := p.NewElement("p").SetAttr(dom.MirrorAttr, "mirror").SetRect(0, float32(i)*lh, o.Width, lh)
			box.Add(m)
			p.Mirrors = append(p.Mirrors, m)
		}
		p.Body.Add(box)
	}
	return p
}

// Scroll moves all item rects by the given amount,
// as when the page itself is scrolled.
func (p *Page) Scroll(dx, dy float32) {
	for _, it := range p.Items {
		it.Layout.X -= dx
		it.Layout.Y -= dy
	}
	p.Wrapper.Layout.X -= dx
	p.Wrapper.Layout.Y -= dy
}
