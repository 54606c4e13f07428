// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domtest

import (
	"strings"
	"testing"

	"github.com/planesgl/planes/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	d := NewDocument()
	a := d.NewElement("div").SetAttr(dom.SrcAttr, "a.png")
	b := d.NewElement("div").SetAttr(dom.SrcAttr, "b.png")
	w := d.NewElement("div").SetAttr(dom.WrapperAttr, "wrapper").Add(a, b)
	d.Body.Add(w)

	assert.Equal(t, dom.Element(w), d.Query(dom.WrapperSelector))
	assert.Equal(t, dom.Element(b), d.Query(dom.SrcSelector("b.png")))
	assert.Nil(t, d.Query(dom.SrcSelector("c.png")))
	assert.Len(t, d.QueryAll(`[data-src="a.png"]`), 1)
	assert.Len(t, d.QueryAll("div"), 3)

	assert.Equal(t, dom.Element(w), a.Parent())
	assert.Equal(t, dom.Element(d.Body), w.Parent())

	w.RemoveChild(a)
	assert.Nil(t, a.Parent())
	assert.Nil(t, d.Query(dom.SrcSelector("a.png")))
}

func TestElement(t *testing.T) {
	d := NewDocument()
	e := d.NewElement("div").SetRect(1, 2, 30, 40)

	// not in the document yet
	_, ok := e.Rect()
	assert.False(t, ok)

	d.Body.Add(e)
	r, ok := e.Rect()
	require.True(t, ok)
	assert.Equal(t, dom.Rect{X: 1, Y: 2, Width: 30, Height: 40}, r)
	assert.Equal(t, float32(30), e.ClientWidth())

	e.Client = 28
	assert.Equal(t, float32(28), e.ClientWidth())

	e.SetStyle("transform", "translateX(3px)")
	assert.Equal(t, "translateX(3px)", e.Style("transform"))
	assert.Equal(t, "translateX(3px)", e.ComputedStyle("transform"))

	e.Detached = true
	_, ok = e.Rect()
	assert.False(t, ok)
}

const page = `<!doctype html>
<html><head><style>
figure { margin-right: 24px; }
.wide { margin-right: 8px; }
</style></head>
<body data-layout="0 0 800 600">
<div data-collection-wrapper="wrapper" data-layout="0 100 1200 300">
<figure data-src="a.jpg" data-layout="0 100 300 300"></figure>
<figure class="wide" data-src="b.jpg" data-layout="324 100 300 300" style="opacity: 0.5"></figure>
</div>
</body></html>`

func TestParseHTML(t *testing.T) {
	d, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)

	w := d.Query(dom.WrapperSelector)
	require.NotNil(t, w)
	r, ok := w.Rect()
	require.True(t, ok)
	assert.Equal(t, dom.Rect{X: 0, Y: 100, Width: 1200, Height: 300}, r)

	a := d.Query(dom.SrcSelector("a.jpg"))
	b := d.Query(dom.SrcSelector("b.jpg"))
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, float32(24), dom.Pixels(a.ComputedStyle("margin-right")))
	assert.Equal(t, float32(8), dom.Pixels(b.ComputedStyle("margin-right")))
	assert.Equal(t, "0.5", b.ComputedStyle("opacity"))
	assert.Equal(t, float32(300), b.ClientWidth())

	b.SetStyle("transform", dom.TranslateX(10))
	var sb strings.Builder
	require.NoError(t, d.Render(&sb))
	assert.Contains(t, sb.String(), `style="transform: translateX(10px);"`)

	_, err = ParseLayout("1 2 3")
	assert.Error(t, err)
}

func TestParseHTMLInlineStyle(t *testing.T) {
	d, err := ParseHTML(strings.NewReader(`<html><body>
<figure data-src="a.jpg" style="margin-right: 12px"></figure>
<figure data-src="b.jpg" style="opacity: 0.25; margin-right: 6px"></figure>
<figure data-src="c.jpg" style=" margin-right: 4px; "></figure>
</body></html>`))
	require.NoError(t, err)

	a := d.Query(dom.SrcSelector("a.jpg"))
	b := d.Query(dom.SrcSelector("b.jpg"))
	c := d.Query(dom.SrcSelector("c.jpg"))
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotNil(t, c)
	assert.Equal(t, float32(12), dom.Pixels(a.ComputedStyle("margin-right")))
	assert.Equal(t, "0.25", b.ComputedStyle("opacity"))
	assert.Equal(t, float32(6), dom.Pixels(b.ComputedStyle("margin-right")))
	assert.Equal(t, float32(4), dom.Pixels(c.ComputedStyle("margin-right")))
}

func TestPage(t *testing.T) {
	p := NewPage(PageOptions{Width: 800, Height: 600, URLs: []string{"a", "b", "c"}, ItemWidth: 100, ItemHeight: 50, Gap: 20, Mirrors: 2})
	require.Len(t, p.Items, 3)
	assert.Equal(t, dom.Rect{X: 120, Y: 0, Width: 100, Height: 50}, p.Items[1].Layout)
	assert.Equal(t, float32(360), p.Wrapper.Layout.Width)
	assert.Equal(t, float32(20), dom.Pixels(p.Items[0].ComputedStyle("margin-right")))
	assert.Len(t, p.QueryAll(dom.MirrorSelector), 2)
	assert.Equal(t, dom.Element(p.Items[2]), p.Query(dom.SrcSelector("c")))

	g := NewPage(PageOptions{Width: 800, Height: 600, URLs: []string{"a", "b", "c", "d", "e"}, Layout: Grid, Columns: 2, ItemWidth: 100, ItemHeight: 50})
	assert.Equal(t, dom.Rect{X: 0, Y: 100, Width: 100, Height: 50}, g.Items[4].Layout)
	assert.Equal(t, float32(800), g.Wrapper.Layout.Width)
	assert.Equal(t, float32(150), g.Wrapper.Layout.Height)

	g.Scroll(0, 10)
	assert.Equal(t, float32(90), g.Items[4].Layout.Y)
}
