// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domtest provides an in-memory implementation of the dom
// interfaces on top of parsed HTML, with explicitly set layout,
// for tests and headless runs.
package domtest

import (
	"io"
	"log/slog"
	"strings"

	selcss "github.com/ericchiang/css"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an in-memory [dom.Document] holding an HTML node tree.
// Each node is wrapped by at most one [Element], so that elements
// compare equal across queries.
type Document struct {

	// Root is the document node.
	Root *html.Node

	// Body is the body element.
	Body *Element

	elements map[*html.Node]*Element
}

// NewDocument returns a new document with an empty body.
func NewDocument() *Document {
	d := errors.Must1(ParseHTML(strings.NewReader("<html><head></head><body></body></html>")))
	return d
}

// ParseHTML parses an HTML page into a [Document]. Styles in <style>
// elements and style attributes become computed styles, and the layout
// of each element is read from its data-layout="x y width height" attribute.
func ParseHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := &Document{Root: root, elements: map[*html.Node]*Element{}}
	for n := range root.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}
		e := d.Element(n)
		if n.DataAtom == atom.Body {
			d.Body = e
		}
		if l := e.Attr(LayoutAttr); l != "" {
			e.Layout = errors.Log1(ParseLayout(l))
		}
	}
	if d.Body == nil {
		d.Body = d.NewElement("body")
		root.AppendChild(d.Body.Node)
	}
	d.applyStyles()
	return d, nil
}

// Element returns the [Element] for the given node.
func (d *Document) Element(n *html.Node) *Element {
	if e, ok := d.elements[n]; ok {
		return e
	}
	e := &Element{doc: d, Node: n, Computed: map[string]string{}, Styles: map[string]string{}}
	d.elements[n] = e
	return e
}

// NewElement returns a new element with the given tag that is not
// yet attached to the document.
func (d *Document) NewElement(tag string) *Element {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	return d.Element(n)
}

func (d *Document) Query(selector string) dom.Element {
	return d.Body.Query(selector)
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return d.Body.QueryAll(selector)
}

// Render writes the document as HTML, including inline styles.
func (d *Document) Render(w io.Writer) error {
	for n, e := range d.elements {
		if len(e.Styles) > 0 {
			setAttr(n, "style", e.styleString())
		}
	}
	return html.Render(w, d.Root)
}

// Element is an in-memory [dom.Element]. Its layout is not computed:
// the rect, client width and computed styles are set directly.
type Element struct {
	doc *Document

	// Node is the underlying HTML node.
	Node *html.Node

	// Layout is the rect returned by Rect.
	Layout dom.Rect

	// Detached makes Rect report that the element cannot be measured,
	// even when it is in the document.
	Detached bool

	// Client is the client width; if zero, the layout width is used.
	Client float32

	// Computed holds computed style values.
	Computed map[string]string

	// Styles holds the inline styles set with SetStyle.
	Styles map[string]string
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) *Element {
	setAttr(e.Node, name, value)
	return e
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// SetRect sets [Element.Layout].
func (e *Element) SetRect(x, y, width, height float32) *Element {
	e.Layout = dom.Rect{X: x, Y: y, Width: width, Height: height}
	return e
}

// SetComputed sets a computed style value.
func (e *Element) SetComputed(property, value string) *Element {
	e.Computed[property] = value
	return e
}

// Add appends the given children and returns the element.
func (e *Element) Add(kids ...*Element) *Element {
	for _, k := range kids {
		e.AppendChild(k)
	}
	return e
}

// Style returns an inline style value.
func (e *Element) Style(property string) string {
	return e.Styles[property]
}

// InDocument returns whether the element is attached to its document.
func (e *Element) InDocument() bool {
	for n := e.Node; n != nil; n = n.Parent {
		if n == e.doc.Root {
			return true
		}
	}
	return false
}

func (e *Element) Rect() (dom.Rect, bool) {
	if e.Detached || !e.InDocument() {
		return dom.Rect{}, false
	}
	return e.Layout, true
}

func (e *Element) Parent() dom.Element {
	p := e.Node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.Element(p)
}

func (e *Element) ClientWidth() float32 {
	if e.Client != 0 {
		return e.Client
	}
	return e.Layout.Width
}

func (e *Element) ComputedStyle(property string) string {
	if v, ok := e.Styles[property]; ok {
		return v
	}
	return e.Computed[property]
}

func (e *Element) SetStyle(property, value string) {
	e.Styles[property] = value
}

func (e *Element) Attr(name string) string {
	for _, a := range e.Node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c.doc != e.doc {
		slog.Error("domtest: cannot append element of another document", "child", child)
		return
	}
	if p := c.Node.Parent; p != nil {
		p.RemoveChild(c.Node)
	}
	e.Node.AppendChild(c.Node)
}

func (e *Element) RemoveChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c.Node.Parent != e.Node {
		return
	}
	e.Node.RemoveChild(c.Node)
}

func (e *Element) Query(selector string) dom.Element {
	all := e.QueryAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func (e *Element) QueryAll(selector string) []dom.Element {
	sel, err := selcss.Parse(selector)
	if errors.Log(err) != nil {
		return nil
	}
	var res []dom.Element
	for _, n := range sel.Select(e.Node) {
		res = append(res, e.doc.Element(n))
	}
	return res
}

func (e *Element) String() string {
	return "<" + e.Node.Data + ">"
}
