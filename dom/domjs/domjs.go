// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package domjs implements the dom interfaces on the browser document.
// JavaScript exceptions are returned by safejs as errors, which are
// logged; the failed call then degrades to a zero value.
package domjs

import (
	"github.com/hack-pad/safejs"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/dom"
)

// Document is the global document.
type Document struct {
	v safejs.Value
}

// NewDocument returns the global document.
func NewDocument() *Document {
	return &Document{v: errors.Log1(safejs.Global().Get("document"))}
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return Wrap(errors.Log1(d.v.Get("body")))
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	return Wrap(errors.Log1(d.v.Call("getElementById", id)))
}

// CreateElement returns a new element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	return Wrap(errors.Log1(d.v.Call("createElement", tag)))
}

func (d *Document) Query(selector string) dom.Element {
	return query(d.v, selector)
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return queryAll(d.v, selector)
}

// Element is a browser DOM element.
type Element struct {
	v safejs.Value
}

// Wrap returns the [Element] for the given value,
// or nil if it is null or undefined.
func Wrap(v safejs.Value) *Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v}
}

// Value returns the underlying JavaScript value.
func (e *Element) Value() safejs.Value {
	return e.v
}

func query(v safejs.Value, selector string) dom.Element {
	r, err := v.Call("querySelector", selector)
	if errors.Log(err) != nil {
		return nil
	}
	e := Wrap(r)
	if e == nil {
		return nil
	}
	return e
}

func queryAll(v safejs.Value, selector string) []dom.Element {
	list, err := v.Call("querySelectorAll", selector)
	if errors.Log(err) != nil {
		return nil
	}
	n, err := list.Length()
	if errors.Log(err) != nil {
		return nil
	}
	res := make([]dom.Element, 0, n)
	for i := range n {
		if e := Wrap(errors.Log1(list.Index(i))); e != nil {
			res = append(res, e)
		}
	}
	return res
}

func float(v safejs.Value, prop string) float32 {
	p, err := v.Get(prop)
	if err != nil {
		return 0
	}
	f, err := p.Float()
	if err != nil {
		return 0
	}
	return float32(f)
}

func (e *Element) Query(selector string) dom.Element {
	return query(e.v, selector)
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return queryAll(e.v, selector)
}

func (e *Element) Rect() (dom.Rect, bool) {
	connected, err := e.v.Get("isConnected")
	if err != nil {
		return dom.Rect{}, false
	}
	if ok, _ := connected.Truthy(); !ok {
		return dom.Rect{}, false
	}
	r, err := e.v.Call("getBoundingClientRect")
	if errors.Log(err) != nil {
		return dom.Rect{}, false
	}
	return dom.Rect{X: float(r, "left"), Y: float(r, "top"), Width: float(r, "width"), Height: float(r, "height")}, true
}

func (e *Element) Parent() dom.Element {
	p := Wrap(errors.Log1(e.v.Get("parentElement")))
	if p == nil {
		return nil
	}
	return p
}

func (e *Element) ClientWidth() float32 {
	return float(e.v, "clientWidth")
}

func (e *Element) ComputedStyle(property string) string {
	st, err := safejs.Global().Call("getComputedStyle", e.v)
	if errors.Log(err) != nil {
		return ""
	}
	v, err := st.Call("getPropertyValue", property)
	if errors.Log(err) != nil {
		return ""
	}
	s, _ := v.String()
	return s
}

func (e *Element) SetStyle(property, value string) {
	st, err := e.v.Get("style")
	if errors.Log(err) != nil {
		return
	}
	errors.Log1(st.Call("setProperty", property, value))
}

func (e *Element) Attr(name string) string {
	v, err := e.v.Call("getAttribute", name)
	if err != nil || v.IsNull() {
		return ""
	}
	s, _ := v.String()
	return s
}

func (e *Element) AppendChild(child dom.Element) {
	if c, ok := child.(*Element); ok {
		errors.Log1(e.v.Call("appendChild", c.v))
	}
}

func (e *Element) RemoveChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	p, err := c.v.Get("parentNode")
	if err != nil || !p.Equal(e.v) {
		return
	}
	errors.Log1(e.v.Call("removeChild", c.v))
}
