// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/xyz"
)

// ProxyFunc makes the proxy of an item bound to the given element,
// inside the given collection wrapper. Either element may be nil.
type ProxyFunc[P Proxy] func(it Item, el, wrapper dom.Element) P

// Collection binds a list of items to their DOM elements and owns
// their proxies, whose planes it adds to a group.
type Collection[P Proxy] struct {
	doc      dom.Querier
	group    *xyz.Group
	newProxy ProxyFunc[P]
	bounds   Bounds

	// Items are the proxies, in item order.
	Items []P

	wrapper binding

	// imageWrapper is the first item element, measured to derive
	// the scroll boundary of carousels.
	imageWrapper dom.Element

	// ImageWrapperWidth is the client width of the first item element.
	ImageWrapperWidth float32

	// ImageWrapperMarginRight is the right margin of the first item element.
	ImageWrapperMarginRight float32

	textures map[string]*xyz.Texture

	// onDestroy is called for each proxy removed.
	onDestroy func(p P)
}

// NewCollection returns a new empty [Collection] that finds elements in
// doc, adds planes to group and makes proxies with newProxy.
func NewCollection[P Proxy](doc dom.Querier, group *xyz.Group, newProxy ProxyFunc[P]) *Collection[P] {
	return &Collection[P]{doc: doc, group: group, newProxy: newProxy, ImageWrapperWidth: 1, ImageWrapperMarginRight: 1}
}

// Len returns the number of items.
func (c *Collection[P]) Len() int {
	return len(c.Items)
}

// WrapperRect returns the last measured rect of the collection
// wrapper, and whether it could be measured.
func (c *Collection[P]) WrapperRect() (dom.Rect, bool) {
	return c.wrapper.rect, c.wrapper.ok
}

// SetItems replaces the items: the previous proxies are destroyed,
// then a proxy is made for each item, bound to the element found
// by its image url.
func (c *Collection[P]) SetItems(items []Item) {
	c.destroyItems()
	c.wrapper.el = c.query(dom.WrapperSelector)
	c.wrapper.measure()
	c.imageWrapper = nil
	for _, it := range items {
		el := c.query(dom.SrcSelector(it.Src))
		if el == nil {
			slog.Warn("scene: no element for item", "key", it.Key, "src", it.Src)
		} else if c.imageWrapper == nil {
			c.imageWrapper = el
			c.measureImageWrapper()
		}
		p := c.newProxy(it, el, c.wrapper.el)
		mo := p.AsMediaObject()
		if tx, ok := c.textures[it.Src]; ok {
			mo.SetTexture(tx)
		}
		c.group.Add(mo.Plane)
		c.Items = append(c.Items, p)
		if !c.bounds.Empty() {
			p.SetRendererBounds(c.bounds)
		}
	}
}

func (c *Collection[P]) query(selector string) dom.Element {
	if c.doc == nil {
		return nil
	}
	return c.doc.Query(selector)
}

func (c *Collection[P]) measureImageWrapper() {
	if c.imageWrapper == nil {
		return
	}
	c.ImageWrapperWidth = c.imageWrapper.ClientWidth()
	c.ImageWrapperMarginRight = dom.Pixels(c.imageWrapper.ComputedStyle("margin-right"))
}

// SetRendererBounds passes new renderer bounds to all proxies,
// re-measuring the wrapper and first element.
func (c *Collection[P]) SetRendererBounds(b Bounds) {
	c.bounds = b
	c.wrapper.measure()
	c.measureImageWrapper()
	for _, p := range c.Items {
		p.SetRendererBounds(b)
	}
}

// OnResize re-measures all elements.
func (c *Collection[P]) OnResize() {
	c.wrapper.measure()
	c.measureImageWrapper()
	for _, p := range c.Items {
		p.OnResize()
	}
}

// SetTextures sets the texture of every item whose image is in the map.
// The map is kept for items set later.
func (c *Collection[P]) SetTextures(txs map[string]*xyz.Texture) {
	c.textures = txs
	for _, p := range c.Items {
		mo := p.AsMediaObject()
		if tx, ok := txs[mo.Item.Src]; ok {
			mo.SetTexture(tx)
		}
	}
}

// Update updates all proxies.
func (c *Collection[P]) Update(tick clock.Tick) {
	for _, p := range c.Items {
		p.Update(tick)
	}
}

// ByKey returns the proxy of the item with the given key.
func (c *Collection[P]) ByKey(key int) (P, bool) {
	for _, p := range c.Items {
		if p.AsMediaObject().Item.Key == key {
			return p, true
		}
	}
	var zero P
	return zero, false
}

func (c *Collection[P]) destroyItems() {
	for _, p := range c.Items {
		c.group.Remove(p.AsMediaObject().Plane)
		if c.onDestroy != nil {
			c.onDestroy(p)
		}
	}
	c.Items = nil
}

// Destroy removes all proxies.
func (c *Collection[P]) Destroy() {
	c.destroyItems()
}
