// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/xyz"
)

// GalleryScene is an endless gallery: scrolling in any direction moves
// the planes, which wrap around the collection wrapper, bent onto an
// orbit that pushes planes back and turns them toward the center as
// they approach the sides. Mirrored DOM text scrolls along with them.
type GalleryScene struct {
	Base

	Interaction *Interaction
	Items       *Collection[*GalleryItem]
	Nav         *Navigator
	Mirrors     []*InfiniteScroll

	cfg  config.Gallery
	deps Deps
}

// NewGalleryScene returns a new [GalleryScene].
func NewGalleryScene(d Deps) *GalleryScene {
	d.defaults()
	sc := &GalleryScene{Base: NewBase("gallery", d.Camera), cfg: d.Config.Gallery, deps: d}
	sc.Interaction = NewInteraction(d.Config.Pointer, d.Config.Frame.FPS, d.Pointer, d.Camera, sc.Root, &sc.Handles)

	nav := d.Config.Navigation
	nav.TimeToSnap = 0 // no index snapping in a free scrolling gallery
	sc.Nav = NewNavigator(nav, d.Tweens)

	scroll := sc.Nav.Scroll()
	sc.Items = NewCollection(d.Document, sc.Root, func(it Item, el, wrapper dom.Element) *GalleryItem {
		return NewGalleryItem(it, el, wrapper, scroll)
	})
	sc.Items.onDestroy = func(gi *GalleryItem) {
		sc.Interaction.Forget(gi.Plane)
	}
	if s := d.Scroll; s != nil {
		m := sc.cfg.WheelMultiplier
		sc.Handles.Add(
			s.OnMouse(func(e input.ScrollEvent) { sc.Nav.OnDrag(e.Delta.X, e.Delta.Y) }),
			s.OnTouch(func(e input.ScrollEvent) { sc.Nav.OnTouch(e.Delta.X, e.Delta.Y) }),
			s.OnWheelEvent(func(e input.ScrollEvent) { sc.Nav.AddScroll(e.Delta.X*m, -e.Delta.Y*m) }),
		)
	}
	if d.Document != nil {
		for _, el := range d.Document.QueryAll(dom.MirrorSelector) {
			sc.Mirrors = append(sc.Mirrors, NewInfiniteScroll(el, scroll, sc.cfg.TextFactor))
		}
	}
	return sc
}

func (sc *GalleryScene) SetItems(items []Item) {
	sc.Items.SetItems(items)
}

func (sc *GalleryScene) SetRendererBounds(b Bounds) {
	sc.Base.SetRendererBounds(b)
	sc.Nav.Reset()
	sc.Items.SetRendererBounds(b)
	for _, m := range sc.Mirrors {
		m.SetRendererBounds(b)
	}
	sc.layout()
}

func (sc *GalleryScene) SetTextures(txs map[string]*xyz.Texture) {
	sc.Items.SetTextures(txs)
}

func (sc *GalleryScene) SetHovered(key int) {
	sc.Interaction.SetHovered(key)
}

// layout bends the planes onto the orbit: the further a plane is from
// the center, the further back it is pushed and the more it turns.
func (sc *GalleryScene) layout() {
	hw := sc.Bounds.Width / 2
	if hw <= 0 {
		return
	}
	for _, gi := range sc.Items.Items {
		p := gi.Plane
		nx := p.Pos.X / hw
		p.Pos.Z = -sc.cfg.OrbitDepth * nx * nx
		p.Rotation.Y = -nx * sc.cfg.OrbitAngle
	}
}

// Update advances the scroll, places the planes and mirrors,
// then picks with the pointer.
func (sc *GalleryScene) Update(tick clock.Tick) {
	if sc.IsDestroyed() {
		return
	}
	sc.Nav.Update(tick)
	sc.Items.Update(tick)
	sc.layout()
	for _, m := range sc.Mirrors {
		m.Update(tick)
	}
	sc.Interaction.Update(tick)
}

func (sc *GalleryScene) Destroy() {
	if sc.IsDestroyed() {
		return
	}
	sc.Nav.Stop()
	sc.Items.Destroy()
	sc.Base.Destroy()
}
