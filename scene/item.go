// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"time"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/xyz"
)

// ItemScene shows a fixed collection of cards with pointer interaction.
type ItemScene struct {
	Base

	Interaction *Interaction
	Cards       *Collection[*CardItem]

	deps Deps
}

// NewItemScene returns a new [ItemScene].
func NewItemScene(d Deps) *ItemScene {
	d.defaults()
	sc := &ItemScene{Base: NewBase("items", d.Camera), deps: d}
	sc.Interaction = NewInteraction(d.Config.Pointer, d.Config.Frame.FPS, d.Pointer, d.Camera, sc.Root, &sc.Handles)
	sc.Cards = NewCollection(d.Document, sc.Root, func(it Item, el, wrapper dom.Element) *CardItem {
		return NewCardItem(it, el, d.Tweens)
	})
	sc.Cards.onDestroy = func(ci *CardItem) {
		ci.Destroy()
		sc.Interaction.Forget(ci.Plane)
	}
	return sc
}

func (sc *ItemScene) SetItems(items []Item) {
	sc.Cards.SetItems(items)
}

func (sc *ItemScene) SetRendererBounds(b Bounds) {
	sc.Base.SetRendererBounds(b)
	sc.Cards.SetRendererBounds(b)
}

// SetTextures sets the textures and fades the cards in.
func (sc *ItemScene) SetTextures(txs map[string]*xyz.Texture) {
	sc.Cards.SetTextures(txs)
	sc.AnimateIn()
}

// AnimateIn fades in all cards, one after the other.
func (sc *ItemScene) AnimateIn() {
	for i, ci := range sc.Cards.Items {
		ci.AnimateIn(time.Duration(i) * 80 * time.Millisecond)
	}
}

// AnimateOut fades out all cards.
func (sc *ItemScene) AnimateOut() {
	for _, ci := range sc.Cards.Items {
		ci.AnimateOut()
	}
}

func (sc *ItemScene) SetHovered(key int) {
	sc.Interaction.SetHovered(key)
}

// Update updates the cards, then the pointer interaction against
// their new placement, and passes the intersection point to the cards.
func (sc *ItemScene) Update(tick clock.Tick) {
	if sc.IsDestroyed() {
		return
	}
	sc.Cards.Update(tick)
	sc.Interaction.Update(tick)
	for _, ci := range sc.Cards.Items {
		ci.SetIntersectPoint(sc.Interaction.IntersectPoint)
	}
}

func (sc *ItemScene) Destroy() {
	if sc.IsDestroyed() {
		return
	}
	sc.Cards.Destroy()
	sc.Base.Destroy()
}
