// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
)

// SlideScene is a carousel of cards navigated by index: the wheel
// moves the depth index, drags move the cards, and clicking a card
// animates to it. Idle input snaps to the nearest card.
type SlideScene struct {
	*ItemScene

	Nav *Navigator

	// groups are scaled by their distance to the current depth.
	groups []*xyz.Group
	ready  bool
}

// NewSlideScene returns a new [SlideScene].
func NewSlideScene(d Deps) *SlideScene {
	d.defaults()
	sc := &SlideScene{ItemScene: NewItemScene(d)}
	sc.Nav = NewNavigator(d.Config.Navigation, d.Tweens)
	if s := d.Scroll; s != nil {
		sc.Handles.Add(
			s.OnMouse(func(e input.ScrollEvent) { sc.Nav.OnDrag(e.Delta.X, e.Delta.Y) }),
			s.OnTouch(func(e input.ScrollEvent) { sc.Nav.OnTouch(e.Delta.X, e.Delta.Y) }),
			s.OnWheelEvent(func(e input.ScrollEvent) { sc.Nav.OnWheel(e.Delta.Y) }),
		)
	}
	sc.Handles.Add(
		sc.Interaction.OnClick(sc.handleIndexClick),
		sc.Nav.OnIndexChanged(func(i int) { slog.Debug("slide: index changed", "index", i) }),
	)
	return sc
}

// IsReady returns whether the textures have arrived;
// index clicks are ignored until then.
func (sc *SlideScene) IsReady() bool {
	return sc.ready
}

func (sc *SlideScene) SetItems(items []Item) {
	sc.ItemScene.SetItems(items)
	sc.Nav.SetCount(len(items))
	for _, ci := range sc.Cards.Items {
		ci.SetScroll(sc.Nav.Scroll())
	}
}

// ScrollBoundary returns the depth of the last card, derived from the
// wrapper width and the width and margin of the first card.
func (sc *SlideScene) ScrollBoundary() float32 {
	r, ok := sc.Cards.WrapperRect()
	if !ok {
		return 1
	}
	return r.Width - sc.Cards.ImageWrapperWidth - sc.Cards.ImageWrapperMarginRight/2
}

// SetRendererBounds re-measures, resets the scroll state and snaps
// back to the card that was targeted before the layout change.
func (sc *SlideScene) SetRendererBounds(b Bounds) {
	sc.Nav.Reset()
	sc.ItemScene.SetRendererBounds(b)
	sc.Nav.SetBoundary(sc.ScrollBoundary())
}

func (sc *SlideScene) SetTextures(txs map[string]*xyz.Texture) {
	sc.ItemScene.SetTextures(txs)
	sc.ready = true
}

func (sc *SlideScene) handleIndexClick(index int) {
	if !sc.ready {
		return
	}
	if index != sc.Nav.ActiveIndex() {
		sc.Nav.AnimateToIndex(index, AnimateOptions{})
	}
}

// AddGroup adds a group scaled by its distance to the current depth:
// group i gets scale |depth - i| mod 3. Cards do not need groups.
func (sc *SlideScene) AddGroup(g *xyz.Group) {
	sc.groups = append(sc.groups, g)
	sc.Root.AddGroup(g)
}

func (sc *SlideScene) positionGroups() {
	d := sc.Nav.Depth().Current
	for i, g := range sc.groups {
		s := math32.Mod(math32.Abs(d-float32(i)), 3)
		g.Scale.Set(s, s, s)
	}
}

// Update advances the navigation, then updates the cards.
func (sc *SlideScene) Update(tick clock.Tick) {
	if sc.IsDestroyed() {
		return
	}
	sc.Nav.Update(tick)
	sc.ItemScene.Update(tick)
	sc.positionGroups()
}

func (sc *SlideScene) Destroy() {
	if sc.IsDestroyed() {
		return
	}
	sc.Nav.Stop()
	sc.groups = nil
	sc.ItemScene.Destroy()
}
