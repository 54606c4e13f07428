// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements the scenes of textured planes that follow
// the layout of DOM elements: the per item proxies, the eased scroll
// and index navigation, the infinite scroll wrap around, and the
// concrete scenes composed from these parts.
//
// A scene is updated once per frame by the app, after the input
// services. It writes its own state first and then updates its
// proxies, which only read that state.
package scene

import (
	"fmt"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/tween"
	"github.com/planesgl/planes/xyz"
)

// Scene is a set of planes kept in register with DOM elements.
type Scene interface {

	// SetItems replaces the items shown.
	SetItems(items []Item)

	// SetRendererBounds sets the size of the render surface,
	// re-measuring all elements.
	SetRendererBounds(b Bounds)

	// SetTextures sets the loaded textures, keyed by image url.
	SetTextures(txs map[string]*xyz.Texture)

	// SetHovered forces hover on the item with the given key,
	// or clears it with [NoItem].
	SetHovered(key int)

	// Update advances the scene by one frame.
	Update(tick clock.Tick)

	// Group returns the root group to render.
	Group() *xyz.Group

	// Destroy releases everything the scene holds.
	// It is safe to call more than once.
	Destroy()
}

// Deps are the shared services a scene is built on.
type Deps struct {
	Config   *config.Config
	Camera   *xyz.Camera
	Document dom.Querier
	Pointer  *input.Pointer
	Scroll   *input.Scroll

	// Tweens runs all animations and timers of the scene.
	Tweens *tween.Group
}

// Kinds are the kinds of scene made by [New].
type Kinds int32

const (
	KindItem Kinds = iota
	KindSlide
	KindGallery
)

func (k Kinds) String() string {
	switch k {
	case KindSlide:
		return "slide"
	case KindGallery:
		return "gallery"
	}
	return "item"
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kinds, error) {
	for _, k := range []Kinds{KindItem, KindSlide, KindGallery} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindItem, fmt.Errorf("scene: unknown kind %q", s)
}

// New returns a new scene of the given kind.
func New(k Kinds, d Deps) Scene {
	switch k {
	case KindSlide:
		return NewSlideScene(d)
	case KindGallery:
		return NewGalleryScene(d)
	}
	return NewItemScene(d)
}

func (d *Deps) defaults() {
	if d.Config == nil {
		d.Config = config.New()
	}
	if d.Camera == nil {
		d.Camera = xyz.NewCamera()
	}
	if d.Tweens == nil {
		d.Tweens = &tween.Group{}
	}
}
