// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/xyz"
)

// Base is the part common to all scenes: the camera, the renderer
// bounds, the root group and the subscriptions to release on teardown.
type Base struct {
	Camera *xyz.Camera
	Bounds Bounds

	// Root holds everything drawn by the scene.
	Root *xyz.Group

	// Handles are released by [Base.Destroy].
	Handles events.Bag

	destroyed bool
}

// NewBase returns a new [Base] with a root group of the given name.
func NewBase(name string, camera *xyz.Camera) Base {
	return Base{Camera: camera, Root: xyz.NewGroup(name)}
}

// SetRendererBounds records the renderer bounds.
func (b *Base) SetRendererBounds(bd Bounds) {
	b.Bounds = bd
}

// Group returns the root group.
func (b *Base) Group() *xyz.Group {
	return b.Root
}

// IsDestroyed returns whether [Base.Destroy] was called.
func (b *Base) IsDestroyed() bool {
	return b.destroyed
}

// Destroy releases all handles and empties the root group.
// It is safe to call more than once.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.Handles.Release()
	b.Root.Clear()
}
