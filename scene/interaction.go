// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
)

// NoItem is the key used when no item is hovered or picked.
const NoItem = -1

type hoverState struct {
	pos, vel float64
}

// Interaction picks the planes of a scene with the pointer: it casts
// the pointer ray through the camera, tracks the hovered plane and an
// eased intersection point, springs the hover amount of each plane,
// and turns pointer clicks on planes into item clicks.
type Interaction struct {
	cfg     config.Pointer
	pointer *input.Pointer
	camera  *xyz.Camera
	root    *xyz.Group

	// IntersectPoint is the eased point where the pointer ray hits a plane.
	IntersectPoint math32.Vector3
	target         math32.Vector3

	hovered  int
	override int

	spring harmonica.Spring
	hovers map[*xyz.Plane]*hoverState

	click events.Listeners[int]
	hover events.Listeners[int]
}

// NewInteraction returns a new [Interaction] picking the planes under
// root. Its pointer subscriptions are added to the given bag.
func NewInteraction(cfg config.Pointer, fps int, pointer *input.Pointer, camera *xyz.Camera, root *xyz.Group, bag *events.Bag) *Interaction {
	if fps <= 0 {
		fps = 60
	}
	in := &Interaction{cfg: cfg, pointer: pointer, camera: camera, root: root,
		hovered: NoItem, override: NoItem, hovers: map[*xyz.Plane]*hoverState{}}
	in.spring = harmonica.NewSpring(harmonica.FPS(fps), cfg.HoverFrequency, cfg.HoverDamping)
	if pointer != nil {
		bag.Add(pointer.OnClick(in.onClick))
	}
	return in
}

// Pick returns the nearest plane hit under the given point
// in normalized device coordinates.
func (in *Interaction) Pick(ndc math32.Vector2) (xyz.Hit, bool) {
	hits := in.root.Intersect(in.camera.Ray(ndc))
	if len(hits) == 0 {
		return xyz.Hit{}, false
	}
	return hits[0], true
}

func (in *Interaction) onClick(e input.PointerEvent) {
	if h, ok := in.Pick(e.Normalized); ok {
		in.click.Call(h.Plane.Key)
	}
}

// OnClick adds a listener called with the key of a clicked plane.
func (in *Interaction) OnClick(f func(key int)) events.Handle {
	return in.click.Add(f)
}

// OnHover adds a listener called with the key of the newly hovered
// plane, or [NoItem], when it changes.
func (in *Interaction) OnHover(f func(key int)) events.Handle {
	return in.hover.Add(f)
}

// Hovered returns the key of the hovered plane, or [NoItem].
func (in *Interaction) Hovered() int {
	if in.override != NoItem {
		return in.override
	}
	return in.hovered
}

// SetHovered forces the given key to be hovered regardless of the
// pointer, as when hovering its entry in a DOM list. [NoItem] returns
// hover to the pointer.
func (in *Interaction) SetHovered(key int) {
	in.override = key
}

// Update picks with the current pointer, eases the intersection point
// and steps the hover springs.
func (in *Interaction) Update(tick clock.Tick) {
	hovered := NoItem
	if in.pointer != nil {
		if h, ok := in.Pick(in.pointer.Normalized()); ok {
			in.target = h.Point
			hovered = h.Plane.Key
		}
	}
	if hovered != in.hovered {
		in.hovered = hovered
		in.hover.Call(hovered)
	}
	f := math32.Min(in.cfg.IntersectEase*tick.SlowDownFactor, 1)
	in.IntersectPoint = math32.Vec3(
		math32.Lerp(in.IntersectPoint.X, in.target.X, f),
		math32.Lerp(in.IntersectPoint.Y, in.target.Y, f),
		math32.Lerp(in.IntersectPoint.Z, in.target.Z, f))

	steps := max(1, int(math32.Round(tick.SlowDownFactor)))
	cur := in.Hovered()
	in.root.Walk(func(p *xyz.Plane, _ mgl32.Mat4) {
		hs := in.hovers[p]
		if hs == nil {
			hs = &hoverState{}
			in.hovers[p] = hs
		}
		eq := 0.0
		if p.Key == cur {
			eq = 1
		}
		for range steps {
			hs.pos, hs.vel = in.spring.Update(hs.pos, hs.vel, eq)
		}
		p.Uniforms.Hover = float32(hs.pos) * (in.cfg.HoverScale - 1)
	})
}

// Forget drops the hover state of the given plane.
func (in *Interaction) Forget(p *xyz.Plane) {
	delete(in.hovers, p)
}
