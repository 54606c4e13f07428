// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/planesgl/planes/math32"
)

// Group collects planes and child groups. It has a transform that
// applies to all nodes under it, but nothing to draw of its own.
type Group struct {
	Name string

	Pos   math32.Vector3
	Scale math32.Vector3

	planes []*Plane
	groups []*Group
}

// NewGroup returns a new empty group with unit scale.
func NewGroup(name string) *Group {
	return &Group{Name: name, Scale: math32.Vec3(1, 1, 1)}
}

// Add adds planes to the group.
func (gp *Group) Add(ps ...*Plane) {
	gp.planes = append(gp.planes, ps...)
}

// Remove removes the plane, returning whether it was found.
func (gp *Group) Remove(p *Plane) bool {
	i := slices.Index(gp.planes, p)
	if i < 0 {
		return false
	}
	gp.planes = slices.Delete(gp.planes, i, i+1)
	return true
}

// AddGroup adds child groups.
func (gp *Group) AddGroup(gs ...*Group) {
	gp.groups = append(gp.groups, gs...)
}

// RemoveGroup removes the child group, returning whether it was found.
func (gp *Group) RemoveGroup(g *Group) bool {
	i := slices.Index(gp.groups, g)
	if i < 0 {
		return false
	}
	gp.groups = slices.Delete(gp.groups, i, i+1)
	return true
}

// Planes returns the planes directly in the group.
func (gp *Group) Planes() []*Plane {
	return gp.planes
}

// Groups returns the child groups.
func (gp *Group) Groups() []*Group {
	return gp.groups
}

// Clear removes all planes and groups.
func (gp *Group) Clear() {
	gp.planes = nil
	gp.groups = nil
}

// Matrix returns the transform of the group.
func (gp *Group) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(gp.Pos.X, gp.Pos.Y, gp.Pos.Z).Mul4(mgl32.Scale3D(gp.Scale.X, gp.Scale.Y, gp.Scale.Z))
}

// Walk calls f for each visible plane in the group and its descendants,
// depth first, with the world matrix of the plane.
func (gp *Group) Walk(f func(p *Plane, world mgl32.Mat4)) {
	gp.walk(mgl32.Ident4(), f)
}

func (gp *Group) walk(parent mgl32.Mat4, f func(p *Plane, world mgl32.Mat4)) {
	m := parent.Mul4(gp.Matrix())
	for _, p := range gp.planes {
		if p.Visible {
			f(p, m.Mul4(p.Model()))
		}
	}
	for _, g := range gp.groups {
		g.walk(m, f)
	}
}

// Intersect returns the hits of the ray with all planes under the
// group, sorted by distance from the ray origin.
func (gp *Group) Intersect(r Ray) []Hit {
	var hits []Hit
	gp.Walk(func(p *Plane, world mgl32.Mat4) {
		if h, ok := p.Intersect(r, world); ok {
			hits = append(hits, h)
		}
	})
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}
