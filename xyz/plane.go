// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/planesgl/planes/math32"
)

// Uniforms are the per plane values passed to the plane shader.
type Uniforms struct {

	// PlaneSize is the size of the plane in pixels.
	PlaneSize math32.Vector2

	// ImageSize is the size of the texture image in pixels,
	// used to cover the plane preserving the image aspect ratio.
	ImageSize math32.Vector2

	// Strength is the eased scroll strength, used for distortion.
	Strength float32

	// IntersectPoint is the eased point where the pointer ray hits the scene.
	IntersectPoint math32.Vector3

	// Hover is the hover amount, 0 when not hovered.
	Hover float32
}

// Plane is a textured unit quad in its local XY plane,
// centered on the origin and facing positive Z.
type Plane struct {

	// Name is the name of the plane, for debugging.
	Name string

	// Key is the index of the item shown on this plane.
	Key int

	// Pos is the position of the plane center.
	Pos math32.Vector3

	// Scale is the size of the plane in world units (pixels).
	Scale math32.Vector3

	// Rotation holds the euler rotation angles in radians,
	// applied in Z, Y, X order.
	Rotation math32.Vector3

	// Opacity is the overall opacity in [0, 1].
	Opacity float32

	// Visible is whether the plane is drawn and picked.
	Visible bool

	// Texture is the image drawn on the plane; nil draws
	// the plane in a flat color.
	Texture *Texture

	// Uniforms are the shader values.
	Uniforms Uniforms
}

// NewPlane returns a new visible opaque plane of size 1.
func NewPlane(name string, key int) *Plane {
	return &Plane{Name: name, Key: key, Scale: math32.Vec3(1, 1, 1), Opacity: 1, Visible: true}
}

func (p *Plane) String() string {
	return fmt.Sprintf("%s pos: %v scale: %v", p.Name, p.Pos, p.Scale)
}

// SetTexture sets the texture, recording the image size in the uniforms.
func (p *Plane) SetTexture(tx *Texture) {
	p.Texture = tx
	if tx == nil {
		p.Uniforms.ImageSize.SetZero()
		return
	}
	sz := tx.Size()
	p.Uniforms.ImageSize.Set(float32(sz.X), float32(sz.Y))
}

// Model returns the model matrix: translate * rotate * scale.
func (p *Plane) Model() mgl32.Mat4 {
	m := mgl32.Translate3D(p.Pos.X, p.Pos.Y, p.Pos.Z)
	if p.Rotation != (math32.Vector3{}) {
		m = m.Mul4(mgl32.AnglesToQuat(p.Rotation.Z, p.Rotation.Y, p.Rotation.X, mgl32.ZYX).Mat4())
	}
	return m.Mul4(mgl32.Scale3D(p.Scale.X, p.Scale.Y, p.Scale.Z))
}

// quad holds the local corners in counter clockwise order from bottom left.
var quad = [4]mgl32.Vec4{{-0.5, -0.5, 0, 1}, {0.5, -0.5, 0, 1}, {0.5, 0.5, 0, 1}, {-0.5, 0.5, 0, 1}}

// Corners returns the world corners of the plane under the given
// world matrix, counter clockwise from bottom left.
func Corners(world mgl32.Mat4) [4]math32.Vector3 {
	var cs [4]math32.Vector3
	for i, q := range quad {
		c := world.Mul4x1(q)
		cs[i] = math32.Vec3(c.X(), c.Y(), c.Z())
	}
	return cs
}

// Hit is an intersection of a ray with a plane.
type Hit struct {
	Plane *Plane

	// Point is the world intersection point.
	Point math32.Vector3

	// UV is the texture coordinate of the point, (0, 0) at bottom left.
	UV math32.Vector2

	// Distance is the distance along the ray.
	Distance float32
}

// Intersect returns the intersection of the ray with the plane
// under the given world matrix.
func (p *Plane) Intersect(r Ray, world mgl32.Mat4) (Hit, bool) {
	if !p.Visible || p.Scale.X == 0 || p.Scale.Y == 0 {
		return Hit{}, false
	}
	inv := world.Inv()
	o := inv.Mul4x1(mgl32.Vec4{r.Origin.X, r.Origin.Y, r.Origin.Z, 1})
	d := inv.Mul4x1(mgl32.Vec4{r.Dir.X, r.Dir.Y, r.Dir.Z, 0})
	if math32.Abs(d.Z()) < 1e-9 {
		return Hit{}, false
	}
	t := -o.Z() / d.Z()
	if t < 0 {
		return Hit{}, false
	}
	x, y := o.X()+t*d.X(), o.Y()+t*d.Y()
	if math32.Abs(x) > 0.5 || math32.Abs(y) > 0.5 {
		return Hit{}, false
	}
	return Hit{Plane: p, Point: r.At(t), UV: math32.Vec2(x+0.5, y+0.5), Distance: t}, true
}
