// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is the 3D layer of the planes: a perspective camera,
// textured [Plane] solids and [Group]s of them. There are no meshes
// or materials: every solid is a unit quad in the XY plane, scaled
// to its size in pixels.
package xyz

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/planesgl/planes/math32"
)

// Camera is a perspective camera looking down the negative Z axis
// from Pos, with positive Y up.
type Camera struct {

	// Pos is the position of the camera.
	Pos math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near plane distance.
	Near float32

	// Far is the far plane distance.
	Far float32

	// View is the view matrix, the inverse of the camera pose.
	View mgl32.Mat4 `display:"-"`

	// Projection is the perspective projection matrix.
	Projection mgl32.Mat4 `display:"-"`
}

// NewCamera returns a new camera with default settings.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 1000
	cm.Pos.Set(0, 0, 50)
	cm.UpdateMatrix()
}

// PixelPerfectFOV returns the vertical field of view in degrees at which
// one world unit at the given distance from the camera covers one pixel
// of a viewport of the given height.
func PixelPerfectFOV(height, distance float32) float32 {
	return math32.RadToDeg(2 * math32.Atan(height/2/distance))
}

// SetPixelPerfect places the camera at the given distance and sets the
// field of view and aspect ratio such that at z = 0 one world unit equals
// one pixel of a viewport of the given size, so that sizes and positions
// in the plane z = 0 are in pixels, with the origin at the viewport center.
func (cm *Camera) SetPixelPerfect(width, height, distance float32) {
	if width <= 0 || height <= 0 || distance <= 0 {
		return
	}
	cm.Pos.Set(0, 0, distance)
	cm.FOV = PixelPerfectFOV(height, distance)
	cm.Aspect = width / height
	cm.UpdateMatrix()
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	eye := mgl32.Vec3{cm.Pos.X, cm.Pos.Y, cm.Pos.Z}
	cm.View = mgl32.LookAtV(eye, eye.Sub(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{0, 1, 0})
	cm.Projection = mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.Aspect, cm.Near, cm.Far)
}

// ViewProjection returns the combined view projection matrix.
func (cm *Camera) ViewProjection() mgl32.Mat4 {
	return cm.Projection.Mul4(cm.View)
}

// Project returns the normalized device coordinates in [-1, 1] (y up)
// of the given world point, and false if it is behind the camera.
func (cm *Camera) Project(p math32.Vector3) (math32.Vector2, bool) {
	c := cm.ViewProjection().Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	if c.W() <= 0 {
		return math32.Vector2{}, false
	}
	return math32.Vec2(c.X()/c.W(), c.Y()/c.W()), true
}

// Ray is a half line from Origin in direction Dir.
type Ray struct {
	Origin math32.Vector3
	Dir    math32.Vector3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math32.Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// Ray returns the ray from the camera through the given point
// in normalized device coordinates, as used for picking.
func (cm *Camera) Ray(ndc math32.Vector2) Ray {
	inv := cm.ViewProjection().Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndc.X, ndc.Y, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc.X, ndc.Y, 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	d := f.Sub(n).Normalize()
	return Ray{Origin: cm.Pos, Dir: math32.Vec3(d.X(), d.Y(), d.Z())}
}
