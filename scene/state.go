// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/planesgl/planes/math32"
)

// Bounds is the pixel size of the render surface.
type Bounds struct {
	Width  float32
	Height float32
}

// Empty returns whether the bounds have no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Half returns half the width and height.
func (b Bounds) Half() math32.Vector2 {
	return math32.Vec2(b.Width/2, b.Height/2)
}

func (b Bounds) String() string {
	return fmt.Sprintf("%gx%g", b.Width, b.Height)
}

// DirectionX is the horizontal scroll direction.
type DirectionX int32

const (
	Left DirectionX = iota
	Right
)

func (d DirectionX) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// DirectionY is the vertical scroll direction.
type DirectionY int32

const (
	Up DirectionY = iota
	Down
)

func (d DirectionY) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Directions are the scroll directions on both axes.
type Directions struct {
	X DirectionX
	Y DirectionY
}

// Strength is the eased magnitude of the per-frame scroll movement.
type Strength struct {
	Current float32
	Target  float32
}

// ScrollState is the eased scroll position of a scene. The owning
// scene writes it; everything else reads it through [ScrollState.View].
type ScrollState struct {

	// Current is the eased position.
	Current math32.Vector2

	// Target is the position Current eases toward;
	// input writes here.
	Target math32.Vector2

	// Last is Current as of the previous step.
	Last math32.Vector2

	Direction Directions
	Strength  Strength

	// ScrollSpeed is added to Target.Y on every step,
	// for continuous automatic scrolling.
	ScrollSpeed math32.Vector2
}

// easeFactor returns the lerp factor for one step, compensated by the
// slow down factor and capped at 1 so that a step never overshoots.
func easeFactor(ease, sdf float32) float32 {
	return math32.Clamp(ease*sdf, 0, 1)
}

// Step advances the state by one frame: Target moves by ScrollSpeed,
// the directions and strength are derived from the movement of the
// previous step, then Current eases toward Target.
func (s *ScrollState) Step(ease, sdf float32) {
	s.Target.Y += s.ScrollSpeed.Y

	if s.Current.X > s.Last.X {
		s.Direction.X = Left
	} else {
		s.Direction.X = Right
	}
	if s.Current.Y > s.Last.Y {
		s.Direction.Y = Up
	} else {
		s.Direction.Y = Down
	}

	f := easeFactor(ease, sdf)
	s.Strength.Target = s.Current.Sub(s.Last).Length()
	s.Strength.Current = math32.Lerp(s.Strength.Current, s.Strength.Target, f)

	s.Last = s.Current
	s.Current = s.Current.Lerp(s.Target, f)
}

// Reset zeroes the state.
func (s *ScrollState) Reset() {
	*s = ScrollState{}
}

// View returns a read-only view of the state.
func (s *ScrollState) View() ScrollView {
	return scrollView{s}
}

// ScrollView is read-only access to a [ScrollState]. All readers of
// the view see the values of the most recent step.
type ScrollView interface {
	Current() math32.Vector2
	Target() math32.Vector2
	Direction() Directions
	Strength() float32
}

type scrollView struct {
	s *ScrollState
}

func (v scrollView) Current() math32.Vector2 { return v.s.Current }
func (v scrollView) Target() math32.Vector2  { return v.s.Target }
func (v scrollView) Direction() Directions   { return v.s.Direction }
func (v scrollView) Strength() float32       { return v.s.Strength.Current }

// DepthIndex is a scalar navigation position from which
// an item index is derived with [IndexOf].
type DepthIndex struct {
	Last    float32
	Current float32
	Target  float32
}

// Step eases Current toward Target by one frame, keeping the previous value in Last.
func (d *DepthIndex) Step(ease, sdf float32) {
	d.Last = d.Current
	d.Current = math32.Lerp(d.Current, d.Target, easeFactor(ease, sdf))
}

// Reset zeroes the index.
func (d *DepthIndex) Reset() {
	*d = DepthIndex{}
}

// IndexOf returns the item index at the given depth value:
// round(value / boundary * (count - 1)), clamped to [0, count-1].
// It returns 0 for a non-positive boundary or fewer than two items.
func IndexOf(value, boundary float32, count int) int {
	if boundary <= 0 || count <= 1 {
		return 0
	}
	i := int(math32.Round(value / boundary * float32(count-1)))
	return math32.ClampInt(i, 0, count-1)
}

// OffsetOf returns the depth value of the given item index,
// the inverse of [IndexOf].
func OffsetOf(index int, boundary float32, count int) float32 {
	if count <= 1 {
		return 0
	}
	return float32(index) / float32(count-1) * boundary
}
