// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"time"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/tween"
)

// NavStates are the states of a [Navigator].
type NavStates int32

const (
	// Idle is when the targets are driven by raw input only
	// and have not been reached yet.
	Idle NavStates = iota

	// AutoScrolling is when an index animation drives the depth target.
	AutoScrolling

	// Settled is when the current values have converged to their targets.
	Settled
)

func (s NavStates) String() string {
	switch s {
	case AutoScrolling:
		return "auto-scrolling"
	case Settled:
		return "settled"
	}
	return "idle"
}

// AnimateOptions configures [Navigator.AnimateToIndex].
// Zero values use the navigation defaults.
type AnimateOptions struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   tween.EasingFunc
}

// Navigator owns the scroll state and depth index of a scene, and turns
// input and index requests into eased movement. Input writes the
// targets; [Navigator.Update] eases the current values once per frame.
// Idle input is followed, after a delay, by a snap to the nearest index.
type Navigator struct {
	cfg    config.Navigation
	tweens *tween.Group

	scroll ScrollState
	depth  DepthIndex

	boundary float32
	count    int

	activeIndex int
	targetIndex int

	snap          *tween.Timer
	anim          *tween.Tween
	autoScrolling bool

	indexChanged events.Listeners[int]
}

// NewNavigator returns a new [Navigator] whose timers and animations
// run on the given tween group.
func NewNavigator(cfg config.Navigation, tweens *tween.Group) *Navigator {
	return &Navigator{cfg: cfg, tweens: tweens, boundary: 1}
}

// Scroll returns a read-only view of the scroll state.
func (nv *Navigator) Scroll() ScrollView {
	return nv.scroll.View()
}

// Depth returns the depth index.
func (nv *Navigator) Depth() DepthIndex {
	return nv.depth
}

// SetScrollSpeed sets the constant automatic scroll speed.
func (nv *Navigator) SetScrollSpeed(v math32.Vector2) {
	nv.scroll.ScrollSpeed = v
}

// ActiveIndex returns the index of the item at the current depth.
func (nv *Navigator) ActiveIndex() int {
	return nv.activeIndex
}

// TargetIndex returns the index of the item at the target depth,
// as of the last update.
func (nv *Navigator) TargetIndex() int {
	return nv.targetIndex
}

// Boundary returns the depth of the last item.
func (nv *Navigator) Boundary() float32 {
	return nv.boundary
}

// Count returns the number of items.
func (nv *Navigator) Count() int {
	return nv.count
}

// SetCount sets the number of items.
func (nv *Navigator) SetCount(n int) {
	nv.count = max(n, 0)
}

// OnIndexChanged adds a listener called with the new active index
// whenever it changes during an update.
func (nv *Navigator) OnIndexChanged(f func(index int)) events.Handle {
	return nv.indexChanged.Add(f)
}

// State returns the current navigation state.
func (nv *Navigator) State() NavStates {
	if nv.autoScrolling {
		return AutoScrolling
	}
	eps := nv.cfg.SettleEpsilon
	if math32.Abs(nv.depth.Target-nv.depth.Current) < eps &&
		math32.Abs(nv.scroll.Target.X-nv.scroll.Current.X) < eps &&
		math32.Abs(nv.scroll.Target.Y-nv.scroll.Current.Y) < eps {
		return Settled
	}
	return Idle
}

// OnWheel moves the depth target by a wheel delta.
func (nv *Navigator) OnWheel(dy float32) {
	t := nv.depth.Target - dy*nv.cfg.WheelMultiplier
	if nv.cfg.ClampDepth {
		t = math32.Clamp(t, 0, nv.boundary)
	}
	nv.depth.Target = t
	nv.armSnap()
}

// OnDrag moves the scroll target by a mouse drag delta.
func (nv *Navigator) OnDrag(dx, dy float32) {
	nv.applyScroll(dx*nv.cfg.MouseMultiplier, dy*nv.cfg.MouseMultiplier)
}

// OnTouch moves the scroll target by a touch drag delta.
func (nv *Navigator) OnTouch(dx, dy float32) {
	nv.applyScroll(dx*nv.cfg.TouchMultiplier, dy*nv.cfg.TouchMultiplier)
}

// AddScroll moves the scroll target by the given amount, unscaled.
func (nv *Navigator) AddScroll(dx, dy float32) {
	nv.scroll.Target.X += dx
	nv.scroll.Target.Y += dy
	nv.armSnap()
}

func (nv *Navigator) applyScroll(x, y float32) {
	nv.scroll.Target.X -= x
	nv.scroll.Target.Y += y
	nv.armSnap()
}

// armSnap restarts the snap timer, unless an animation is running.
func (nv *Navigator) armSnap() {
	if nv.autoScrolling || nv.tweens == nil || nv.cfg.TimeToSnap <= 0 {
		return
	}
	nv.snap.Stop()
	nv.snap = nv.tweens.After(nv.cfg.TimeToSnap.Std(), nv.SnapToNearest)
}

func (nv *Navigator) cancelSnap() {
	nv.snap.Stop()
	nv.snap = nil
}

// SnapToNearest animates to the index nearest to the depth target.
func (nv *Navigator) SnapToNearest() {
	nv.AnimateToIndex(IndexOf(nv.depth.Target, nv.boundary, nv.count), AnimateOptions{})
}

// Update advances the navigation by one frame.
func (nv *Navigator) Update(tick clock.Tick) {
	ease, sdf := nv.cfg.Ease, tick.SlowDownFactor

	nv.depth.Step(ease, sdf)
	prev := IndexOf(nv.depth.Last, nv.boundary, nv.count)
	cur := IndexOf(nv.depth.Current, nv.boundary, nv.count)
	if prev != cur {
		nv.activeIndex = cur
		nv.indexChanged.Call(cur)
	}
	nv.targetIndex = IndexOf(nv.depth.Target, nv.boundary, nv.count)

	nv.scroll.Step(ease, sdf)
}

// AnimateToIndex animates the depth target to the depth of the given
// index, which is clamped to the valid range. It cancels a pending
// snap and any running index animation first.
func (nv *Navigator) AnimateToIndex(dest int, opts AnimateOptions) {
	nv.cancelSnap()
	if nv.anim != nil {
		nv.anim.Stop()
		nv.anim = nil
	}
	if nv.tweens == nil {
		return
	}
	if opts.Duration <= 0 {
		opts.Duration = nv.cfg.SnapDuration.Std()
	}
	if opts.Easing == nil {
		opts.Easing = tween.SinusoidalInOut
	}
	dest = math32.ClampInt(dest, 0, max(nv.count-1, 0))
	offset := OffsetOf(dest, nv.boundary, nv.count)
	slog.Debug("navigator: animate", "index", dest, "from", nv.depth.Target, "to", offset)

	nv.autoScrolling = true
	var tw *tween.Tween
	tw = tween.New(nv.depth.Target, offset, opts.Duration).
		Delay(opts.Delay).
		Easing(opts.Easing).
		OnUpdate(func(v float32) { nv.depth.Target = v }).
		OnComplete(func() {
			if nv.anim == tw {
				nv.anim = nil
				nv.autoScrolling = false
			}
		})
	nv.anim = tw
	tw.Start(nv.tweens)
}

// SetBoundary sets the depth of the last item after a layout change.
// It cancels pending snaps and animations and snaps to the target
// index of the last update, now at its new depth.
func (nv *Navigator) SetBoundary(b float32) {
	if b <= 0 {
		b = 1
	}
	nv.boundary = b
	nv.AnimateToIndex(nv.targetIndex, AnimateOptions{})
}

// Reset zeroes the scroll state and depth index, keeping the target
// index so that a following [Navigator.SetBoundary] can return to it.
func (nv *Navigator) Reset() {
	nv.scroll.Reset()
	nv.depth.Reset()
}

// Stop cancels pending snaps and animations.
func (nv *Navigator) Stop() {
	nv.cancelSnap()
	if nv.anim != nil {
		nv.anim.Stop()
		nv.anim = nil
	}
	nv.autoScrolling = false
}
