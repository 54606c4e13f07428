// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tween provides timed easing animations of a single
// float32 value and one-shot timers, all driven by a [Group]
// that is advanced once per frame.
package tween

import (
	"time"

	"github.com/planesgl/planes/math32"
)

// Tween animates a value from a start to an end value over a duration,
// calling its update function with the eased value on every [Group.Update].
// A Tween is configured with the chainable setters and then started
// on a [Group]; it is removed from the group when it completes or is stopped.
type Tween struct {
	from, to   float32
	duration   time.Duration
	delay      time.Duration
	easing     EasingFunc
	onUpdate   func(v float32)
	onComplete func()

	group     *Group
	startTime time.Duration
	playing   bool
}

// New returns a new [Tween] from the given value to the given value
// over the given duration, with [Linear] easing and no delay.
func New(from, to float32, duration time.Duration) *Tween {
	return &Tween{from: from, to: to, duration: duration, easing: Linear}
}

// Delay sets the time to wait after [Tween.Start] before animating.
func (tw *Tween) Delay(d time.Duration) *Tween {
	tw.delay = d
	return tw
}

// Easing sets the easing function; nil means [Linear].
func (tw *Tween) Easing(f EasingFunc) *Tween {
	if f == nil {
		f = Linear
	}
	tw.easing = f
	return tw
}

// OnUpdate sets the function called with the current value on each step.
func (tw *Tween) OnUpdate(f func(v float32)) *Tween {
	tw.onUpdate = f
	return tw
}

// OnComplete sets the function called once the end value has been written.
func (tw *Tween) OnComplete(f func()) *Tween {
	tw.onComplete = f
	return tw
}

// Start adds the tween to the given group, starting at the group's
// current time plus the delay. Starting a playing tween restarts it.
func (tw *Tween) Start(g *Group) *Tween {
	if tw.playing {
		tw.Stop()
	}
	tw.group = g
	tw.startTime = g.Now() + tw.delay
	tw.playing = true
	g.add(tw)
	return tw
}

// Stop removes the tween from its group without completing it.
// The update and complete functions are not called. Stop on a
// stopped tween does nothing.
func (tw *Tween) Stop() {
	if !tw.playing {
		return
	}
	tw.playing = false
	if tw.group != nil {
		tw.group.remove(tw)
	}
}

// IsPlaying returns whether the tween is started and not yet complete or stopped.
func (tw *Tween) IsPlaying() bool {
	return tw.playing
}

// To returns the end value.
func (tw *Tween) To() float32 {
	return tw.to
}

// step advances the tween to the given time and returns
// whether it should be kept in its group.
func (tw *Tween) step(now time.Duration) bool {
	if !tw.playing {
		return false
	}
	if now < tw.startTime {
		return true
	}
	k := float32(1)
	if tw.duration > 0 {
		k = math32.Min(float32(now-tw.startTime)/float32(tw.duration), 1)
	}
	v := tw.to
	if k < 1 {
		v = math32.Lerp(tw.from, tw.to, tw.easing(k))
	}
	if tw.onUpdate != nil {
		tw.onUpdate(v)
	}
	if k < 1 {
		return true
	}
	tw.playing = false
	if tw.onComplete != nil {
		tw.onComplete()
	}
	return false
}
