// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tween

import "time"

// Group holds the playing tweens and pending timers of one app.
// It has its own clock, set by [Group.Update], so that everything
// it drives sees frame time rather than wall time.
type Group struct {
	now    time.Duration
	tweens []*Tween
	timers []*Timer
}

// Now returns the time of the last [Group.Update].
func (g *Group) Now() time.Duration {
	return g.now
}

// Len returns the number of playing tweens and pending timers.
func (g *Group) Len() int {
	return len(g.tweens) + len(g.timers)
}

// Update sets the group clock to now and advances every tween and timer.
// Tweens and timers started during the update are first advanced on the
// next update.
func (g *Group) Update(now time.Duration) {
	g.now = now
	tweens := append([]*Tween(nil), g.tweens...)
	for _, tw := range tweens {
		if !tw.step(now) {
			g.remove(tw)
		}
	}
	timers := append([]*Timer(nil), g.timers...)
	for _, tm := range timers {
		if !tm.step(now) {
			g.removeTimer(tm)
		}
	}
}

// StopAll stops every tween and timer.
func (g *Group) StopAll() {
	for _, tw := range g.tweens {
		tw.playing = false
	}
	for _, tm := range g.timers {
		tm.pending = false
	}
	g.tweens = nil
	g.timers = nil
}

func (g *Group) add(tw *Tween) {
	g.tweens = append(g.tweens, tw)
}

func (g *Group) remove(tw *Tween) {
	for i, t := range g.tweens {
		if t == tw {
			g.tweens = append(g.tweens[:i:i], g.tweens[i+1:]...)
			return
		}
	}
}

func (g *Group) removeTimer(tm *Timer) {
	for i, t := range g.timers {
		if t == tm {
			g.timers = append(g.timers[:i:i], g.timers[i+1:]...)
			return
		}
	}
}
