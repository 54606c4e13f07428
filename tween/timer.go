// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tween

import "time"

// Timer calls a function once, after a duration of [Group] time.
type Timer struct {
	group   *Group
	at      time.Duration
	fun     func()
	pending bool
}

// After returns a started [Timer] that calls f on the first
// [Group.Update] at or after d from the group's current time.
func (g *Group) After(d time.Duration, f func()) *Timer {
	tm := &Timer{group: g, at: g.now + d, fun: f, pending: true}
	g.timers = append(g.timers, tm)
	return tm
}

// Stop cancels the timer. It returns whether the call stopped
// a pending timer. Stop on a nil timer is allowed.
func (tm *Timer) Stop() bool {
	if tm == nil || !tm.pending {
		return false
	}
	tm.pending = false
	tm.group.removeTimer(tm)
	return true
}

// Pending returns whether the timer has not yet fired or been stopped.
func (tm *Timer) Pending() bool {
	return tm != nil && tm.pending
}

func (tm *Timer) step(now time.Duration) bool {
	if !tm.pending {
		return false
	}
	if now < tm.at {
		return true
	}
	tm.pending = false
	if tm.fun != nil {
		tm.fun()
	}
	return false
}
