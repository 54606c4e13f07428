// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clock defines the per-frame [Tick] passed to every
// updatable part of an app, and the slow-down factor that makes
// per-frame easing independent of the actual frame rate.
package clock

import (
	"fmt"
	"time"

	"github.com/planesgl/planes/math32"
)

// IdealFrameInterval is the frame interval of the 60fps baseline
// that all per-frame easing constants are tuned for.
const IdealFrameInterval = time.Second / 60

// Tick is the information passed to every update of a frame.
type Tick struct {

	// Delta is the time since the previous frame.
	Delta time.Duration

	// SlowDownFactor is Delta relative to the ideal frame interval,
	// see [SlowDownFactor].
	SlowDownFactor float32

	// Time is the frame time, from the scheduler's time origin.
	Time time.Duration
}

func (t Tick) String() string {
	return fmt.Sprintf("Tick{Delta: %v, SlowDownFactor: %g, Time: %v}", t.Delta, t.SlowDownFactor, t.Time)
}

// NewTick returns the [Tick] for a frame at now following a frame at last,
// for the given ideal frame interval (0 means [IdealFrameInterval]).
func NewTick(now, last, interval time.Duration) Tick {
	delta := now - last
	return Tick{Delta: delta, SlowDownFactor: SlowDownFactor(delta, interval), Time: now}
}

// SlowDownFactor returns delta / interval, rounded to the nearest
// integer whenever that rounding is at least 1. Near-60fps frames thus
// get exactly 1, and frame jitter does not accumulate float drift,
// while frames shorter than half an interval keep their proportional factor.
func SlowDownFactor(delta, interval time.Duration) float32 {
	if interval <= 0 {
		interval = IdealFrameInterval
	}
	f := float32(float64(delta) / float64(interval))
	if r := math32.Round(f); r >= 1 {
		return r
	}
	return f
}
