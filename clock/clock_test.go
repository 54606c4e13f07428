// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlowDownFactor(t *testing.T) {
	frame := IdealFrameInterval
	assert.Equal(t, float32(1), SlowDownFactor(frame, 0))
	assert.Equal(t, float32(1), SlowDownFactor(frame+3*time.Millisecond, frame))
	assert.Equal(t, float32(1), SlowDownFactor(frame-5*time.Millisecond, frame))
	assert.Equal(t, float32(2), SlowDownFactor(2*frame, frame))
	assert.Equal(t, float32(3), SlowDownFactor(frame*27/10, frame))
	// short frames keep the proportional factor
	assert.InDelta(t, 0.3, SlowDownFactor(frame*3/10, frame), 1e-3)
	assert.Equal(t, float32(0), SlowDownFactor(0, frame))
}

func TestNewTick(t *testing.T) {
	tk := NewTick(2*time.Second, 2*time.Second-IdealFrameInterval, 0)
	assert.Equal(t, IdealFrameInterval, tk.Delta)
	assert.Equal(t, float32(1), tk.SlowDownFactor)
	assert.Equal(t, 2*time.Second, tk.Time)
	assert.Contains(t, tk.String(), "SlowDownFactor: 1")
}
