// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	for name, f := range map[string]EasingFunc{
		"Linear":          Linear,
		"QuadraticIn":     QuadraticIn,
		"QuadraticOut":    QuadraticOut,
		"QuadraticInOut":  QuadraticInOut,
		"CubicOut":        CubicOut,
		"CubicInOut":      CubicInOut,
		"SinusoidalIn":    SinusoidalIn,
		"SinusoidalOut":   SinusoidalOut,
		"SinusoidalInOut": SinusoidalInOut,
		"ExponentialOut":  ExponentialOut,
	} {
		assert.InDelta(t, 0, f(0), 1e-3, name)
		assert.InDelta(t, 1, f(1), 1e-5, name)
	}
	assert.InDelta(t, 0.5, SinusoidalInOut(0.5), 1e-6)
}

func TestTween(t *testing.T) {
	var g Group
	var got []float32
	done := 0
	tw := New(0, 100, 400*time.Millisecond).
		OnUpdate(func(v float32) { got = append(got, v) }).
		OnComplete(func() { done++ }).
		Start(&g)
	assert.True(t, tw.IsPlaying())
	assert.Equal(t, 1, g.Len())

	g.Update(100 * time.Millisecond)
	g.Update(200 * time.Millisecond)
	g.Update(500 * time.Millisecond)
	g.Update(600 * time.Millisecond)

	assert.Equal(t, []float32{25, 50, 100}, got)
	assert.Equal(t, 1, done)
	assert.False(t, tw.IsPlaying())
	assert.Equal(t, 0, g.Len())
}

func TestTweenDelay(t *testing.T) {
	var g Group
	g.Update(time.Second)
	var got []float32
	New(10, 20, 100*time.Millisecond).
		Delay(50 * time.Millisecond).
		OnUpdate(func(v float32) { got = append(got, v) }).
		Start(&g)

	g.Update(time.Second + 40*time.Millisecond)
	assert.Empty(t, got)
	g.Update(time.Second + 100*time.Millisecond)
	assert.Equal(t, []float32{15}, got)
}

func TestTweenStop(t *testing.T) {
	var g Group
	var last float32
	completed := false
	tw := New(0, 1, 100*time.Millisecond).
		OnUpdate(func(v float32) { last = v }).
		OnComplete(func() { completed = true }).
		Start(&g)
	g.Update(50 * time.Millisecond)
	tw.Stop()
	tw.Stop()
	g.Update(200 * time.Millisecond)
	assert.Equal(t, float32(0.5), last)
	assert.False(t, completed)
	assert.Equal(t, 0, g.Len())
}

func TestZeroDuration(t *testing.T) {
	var g Group
	var last float32
	New(3, 7, 0).OnUpdate(func(v float32) { last = v }).Start(&g)
	g.Update(0)
	assert.Equal(t, float32(7), last)
}

func TestTimer(t *testing.T) {
	var g Group
	fired := 0
	tm := g.After(500*time.Millisecond, func() { fired++ })
	assert.True(t, tm.Pending())

	g.Update(499 * time.Millisecond)
	assert.Equal(t, 0, fired)
	g.Update(500 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Pending())
	assert.False(t, tm.Stop())

	tm = g.After(100*time.Millisecond, func() { fired++ })
	assert.True(t, tm.Stop())
	g.Update(time.Second)
	assert.Equal(t, 1, fired)

	var nilTimer *Timer
	assert.False(t, nilTimer.Stop())
}

func TestStopAll(t *testing.T) {
	var g Group
	tw := New(0, 1, time.Second).Start(&g)
	tm := g.After(time.Second, func() {})
	g.StopAll()
	assert.False(t, tw.IsPlaying())
	assert.False(t, tm.Pending())
	assert.Equal(t, 0, g.Len())
}
