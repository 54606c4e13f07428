// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input provides the pointer and scroll services: raw host
// events go in, per-modality events come out to subscribed scenes,
// and the frame loop calls Update once per frame.
// One instance of each service is shared by an app and its scenes.
package input

import (
	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/math32"
)

// PointerEvent is sent for pointer moves and clicks.
type PointerEvent struct {

	// Client is the pointer position in viewport pixels.
	Client math32.Vector2

	// Normalized is the pointer position in [-1, 1] on both axes,
	// with y pointing up, as used for ray casting.
	Normalized math32.Vector2
}

// Pointer tracks the pointer position normalized to the viewport,
// and a smoothed copy of it that follows at a frame-rate independent pace.
type Pointer struct {
	cfg config.Pointer

	viewport   math32.Vector2
	client     math32.Vector2
	normalized math32.Vector2
	smoothed   math32.Vector2

	// isDown is whether a button or touch is pressed, and downAt where.
	isDown bool
	downAt math32.Vector2
	travel float32

	// moved is whether a move arrived since the last Update.
	moved bool

	move  events.Listeners[PointerEvent]
	click events.Listeners[PointerEvent]
}

// NewPointer returns a new [Pointer] with the given settings.
func NewPointer(cfg config.Pointer) *Pointer {
	return &Pointer{cfg: cfg, viewport: math32.Vec2(1, 1)}
}

// SetViewport sets the viewport size used for normalization.
// Non-positive sizes are ignored.
func (p *Pointer) SetViewport(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	p.viewport.Set(width, height)
	p.normalized = p.normalize(p.client)
}

func (p *Pointer) normalize(c math32.Vector2) math32.Vector2 {
	return math32.Vec2(c.X/p.viewport.X*2-1, -(c.Y/p.viewport.Y*2 - 1))
}

func (p *Pointer) event() PointerEvent {
	return PointerEvent{Client: p.client, Normalized: p.normalized}
}

// OnMove records a pointer move to the given viewport position.
func (p *Pointer) OnMove(x, y float32) {
	c := math32.Vec2(x, y)
	if p.isDown {
		p.travel += c.Sub(p.client).Length()
	}
	p.client = c
	p.normalized = p.normalize(c)
	p.moved = true
}

// OnDown records a button press or touch start at the given position.
func (p *Pointer) OnDown(x, y float32) {
	p.OnMove(x, y)
	p.isDown = true
	p.downAt = p.client
	p.travel = 0
}

// OnUp records a button release or touch end at the given position,
// sending a click when the pointer travelled less than the click threshold
// since the press.
func (p *Pointer) OnUp(x, y float32) {
	if !p.isDown {
		return
	}
	p.OnMove(x, y)
	p.isDown = false
	if p.travel < p.cfg.ClickThreshold {
		p.click.Call(p.event())
	}
}

// IsDown returns whether a button or touch is pressed.
func (p *Pointer) IsDown() bool {
	return p.isDown
}

// Client returns the last pointer position in viewport pixels.
func (p *Pointer) Client() math32.Vector2 {
	return p.client
}

// Normalized returns the last pointer position in [-1, 1], y up.
func (p *Pointer) Normalized() math32.Vector2 {
	return p.normalized
}

// Smoothed returns the eased pointer position in [-1, 1], y up.
func (p *Pointer) Smoothed() math32.Vector2 {
	return p.smoothed
}

// Update eases the smoothed position toward the pointer and sends
// a move event when the pointer moved since the previous update.
func (p *Pointer) Update(tick clock.Tick) {
	ease := math32.Min(p.cfg.Ease*tick.SlowDownFactor, 1)
	p.smoothed = p.smoothed.Lerp(p.normalized, ease)
	if p.moved {
		p.moved = false
		p.move.Call(p.event())
	}
}

// OnMoveEvent adds a listener for pointer moves, sent from [Pointer.Update].
func (p *Pointer) OnMoveEvent(f func(PointerEvent)) events.Handle {
	return p.move.Add(f)
}

// OnClick adds a listener for clicks.
func (p *Pointer) OnClick(f func(PointerEvent)) events.Handle {
	return p.click.Add(f)
}
