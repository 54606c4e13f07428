// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/math32"
)

// WheelModes are the units of a wheel delta, as in the DOM WheelEvent.deltaMode.
type WheelModes int32

const (
	// WheelPixel deltas are in pixels.
	WheelPixel WheelModes = iota

	// WheelLine deltas are in lines.
	WheelLine

	// WheelPage deltas are in pages.
	WheelPage
)

// LineHeight is the number of pixels of a [WheelLine] delta.
const LineHeight = 16

// ScrollEvent is a raw 2D delta from one input modality. For the wheel
// it is the wheel delta in pixels; for mouse and touch drags it is
// the pointer movement since the previous event, in viewport pixels.
type ScrollEvent struct {
	Delta math32.Vector2
}

// Scroll turns wheel, mouse drag and touch drag input into separate
// streams of deltas, so that each scene can scale them per device.
type Scroll struct {
	viewportHeight float32

	mouseDown bool
	mouseLast math32.Vector2

	touching  bool
	touchLast math32.Vector2

	// pending accumulates all deltas since the last Update,
	// frame is the accumulation of the last completed frame.
	pending math32.Vector2
	frame   math32.Vector2

	wheel events.Listeners[ScrollEvent]
	mouse events.Listeners[ScrollEvent]
	touch events.Listeners[ScrollEvent]
}

// NewScroll returns a new [Scroll].
func NewScroll() *Scroll {
	return &Scroll{viewportHeight: 800}
}

// SetViewportHeight sets the page size used for [WheelPage] deltas.
func (s *Scroll) SetViewportHeight(h float32) {
	if h > 0 {
		s.viewportHeight = h
	}
}

// OnWheel records a wheel event.
func (s *Scroll) OnWheel(dx, dy float32, mode WheelModes) {
	switch mode {
	case WheelLine:
		dx *= LineHeight
		dy *= LineHeight
	case WheelPage:
		dx *= s.viewportHeight
		dy *= s.viewportHeight
	}
	s.send(&s.wheel, math32.Vec2(dx, dy))
}

// OnMouseDown starts a mouse drag at the given position.
func (s *Scroll) OnMouseDown(x, y float32) {
	s.mouseDown = true
	s.mouseLast.Set(x, y)
}

// OnMouseMove sends the drag delta when a mouse button is pressed.
func (s *Scroll) OnMouseMove(x, y float32) {
	if !s.mouseDown {
		return
	}
	p := math32.Vec2(x, y)
	d := p.Sub(s.mouseLast)
	s.mouseLast = p
	s.send(&s.mouse, d)
}

// OnMouseUp ends a mouse drag.
func (s *Scroll) OnMouseUp() {
	s.mouseDown = false
}

// OnTouchStart starts a touch drag at the given position.
func (s *Scroll) OnTouchStart(x, y float32) {
	s.touching = true
	s.touchLast.Set(x, y)
}

// OnTouchMove sends the drag delta of an active touch.
func (s *Scroll) OnTouchMove(x, y float32) {
	if !s.touching {
		return
	}
	p := math32.Vec2(x, y)
	d := p.Sub(s.touchLast)
	s.touchLast = p
	s.send(&s.touch, d)
}

// OnTouchEnd ends a touch drag.
func (s *Scroll) OnTouchEnd() {
	s.touching = false
}

func (s *Scroll) send(ls *events.Listeners[ScrollEvent], d math32.Vector2) {
	if d.IsZero() {
		return
	}
	s.pending = s.pending.Add(d)
	ls.Call(ScrollEvent{Delta: d})
}

// Update closes the input of the current frame: the deltas received
// since the previous update become [Scroll.FrameDelta].
func (s *Scroll) Update(tick clock.Tick) {
	s.frame = s.pending
	s.pending.SetZero()
}

// FrameDelta returns the sum of all deltas of the last completed frame.
func (s *Scroll) FrameDelta() math32.Vector2 {
	return s.frame
}

// OnWheelEvent adds a listener for wheel deltas.
func (s *Scroll) OnWheelEvent(f func(ScrollEvent)) events.Handle {
	return s.wheel.Add(f)
}

// OnMouse adds a listener for mouse drag deltas.
func (s *Scroll) OnMouse(f func(ScrollEvent)) events.Handle {
	return s.mouse.Add(f)
}

// OnTouch adds a listener for touch drag deltas.
func (s *Scroll) OnTouch(f func(ScrollEvent)) events.Handle {
	return s.touch.Add(f)
}
