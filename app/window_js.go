// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package app

import (
	"github.com/hack-pad/safejs"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/input"
)

// Browser is the browser [Window]. It forwards the pointer, wheel
// and touch events of the page to the input services.
type Browser struct {
	Pointer *input.Pointer
	Scroll  *input.Scroll

	resize     events.Listeners[struct{}]
	visibility events.Listeners[bool]

	handles events.Bag
}

// NewBrowser returns a new [Browser] forwarding events to the given services.
func NewBrowser(p *input.Pointer, s *input.Scroll) *Browser {
	b := &Browser{Pointer: p, Scroll: s}
	b.addEventListeners()
	return b
}

func (b *Browser) addEventListeners() {
	g := safejs.Global()
	doc := errors.Log1(g.Get("document"))
	b.listen(g, "mousedown", b.onMouseDown, true)
	b.listen(g, "mousemove", b.onMouseMove, true)
	b.listen(g, "mouseup", b.onMouseUp, true)
	b.listen(g, "touchstart", b.onTouchStart, true)
	b.listen(g, "touchmove", b.onTouchMove, true)
	b.listen(g, "touchend", b.onTouchEnd, true)
	b.listen(g, "wheel", b.onWheel, true)
	b.listen(g, "resize", b.onResize, true)
	b.listen(doc, "visibilitychange", b.onVisibilityChange, false)
}

// listen adds an event listener to target and a handle removing it.
func (b *Browser) listen(target safejs.Value, typ string, f func(e safejs.Value), passive bool) {
	fn, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		if len(args) > 0 {
			f(args[0])
		}
		return nil
	})
	if errors.Log(err) != nil {
		return
	}
	opts := map[string]any{"passive": passive}
	if _, err := target.Call("addEventListener", typ, fn.Value(), opts); errors.Log(err) != nil {
		fn.Release()
		return
	}
	b.handles.Add(events.HandleFunc(func() {
		errors.Log1(target.Call("removeEventListener", typ, fn.Value(), opts))
		fn.Release()
	}))
}

func float(v safejs.Value, prop string) float32 {
	p, err := v.Get(prop)
	if err != nil {
		return 0
	}
	f, err := p.Float()
	if err != nil {
		return 0
	}
	return float32(f)
}

// eventPos returns the client position of the given mouse event or touch.
func eventPos(e safejs.Value) (float32, float32) {
	return float(e, "clientX"), float(e, "clientY")
}

// firstTouch returns the first changed touch of the given touch event.
func firstTouch(e safejs.Value) (safejs.Value, bool) {
	ts, err := e.Get("changedTouches")
	if err != nil {
		return safejs.Value{}, false
	}
	if n, err := ts.Length(); err != nil || n == 0 {
		return safejs.Value{}, false
	}
	t, err := ts.Index(0)
	return t, err == nil
}

func (b *Browser) onMouseDown(e safejs.Value) {
	x, y := eventPos(e)
	b.Pointer.OnDown(x, y)
	b.Scroll.OnMouseDown(x, y)
}

func (b *Browser) onMouseMove(e safejs.Value) {
	x, y := eventPos(e)
	b.Pointer.OnMove(x, y)
	b.Scroll.OnMouseMove(x, y)
}

func (b *Browser) onMouseUp(e safejs.Value) {
	x, y := eventPos(e)
	b.Pointer.OnUp(x, y)
	b.Scroll.OnMouseUp()
}

func (b *Browser) onTouchStart(e safejs.Value) {
	t, ok := firstTouch(e)
	if !ok {
		return
	}
	x, y := eventPos(t)
	b.Pointer.OnDown(x, y)
	b.Scroll.OnTouchStart(x, y)
}

func (b *Browser) onTouchMove(e safejs.Value) {
	t, ok := firstTouch(e)
	if !ok {
		return
	}
	x, y := eventPos(t)
	b.Pointer.OnMove(x, y)
	b.Scroll.OnTouchMove(x, y)
}

func (b *Browser) onTouchEnd(e safejs.Value) {
	t, ok := firstTouch(e)
	if ok {
		b.Pointer.OnUp(eventPos(t))
	}
	b.Scroll.OnTouchEnd()
}

func (b *Browser) onWheel(e safejs.Value) {
	mode := 0
	if m, err := e.Get("deltaMode"); err == nil {
		mode, _ = m.Int()
	}
	b.Scroll.OnWheel(float(e, "deltaX"), float(e, "deltaY"), input.WheelModes(mode))
}

func (b *Browser) onResize(safejs.Value) {
	b.resize.Call(struct{}{})
}

func (b *Browser) onVisibilityChange(safejs.Value) {
	doc := errors.Log1(safejs.Global().Get("document"))
	st, err := doc.Get("visibilityState")
	if err != nil {
		return
	}
	s, _ := st.String()
	b.visibility.Call(s != "hidden")
}

func (b *Browser) PixelRatio() float32 {
	if r := float(safejs.Global(), "devicePixelRatio"); r > 0 {
		return r
	}
	return 1
}

func (b *Browser) OnResize(f func()) events.Handle {
	return b.resize.Add(func(struct{}) { f() })
}

func (b *Browser) OnVisibility(f func(visible bool)) events.Handle {
	return b.visibility.Add(f)
}

// Release removes all event listeners.
func (b *Browser) Release() {
	b.handles.Release()
	b.resize.Clear()
	b.visibility.Clear()
}
