// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "github.com/planesgl/planes/events"

// Window is the environment an app is shown in.
type Window interface {

	// PixelRatio returns the device pixel ratio.
	PixelRatio() float32

	// OnResize adds a function called when the window is resized.
	OnResize(f func()) events.Handle

	// OnVisibility adds a function called when the window
	// becomes hidden or visible.
	OnVisibility(f func(visible bool)) events.Handle
}

// StaticWindow is a [Window] whose changes are triggered explicitly.
type StaticWindow struct {
	Ratio float32

	resize     events.Listeners[struct{}]
	visibility events.Listeners[bool]
}

func (w *StaticWindow) PixelRatio() float32 {
	if w.Ratio <= 0 {
		return 1
	}
	return w.Ratio
}

func (w *StaticWindow) OnResize(f func()) events.Handle {
	return w.resize.Add(func(struct{}) { f() })
}

func (w *StaticWindow) OnVisibility(f func(visible bool)) events.Handle {
	return w.visibility.Add(f)
}

// Resize calls the resize listeners.
func (w *StaticWindow) Resize() { w.resize.Call(struct{}{}) }

// SetVisible calls the visibility listeners.
func (w *StaticWindow) SetVisible(visible bool) { w.visibility.Call(visible) }
