// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package app

import (
	"time"

	"github.com/hack-pad/safejs"
	"github.com/planesgl/planes/base/errors"
)

// RAFScheduler is a [Scheduler] driven by requestAnimationFrame.
type RAFScheduler struct {
	frame   func(now time.Duration)
	fn      safejs.Func
	hasFn   bool
	id      safejs.Value
	running bool
}

func (s *RAFScheduler) SetFrameFunc(f func(now time.Duration)) { s.frame = f }

func (s *RAFScheduler) Start() {
	if s.running {
		return
	}
	if !s.hasFn {
		fn, err := safejs.FuncOf(s.onFrame)
		if errors.Log(err) != nil {
			return
		}
		s.fn, s.hasFn = fn, true
	}
	s.running = true
	s.request()
}

func (s *RAFScheduler) request() {
	s.id = errors.Log1(safejs.Global().Call("requestAnimationFrame", s.fn.Value()))
}

// onFrame receives the frame timestamp in milliseconds.
func (s *RAFScheduler) onFrame(this safejs.Value, args []safejs.Value) any {
	if !s.running {
		return nil
	}
	s.request()
	if s.frame != nil && len(args) > 0 {
		ms, err := args[0].Float()
		if err == nil {
			s.frame(time.Duration(ms * float64(time.Millisecond)))
		}
	}
	return nil
}

func (s *RAFScheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	errors.Log1(safejs.Global().Call("cancelAnimationFrame", s.id))
}

// Release stops the scheduler and releases its callback.
func (s *RAFScheduler) Release() {
	s.Stop()
	if s.hasFn {
		s.fn.Release()
		s.hasFn = false
	}
}
