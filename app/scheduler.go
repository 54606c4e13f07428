// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"sync"
	"time"
)

// Scheduler calls the frame function once per display frame
// while it is started, with the current time from its time origin.
type Scheduler interface {
	SetFrameFunc(f func(now time.Duration))
	Start()
	Stop()
}

// ManualScheduler is a [Scheduler] whose frames are driven
// explicitly by [ManualScheduler.Advance], for tests and snapshots.
type ManualScheduler struct {
	frame   func(now time.Duration)
	now     time.Duration
	running bool
}

func (s *ManualScheduler) SetFrameFunc(f func(now time.Duration)) { s.frame = f }
func (s *ManualScheduler) Start()                                 { s.running = true }
func (s *ManualScheduler) Stop()                                  { s.running = false }

// Running returns whether the scheduler is started.
func (s *ManualScheduler) Running() bool { return s.running }

// Now returns the current time.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Advance moves time forward by d and runs a frame if started.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now += d
	if s.running && s.frame != nil {
		s.frame(s.now)
	}
}

// Frames advances by n frames of d each.
func (s *ManualScheduler) Frames(n int, d time.Duration) {
	for range n {
		s.Advance(d)
	}
}

// TickerScheduler is a [Scheduler] driven by a [time.Ticker] at FPS,
// for headless and server-side rendering. Frames are run by
// [TickerScheduler.Run] on its calling goroutine.
type TickerScheduler struct {
	FPS int

	mu      sync.Mutex
	frame   func(now time.Duration)
	running bool
	wake    chan struct{}
}

// NewTickerScheduler returns a new [TickerScheduler] at the given frame rate.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{FPS: fps, wake: make(chan struct{}, 1)}
}

func (s *TickerScheduler) SetFrameFunc(f func(now time.Duration)) {
	s.mu.Lock()
	s.frame = f
	s.mu.Unlock()
}

func (s *TickerScheduler) Start() {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

func (s *TickerScheduler) state() (func(time.Duration), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.running
}

// Run runs frames until the context is done. Stopped schedulers
// block until started again.
func (s *TickerScheduler) Run(ctx context.Context) error {
	start := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(s.FPS))
	defer ticker.Stop()
	for {
		frame, running := s.state()
		if !running {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.wake:
				continue
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			if frame != nil {
				frame(t.Sub(start))
			}
		}
	}
}
