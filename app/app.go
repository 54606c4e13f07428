// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs a scene: it owns the frame loop, which advances the
// animations, input services and scene once per display frame and then
// renders, and keeps the camera and renderer sized to the mount element.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/preload"
	"github.com/planesgl/planes/render"
	"github.com/planesgl/planes/scene"
	"github.com/planesgl/planes/tween"
	"github.com/planesgl/planes/xyz"
)

// SceneFactory makes the scene of an app.
type SceneFactory func(d scene.Deps) scene.Scene

// Options configures [New]. Mount, Renderer and Scheduler are required.
type Options struct {
	Config *config.Config

	// Mount is the element the render surface covers.
	Mount dom.Element

	// Canvas is the render surface element, removed from the
	// mount element on [App.Destroy] if set.
	Canvas dom.Element

	// Document is where the scene finds the elements of the items.
	Document dom.Querier

	Items []scene.Item

	// Kind is the kind of scene made when NewScene is nil.
	Kind     scene.Kinds
	NewScene SceneFactory

	Scheduler Scheduler
	Window    Window
	Renderer  render.Renderer

	// Pointer and Scroll are made when nil.
	Pointer *input.Pointer
	Scroll  *input.Scroll

	// Preloader loads the item images; none are loaded when nil.
	Preloader *preload.Preloader
}

// App is a running scene.
type App struct {
	Config *config.Config
	Camera *xyz.Camera
	Scene  scene.Scene
	Tweens *tween.Group

	// Bounds are the last measured bounds of the mount element.
	Bounds scene.Bounds

	opts    Options
	pointer *input.Pointer
	scroll  *input.Scroll
	handles events.Bag
	cancel  context.CancelFunc

	last    time.Duration
	hasLast bool
	resumed bool

	frames    int
	destroyed bool
}

// New returns a new started [App]: the scene is made and sized, the
// scheduler started and the preloader triggered.
func New(opts Options) (*App, error) {
	switch {
	case opts.Mount == nil:
		return nil, errors.New("app: no mount element")
	case opts.Renderer == nil:
		return nil, errors.New("app: no renderer")
	case opts.Scheduler == nil:
		return nil, errors.New("app: no scheduler")
	}
	if opts.Config == nil {
		opts.Config = config.New()
	}
	if opts.Pointer == nil {
		opts.Pointer = input.NewPointer(opts.Config.Pointer)
	}
	if opts.Scroll == nil {
		opts.Scroll = input.NewScroll()
	}
	if opts.NewScene == nil {
		kind := opts.Kind
		opts.NewScene = func(d scene.Deps) scene.Scene { return scene.New(kind, d) }
	}

	a := &App{Config: opts.Config, Tweens: &tween.Group{}, opts: opts, pointer: opts.Pointer, scroll: opts.Scroll}
	cc := opts.Config.Camera
	a.Camera = xyz.NewCamera()
	if cc.Near > 0 && cc.Far > cc.Near {
		a.Camera.Near, a.Camera.Far = cc.Near, cc.Far
	}
	a.Scene = opts.NewScene(scene.Deps{
		Config:   opts.Config.Clone(),
		Camera:   a.Camera,
		Document: opts.Document,
		Pointer:  a.pointer,
		Scroll:   a.scroll,
		Tweens:   a.Tweens,
	})
	a.Scene.SetItems(opts.Items)
	a.Resize()

	if w := opts.Window; w != nil {
		a.handles.Add(
			w.OnResize(a.Resize),
			w.OnVisibility(a.setVisible),
		)
	}
	var ctx context.Context
	ctx, a.cancel = context.WithCancel(context.Background())
	if pl := opts.Preloader; pl != nil {
		a.handles.Add(pl.OnLoaded(a.onLoaded))
		urls := make([]string, len(opts.Items))
		for i, it := range opts.Items {
			urls[i] = it.Src
		}
		if err := pl.Load(ctx, urls); err != nil {
			a.Destroy()
			return nil, err
		}
	}
	opts.Scheduler.SetFrameFunc(a.Frame)
	a.resumed = true
	opts.Scheduler.Start()
	slog.Info("app: started", "scene", opts.Kind, "items", len(opts.Items), "bounds", a.Bounds)
	return a, nil
}

// Frames returns the number of frames rendered.
func (a *App) Frames() int {
	return a.frames
}

// Frame runs one frame at the given time. The first frame, and the
// first frame after the app becomes visible again, only record the
// time, so that the delta of the next frame is not inflated by the pause.
func (a *App) Frame(now time.Duration) {
	if a.destroyed {
		return
	}
	if a.resumed || !a.hasLast {
		a.last, a.hasLast, a.resumed = now, true, false
		return
	}
	tick := clock.NewTick(now, a.last, a.Config.Frame.FrameInterval())
	a.last = now

	a.Tweens.Update(now)
	a.pointer.Update(tick)
	a.scroll.Update(tick)
	a.drainPreload()
	a.Scene.Update(tick)
	errors.Log(a.opts.Renderer.Render(a.Scene.Group(), a.Camera))
	a.frames++
}

// drainPreload dispatches the preloader result, if it arrived,
// so that the scene receives its textures on the frame goroutine.
func (a *App) drainPreload() {
	pl := a.opts.Preloader
	if pl == nil {
		return
	}
	select {
	case res := <-pl.Done():
		if len(res.Failed) > 0 {
			slog.Warn("app: some images failed to load", "failed", len(res.Failed))
		}
		pl.Dispatch(res)
	default:
	}
}

func (a *App) onLoaded(res preload.Result) {
	a.Scene.SetTextures(res.Textures)
}

// Resize measures the mount element and resizes the camera, renderer,
// input services and scene to it. An unmeasurable or empty mount
// element is ignored.
func (a *App) Resize() {
	if a.destroyed {
		return
	}
	r, ok := a.opts.Mount.Rect()
	if !ok || r.Empty() {
		slog.Debug("app: mount element not measurable, skipping resize")
		return
	}
	a.Bounds = scene.Bounds{Width: r.Width, Height: r.Height}
	cc := a.Config.Camera
	a.Camera.SetPixelPerfect(r.Width, r.Height, cc.Distance)

	pr := float32(1)
	if w := a.opts.Window; w != nil {
		pr = w.PixelRatio()
	}
	if cc.MaxPixelRatio > 0 {
		pr = math32.Min(pr, cc.MaxPixelRatio)
	}
	a.opts.Renderer.SetSize(int(r.Width), int(r.Height), pr)
	a.pointer.SetViewport(r.Width, r.Height)
	a.scroll.SetViewportHeight(r.Height)
	a.Scene.SetRendererBounds(a.Bounds)
}

func (a *App) setVisible(visible bool) {
	if a.destroyed {
		return
	}
	if !visible {
		a.opts.Scheduler.Stop()
		return
	}
	a.resumed = true
	a.opts.Scheduler.Start()
}

// SetHoveredItem forces hover on the item with the given key,
// or clears it with [scene.NoItem].
func (a *App) SetHoveredItem(key int) {
	a.Scene.SetHovered(key)
}

// IsDestroyed returns whether [App.Destroy] was called.
func (a *App) IsDestroyed() bool {
	return a.destroyed
}

// Destroy stops the app and releases everything it holds.
// It is safe to call more than once.
func (a *App) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.opts.Scheduler.Stop()
	a.handles.Release()
	if a.cancel != nil {
		a.cancel()
	}
	a.Scene.Destroy()
	a.Tweens.StopAll()
	a.opts.Renderer.Close()
	if a.opts.Canvas != nil {
		a.opts.Mount.RemoveChild(a.opts.Canvas)
	}
	slog.Info("app: destroyed", "frames", a.frames)
}
