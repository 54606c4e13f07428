// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless runs a scene without a browser, laying out an
// in-memory page, rendering with the software renderer and driving the
// frames and wheel input by hand. It is used for snapshots.
package headless

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/planesgl/planes/app"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/dom/domtest"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/preload"
	"github.com/planesgl/planes/render"
	"github.com/planesgl/planes/scene"
)

// Options configures [Run].
type Options struct {
	Config *config.Config
	Kind   scene.Kinds

	// Width and Height are the viewport size in pixels.
	Width, Height int

	// FS holds the images, fetched by URLs.
	FS   hackpadfs.FS
	URLs []string

	// Frames is the number of frames run.
	Frames int

	// Every is the number of frames between images written;
	// zero writes only the last frame.
	Every int

	// Wheel is the wheel delta, in pixels, sent on every frame of the
	// first half of the run.
	Wheel float32

	// Write is called with the rendered image of each frame written.
	Write func(frame int, img *image.RGBA) error
}

// Defaults sets default values for unset options.
func (o *Options) Defaults() {
	if o.Config == nil {
		o.Config = config.New()
	}
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Frames <= 0 {
		o.Frames = 120
	}
	if o.Every <= 0 {
		o.Every = o.Frames
	}
}

// PageOptions returns the page layout used for the given kind of scene.
func PageOptions(kind scene.Kinds, width, height int, urls []string) domtest.PageOptions {
	po := domtest.PageOptions{Width: float32(width), Height: float32(height), URLs: urls, Gap: 20}
	switch kind {
	case scene.KindGallery:
		po.Layout = domtest.Grid
		po.Columns = 4
		po.ItemWidth, po.ItemHeight = 240, 320
		po.Mirrors = 3
	case scene.KindSlide:
		po.ItemWidth, po.ItemHeight = 360, 480
	default:
		po.Layout = domtest.Grid
	}
	return po
}

// Run runs a scene for the given number of frames, returning the
// number of frames run. The images are loaded before the first frame.
func Run(ctx context.Context, o Options) (int, error) {
	o.Defaults()
	if len(o.URLs) == 0 {
		return 0, fmt.Errorf("headless: no images")
	}
	page := domtest.NewPage(PageOptions(o.Kind, o.Width, o.Height, o.URLs))
	sched := &app.ManualScheduler{}
	scroll := input.NewScroll()
	sw := render.NewSoftware(o.Width, o.Height)
	a, err := app.New(app.Options{
		Config:    o.Config,
		Mount:     page.Mount,
		Document:  page,
		Items:     scene.Items(o.URLs...),
		Kind:      o.Kind,
		Scheduler: sched,
		Renderer:  sw,
		Scroll:    scroll,
	})
	if err != nil {
		return 0, err
	}
	defer a.Destroy()

	pl := preload.New(preload.Options{Fetcher: &preload.FSFetcher{FS: o.FS}, Config: o.Config.Preload})
	res := pl.LoadAll(ctx, o.URLs)
	for u, err := range res.Failed {
		slog.Warn("headless: image failed to load", "url", u, "err", err)
	}
	a.Scene.SetTextures(res.Textures)

	interval := o.Config.Frame.FrameInterval()
	sched.Advance(interval)
	for i := 1; i <= o.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return i - 1, err
		}
		if o.Wheel != 0 && i <= o.Frames/2 {
			scroll.OnWheel(0, o.Wheel, input.WheelPixel)
		}
		sched.Advance(interval)
		if o.Write != nil && (i%o.Every == 0 || i == o.Frames) {
			if err := o.Write(i, sw.Image()); err != nil {
				return i, err
			}
		}
	}
	slog.Info("headless: done", "frames", o.Frames, "scene", o.Kind)
	return o.Frames, nil
}

// imageExts are the extensions of the files listed by [ListImages].
var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// ListImages returns the paths of the image files in
// the given directory of fsys, sorted by name.
func ListImages(fsys hackpadfs.FS, dir string) ([]string, error) {
	ents, err := hackpadfs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, e := range ents {
		if e.IsDir() || !slices.Contains(imageExts, strings.ToLower(path.Ext(e.Name()))) {
			continue
		}
		res = append(res, path.Join(dir, e.Name()))
	}
	return res, nil
}

// DirWriter returns a Write function saving each frame
// as frame-NNNN.png in the given directory.
func DirWriter(dir string) func(frame int, img *image.RGBA) error {
	return func(frame int, img *image.RGBA) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", frame))
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		slog.Debug("headless: wrote", "file", name)
		return f.Close()
	}
}
