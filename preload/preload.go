// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preload loads the images of a set of urls concurrently and
// reports them once, all together, as textures keyed by url.
//
// Loading runs on background goroutines; the result is handed to the
// frame loop through [Preloader.Done], and the frame loop calls
// [Preloader.Dispatch] so that listeners run on its goroutine.
package preload

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/events"
	"github.com/planesgl/planes/xyz"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a load.
type Result struct {

	// Textures has a texture for every requested url. Urls that
	// failed to load have a placeholder texture.
	Textures map[string]*xyz.Texture

	// Failed has the error of every url that failed to load.
	Failed map[string]error
}

// Options configures a [Preloader].
type Options struct {
	Fetcher Fetcher
	Config  config.Preload
}

// Preloader loads images once. Failed images are not retried.
type Preloader struct {
	opts        Options
	placeholder color.Color

	mu      sync.Mutex
	started bool

	done       chan Result
	dispatched bool
	loaded     events.Listeners[Result]
}

// New returns a new [Preloader]. A nil fetcher uses an [HTTPFetcher].
func New(opts Options) *Preloader {
	if opts.Fetcher == nil {
		opts.Fetcher = &HTTPFetcher{}
	}
	pl := &Preloader{opts: opts, done: make(chan Result, 1)}
	pl.placeholder = color.RGBA{217, 217, 217, 255}
	if opts.Config.Placeholder != "" {
		c, err := colorful.Hex(opts.Config.Placeholder)
		if errors.Log(err) == nil {
			pl.placeholder = c
		}
	}
	return pl
}

// OnLoaded adds a listener called once with the result, from [Preloader.Dispatch].
func (pl *Preloader) OnLoaded(f func(Result)) events.Handle {
	return pl.loaded.Add(f)
}

// Done returns the channel that receives the result once loading completes.
func (pl *Preloader) Done() <-chan Result {
	return pl.done
}

// Dispatch calls the loaded listeners with the given result.
// Only the first call has an effect.
func (pl *Preloader) Dispatch(res Result) {
	if pl.dispatched {
		return
	}
	pl.dispatched = true
	pl.loaded.Call(res)
}

// Load starts loading the given urls in the background.
// It returns an error if called more than once.
func (pl *Preloader) Load(ctx context.Context, urls []string) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if pl.started {
		return fmt.Errorf("preload: already loading")
	}
	pl.started = true
	go func() {
		pl.done <- pl.LoadAll(ctx, urls)
	}()
	return nil
}

// LoadAll loads the given urls, blocking until all are done,
// with at most [config.Preload.Concurrency] fetches at a time.
// Duplicate urls are loaded once.
func (pl *Preloader) LoadAll(ctx context.Context, urls []string) Result {
	res := Result{Textures: map[string]*xyz.Texture{}, Failed: map[string]error{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	if c := pl.opts.Config.Concurrency; c > 0 {
		g.SetLimit(c)
	}
	seen := map[string]bool{}
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		g.Go(func() error {
			tx, err := pl.loadOne(gctx, u)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("preload: using placeholder", "url", u, "err", err)
				res.Failed[u] = err
				tx = xyz.NewPlaceholder(u, pl.placeholder)
			}
			res.Textures[u] = tx
			return nil
		})
	}
	g.Wait()
	slog.Debug("preload: done", "textures", len(res.Textures), "failed", len(res.Failed))
	return res
}

func (pl *Preloader) loadOne(ctx context.Context, url string) (*xyz.Texture, error) {
	if t := pl.opts.Config.Timeout.Std(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	data, err := pl.opts.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data, pl.opts.Config.MaxTextureSize)
	if err != nil {
		return nil, err
	}
	return xyz.NewTexture(url, img), nil
}
