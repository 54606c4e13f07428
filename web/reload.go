// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/planesgl/planes/base/errors"
)

// ReloadMessage is the message sent to pages to reload.
const ReloadMessage = "reload"

// Reloader is a websocket endpoint that tells connected pages to reload.
type Reloader struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewReloader returns a new [Reloader].
func NewReloader() *Reloader {
	return &Reloader{conns: map[*websocket.Conn]struct{}{}}
}

func (rl *Reloader) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := rl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("web: websocket upgrade failed", "err", err)
		return
	}
	rl.mu.Lock()
	rl.conns[conn] = struct{}{}
	rl.mu.Unlock()
	slog.Debug("web: page connected", "remote", r.RemoteAddr)

	// read until the page goes away, to process control messages
	go func() {
		defer rl.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (rl *Reloader) remove(conn *websocket.Conn) {
	rl.mu.Lock()
	delete(rl.conns, conn)
	rl.mu.Unlock()
	conn.Close()
}

// Len returns the number of connected pages.
func (rl *Reloader) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.conns)
}

// Reload tells all connected pages to reload.
func (rl *Reloader) Reload() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	slog.Info("web: reloading", "pages", len(rl.conns))
	for conn := range rl.conns {
		conn.SetWriteDeadline(time.Now().Add(time.Second))
		if errors.Log(conn.WriteMessage(websocket.TextMessage, []byte(ReloadMessage))) != nil {
			delete(rl.conns, conn)
			conn.Close()
		}
	}
}

// Close disconnects all pages.
func (rl *Reloader) Close() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for conn := range rl.conns {
		conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(time.Second))
		conn.Close()
	}
	clear(rl.conns)
}

// Watch watches dir and its subdirectories, reloading once the
// changes of a burst are at least debounce apart, until the context is done.
func (rl *Reloader) Watch(ctx context.Context, dir string, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := addDirs(w, dir); err != nil {
		return err
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if hidden(ev.Name) {
				continue
			}
			slog.Debug("web: changed", "file", ev.Name, "op", ev.Op)
			if ev.Has(fsnotify.Create) {
				// new directories are not watched automatically
				addDirs(w, ev.Name)
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-timer.C:
			rl.Reload()
		}
	}
}

// addDirs adds root, if it is a directory, and all of its
// non-hidden subdirectories to the watcher.
func addDirs(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && hidden(p) {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}

// hidden returns whether the base name starts with a dot, like editor swap files.
func hidden(p string) bool {
	b := filepath.Base(p)
	return strings.HasPrefix(b, ".") && b != "." && b != ".."
}
