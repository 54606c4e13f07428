// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web serves a built planes site for development,
// reloading open pages when files in it change.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ReloadPath is the websocket endpoint that pushes reload messages.
const ReloadPath = "/_reload"

// ReloadScriptPath is the path of the script that listens for reloads.
// It is added to every served html page when watching.
const ReloadScriptPath = "/_reload.js"

// ServeOptions configures [Serve].
type ServeOptions struct {

	// Dir is the directory served.
	Dir string

	// Addr is the network address, such as ":8080".
	Addr string

	// Watch reloads open pages when files in Dir change.
	Watch bool

	// Debounce is how long changes are collected before a reload.
	Debounce time.Duration
}

// Defaults sets default values for unset options.
func (o *ServeOptions) Defaults() {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Addr == "" {
		o.Addr = ":8080"
	}
	if o.Debounce <= 0 {
		o.Debounce = 100 * time.Millisecond
	}
}

// Server is a development file server.
type Server struct {
	Options ServeOptions

	// Reloader is nil unless watching.
	Reloader *Reloader

	mux *http.ServeMux
}

// NewServer returns a new [Server] for the given options. Watching starts
// with [Server.Watch].
func NewServer(opts ServeOptions) *Server {
	opts.Defaults()
	s := &Server{Options: opts, mux: http.NewServeMux()}
	files := http.FileServer(http.Dir(opts.Dir))
	if opts.Watch {
		s.Reloader = NewReloader()
		s.mux.Handle(ReloadPath, s.Reloader)
		s.mux.HandleFunc(ReloadScriptPath, serveReloadScript)
		s.mux.Handle("/", s.injectReload(files))
	} else {
		s.mux.Handle("/", files)
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// wasm files must be served uncached for reloads to pick them up
	w.Header().Set("Cache-Control", "no-cache")
	s.mux.ServeHTTP(w, r)
}

// Watch reloads open pages on changes until the context is done.
// It does nothing unless watching.
func (s *Server) Watch(ctx context.Context) error {
	if s.Reloader == nil {
		return nil
	}
	return s.Reloader.Watch(ctx, s.Options.Dir, s.Options.Debounce)
}

// injectReload adds the reload script to html pages.
func (s *Server) injectReload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if strings.HasSuffix(p, "/") {
			p += "index.html"
		}
		if path.Ext(p) != ".html" {
			next.ServeHTTP(w, r)
			return
		}
		b, err := os.ReadFile(filepath.Join(s.Options.Dir, filepath.FromSlash(path.Clean(p))))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(InjectReloadScript(b))
	})
}

// InjectReloadScript returns the given html page with
// a script tag for [ReloadScriptPath] before its closing body tag.
func InjectReloadScript(page []byte) []byte {
	tag := []byte(`<script src="` + ReloadScriptPath + `"></script>`)
	i := bytes.LastIndex(bytes.ToLower(page), []byte("</body>"))
	if i < 0 {
		return append(page, tag...)
	}
	res := make([]byte, 0, len(page)+len(tag))
	res = append(res, page[:i]...)
	res = append(res, tag...)
	return append(res, page[i:]...)
}

const reloadScript = `(() => {
	const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "` + ReloadPath + `");
	ws.onmessage = (e) => { if (e.data === "reload") location.reload(); };
})();
`

func serveReloadScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(reloadScript))
}

// Serve serves the given directory until the context is done.
func Serve(ctx context.Context, opts ServeOptions) error {
	s := NewServer(opts)
	ln, err := net.Listen("tcp", s.Options.Addr)
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on the given listener until the context is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{Handler: s, ReadHeaderTimeout: 10 * time.Second}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errc := make(chan error, 1)
	go func() {
		errc <- s.Watch(ctx)
	}()
	go func() {
		<-ctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if s.Reloader != nil {
			s.Reloader.Close()
		}
		hs.Shutdown(sctx)
	}()
	slog.Info("web: serving", "dir", s.Options.Dir, "addr", ln.Addr().String(), "watch", s.Options.Watch)
	err := hs.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	cancel()
	if werr := <-errc; werr != nil && !errors.Is(werr, context.Canceled) && err == nil {
		err = werr
	}
	return err
}
