// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/planesgl/planes/base/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><canvas></canvas></body></html>`

func siteDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "a.txt"), []byte("a"), 0o644))
	return dir
}

func get(t *testing.T, url string) (*http.Response, string) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestInjectReloadScript(t *testing.T) {
	tag := `<script src="/_reload.js"></script>`
	assert.Equal(t, `<html><body><canvas></canvas>`+tag+`</body></html>`, string(InjectReloadScript([]byte(page))))
	assert.Equal(t, `<P>hi</P>`+tag+`</BODY>`, string(InjectReloadScript([]byte(`<P>hi</P></BODY>`))))
	assert.Equal(t, `hi`+tag, string(InjectReloadScript([]byte(`hi`))))
}

func TestServer(t *testing.T) {
	ts := httptest.NewServer(NewServer(ServeOptions{Dir: siteDir(t)}))
	defer ts.Close()

	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, page, body)
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	_, body = get(t, ts.URL+"/img/a.txt")
	assert.Equal(t, "a", body)

	resp, _ = get(t, ts.URL+ReloadScriptPath)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServerReload(t *testing.T) {
	s := NewServer(ServeOptions{Dir: siteDir(t), Watch: true, Debounce: 20 * time.Millisecond})
	ts := httptest.NewServer(s)
	defer ts.Close()

	_, body := get(t, ts.URL+"/")
	assert.Contains(t, body, `<script src="/_reload.js"></script></body>`)
	_, body = get(t, ts.URL+"/index.html")
	assert.Contains(t, body, ReloadScriptPath)
	resp, body := get(t, ts.URL+ReloadScriptPath)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
	assert.Contains(t, body, ReloadPath)
	_, body = get(t, ts.URL+"/img/a.txt")
	assert.Equal(t, "a", body)

	c, err := websocket.Connect("ws" + strings.TrimPrefix(ts.URL, "http") + ReloadPath)
	require.NoError(t, err)
	msgs := make(chan string, 4)
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		assert.Equal(t, websocket.TextMessage, typ)
		msgs <- string(msg)
	})
	require.Eventually(t, func() bool { return s.Reloader.Len() == 1 }, time.Second, 5*time.Millisecond)

	s.Reloader.Reload()
	select {
	case m := <-msgs:
		assert.Equal(t, ReloadMessage, m)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload message")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(s.Options.Dir, "img", "b.txt"), []byte("b"), 0o644))
	select {
	case m := <-msgs:
		assert.Equal(t, ReloadMessage, m)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after change")
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })
	require.NoError(t, c.Close())
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("not closed")
	}
	require.Eventually(t, func() bool { return s.Reloader.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := NewServer(ServeOptions{Dir: siteDir(t), Watch: true})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	_, body := get(t, "http://"+ln.Addr().String()+"/index.html")
	assert.Contains(t, body, ReloadScriptPath)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHidden(t *testing.T) {
	assert.True(t, hidden("dir/.index.html.swp"))
	assert.False(t, hidden("dir/index.html"))
	assert.False(t, hidden("."))
}
