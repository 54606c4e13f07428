// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Command planesweb runs a planes scene in the browser. Build it with
// GOOS=js GOARCH=wasm. The scene is mounted on the element with id
// "planes", whose data-scene attribute selects the kind of scene, and
// shows the images of the elements with a data-src attribute.
package main

import (
	"log/slog"
	"strings"

	"github.com/hack-pad/safejs"
	"github.com/planesgl/planes/app"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/base/logx"
	"github.com/planesgl/planes/base/websocket"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/dom/domjs"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/preload"
	"github.com/planesgl/planes/render"
	"github.com/planesgl/planes/scene"
	"github.com/planesgl/planes/web"
)

// MountID is the id of the element the scene is mounted on.
const MountID = "planes"

func main() {
	logx.SetDefaultLogger()
	doc := domjs.NewDocument()
	mount := doc.ByID(MountID)
	if mount == nil {
		slog.Error("planesweb: no mount element", "id", MountID)
		return
	}
	kind := scene.KindItem
	if k := mount.Attr("data-scene"); k != "" {
		kind = errors.Log1(scene.ParseKind(k))
	}

	var urls []string
	for _, el := range doc.QueryAll("[" + dom.SrcAttr + "]") {
		urls = append(urls, el.Attr(dom.SrcAttr))
	}

	canvas := doc.CreateElement("canvas")
	canvas.SetStyle("position", "fixed")
	canvas.SetStyle("inset", "0")
	canvas.SetStyle("pointer-events", "none")
	mount.AppendChild(canvas)

	renderer, err := render.NewWebGL(canvas.Value())
	if errors.Log(err) != nil {
		return
	}
	cfg := config.New()
	pointer := input.NewPointer(cfg.Pointer)
	scroll := input.NewScroll()
	browser := app.NewBrowser(pointer, scroll)
	sched := &app.RAFScheduler{}

	_, err = app.New(app.Options{
		Config:    cfg,
		Mount:     mount,
		Canvas:    canvas,
		Document:  doc,
		Items:     scene.Items(urls...),
		Kind:      kind,
		Scheduler: sched,
		Window:    browser,
		Renderer:  renderer,
		Pointer:   pointer,
		Scroll:    scroll,
		Preloader: preload.New(preload.Options{Config: cfg.Preload}),
	})
	if errors.Log(err) != nil {
		browser.Release()
		sched.Release()
		return
	}
	if mount.Attr("data-reload") != "" {
		listenReload()
	}
	select {}
}

// listenReload reloads the page when the dev server says so.
func listenReload() {
	loc := errors.Log1(safejs.Global().Get("location"))
	host, _ := errors.Log1(loc.Get("host")).String()
	proto, _ := errors.Log1(loc.Get("protocol")).String()
	scheme := "ws://"
	if strings.HasPrefix(proto, "https") {
		scheme = "wss://"
	}
	c, err := websocket.Connect(scheme + host + web.ReloadPath)
	if errors.Log(err) != nil {
		return
	}
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		if string(msg) == web.ReloadMessage {
			errors.Log1(loc.Call("reload"))
		}
	})
}
