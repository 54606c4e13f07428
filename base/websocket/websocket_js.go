// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package websocket

import (
	"fmt"

	"github.com/hack-pad/safejs"
	"github.com/planesgl/planes/base/errors"
)

// Client represents a WebSocket client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// ws is the underlying JavaScript WebSocket object.
	// See https://developer.mozilla.org/en-US/docs/Web/API/WebSocket
	ws safejs.Value

	funcs []safejs.Func
}

// Connect connects to a WebSocket server and returns a [Client].
func Connect(url string) (*Client, error) {
	ctor, err := safejs.Global().Get("WebSocket")
	if err != nil {
		return nil, fmt.Errorf("websocket: %w", err)
	}
	ws, err := ctor.New(url)
	if err != nil {
		return nil, fmt.Errorf("websocket: connecting to %q: %w", url, err)
	}
	return &Client{ws: ws}, nil
}

// on sets the given event handler property of the WebSocket.
func (c *Client) on(prop string, f func(e safejs.Value)) {
	fn, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		if len(args) > 0 {
			f(args[0])
		}
		return nil
	})
	if errors.Log(err) != nil {
		return
	}
	c.funcs = append(c.funcs, fn)
	errors.Log(c.ws.Set(prop, fn.Value()))
}

// OnMessage sets a callback function to be called when a message is received.
// Only text messages are supported in the browser.
// This function can only be called once.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	c.on("onmessage", func(e safejs.Value) {
		data, err := e.Get("data")
		if errors.Log(err) != nil {
			return
		}
		s, err := data.String()
		if errors.Log(err) != nil {
			return
		}
		f(TextMessage, []byte(s))
	})
}

// Send sends a message to the WebSocket server with the given type and message.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	_, err := c.ws.Call("send", string(msg))
	return err
}

// Close cleanly closes the WebSocket connection.
func (c *Client) Close() error {
	_, err := c.ws.Call("close")
	return err
}

// OnClose sets a callback function to be called when the connection is closed.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	c.on("onclose", func(safejs.Value) {
		f()
		for _, fn := range c.funcs {
			fn.Release()
		}
		c.funcs = nil
	})
}
