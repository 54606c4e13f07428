// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a WebSocket client that works both in
// the browser and natively, used for live reload of the dev server.
package websocket

// MessageTypes are the types of WebSocket messages,
// with the values of RFC 6455.
type MessageTypes int

const (
	// TextMessage is a UTF-8 encoded text message.
	TextMessage MessageTypes = 1

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = 2
)
