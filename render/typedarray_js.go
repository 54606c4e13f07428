// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package render

import (
	"unsafe"

	"github.com/hack-pad/safejs"
)

// float32Array returns a new Float32Array holding a copy of data.
func float32Array(data []float32) (safejs.Value, error) {
	ctor, err := safejs.Global().Get("Float32Array")
	if err != nil {
		return safejs.Undefined(), err
	}
	arr, err := ctor.New(len(data))
	if err != nil || len(data) == 0 {
		return arr, err
	}
	u8, err := uint8View(arr)
	if err != nil {
		return safejs.Undefined(), err
	}
	_, err = safejs.CopyBytesToJS(u8, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4))
	return arr, err
}

// uint8Array returns a new Uint8Array holding a copy of data.
func uint8Array(data []byte) (safejs.Value, error) {
	ctor, err := safejs.Global().Get("Uint8Array")
	if err != nil {
		return safejs.Undefined(), err
	}
	arr, err := ctor.New(len(data))
	if err != nil {
		return safejs.Undefined(), err
	}
	_, err = safejs.CopyBytesToJS(arr, data)
	return arr, err
}

// uint8View returns a Uint8Array over the bytes of a typed array.
func uint8View(arr safejs.Value) (safejs.Value, error) {
	ctor, err := safejs.Global().Get("Uint8Array")
	if err != nil {
		return safejs.Undefined(), err
	}
	buf, err := arr.Get("buffer")
	if err != nil {
		return safejs.Undefined(), err
	}
	off, err := arr.Get("byteOffset")
	if err != nil {
		return safejs.Undefined(), err
	}
	n, err := arr.Get("byteLength")
	if err != nil {
		return safejs.Undefined(), err
	}
	return ctor.New(buf, off, n)
}
