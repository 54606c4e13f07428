// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var ls Listeners[int]
	var got []int
	h1 := ls.Add(func(v int) { got = append(got, v) })
	ls.Add(func(v int) { got = append(got, v*10) })
	assert.Equal(t, 2, ls.Len())

	ls.Call(1)
	assert.Equal(t, []int{1, 10}, got)

	h1.Release()
	h1.Release()
	assert.Equal(t, 1, ls.Len())

	got = nil
	ls.Call(2)
	assert.Equal(t, []int{20}, got)
}

func TestListenersReleaseDuringCall(t *testing.T) {
	var ls Listeners[string]
	n := 0
	var h Handle
	h = ls.Add(func(string) {
		n++
		h.Release()
	})
	ls.Add(func(string) { n++ })
	ls.Call("a")
	assert.Equal(t, 2, n)
	ls.Call("b")
	assert.Equal(t, 3, n)
}

func TestBag(t *testing.T) {
	var ls Listeners[int]
	var bag Bag
	var order []int
	bag.Add(ls.Add(func(int) {}), nil, HandleFunc(func() { order = append(order, 1) }))
	bag.Add(HandleFunc(func() { order = append(order, 2) }))
	assert.Equal(t, 3, bag.Len())

	bag.Release()
	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, 0, ls.Len())
	assert.Equal(t, 0, bag.Len())

	bag.Release()
	assert.Equal(t, []int{2, 1}, order)
}
