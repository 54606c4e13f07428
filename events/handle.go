// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Handle is a subscription. Release removes the subscription;
// it is safe to call more than once.
type Handle interface {
	Release()
}

type funcHandle struct {
	release func()
}

// HandleFunc returns a [Handle] that calls f on the first Release.
func HandleFunc(f func()) Handle {
	return &funcHandle{release: f}
}

func (h *funcHandle) Release() {
	if h.release == nil {
		return
	}
	f := h.release
	h.release = nil
	f()
}

// Bag collects handles so that they can be released together,
// typically on teardown:
//
//	var bag events.Bag
//	defer func() {
//		if err != nil {
//			bag.Release()
//		}
//	}()
type Bag struct {
	handles []Handle
}

// Add adds the given handles to the bag. Nil handles are ignored.
func (b *Bag) Add(hs ...Handle) {
	for _, h := range hs {
		if h != nil {
			b.handles = append(b.handles, h)
		}
	}
}

// Len returns the number of handles held.
func (b *Bag) Len() int {
	return len(b.handles)
}

// Release releases all handles in reverse order of addition
// and empties the bag.
func (b *Bag) Release() {
	hs := b.handles
	b.handles = nil
	for i := len(hs) - 1; i >= 0; i-- {
		hs[i].Release()
	}
}
