// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides typed listener registries whose
// registrations return a [Handle] that removes the listener.
package events

// Listeners is a registry of listener functions for one event type E.
// Listeners are closure functions with all context captured,
// called in the order they were added.
// The zero value is ready to use.
type Listeners[E any] struct {
	nextID int
	funcs  []listener[E]
}

type listener[E any] struct {
	id  int
	fun func(E)
}

// Add adds a function and returns the [Handle] that removes it.
func (ls *Listeners[E]) Add(fun func(E)) Handle {
	ls.nextID++
	id := ls.nextID
	ls.funcs = append(ls.funcs, listener[E]{id: id, fun: fun})
	return HandleFunc(func() { ls.remove(id) })
}

func (ls *Listeners[E]) remove(id int) {
	for i, l := range ls.funcs {
		if l.id == id {
			ls.funcs = append(ls.funcs[:i:i], ls.funcs[i+1:]...)
			return
		}
	}
}

// Call calls all functions with the given event. Listeners added
// or released by a listener during the call take effect on the next call.
func (ls *Listeners[E]) Call(ev E) {
	funcs := ls.funcs
	for _, l := range funcs {
		l.fun(ev)
	}
}

// Len returns the number of registered listeners.
func (ls *Listeners[E]) Len() int {
	return len(ls.funcs)
}

// Clear removes all listeners. Outstanding handles become no-ops.
func (ls *Listeners[E]) Clear() {
	ls.funcs = nil
}
