// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides listener lists for typed events,
// shared by the event systems of the other packages.
package events

import "slices"

// Typed is an event that has a type, used to select the
// listeners it is sent to.
type Typed[T comparable] interface {
	EventType() T
}

// ID identifies a listener function registered on [Listeners],
// for removing it with [Listeners.Off].
type ID uint64

type listener[T comparable, E Typed[T]] struct {
	id  ID
	all bool
	typ T
	fun func(e E)
}

// Listeners registers listener functions to receive events of
// type E, selected by their event type T. Listeners are closures
// with all context captured, registered on specific objects.
// The zero value is ready to use.
type Listeners[T comparable, E Typed[T]] struct {
	last ID
	list []listener[T, E]
}

// On adds a function called for events of the given type,
// returning its id.
func (ls *Listeners[T, E]) On(typ T, fun func(e E)) ID {
	ls.last++
	ls.list = append(ls.list, listener[T, E]{id: ls.last, typ: typ, fun: fun})
	return ls.last
}

// OnAny adds a function called for events of every type,
// returning its id.
func (ls *Listeners[T, E]) OnAny(fun func(e E)) ID {
	ls.last++
	ls.list = append(ls.list, listener[T, E]{id: ls.last, all: true, fun: fun})
	return ls.last
}

// Off removes the listener with the given id,
// returning whether it was found.
func (ls *Listeners[T, E]) Off(id ID) bool {
	i := slices.IndexFunc(ls.list, func(l listener[T, E]) bool { return l.id == id })
	if i < 0 {
		return false
	}
	ls.list = slices.Delete(ls.list, i, i+1)
	return true
}

// Len returns the number of registered listeners.
func (ls *Listeners[T, E]) Len() int {
	return len(ls.list)
}

// Call calls all functions registered for the type of the given
// event, in the order they were added. Listeners added or removed
// by a listener during the call take effect for the next event.
func (ls *Listeners[T, E]) Call(e E) {
	if len(ls.list) == 0 {
		return
	}
	typ := e.EventType()
	for _, l := range slices.Clone(ls.list) {
		if l.all || l.typ == typ {
			l.fun(e)
		}
	}
}
