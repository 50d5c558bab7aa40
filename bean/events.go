// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import "cogentcore.org/nodegraph/base/events"

// EventTypes are the types of events sent to the listeners
// of properties, beans, and graphs.
type EventTypes int32

const (
	// ValueChanged is sent when the effective value of a property
	// changes. [Event.Old] and [Event.New] are the old and new values.
	ValueChanged EventTypes = iota

	// SourceChanged is sent when the source of a property changes.
	// [Event.Old] and [Event.New] are the old and new *[Property] sources.
	SourceChanged

	// EditorChanged is sent when the [EditorConfig] of a property
	// is replaced.
	EditorChanged

	// PropertyChanged is sent when the name or direction of a
	// property changes.
	PropertyChanged

	// PropertyAdded is sent when a property is added to a bean.
	PropertyAdded

	// PropertyRemoved is sent when a property is removed from a bean.
	PropertyRemoved

	// BeanChanged is sent when a bean is renamed.
	// [Event.Old] and [Event.New] are the old and new names.
	BeanChanged

	// BeanAdded is sent when a bean is added to a [Graph].
	BeanAdded

	// BeanRemoved is sent when a bean is removed from a [Graph].
	BeanRemoved

	// BeanMoved is sent when the position of a bean in a [Graph] changes.
	BeanMoved
)

// Event is one notification sent to listeners.
type Event struct {

	// Type is the type of event.
	Type EventTypes

	// Bean is the bean the event is about. For property events,
	// it is the bean that owns the property, which may be nil.
	Bean Bean

	// Property is the property the event is about, if any.
	Property *Property

	// Old is the value before the change, for events that have one.
	Old any

	// New is the value after the change, for events that have one.
	New any

	// Position is the position of the bean in its graph,
	// for [BeanAdded], [BeanRemoved], and [BeanMoved].
	Position *Position
}

// EventType returns the type of the event.
func (e *Event) EventType() EventTypes { return e.Type }

// ListenerID identifies a listener function registered on
// [Listeners], for removing it with [Listeners.Off].
type ListenerID = events.ID

// Listeners registers listener functions to receive events
// about properties, beans, and graphs.
type Listeners = events.Listeners[EventTypes, *Event]
