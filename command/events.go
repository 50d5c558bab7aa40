// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"cogentcore.org/nodegraph/base/events"
)

// EventTypes are the types of events sent to the listeners
// of commands and providers.
type EventTypes int32

const (
	// EnabledChanged is sent when a command is enabled or disabled.
	// [Event.Old] and [Event.New] are the old and new bool states.
	EnabledChanged EventTypes = iota

	// ConfigChanged is sent when the description, icon, hotkey,
	// or menu path of a command changes.
	ConfigChanged

	// CommandAdded is sent when a command is added to a provider.
	CommandAdded

	// CommandRemoved is sent when a command is removed from a provider.
	CommandRemoved
)

var _EventTypesNames = []string{`EnabledChanged`, `ConfigChanged`, `CommandAdded`, `CommandRemoved`}

// EventTypesN is the highest valid value for type EventTypes, plus one.
const EventTypesN EventTypes = 4

// String returns the string representation of this EventTypes value.
func (i EventTypes) String() string {
	if i >= 0 && i < EventTypesN {
		return _EventTypesNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// Event is one notification sent to command listeners.
type Event struct {
	Type    EventTypes
	Command *Command
	Old     any
	New     any
}

// EventType returns the type of the event.
func (e *Event) EventType() EventTypes { return e.Type }

// ListenerID identifies a function registered on [Listeners].
type ListenerID = events.ID

// Listeners registers listener functions to receive
// events about commands.
type Listeners = events.Listeners[EventTypes, *Event]
