// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"fmt"
	"strconv"
)

// enumString returns the name of the given value in names,
// or its number if it is out of range.
func enumString[T ~int32](v T, names []string) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.FormatInt(int64(v), 10)
}

// enumSetString sets v to the value named s in names.
func enumSetString[T ~int32](v *T, s string, names []string, typ string) error {
	for i, nm := range names {
		if nm == s {
			*v = T(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typ)
}

var _DirectionNames = []string{`In`, `Out`, `InOut`}

// DirectionN is the highest valid value for type Direction, plus one.
const DirectionN Direction = 3

// String returns the string representation of this Direction value.
func (i Direction) String() string { return enumString(i, _DirectionNames) }

// SetString sets the Direction value from its string representation,
// and returns an error if the string is invalid.
func (i *Direction) SetString(s string) error {
	return enumSetString(i, s, _DirectionNames, "Direction")
}

// DirectionValues returns all possible values for the type Direction.
func DirectionValues() []Direction { return []Direction{In, Out, InOut} }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Direction) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Direction) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _EventTypesNames = []string{`ValueChanged`, `SourceChanged`, `EditorChanged`, `PropertyChanged`, `PropertyAdded`, `PropertyRemoved`, `BeanChanged`, `BeanAdded`, `BeanRemoved`, `BeanMoved`}

// EventTypesN is the highest valid value for type EventTypes, plus one.
const EventTypesN EventTypes = 10

// String returns the string representation of this EventTypes value.
func (i EventTypes) String() string { return enumString(i, _EventTypesNames) }

// SetString sets the EventTypes value from its string representation,
// and returns an error if the string is invalid.
func (i *EventTypes) SetString(s string) error {
	return enumSetString(i, s, _EventTypesNames, "EventTypes")
}

var _EditorKindsNames = []string{`TextEditor`, `NumberEditor`, `BeanEditor`, `ChoiceEditor`}

// EditorKindsN is the highest valid value for type EditorKinds, plus one.
const EditorKindsN EditorKinds = 4

// String returns the string representation of this EditorKinds value.
func (i EditorKinds) String() string { return enumString(i, _EditorKindsNames) }

// SetString sets the EditorKinds value from its string representation,
// and returns an error if the string is invalid.
func (i *EditorKinds) SetString(s string) error {
	return enumSetString(i, s, _EditorKindsNames, "EditorKinds")
}
