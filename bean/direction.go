// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

// Direction is the connection capability of a [Property]:
// whether it can receive a value from a source, provide
// its value to other properties, or both.
type Direction int32

const (
	// In properties can use another property as their source.
	In Direction = iota

	// Out properties can be used as the source of other properties.
	Out

	// InOut properties can do both.
	InOut
)

// IsInput returns whether the direction can receive a value.
func (d Direction) IsInput() bool {
	return d == In || d == InOut
}

// IsOutput returns whether the direction can provide a value.
func (d Direction) IsOutput() bool {
	return d == Out || d == InOut
}

// CanConnect returns whether a property with this direction can be
// connected to a property with the other direction, which holds
// when one side is input-capable and the other output-capable.
func (d Direction) CanConnect(other Direction) bool {
	return (d.IsInput() && other.IsOutput()) || (d.IsOutput() && other.IsInput())
}
