// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import "fmt"

// View is a read-only [Bean] that presents the properties of another
// bean that match a filter, under its own name. Properties in a view
// are owned by the viewed bean, and the structure of the viewed bean
// can not be changed through the view.
type View struct {

	// name is the name of the view.
	name string

	// viewed is the bean whose properties are presented.
	viewed Bean

	// filter reports whether a property of the viewed bean is in the view.
	filter func(p *Property) bool

	// listeners are the registered listener functions.
	listeners Listeners
}

// NewView returns a new [View] with the given name of the properties
// of the given bean for which the filter returns true. A nil filter
// includes all properties.
func NewView(name string, viewed Bean, filter func(p *Property) bool) *View {
	if filter == nil {
		filter = func(p *Property) bool { return true }
	}
	v := &View{name: name, viewed: viewed, filter: filter}
	viewed.OnAny(v.relay)
	return v
}

func (v *View) String() string {
	return fmt.Sprintf("%q", v.name)
}

// Viewed returns the bean whose properties are presented.
func (v *View) Viewed() Bean {
	return v.viewed
}

func (v *View) Name() string {
	return v.name
}

func (v *View) SetName(name string) {
	if name == v.name {
		return
	}
	old := v.name
	v.name = name
	v.listeners.Call(&Event{Type: BeanChanged, Bean: v, Old: old, New: name})
}

// Contains returns whether the given property is in the view.
func (v *View) Contains(p *Property) bool {
	return p != nil && p.bean == v.viewed && v.filter(p)
}

func (v *View) Properties() []*Property {
	var props []*Property
	for _, p := range v.viewed.Properties() {
		if v.filter(p) {
			props = append(props, p)
		}
	}
	return props
}

func (v *View) PropertyByName(name string) (*Property, error) {
	return propertyByName(v.name, v.Properties(), name)
}

// relay forwards events about properties in the view to our listeners.
// Events about the viewed bean itself are not forwarded. Property
// changes are always forwarded, since they can change the filter result.
func (v *View) relay(e *Event) {
	if e.Property == nil {
		return
	}
	if e.Type == PropertyChanged || e.Type == PropertyRemoved || v.filter(e.Property) {
		v.listeners.Call(e)
	}
}

func (v *View) On(typ EventTypes, fun func(e *Event)) ListenerID {
	return v.listeners.On(typ, fun)
}

func (v *View) OnAny(fun func(e *Event)) ListenerID {
	return v.listeners.OnAny(fun)
}

func (v *View) Off(id ListenerID) bool {
	return v.listeners.Off(id)
}

// Copy returns a new detached [Dynamic] bean with the name of the
// view and copies of the properties currently in the view.
func (v *View) Copy() (Bean, error) {
	d := NewDynamic(v.name)
	if err := copyProperties(d, v.Properties()); err != nil {
		return nil, err
	}
	return d, nil
}
