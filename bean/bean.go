// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bean provides a reactive data model of named, typed,
// observable properties grouped into beans, which can be connected
// to each other through property sources and arranged in node graphs.
//
// A [Property] either holds its own value or uses another property
// as its source. Sources form a directed acyclic graph: cycles are
// rejected when a source is set, and value changes propagate
// synchronously to every property that uses the changed one.
// A [Bean] is an ordered collection of properties, and a [Graph]
// is a bean that contains other beans at positions.
//
// Everything in this package is single-threaded: all mutations
// and listener calls must happen on the same goroutine.
package bean

import (
	"fmt"
	"slices"

	"cogentcore.org/nodegraph/base/suggest"
)

// Bean is a named, ordered collection of properties
// that sends events to its listeners when it changes.
type Bean interface {

	// Name returns the name of the bean.
	Name() string

	// SetName sets the name of the bean, sending [BeanChanged].
	SetName(name string)

	// Properties returns the properties of the bean in order.
	// The returned slice must not be modified.
	Properties() []*Property

	// PropertyByName returns the first property with the given name,
	// or an [ErrUnknownProperty] error if there is none.
	PropertyByName(name string) (*Property, error)

	// On adds a listener function called for events of the given type
	// about the bean and its properties, returning its id.
	On(typ EventTypes, fun func(e *Event)) ListenerID

	// OnAny adds a listener function called for all events
	// about the bean and its properties, returning its id.
	OnAny(fun func(e *Event)) ListenerID

	// Off removes the listener with the given id.
	Off(id ListenerID) bool

	// Copy returns a deep copy of the bean and its properties.
	// Copied properties have no sources.
	Copy() (Bean, error)
}

// Mutable is a [Bean] whose set of properties can be changed.
type Mutable interface {
	Bean

	// AddProperty adds the given property to the end of the bean,
	// making the bean its owner, and sends [PropertyAdded].
	// It returns an error if the property is nil, already in the
	// bean, or owned by another bean.
	AddProperty(p *Property) error

	// RemoveProperty removes the given property from the bean and
	// sends [PropertyRemoved]. It returns an [ErrUnknownProperty]
	// error if the property is not in the bean.
	RemoveProperty(p *Property) error
}

// Base implements [Mutable] and provides the core functionality
// of beans. Higher-level bean types embed it and call
// [Base.InitBase] with themselves, so that properties
// and events refer to the higher-level type.
type Base struct {

	// this is the bean as its true underlying type.
	this Bean

	// name is the name of the bean.
	name string

	// properties are the properties of the bean in order.
	properties []*Property

	// relays are our listeners on each of our properties.
	relays map[*Property]ListenerID

	// listeners are the registered listener functions.
	listeners Listeners
}

// NewBase returns a new [Base] bean with the given name.
func NewBase(name string) *Base {
	b := &Base{}
	b.InitBase(b, name)
	return b
}

// InitBase initializes the bean with the given underlying
// higher-level bean and name. It must be called before the
// bean is used.
func (b *Base) InitBase(this Bean, name string) {
	b.this = this
	b.name = name
	b.relays = map[*Property]ListenerID{}
}

// AsBase returns the [Base] of the bean.
func (b *Base) AsBase() *Base {
	return b
}

func (b *Base) String() string {
	return fmt.Sprintf("%q", b.name)
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) SetName(name string) {
	if name == b.name {
		return
	}
	old := b.name
	b.name = name
	b.listeners.Call(&Event{Type: BeanChanged, Bean: b.this, Old: old, New: name})
}

func (b *Base) Properties() []*Property {
	return b.properties
}

// NumProperties returns the number of properties in the bean.
func (b *Base) NumProperties() int {
	return len(b.properties)
}

// IndexOf returns the index of the given property in the bean,
// or -1 if it is not in it.
func (b *Base) IndexOf(p *Property) int {
	return slices.Index(b.properties, p)
}

func (b *Base) PropertyByName(name string) (*Property, error) {
	return propertyByName(b.name, b.properties, name)
}

func (b *Base) AddProperty(p *Property) error {
	if p == nil {
		return fmt.Errorf("%w: adding to bean %q", ErrNilProperty, b.name)
	}
	if b.IndexOf(p) >= 0 {
		return fmt.Errorf("%w: %s is already in bean %q", ErrDuplicateProperty, p, b.name)
	}
	if b.this == nil {
		b.InitBase(b, b.name)
	}
	if err := p.setBean(b.this); err != nil {
		return err
	}
	b.relays[p] = p.OnAny(b.relay)
	b.properties = append(b.properties, p)
	b.listeners.Call(&Event{Type: PropertyAdded, Bean: b.this, Property: p})
	return nil
}

func (b *Base) RemoveProperty(p *Property) error {
	i := b.IndexOf(p)
	if i < 0 {
		return fmt.Errorf("%w: %s is not in bean %q", ErrUnknownProperty, p, b.name)
	}
	p.Off(b.relays[p])
	delete(b.relays, p)
	b.properties = slices.Delete(b.properties, i, i+1)
	b.listeners.Call(&Event{Type: PropertyRemoved, Bean: b.this, Property: p})
	return nil
}

// relay forwards events about one of our properties to our listeners.
func (b *Base) relay(e *Event) {
	b.listeners.Call(e)
}

func (b *Base) On(typ EventTypes, fun func(e *Event)) ListenerID {
	return b.listeners.On(typ, fun)
}

func (b *Base) OnAny(fun func(e *Event)) ListenerID {
	return b.listeners.OnAny(fun)
}

func (b *Base) Off(id ListenerID) bool {
	return b.listeners.Off(id)
}

func (b *Base) Copy() (Bean, error) {
	nb := NewBase(b.name)
	if err := copyProperties(nb, b.properties); err != nil {
		return nil, err
	}
	return nb, nil
}

// copyProperties adds copies of the given properties to the given bean.
func copyProperties(to Mutable, props []*Property) error {
	for _, p := range props {
		c, err := p.Copy()
		if err != nil {
			return err
		}
		if err := to.AddProperty(c); err != nil {
			return err
		}
	}
	return nil
}

// propertyByName returns the first of the given properties of
// the bean with the given bean name that has the given name,
// or an error suggesting the closest name.
func propertyByName(beanName string, props []*Property, name string) (*Property, error) {
	names := make([]string, len(props))
	for i, p := range props {
		if p.name == name {
			return p, nil
		}
		names[i] = p.name
	}
	return nil, fmt.Errorf("%w: bean %q has no property %q%s", ErrUnknownProperty, beanName, name, suggest.DidYouMean(name, names))
}
