// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/nodegraph/base/errors"
)

var (
	anyType  = reflect.TypeFor[any]()
	beanType = reflect.TypeFor[Bean]()
)

// Property is a named, typed, observable value cell. A property either
// holds its own value or uses another property as its source, in which
// case its effective value ([Property.Get]) is that of the source.
//
// Properties are owned by at most one [Bean] for their lifetime, which
// is set when they are first added to a bean with [Mutable.AddProperty].
// All methods must be called from a single goroutine.
type Property struct {

	// name is the name of the property.
	name string

	// typ is the type of values of the property, which determines
	// which properties it can use as its source.
	typ reflect.Type

	// value is the stored value, which is shadowed while there is a source.
	value any

	// direction is the connection capability of the property.
	direction Direction

	// source is the property that provides the effective value, if non-nil.
	source *Property

	// sourceListener is the id of our listener on source.
	sourceListener ListenerID

	// bean is the bean that owns the property. It is set once.
	bean Bean

	// editor is the editor configuration for UI code.
	editor EditorConfig

	// listeners are the registered listener functions.
	listeners Listeners

	// sendingValue is whether a ValueChanged event is being sent.
	sendingValue bool

	// pending is the value change made by a listener while a
	// ValueChanged event was being sent, which is sent next.
	pending *valueChange
}

// valueChange is a change in the effective value of a property.
type valueChange struct {
	old, new any
}

// maxNestedValueChanges is the maximum number of value changes made
// by listeners that are sent after one ValueChanged event, which
// stops listeners that keep setting each other's values.
const maxNestedValueChanges = 32

// NewProperty returns a new [InOut] property with the given name, type,
// and initial value. If typ is nil, it is the type of the value, or any
// if the value is nil.
func NewProperty(name string, typ reflect.Type, value any) *Property {
	if typ == nil {
		typ = reflect.TypeOf(value)
	}
	if typ == nil {
		typ = anyType
	}
	return &Property{name: name, typ: typ, value: value, direction: InOut}
}

// New returns a new [InOut] property with the given name and
// initial value, with a type of T.
func New[T any](name string, value T) *Property {
	return NewProperty(name, reflect.TypeFor[T](), value)
}

// String returns the name of the property qualified by the name
// of its bean, if it has one.
func (p *Property) String() string {
	if p == nil {
		return "nil"
	}
	if p.bean == nil {
		return fmt.Sprintf("%q", p.name)
	}
	return fmt.Sprintf("%q.%q", p.bean.Name(), p.name)
}

// Name returns the name of the property.
func (p *Property) Name() string {
	return p.name
}

// SetName sets the name of the property, sending [PropertyChanged]
// if it changed.
func (p *Property) SetName(name string) *Property {
	if name == p.name {
		return p
	}
	old := p.name
	p.name = name
	p.send(&Event{Type: PropertyChanged, Old: old, New: name})
	return p
}

// Type returns the type of values of the property.
func (p *Property) Type() reflect.Type {
	return p.typ
}

// Direction returns the connection capability of the property.
func (p *Property) Direction() Direction {
	return p.direction
}

// SetDirection sets the connection capability of the property,
// sending [PropertyChanged] if it changed.
func (p *Property) SetDirection(d Direction) *Property {
	if d == p.direction {
		return p
	}
	old := p.direction
	p.direction = d
	p.send(&Event{Type: PropertyChanged, Old: old, New: d})
	return p
}

// Bean returns the bean that owns the property, or nil
// if it has not been added to one.
func (p *Property) Bean() Bean {
	return p.bean
}

// setBean sets the owning bean. Once set, it can not be
// changed to a different bean.
func (p *Property) setBean(b Bean) error {
	if p.bean != nil && p.bean != b {
		return fmt.Errorf("%w: %s can not be added to %q", ErrBeanAlreadySet, p, b.Name())
	}
	p.bean = b
	return nil
}

// Editor returns the editor configuration of the property, or nil.
func (p *Property) Editor() EditorConfig {
	return p.editor
}

// SetEditor replaces the editor configuration of the property,
// sending [EditorChanged] if it is a different config.
func (p *Property) SetEditor(ec EditorConfig) *Property {
	if identical(ec, p.editor) {
		return p
	}
	old := p.editor
	p.editor = ec
	p.send(&Event{Type: EditorChanged, Old: old, New: ec})
	return p
}

// Value returns the stored value of the property, ignoring any source.
// Editors use it to show the local value even when it is shadowed.
func (p *Property) Value() any {
	return p.value
}

// SetValue sets the stored value of the property. If the value is not
// identical to the old one and there is no source, it sends [ValueChanged].
// While there is a source, the stored value is shadowed and no event is sent.
func (p *Property) SetValue(v any) *Property {
	old := p.value
	p.value = v
	if p.source != nil || identical(old, v) {
		return p
	}
	p.sendValue(old, v)
	return p
}

// Get returns the effective value of the property: the value of its
// source if it has one, and its stored value otherwise. It panics
// if the source chain is cyclic; see [Property.Resolve].
func (p *Property) Get() any {
	return errors.Must1(p.Resolve())
}

// Resolve returns the effective value of the property, following
// the source chain. It returns [ErrCyclicResolution] if the chain
// loops back on itself.
func (p *Property) Resolve() (any, error) {
	var visited map[*Property]bool
	cur := p
	for cur.source != nil {
		if visited == nil {
			visited = map[*Property]bool{}
		}
		visited[cur] = true
		cur = cur.source
		if visited[cur] {
			return nil, fmt.Errorf("%w: resolving %s loops at %s", ErrCyclicResolution, p, cur)
		}
	}
	return cur.value, nil
}

// Source returns the source of the property, or nil.
func (p *Property) Source() *Property {
	return p.source
}

// UsesSource returns whether the given property is reachable by
// following the source chain starting at the source of this property.
// It terminates on cycles already present in the chain.
func (p *Property) UsesSource(other *Property) bool {
	if other == nil {
		return false
	}
	visited := map[*Property]bool{p: true}
	for cur := p.source; cur != nil; cur = cur.source {
		if cur == other {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true
	}
	return false
}

// CanUseSource returns whether the given property can be used as
// the source of this property: it must be a different, non-nil property
// that does not already use this one, with a value type assignable to
// the type of this property. It has no side effects.
func (p *Property) CanUseSource(other *Property) bool {
	return p.checkSource(other) == nil
}

// checkSource returns an [ErrInvalidSource] error describing
// why other can not be used as our source, or nil if it can.
func (p *Property) checkSource(other *Property) error {
	switch {
	case other == nil:
		return fmt.Errorf("%w: nil source for %s", ErrInvalidSource, p)
	case other == p:
		return fmt.Errorf("%w: %s can not use itself as its source", ErrInvalidSource, p)
	case other.UsesSource(p):
		return fmt.Errorf("%w: %s already uses %s, which would make a cycle", ErrInvalidSource, other, p)
	case !other.typ.AssignableTo(p.typ):
		return fmt.Errorf("%w: can not use %s (%s) as the source of %s (%s)", ErrInvalidSource, other, TypeLabel(other.typ), p, TypeLabel(p.typ))
	}
	return nil
}

// SetSource sets the source of the property, or clears it if src is nil.
// It does nothing if src is already the source, and returns an
// [ErrInvalidSource] error without changing anything if src can not
// be used (see [Property.CanUseSource]). Otherwise it sends
// [SourceChanged], followed by [ValueChanged] if the effective value
// changed as a result.
func (p *Property) SetSource(src *Property) error {
	if src == p.source {
		return nil
	}
	if src != nil {
		if err := p.checkSource(src); err != nil {
			return err
		}
	}
	oldValue := errors.Ignore1(p.Resolve())
	old := p.source
	if old != nil {
		old.Off(p.sourceListener)
		p.sourceListener = 0
	}
	p.source = src
	if src != nil {
		p.sourceListener = src.On(ValueChanged, p.sourceValueChanged)
	}
	p.send(&Event{Type: SourceChanged, Old: old, New: src})
	newValue := errors.Ignore1(p.Resolve())
	if !identical(oldValue, newValue) {
		p.sendValue(oldValue, newValue)
	}
	return nil
}

// sourceValueChanged relays a change in the value of our source
// as a change in our own value.
func (p *Property) sourceValueChanged(e *Event) {
	p.sendValue(e.Old, e.New)
}

// On adds a listener function called for events of the given type
// about this property, returning its id.
func (p *Property) On(typ EventTypes, fun func(e *Event)) ListenerID {
	return p.listeners.On(typ, fun)
}

// OnAny adds a listener function called for all events
// about this property, returning its id.
func (p *Property) OnAny(fun func(e *Event)) ListenerID {
	return p.listeners.OnAny(fun)
}

// Off removes the listener with the given id.
func (p *Property) Off(id ListenerID) bool {
	return p.listeners.Off(id)
}

// sendValue sends a [ValueChanged] event. If one is already being sent
// by this property, the change is sent after it instead, combined with
// any other changes made meanwhile.
func (p *Property) sendValue(old, value any) {
	if p.sendingValue {
		if p.pending == nil {
			p.pending = &valueChange{old: old}
		}
		p.pending.new = value
		return
	}
	p.sendingValue = true
	defer func() {
		p.sendingValue = false
		p.pending = nil
	}()
	p.send(&Event{Type: ValueChanged, Old: old, New: value})
	for n := 0; p.pending != nil; n++ {
		if n == maxNestedValueChanges {
			slog.Warn("bean: too many nested value changes", "property", p.String(), "max", maxNestedValueChanges)
			return
		}
		c := *p.pending
		p.pending = nil
		if identical(c.old, c.new) {
			continue
		}
		p.send(&Event{Type: ValueChanged, Old: c.old, New: c.new})
	}
}

// send sends the given event about this property to our listeners.
func (p *Property) send(e *Event) {
	e.Bean = p.bean
	e.Property = p
	p.listeners.Call(e)
}

// Copy returns a new property with the same name, type, and direction,
// and a deep copy of the stored value and editor configuration.
// The copy has no source, bean, or listeners.
func (p *Property) Copy() (*Property, error) {
	v, err := copyValue(p.value)
	if err != nil {
		return nil, fmt.Errorf("copying value of %s: %w", p, err)
	}
	c := NewProperty(p.name, p.typ, v)
	c.direction = p.direction
	if p.editor != nil {
		ec, err := copyValue(p.editor)
		if err != nil {
			return nil, fmt.Errorf("copying editor of %s: %w", p, err)
		}
		c.editor, _ = ec.(EditorConfig)
	}
	return c, nil
}
