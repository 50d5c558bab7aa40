// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/nodegraph/bean"
)

// recorder records the events sent to a listener.
type recorder struct {
	events []*Event
}

func (r *recorder) listen(e *Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []EventTypes {
	ts := make([]EventTypes, len(r.events))
	for i, e := range r.events {
		ts[i] = e.Type
	}
	return ts
}

func (r *recorder) count(typ EventTypes) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestNewProperty(t *testing.T) {
	p := New("Hitpoints", 42.0)
	assert.Equal(t, "Hitpoints", p.Name())
	assert.Equal(t, reflect.TypeFor[float64](), p.Type())
	assert.Equal(t, InOut, p.Direction())
	assert.Equal(t, 42.0, p.Get())
	assert.Equal(t, 42.0, p.Value())
	assert.Nil(t, p.Bean())
	assert.Nil(t, p.Source())

	p = NewProperty("Anything", nil, nil)
	assert.Equal(t, reflect.TypeFor[any](), p.Type())
	assert.Nil(t, p.Get())
}

func TestPropertySetValue(t *testing.T) {
	p := New("Name", "troll")
	var r recorder
	p.On(ValueChanged, r.listen)

	p.SetValue("ogre")
	require.Len(t, r.events, 1)
	assert.Equal(t, "troll", r.events[0].Old)
	assert.Equal(t, "ogre", r.events[0].New)
	assert.Equal(t, p, r.events[0].Property)

	p.SetValue("ogre")
	assert.Len(t, r.events, 1, "identical value must not notify")
}

func TestPropertySetValueIdentity(t *testing.T) {
	s := []int{1, 2}
	p := New("List", s)
	var r recorder
	p.On(ValueChanged, r.listen)

	p.SetValue(s)
	assert.Empty(t, r.events, "same slice is identical")
	p.SetValue([]int{1, 2})
	assert.Len(t, r.events, 1, "equal but distinct slice is a change")
}

func TestPropertySelfSource(t *testing.T) {
	p := New("A", 1)
	err := p.SetSource(p)
	assert.ErrorIs(t, err, ErrInvalidSource)
	assert.Nil(t, p.Source())
	assert.False(t, p.CanUseSource(p))
}

func TestPropertyCycleSource(t *testing.T) {
	a := New("A", 1)
	b := New("B", 2)
	c := New("C", 3)
	require.NoError(t, a.SetSource(b))

	err := b.SetSource(a)
	assert.ErrorIs(t, err, ErrInvalidSource)
	assert.Equal(t, b, a.Source())
	assert.Nil(t, b.Source())

	require.NoError(t, b.SetSource(c))
	assert.ErrorIs(t, c.SetSource(a), ErrInvalidSource)
	assert.True(t, a.UsesSource(c))
	assert.False(t, c.UsesSource(a))
	assert.False(t, a.UsesSource(nil))
	assert.Equal(t, 3, a.Get())
}

func TestPropertyCanUseSource(t *testing.T) {
	f := New("F", 1.5)
	g := New("G", 2.5)
	s := New("S", "text")
	v := NewProperty("V", nil, nil)

	assert.True(t, f.CanUseSource(g))
	assert.False(t, f.CanUseSource(nil))
	assert.False(t, f.CanUseSource(s), "string is not assignable to float64")
	assert.True(t, v.CanUseSource(s), "anything is assignable to any")
	assert.False(t, s.CanUseSource(v))

	err := f.SetSource(s)
	assert.ErrorIs(t, err, ErrInvalidSource)
	assert.Contains(t, err.Error(), "Text")
	assert.Contains(t, err.Error(), "Number")
}

func TestPropertyValueShadow(t *testing.T) {
	a := New("A", 1)
	b := New("B", 2)
	require.NoError(t, a.SetSource(b))

	var r recorder
	a.On(ValueChanged, r.listen)
	a.SetValue(10)
	assert.Equal(t, 2, a.Get())
	assert.Equal(t, 10, a.Value())
	assert.Empty(t, r.events)

	require.NoError(t, a.SetSource(nil))
	assert.Equal(t, 10, a.Get())
	require.Len(t, r.events, 1, "clearing the source reveals the stored value")
	assert.Equal(t, 2, r.events[0].Old)
	assert.Equal(t, 10, r.events[0].New)
}

func TestPropertyPropagation(t *testing.T) {
	a := New("A", 0)
	b := New("B", 0)
	require.NoError(t, a.SetSource(b))

	var r recorder
	a.OnAny(r.listen)
	b.SetValue(5)
	assert.Equal(t, 5, a.Get())
	assert.Equal(t, 1, r.count(ValueChanged))
	assert.Equal(t, 5, r.events[0].New)
	assert.Equal(t, a, r.events[0].Property)
}

func TestPropertyChainPropagation(t *testing.T) {
	a := New("A", 0)
	b := New("B", 0)
	c := New("C", 0)
	require.NoError(t, a.SetSource(b))
	require.NoError(t, b.SetSource(c))

	var r recorder
	a.On(ValueChanged, r.listen)
	c.SetValue(7)
	assert.Equal(t, 7, a.Get())
	assert.Equal(t, 1, r.count(ValueChanged))

	b.SetValue(9)
	assert.Equal(t, 1, r.count(ValueChanged), "b is shadowed by c")
}

func TestPropertySourceChangedEvents(t *testing.T) {
	a := New("A", 1)
	b := New("B", 2)
	c := New("C", 2)

	var r recorder
	a.OnAny(r.listen)
	require.NoError(t, a.SetSource(b))
	assert.Equal(t, []EventTypes{SourceChanged, ValueChanged}, r.types())
	assert.Equal(t, b, r.events[0].New)

	r.events = nil
	require.NoError(t, a.SetSource(b))
	assert.Empty(t, r.events, "setting the same source is a no-op")

	require.NoError(t, a.SetSource(c))
	assert.Equal(t, []EventTypes{SourceChanged}, r.types(), "value is unchanged")

	r.events = nil
	b.SetValue(100)
	assert.Empty(t, r.events, "old source is no longer listened to")
	c.SetValue(50)
	assert.Equal(t, []EventTypes{ValueChanged}, r.types())
}

func TestPropertyNameAndDirection(t *testing.T) {
	p := New("A", 1)
	var r recorder
	p.On(PropertyChanged, r.listen)

	p.SetName("B").SetDirection(Out)
	assert.Equal(t, "B", p.Name())
	assert.Equal(t, Out, p.Direction())
	require.Len(t, r.events, 2)
	assert.Equal(t, "A", r.events[0].Old)
	assert.Equal(t, InOut, r.events[1].Old)

	p.SetName("B").SetDirection(Out)
	assert.Len(t, r.events, 2)
}

func TestPropertyEditor(t *testing.T) {
	p := New("A", 1)
	var r recorder
	p.On(EditorChanged, r.listen)

	nc := &NumberConfig{Min: 0, Max: 10}
	p.SetEditor(nc)
	assert.Equal(t, EditorConfig(nc), p.Editor())
	p.SetEditor(nc)
	assert.Len(t, r.events, 1)
	p.SetEditor(&TextConfig{})
	assert.Len(t, r.events, 2)
}

func TestPropertyCopy(t *testing.T) {
	p := New("Tags", []string{"big", "green"}).SetDirection(Out).
		SetEditor(&ChoiceConfig{Options: []string{"a", "b"}})
	src := New("Src", []string{"x"})
	require.NoError(t, p.SetSource(src))

	c, err := p.Copy()
	require.NoError(t, err)
	assert.Equal(t, "Tags", c.Name())
	assert.Equal(t, Out, c.Direction())
	assert.Equal(t, p.Type(), c.Type())
	assert.Nil(t, c.Source())
	assert.Nil(t, c.Bean())
	assert.Equal(t, []string{"big", "green"}, c.Value())

	c.Value().([]string)[0] = "small"
	assert.Equal(t, "big", p.Value().([]string)[0], "value is deep copied")

	ce := c.Editor().(*ChoiceConfig)
	assert.NotSame(t, p.Editor(), ce)
	assert.Equal(t, []string{"a", "b"}, ce.Options)
}

func TestPropertyListenerClamps(t *testing.T) {
	hp := New("Hitpoints", 0.0)
	bal := New("Balance", 0.0)
	require.NoError(t, bal.SetSource(hp))

	var hpValues, balValues []any
	hp.On(ValueChanged, func(e *Event) {
		hpValues = append(hpValues, e.New)
		if e.New.(float64) > 100 {
			hp.SetValue(100.0)
		}
	})
	bal.On(ValueChanged, func(e *Event) { balValues = append(balValues, e.New) })

	hp.SetValue(500.0)
	assert.Equal(t, 100.0, hp.Get())
	assert.Equal(t, []any{500.0, 100.0}, hpValues)
	assert.Equal(t, 100.0, bal.Get())
	assert.Equal(t, []any{500.0, 100.0}, balValues)
}

func TestPropertyNestedChangesCombined(t *testing.T) {
	p := New("P", 0)
	var r recorder
	p.On(ValueChanged, func(e *Event) {
		if e.New == 1 {
			p.SetValue(2)
			p.SetValue(3)
		}
	})
	p.On(ValueChanged, r.listen)

	p.SetValue(1)
	require.Len(t, r.events, 2)
	assert.Equal(t, 0, r.events[0].Old)
	assert.Equal(t, 1, r.events[0].New)
	assert.Equal(t, 1, r.events[1].Old)
	assert.Equal(t, 3, r.events[1].New)

	r.events = nil
	p.On(ValueChanged, func(e *Event) {
		if e.New == 4 {
			p.SetValue(5)
			p.SetValue(4)
		}
	})
	p.SetValue(4)
	assert.Len(t, r.events, 1, "nested changes that cancel out are not sent")
}

func TestTrollScenario(t *testing.T) {
	troll := NewDynamic("Troll")
	hitpoints := troll.AddFloat64("Hitpoints", 0, 0, 1000)
	balance := troll.AddFloat64("Balance", 0, 0, 1000)
	require.NoError(t, balance.SetSource(hitpoints))

	nc := hitpoints.Editor().(*NumberConfig)
	assert.Equal(t, 0.0, nc.Min)
	assert.Equal(t, 1000.0, nc.Max)
	assert.Equal(t, InOut, hitpoints.Direction())

	hitpoints.SetValue(42.0)
	assert.Equal(t, 42.0, balance.Get())

	balance.SetValue(10.0)
	assert.Equal(t, 42.0, balance.Get())
	assert.Equal(t, 10.0, balance.Value())
}
