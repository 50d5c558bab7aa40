// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forceCycle makes a and b use each other as sources,
// bypassing the checks in SetSource.
func forceCycle(a, b *Property) {
	a.source = b
	b.source = a
}

func TestResolveCycle(t *testing.T) {
	a := New("A", 1)
	b := New("B", 2)
	forceCycle(a, b)

	_, err := a.Resolve()
	assert.ErrorIs(t, err, ErrCyclicResolution)
	assert.Panics(t, func() { a.Get() })

	c := New("C", 3)
	c.source = a
	_, err = c.Resolve()
	assert.ErrorIs(t, err, ErrCyclicResolution)
}

func TestUsesSourceTerminatesOnCycle(t *testing.T) {
	a := New("A", 1)
	b := New("B", 2)
	forceCycle(a, b)
	c := New("C", 3)
	c.source = a

	other := New("Other", 4)
	assert.False(t, c.UsesSource(other), "must terminate on a cycle not involving c")
	assert.True(t, c.UsesSource(b))
	assert.True(t, a.UsesSource(a))

	// other can still use c: c does not reach other
	require.NoError(t, other.SetSource(c))
	// and c can not use other, which uses c
	assert.ErrorIs(t, c.SetSource(other), ErrInvalidSource)
}

func TestPropertyListenerCascade(t *testing.T) {
	a := New("A", 0)
	b := New("B", 0)
	var aValues []int
	// listeners that keep setting each other's values
	a.On(ValueChanged, func(e *Event) {
		aValues = append(aValues, e.New.(int))
		b.SetValue(e.New.(int) + 1)
	})
	b.On(ValueChanged, func(e *Event) { a.SetValue(e.New.(int) + 1) })

	a.SetValue(1)
	require.Len(t, aValues, maxNestedValueChanges+1)
	assert.Equal(t, []int{1, 3, 5}, aValues[:3])
	last := aValues[len(aValues)-1]
	assert.Equal(t, last+1, b.Get())
	assert.Equal(t, last+2, a.Get())
	assert.False(t, a.sendingValue)
	assert.Nil(t, a.pending)
}

func TestIdentical(t *testing.T) {
	m := map[string]int{"a": 1}
	f := func() {}
	assert.True(t, identical(nil, nil))
	assert.False(t, identical(nil, 1))
	assert.True(t, identical(1, 1))
	assert.False(t, identical(1, int64(1)))
	assert.True(t, identical(m, m))
	assert.False(t, identical(m, map[string]int{"a": 1}))
	assert.True(t, identical(f, f))
	type withSlice struct{ s []int }
	assert.False(t, identical(withSlice{}, withSlice{}))
}

func TestCopyValue(t *testing.T) {
	type stats struct {
		Strength int
		Skills   []string
	}
	s := &stats{Strength: 5, Skills: []string{"club"}}
	v, err := copyValue(s)
	require.NoError(t, err)
	c := v.(*stats)
	assert.NotSame(t, s, c)
	assert.Equal(t, *s, *c)
	c.Skills[0] = "rock"
	assert.Equal(t, "club", s.Skills[0])

	v, err = copyValue(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, v)

	v, err = copyValue(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	inner := NewDynamic("Inner")
	inner.AddInt("Level", 3, 0, 10)
	v, err = copyValue(inner)
	require.NoError(t, err)
	ci := v.(*Dynamic)
	assert.NotSame(t, inner, ci)
	assert.Equal(t, 3, ci.Properties()[0].Get())
}
