// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent string

func (e testEvent) EventType() string { return string(e) }

func TestListeners(t *testing.T) {
	var ls Listeners[string, testEvent]
	ls.Call("click")

	var calls []string
	ls.On("click", func(e testEvent) { calls = append(calls, "click") })
	all := ls.OnAny(func(e testEvent) { calls = append(calls, "any "+string(e)) })
	ls.On("key", func(e testEvent) { calls = append(calls, "key") })
	assert.Equal(t, 3, ls.Len())

	ls.Call("click")
	assert.Equal(t, []string{"click", "any click"}, calls)

	calls = nil
	assert.True(t, ls.Off(all))
	assert.False(t, ls.Off(all))
	ls.Call("key")
	assert.Equal(t, []string{"key"}, calls)
}

func TestListenersChangeDuringCall(t *testing.T) {
	var ls Listeners[string, testEvent]
	n := 0
	var id ID
	id = ls.OnAny(func(e testEvent) {
		n++
		ls.Off(id)
		ls.OnAny(func(e testEvent) { n += 10 })
	})
	ls.Call("a")
	assert.Equal(t, 1, n, "listeners added during a call are not called")
	ls.Call("a")
	assert.Equal(t, 11, n)
}
