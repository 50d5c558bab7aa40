// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func ret1(fail bool) (int, error) {
	if fail {
		return 0, fmt.Errorf("wrapped: %w", errTest)
	}
	return 3, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(errTest)
	assert.ErrorIs(t, err, errTest)

	assert.Equal(t, 3, Log1(ret1(false)))
	assert.Equal(t, 0, Log1(ret1(true)))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, 3, Must1(ret1(false)))
	assert.Panics(t, func() { Must1(ret1(true)) })
}

func TestIgnoreAndIs(t *testing.T) {
	assert.Equal(t, 0, Ignore1(ret1(true)))
	_, err := ret1(true)
	assert.True(t, Is(err, errTest))
	assert.Equal(t, errTest, Unwrap(err))
	assert.Nil(t, Join(nil, nil))
}
