// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"reflect"

	"github.com/jinzhu/copier"
)

var copyOptions = copier.Option{CaseSensitive: true, DeepCopy: true}

// copyValue returns a deep copy of the given property value.
// Beans are copied with [Bean.Copy], structs, slices, maps, and
// pointers to structs with [copier]; all other values are returned as-is.
func copyValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if b, ok := v.(Bean); ok {
		return b.Copy()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return v, nil
		}
		np := reflect.New(rv.Elem().Type())
		err := copier.CopyWithOption(np.Interface(), v, copyOptions)
		return np.Interface(), err
	case reflect.Struct, reflect.Slice, reflect.Map:
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.IsNil() {
			return v, nil
		}
		np := reflect.New(rv.Type())
		err := copier.CopyWithOption(np.Interface(), v, copyOptions)
		return np.Elem().Interface(), err
	}
	return v, nil
}

// identical returns whether a and b are the same value: equal for
// comparable values, and the same underlying reference for slices,
// maps, and functions. It never compares deeply.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}
