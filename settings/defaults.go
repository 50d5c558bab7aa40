// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"cogentcore.org/nodegraph/base/errors"
)

// SetFromDefaults sets the fields of the given pointer to a struct
// from their `default:` struct field tags, recursing into struct fields
// without a tag. Tag values are parsed as YAML, so they can be flow
// mappings and sequences like `{x: 1, y: 2}` and `[a, b]`. All fields
// that can be set are set, and the errors of the rest are joined.
func SetFromDefaults(obj any) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("settings: SetFromDefaults: need a non-nil pointer to a struct, not %T", obj)
	}
	return setFromDefaults(v.Elem())
}

func setFromDefaults(v reflect.Value) error {
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaults(fv))
			}
			continue
		}
		if err := yaml.Unmarshal([]byte(def), fv.Addr().Interface()); err != nil {
			errs = append(errs, fmt.Errorf("settings: field %s.%s: invalid default %q: %w", typ.Name(), f.Name, def, err))
		}
	}
	return errors.Join(errs...)
}
