// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"reflect"
	"strings"
	"unicode"
)

// TypeLabel returns a user-friendly name for the given property type,
// for use in editors and connection error messages. It excludes the
// package and converts builtin types into friendly forms
// (eg: "float64" to "Number").
func TypeLabel(typ reflect.Type) string {
	if typ == nil {
		return "Nothing"
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == beanType || (typ.Kind() != reflect.Interface && reflect.PointerTo(typ).Implements(beanType)) {
		return "Bean"
	}
	nm := typ.Name()
	if nm != "" {
		switch nm {
		case "string":
			return "Text"
		case "bool":
			return "Switch"
		case "float32", "float64", "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
			return "Number"
		}
		if typ.Kind() == reflect.Interface && typ.NumMethod() == 0 {
			return "Value"
		}
		return sentence(nm)
	}
	switch typ.Kind() {
	case reflect.Slice, reflect.Array:
		el := TypeLabel(typ.Elem())
		if strings.HasSuffix(el, "s") {
			return "List of " + el
		}
		return "List of " + el + "s"
	case reflect.Map:
		return "Map of " + TypeLabel(typ.Key()) + " to " + TypeLabel(typ.Elem())
	case reflect.Interface:
		return "Value"
	}
	return typ.String()
}

// sentence converts a CamelCase name into sentence case:
// "HitPoints" becomes "Hit points".
func sentence(nm string) string {
	var b strings.Builder
	for i, r := range nm {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
