// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"reflect"

	"cogentcore.org/nodegraph/base/errors"
)

// Dynamic is a [Mutable] bean with helper methods for adding
// typed properties with editor configurations already set.
type Dynamic struct {
	Base
}

// NewDynamic returns a new [Dynamic] bean with the given name.
func NewDynamic(name string) *Dynamic {
	d := &Dynamic{}
	d.InitBase(d, name)
	return d
}

// add adds the given new property, which can not fail.
func (d *Dynamic) add(p *Property) *Property {
	errors.Log(d.AddProperty(p))
	return p
}

// AddString adds a new string property with a [TextConfig] editor.
func (d *Dynamic) AddString(name, value string) *Property {
	return d.add(New(name, value).SetEditor(&TextConfig{}))
}

// AddInt adds a new int property with an integer [NumberConfig]
// editor over the given range.
func (d *Dynamic) AddInt(name string, value, min, max int) *Property {
	return d.add(New(name, value).SetEditor(&NumberConfig{Min: float64(min), Max: float64(max), Step: 1, Integer: true}))
}

// AddFloat32 adds a new float32 property with a [NumberConfig]
// editor over the given range.
func (d *Dynamic) AddFloat32(name string, value, min, max float32) *Property {
	return d.add(New(name, value).SetEditor(&NumberConfig{Min: float64(min), Max: float64(max), Step: defaultStep(float64(min), float64(max))}))
}

// AddFloat64 adds a new float64 property with a [NumberConfig]
// editor over the given range.
func (d *Dynamic) AddFloat64(name string, value, min, max float64) *Property {
	return d.add(New(name, value).SetEditor(&NumberConfig{Min: min, Max: max, Step: defaultStep(min, max)}))
}

// AddChoice adds a new string property with a [ChoiceConfig]
// editor for the given options.
func (d *Dynamic) AddChoice(name, value string, options ...string) *Property {
	return d.add(New(name, value).SetEditor(&ChoiceConfig{Options: options}))
}

// AddBean adds a new property whose value is the given nested bean,
// with a [BeanConfig] editor.
func (d *Dynamic) AddBean(name string, value Bean) *Property {
	return d.add(NewProperty(name, beanType, value).SetEditor(&BeanConfig{}))
}

// AddValue adds a new property of the given type and value
// with no editor config.
func (d *Dynamic) AddValue(name string, typ reflect.Type, value any) *Property {
	return d.add(NewProperty(name, typ, value))
}

func (d *Dynamic) Copy() (Bean, error) {
	nd := NewDynamic(d.name)
	if err := copyProperties(nd, d.properties); err != nil {
		return nil, err
	}
	return nd, nil
}

// defaultStep returns a step of one hundredth of the given range,
// or 0.1 if the range is empty.
func defaultStep(min, max float64) float64 {
	if max <= min {
		return 0.1
	}
	return (max - min) / 100
}
