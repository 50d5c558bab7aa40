// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"slices"

	"cogentcore.org/nodegraph/bean"
)

// Rename is a [Change] that renames a bean, or the project
// itself if Bean is nil.
type Rename struct {
	Bean bean.Bean
	To   string

	from string
}

func (c *Rename) Name() string {
	if c.from != "" {
		return "Rename " + c.from
	}
	return "Rename " + c.target(nil)
}

func (c *Rename) target(p *Project) string {
	switch {
	case c.Bean != nil:
		return c.Bean.Name()
	case p != nil:
		return p.Name()
	}
	return "project"
}

// Apply renames the bean. It is not undoable if the name is unchanged.
func (c *Rename) Apply(p *Project) (bool, error) {
	c.from = c.target(p)
	if c.from == c.To {
		return false, nil
	}
	c.set(p, c.To)
	return true, nil
}

func (c *Rename) Undo(p *Project) error {
	c.set(p, c.from)
	return nil
}

func (c *Rename) set(p *Project, name string) {
	if c.Bean != nil {
		c.Bean.SetName(name)
		return
	}
	p.SetName(name)
}

// SetValue is a [Change] that sets the stored value of a property.
type SetValue struct {
	Property *bean.Property
	Value    any

	old any
}

func (c *SetValue) Name() string {
	return "Set " + propertyName(c.Property)
}

func (c *SetValue) Apply(p *Project) (bool, error) {
	if c.Property == nil {
		return false, bean.ErrNilProperty
	}
	c.old = c.Property.Value()
	c.Property.SetValue(c.Value)
	return true, nil
}

func (c *SetValue) Undo(p *Project) error {
	c.Property.SetValue(c.old)
	return nil
}

// SetSource is a [Change] that sets or clears (if Source is nil)
// the source of a property, connecting or disconnecting it.
type SetSource struct {
	Property *bean.Property
	Source   *bean.Property

	old *bean.Property
}

func (c *SetSource) Name() string {
	if c.Source == nil {
		return "Disconnect " + propertyName(c.Property)
	}
	return "Connect " + propertyName(c.Property)
}

// Apply sets the source, returning [bean.ErrInvalidSource]
// without changing anything if the source can not be used.
// It is not undoable if the source is unchanged.
func (c *SetSource) Apply(p *Project) (bool, error) {
	if c.Property == nil {
		return false, bean.ErrNilProperty
	}
	c.old = c.Property.Source()
	if c.old == c.Source {
		return false, nil
	}
	if err := c.Property.SetSource(c.Source); err != nil {
		return false, err
	}
	return true, nil
}

func (c *SetSource) Undo(p *Project) error {
	return c.Property.SetSource(c.old)
}

// AddBean is a [Change] that adds a bean to a graph at a position.
// If Graph is nil, it is the root graph of the project.
type AddBean struct {
	Graph *bean.Graph
	Bean  bean.Bean
	X, Y  float32
}

func (c *AddBean) Name() string {
	return "Add " + beanName(c.Bean)
}

func (c *AddBean) Apply(p *Project) (bool, error) {
	if err := graphOf(p, c.Graph).AddBean(c.Bean, c.X, c.Y); err != nil {
		return false, err
	}
	return true, nil
}

func (c *AddBean) Undo(p *Project) error {
	graphOf(p, c.Graph).RemoveBean(c.Bean)
	return nil
}

// RemoveBean is a [Change] that removes a bean from a graph,
// restoring it at its last position when undone. If Graph is nil,
// it is the root graph of the project.
type RemoveBean struct {
	Graph *bean.Graph
	Bean  bean.Bean

	pos bean.Position
}

func (c *RemoveBean) Name() string {
	return "Remove " + beanName(c.Bean)
}

// Apply removes the bean. It is not undoable if the bean is not in
// the graph or is one of the interface views, which can not be removed.
func (c *RemoveBean) Apply(p *Project) (bool, error) {
	g := graphOf(p, c.Graph)
	pos, ok := g.BeanPosition(c.Bean)
	if !ok {
		return false, nil
	}
	c.pos = *pos
	g.RemoveBean(c.Bean)
	return !g.Contains(c.Bean), nil
}

func (c *RemoveBean) Undo(p *Project) error {
	return graphOf(p, c.Graph).AddBean(c.Bean, c.pos.X, c.pos.Y)
}

// MoveBean is a [Change] that moves a bean in a graph.
// If Graph is nil, it is the root graph of the project.
type MoveBean struct {
	Graph *bean.Graph
	Bean  bean.Bean
	X, Y  float32

	old bean.Position
}

func (c *MoveBean) Name() string {
	return "Move " + beanName(c.Bean)
}

// Apply moves the bean. It is not undoable if the position is unchanged.
func (c *MoveBean) Apply(p *Project) (bool, error) {
	g := graphOf(p, c.Graph)
	pos, ok := g.BeanPosition(c.Bean)
	if !ok {
		return false, fmt.Errorf("%w: moving %s", bean.ErrUnknownBean, beanName(c.Bean))
	}
	c.old = *pos
	if c.old == (bean.Position{X: c.X, Y: c.Y}) {
		return false, nil
	}
	return true, g.SetBeanPosition(c.Bean, c.X, c.Y)
}

func (c *MoveBean) Undo(p *Project) error {
	return graphOf(p, c.Graph).SetBeanPosition(c.Bean, c.old.X, c.old.Y)
}

// AddProperty is a [Change] that adds a property to a bean.
type AddProperty struct {
	Bean     bean.Mutable
	Property *bean.Property
}

func (c *AddProperty) Name() string {
	return "Add " + propertyName(c.Property)
}

func (c *AddProperty) Apply(p *Project) (bool, error) {
	if c.Bean == nil {
		return false, bean.ErrNilBean
	}
	if err := c.Bean.AddProperty(c.Property); err != nil {
		return false, err
	}
	return true, nil
}

func (c *AddProperty) Undo(p *Project) error {
	return c.Bean.RemoveProperty(c.Property)
}

// RemoveProperty is a [Change] that removes a property from a bean.
// When undone, the property is added back at the end of the bean.
type RemoveProperty struct {
	Bean     bean.Mutable
	Property *bean.Property
}

func (c *RemoveProperty) Name() string {
	return "Remove " + propertyName(c.Property)
}

func (c *RemoveProperty) Apply(p *Project) (bool, error) {
	if c.Bean == nil {
		return false, bean.ErrNilBean
	}
	if err := c.Bean.RemoveProperty(c.Property); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RemoveProperty) Undo(p *Project) error {
	return c.Bean.AddProperty(c.Property)
}

// Group is a [Change] made of other changes that are applied in order
// and undone in reverse order, as a single step.
type Group struct {
	Label   string
	Changes []Change

	undoable []Change
}

func (c *Group) Name() string {
	return c.Label
}

// Apply applies all of the changes. If one fails, the changes already
// applied are undone before returning the error. The group is
// undoable if any of its changes is.
func (c *Group) Apply(p *Project) (bool, error) {
	c.undoable = c.undoable[:0]
	for _, ch := range c.Changes {
		ok, err := ch.Apply(p)
		if err != nil {
			err = fmt.Errorf("%s: %w", ch.Name(), err)
			if uerr := c.Undo(p); uerr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, uerr)
			}
			return false, err
		}
		if ok {
			c.undoable = append(c.undoable, ch)
		}
	}
	return len(c.undoable) > 0, nil
}

func (c *Group) Undo(p *Project) error {
	for _, ch := range slices.Backward(c.undoable) {
		if err := ch.Undo(p); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	c.undoable = c.undoable[:0]
	return nil
}

// Save is a [Change] that saves the project. It is never undoable.
type Save struct{}

func (c *Save) Name() string {
	return "Save"
}

func (c *Save) Apply(p *Project) (bool, error) {
	return false, p.Save()
}

func (c *Save) Undo(p *Project) error {
	return nil
}

// graphOf returns g, or the root graph of the project if g is nil.
func graphOf(p *Project, g *bean.Graph) *bean.Graph {
	if g != nil {
		return g
	}
	return p.Graph()
}

func beanName(b bean.Bean) string {
	if b == nil {
		return "bean"
	}
	return b.Name()
}

func propertyName(p *bean.Property) string {
	if p == nil {
		return "property"
	}
	return p.Name()
}
