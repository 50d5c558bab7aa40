// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project provides [Project], the unit of work that a command
// queue mutates, and the standard undoable [Change] types for editing
// the node graph of a project.
package project

import (
	"fmt"

	"cogentcore.org/nodegraph/base/errors"
	"cogentcore.org/nodegraph/bean"
)

// ErrNoSaver is returned when saving a project that has no [Saver].
var ErrNoSaver = errors.New("project has no saver")

// Change is a reversible mutation of a [Project].
type Change interface {

	// Name returns a short user-facing description of the change,
	// such as "Rename Troll".
	Name() string

	// Apply applies the change to the project. It returns whether the
	// change can be undone and should be recorded in the undo stack.
	// It is also used to redo the change after it has been undone.
	Apply(p *Project) (bool, error)

	// Undo reverts the most recent application of the change.
	Undo(p *Project) error
}

// Saver saves projects to persistent storage.
type Saver interface {
	Save(p *Project) error
}

// SaverFunc is a function that implements [Saver].
type SaverFunc func(p *Project) error

func (f SaverFunc) Save(p *Project) error {
	return f(p)
}

// Project is a named root [bean.Graph] with a dirty flag that
// tracks whether it has changed since it was last saved.
type Project struct {

	// name is the name of the project.
	name string

	// graph is the root graph.
	graph *bean.Graph

	// dirty is whether there are unsaved changes.
	dirty bool

	// Saver is used by [Project.Save], if set.
	Saver Saver

	// OnDirtyChanged is called when the dirty flag changes, if set.
	OnDirtyChanged func(dirty bool)
}

// New returns a new project with the given name and an
// empty root graph of the same name.
func New(name string) *Project {
	return &Project{name: name, graph: bean.NewGraph(name)}
}

func (p *Project) String() string {
	return fmt.Sprintf("project %q", p.name)
}

func (p *Project) Name() string {
	return p.name
}

// SetName sets the name of the project and its root graph.
func (p *Project) SetName(name string) {
	p.name = name
	p.graph.SetName(name)
}

// Graph returns the root graph of the project.
func (p *Project) Graph() *bean.Graph {
	return p.graph
}

// IsDirty returns whether the project has unsaved changes.
func (p *Project) IsDirty() bool {
	return p.dirty
}

// SetDirty sets whether the project has unsaved changes.
func (p *Project) SetDirty(dirty bool) {
	if dirty == p.dirty {
		return
	}
	p.dirty = dirty
	if p.OnDirtyChanged != nil {
		p.OnDirtyChanged(dirty)
	}
}

// Save saves the project with its [Saver] and clears the dirty flag.
func (p *Project) Save() error {
	if p.Saver == nil {
		return fmt.Errorf("saving %s: %w", p, ErrNoSaver)
	}
	if err := p.Saver.Save(p); err != nil {
		return fmt.Errorf("saving %s: %w", p, err)
	}
	p.SetDirty(false)
	return nil
}
