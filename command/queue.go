// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"fmt"
	"log/slog"

	"cogentcore.org/nodegraph/base/errors"
	"cogentcore.org/nodegraph/project"
)

// DefaultMaxDepth is the default [Queue.MaxDepth] of new queues.
var DefaultMaxDepth = 100

// Queue applies changes to one project, keeping undo and redo stacks of
// the undoable ones. It is a [Provider] of the built-in Undo and Redo
// commands, and the [Invoker] of every command added to it, so that
// invoking those commands applies their changes through the queue.
type Queue struct {
	Provider

	// MaxDepth is the maximum number of changes in the undo stack.
	// The oldest changes are dropped beyond it. If it is <= 0, there
	// is no limit.
	MaxDepth int

	// project is the project the changes apply to.
	project *project.Project

	// undo is the undo stack, with the most recent change last.
	undo []Change

	// redo is the redo stack, with the most recently undone change last.
	redo []Change

	// undoCommand and redoCommand are the built-in commands.
	undoCommand, redoCommand *Command
}

// NewQueue returns a new queue for the given project,
// with [DefaultMaxDepth] and the built-in Undo and Redo commands.
// It returns an [ErrNilProject] error if p is nil.
func NewQueue(p *project.Project) (*Queue, error) {
	if p == nil {
		return nil, ErrNilProject
	}
	q := &Queue{project: p, MaxDepth: DefaultMaxDepth}
	q.name = "Edit"
	q.invoker = q
	q.undoCommand = NewCommand("Undo", func() (Change, error) { return nil, q.Undo() }).
		SetIcon("undo").SetHotkey("Command+Z").SetMenu("Edit")
	q.redoCommand = NewCommand("Redo", func() (Change, error) { return nil, q.Redo() }).
		SetIcon("redo").SetHotkey("Command+Shift+Z").SetMenu("Edit")
	errors.Log(q.AddCommand(q.undoCommand))
	errors.Log(q.AddCommand(q.redoCommand))
	q.refresh()
	return q, nil
}

// Project returns the project the changes apply to.
func (q *Queue) Project() *project.Project {
	return q.project
}

// UndoCommand returns the built-in command that calls [Queue.Undo].
func (q *Queue) UndoCommand() *Command {
	return q.undoCommand
}

// RedoCommand returns the built-in command that calls [Queue.Redo].
func (q *Queue) RedoCommand() *Command {
	return q.redoCommand
}

// Invoke runs the given command and applies its change, if any.
func (q *Queue) Invoke(c *Command) error {
	ch, err := c.Run()
	if err != nil {
		return err
	}
	if ch == nil {
		return nil
	}
	return q.ApplyChange(ch)
}

// ApplyChange applies the given change to the project. If it is undoable,
// it is pushed on the undo stack and the redo stack is cleared.
func (q *Queue) ApplyChange(c Change) error {
	if c == nil {
		return ErrNilChange
	}
	defer q.refresh()
	ok, err := c.Apply(q.project)
	if err != nil {
		return fmt.Errorf("applying %q: %w", c.Name(), err)
	}
	slog.Debug("command: applied change", "change", c.Name(), "undoable", ok)
	if !ok {
		return nil
	}
	q.push(c)
	q.redo = nil
	q.project.SetDirty(true)
	return nil
}

// push pushes the given change on the undo stack, dropping
// the oldest changes beyond [Queue.MaxDepth].
func (q *Queue) push(c Change) {
	q.undo = append(q.undo, c)
	if q.MaxDepth > 0 && len(q.undo) > q.MaxDepth {
		n := len(q.undo) - q.MaxDepth
		slog.Debug("command: dropping oldest changes", "n", n)
		clear(q.undo[:n])
		q.undo = q.undo[n:]
	}
}

// Undo undoes the most recent change in the undo stack and pushes it
// on the redo stack. It returns [ErrEmptyUndoStack] if there is none.
// If undoing fails, the stacks are unchanged.
func (q *Queue) Undo() error {
	n := len(q.undo)
	if n == 0 {
		return ErrEmptyUndoStack
	}
	defer q.refresh()
	c := q.undo[n-1]
	if err := c.Undo(q.project); err != nil {
		return fmt.Errorf("undoing %q: %w", c.Name(), err)
	}
	q.undo = q.undo[:n-1]
	q.redo = append(q.redo, c)
	q.project.SetDirty(true)
	slog.Debug("command: undid change", "change", c.Name())
	return nil
}

// Redo applies the most recently undone change again and pushes it
// on the undo stack. It returns [ErrEmptyRedoStack] if there is none.
// If applying fails, the stacks are unchanged.
func (q *Queue) Redo() error {
	n := len(q.redo)
	if n == 0 {
		return ErrEmptyRedoStack
	}
	defer q.refresh()
	c := q.redo[n-1]
	if _, err := c.Apply(q.project); err != nil {
		return fmt.Errorf("redoing %q: %w", c.Name(), err)
	}
	q.redo = q.redo[:n-1]
	q.push(c)
	q.project.SetDirty(true)
	slog.Debug("command: redid change", "change", c.Name())
	return nil
}

// Clear empties the undo and redo stacks.
func (q *Queue) Clear() {
	q.undo = nil
	q.redo = nil
	q.refresh()
}

// CanUndo returns whether there is a change to undo.
func (q *Queue) CanUndo() bool {
	return len(q.undo) > 0
}

// CanRedo returns whether there is a change to redo.
func (q *Queue) CanRedo() bool {
	return len(q.redo) > 0
}

// UndoName returns the name of the change that [Queue.Undo]
// would undo, or "" if there is none.
func (q *Queue) UndoName() string {
	if len(q.undo) == 0 {
		return ""
	}
	return q.undo[len(q.undo)-1].Name()
}

// RedoName returns the name of the change that [Queue.Redo]
// would redo, or "" if there is none.
func (q *Queue) RedoName() string {
	if len(q.redo) == 0 {
		return ""
	}
	return q.redo[len(q.redo)-1].Name()
}

// refresh updates the built-in commands to match the stacks.
func (q *Queue) refresh() {
	q.undoCommand.SetEnabled(q.CanUndo()).SetDescription(describe("Undo", q.UndoName()))
	q.redoCommand.SetEnabled(q.CanRedo()).SetDescription(describe("Redo", q.RedoName()))
}

func describe(verb, name string) string {
	if name == "" {
		return verb
	}
	return verb + " " + name
}
