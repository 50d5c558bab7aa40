// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command provides invocable, listenable commands, named
// collections of them, and a [Queue] that applies the [Change]s
// made by commands to a project with undo and redo.
package command

import (
	"fmt"
	"slices"

	"cogentcore.org/nodegraph/base/errors"
	"cogentcore.org/nodegraph/project"
)

// Change is a reversible mutation of a project; see [project.Change].
type Change = project.Change

var (
	ErrDisabled         = errors.New("command is disabled")
	ErrNoQueue          = errors.New("command has no queue to apply its change")
	ErrNilCommand       = errors.New("nil command")
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNilChange        = errors.New("nil change")
	ErrNilProject       = errors.New("nil project")
	ErrEmptyUndoStack   = errors.New("nothing to undo")
	ErrEmptyRedoStack   = errors.New("nothing to redo")
)

// Invoker invokes commands on their behalf, intercepting their
// invocation. [Queue] is the standard Invoker.
type Invoker interface {
	Invoke(c *Command) error
}

// Command is a named unit of work with user-facing configuration,
// typically shown as a menu item or toolbar button. Its action
// returns the [Change] to apply, or nil if it made none.
type Command struct {

	// name is the name of the command.
	name string

	// description is the user-facing description, used as a tooltip.
	description string

	// icon is the name of the icon of the command.
	icon string

	// hotkey is the keyboard shortcut, such as "Command+Z".
	hotkey string

	// menu is the path of the menu that the command is in.
	menu []string

	// enabled is whether the command can be invoked.
	enabled bool

	// action is the function that does the work of the command.
	action func() (Change, error)

	// invoker is the invoker set by the provider the command is in.
	invoker Invoker

	// listeners are the registered listener functions.
	listeners Listeners
}

// NewCommand returns a new enabled command with the given name and action.
func NewCommand(name string, action func() (Change, error)) *Command {
	return &Command{name: name, action: action, enabled: true}
}

func (c *Command) String() string {
	return fmt.Sprintf("command %q", c.name)
}

func (c *Command) Name() string { return c.name }
func (c *Command) Description() string { return c.description }
func (c *Command) Icon() string { return c.icon }
func (c *Command) Hotkey() string { return c.hotkey }

// Menu returns the menu path of the command.
func (c *Command) Menu() []string { return c.menu }

// IsEnabled returns whether the command can be invoked.
func (c *Command) IsEnabled() bool { return c.enabled }

// SetDescription sets the description of the command.
func (c *Command) SetDescription(v string) *Command {
	return c.setConfig(&c.description, v)
}

// SetIcon sets the icon of the command.
func (c *Command) SetIcon(v string) *Command {
	return c.setConfig(&c.icon, v)
}

// SetHotkey sets the keyboard shortcut of the command.
func (c *Command) SetHotkey(v string) *Command {
	return c.setConfig(&c.hotkey, v)
}

// SetMenu sets the menu path of the command.
func (c *Command) SetMenu(path ...string) *Command {
	if slices.Equal(path, c.menu) {
		return c
	}
	old := c.menu
	c.menu = path
	c.listeners.Call(&Event{Type: ConfigChanged, Command: c, Old: old, New: path})
	return c
}

// setConfig sets the given config field, sending [ConfigChanged] if it changed.
func (c *Command) setConfig(field *string, v string) *Command {
	if *field == v {
		return c
	}
	old := *field
	*field = v
	c.listeners.Call(&Event{Type: ConfigChanged, Command: c, Old: old, New: v})
	return c
}

// SetEnabled sets whether the command can be invoked,
// sending [EnabledChanged] if it changed.
func (c *Command) SetEnabled(enabled bool) *Command {
	if enabled == c.enabled {
		return c
	}
	c.enabled = enabled
	c.listeners.Call(&Event{Type: EnabledChanged, Command: c, Old: !enabled, New: enabled})
	return c
}

// Run runs the action of the command directly, returning its change
// without applying it. Most code should use [Command.Invoke] instead.
func (c *Command) Run() (Change, error) {
	if !c.enabled {
		return nil, fmt.Errorf("%w: %s", ErrDisabled, c)
	}
	if c.action == nil {
		return nil, nil
	}
	return c.action()
}

// Invoke invokes the command through the invoker of its provider, which
// applies its change. Without an invoker, the action is run and an
// [ErrNoQueue] error is returned if it made a change.
func (c *Command) Invoke() error {
	if c.invoker != nil {
		return c.invoker.Invoke(c)
	}
	ch, err := c.Run()
	if err != nil {
		return err
	}
	if ch != nil {
		return fmt.Errorf("%w: %s made change %q", ErrNoQueue, c, ch.Name())
	}
	return nil
}

func (c *Command) On(typ EventTypes, fun func(e *Event)) ListenerID {
	return c.listeners.On(typ, fun)
}

func (c *Command) OnAny(fun func(e *Event)) ListenerID {
	return c.listeners.OnAny(fun)
}

func (c *Command) Off(id ListenerID) bool {
	return c.listeners.Off(id)
}
