// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"fmt"
	"slices"

	"cogentcore.org/nodegraph/base/suggest"
)

// Provider is a named, ordered collection of commands, such as those
// of a menu. It sends [CommandAdded] and [CommandRemoved] to its
// listeners, and forwards the events of its commands.
type Provider struct {

	// name is the name of the provider.
	name string

	// commands are the commands in order.
	commands []*Command

	// relays are our listeners on each of our commands.
	relays map[*Command]ListenerID

	// invoker is set on commands added to the provider, if non-nil.
	invoker Invoker

	// listeners are the registered listener functions.
	listeners Listeners
}

// NewProvider returns a new empty provider with the given name.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

func (p *Provider) Name() string {
	return p.name
}

// Commands returns the commands in order.
// The returned slice must not be modified.
func (p *Provider) Commands() []*Command {
	return p.commands
}

// AddCommand adds the given command to the end of the provider.
func (p *Provider) AddCommand(c *Command) error {
	if c == nil {
		return fmt.Errorf("%w: adding to provider %q", ErrNilCommand, p.name)
	}
	if slices.Contains(p.commands, c) {
		return fmt.Errorf("%w: %s is already in provider %q", ErrDuplicateCommand, c, p.name)
	}
	if p.relays == nil {
		p.relays = map[*Command]ListenerID{}
	}
	if p.invoker != nil {
		c.invoker = p.invoker
	}
	p.relays[c] = c.OnAny(p.listeners.Call)
	p.commands = append(p.commands, c)
	p.listeners.Call(&Event{Type: CommandAdded, Command: c})
	return nil
}

// RemoveCommand removes the given command from the provider.
func (p *Provider) RemoveCommand(c *Command) error {
	i := slices.Index(p.commands, c)
	if i < 0 {
		return fmt.Errorf("%w: %v is not in provider %q", ErrUnknownCommand, c, p.name)
	}
	c.Off(p.relays[c])
	delete(p.relays, c)
	if p.invoker != nil && c.invoker == p.invoker {
		c.invoker = nil
	}
	p.commands = slices.Delete(p.commands, i, i+1)
	p.listeners.Call(&Event{Type: CommandRemoved, Command: c})
	return nil
}

// CommandByName returns the first command with the given name.
func (p *Provider) CommandByName(name string) (*Command, error) {
	names := make([]string, len(p.commands))
	for i, c := range p.commands {
		if c.name == name {
			return c, nil
		}
		names[i] = c.name
	}
	return nil, fmt.Errorf("%w: provider %q has no command %q%s", ErrUnknownCommand, p.name, name, suggest.DidYouMean(name, names))
}

func (p *Provider) On(typ EventTypes, fun func(e *Event)) ListenerID {
	return p.listeners.On(typ, fun)
}

func (p *Provider) OnAny(fun func(e *Event)) ListenerID {
	return p.listeners.OnAny(fun)
}

func (p *Provider) Off(id ListenerID) bool {
	return p.listeners.Off(id)
}
