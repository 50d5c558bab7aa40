// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nodegraph runs a demonstration of node graph editing with
// undo and redo, and shows the effective settings.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/nodegraph/bean"
	"cogentcore.org/nodegraph/command"
	"cogentcore.org/nodegraph/logx"
	"cogentcore.org/nodegraph/project"
	"cogentcore.org/nodegraph/settings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the global command line options.
type options struct {
	settingsFile string
	veryVerbose  bool
	verbose      bool
	quiet        bool

	settings *settings.Settings
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "nodegraph",
		Short:        "Node graph editing with undo and redo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.settingsFile, "settings", "", "settings file (.toml, .yaml, or .yml)")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newDemoCmd(opts), newSettingsCmd(opts))
	return root
}

// load loads and applies the settings and sets up logging.
func (o *options) load() error {
	o.settings = settings.Default()
	if o.settingsFile != "" {
		s, err := settings.Open(o.settingsFile)
		if err != nil {
			return err
		}
		o.settings = s
	}
	if err := o.settings.Apply(); err != nil {
		return err
	}
	if o.veryVerbose || o.verbose || o.quiet {
		logx.UserLevel = logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
	}
	logx.SetDefaultLogger()
	return nil
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Connect properties of beans in a graph and undo and redo changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func newSettingsCmd(opts *options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings as TOML, or save them to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save != "" {
				return opts.settings.Save(save)
			}
			b, err := opts.settings.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "save the settings to this file instead of printing them")
	return cmd
}

// runDemo builds a graph with a troll whose balance is connected to
// its hitpoints, and edits it through a command queue.
func runDemo(w io.Writer) error {
	p := project.New("Demo")
	q, err := command.NewQueue(p)
	if err != nil {
		return err
	}
	g := p.Graph()

	troll := bean.NewDynamic("Troll")
	hitpoints := troll.AddFloat64("Hitpoints", 0, 0, 1000)
	balance := troll.AddFloat64("Balance", 0, 0, 1000)
	troll.OnAny(func(e *bean.Event) {
		if e.Type == bean.ValueChanged {
			slog.Info("value changed", "property", e.Property.String(), "old", e.Old, "new", e.New)
		}
	})

	steps := []project.Change{
		&project.AddBean{Bean: troll, X: 0, Y: 0},
		&project.SetSource{Property: balance, Source: hitpoints},
		&project.SetValue{Property: hitpoints, Value: 42.0},
		&project.SetValue{Property: balance, Value: 10.0},
		&project.Rename{Bean: troll, To: "Mountain troll"},
	}
	for _, c := range steps {
		if err := q.ApplyChange(c); err != nil {
			return err
		}
		fmt.Fprintf(w, "%-24s balance=%v (stored %v)\n", c.Name(), balance.Get(), balance.Value())
	}

	ogre := bean.NewDynamic("Ogre")
	club := ogre.AddFloat64("Club", 0, 0, 1000)
	err = q.ApplyChange(&project.Group{Label: "Arm ogre", Changes: []project.Change{
		&project.AddBean{Bean: ogre, X: 200, Y: 0},
		&project.SetSource{Property: club, Source: balance},
	}})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-24s club=%v\n", "Arm ogre", club.Get())

	if err := q.ApplyChange(&project.SetSource{Property: hitpoints, Source: club}); err != nil {
		fmt.Fprintf(w, "%-24s rejected: %v\n", "Connect Hitpoints", err)
	}

	for q.CanUndo() {
		name := q.UndoName()
		if err := q.UndoCommand().Invoke(); err != nil {
			return err
		}
		fmt.Fprintf(w, "undo %-19s troll=%q balance=%v beans=%d\n", name, troll.Name(), balance.Get(), g.NumBeans())
	}
	for q.CanRedo() {
		name := q.RedoName()
		if err := q.RedoCommand().Invoke(); err != nil {
			return err
		}
		fmt.Fprintf(w, "redo %-19s troll=%q balance=%v beans=%d\n", name, troll.Name(), balance.Get(), g.NumBeans())
	}

	c, err := g.CopyGraph()
	if err != nil {
		return err
	}
	hitpoints.SetValue(7.0)
	ct, err := c.BeanByName("Mountain troll")
	if err != nil {
		return err
	}
	cb, err := ct.PropertyByName("Balance")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "copy of graph has %d beans, balance=%v, original balance=%v\n", c.NumBeans(), cb.Get(), balance.Get())
	return nil
}
