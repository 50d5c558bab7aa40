// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/nodegraph/command"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	depth := command.DefaultMaxDepth
	t.Cleanup(func() { command.DefaultMaxDepth = depth })
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "nodegraph", root.Use)
	assert.True(t, root.HasSubCommands())
	assert.NotNil(t, root.PersistentFlags().Lookup("settings"))
	assert.NotNil(t, root.PersistentFlags().ShorthandLookup("v"))
}

func TestDemo(t *testing.T) {
	out := execute(t, "demo", "-q")
	assert.Contains(t, out, "Set Hitpoints")
	assert.Contains(t, out, "balance=42 (stored 10)")
	assert.Contains(t, out, `rejected: applying "Connect Hitpoints"`)
	assert.Contains(t, out, "undo Arm ogre")
	assert.Contains(t, out, "copy of graph has 4 beans, balance=42, original balance=7")
}

func TestSettingsCmd(t *testing.T) {
	out := execute(t, "settings")
	assert.Contains(t, out, "MaxDepth = 100")

	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("undo:\n  maxdepth: 7\n"), 0666))
	out = execute(t, "settings", "--settings", fn)
	assert.Contains(t, out, "MaxDepth = 7")
	assert.Equal(t, 7, command.DefaultMaxDepth)

	saved := filepath.Join(dir, "saved.toml")
	execute(t, "settings", "--settings", fn, "--save", saved)
	b, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Contains(t, string(b), "MaxDepth = 7")
}
