// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/nodegraph/bean"
	"cogentcore.org/nodegraph/command"
	"cogentcore.org/nodegraph/logx"
	. "cogentcore.org/nodegraph/settings"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 100, s.Undo.MaxDepth)
	assert.Equal(t, bean.Position{X: -400}, s.Layout.Inputs)
	assert.Equal(t, bean.Position{X: 400}, s.Layout.Outputs)
	assert.Equal(t, "warn", s.Log.Level)
	assert.True(t, s.Log.Color)
}

func TestSetFromDefaults(t *testing.T) {
	type inner struct {
		Names []string `default:"[a, b]"`
	}
	type config struct {
		Rate   float64 `default:"0.5"`
		Inner  inner
		hidden int `default:"3"`
		Plain  int
	}
	c := &config{}
	require.NoError(t, SetFromDefaults(c))
	assert.Equal(t, 0.5, c.Rate)
	assert.Equal(t, []string{"a", "b"}, c.Inner.Names)
	assert.Equal(t, 0, c.hidden)
	assert.Equal(t, 0, c.Plain)

	assert.Error(t, SetFromDefaults(config{}))
	assert.Error(t, SetFromDefaults((*config)(nil)))

	type bad struct {
		N int `default:"many"`
		M int `default:"2"`
	}
	b := &bad{}
	err := SetFromDefaults(b)
	assert.ErrorContains(t, err, "bad.N")
	assert.Equal(t, 2, b.M, "valid defaults are still set")
}

func TestSaveOpenTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := Default()
	s.Undo.MaxDepth = 5
	s.Layout.Inputs.Y = 30
	s.Log.Color = false
	require.NoError(t, s.Save(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "MaxDepth = 5")

	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, s, o)
}

func TestOpenYAML(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("undo:\n  maxdepth: 7\nlog:\n  level: debug\n"), 0666))
	s, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Undo.MaxDepth)
	assert.Equal(t, "debug", s.Log.Level)
	assert.True(t, s.Log.Color, "unset values keep their defaults")
	assert.Equal(t, bean.Position{X: 400}, s.Layout.Outputs)

	yml := filepath.Join(dir, "settings.yml")
	require.NoError(t, s.Save(yml))
	o, err := Open(yml)
	require.NoError(t, err)
	assert.Equal(t, s, o)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(fn, []byte("{}"), 0666))
	_, err = Open(fn)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Default().Save(fn), ErrUnknownFormat)

	fn = filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[Undo\nMaxDepth = "), 0666))
	_, err = Open(fn)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	depth, layout, level, color := command.DefaultMaxDepth, bean.Layout, logx.UserLevel, logx.Color
	t.Cleanup(func() {
		command.DefaultMaxDepth, bean.Layout, logx.UserLevel, logx.Color = depth, layout, level, color
	})

	s := Default()
	s.Undo.MaxDepth = 12
	s.Layout.Inputs = bean.Position{X: -50, Y: 5}
	s.Log.Level = "debug"
	s.Log.Color = false
	require.NoError(t, s.Apply())
	assert.Equal(t, 12, command.DefaultMaxDepth)
	assert.Equal(t, bean.Position{X: -50, Y: 5}, bean.Layout.Inputs)
	assert.Equal(t, bean.Position{X: 400}, bean.Layout.Outputs)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	assert.False(t, logx.Color)

	g := bean.NewGraph("G")
	pos, _ := g.BeanPosition(g.InternalInputs())
	assert.Equal(t, bean.Position{X: -50, Y: 5}, *pos)

	s.Log.Level = "loud"
	assert.Error(t, s.Apply())
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, Default().Save(fn))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Settings, 16)
	require.NoError(t, Watch(ctx, fn, func(s *Settings, err error) {
		if err != nil {
			return
		}
		select {
		case got <- s:
		default:
		}
	}))

	s := Default()
	s.Undo.MaxDepth = 7
	require.NoError(t, s.Save(fn))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-got:
			if s.Undo.MaxDepth == 7 {
				return
			}
		case <-timeout:
			t.Fatal("settings were not reloaded")
		}
	}
}
