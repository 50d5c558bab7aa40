// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides user settings for node graph editing,
// which are loaded from TOML or YAML files and applied to the
// package-level defaults of the other packages.
package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/nodegraph/base/errors"
	"cogentcore.org/nodegraph/bean"
	"cogentcore.org/nodegraph/command"
	"cogentcore.org/nodegraph/logx"
)

// ErrUnknownFormat is returned for files whose extension
// is not a supported settings format.
var ErrUnknownFormat = errors.New("unknown settings file format")

// Settings are the user settings.
type Settings struct {

	// Undo has the undo settings.
	Undo UndoSettings

	// Layout has the node graph layout settings.
	Layout LayoutSettings

	// Log has the logging settings.
	Log LogSettings
}

// UndoSettings are the settings for undo and redo.
type UndoSettings struct {

	// MaxDepth is the maximum number of changes that can be undone.
	// If it is <= 0, there is no limit.
	MaxDepth int `default:"100"`
}

// LayoutSettings are the settings for the layout of new graphs.
type LayoutSettings struct {

	// Inputs is the position of the view of the graph inputs.
	Inputs bean.Position `default:"{x: -400, y: 0}"`

	// Outputs is the position of the view of the graph outputs.
	Outputs bean.Position `default:"{x: 400, y: 0}"`
}

// LogSettings are the settings for logging.
type LogSettings struct {

	// Level is the minimum level of log messages shown:
	// debug, info, warn, or error.
	Level string `default:"warn"`

	// Color is whether to color log levels on terminals that support it.
	Color bool `default:"true"`
}

// Default returns new settings with all default values.
func Default() *Settings {
	s := &Settings{}
	errors.Log(SetFromDefaults(s))
	return s
}

// Open returns the settings in the given file, on top of the defaults.
// The format is determined by the extension: .toml, .yaml, or .yml.
func Open(filename string) (*Settings, error) {
	s := Default()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch format(filename) {
	case "toml":
		err = toml.Unmarshal(b, s)
	case "yaml":
		err = yaml.Unmarshal(b, s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("settings: opening %q: %w", filename, err)
	}
	return s, nil
}

// Save saves the settings to the given file,
// in the format determined by its extension.
func (s *Settings) Save(filename string) error {
	var b []byte
	var err error
	switch format(filename) {
	case "toml":
		b, err = s.TOML()
	case "yaml":
		b, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// TOML returns the settings encoded as TOML.
func (s *Settings) TOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Apply applies the settings to [command.DefaultMaxDepth],
// [bean.Layout], and the [logx] settings. It does not change
// the default logger; call [logx.SetDefaultLogger] for that.
func (s *Settings) Apply() error {
	command.DefaultMaxDepth = s.Undo.MaxDepth
	bean.Layout = bean.GraphLayout{Inputs: s.Layout.Inputs, Outputs: s.Layout.Outputs}
	logx.Color = s.Log.Color
	lvl, err := logx.LevelFromString(s.Log.Level)
	if err != nil {
		return err
	}
	logx.UserLevel = lvl
	return nil
}

// format returns the format name for the extension of the given file.
func format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
