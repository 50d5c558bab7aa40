// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger
// used throughout nodegraph.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// Color is whether to color the level of log messages
// when the output supports it.
var Color = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString returns the [slog.Level] named by the given string,
// which is one of debug, info, warn, or error (case insensitive).
func LevelFromString(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	if err != nil {
		return UserLevel, fmt.Errorf("logx: invalid log level %q", s)
	}
	return lvl, nil
}

// SetDefaultLogger sets the default [slog] logger to a text handler
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a new text logger writing to the given writer
// at [UserLevel], coloring levels if [Color] is on and the writer
// is a terminal that supports color.
func NewLogger(w io.Writer) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{Level: UserLevel}
	if Color && out.Profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, colorLevel(out, lvl))
		}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// colorLevel returns the string form of the given level
// styled with a color matching its severity.
func colorLevel(out *termenv.Output, lvl slog.Level) string {
	st := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}
