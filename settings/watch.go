// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the given settings file, calling fun with the result of
// [Open] each time the file is written or replaced, until the context
// is done. It watches the directory of the file so that editors that
// save by renaming are handled. fun is called on the watcher goroutine.
func Watch(ctx context.Context, filename string, fun func(s *Settings, err error)) error {
	filename = filepath.Clean(filename)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filename || (!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)) {
					continue
				}
				slog.Debug("settings: reloading", "file", filename, "op", event.Op.String())
				fun(Open(filename))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("settings: watching", "file", filename, "err", err)
			}
		}
	}()
	return nil
}
