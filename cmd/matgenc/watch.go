// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/matgen/internal/logx"
)

// watchFile calls rebuild every time path is written or replaced, until ctx
// is done. The parent directory is watched so editors that save through a
// rename are still seen.
func watchFile(ctx context.Context, path string, rebuild func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	logger := logx.With("matgenc")
	logger.Info("watching", "file", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isChange(e, abs) {
				continue
			}
			logger.Info("changed", "file", abs)
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

// isChange reports whether e writes or recreates the file at abs.
func isChange(e fsnotify.Event, abs string) bool {
	name, err := filepath.Abs(e.Name)
	if err != nil || name != abs {
		return false
	}
	return e.Op&(fsnotify.Write|fsnotify.Create) != 0
}
