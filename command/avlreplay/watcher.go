// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	watcherLoggerPrefix = "watcher"
)

// journalWatcher - signal changes to the journal file
//
// the containing directory is watched so that editors which replace
// the file rather than rewrite it are still noticed
type journalWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan<- struct{}
}

func newJournalWatcher(fileName string, log *logger.L, change chan<- struct{}) (*journalWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("parse file %s error: %s", fileName, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &journalWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   change,
	}, nil
}

// Run - background process
func (w *journalWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	name := filepath.Base(w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != name {
				continue loop
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed, waiting for it to reappear", w.filePath)
				continue loop
			}
			if watcherEventFileChange(event) {
				w.log.Info("sending change event…")
				w.sendEvent()
			}
		}
	}
	w.log.Info("stopped")
}

func (w *journalWatcher) sendEvent() {
	select {
	case w.change <- struct{}{}:
	default:
		w.log.Debug("change already pending, discard event")
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
