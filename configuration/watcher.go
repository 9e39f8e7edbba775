// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// WatcherChannel - change and remove notifications, each holds at
// most one pending event
type WatcherChannel struct {
	Change chan struct{}
	Remove chan struct{}
}

// NewWatcherChannel - channels with room for a single event each
func NewWatcherChannel() WatcherChannel {
	return WatcherChannel{
		Change: make(chan struct{}, 1),
		Remove: make(chan struct{}, 1),
	}
}

// Watcher - reports writes to and removal of one file
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels WatcherChannel
	filePath string
	started  bool
	done     chan struct{}
}

// NewWatcher - watcher for an existing file
func NewWatcher(targetFile string, channels WatcherChannel, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin watching, events are delivered until the file is
// removed or Stop is called
func (w *Watcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true

	go func() {
		defer close(w.done)
		for {
			var event fsnotify.Event
			var ok bool
			select {
			case event, ok = <-w.watcher.Events:
				if !ok {
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
				continue
			}
			w.log.Debugf("file event: %v", event)

			if fileRemoved(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.send(w.channels.Remove, "remove")
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if fileChanged(event) {
				w.log.Info("sending config change event")
				w.send(w.channels.Change, "change")
			}
		}
	}()

	return nil
}

// Stop - release the underlying watcher
func (w *Watcher) Stop() error {
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	return err
}

// non-blocking: a pending event already covers this one
func (w *Watcher) send(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func fileRemoved(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
