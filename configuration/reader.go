// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	defaultSettleDelay = 2 * time.Second
)

// Listener - receives each successfully reloaded configuration
type Listener func(*Configuration)

// Reader - holds the current configuration and reloads it when the
// watcher reports a change
type Reader struct {
	sync.RWMutex

	log       *logger.L
	fileName  string
	current   *Configuration
	listeners []Listener
	channels  WatcherChannel
	delay     time.Duration
}

// NewReader - load the file once, a failure here is fatal to the caller
func NewReader(fileName string, channels WatcherChannel, log *logger.L) (*Reader, error) {
	conf, err := Load(fileName)
	if nil != err {
		return nil, err
	}
	return &Reader{
		log:      log,
		fileName: fileName,
		current:  conf,
		channels: channels,
		delay:    defaultSettleDelay,
	}, nil
}

// WithDelay - time to wait after a change before reading, lets an
// editor finish writing
func (r *Reader) WithDelay(delay time.Duration) *Reader {
	r.delay = delay
	return r
}

// Current - the latest valid configuration
func (r *Reader) Current() *Configuration {
	r.RLock()
	defer r.RUnlock()
	return r.current
}

// AddListener - register for reloads
func (r *Reader) AddListener(l Listener) {
	r.Lock()
	defer r.Unlock()
	r.listeners = append(r.listeners, l)
}

// Refresh - re-read the file, on error the previous configuration is kept
func (r *Reader) Refresh() error {
	conf, err := Load(r.fileName)
	if nil != err {
		return err
	}

	r.Lock()
	r.current = conf
	listeners := append([]Listener(nil), r.listeners...)
	r.Unlock()

	for _, l := range listeners {
		l(conf)
	}
	return nil
}

// Run - background loop reloading on change
func (r *Reader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channels.Change:
			r.log.Debugf("receive file change event, wait for %s", r.delay)
			select {
			case <-shutdown:
				break loop
			case <-time.After(r.delay):
			}
			if err := r.Refresh(); nil != err {
				r.log.Errorf("failed to read configuration from: %s  error: %s", r.fileName, err)
			}

		case <-r.channels.Remove:
			r.log.Warnf("configuration file: %s removed, keeping current values", r.fileName)
		}
	}
	r.log.Info("shutting down…")
}
