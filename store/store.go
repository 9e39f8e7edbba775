// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

const (
	subscriberQueueSize = 16
)

// Dispatcher - the single entry point for state changes
type Dispatcher interface {
	Dispatch(Action) State
	State() State
}

// Sequencer - dispatcher that also orders fetches by epoch
type Sequencer interface {
	Dispatcher
	BeginFetch(Category, int64) bool
	CompleteFetch(Sequenced) bool
}

// Store - holds the current state and applies actions one at a time
type Store struct {
	sync.RWMutex

	log         *logger.L
	state       State
	subscribers []chan State
}

// New - store with an empty state
func New(log *logger.L) *Store {
	return &Store{
		log: log,
	}
}

// State - the current state
func (s *Store) State() State {
	s.RLock()
	defer s.RUnlock()
	return s.state
}

// Dispatch - apply an action and return the resulting state
func (s *Store) Dispatch(action Action) State {
	_, after := s.apply(action)
	return after
}

// BeginFetch - record the start of a fetch, false if epoch is stale
// or zero, in which case the fetch must not be issued
func (s *Store) BeginFetch(category Category, epoch int64) bool {
	before, _ := s.apply(FetchRequest{Category: category, Epoch: epoch})
	accepted := category.Valid() && accept(before.Epochs[category], epoch)
	if !accepted {
		staleCounter.WithLabelValues(category.String(), "request").Inc()
		s.log.Debugf("begin %s fetch rejected epoch: %d  recorded: %d", category, epoch, before.Epoch(category))
	}
	return accepted
}

// CompleteFetch - apply a fetch result, false if it was stale and
// dropped
func (s *Store) CompleteFetch(action Sequenced) bool {
	category, epoch := action.Sequence()
	before, _ := s.apply(action)
	accepted := category.Valid() && accept(before.Epochs[category], epoch)
	if !accepted {
		staleCounter.WithLabelValues(category.String(), "response").Inc()
		s.log.Debugf("complete %s fetch dropped stale epoch: %d  recorded: %d", category, epoch, before.Epoch(category))
	}
	return accepted
}

// Subscribe - channel receiving each state after a dispatch, when the
// reader falls behind the oldest states are dropped
func (s *Store) Subscribe() <-chan State {
	s.Lock()
	defer s.Unlock()
	ch := make(chan State, subscriberQueueSize)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Close - close all subscriber channels
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

func (s *Store) apply(action Action) (State, State) {
	s.Lock()
	defer s.Unlock()

	before := s.state
	s.state = Reduce(before, action)
	actionCounter.WithLabelValues(action.Kind().String()).Inc()

	for _, ch := range s.subscribers {
		publish(ch, s.state)
	}
	return before, s.state
}

func publish(ch chan State, state State) {
	for {
		select {
		case ch <- state:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
