// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"context"
	"sync"
)

// Scope - lifetime of one listing, every aggregate fetch started for
// the listing runs under its context and stops when it is cancelled
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScope - a scope that ends when parent ends or Cancel is called
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context - context for calls made within the scope
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go - run fn in the background under the scope
func (s *Scope) Go(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Cancel - end the scope, in-flight calls see a cancelled context
func (s *Scope) Cancel() {
	s.cancel()
}

// Cancelled - true once the scope has ended
func (s *Scope) Cancelled() bool {
	return nil != s.ctx.Err()
}

// Wait - block until every function started with Go has returned
func (s *Scope) Wait() {
	s.wg.Wait()
}
