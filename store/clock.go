// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync/atomic"
	"time"
)

// Clock - source of fetch epochs
type Clock func() int64

var last int64

// Now - wall clock epoch in nanoseconds, never less than a previous
// reading and never zero
func Now() int64 {
	for {
		previous := atomic.LoadInt64(&last)
		now := time.Now().UnixNano()
		if now <= previous {
			now = previous + 1
		}
		if atomic.CompareAndSwapInt64(&last, previous, now) {
			return now
		}
	}
}
