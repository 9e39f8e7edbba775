// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"time"
)

// Verdict - outcome of classifying a failed attempt
type Verdict int

// possible verdicts
const (
	Stop Verdict = iota
	Retry
)

func (v Verdict) String() string {
	switch v {
	case Stop:
		return "stop"
	case Retry:
		return "retry"
	default:
		return "unknown"
	}
}

// bounds
const (
	DefaultAttempts = 3 // other errors, per session default
	HeaderAttempts  = 3 // request header too large

	defaultInterval    = 250 * time.Millisecond
	defaultMaxInterval = 4 * time.Second
)

// Policy - retry bounds for one kind of operation
//
// Attempts bounds retries of errors that are neither definitive nor
// the header size condition; zero disables them
type Policy struct {
	Attempts    int
	Interval    time.Duration
	MaxInterval time.Duration
}

// Default - listings, counts, aggregates, downloads
var Default = Policy{
	Attempts:    DefaultAttempts,
	Interval:    defaultInterval,
	MaxInterval: defaultMaxInterval,
}

// Cart - cart mutations only retry the header size condition
var Cart = Policy{
	Attempts:    0,
	Interval:    defaultInterval,
	MaxInterval: defaultMaxInterval,
}

// WithAttempts - copy of policy with a different default bound
func (p Policy) WithAttempts(attempts int) Policy {
	if attempts < 0 {
		attempts = 0
	}
	p.Attempts = attempts
	return p
}

// Classify - decide whether a failed attempt is retried
//
// attempt is the number of attempts made so far, starting at 1
func (p Policy) Classify(status int, attempt int) Verdict {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
		return Stop
	case http.StatusRequestHeaderFieldsTooLarge:
		if attempt < HeaderAttempts {
			return Retry
		}
		return Stop
	}
	if attempt < p.Attempts {
		return Retry
	}
	return Stop
}

// Classify - classify with the default policy
func Classify(status int, attempt int) Verdict {
	return Default.Classify(status, attempt)
}
