// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// defaults when the configuration leaves them unset
const (
	defaultRateLimit = 20.0
	defaultRateBurst = 40
)

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		perSecond = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// wait for a token, returning early if the call is cancelled
func limit(ctx context.Context, limiter *rate.Limiter) error {
	if nil == limiter {
		return nil
	}
	if err := limiter.Wait(ctx); nil != err {
		if nil != ctx.Err() {
			return ctx.Err()
		}
		return fault.ErrRateLimiting
	}
	return nil
}
