// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"errors"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/cenkalti/backoff/v4"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// Operation - one attempt of a remote call
type Operation func(ctx context.Context) error

// Do - run operation until it succeeds or the policy stops it
//
// only the final error is returned, so callers emit a single failure
// for the whole sequence of attempts
func Do(ctx context.Context, log *logger.L, policy Policy, name string, operation Operation) error {
	b := backoff.NewExponentialBackOff()
	if policy.Interval > 0 {
		b.InitialInterval = policy.Interval
	}
	if policy.MaxInterval > 0 {
		b.MaxInterval = policy.MaxInterval
	}
	b.MaxElapsedTime = 0
	b.Reset()

	for attempt := 1; ; attempt += 1 {
		err := operation(ctx)
		if nil == err {
			return nil
		}

		if nil != ctx.Err() || errors.Is(err, context.Canceled) {
			return err
		}

		status := fault.StatusOf(err)
		if Stop == policy.Classify(status, attempt) {
			if nil != log && attempt > 1 {
				log.Warnf("%s: giving up after %d attempts: %s", name, attempt, err)
			}
			return err
		}

		delay := b.NextBackOff()
		if backoff.Stop == delay {
			return err
		}
		if nil != log {
			log.Debugf("%s: attempt %d status %d failed: %s  retry in %s", name, attempt, status, err, delay)
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
	}
}
