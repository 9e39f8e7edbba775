// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retry_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/fixtures"
	"github.com/ral-facilities/datagateway-sub002/retry"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

var fast = retry.Policy{
	Attempts:    retry.DefaultAttempts,
	Interval:    time.Millisecond,
	MaxInterval: 2 * time.Millisecond,
}

func TestClassify(t *testing.T) {
	items := []struct {
		status  int
		attempt int
		verdict retry.Verdict
	}{
		{401, 1, retry.Stop},
		{401, 2, retry.Stop},
		{401, 100, retry.Stop},
		{403, 1, retry.Stop},
		{404, 1, retry.Stop},
		{404, 7, retry.Stop},
		{422, 1, retry.Stop},
		{431, 1, retry.Retry},
		{431, 2, retry.Retry},
		{431, 3, retry.Stop},
		{431, 4, retry.Stop},
		{500, 1, retry.Retry},
		{500, 2, retry.Retry},
		{500, retry.DefaultAttempts, retry.Stop},
		{0, 1, retry.Retry},
	}

	for _, item := range items {
		actual := retry.Classify(item.status, item.attempt)
		assert.Equal(t, item.verdict, actual, "classify(%d, %d)", item.status, item.attempt)
	}
}

func TestClassifyCart(t *testing.T) {
	assert.Equal(t, retry.Retry, retry.Cart.Classify(431, 1), "431 first attempt")
	assert.Equal(t, retry.Retry, retry.Cart.Classify(431, 2), "431 second attempt")
	assert.Equal(t, retry.Stop, retry.Cart.Classify(431, 3), "431 third attempt")
	assert.Equal(t, retry.Stop, retry.Cart.Classify(500, 1), "cart must not retry 500")
	assert.Equal(t, retry.Stop, retry.Cart.Classify(401, 1), "cart must not retry 401")
}

func TestWithAttempts(t *testing.T) {
	p := retry.Default.WithAttempts(5)
	assert.Equal(t, retry.Retry, p.Classify(502, 4), "raised bound")
	assert.Equal(t, retry.Stop, p.Classify(502, 5), "raised bound exhausted")
	assert.Equal(t, 0, retry.Default.WithAttempts(-1).Attempts, "negative bound")
}

func TestDoSucceedsAfterRetry(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fixtures.Logger(), fast, "test", func(ctx context.Context) error {
		calls += 1
		if calls < 2 {
			return &fault.StatusError{Status: 500}
		}
		return nil
	})
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, 2, calls, "wrong call count")
}

func TestDoStopsOnDefinitiveError(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fixtures.Logger(), fast, "test", func(ctx context.Context) error {
		calls += 1
		return &fault.StatusError{Status: 401, Message: "unauthorised"}
	})
	assert.Equal(t, 401, fault.StatusOf(err), "wrong error")
	assert.Equal(t, 1, calls, "definitive error was retried")
}

func TestDoBoundsHeaderRetries(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fixtures.Logger(), fast, "test", func(ctx context.Context) error {
		calls += 1
		return &fault.StatusError{Status: 431}
	})
	assert.Equal(t, 431, fault.StatusOf(err), "wrong error")
	assert.Equal(t, retry.HeaderAttempts, calls, "wrong call count")
}

func TestDoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry.Do(ctx, fixtures.Logger(), fast, "test", func(ctx context.Context) error {
		calls += 1
		cancel()
		return errors.New("connection reset")
	})
	assert.NotNil(t, err, "expected error")
	assert.Equal(t, 1, calls, "cancelled operation was retried")
}
