// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
)

// test that the error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{fault.ErrMissingAccessMethod, false, true, false, false},
		{fault.ErrDownloadNotFound, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestStatusOf(t *testing.T) {
	err := &fault.StatusError{Status: 404, Message: "no such entity"}
	assert.Equal(t, 404, fault.StatusOf(err), "wrong status")
	assert.Equal(t, "no such entity", err.Error(), "wrong message")

	wrapped := fmt.Errorf("list datasets: %w", err)
	assert.Equal(t, 404, fault.StatusOf(wrapped), "wrong wrapped status")
	assert.True(t, fault.IsErrStatus(wrapped), "wrapped status not detected")

	assert.Equal(t, 0, fault.StatusOf(errors.New("connection refused")), "transport error has status")
	assert.Equal(t, "request failed with status code 500", (&fault.StatusError{Status: 500}).Error(), "wrong default message")
}

func TestIsAuthentication(t *testing.T) {
	items := []struct {
		err  error
		auth bool
	}{
		{&fault.StatusError{Status: 401}, true},
		{&fault.StatusError{Status: 403, Message: "forbidden"}, true},
		{&fault.StatusError{Status: 500, Message: "Session id abc has expired"}, true},
		{&fault.StatusError{Status: 400, Message: "Invalid sessionId"}, true},
		{&fault.StatusError{Status: 404, Message: "no such datafile"}, false},
		{&fault.StatusError{Status: 431}, false},
		{errors.New("connection reset"), false},
		{nil, false},
	}

	for i, item := range items {
		assert.Equal(t, item.auth, fault.IsAuthentication(item.err), "%d: wrong classification for %v", i, item.err)
	}
}
