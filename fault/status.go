// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
)

// StatusError - a remote call that completed with a non-success
// HTTP status
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if "" == e.Message {
		return fmt.Sprintf("request failed with status code %d", e.Status)
	}
	return e.Message
}

// session expiry as reported in server messages
var sessionPattern = regexp.MustCompile(`(?i)(session.*(expired|invalid|not found))|(invalid.*session)`)

// IsErrStatus - true if the error carries an HTTP status
func IsErrStatus(e error) bool {
	var s *StatusError
	return errors.As(e, &s)
}

// StatusOf - HTTP status carried by an error, zero for transport
// and local errors
func StatusOf(e error) int {
	var s *StatusError
	if errors.As(e, &s) {
		return s.Status
	}
	return 0
}

// IsAuthentication - identity rejected by the server, either by
// status or by a session expiry message
func IsAuthentication(e error) bool {
	if nil == e {
		return false
	}
	switch StatusOf(e) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return sessionPattern.MatchString(e.Error())
}

// Message - the string carried by failure actions
func Message(e error) string {
	if nil == e {
		return ""
	}
	return e.Error()
}
