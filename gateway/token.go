// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"io/ioutil"
	"strings"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// TokenReader - source of the session identifier, read on every call
// so a session refreshed elsewhere is picked up
type TokenReader interface {
	SessionID() (string, error)
}

// StaticToken - a fixed session identifier
type StaticToken string

// SessionID - the identifier
func (t StaticToken) SessionID() (string, error) {
	if "" == t {
		return "", fault.ErrMissingSessionID
	}
	return string(t), nil
}

// FileToken - session identifier kept in a file by the hosting shell
type FileToken struct {
	Path string
}

// SessionID - first line of the file
func (t FileToken) SessionID() (string, error) {
	data, err := ioutil.ReadFile(t.Path)
	if nil != err {
		return "", err
	}
	s := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	if "" == s {
		return "", fault.ErrMissingSessionID
	}
	return s, nil
}
