// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"github.com/bitmark-inc/logger"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// Mode - whether a failure is shown to the user
type Mode int

// modes
const (
	Broadcast Mode = iota
	Silent
)

// Report - log a final failure, broadcast it unless silent and ask for
// re-authentication when the identity was rejected
//
// returns the message for the failure action
func Report(log *logger.L, b Broadcaster, err error, mode Mode) string {
	message := fault.Message(err)
	if nil == err {
		return message
	}

	log.Errorf("status: %d  error: %s", fault.StatusOf(err), message)

	if Broadcast == mode && nil != b {
		b.Notify(Error, message)
	}
	if fault.IsAuthentication(err) && nil != b {
		log.Warn("session rejected, requesting invalidation")
		b.InvalidateSession()
	}
	return message
}
