// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package download

// State - stage of the submission workflow
type State int

// workflow stages
const (
	Idle State = iota
	LoadingAccessMethods
	AwaitingInput
	Submitting
	AwaitingDownloadRecord
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case LoadingAccessMethods:
		return "loading-access-methods"
	case AwaitingInput:
		return "awaiting-input"
	case Submitting:
		return "submitting"
	case AwaitingDownloadRecord:
		return "awaiting-download-record"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal - no further transition until the surface is closed
func (s State) Terminal() bool {
	return Success == s || Failed == s
}
