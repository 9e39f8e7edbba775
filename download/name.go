// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package download

import (
	"time"
)

const (
	maxFileName = 255
	nameLayout  = "2006-01-02_15-04-05"
)

// DefaultFileName - facility, visit when present, and local time
func DefaultFileName(facility string, visitID string, now time.Time) string {
	name := facility
	if "" != visitID {
		name += "_" + visitID
	}
	return name + "_" + now.Format(nameLayout)
}

func truncate(name string) string {
	r := []rune(name)
	if len(r) > maxFileName {
		return string(r[:maxFileName])
	}
	return name
}
