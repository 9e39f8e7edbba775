// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/ral-facilities/datagateway-sub002/fault"
)

// Category - independently sequenced kind of fetch
type Category int

// fetch categories
const (
	Data Category = iota
	Count
	AllIDs
	categoryCount
)

func (c Category) String() string {
	switch c {
	case Data:
		return "data"
	case Count:
		return "count"
	case AllIDs:
		return "allIds"
	default:
		return "unknown"
	}
}

// Valid - one of the defined categories
func (c Category) Valid() bool {
	return c >= Data && c < categoryCount
}

// ParseCategory - from its name
func ParseCategory(s string) (Category, error) {
	for c := Data; c < categoryCount; c += 1 {
		if s == c.String() {
			return c, nil
		}
	}
	return 0, fault.ErrInvalidCategory
}

// accept - an epoch is current if it is non-zero and not older than
// the recorded epoch, equal epochs are both current
func accept(recorded int64, epoch int64) bool {
	return 0 != epoch && epoch >= recorded
}
