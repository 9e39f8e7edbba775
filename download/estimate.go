// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package download

import (
	"fmt"
	"math"
	"strings"
)

// Estimate - seconds to transfer a download at typical line rates
type Estimate struct {
	AtOne     float64 // 1 Mbps
	AtThirty  float64 // 30 Mbps
	AtHundred float64 // 100 Mbps
}

// EstimateTimes - transfer times for size bytes, none for two level
// storage where the data must be staged first
func EstimateTimes(size int64, twoLevel bool) (Estimate, bool) {
	if twoLevel {
		return Estimate{}, false
	}
	megabytes := float64(size) / (1024 * 1024)
	return Estimate{
		AtOne:     megabytes / (1.0 / 8),
		AtThirty:  megabytes / (30.0 / 8),
		AtHundred: megabytes / (100.0 / 8),
	}, true
}

// FormatDuration - seconds as "1 day, 2 hours, 3 minutes, 4 seconds"
// leaving out zero units
func FormatDuration(seconds float64) string {
	total := int64(math.Floor(seconds))
	units := []struct {
		name   string
		amount int64
	}{
		{"day", total / 86400},
		{"hour", total % 86400 / 3600},
		{"minute", total % 3600 / 60},
		{"second", total % 60},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.amount <= 0 {
			continue
		}
		if 1 == u.amount {
			parts = append(parts, fmt.Sprintf("1 %s", u.name))
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", u.amount, u.name))
		}
	}
	if 0 == len(parts) {
		return "< 1 second"
	}
	return strings.Join(parts, ", ")
}
