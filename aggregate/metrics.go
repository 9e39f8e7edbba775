// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/prometheus/client_golang/prometheus"
)

var lookupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "datagateway",
	Subsystem: "aggregate",
	Name:      "lookups_total",
	Help:      "Aggregate lookups by kind and cache result.",
}, []string{"kind", "result"})

func init() {
	prometheus.MustRegister(lookupCounter)
}
