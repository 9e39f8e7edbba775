// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	actionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datagateway",
		Subsystem: "store",
		Name:      "actions_total",
		Help:      "Actions dispatched to the store by kind.",
	}, []string{"kind"})

	staleCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datagateway",
		Subsystem: "store",
		Name:      "stale_total",
		Help:      "Fetch requests and responses dropped for a stale epoch.",
	}, []string{"category", "stage"})
)

func init() {
	prometheus.MustRegister(actionCounter)
	prometheus.MustRegister(staleCounter)
}
