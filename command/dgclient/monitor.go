// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/history"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/retry"
)

var (
	watchedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "datagateway",
		Subsystem: "monitor",
		Name:      "watched_downloads",
		Help:      "Submitted downloads not yet finished.",
	})

	statusCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datagateway",
		Subsystem: "monitor",
		Name:      "polls_total",
		Help:      "Download lookups by reported status.",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(watchedGauge)
	prometheus.MustRegister(statusCounter)
}

// lookup of one download record
type downloadLookup interface {
	GetDownload(ctx context.Context, id int64) (*entity.Download, error)
}

// the part of the ledger the monitor needs
type downloadLedger interface {
	List(facility string) ([]history.Entry, error)
	Remove(facility string, id int64) error
}

// monitor - polls each recorded download until it finishes
type monitor struct {
	log         *logger.L
	facility    string
	lookup      downloadLookup
	ledger      downloadLedger
	broadcaster notify.Broadcaster
	policy      retry.Policy
	w           io.Writer
	interval    int64 // seconds, updated on configuration reload
}

func (m *monitor) setInterval(seconds int) {
	if seconds <= 0 {
		return
	}
	old := atomic.SwapInt64(&m.interval, int64(seconds))
	if old != int64(seconds) {
		m.log.Infof("poll interval: %ds", seconds)
	}
}

func (m *monitor) currentInterval() time.Duration {
	return time.Duration(atomic.LoadInt64(&m.interval)) * time.Second
}

// run - poll until ctx ends
func (m *monitor) run(ctx context.Context) {
	for {
		m.poll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.currentInterval()):
		}
	}
}

// poll - one pass over the ledger, returns the number still watched
func (m *monitor) poll(ctx context.Context) int {
	entries, err := m.ledger.List(m.facility)
	if nil != err {
		m.log.Errorf("ledger list error: %s", err)
		return 0
	}

	watched := 0
	for _, entry := range entries {
		if nil != ctx.Err() {
			break
		}

		var d *entity.Download
		err := retry.Do(ctx, m.log, m.policy, "monitor "+strconv.FormatInt(entry.DownloadID, 10), func(ctx context.Context) error {
			var err error
			d, err = m.lookup.GetDownload(ctx, entry.DownloadID)
			return err
		})

		switch {
		case nil == err:
		case fault.ErrDownloadNotFound == err:
			statusCounter.WithLabelValues("missing").Inc()
			fmt.Fprintf(m.w, "download: %d  no longer held, forgotten\n", entry.DownloadID)
			m.forget(entry)
			continue
		default:
			if nil == ctx.Err() {
				notify.Report(m.log, m.broadcaster, err, notify.Silent)
			}
			watched += 1
			continue
		}

		statusCounter.WithLabelValues(d.Status).Inc()
		fmt.Fprintf(m.w, "download: %d  file: %s  status: %s  transport: %s\n", d.ID, d.FileName, d.Status, d.Transport)
		if d.Finished() {
			m.forget(entry)
			continue
		}
		watched += 1
	}

	watchedGauge.Set(float64(watched))
	return watched
}

func (m *monitor) forget(entry history.Entry) {
	if err := m.ledger.Remove(entry.Facility, entry.DownloadID); nil != err {
		m.log.Errorf("ledger remove: %d  error: %s", entry.DownloadID, err)
	}
}
