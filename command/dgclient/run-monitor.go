// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/background"
	"github.com/ral-facilities/datagateway-sub002/configuration"
	"github.com/ral-facilities/datagateway-sub002/history"
)

func runMonitor(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	ledger, err := history.Open(m.conf.HistoryDirectory, false, logger.New("history"))
	if nil != err {
		return err
	}
	defer ledger.Close()

	mon := &monitor{
		log:         logger.New("monitor"),
		facility:    m.conf.FacilityName,
		lookup:      m.client,
		ledger:      ledger,
		broadcaster: m.bus,
		policy:      m.policy,
		w:           m.w,
		interval:    int64(m.conf.Monitor.IntervalSeconds),
	}

	// follow edits to the configuration file
	channels := configuration.NewWatcherChannel()
	reader, err := configuration.NewReader(m.file, channels, logger.New("config-reader"))
	if nil != err {
		return err
	}
	reader.AddListener(func(conf *configuration.Configuration) {
		mon.setInterval(conf.Monitor.IntervalSeconds)
	})

	watcher, err := configuration.NewWatcher(m.file, channels, logger.New("file-watcher"))
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	processes := background.Start(background.Processes{reader}, nil)
	defer processes.Stop()

	if listen := m.conf.Monitor.MetricsListen; "" != listen {
		server := serveMetrics(listen, m.log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()
	}

	m.log.Info("monitor started")
	mon.run(m.ctx)
	m.log.Info("monitor stopped")
	return nil
}

func serveMetrics(listen string, log *logger.L) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:    listen,
		Handler: mux,
	}

	go func() {
		log.Infof("metrics on: %s", listen)
		err := server.ListenAndServe()
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("metrics server error: %s", err)
		}
	}()
	return server
}
