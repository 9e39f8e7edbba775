// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/aggregate"
	"github.com/ral-facilities/datagateway-sub002/background"
	"github.com/ral-facilities/datagateway-sub002/configuration"
	"github.com/ral-facilities/datagateway-sub002/download"
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/gateway"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/publish"
	"github.com/ral-facilities/datagateway-sub002/retry"
	"github.com/ral-facilities/datagateway-sub002/store"
)

const (
	relayQueueSize = 100
)

// shared by every command
type metadata struct {
	ctx     context.Context
	cancel  context.CancelFunc
	file    string
	conf    *configuration.Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer

	client    *gateway.Client
	store     *store.Store
	bus       *notify.Bus
	policy    retry.Policy
	processes *background.T
}

func newMetadata(ctx context.Context, cancel context.CancelFunc, file string, conf *configuration.Configuration, c *cli.Context) (*metadata, error) {
	log := logger.New("main")

	tokens := sessionSource(c.GlobalString("session"), conf.SessionFile)

	client, err := gateway.New(gateway.Configuration{
		FacilityName:   conf.FacilityName,
		APIURL:         conf.APIURL,
		DownloadAPIURL: conf.DownloadAPIURL,
		RateLimit:      conf.RateLimit,
		RateBurst:      conf.RateBurst,
	}, tokens, nil, logger.New("gateway"))
	if nil != err {
		return nil, err
	}

	m := &metadata{
		ctx:     ctx,
		cancel:  cancel,
		file:    file,
		conf:    conf,
		log:     log,
		verbose: c.GlobalBool("verbose"),
		e:       c.App.ErrWriter,
		w:       c.App.Writer,
		client:  client,
		store:   store.New(logger.New("store")),
		bus:     notify.New(logger.New("notify")),
		policy:  retry.Default.WithAttempts(conf.RetryAttempts),
	}

	processes := background.Processes{}

	r := &relay{
		log:    logger.New("relay"),
		events: m.bus.Chan(),
		e:      m.e,
	}
	if 0 != len(conf.Publish.Broadcast) {
		forward := make(chan notify.Event, relayQueueSize)
		publisher, err := publish.New(conf.Publish, forward, logger.New("publish"))
		if nil != err {
			return nil, err
		}
		r.forward = forward
		processes = append(processes, publisher)
	}
	processes = append(processes, r)

	if m.verbose {
		processes = append(processes, &stateWatcher{
			states: m.store.Subscribe(),
			e:      m.e,
		})
	}

	m.processes = background.Start(processes, nil)

	log.Infof("facility: %s  api: %s  download api: %s", conf.FacilityName, conf.APIURL, conf.DownloadAPIURL)
	return m, nil
}

// stop the background processes once the command is done
func (m *metadata) close() {
	m.cancel()
	m.store.Close()
	m.processes.Stop()
}

func sessionSource(flag string, file string) gateway.TokenReader {
	if "" != flag {
		return gateway.StaticToken(flag)
	}
	if "" != file {
		return gateway.FileToken{Path: file}
	}
	return gateway.StaticToken(os.Getenv(sessionEnvironment))
}

func (m *metadata) fetcher() *aggregate.Fetcher {
	return aggregate.NewFetcher(m.client, nil, m.store, m.bus, m.policy, logger.New("aggregate"))
}

func (m *metadata) coordinator() (*download.Coordinator, error) {
	methods := make([]download.AccessMethod, len(m.conf.AccessMethods))
	for i, a := range m.conf.AccessMethods {
		methods[i] = download.AccessMethod{
			Name:        a.Name,
			DisplayName: a.DisplayName,
			Description: a.Description,
		}
	}
	c, err := download.New(download.Configuration{
		FacilityName:  m.conf.FacilityName,
		AccessMethods: methods,
		ZipType:       entity.ZipType(m.conf.ZipType),
	}, m.client, m.bus, logger.New("download"))
	if nil != err {
		return nil, err
	}
	return c.WithPolicy(m.policy), nil
}

// relay - show notifications on the terminal and pass them on to the
// publisher when one is configured
type relay struct {
	log     *logger.L
	events  <-chan notify.Event
	forward chan<- notify.Event
	e       io.Writer
}

func (r *relay) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case event := <-r.events:
			r.show(event)
		}
	}

	// anything raised by the final call of the command
	for {
		select {
		case event := <-r.events:
			r.show(event)
		default:
			return
		}
	}
}

func (r *relay) show(event notify.Event) {
	switch event.Type {
	case notify.InvalidateSessionType:
		fmt.Fprintf(r.e, "session is no longer valid, log in again\n")
	default:
		fmt.Fprintf(r.e, "%s: %s\n", event.Severity, event.Message)
	}
	if nil == r.forward {
		return
	}
	select {
	case r.forward <- event:
	default:
		r.log.Warnf("publish queue full, dropped: %s", event.Type)
	}
}

// stateWatcher - verbose trace of store changes
type stateWatcher struct {
	states <-chan store.State
	e      io.Writer
}

func (s *stateWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case state, ok := <-s.states:
			if !ok {
				return
			}
			fmt.Fprintf(s.e, "state: entities: %d  total: %d  loading: %t  aggregates pending: %d  cart: %d\n",
				len(state.Entities), state.TotalCount, state.AnyLoading(), state.AggregatesPending, len(state.Cart))
		}
	}
}
