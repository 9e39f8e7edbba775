// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/notify"
)

// Configuration - endpoints the events are published on
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// Publisher - background process forwarding notification events to a
// PUB socket, one message of two frames per event: the event type and
// the JSON encoded event
type Publisher struct {
	sync.Mutex
	log    *logger.L
	socket *zmq.Socket
	events <-chan notify.Event
}

// New - bind a PUB socket to every configured endpoint
func New(conf Configuration, events <-chan notify.Event, log *logger.L) (*Publisher, error) {
	if 0 == len(conf.Broadcast) {
		return nil, fault.ErrMissingURL
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	_ = socket.SetLinger(0)

	for _, endpoint := range conf.Broadcast {
		if err := socket.Bind(endpoint); nil != err {
			log.Errorf("bind: %q  error: %s", endpoint, err)
			socket.Close()
			return nil, err
		}
		log.Infof("publish on: %s", endpoint)
	}

	return &Publisher{
		log:    log,
		socket: socket,
		events: events,
	}, nil
}

// Run - forward events until shutdown, then close the socket
func (p *Publisher) Run(args interface{}, shutdown <-chan struct{}) {
	p.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case e, ok := <-p.events:
			if !ok {
				break loop
			}
			p.send(e)
		}
	}

	p.Lock()
	p.socket.Close()
	p.Unlock()
	p.log.Info("stopped")
}

func (p *Publisher) send(e notify.Event) {
	data, err := Encode(e)
	if nil != err {
		p.log.Errorf("encode: %+v  error: %s", e, err)
		return
	}

	p.Lock()
	defer p.Unlock()
	_, err = p.socket.SendMessage(string(e.Type), data)
	if nil != err {
		p.log.Errorf("send: %s  error: %s", e.Type, err)
		return
	}
	p.log.Debugf("sent: %s  %s", e.Type, data)
}

// Encode - the JSON frame of an event
func Encode(e notify.Event) ([]byte, error) {
	return json.Marshal(e)
}
