// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"os"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/background"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/fixtures"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/publish"
)

const endpoint = "inproc://publish-test"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestEncode(t *testing.T) {
	data, err := publish.Encode(notify.Event{Type: notify.NotificationType, Severity: notify.Error, Message: "failed"})
	assert.Nil(t, err)
	assert.Equal(t, `{"type":"notification","severity":"error","message":"failed"}`, string(data))

	data, err = publish.Encode(notify.Event{Type: notify.InvalidateSessionType})
	assert.Nil(t, err)
	assert.Equal(t, `{"type":"invalidate_session"}`, string(data))
}

func TestNoEndpoints(t *testing.T) {
	_, err := publish.New(publish.Configuration{}, nil, fixtures.Logger())
	assert.Equal(t, fault.ErrMissingURL, err)
}

func TestForward(t *testing.T) {
	bus := notify.New(fixtures.Logger())
	p, err := publish.New(publish.Configuration{Broadcast: []string{endpoint}}, bus.Chan(), fixtures.Logger())
	assert.Nil(t, err, "create publisher")

	sub, err := zmq.NewSocket(zmq.SUB)
	assert.Nil(t, err)
	defer sub.Close()
	assert.Nil(t, sub.Connect(endpoint))
	assert.Nil(t, sub.SetSubscribe(string(notify.InvalidateSessionType)))
	assert.Nil(t, sub.SetRcvtimeo(100*time.Millisecond))

	bg := background.Start(background.Processes{p}, nil)
	defer bg.Stop()

	// a subscription takes effect asynchronously, so publish until one
	// message arrives
	var frames []string
	for i := 0; i < 50 && 0 == len(frames); i += 1 {
		bus.Notify(notify.Info, "not subscribed")
		bus.InvalidateSession()
		frames, _ = sub.RecvMessage(0)
	}
	assert.Equal(t, []string{"invalidate_session", `{"type":"invalidate_session"}`}, frames)
}
