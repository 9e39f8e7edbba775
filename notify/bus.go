// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"github.com/bitmark-inc/logger"
)

const (
	queueSize = 1000
)

// Severity - of a notification
type Severity string

// severities
const (
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
	Success Severity = "success"
)

// EventType - discriminator of an event
type EventType string

// event types
const (
	NotificationType      EventType = "notification"
	InvalidateSessionType EventType = "invalidate_session"
)

// Event - one item on the bus
type Event struct {
	Type     EventType `json:"type"`
	Severity Severity  `json:"severity,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Broadcaster - receives notifications from the core
type Broadcaster interface {
	Notify(severity Severity, message string)
	InvalidateSession()
}

// Bus - a queue of events, sending never blocks: when the reader has
// fallen behind the event is dropped and logged
type Bus struct {
	log   *logger.L
	queue chan Event
}

// New - create a bus
func New(log *logger.L) *Bus {
	return &Bus{
		log:   log,
		queue: make(chan Event, queueSize),
	}
}

// Notify - queue a user visible notification
func (b *Bus) Notify(severity Severity, message string) {
	b.send(Event{
		Type:     NotificationType,
		Severity: severity,
		Message:  message,
	})
}

// InvalidateSession - queue a request for re-authentication
func (b *Bus) InvalidateSession() {
	b.send(Event{
		Type: InvalidateSessionType,
	})
}

// Chan - channel to read from
func (b *Bus) Chan() <-chan Event {
	return b.queue
}

func (b *Bus) send(e Event) {
	select {
	case b.queue <- e:
	default:
		b.log.Warnf("queue full, dropped: %s %q", e.Type, e.Message)
	}
}
