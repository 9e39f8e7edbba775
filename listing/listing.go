// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"context"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ral-facilities/datagateway-sub002/aggregate"
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/query"
	"github.com/ral-facilities/datagateway-sub002/retry"
	"github.com/ral-facilities/datagateway-sub002/store"
)

// Gateway - remote calls used by a listing
type Gateway interface {
	List(ctx context.Context, t entity.Type, r query.Request) ([]*entity.Entity, error)
	Count(ctx context.Context, t entity.Type, r query.Request) (int64, error)
	AllIDs(ctx context.Context, t entity.Type, r query.Request) ([]int64, error)
	Details(ctx context.Context, t entity.Type, id int64, include interface{}) (*entity.Entity, error)
}

// Options - per fetch additions to the table's sort and filters
type Options struct {
	Page     *query.Page
	Append   bool // add the page after the current entities
	Include  interface{}
	Distinct []string
	GetCount bool // fetch the child count of every returned entity
	GetSize  bool // fetch the total size of every returned entity
}

// Lister - fetches one entity type into a store
type Lister struct {
	sync.Mutex

	log         *logger.L
	entityType  entity.Type
	gateway     Gateway
	store       store.Sequencer
	fetcher     *aggregate.Fetcher
	broadcaster notify.Broadcaster
	policy      retry.Policy
	clock       store.Clock
	parent      context.Context
	scope       *aggregate.Scope
}

// New - a lister for one entity type, fetcher may be nil when
// aggregates are never requested
func New(t entity.Type, gw Gateway, s store.Sequencer, fetcher *aggregate.Fetcher, broadcaster notify.Broadcaster, policy retry.Policy, log *logger.L) *Lister {
	parent := context.Background()
	return &Lister{
		log:         log,
		entityType:  t,
		gateway:     gw,
		store:       s,
		fetcher:     fetcher,
		broadcaster: broadcaster,
		policy:      policy,
		clock:       store.Now,
		parent:      parent,
		scope:       aggregate.NewScope(parent),
	}
}

// WithClock - replace the epoch source
func (l *Lister) WithClock(clock store.Clock) *Lister {
	l.clock = clock
	return l
}

// Type - the entity type listed
func (l *Lister) Type() entity.Type {
	return l.entityType
}

// the table's sort and filters with the fetch options applied
func (l *Lister) request(opts Options) query.Request {
	r := l.store.State().Query
	r.Include = opts.Include
	r.Distinct = opts.Distinct
	r.Page = opts.Page
	return r
}

func (l *Lister) currentScope() *aggregate.Scope {
	l.Lock()
	defer l.Unlock()
	return l.scope
}

// a final failure: reported unless the caller abandoned the call
func (l *Lister) report(ctx context.Context, err error) string {
	if nil != ctx.Err() {
		l.log.Debugf("%s fetch abandoned: %s", l.entityType, err)
		return err.Error()
	}
	return notify.Report(l.log, l.broadcaster, err, notify.Broadcast)
}
