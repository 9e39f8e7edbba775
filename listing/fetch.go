// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"context"
	"strconv"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/retry"
	"github.com/ral-facilities/datagateway-sub002/store"
)

// FetchEntities - fetch a page of entities
//
// a fetch overtaken by a newer one is dropped without error. Child
// aggregates requested by opts are fetched in the background under
// the listing scope.
func (l *Lister) FetchEntities(ctx context.Context, opts Options) error {
	epoch := l.clock()
	if !l.store.BeginFetch(store.Data, epoch) {
		return nil
	}

	r := l.request(opts)
	var entities []*entity.Entity
	err := retry.Do(ctx, l.log, l.policy, "list "+l.entityType.Path(), func(ctx context.Context) error {
		e, err := l.gateway.List(ctx, l.entityType, r)
		entities = e
		return err
	})
	if nil != err {
		message := l.report(ctx, err)
		l.store.CompleteFetch(store.FetchFailure{Category: store.Data, Epoch: epoch, Message: message})
		return err
	}

	applied := l.store.CompleteFetch(store.FetchDataSuccess{
		Epoch:    epoch,
		Entities: entities,
		Append:   opts.Append,
	})
	if !applied {
		return nil
	}

	if opts.GetCount {
		if _, ok := l.entityType.Child(); ok {
			l.aggregates(entities, entity.ChildCount)
		}
	}
	if opts.GetSize {
		l.aggregates(entities, entity.ChildSize)
	}
	return nil
}

// one background lookup per entity, all sharing the listing scope
func (l *Lister) aggregates(entities []*entity.Entity, kind entity.AggregateKind) {
	if nil == l.fetcher {
		return
	}
	scope := l.currentScope()
	for _, e := range entities {
		id := e.ID
		scope.Go(func(ctx context.Context) {
			_, _ = l.fetcher.GetOrFetch(ctx, l.entityType, id, kind)
		})
	}
}

// WaitAggregates - block until the aggregate lookups of the current
// scope have finished
func (l *Lister) WaitAggregates() {
	l.currentScope().Wait()
}

// FetchCount - fetch the number of matching entities
func (l *Lister) FetchCount(ctx context.Context, opts Options) error {
	epoch := l.clock()
	if !l.store.BeginFetch(store.Count, epoch) {
		return nil
	}

	r := l.request(opts)
	r.Sort = nil
	r.Page = nil
	count := int64(0)
	err := retry.Do(ctx, l.log, l.policy, "count "+l.entityType.Path(), func(ctx context.Context) error {
		n, err := l.gateway.Count(ctx, l.entityType, r)
		count = n
		return err
	})
	if nil != err {
		message := l.report(ctx, err)
		l.store.CompleteFetch(store.FetchFailure{Category: store.Count, Epoch: epoch, Message: message})
		return err
	}

	l.store.CompleteFetch(store.FetchCountSuccess{Epoch: epoch, Count: count})
	return nil
}

// FetchAllIDs - fetch the ids of every matching entity, used for
// selecting a whole table
func (l *Lister) FetchAllIDs(ctx context.Context, opts Options) error {
	epoch := l.clock()
	if !l.store.BeginFetch(store.AllIDs, epoch) {
		return nil
	}

	r := l.request(opts)
	var ids []int64
	err := retry.Do(ctx, l.log, l.policy, "ids "+l.entityType.Path(), func(ctx context.Context) error {
		i, err := l.gateway.AllIDs(ctx, l.entityType, r)
		ids = i
		return err
	})
	if nil != err {
		message := l.report(ctx, err)
		l.store.CompleteFetch(store.FetchFailure{Category: store.AllIDs, Epoch: epoch, Message: message})
		return err
	}

	l.store.CompleteFetch(store.FetchAllIDsSuccess{Epoch: epoch, IDs: ids})
	return nil
}

// FetchDetails - fetch one entity with related entities and merge it
// into the listed entity with the same id
func (l *Lister) FetchDetails(ctx context.Context, id int64, include interface{}) (*entity.Entity, error) {
	var details *entity.Entity
	err := retry.Do(ctx, l.log, l.policy, "details "+l.entityType.Path()+" "+strconv.FormatInt(id, 10), func(ctx context.Context) error {
		d, err := l.gateway.Details(ctx, l.entityType, id, include)
		details = d
		return err
	})
	if nil != err {
		message := l.report(ctx, err)
		l.store.Dispatch(store.FetchDetailsFailure{ID: id, Message: message})
		return nil, err
	}
	l.store.Dispatch(store.FetchDetailsSuccess{Entity: details})
	return details, nil
}
