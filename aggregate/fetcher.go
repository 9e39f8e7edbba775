// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"context"
	"errors"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/singleflight"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/retry"
	"github.com/ral-facilities/datagateway-sub002/store"
)

// Source - where aggregates are computed
type Source interface {
	Aggregate(ctx context.Context, t entity.Type, id int64, kind entity.AggregateKind) (int64, error)
}

// Fetcher - memoised aggregate lookups that merge their result into
// the matching entity of the store
type Fetcher struct {
	log         *logger.L
	source      Source
	cache       *Cache
	dispatcher  store.Dispatcher
	broadcaster notify.Broadcaster
	policy      retry.Policy
	group       singleflight.Group
}

// NewFetcher - create a fetcher
func NewFetcher(source Source, c *Cache, dispatcher store.Dispatcher, broadcaster notify.Broadcaster, policy retry.Policy, log *logger.L) *Fetcher {
	if nil == c {
		c = NewCache()
	}
	return &Fetcher{
		log:         log,
		source:      source,
		cache:       c,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		policy:      policy,
	}
}

// Cache - the fetcher's cache
func (f *Fetcher) Cache() *Cache {
	return f.cache
}

// GetOrFetch - the aggregate of one parent
//
// a cached value is returned without a remote call, but still
// dispatched so observers see the same request/success sequence as
// for a miss. Concurrent misses for one parent and kind share a single
// remote call. A failure leaves the cache unset and is reported
// without a user notification. A lookup abandoned through ctx settles
// its request without recording an error.
func (f *Fetcher) GetOrFetch(ctx context.Context, t entity.Type, id int64, kind entity.AggregateKind) (int64, error) {
	if nil != ctx.Err() {
		return 0, ctx.Err()
	}
	f.dispatcher.Dispatch(store.AggregateRequest{ParentID: id, Aggregate: kind})

	if value, ok := f.cache.Get(t, id, kind); ok {
		lookupCounter.WithLabelValues(kind.String(), "hit").Inc()
		f.dispatcher.Dispatch(store.AggregateSuccess{ParentID: id, Aggregate: kind, Value: value})
		return value, nil
	}
	lookupCounter.WithLabelValues(kind.String(), "miss").Inc()

	value, err := f.fetch(ctx, t, id, kind)
	if nil != ctx.Err() {
		f.dispatcher.Dispatch(store.AggregateCancelled{ParentID: id, Aggregate: kind})
		return 0, ctx.Err()
	}
	if nil != err {
		message := notify.Report(f.log, f.broadcaster, err, notify.Silent)
		f.dispatcher.Dispatch(store.AggregateFailure{ParentID: id, Aggregate: kind, Message: message})
		return 0, err
	}

	f.dispatcher.Dispatch(store.AggregateSuccess{ParentID: id, Aggregate: kind, Value: value})
	return value, nil
}

// one shared remote call per parent and kind, a call abandoned by
// another caller's cancellation is repeated under this caller's ctx
func (f *Fetcher) fetch(ctx context.Context, t entity.Type, id int64, kind entity.AggregateKind) (int64, error) {
	k := key(t, id) + "/" + kind.String()
	for {
		ch := f.group.DoChan(k, func() (interface{}, error) {
			if value, ok := f.cache.Get(t, id, kind); ok {
				return value, nil
			}
			value := int64(0)
			err := retry.Do(ctx, f.log, f.policy, "aggregate "+kind.String(), func(ctx context.Context) error {
				v, err := f.source.Aggregate(ctx, t, id, kind)
				value = v
				return err
			})
			if nil != err {
				return int64(0), err
			}
			if nil != ctx.Err() {
				return int64(0), ctx.Err()
			}
			f.cache.Set(t, id, kind, value)
			return value, nil
		})

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case r := <-ch:
			if nil != r.Err && cancelled(r.Err) && nil == ctx.Err() {
				continue
			}
			if nil != r.Err {
				return 0, r.Err
			}
			return r.Val.(int64), nil
		}
	}
}

func cancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
