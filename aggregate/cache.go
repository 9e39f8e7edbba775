// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"strconv"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/ral-facilities/datagateway-sub002/entity"
)

// Cache - computed aggregates per parent entity, kept for the whole
// session: entries never expire and are never evicted
type Cache struct {
	sync.Mutex
	entries *cache.Cache
}

// NewCache - an empty cache
func NewCache() *Cache {
	return &Cache{
		entries: cache.New(cache.NoExpiration, 0),
	}
}

func key(t entity.Type, id int64) string {
	return string(t) + "/" + strconv.FormatInt(id, 10)
}

// Entry - both aggregates of a parent
func (c *Cache) Entry(t entity.Type, id int64) entity.Aggregate {
	item, ok := c.entries.Get(key(t, id))
	if !ok {
		return entity.Aggregate{}
	}
	return item.(entity.Aggregate)
}

// Get - one aggregate, false if not yet computed
func (c *Cache) Get(t entity.Type, id int64, kind entity.AggregateKind) (int64, bool) {
	return c.Entry(t, id).Get(kind)
}

// Set - store a computed aggregate, the other kind of the same
// parent is kept
func (c *Cache) Set(t entity.Type, id int64, kind entity.AggregateKind, value int64) {
	c.Lock()
	defer c.Unlock()
	k := key(t, id)
	c.entries.Set(k, c.Entry(t, id).With(kind, value), cache.NoExpiration)
}

// Len - number of parents with at least one aggregate
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}
