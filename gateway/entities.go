// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"encoding/json"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// List - one page (or all) of entities of a type
func (c *Client) List(ctx context.Context, t entity.Type, r query.Request) ([]*entity.Entity, error) {
	params, err := query.Listing(r)
	if nil != err {
		return nil, err
	}
	var reply []*entity.Entity
	err = c.get(ctx, "list", c.apiURL+"/"+t.Path(), params, bearer, &reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Count - number of entities matching the filters
func (c *Client) Count(ctx context.Context, t entity.Type, r query.Request) (int64, error) {
	params, err := query.Count(r)
	if nil != err {
		return 0, err
	}
	var count int64
	err = c.get(ctx, "count", c.apiURL+"/"+t.Path()+"/count", params, bearer, &count)
	return count, err
}

// AllIDs - ids of every entity matching the filters
func (c *Client) AllIDs(ctx context.Context, t entity.Type, r query.Request) ([]int64, error) {
	params, err := query.AllIDs(r)
	if nil != err {
		return nil, err
	}
	var raw json.RawMessage
	err = c.get(ctx, "ids", c.apiURL+"/"+t.Path(), params, bearer, &raw)
	if nil != err {
		return nil, err
	}
	return query.DecodeIDs(raw)
}

// Details - a single entity with related entities eager loaded
func (c *Client) Details(ctx context.Context, t entity.Type, id int64, include interface{}) (*entity.Entity, error) {
	r := query.Request{
		Filters: []query.ColumnFilter{
			{Column: "id", Filter: query.EqualFilter{Value: id}},
		},
		Include: include,
	}
	params, err := query.Count(r)
	if nil != err {
		return nil, err
	}
	var reply []*entity.Entity
	err = c.get(ctx, "details", c.apiURL+"/"+t.Path(), params, bearer, &reply)
	if nil != err {
		return nil, err
	}
	if 0 == len(reply) || nil == reply[0] {
		return nil, fault.ErrEntityNotFound
	}
	return reply[0], nil
}
