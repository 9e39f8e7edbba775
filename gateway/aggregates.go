// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"strconv"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// Size - total file size under an entity, from the download service
func (c *Client) Size(ctx context.Context, t entity.Type, id int64) (int64, error) {
	params := query.Params{}
	params.Add("facilityName", c.facility)
	params.Add("entityType", string(t))
	params.Add("entityId", strconv.FormatInt(id, 10))

	var size int64
	err := c.get(ctx, "size", c.downloadURL+"/user/getSize", params, param, &size)
	return size, err
}

// ChildCount - number of direct children of an entity
func (c *Client) ChildCount(ctx context.Context, t entity.Type, id int64) (int64, error) {
	child, ok := t.Child()
	if !ok {
		return 0, fault.ErrNoAggregateParent
	}
	r := query.Request{
		Filters: []query.ColumnFilter{
			{Column: string(t) + ".id", Filter: query.EqualFilter{Value: id}},
		},
		Include: string(t),
	}
	return c.Count(ctx, child, r)
}

// Aggregate - the aggregate of the given kind
func (c *Client) Aggregate(ctx context.Context, t entity.Type, id int64, kind entity.AggregateKind) (int64, error) {
	switch kind {
	case entity.ChildCount:
		return c.ChildCount(ctx, t, id)
	case entity.ChildSize:
		return c.Size(ctx, t, id)
	default:
		return 0, fault.ErrNoAggregateParent
	}
}
