// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/aggregate"
	"github.com/ral-facilities/datagateway-sub002/entity"
)

type sizeReply struct {
	Type       entity.Type `json:"type"`
	ID         int64       `json:"id"`
	Size       *int64      `json:"size,omitempty"`
	ChildCount *int64      `json:"childCount,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
}

func runSize(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	t, err := entity.ParseType(c.String("type"))
	if nil != err {
		return err
	}
	id := c.Int64("id")
	if id <= 0 {
		return fmt.Errorf("invalid id: %d", id)
	}

	kinds := []entity.AggregateKind{entity.ChildSize}
	if _, ok := t.Child(); ok {
		kinds = append(kinds, entity.ChildCount)
	}

	fetcher := m.fetcher()
	scope := aggregate.NewScope(m.ctx)
	defer scope.Cancel()

	reply := sizeReply{
		Type: t,
		ID:   id,
	}
	var mutex sync.Mutex
	for _, kind := range kinds {
		kind := kind
		scope.Go(func(ctx context.Context) {
			value, err := fetcher.GetOrFetch(ctx, t, id, kind)

			mutex.Lock()
			defer mutex.Unlock()
			if nil != err {
				reply.Errors = append(reply.Errors, fmt.Sprintf("%s: %s", kind, err))
				return
			}
			if entity.ChildSize == kind {
				reply.Size = &value
			} else {
				reply.ChildCount = &value
			}
		})
	}
	scope.Wait()

	return printJson(m.w, reply)
}
