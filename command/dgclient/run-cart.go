// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/cart"
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/gateway"
)

func runCart(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	manager := cart.New(m.client, m.store, m.bus, logger.New("cart")).WithLoadPolicy(m.policy)
	if err := manager.Load(m.ctx); nil != err {
		return err
	}
	return printJson(m.w, m.store.State().Cart)
}

func runAdd(c *cli.Context) error {
	return changeCart(c, true)
}

func runRemove(c *cli.Context) error {
	return changeCart(c, false)
}

func changeCart(c *cli.Context, add bool) error {
	m := c.App.Metadata["config"].(*metadata)

	t, err := entity.ParseType(c.String("type"))
	if nil != err {
		return err
	}
	ids, err := parseIDs(c.String("ids"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s\n", t)
		fmt.Fprintf(m.e, "items: %s\n", gateway.CartItems(t, ids))
	}

	manager := cart.New(m.client, m.store, m.bus, logger.New("cart"))
	if add {
		err = manager.Add(m.ctx, t, ids)
	} else {
		err = manager.Remove(m.ctx, t, ids)
	}
	if nil != err {
		return err
	}
	return printJson(m.w, m.store.State().Cart)
}
