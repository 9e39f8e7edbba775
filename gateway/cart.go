// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// Cart - current cart contents
func (c *Client) Cart(ctx context.Context) ([]entity.CartItem, error) {
	params := query.Params{}
	var reply entity.Cart
	err := c.get(ctx, "cart", c.cartURL(), params, param, &reply)
	if nil != err {
		return nil, err
	}
	return reply.CartItems, nil
}

// AddToCart - add entities, returning the new cart contents
func (c *Client) AddToCart(ctx context.Context, t entity.Type, ids []int64) ([]entity.CartItem, error) {
	return c.changeCart(ctx, "cart_add", t, ids, false)
}

// RemoveFromCart - remove entities, returning the new cart contents
func (c *Client) RemoveFromCart(ctx context.Context, t entity.Type, ids []int64) ([]entity.CartItem, error) {
	return c.changeCart(ctx, "cart_remove", t, ids, true)
}

func (c *Client) changeCart(ctx context.Context, endpoint string, t entity.Type, ids []int64, remove bool) ([]entity.CartItem, error) {
	form := query.Params{}
	form.Add("items", CartItems(t, ids))
	if remove {
		form.Add("remove", "true")
	}

	var reply entity.Cart
	err := c.post(ctx, endpoint, c.cartURL()+"/cartItems", form, &reply)
	if nil != err {
		return nil, err
	}
	return reply.CartItems, nil
}

func (c *Client) cartURL() string {
	return c.downloadURL + "/user/cart/" + url.PathEscape(c.facility)
}

// CartItems - the items form value: "<type> <id>" tokens joined by ", "
func CartItems(t entity.Type, ids []int64) string {
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = string(t) + " " + strconv.FormatInt(id, 10)
	}
	return strings.Join(tokens, ", ")
}
