// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cart

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/retry"
	"github.com/ral-facilities/datagateway-sub002/store"
)

// Gateway - remote cart calls, each returning the resulting cart
type Gateway interface {
	Cart(ctx context.Context) ([]entity.CartItem, error)
	AddToCart(ctx context.Context, t entity.Type, ids []int64) ([]entity.CartItem, error)
	RemoveFromCart(ctx context.Context, t entity.Type, ids []int64) ([]entity.CartItem, error)
}

// Manager - keeps the store's cart in step with the server
type Manager struct {
	log         *logger.L
	gateway     Gateway
	dispatcher  store.Dispatcher
	broadcaster notify.Broadcaster
	policy      retry.Policy // add and remove
	loadPolicy  retry.Policy
}

// New - create a manager
func New(gw Gateway, dispatcher store.Dispatcher, broadcaster notify.Broadcaster, log *logger.L) *Manager {
	return &Manager{
		log:         log,
		gateway:     gw,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		policy:      retry.Cart,
		loadPolicy:  retry.Default,
	}
}

// WithPolicy - replace the retry policy of add and remove
func (m *Manager) WithPolicy(policy retry.Policy) *Manager {
	m.policy = policy
	return m
}

// WithLoadPolicy - replace the retry policy of load
func (m *Manager) WithLoadPolicy(policy retry.Policy) *Manager {
	m.loadPolicy = policy
	return m
}

// Load - fetch the cart
func (m *Manager) Load(ctx context.Context) error {
	return m.run(ctx, m.loadPolicy, "load cart", func(ctx context.Context) ([]entity.CartItem, error) {
		return m.gateway.Cart(ctx)
	})
}

// Add - add entities of one type
func (m *Manager) Add(ctx context.Context, t entity.Type, ids []int64) error {
	if 0 == len(ids) {
		return nil
	}
	return m.run(ctx, m.policy, "add to cart", func(ctx context.Context) ([]entity.CartItem, error) {
		return m.gateway.AddToCart(ctx, t, ids)
	})
}

// Remove - remove entities of one type
func (m *Manager) Remove(ctx context.Context, t entity.Type, ids []int64) error {
	if 0 == len(ids) {
		return nil
	}
	return m.run(ctx, m.policy, "remove from cart", func(ctx context.Context) ([]entity.CartItem, error) {
		return m.gateway.RemoveFromCart(ctx, t, ids)
	})
}

func (m *Manager) run(ctx context.Context, policy retry.Policy, name string, call func(context.Context) ([]entity.CartItem, error)) error {
	m.dispatcher.Dispatch(store.CartRequest{})

	var items []entity.CartItem
	err := retry.Do(ctx, m.log, policy, name, func(ctx context.Context) error {
		i, err := call(ctx)
		items = i
		return err
	})
	if nil != err {
		message := notify.Report(m.log, m.broadcaster, err, notify.Broadcast)
		m.dispatcher.Dispatch(store.CartFailure{Message: message})
		return err
	}

	m.log.Debugf("%s: %d items", name, len(items))
	m.dispatcher.Dispatch(store.CartSuccess{Items: items})
	return nil
}
