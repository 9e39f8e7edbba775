// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// State - the client's mirror of the current listing and cart
//
// a State is never modified after it is returned by Reduce, slices are
// copied before any change so earlier states stay valid
type State struct {
	Entities   []*entity.Entity
	TotalCount int64
	AllIDs     []int64

	Epochs  [categoryCount]int64
	Loading [categoryCount]bool
	Error   string

	AggregatesPending int
	AggregateError    string

	Cart        []entity.CartItem
	CartLoading bool
	CartError   string

	Query query.Request
}

// Epoch - recorded epoch of a category
func (s State) Epoch(c Category) int64 {
	if !c.Valid() {
		return 0
	}
	return s.Epochs[c]
}

// IsLoading - a fetch of the category is outstanding
func (s State) IsLoading(c Category) bool {
	if !c.Valid() {
		return false
	}
	return s.Loading[c]
}

// AnyLoading - any fetch or aggregate outstanding
func (s State) AnyLoading() bool {
	for _, l := range s.Loading {
		if l {
			return true
		}
	}
	return s.AggregatesPending > 0 || s.CartLoading
}

// Find - the listed entity with id, nil if not listed
func (s State) Find(id int64) *entity.Entity {
	for _, e := range s.Entities {
		if id == e.ID {
			return e
		}
	}
	return nil
}

// InCart - entity is in the cart
func (s State) InCart(t entity.Type, id int64) bool {
	k := entity.CartKey{Type: t, ID: id}
	for _, item := range s.Cart {
		if k == item.Key() {
			return true
		}
	}
	return false
}
