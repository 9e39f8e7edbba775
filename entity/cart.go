// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

// CartItem - one selected entity
type CartItem struct {
	ID             int64      `json:"id"`
	EntityID       int64      `json:"entityId"`
	EntityType     Type       `json:"entityType"`
	Name           string     `json:"name"`
	ParentEntities []CartItem `json:"parentEntities"`
}

// CartKey - identity of an item within the cart
type CartKey struct {
	Type Type
	ID   int64
}

// Key - the set key of the item
func (c CartItem) Key() CartKey {
	return CartKey{Type: c.EntityType, ID: c.EntityID}
}

// Cart - the server reply carrying the cart contents
type Cart struct {
	ID           int64      `json:"id"`
	FacilityName string     `json:"facilityName"`
	UserName     string     `json:"userName"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
	CartItems    []CartItem `json:"cartItems"`
}

// NormaliseCart - keep the first item for each key, preserving order
func NormaliseCart(items []CartItem) []CartItem {
	seen := make(map[CartKey]struct{}, len(items))
	result := make([]CartItem, 0, len(items))
	for _, item := range items {
		k := item.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}
