// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// Kind - discriminator of an action
type Kind int

// action kinds
const (
	KindFetchRequest Kind = iota
	KindFetchDataSuccess
	KindFetchCountSuccess
	KindFetchAllIDsSuccess
	KindFetchFailure
	KindFetchDetailsSuccess
	KindFetchDetailsFailure
	KindAggregateRequest
	KindAggregateSuccess
	KindAggregateFailure
	KindAggregateCancelled
	KindCartRequest
	KindCartSuccess
	KindCartFailure
	KindSortTable
	KindFilterTable
	KindClearData
	KindClearTable
)

var kindNames = [...]string{
	KindFetchRequest:        "fetch_request",
	KindFetchDataSuccess:    "fetch_data_success",
	KindFetchCountSuccess:   "fetch_count_success",
	KindFetchAllIDsSuccess:  "fetch_all_ids_success",
	KindFetchFailure:        "fetch_failure",
	KindFetchDetailsSuccess: "fetch_details_success",
	KindFetchDetailsFailure: "fetch_details_failure",
	KindAggregateRequest:    "aggregate_request",
	KindAggregateSuccess:    "aggregate_success",
	KindAggregateFailure:    "aggregate_failure",
	KindAggregateCancelled:  "aggregate_cancelled",
	KindCartRequest:         "cart_request",
	KindCartSuccess:         "cart_success",
	KindCartFailure:         "cart_failure",
	KindSortTable:           "sort_table",
	KindFilterTable:         "filter_table",
	KindClearData:           "clear_data",
	KindClearTable:          "clear_table",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Action - a discrete state change, only the types in this file
// implement it
type Action interface {
	Kind() Kind
	isAction()
}

// Sequenced - an action that completes a fetch of a category
type Sequenced interface {
	Action
	Sequence() (Category, int64)
}

// FetchRequest - a fetch of a category started at epoch
type FetchRequest struct {
	Category Category
	Epoch    int64
}

// FetchDataSuccess - a page of entities
type FetchDataSuccess struct {
	Epoch    int64
	Entities []*entity.Entity
	Append   bool
}

// FetchCountSuccess - total number of entities matching the listing
type FetchCountSuccess struct {
	Epoch int64
	Count int64
}

// FetchAllIDsSuccess - every id matching the listing
type FetchAllIDsSuccess struct {
	Epoch int64
	IDs   []int64
}

// FetchFailure - final failure of a sequenced fetch
type FetchFailure struct {
	Category Category
	Epoch    int64
	Message  string
}

// FetchDetailsSuccess - full record of one listed entity
type FetchDetailsSuccess struct {
	Entity *entity.Entity
}

// FetchDetailsFailure - final failure of a details fetch
type FetchDetailsFailure struct {
	ID      int64
	Message string
}

// AggregateRequest - an aggregate lookup started
type AggregateRequest struct {
	ParentID  int64
	Aggregate entity.AggregateKind
}

// AggregateSuccess - an aggregate value, from cache or remote
type AggregateSuccess struct {
	ParentID  int64
	Aggregate entity.AggregateKind
	Value     int64
}

// AggregateFailure - an aggregate lookup failed
type AggregateFailure struct {
	ParentID  int64
	Aggregate entity.AggregateKind
	Message   string
}

// AggregateCancelled - an aggregate lookup abandoned by its caller,
// settles the request without recording an error
type AggregateCancelled struct {
	ParentID  int64
	Aggregate entity.AggregateKind
}

// CartRequest - a cart call started
type CartRequest struct{}

// CartSuccess - the cart as returned by the server
type CartSuccess struct {
	Items []entity.CartItem
}

// CartFailure - a cart call failed
type CartFailure struct {
	Message string
}

// SortTable - set or, with an empty direction, remove a sort column
type SortTable struct {
	Column    string
	Direction query.Direction
}

// FilterTable - set or, with a nil filter, remove a column filter
type FilterTable struct {
	Column string
	Filter query.Filter
}

// ClearData - drop the listing, responses started before epoch are
// discarded
type ClearData struct {
	Epoch int64
}

// ClearTable - clear data and the sort and filter settings
type ClearTable struct {
	Epoch int64
}

func (FetchRequest) Kind() Kind        { return KindFetchRequest }
func (FetchDataSuccess) Kind() Kind    { return KindFetchDataSuccess }
func (FetchCountSuccess) Kind() Kind   { return KindFetchCountSuccess }
func (FetchAllIDsSuccess) Kind() Kind  { return KindFetchAllIDsSuccess }
func (FetchFailure) Kind() Kind        { return KindFetchFailure }
func (FetchDetailsSuccess) Kind() Kind { return KindFetchDetailsSuccess }
func (FetchDetailsFailure) Kind() Kind { return KindFetchDetailsFailure }
func (AggregateRequest) Kind() Kind    { return KindAggregateRequest }
func (AggregateSuccess) Kind() Kind    { return KindAggregateSuccess }
func (AggregateFailure) Kind() Kind    { return KindAggregateFailure }
func (AggregateCancelled) Kind() Kind  { return KindAggregateCancelled }
func (CartRequest) Kind() Kind         { return KindCartRequest }
func (CartSuccess) Kind() Kind         { return KindCartSuccess }
func (CartFailure) Kind() Kind         { return KindCartFailure }
func (SortTable) Kind() Kind           { return KindSortTable }
func (FilterTable) Kind() Kind         { return KindFilterTable }
func (ClearData) Kind() Kind           { return KindClearData }
func (ClearTable) Kind() Kind          { return KindClearTable }

func (FetchRequest) isAction()        {}
func (FetchDataSuccess) isAction()    {}
func (FetchCountSuccess) isAction()   {}
func (FetchAllIDsSuccess) isAction()  {}
func (FetchFailure) isAction()        {}
func (FetchDetailsSuccess) isAction() {}
func (FetchDetailsFailure) isAction() {}
func (AggregateRequest) isAction()    {}
func (AggregateSuccess) isAction()    {}
func (AggregateFailure) isAction()    {}
func (AggregateCancelled) isAction()  {}
func (CartRequest) isAction()         {}
func (CartSuccess) isAction()         {}
func (CartFailure) isAction()         {}
func (SortTable) isAction()           {}
func (FilterTable) isAction()         {}
func (ClearData) isAction()           {}
func (ClearTable) isAction()          {}

// Sequence - category and epoch of a completion
func (a FetchDataSuccess) Sequence() (Category, int64)   { return Data, a.Epoch }
func (a FetchCountSuccess) Sequence() (Category, int64)  { return Count, a.Epoch }
func (a FetchAllIDsSuccess) Sequence() (Category, int64) { return AllIDs, a.Epoch }
func (a FetchFailure) Sequence() (Category, int64)       { return a.Category, a.Epoch }
