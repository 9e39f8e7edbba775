// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// Reduce - the next state after applying an action
//
// pure: no I/O and the input state is not modified
func Reduce(s State, action Action) State {
	switch a := action.(type) {

	case FetchRequest:
		if !a.Category.Valid() || !accept(s.Epochs[a.Category], a.Epoch) {
			return s
		}
		s.Epochs[a.Category] = a.Epoch
		s.Loading[a.Category] = true
		s.Error = ""
		return s

	case FetchDataSuccess:
		if !accept(s.Epochs[Data], a.Epoch) {
			return s
		}
		if a.Append {
			entities := make([]*entity.Entity, 0, len(s.Entities)+len(a.Entities))
			entities = append(entities, s.Entities...)
			s.Entities = append(entities, a.Entities...)
		} else {
			s.Entities = append([]*entity.Entity(nil), a.Entities...)
		}
		s.Epochs[Data] = a.Epoch
		s.Loading[Data] = false
		s.Error = ""
		return s

	case FetchCountSuccess:
		if !accept(s.Epochs[Count], a.Epoch) {
			return s
		}
		s.TotalCount = a.Count
		s.Epochs[Count] = a.Epoch
		s.Loading[Count] = false
		return s

	case FetchAllIDsSuccess:
		if !accept(s.Epochs[AllIDs], a.Epoch) {
			return s
		}
		s.AllIDs = append([]int64(nil), a.IDs...)
		s.Epochs[AllIDs] = a.Epoch
		s.Loading[AllIDs] = false
		return s

	case FetchFailure:
		if !a.Category.Valid() || !accept(s.Epochs[a.Category], a.Epoch) {
			return s
		}
		s.Loading[a.Category] = false
		s.Error = a.Message
		return s

	case FetchDetailsSuccess:
		if nil == a.Entity {
			return s
		}
		s.Entities = replace(s.Entities, a.Entity.ID, func(e *entity.Entity) *entity.Entity {
			return e.WithDetails(a.Entity)
		})
		return s

	case FetchDetailsFailure:
		s.Error = a.Message
		return s

	case AggregateRequest:
		s.AggregatesPending += 1
		return s

	case AggregateSuccess:
		s.AggregatesPending = settle(s.AggregatesPending)
		s.Entities = replace(s.Entities, a.ParentID, func(e *entity.Entity) *entity.Entity {
			return e.WithAggregate(a.Aggregate, a.Value)
		})
		return s

	case AggregateFailure:
		s.AggregatesPending = settle(s.AggregatesPending)
		s.AggregateError = a.Message
		return s

	case AggregateCancelled:
		s.AggregatesPending = settle(s.AggregatesPending)
		return s

	case CartRequest:
		s.CartLoading = true
		return s

	case CartSuccess:
		s.Cart = entity.NormaliseCart(a.Items)
		s.CartLoading = false
		s.CartError = ""
		return s

	case CartFailure:
		s.CartLoading = false
		s.CartError = a.Message
		return s

	case SortTable:
		s.Query.Sort = sortColumn(s.Query.Sort, a.Column, a.Direction)
		return s

	case FilterTable:
		s.Query.Filters = filterColumn(s.Query.Filters, a.Column, a.Filter)
		return s

	case ClearData:
		return cleared(s, a.Epoch)

	case ClearTable:
		s = cleared(s, a.Epoch)
		s.Query = query.Request{}
		return s

	default:
		fault.Panicf("reduce: unhandled action: %T", action)
	}
	return s
}

// replace the entity with id, every other element keeps its pointer
func replace(entities []*entity.Entity, id int64, update func(*entity.Entity) *entity.Entity) []*entity.Entity {
	for i, e := range entities {
		if id != e.ID {
			continue
		}
		result := append([]*entity.Entity(nil), entities...)
		result[i] = update(e)
		return result
	}
	return entities
}

func settle(pending int) int {
	if pending > 0 {
		return pending - 1
	}
	return 0
}

func cleared(s State, epoch int64) State {
	s.Entities = nil
	s.TotalCount = 0
	s.AllIDs = nil
	s.Error = ""
	s.AggregatesPending = 0
	s.AggregateError = ""
	for c := Data; c < categoryCount; c += 1 {
		s.Loading[c] = false
		if epoch > s.Epochs[c] {
			s.Epochs[c] = epoch
		}
	}
	return s
}

func sortColumn(sort []query.Sort, column string, direction query.Direction) []query.Sort {
	result := make([]query.Sort, 0, len(sort)+1)
	found := false
	for _, s := range sort {
		if column != s.Column {
			result = append(result, s)
			continue
		}
		found = true
		if "" != direction {
			result = append(result, query.Sort{Column: column, Direction: direction})
		}
	}
	if !found && "" != direction {
		result = append(result, query.Sort{Column: column, Direction: direction})
	}
	return result
}

func filterColumn(filters []query.ColumnFilter, column string, filter query.Filter) []query.ColumnFilter {
	result := make([]query.ColumnFilter, 0, len(filters)+1)
	found := false
	for _, f := range filters {
		if column != f.Column {
			result = append(result, f)
			continue
		}
		found = true
		if nil != filter {
			result = append(result, query.ColumnFilter{Column: column, Filter: filter})
		}
	}
	if !found && nil != filter {
		result = append(result, query.ColumnFilter{Column: column, Filter: filter})
	}
	return result
}
