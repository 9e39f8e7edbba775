// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"github.com/ral-facilities/datagateway-sub002/aggregate"
	"github.com/ral-facilities/datagateway-sub002/query"
	"github.com/ral-facilities/datagateway-sub002/store"
)

// Sort - change the sort of a column, an empty direction removes it;
// the listed data is cleared so the caller refetches
func (l *Lister) Sort(column string, direction query.Direction) {
	l.store.Dispatch(store.SortTable{Column: column, Direction: direction})
	l.Clear()
}

// Filter - change the filter of a column, nil removes it; the listed
// data is cleared so the caller refetches
func (l *Lister) Filter(column string, filter query.Filter) {
	l.store.Dispatch(store.FilterTable{Column: column, Filter: filter})
	l.Clear()
}

// Clear - drop the listed data, abandoning in-flight aggregate
// lookups and any fetch started before now
func (l *Lister) Clear() {
	l.renew()
	l.store.Dispatch(store.ClearData{Epoch: l.clock()})
}

// ClearTable - Clear and also reset sort and filters
func (l *Lister) ClearTable() {
	l.renew()
	l.store.Dispatch(store.ClearTable{Epoch: l.clock()})
}

// Close - abandon in-flight aggregate lookups and wait for them to
// settle
func (l *Lister) Close() {
	scope := l.currentScope()
	scope.Cancel()
	scope.Wait()
}

// the abandoned lookups settle before the clear so none of them can
// settle a request of the new scope
func (l *Lister) renew() {
	l.Lock()
	old := l.scope
	l.scope = aggregate.NewScope(l.parent)
	l.Unlock()
	old.Cancel()
	old.Wait()
}
