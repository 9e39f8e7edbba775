// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

// AggregateKind - which derived value
type AggregateKind int

// aggregate kinds
const (
	ChildCount AggregateKind = iota
	ChildSize
)

func (k AggregateKind) String() string {
	switch k {
	case ChildCount:
		return "count"
	case ChildSize:
		return "size"
	default:
		return "unknown"
	}
}

// Aggregate - cached derived values for one parent entity
//
// a zero value is a real value, presence is tracked separately
type Aggregate struct {
	Count    int64
	HasCount bool
	Size     int64
	HasSize  bool
}

// Get - value of one kind and whether it has been computed
func (a Aggregate) Get(kind AggregateKind) (int64, bool) {
	switch kind {
	case ChildCount:
		return a.Count, a.HasCount
	case ChildSize:
		return a.Size, a.HasSize
	default:
		return 0, false
	}
}

// With - copy with one kind set, the other kind is untouched
func (a Aggregate) With(kind AggregateKind, value int64) Aggregate {
	switch kind {
	case ChildCount:
		a.Count = value
		a.HasCount = true
	case ChildSize:
		a.Size = value
		a.HasSize = true
	}
	return a
}
