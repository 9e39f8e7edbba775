// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

// Direction - sort direction
type Direction string

// directions
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort - one order entry
type Sort struct {
	Column    string
	Direction Direction
}

// Filter - a condition on one column producing zero or more where
// entries
type Filter interface {
	conditions() []condition
}

// operator and operand for one where entry
type condition struct {
	operator string
	operand  interface{}
}

// ColumnFilter - a filter bound to a column, kept in a slice so the
// encoded order is the order given
type ColumnFilter struct {
	Column string
	Filter Filter
}

// TextType - text match mode
type TextType string

// text match modes
const (
	Include TextType = "include"
	Exclude TextType = "exclude"
)

// TextFilter - substring match
type TextFilter struct {
	Value string
	Type  TextType
}

func (f TextFilter) conditions() []condition {
	if Exclude == f.Type {
		return []condition{{operator: "nlike", operand: f.Value}}
	}
	return []condition{{operator: "like", operand: f.Value}}
}

// DateFilter - inclusive date range, either end may be empty
type DateFilter struct {
	StartDate string
	EndDate   string
}

func (f DateFilter) conditions() []condition {
	c := make([]condition, 0, 2)
	if "" != f.StartDate {
		c = append(c, condition{operator: "gte", operand: f.StartDate + " 00:00:00"})
	}
	if "" != f.EndDate {
		c = append(c, condition{operator: "lte", operand: f.EndDate + " 23:59:59"})
	}
	return c
}

// ListFilter - value is one of the members
type ListFilter []interface{}

func (f ListFilter) conditions() []condition {
	members := []interface{}(f)
	if nil == members {
		members = []interface{}{}
	}
	return []condition{{operator: "in", operand: members}}
}

// EqualFilter - exact match
type EqualFilter struct {
	Value interface{}
}

func (f EqualFilter) conditions() []condition {
	return []condition{{operator: "eq", operand: f.Value}}
}
