// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/ral-facilities/datagateway-sub002/fault"
)

// Type - kind of catalogued object
type Type string

// entity types
const (
	Investigation Type = "investigation"
	Dataset       Type = "dataset"
	Datafile      Type = "datafile"
)

// ParseType - convert a name to a type
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Investigation, Dataset, Datafile:
		return t, nil
	default:
		return "", fault.ErrInvalidEntityType
	}
}

// Path - collection path segment on the gateway
func (t Type) Path() string {
	return string(t) + "s"
}

// Child - the type whose members are aggregated under this type
func (t Type) Child() (Type, bool) {
	switch t {
	case Investigation:
		return Dataset, true
	case Dataset:
		return Datafile, true
	default:
		return "", false
	}
}

// Entity - one record from a listing
//
// only the fields used by the client are decoded, the aggregates are
// filled in locally and never sent by the server
type Entity struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name,omitempty"`
	Title         string  `json:"title,omitempty"`
	Description   string  `json:"description,omitempty"`
	VisitID       string  `json:"visitId,omitempty"`
	Location      string  `json:"location,omitempty"`
	FileSize      int64   `json:"fileSize,omitempty"`
	FileCount     int64   `json:"fileCount,omitempty"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	CreateTime    string  `json:"createTime,omitempty"`
	ModTime       string  `json:"modTime,omitempty"`
	Investigation *Entity `json:"investigation,omitempty"`
	Dataset       *Entity `json:"dataset,omitempty"`

	ChildEntityCount *int64 `json:"childEntityCount,omitempty"`
	ChildEntitySize  *int64 `json:"childEntitySize,omitempty"`
}

// WithAggregate - copy of the entity with one aggregate field set
func (e *Entity) WithAggregate(kind AggregateKind, value int64) *Entity {
	c := *e
	v := value
	switch kind {
	case ChildCount:
		c.ChildEntityCount = &v
	case ChildSize:
		c.ChildEntitySize = &v
	}
	return &c
}

// WithDetails - copy of d keeping aggregates already computed for e
func (e *Entity) WithDetails(d *Entity) *Entity {
	c := *d
	if nil == c.ChildEntityCount {
		c.ChildEntityCount = e.ChildEntityCount
	}
	if nil == c.ChildEntitySize {
		c.ChildEntitySize = e.ChildEntitySize
	}
	return &c
}
