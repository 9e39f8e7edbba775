// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
)

func TestParseType(t *testing.T) {
	for _, s := range []string{"investigation", "dataset", "datafile"} {
		ty, err := entity.ParseType(s)
		assert.Nil(t, err, "parse: %s", s)
		assert.Equal(t, s+"s", ty.Path(), "wrong path")
	}

	_, err := entity.ParseType("instrument")
	assert.Equal(t, fault.ErrInvalidEntityType, err, "wrong error")
}

func TestChild(t *testing.T) {
	c, ok := entity.Investigation.Child()
	assert.True(t, ok)
	assert.Equal(t, entity.Dataset, c)

	c, ok = entity.Dataset.Child()
	assert.True(t, ok)
	assert.Equal(t, entity.Datafile, c)

	_, ok = entity.Datafile.Child()
	assert.False(t, ok, "datafile has no children")
}

func TestAggregateZeroIsPresent(t *testing.T) {
	a := entity.Aggregate{}
	_, ok := a.Get(entity.ChildSize)
	assert.False(t, ok, "empty aggregate reports size")

	a = a.With(entity.ChildSize, 0)
	v, ok := a.Get(entity.ChildSize)
	assert.True(t, ok, "zero size not present")
	assert.Equal(t, int64(0), v)

	_, ok = a.Get(entity.ChildCount)
	assert.False(t, ok, "setting size set count")
}

func TestWithAggregateCopies(t *testing.T) {
	e := &entity.Entity{ID: 1, Name: "one"}
	c := e.WithAggregate(entity.ChildCount, 4)
	assert.Nil(t, e.ChildEntityCount, "original modified")
	assert.Equal(t, int64(4), *c.ChildEntityCount)
	assert.Equal(t, "one", c.Name)
}

func TestNormaliseCart(t *testing.T) {
	items := []entity.CartItem{
		{ID: 1, EntityID: 5, EntityType: entity.Dataset, Name: "a"},
		{ID: 2, EntityID: 5, EntityType: entity.Investigation, Name: "b"},
		{ID: 3, EntityID: 5, EntityType: entity.Dataset, Name: "c"},
	}
	n := entity.NormaliseCart(items)
	assert.Equal(t, 2, len(n), "wrong length")
	assert.Equal(t, "a", n[0].Name)
	assert.Equal(t, "b", n[1].Name)
}

func TestIDList(t *testing.T) {
	var l entity.IDList
	err := json.Unmarshal([]byte(`[1, "2", 33]`), &l)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, entity.IDList{1, 2, 33}, l)

	err = json.Unmarshal([]byte(`["x"]`), &l)
	assert.NotNil(t, err, "non numeric id accepted")
}

func TestDownloadTypeStatus(t *testing.T) {
	var s entity.DownloadTypeStatus
	err := json.Unmarshal([]byte(`{"disabled":false,"message":""}`), &s)
	assert.Nil(t, err)
	assert.True(t, s.Known())
	assert.True(t, s.Usable())

	s = entity.DownloadTypeStatus{Type: "globus"}
	assert.False(t, s.Known(), "missing status is known")
	assert.False(t, s.Usable(), "missing status is usable")
}
