// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fixtures"
	"github.com/ral-facilities/datagateway-sub002/query"
	"github.com/ral-facilities/datagateway-sub002/store"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func entities(ids ...int64) []*entity.Entity {
	e := make([]*entity.Entity, len(ids))
	for i, id := range ids {
		e[i] = &entity.Entity{ID: id, Name: "entity"}
	}
	return e
}

func TestEpochMonotonicity(t *testing.T) {
	s := store.New(fixtures.Logger())

	assert.True(t, s.BeginFetch(store.Data, 100), "first request")
	assert.True(t, s.BeginFetch(store.Data, 200), "newer request")

	assert.True(t, s.CompleteFetch(store.FetchDataSuccess{Epoch: 200, Entities: entities(2)}), "newer response")
	applied := s.State()

	assert.False(t, s.CompleteFetch(store.FetchDataSuccess{Epoch: 100, Entities: entities(1)}), "stale response applied")
	assert.Equal(t, applied, s.State(), "stale response changed the state")
	assert.Equal(t, int64(2), s.State().Entities[0].ID)
	assert.False(t, s.State().IsLoading(store.Data), "still loading")
}

func TestStaleRequestRejected(t *testing.T) {
	s := store.New(fixtures.Logger())
	assert.True(t, s.BeginFetch(store.Count, 50))
	assert.False(t, s.BeginFetch(store.Count, 49), "older request accepted")
	assert.Equal(t, int64(50), s.State().Epoch(store.Count))
}

func TestEpochTiesAccepted(t *testing.T) {
	s := store.New(fixtures.Logger())
	assert.True(t, s.BeginFetch(store.Data, 7))
	assert.True(t, s.BeginFetch(store.Data, 7), "tie rejected")

	assert.True(t, s.CompleteFetch(store.FetchDataSuccess{Epoch: 7, Entities: entities(1)}))
	assert.True(t, s.CompleteFetch(store.FetchDataSuccess{Epoch: 7, Entities: entities(1, 2), Append: true}))
	assert.Equal(t, 3, len(s.State().Entities), "tie response dropped")
}

func TestZeroEpochRejected(t *testing.T) {
	s := store.New(fixtures.Logger())
	assert.False(t, s.BeginFetch(store.Data, 0), "zero epoch accepted")
	assert.False(t, s.State().IsLoading(store.Data), "zero epoch set loading")
	assert.False(t, s.CompleteFetch(store.FetchCountSuccess{Epoch: 0, Count: 10}), "zero epoch response applied")
	assert.Equal(t, int64(0), s.State().TotalCount)
}

func TestCategoriesIndependent(t *testing.T) {
	s := store.New(fixtures.Logger())
	assert.True(t, s.BeginFetch(store.Data, 500))
	assert.True(t, s.BeginFetch(store.Count, 10), "count sequenced with data")
	assert.True(t, s.CompleteFetch(store.FetchCountSuccess{Epoch: 10, Count: 42}))
	assert.True(t, s.BeginFetch(store.AllIDs, 1))
	assert.True(t, s.CompleteFetch(store.FetchAllIDsSuccess{Epoch: 1, IDs: []int64{4, 2}}))

	st := s.State()
	assert.Equal(t, int64(42), st.TotalCount)
	assert.Equal(t, []int64{4, 2}, st.AllIDs)
	assert.True(t, st.IsLoading(store.Data))
}

func TestFailureClearsLoading(t *testing.T) {
	s := store.New(fixtures.Logger())
	assert.True(t, s.BeginFetch(store.Data, 3))
	assert.True(t, s.CompleteFetch(store.FetchFailure{Category: store.Data, Epoch: 3, Message: "boom"}))

	st := s.State()
	assert.False(t, st.AnyLoading(), "failure left loading set")
	assert.Equal(t, "boom", st.Error)
}

func TestPartialMerge(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.BeginFetch(store.Data, 1)
	s.CompleteFetch(store.FetchDataSuccess{Epoch: 1, Entities: entities(1, 2, 3)})
	before := s.State()

	s.Dispatch(store.AggregateRequest{ParentID: 2, Aggregate: entity.ChildSize})
	after := s.Dispatch(store.AggregateSuccess{ParentID: 2, Aggregate: entity.ChildSize, Value: 10000})

	assert.Same(t, before.Entities[0], after.Entities[0], "entity 1 replaced")
	assert.Same(t, before.Entities[2], after.Entities[2], "entity 3 replaced")
	assert.True(t, before.Entities[1] != after.Entities[1], "entity 2 modified in place")
	assert.Nil(t, before.Entities[1].ChildEntitySize, "earlier state modified")
	assert.Equal(t, int64(10000), *after.Entities[1].ChildEntitySize)
	assert.Equal(t, 0, after.AggregatesPending)
}

func TestAggregateForUnlistedEntity(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.BeginFetch(store.Data, 1)
	s.CompleteFetch(store.FetchDataSuccess{Epoch: 1, Entities: entities(1)})
	before := s.State()
	after := s.Dispatch(store.AggregateSuccess{ParentID: 99, Aggregate: entity.ChildCount, Value: 1})
	assert.Same(t, before.Entities[0], after.Entities[0])
}

func TestDetailsKeepAggregates(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.BeginFetch(store.Data, 1)
	s.CompleteFetch(store.FetchDataSuccess{Epoch: 1, Entities: entities(1)})
	s.Dispatch(store.AggregateSuccess{ParentID: 1, Aggregate: entity.ChildCount, Value: 5})

	st := s.Dispatch(store.FetchDetailsSuccess{Entity: &entity.Entity{ID: 1, Name: "full", Description: "details"}})
	e := st.Find(1)
	assert.Equal(t, "details", e.Description)
	assert.Equal(t, int64(5), *e.ChildEntityCount, "details dropped aggregate")
}

func TestAggregateCancelledSettles(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.BeginFetch(store.Data, 1)
	s.CompleteFetch(store.FetchDataSuccess{Epoch: 1, Entities: entities(1)})
	s.Dispatch(store.AggregateRequest{ParentID: 1, Aggregate: entity.ChildSize})
	assert.True(t, s.State().AnyLoading(), "request not pending")

	st := s.Dispatch(store.AggregateCancelled{ParentID: 1, Aggregate: entity.ChildSize})
	assert.False(t, st.AnyLoading(), "cancelled lookup left loading")
	assert.Equal(t, "", st.AggregateError, "cancelled lookup recorded an error")
	assert.Nil(t, st.Find(1).ChildEntitySize)

	st = s.Dispatch(store.AggregateCancelled{ParentID: 1, Aggregate: entity.ChildSize})
	assert.Equal(t, 0, st.AggregatesPending, "pending count below zero")
}

func TestDetailsFailure(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.BeginFetch(store.Data, 1)
	s.CompleteFetch(store.FetchDataSuccess{Epoch: 1, Entities: entities(1)})
	before := s.State()

	st := s.Dispatch(store.FetchDetailsFailure{ID: 1, Message: "no details"})
	assert.Equal(t, "no details", st.Error)
	assert.False(t, st.AnyLoading())
	assert.Same(t, before.Entities[0], st.Entities[0], "failure replaced entity")
}

func TestClearDropsInFlight(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.BeginFetch(store.Data, 10)
	s.Dispatch(store.AggregateRequest{ParentID: 1, Aggregate: entity.ChildCount})
	s.Dispatch(store.ClearData{Epoch: 20})

	st := s.State()
	assert.False(t, st.AnyLoading(), "clear left loading")
	assert.False(t, s.CompleteFetch(store.FetchDataSuccess{Epoch: 10, Entities: entities(1)}), "pre clear response applied")
	assert.Nil(t, s.State().Entities)
	assert.True(t, s.BeginFetch(store.Data, 20), "post clear request rejected")
}

func TestCartSet(t *testing.T) {
	s := store.New(fixtures.Logger())
	item := entity.CartItem{ID: 1, EntityID: 5, EntityType: entity.Dataset, Name: "ds"}
	st := s.Dispatch(store.CartSuccess{Items: []entity.CartItem{item, item}})
	assert.Equal(t, 1, len(st.Cart), "duplicate cart entries")
	assert.True(t, st.InCart(entity.Dataset, 5))
	assert.False(t, st.InCart(entity.Datafile, 5))

	s.Dispatch(store.CartRequest{})
	st = s.Dispatch(store.CartFailure{Message: "no"})
	assert.False(t, st.CartLoading)
	assert.Equal(t, "no", st.CartError)
	assert.Equal(t, 1, len(st.Cart), "failure dropped cart")
}

func TestSortAndFilter(t *testing.T) {
	s := store.New(fixtures.Logger())
	s.Dispatch(store.SortTable{Column: "name", Direction: query.Asc})
	s.Dispatch(store.SortTable{Column: "size", Direction: query.Desc})
	s.Dispatch(store.SortTable{Column: "name", Direction: query.Desc})
	st := s.Dispatch(store.SortTable{Column: "size"})
	assert.Equal(t, []query.Sort{{Column: "name", Direction: query.Desc}}, st.Query.Sort)

	f := query.TextFilter{Value: "x"}
	s.Dispatch(store.FilterTable{Column: "name", Filter: f})
	st = s.Dispatch(store.FilterTable{Column: "title", Filter: f})
	assert.Equal(t, 2, len(st.Query.Filters))
	st = s.Dispatch(store.FilterTable{Column: "name"})
	assert.Equal(t, "title", st.Query.Filters[0].Column)

	st = s.Dispatch(store.ClearTable{Epoch: 1})
	assert.Nil(t, st.Query.Sort)
	assert.Nil(t, st.Query.Filters)
}

func TestSubscribe(t *testing.T) {
	s := store.New(fixtures.Logger())
	ch := s.Subscribe()
	s.Dispatch(store.CartRequest{})
	st := <-ch
	assert.True(t, st.CartLoading)

	// overflow must not block dispatch
	for i := 0; i < 100; i += 1 {
		s.Dispatch(store.AggregateRequest{ParentID: int64(i)})
	}
	s.Close()
	n := 0
	for range ch {
		n += 1
	}
	assert.True(t, n > 0 && n <= 16, "wrong queued count: %d", n)
}

func TestConcurrentDispatch(t *testing.T) {
	s := store.New(fixtures.Logger())
	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(store.AggregateRequest{ParentID: 1})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.State().AggregatesPending)
}

func TestParseCategory(t *testing.T) {
	c, err := store.ParseCategory("allIds")
	assert.Nil(t, err)
	assert.Equal(t, store.AllIDs, c)
	_, err = store.ParseCategory("nothing")
	assert.NotNil(t, err)
	assert.Equal(t, "fetch_data_success", store.KindFetchDataSuccess.String())
}
