// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing_test

import (
	"context"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/aggregate"
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/fixtures"
	"github.com/ral-facilities/datagateway-sub002/listing"
	"github.com/ral-facilities/datagateway-sub002/mocks"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/query"
	"github.com/ral-facilities/datagateway-sub002/retry"
	"github.com/ral-facilities/datagateway-sub002/store"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type env struct {
	ctl     *gomock.Controller
	gateway *mocks.MockListingGateway
	source  *mocks.MockSource
	b       *mocks.MockBroadcaster
	store   *store.Store
	lister  *listing.Lister
}

// clock returning the given epochs in order
func sequence(epochs ...int64) store.Clock {
	var lock sync.Mutex
	return func() int64 {
		lock.Lock()
		defer lock.Unlock()
		e := epochs[0]
		epochs = epochs[1:]
		return e
	}
}

func setup(t *testing.T, clock store.Clock) env {
	ctl := gomock.NewController(t)
	e := env{
		ctl:     ctl,
		gateway: mocks.NewMockListingGateway(ctl),
		source:  mocks.NewMockSource(ctl),
		b:       mocks.NewMockBroadcaster(ctl),
		store:   store.New(fixtures.Logger()),
	}
	policy := retry.Default.WithAttempts(1)
	fetcher := aggregate.NewFetcher(e.source, nil, e.store, e.b, policy, fixtures.Logger())
	e.lister = listing.New(entity.Dataset, e.gateway, e.store, fetcher, e.b, policy, fixtures.Logger()).WithClock(clock)
	return e
}

func entities(ids ...int64) []*entity.Entity {
	e := make([]*entity.Entity, len(ids))
	for i, id := range ids {
		e[i] = &entity.Entity{ID: id, Name: "dataset"}
	}
	return e
}

func TestFetchEntitiesWithAggregates(t *testing.T) {
	e := setup(t, sequence(1, 2))
	defer e.ctl.Finish()

	e.store.Dispatch(store.SortTable{Column: "name", Direction: query.Asc})

	expected := query.Request{
		Sort:    []query.Sort{{Column: "name", Direction: query.Asc}},
		Include: "investigation",
		Page:    &query.Page{Start: 0, Stop: 49},
	}
	e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, expected).Return(entities(1, 2), nil).Times(1)
	e.source.EXPECT().Aggregate(gomock.Any(), entity.Dataset, int64(1), entity.ChildCount).Return(int64(3), nil).Times(1)
	e.source.EXPECT().Aggregate(gomock.Any(), entity.Dataset, int64(2), entity.ChildCount).Return(int64(0), nil).Times(1)
	e.source.EXPECT().Aggregate(gomock.Any(), entity.Dataset, int64(1), entity.ChildSize).Return(int64(100), nil).Times(1)
	e.source.EXPECT().Aggregate(gomock.Any(), entity.Dataset, int64(2), entity.ChildSize).Return(int64(200), nil).Times(1)

	opts := listing.Options{
		Page:     &query.Page{Start: 0, Stop: 49},
		Include:  "investigation",
		GetCount: true,
		GetSize:  true,
	}
	err := e.lister.FetchEntities(context.Background(), opts)
	assert.Nil(t, err, "fetch")
	e.lister.WaitAggregates()

	st := e.store.State()
	assert.False(t, st.AnyLoading())
	assert.Equal(t, 2, len(st.Entities))
	assert.Equal(t, int64(3), *st.Find(1).ChildEntityCount)
	assert.Equal(t, int64(0), *st.Find(2).ChildEntityCount)
	assert.Equal(t, int64(200), *st.Find(2).ChildEntitySize)
	assert.Equal(t, 0, st.AggregatesPending)
}

func TestFetchPagesAppend(t *testing.T) {
	e := setup(t, sequence(1, 2))
	defer e.ctl.Finish()

	gomock.InOrder(
		e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(1, 2), nil),
		e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(3), nil),
	)

	ctx := context.Background()
	assert.Nil(t, e.lister.FetchEntities(ctx, listing.Options{Page: &query.Page{Start: 0, Stop: 1}}))
	assert.Nil(t, e.lister.FetchEntities(ctx, listing.Options{Page: &query.Page{Start: 2, Stop: 3}, Append: true}))

	st := e.store.State()
	assert.Equal(t, 3, len(st.Entities))
	assert.Equal(t, int64(3), st.Entities[2].ID)
}

func TestStaleResponseDropped(t *testing.T) {
	e := setup(t, sequence(100, 200))
	defer e.ctl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).DoAndReturn(
			func(context.Context, entity.Type, query.Request) ([]*entity.Entity, error) {
				close(started)
				<-release
				return entities(1), nil
			}),
		e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(2), nil),
	)

	done := make(chan error)
	go func() {
		done <- e.lister.FetchEntities(context.Background(), listing.Options{})
	}()
	<-started

	assert.Nil(t, e.lister.FetchEntities(context.Background(), listing.Options{}), "newer fetch")
	close(release)
	assert.Nil(t, <-done, "stale fetch returned an error")

	st := e.store.State()
	assert.Equal(t, 1, len(st.Entities))
	assert.Equal(t, int64(2), st.Entities[0].ID, "stale page applied")
	assert.Equal(t, int64(200), st.Epoch(store.Data))
	assert.False(t, st.IsLoading(store.Data))
}

func TestFailureReported(t *testing.T) {
	e := setup(t, sequence(1))
	defer e.ctl.Finish()

	failure := &fault.StatusError{Status: http.StatusInternalServerError, Message: "database unavailable"}
	e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(nil, failure).Times(1)
	e.b.EXPECT().Notify(notify.Error, "database unavailable").Times(1)

	err := e.lister.FetchEntities(context.Background(), listing.Options{})
	assert.Equal(t, failure, err)

	st := e.store.State()
	assert.False(t, st.AnyLoading(), "failure left loading set")
	assert.Equal(t, "database unavailable", st.Error)
}

func TestAuthenticationFailure(t *testing.T) {
	e := setup(t, sequence(1))
	defer e.ctl.Finish()

	failure := &fault.StatusError{Status: http.StatusUnauthorized}
	e.gateway.EXPECT().Count(gomock.Any(), entity.Dataset, gomock.Any()).Return(int64(0), failure).Times(1)
	gomock.InOrder(
		e.b.EXPECT().Notify(notify.Error, "request failed with status code 401").Times(1),
		e.b.EXPECT().InvalidateSession().Times(1),
	)

	err := e.lister.FetchCount(context.Background(), listing.Options{})
	assert.True(t, fault.IsAuthentication(err))
	assert.False(t, e.store.State().IsLoading(store.Count))
}

func TestFetchCountAndIDs(t *testing.T) {
	e := setup(t, sequence(1, 2))
	defer e.ctl.Finish()

	filter := query.ColumnFilter{Column: "name", Filter: query.TextFilter{Value: "calib"}}
	e.store.Dispatch(store.FilterTable{Column: filter.Column, Filter: filter.Filter})

	expected := query.Request{Filters: []query.ColumnFilter{filter}}
	e.gateway.EXPECT().Count(gomock.Any(), entity.Dataset, expected).Return(int64(12), nil).Times(1)
	e.gateway.EXPECT().AllIDs(gomock.Any(), entity.Dataset, expected).Return([]int64{5, 9}, nil).Times(1)

	ctx := context.Background()
	assert.Nil(t, e.lister.FetchCount(ctx, listing.Options{}))
	assert.Nil(t, e.lister.FetchAllIDs(ctx, listing.Options{}))

	st := e.store.State()
	assert.Equal(t, int64(12), st.TotalCount)
	assert.Equal(t, []int64{5, 9}, st.AllIDs)
}

func TestFetchDetails(t *testing.T) {
	e := setup(t, sequence(1))
	defer e.ctl.Finish()

	include := []string{"datasetType"}
	e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(1, 2), nil)
	e.gateway.EXPECT().Details(gomock.Any(), entity.Dataset, int64(2), include).Return(&entity.Entity{ID: 2, Description: "full"}, nil)

	ctx := context.Background()
	assert.Nil(t, e.lister.FetchEntities(ctx, listing.Options{}))
	before := e.store.State()

	d, err := e.lister.FetchDetails(ctx, 2, include)
	assert.Nil(t, err)
	assert.Equal(t, "full", d.Description)

	after := e.store.State()
	assert.Equal(t, "full", after.Find(2).Description)
	assert.Same(t, before.Entities[0], after.Entities[0], "unrelated entity replaced")
}

func TestFetchDetailsFailure(t *testing.T) {
	e := setup(t, sequence(1))
	defer e.ctl.Finish()

	failure := &fault.StatusError{Status: http.StatusInternalServerError, Message: "no such dataset"}
	e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(1), nil)
	e.gateway.EXPECT().Details(gomock.Any(), entity.Dataset, int64(1), nil).Return(nil, failure).Times(1)
	e.b.EXPECT().Notify(notify.Error, "no such dataset").Times(1)

	ctx := context.Background()
	assert.Nil(t, e.lister.FetchEntities(ctx, listing.Options{}))

	d, err := e.lister.FetchDetails(ctx, 1, nil)
	assert.Nil(t, d)
	assert.Equal(t, failure, err)

	st := e.store.State()
	assert.Equal(t, "no such dataset", st.Error)
	assert.False(t, st.AnyLoading())
	assert.Equal(t, "", st.Find(1).Description, "failure merged into entity")
}

func TestClearAbandonsAggregates(t *testing.T) {
	e := setup(t, sequence(1, 2, 3))
	defer e.ctl.Finish()

	started := make(chan struct{})
	finished := make(chan struct{})
	e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(1), nil)
	e.source.EXPECT().Aggregate(gomock.Any(), entity.Dataset, int64(1), entity.ChildSize).DoAndReturn(
		func(ctx context.Context, _ entity.Type, _ int64, _ entity.AggregateKind) (int64, error) {
			close(started)
			<-ctx.Done()
			defer close(finished)
			return 0, ctx.Err()
		}).Times(1)

	assert.Nil(t, e.lister.FetchEntities(context.Background(), listing.Options{GetSize: true}))
	<-started
	e.lister.Sort("name", query.Desc)
	<-finished

	st := e.store.State()
	assert.Nil(t, st.Entities, "clear kept entities")
	assert.Equal(t, "", st.AggregateError, "abandoned lookup reported")
	assert.Equal(t, 0, st.AggregatesPending, "abandoned lookup pending")
	assert.False(t, st.AnyLoading(), "store left loading")
	assert.Equal(t, []query.Sort{{Column: "name", Direction: query.Desc}}, st.Query.Sort)
	assert.Equal(t, int64(2), st.Epoch(store.Data))
}

func TestCloseSettlesAggregates(t *testing.T) {
	e := setup(t, sequence(1))
	defer e.ctl.Finish()

	started := make(chan struct{}, 2)
	e.gateway.EXPECT().List(gomock.Any(), entity.Dataset, gomock.Any()).Return(entities(1, 2), nil)
	e.source.EXPECT().Aggregate(gomock.Any(), entity.Dataset, gomock.Any(), entity.ChildSize).DoAndReturn(
		func(ctx context.Context, _ entity.Type, _ int64, _ entity.AggregateKind) (int64, error) {
			started <- struct{}{}
			<-ctx.Done()
			return 0, ctx.Err()
		}).Times(2)

	assert.Nil(t, e.lister.FetchEntities(context.Background(), listing.Options{GetSize: true}))
	<-started
	<-started
	assert.Equal(t, 2, e.store.State().AggregatesPending, "lookups not pending")

	e.lister.Close()
	e.lister.WaitAggregates()

	st := e.store.State()
	assert.Equal(t, 0, st.AggregatesPending, "abandoned lookups pending")
	assert.False(t, st.AnyLoading(), "store left loading")
	assert.Equal(t, "", st.AggregateError, "abandoned lookup reported")
	assert.Equal(t, 2, len(st.Entities), "close dropped entities")
	assert.Nil(t, st.Find(1).ChildEntitySize)
}

func TestClearTable(t *testing.T) {
	e := setup(t, sequence(4, 5))
	defer e.ctl.Finish()

	e.lister.Filter("name", query.TextFilter{Value: "x", Type: query.Exclude})
	e.lister.ClearTable()

	st := e.store.State()
	assert.Nil(t, st.Query.Filters)
	assert.Equal(t, int64(5), st.Epoch(store.AllIDs))
}
