// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/query"
)

func sample() query.Request {
	return query.Request{
		Sort: []query.Sort{
			{Column: "name", Direction: query.Asc},
		},
		Filters: []query.ColumnFilter{
			{Column: "name", Filter: query.TextFilter{Value: "abc", Type: query.Include}},
			{Column: "startDate", Filter: query.DateFilter{StartDate: "2019-01-01", EndDate: "2019-12-31"}},
			{Column: "type.id", Filter: query.ListFilter{1, 2}},
		},
		Include: "investigation",
		Page:    &query.Page{Start: 0, Stop: 49},
	}
}

const (
	expectedWhere = "where=%7B%22name%22%3A%7B%22like%22%3A%22abc%22%7D%7D" +
		"&where=%7B%22startDate%22%3A%7B%22gte%22%3A%222019-01-01+00%3A00%3A00%22%7D%7D" +
		"&where=%7B%22startDate%22%3A%7B%22lte%22%3A%222019-12-31+23%3A59%3A59%22%7D%7D" +
		"&where=%7B%22type.id%22%3A%7B%22in%22%3A%5B1%2C2%5D%7D%7D" +
		"&include=%22investigation%22"

	expectedListing = "order=%22name+asc%22&order=%22id+asc%22&" + expectedWhere + "&skip=0&limit=50"
	expectedCount   = expectedWhere
	expectedAllIDs  = "order=%22id+asc%22&" + expectedWhere + "&distinct=%5B%22name%22%2C%22id%22%5D"
)

func TestListingRoundTrip(t *testing.T) {
	p, err := query.Listing(sample())
	assert.Nil(t, err, "listing")
	assert.Equal(t, expectedListing, p.Encode(), "listing query changed")

	// derive again from the same input
	again, _ := query.Listing(sample())
	assert.Equal(t, p.Encode(), again.Encode(), "not deterministic")

	// and the captured form decodes to the same values
	v, err := url.ParseQuery(expectedListing)
	assert.Nil(t, err, "parse")
	assert.Equal(t, []string{`"name asc"`, `"id asc"`}, v["order"], "wrong order values")
	assert.Equal(t, `{"type.id":{"in":[1,2]}}`, v["where"][3], "wrong in filter")
}

func TestCountHasNoOrderOrPage(t *testing.T) {
	p, err := query.Count(sample())
	assert.Nil(t, err, "count")
	assert.Equal(t, expectedCount, p.Encode(), "count query changed")
	assert.Nil(t, p.Get("order"), "count has order")
	assert.Nil(t, p.Get("skip"), "count has skip")
}

func TestAllIDsDistinct(t *testing.T) {
	r := sample()
	r.Distinct = []string{"name"}
	p, err := query.AllIDs(r)
	assert.Nil(t, err, "all ids")
	assert.Equal(t, expectedAllIDs, p.Encode(), "all ids query changed")

	r.Distinct = nil
	p, _ = query.AllIDs(r)
	assert.Equal(t, []string{`"id"`}, p.Get("distinct"), "default distinct")
}

func TestSingleDistinctIsString(t *testing.T) {
	p, err := query.Count(query.Request{Distinct: []string{"name"}})
	assert.Nil(t, err)
	assert.Equal(t, "distinct=%22name%22", p.Encode())
}

func TestExcludeAndEqual(t *testing.T) {
	r := query.Request{
		Filters: []query.ColumnFilter{
			{Column: "name", Filter: query.TextFilter{Value: "x<y", Type: query.Exclude}},
			{Column: "investigation.id", Filter: query.EqualFilter{Value: 7}},
			{Column: "location", Filter: query.DateFilter{}},
			{Column: "ignored", Filter: nil},
		},
	}
	p, err := query.Count(r)
	assert.Nil(t, err)
	assert.Equal(t, []string{
		`{"name":{"nlike":"x<y"}}`,
		`{"investigation.id":{"eq":7}}`,
	}, p.Get("where"), "wrong where entries")
}

func TestInvalidPage(t *testing.T) {
	r := query.Request{Page: &query.Page{Start: 10, Stop: 5}}
	_, err := query.Listing(r)
	assert.Equal(t, fault.ErrInvalidPage, err, "wrong error")
}

func TestParamsSet(t *testing.T) {
	p := query.Params{}
	p.Add("a", "1")
	p.Add("b", "2")
	p.Add("a", "3")
	p.Set("a", "4")
	assert.Equal(t, "a=4&b=2", p.Encode())
	p.Set("c", "5")
	assert.Equal(t, "a=4&b=2&c=5", p.Encode())
	assert.Equal(t, "4", p.Values().Get("a"))
}

func TestDecodeIDs(t *testing.T) {
	ids, err := query.DecodeIDs([]byte(`[{"id":3},{"id":1}]`))
	assert.Nil(t, err)
	assert.Equal(t, []int64{3, 1}, ids)
}
