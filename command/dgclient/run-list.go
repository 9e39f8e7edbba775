// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/listing"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// list output
type listReply struct {
	Type      entity.Type      `json:"type"`
	Total     int64            `json:"total"`
	Start     int              `json:"start"`
	Entities  []*entity.Entity `json:"entities"`
	Error     string           `json:"error,omitempty"`
	Aggregate string           `json:"aggregateError,omitempty"`
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	start := c.Int("start")
	if start < 0 {
		return fmt.Errorf("invalid start: %d", start)
	}
	rows := c.Int("rows")
	if rows <= 0 {
		return fmt.Errorf("invalid rows: %d", rows)
	}

	lister, err := newLister(c, m)
	if nil != err {
		return err
	}
	defer lister.Close()

	opts := listing.Options{
		Page:     &query.Page{Start: start, Stop: start + rows - 1},
		GetCount: c.Bool("child-count"),
		GetSize:  c.Bool("size"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s\n", lister.Type())
		fmt.Fprintf(m.e, "rows: %d-%d\n", opts.Page.Start, opts.Page.Stop)
	}

	err = lister.FetchEntities(m.ctx, opts)
	if nil != err {
		return err
	}
	err = lister.FetchCount(m.ctx, opts)
	if nil != err {
		return err
	}
	lister.WaitAggregates()

	state := m.store.State()
	return printJson(m.w, listReply{
		Type:      lister.Type(),
		Total:     state.TotalCount,
		Start:     start,
		Entities:  state.Entities,
		Error:     state.Error,
		Aggregate: state.AggregateError,
	})
}

func runCount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	lister, err := newLister(c, m)
	if nil != err {
		return err
	}
	defer lister.Close()

	err = lister.FetchCount(m.ctx, listing.Options{})
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]int64{"count": m.store.State().TotalCount})
}

func runIDs(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	lister, err := newLister(c, m)
	if nil != err {
		return err
	}
	defer lister.Close()

	err = lister.FetchAllIDs(m.ctx, listing.Options{})
	if nil != err {
		return err
	}
	return printJson(m.w, m.store.State().AllIDs)
}

func runDetails(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id := c.Int64("id")
	if id <= 0 {
		return fmt.Errorf("invalid id: %d", id)
	}

	lister, err := newLister(c, m)
	if nil != err {
		return err
	}
	defer lister.Close()

	var include interface{}
	if s := c.String("include"); "" != s {
		include = s
	}
	details, err := lister.FetchDetails(m.ctx, id, include)
	if nil != err {
		return err
	}
	return printJson(m.w, details)
}

// lister for the --type flag with the table flags applied
func newLister(c *cli.Context, m *metadata) (*listing.Lister, error) {
	t, err := entity.ParseType(c.String("type"))
	if nil != err {
		return nil, err
	}

	lister := listing.New(t, m.client, m.store, m.fetcher(), m.bus, m.policy, logger.New("listing"))

	sorts, err := parseSorts(c.StringSlice("sort"))
	if nil != err {
		return nil, err
	}
	for _, s := range sorts {
		lister.Sort(s.Column, s.Direction)
	}

	filters, err := parseFilters(c.StringSlice("filter"), c.StringSlice("exclude"), c.StringSlice("where"))
	if nil != err {
		return nil, err
	}
	for _, f := range filters {
		lister.Filter(f.Column, f.Filter)
	}
	return lister, nil
}

// COLUMN or COLUMN:asc or COLUMN:desc
func parseSorts(items []string) ([]query.Sort, error) {
	sorts := make([]query.Sort, 0, len(items))
	for _, item := range items {
		column, direction := split(item)
		if "" == column {
			return nil, fmt.Errorf("invalid sort: %q", item)
		}
		switch query.Direction(strings.ToLower(direction)) {
		case "", query.Asc:
			sorts = append(sorts, query.Sort{Column: column, Direction: query.Asc})
		case query.Desc:
			sorts = append(sorts, query.Sort{Column: column, Direction: query.Desc})
		default:
			return nil, fmt.Errorf("invalid sort direction: %q", direction)
		}
	}
	return sorts, nil
}

// COLUMN:VALUE, equal values are numbers when they parse as one
func parseFilters(include []string, exclude []string, equal []string) ([]query.ColumnFilter, error) {
	filters := make([]query.ColumnFilter, 0, len(include)+len(exclude)+len(equal))
	add := func(items []string, newFilter func(string) query.Filter) error {
		for _, item := range items {
			column, value := split(item)
			if "" == column || "" == value {
				return fmt.Errorf("invalid filter: %q", item)
			}
			filters = append(filters, query.ColumnFilter{Column: column, Filter: newFilter(value)})
		}
		return nil
	}

	if err := add(include, func(v string) query.Filter {
		return query.TextFilter{Value: v, Type: query.Include}
	}); nil != err {
		return nil, err
	}
	if err := add(exclude, func(v string) query.Filter {
		return query.TextFilter{Value: v, Type: query.Exclude}
	}); nil != err {
		return nil, err
	}
	if err := add(equal, func(v string) query.Filter {
		if n, err := strconv.ParseInt(v, 10, 64); nil == err {
			return query.EqualFilter{Value: n}
		}
		return query.EqualFilter{Value: v}
	}); nil != err {
		return nil, err
	}
	return filters, nil
}

// comma separated ids
func parseIDs(s string) ([]int64, error) {
	ids := []int64{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" == item {
			continue
		}
		id, err := strconv.ParseInt(item, 10, 64)
		if nil != err || id <= 0 {
			return nil, fmt.Errorf("invalid id: %q", item)
		}
		ids = append(ids, id)
	}
	if 0 == len(ids) {
		return nil, fmt.Errorf("no ids given")
	}
	return ids, nil
}

func split(item string) (string, string) {
	s := strings.SplitN(item, ":", 2)
	if 1 == len(s) {
		return strings.TrimSpace(s[0]), ""
	}
	return strings.TrimSpace(s[0]), strings.TrimSpace(s[1])
}
