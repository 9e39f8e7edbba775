// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"encoding/json"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// Page - inclusive index range of rows
type Page struct {
	Start int
	Stop  int
}

// Request - sort, filter and projection of a listing
type Request struct {
	Sort     []Sort
	Filters  []ColumnFilter
	Include  interface{} // string, list or nested object
	Distinct []string
	Page     *Page
}

// tie break so equal sort keys page deterministically
var idAsc = Sort{Column: "id", Direction: Asc}

// Listing - parameters for a listing endpoint
func Listing(r Request) (Params, error) {
	p := Params{}
	for _, s := range append(append([]Sort(nil), r.Sort...), idAsc) {
		if err := p.AddJSON("order", s.Column+" "+string(s.Direction)); nil != err {
			return Params{}, err
		}
	}
	if err := addFilters(&p, r); nil != err {
		return Params{}, err
	}
	if nil != r.Page {
		if r.Page.Start < 0 || r.Page.Stop < r.Page.Start {
			return Params{}, fault.ErrInvalidPage
		}
		_ = p.AddJSON("skip", r.Page.Start)
		_ = p.AddJSON("limit", r.Page.Stop-r.Page.Start+1)
	}
	return p, nil
}

// Count - parameters for a count endpoint, never ordered or paged
func Count(r Request) (Params, error) {
	p := Params{}
	if err := addFilters(&p, r); nil != err {
		return Params{}, err
	}
	return p, nil
}

// AllIDs - listing parameters projected onto the id column
func AllIDs(r Request) (Params, error) {
	r.Sort = nil
	r.Page = nil
	distinct := r.Distinct
	r.Distinct = nil

	p, err := Listing(r)
	if nil != err {
		return Params{}, err
	}

	var value interface{} = "id"
	if len(distinct) > 0 {
		value = append(append([]string(nil), distinct...), "id")
	}
	s, err := marshal(value)
	if nil != err {
		return Params{}, err
	}
	p.Set("distinct", s)
	return p, nil
}

func addFilters(p *Params, r Request) error {
	for _, f := range r.Filters {
		if nil == f.Filter {
			continue
		}
		for _, c := range f.Filter.conditions() {
			where := map[string]map[string]interface{}{
				f.Column: {c.operator: c.operand},
			}
			if err := p.AddJSON("where", where); nil != err {
				return err
			}
		}
	}
	if nil != r.Include {
		if err := p.AddJSON("include", r.Include); nil != err {
			return err
		}
	}
	switch len(r.Distinct) {
	case 0:
	case 1:
		return p.AddJSON("distinct", r.Distinct[0])
	default:
		return p.AddJSON("distinct", r.Distinct)
	}
	return nil
}

// DecodeIDs - ids from a distinct id projection reply
func DecodeIDs(data []byte) ([]int64, error) {
	var rows []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); nil != err {
		return nil, err
	}
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids, nil
}
