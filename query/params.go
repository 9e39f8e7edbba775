// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

type pair struct {
	key   string
	value string
}

// Params - query parameters that encode in insertion order
type Params struct {
	pairs []pair
}

// Add - append a raw value
func (p *Params) Add(key string, value string) {
	p.pairs = append(p.pairs, pair{key: key, value: value})
}

// AddJSON - append a JSON encoded value
func (p *Params) AddJSON(key string, value interface{}) error {
	s, err := marshal(value)
	if nil != err {
		return err
	}
	p.Add(key, s)
	return nil
}

// Set - replace all values of key by one value at the position of
// the first occurrence, or at the end
func (p *Params) Set(key string, value string) {
	for i, v := range p.pairs {
		if key == v.key {
			p.pairs[i].value = value
			p.Del(key, i+1)
			return
		}
	}
	p.Add(key, value)
}

// Del - remove every value of key at or after position from
func (p *Params) Del(key string, from int) {
	kept := p.pairs[:from]
	for _, v := range p.pairs[from:] {
		if key != v.key {
			kept = append(kept, v)
		}
	}
	p.pairs = kept
}

// Get - all values of key in order
func (p Params) Get(key string) []string {
	values := []string(nil)
	for _, v := range p.pairs {
		if key == v.key {
			values = append(values, v.value)
		}
	}
	return values
}

// Append - add every pair of other after the existing pairs
func (p *Params) Append(other Params) {
	p.pairs = append(p.pairs, other.pairs...)
}

// Len - number of pairs
func (p Params) Len() int {
	return len(p.pairs)
}

// Encode - form encoding in insertion order
func (p Params) Encode() string {
	var b strings.Builder
	for i, v := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(v.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v.value))
	}
	return b.String()
}

// Values - as url.Values, for form bodies where order is irrelevant
func (p Params) Values() url.Values {
	values := url.Values{}
	for _, v := range p.pairs {
		values.Add(v.key, v.value)
	}
	return values
}

// JSON without HTML escaping so operators like "<" survive as typed
func marshal(value interface{}) (string, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); nil != err {
		return "", err
	}
	return strings.TrimRight(buffer.String(), "\n"), nil
}
