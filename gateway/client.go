// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"net/http"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

// Configuration - endpoints and limits of the remote gateway
type Configuration struct {
	FacilityName   string
	APIURL         string
	DownloadAPIURL string
	RateLimit      float64
	RateBurst      int
}

// Client - calls to the catalogue API and the download API
type Client struct {
	log         *logger.L
	http        *http.Client
	tokens      TokenReader
	limiter     *rate.Limiter
	facility    string
	apiURL      string
	downloadURL string
}

// New - create a client, a nil httpClient uses http.DefaultClient
func New(conf Configuration, tokens TokenReader, httpClient *http.Client, log *logger.L) (*Client, error) {
	if "" == conf.FacilityName {
		return nil, fault.ErrMissingFacilityName
	}
	if "" == conf.APIURL || "" == conf.DownloadAPIURL {
		return nil, fault.ErrMissingURL
	}
	if nil == httpClient {
		httpClient = http.DefaultClient
	}

	return &Client{
		log:         log,
		http:        httpClient,
		tokens:      tokens,
		limiter:     newLimiter(conf.RateLimit, conf.RateBurst),
		facility:    conf.FacilityName,
		apiURL:      strings.TrimRight(conf.APIURL, "/"),
		downloadURL: strings.TrimRight(conf.DownloadAPIURL, "/"),
	}, nil
}

// FacilityName - facility the client is bound to
func (c *Client) FacilityName() string {
	return c.facility
}
