// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/query"
)

const (
	maxErrorBody   = 4096
	maxBodyMessage = 200
	requestIDKey   = "X-Request-Id"
)

// how the session identifier is attached
type auth int

const (
	bearer auth = iota // catalogue API
	param              // download API, sessionId parameter
)

// GET base+path?params and decode the JSON reply
func (c *Client) get(ctx context.Context, endpoint string, url string, params query.Params, how auth, reply interface{}) error {
	sessionID, err := c.tokens.SessionID()
	if nil != err {
		return err
	}

	if param == how {
		p := query.Params{}
		p.Add("sessionId", sessionID)
		params = concat(p, params)
	}
	if params.Len() > 0 {
		url += "?" + params.Encode()
	}

	request, err := http.NewRequest(http.MethodGet, url, nil)
	if nil != err {
		return err
	}
	if bearer == how {
		request.Header.Set("Authorization", "Bearer "+sessionID)
	}
	return c.do(ctx, endpoint, request, reply)
}

// POST a form to the download API, sessionId is the first field
func (c *Client) post(ctx context.Context, endpoint string, url string, form query.Params, reply interface{}) error {
	sessionID, err := c.tokens.SessionID()
	if nil != err {
		return err
	}
	p := query.Params{}
	p.Add("sessionId", sessionID)
	body := concat(p, form).Encode()

	request, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if nil != err {
		return err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(ctx, endpoint, request, reply)
}

func (c *Client) do(ctx context.Context, endpoint string, request *http.Request, reply interface{}) error {
	if err := limit(ctx, c.limiter); nil != err {
		requestCounter.WithLabelValues(endpoint, "limited").Inc()
		return err
	}

	id := uuid.New().String()
	request.Header.Set(requestIDKey, id)
	request.Header.Set("Accept", "application/json")

	start := time.Now()
	response, err := c.http.Do(request.WithContext(ctx))
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if nil != err {
		requestCounter.WithLabelValues(endpoint, "transport").Inc()
		c.log.Debugf("%s request: %s  transport error: %s", endpoint, id, err)
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		requestCounter.WithLabelValues(endpoint, strconv.Itoa(response.StatusCode)).Inc()
		err := statusError(response)
		c.log.Debugf("%s request: %s  status: %d  error: %s", endpoint, id, response.StatusCode, err)
		return err
	}
	requestCounter.WithLabelValues(endpoint, "ok").Inc()

	if nil == reply {
		_, _ = io.Copy(ioutil.Discard, response.Body)
		return nil
	}
	return json.NewDecoder(response.Body).Decode(reply)
}

// server message from an error reply, falling back to a short body
func statusError(response *http.Response) error {
	body, _ := ioutil.ReadAll(io.LimitReader(response.Body, maxErrorBody))

	var reply struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	message := ""
	if nil == json.Unmarshal(body, &reply) {
		message = reply.Message
		if "" == message {
			message = reply.Detail
		}
	}
	if "" == message {
		text := strings.TrimSpace(string(body))
		if len(text) <= maxBodyMessage && !strings.HasPrefix(text, "<") {
			message = text
		}
	}
	return &fault.StatusError{
		Status:  response.StatusCode,
		Message: message,
	}
}

func concat(a query.Params, b query.Params) query.Params {
	a.Append(b)
	return a
}
