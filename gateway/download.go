// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/query"
)

// SubmitRequest - parameters of a cart submission
type SubmitRequest struct {
	Transport string
	Email     string
	FileName  string
	ZipType   entity.ZipType
}

// VisitRequest - parameters of a visit queue request
type VisitRequest struct {
	VisitID   string
	Transport string
	Email     string
	FileName  string
}

// DownloadTypeStatus - availability of one access method, the type
// is filled in locally as the server omits it
func (c *Client) DownloadTypeStatus(ctx context.Context, transport string) (entity.DownloadTypeStatus, error) {
	params := query.Params{}
	params.Add("facilityName", c.facility)

	status := entity.DownloadTypeStatus{}
	u := c.downloadURL + "/user/downloadType/" + url.PathEscape(transport) + "/status"
	err := c.get(ctx, "download_type_status", u, params, param, &status)
	if nil != err {
		return entity.DownloadTypeStatus{Type: transport}, err
	}
	status.Type = transport
	return status, nil
}

// SubmitCart - turn the cart into a download, returning its id
func (c *Client) SubmitCart(ctx context.Context, r SubmitRequest) (int64, error) {
	zipType := r.ZipType
	switch zipType {
	case "":
		zipType = entity.Zip
	case entity.Zip, entity.ZipAndCompress:
	default:
		return 0, fault.ErrInvalidZipType
	}

	form := query.Params{}
	form.Add("transport", r.Transport)
	form.Add("email", r.Email)
	form.Add("fileName", r.FileName)
	form.Add("zipType", string(zipType))

	var reply struct {
		DownloadID int64 `json:"downloadId"`
	}
	err := c.post(ctx, "submit", c.cartURL()+"/submit", form, &reply)
	if nil != err {
		return 0, err
	}
	if reply.DownloadID <= 0 {
		return 0, fault.ErrMissingDownloadID
	}
	return reply.DownloadID, nil
}

// QueueVisit - queue every file of a visit, returning the download ids
func (c *Client) QueueVisit(ctx context.Context, r VisitRequest) (entity.IDList, error) {
	if "" == r.VisitID {
		return nil, fault.ErrMissingVisitID
	}
	form := query.Params{}
	form.Add("transport", r.Transport)
	form.Add("email", r.Email)
	form.Add("fileName", r.FileName)
	form.Add("visitId", r.VisitID)
	form.Add("facilityName", c.facility)

	var reply entity.IDList
	err := c.post(ctx, "queue_visit", c.downloadURL+"/user/queue/visit", form, &reply)
	if nil != err {
		return nil, err
	}
	if 0 == len(reply) {
		return nil, fault.ErrEmptyQueueResponse
	}
	return reply, nil
}

// QueueAllowed - whether the user may queue visits
func (c *Client) QueueAllowed(ctx context.Context) (bool, error) {
	params := query.Params{}
	params.Add("facilityName", c.facility)

	allowed := false
	err := c.get(ctx, "queue_allowed", c.downloadURL+"/user/queue/allowed", params, param, &allowed)
	return allowed, err
}

// GetDownload - the download record with the given id
func (c *Client) GetDownload(ctx context.Context, id int64) (*entity.Download, error) {
	params := query.Params{}
	params.Add("facilityName", c.facility)
	params.Add("queryOffset", "where download.id = "+strconv.FormatInt(id, 10))

	var reply []entity.Download
	err := c.get(ctx, "download", c.downloadURL+"/user/downloads", params, param, &reply)
	if nil != err {
		return nil, err
	}
	if 0 == len(reply) {
		return nil, fault.ErrDownloadNotFound
	}
	return &reply[0], nil
}
