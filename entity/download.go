// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DownloadTypeStatus - availability of one access method
//
// a nil Disabled means the status could not be determined and the
// method must not be offered
type DownloadTypeStatus struct {
	Type     string `json:"type"`
	Disabled *bool  `json:"disabled,omitempty"`
	Message  string `json:"message"`
}

// Known - status was resolved
func (s DownloadTypeStatus) Known() bool {
	return nil != s.Disabled
}

// Usable - status was resolved and the method is enabled
func (s DownloadTypeStatus) Usable() bool {
	return nil != s.Disabled && !*s.Disabled
}

// DownloadItem - an entity within a download
type DownloadItem struct {
	ID         int64 `json:"id"`
	EntityID   int64 `json:"entityId"`
	EntityType Type  `json:"entityType"`
}

// download record states
const (
	StatusPreparing = "PREPARING"
	StatusRestoring = "RESTORING"
	StatusPaused    = "PAUSED"
	StatusComplete  = "COMPLETE"
	StatusExpired   = "EXPIRED"
)

// Download - a download record held by the download service
type Download struct {
	ID            int64          `json:"id"`
	FacilityName  string         `json:"facilityName"`
	FileName      string         `json:"fileName"`
	FullName      string         `json:"fullName"`
	UserName      string         `json:"userName"`
	Email         string         `json:"email,omitempty"`
	Transport     string         `json:"transport"`
	Status        string         `json:"status"`
	PreparedID    string         `json:"preparedId"`
	Size          int64          `json:"size"`
	IsDeleted     bool           `json:"isDeleted"`
	IsEmailSent   bool           `json:"isEmailSent"`
	IsTwoLevel    bool           `json:"isTwoLevel"`
	CreatedAt     string         `json:"createdAt"`
	DownloadItems []DownloadItem `json:"downloadItems"`
}

// Finished - no further state changes expected
func (d Download) Finished() bool {
	return StatusComplete == d.Status || StatusExpired == d.Status
}

// ZipType - archive format of a submitted cart
type ZipType string

// archive formats
const (
	Zip            ZipType = "ZIP"
	ZipAndCompress ZipType = "ZIP_AND_COMPRESS"
)

// IDList - download ids as returned by the queue endpoint, which may
// send them as numbers or numeric strings
type IDList []int64

// UnmarshalJSON - accept both forms
func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); nil != err {
		return err
	}
	ids := make(IDList, 0, len(raw))
	for _, r := range raw {
		r = bytes.Trim(r, `"`)
		id, err := strconv.ParseInt(string(r), 10, 64)
		if nil != err {
			return err
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

// Submission - outcome of a submit call, either one download id or
// the ids queued for a visit
type Submission struct {
	DownloadID int64
	Queued     IDList
}

// Single - submission created one download that must be looked up
func (s Submission) Single() bool {
	return 0 == len(s.Queued)
}
