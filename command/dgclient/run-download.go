// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/download"
	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/history"
)

type methodReply struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Known       bool   `json:"known"`
	Disabled    bool   `json:"disabled"`
	Message     string `json:"message,omitempty"`
}

type submitReply struct {
	FileName   string           `json:"fileName"`
	Transport  string           `json:"transport"`
	Email      string           `json:"email,omitempty"`
	DownloadID int64            `json:"downloadId,omitempty"`
	Queued     []int64          `json:"queued,omitempty"`
	Download   *entity.Download `json:"download,omitempty"`
	Estimate   []string         `json:"estimate,omitempty"`
}

func runMethods(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	coordinator, err := m.coordinator()
	if nil != err {
		return err
	}
	defer coordinator.Close()

	err = coordinator.Open(m.ctx, download.Target{VisitID: c.String("visit")})
	if nil != err {
		return err
	}

	statuses := coordinator.Statuses()
	reply := make([]methodReply, len(statuses))
	for i, s := range statuses {
		reply[i] = methodReply{
			Name:        s.Name,
			DisplayName: s.DisplayName,
			Description: s.Description,
			Known:       s.Status.Known(),
			Disabled:    s.Status.Known() && !s.Status.Usable(),
			Message:     s.Status.Message,
		}
	}
	return printJson(m.w, reply)
}

func runSubmit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	ledger, err := history.Open(m.conf.HistoryDirectory, false, logger.New("history"))
	if nil != err {
		return err
	}
	defer ledger.Close()

	coordinator, err := m.coordinator()
	if nil != err {
		return err
	}
	coordinator.WithRecorder(ledger)
	defer coordinator.Close()

	target := download.Target{
		VisitID:    c.String("visit"),
		TotalSize:  c.Int64("total-size"),
		IsTwoLevel: c.Bool("two-level"),
	}
	err = coordinator.Open(m.ctx, target)
	if nil != err {
		return err
	}

	if method := c.String("method"); "" != method {
		if err := coordinator.Select(method); nil != err {
			return fmt.Errorf("access method: %q  error: %s", method, err)
		}
	}
	if err := coordinator.SetEmail(c.String("email")); nil != err {
		return err
	}
	if err := coordinator.SetFileName(c.String("name")); nil != err {
		return err
	}
	if err := coordinator.CanSubmit(); nil != err {
		return err
	}

	reply := submitReply{}
	if estimate, ok := coordinator.Estimate(); ok && target.TotalSize > 0 {
		reply.Estimate = []string{
			"1 Mbps: " + download.FormatDuration(estimate.AtOne),
			"30 Mbps: " + download.FormatDuration(estimate.AtThirty),
			"100 Mbps: " + download.FormatDuration(estimate.AtHundred),
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "method: %s\n", coordinator.Selected())
		fmt.Fprintf(m.e, "visit: %q\n", target.VisitID)
	}

	outcome, err := coordinator.Submit(m.ctx)
	if nil != err {
		return err
	}

	reply.FileName = outcome.FileName
	reply.Transport = outcome.Transport
	reply.Email = outcome.Email
	reply.DownloadID = outcome.Submission.DownloadID
	reply.Queued = outcome.Submission.Queued
	reply.Download = outcome.Download
	return printJson(m.w, reply)
}
