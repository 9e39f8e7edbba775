// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package download

import (
	"context"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/gateway"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/retry"
)

// Submit - AwaitingInput to Success or Failed
//
// with a visit the visit is queued and the returned ids are the
// result. Otherwise the cart is submitted and, once the server has
// returned the new download id, its record is looked up. Submit
// calls are not repeated except for the header size condition, as
// the server may have acted on a failed attempt.
func (c *Coordinator) Submit(ctx context.Context) (Outcome, error) {
	c.Lock()
	if err := c.canSubmit(); nil != err {
		c.Unlock()
		return Outcome{}, err
	}
	if "" == c.fileName {
		c.fileName = DefaultFileName(c.facility, c.target.VisitID, c.now())
	}
	outcome := Outcome{
		FileName:  c.fileName,
		Transport: c.selected,
		Email:     c.email,
	}
	c.state = Submitting
	generation := c.generation
	visitID := c.target.VisitID
	policy := c.policy
	c.Unlock()

	c.log.Infof("submit: %q  transport: %s  visit: %q", outcome.FileName, outcome.Transport, visitID)

	if "" != visitID {
		var ids entity.IDList
		err := retry.Do(ctx, c.log, retry.Cart, "queue visit", func(ctx context.Context) error {
			i, err := c.gateway.QueueVisit(ctx, gateway.VisitRequest{
				VisitID:   visitID,
				Transport: outcome.Transport,
				Email:     outcome.Email,
				FileName:  outcome.FileName,
			})
			ids = i
			return err
		})
		if nil != err {
			return c.fail(generation, outcome, err)
		}
		outcome.Submission = entity.Submission{Queued: ids}
		c.record(ids...)
		return c.succeed(generation, outcome)
	}

	id := int64(0)
	err := retry.Do(ctx, c.log, retry.Cart, "submit cart", func(ctx context.Context) error {
		i, err := c.gateway.SubmitCart(ctx, gateway.SubmitRequest{
			Transport: outcome.Transport,
			Email:     outcome.Email,
			FileName:  outcome.FileName,
			ZipType:   c.zipType,
		})
		id = i
		return err
	})
	if nil == err && id <= 0 {
		err = fault.ErrMissingDownloadID
	}
	if nil != err {
		return c.fail(generation, outcome, err)
	}
	outcome.Submission = entity.Submission{DownloadID: id}
	c.record(id)

	if !c.advance(generation, AwaitingDownloadRecord) {
		return outcome, fault.ErrCancelled
	}

	var record *entity.Download
	err = retry.Do(ctx, c.log, policy, "download record", func(ctx context.Context) error {
		d, err := c.gateway.GetDownload(ctx, id)
		record = d
		return err
	})
	if nil != err {
		return c.fail(generation, outcome, err)
	}
	outcome.Download = record
	return c.succeed(generation, outcome)
}

// move to the next stage unless the surface was closed meanwhile
func (c *Coordinator) advance(generation uint64, state State) bool {
	c.Lock()
	defer c.Unlock()
	if generation != c.generation {
		return false
	}
	c.state = state
	return true
}

func (c *Coordinator) succeed(generation uint64, outcome Outcome) (Outcome, error) {
	c.Lock()
	if generation != c.generation {
		c.Unlock()
		c.log.Infof("submission completed after close: %+v", outcome.Submission)
		return outcome, fault.ErrCancelled
	}
	c.state = Success
	c.outcome = outcome
	callback := c.onSuccess
	c.Unlock()

	c.log.Infof("success: %+v", outcome.Submission)
	if nil != callback && nil != outcome.Download {
		callback(outcome.Download)
	}
	return outcome, nil
}

func (c *Coordinator) fail(generation uint64, outcome Outcome, err error) (Outcome, error) {
	outcome.Err = err

	c.Lock()
	if generation != c.generation {
		c.Unlock()
		c.log.Infof("submission failed after close: %s", err)
		return outcome, err
	}
	c.state = Failed
	c.outcome = outcome
	c.Unlock()

	notify.Report(c.log, c.broadcaster, err, notify.Broadcast)
	return outcome, err
}

func (c *Coordinator) record(ids ...int64) {
	c.Lock()
	recorder := c.recorder
	c.Unlock()
	if nil == recorder || 0 == len(ids) {
		return
	}
	if err := recorder.Record(c.facility, ids...); nil != err {
		c.log.Errorf("record downloads: %v  error: %s", ids, err)
	}
}
