// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package download

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/retry"
)

// Method - an access method with its availability
type Method struct {
	AccessMethod
	Status entity.DownloadTypeStatus
}

type statusResult struct {
	status entity.DownloadTypeStatus
	err    error
}

// Open - Idle to AwaitingInput, resolving the status of every access
// method not already known
//
// status calls run in parallel and the coordinator waits for all of
// them to settle; a failed call leaves its method unselectable
func (c *Coordinator) Open(ctx context.Context, target Target) error {
	c.Lock()
	if Idle != c.state {
		c.Unlock()
		return fault.ErrWrongState
	}
	c.state = LoadingAccessMethods
	c.target = target
	generation := c.generation
	policy := c.policy
	pending := make([]string, 0, len(c.methods))
	for _, m := range c.methods {
		if s, ok := c.statuses[m.Name]; !ok || !s.Known() {
			pending = append(pending, m.Name)
		}
	}
	c.Unlock()

	c.log.Infof("open: %d access methods to check  visit: %q", len(pending), target.VisitID)

	results := make([]statusResult, len(pending))
	var wg sync.WaitGroup
	for i, name := range pending {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			var status entity.DownloadTypeStatus
			err := retry.Do(ctx, c.log, policy, "status "+name, func(ctx context.Context) error {
				s, err := c.gateway.DownloadTypeStatus(ctx, name)
				status = s
				return err
			})
			results[i] = statusResult{status: status, err: err}
		}(i, name)
	}

	allowed := false
	var allowedErr error
	if "" != target.VisitID {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowedErr = retry.Do(ctx, c.log, policy, "queue allowed", func(ctx context.Context) error {
				a, err := c.gateway.QueueAllowed(ctx)
				allowed = a
				return err
			})
		}()
	}
	wg.Wait()

	c.Lock()
	defer c.Unlock()

	if generation != c.generation {
		return fault.ErrCancelled
	}
	if nil != ctx.Err() {
		c.state = Idle
		return ctx.Err()
	}

	failed := make([]string, 0, len(pending))
	authentication := false
	for i, name := range pending {
		r := results[i]
		if nil != r.err {
			c.log.Errorf("status of %s: %s", name, r.err)
			failed = append(failed, name)
			authentication = authentication || fault.IsAuthentication(r.err)
			continue
		}
		c.statuses[name] = r.status
	}
	if nil != allowedErr {
		c.log.Errorf("queue allowed: %s", allowedErr)
		authentication = authentication || fault.IsAuthentication(allowedErr)
	}
	c.broadcastFailures(failed)
	if authentication && nil != c.broadcaster {
		c.broadcaster.InvalidateSession()
	}

	c.queueAllowed = allowed
	c.state = AwaitingInput

	if selectable := c.selectable(); len(selectable) > 0 && selectable[0].Status.Usable() {
		c.selected = selectable[0].Name
	}
	c.log.Infof("awaiting input  selected: %q", c.selected)
	return nil
}

// one error when no method could be checked, otherwise one per method
func (c *Coordinator) broadcastFailures(failed []string) {
	if 0 == len(failed) || nil == c.broadcaster {
		return
	}
	if len(failed) == len(c.methods) {
		c.broadcaster.Notify(notify.Error, "Access methods are currently unavailable")
		return
	}
	for _, name := range failed {
		c.broadcaster.Notify(notify.Error, fmt.Sprintf("Access method %s is currently unavailable", strings.ToUpper(name)))
	}
}

// Statuses - every configured method in configured order, with an
// unknown status where none was resolved
func (c *Coordinator) Statuses() []Method {
	c.Lock()
	defer c.Unlock()
	methods := make([]Method, len(c.methods))
	for i, m := range c.methods {
		status, ok := c.statuses[m.Name]
		if !ok {
			status = entity.DownloadTypeStatus{Type: m.Name}
		}
		methods[i] = Method{AccessMethod: m, Status: status}
	}
	return methods
}

// Selectable - methods with a known status, enabled ones first and
// otherwise in configured order
func (c *Coordinator) Selectable() []Method {
	c.Lock()
	defer c.Unlock()
	return c.selectable()
}

func (c *Coordinator) selectable() []Method {
	methods := make([]Method, 0, len(c.methods))
	for _, m := range c.methods {
		if status, ok := c.statuses[m.Name]; ok && status.Known() {
			methods = append(methods, Method{AccessMethod: m, Status: status})
		}
	}
	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].Status.Usable() && !methods[j].Status.Usable()
	})
	return methods
}

// Selected - name of the selected method
func (c *Coordinator) Selected() string {
	c.Lock()
	defer c.Unlock()
	return c.selected
}

// Select - choose a method, a disabled one may be selected but not
// submitted with
func (c *Coordinator) Select(name string) error {
	c.Lock()
	defer c.Unlock()
	if AwaitingInput != c.state {
		return fault.ErrWrongState
	}
	for _, m := range c.selectable() {
		if name == m.Name {
			c.selected = name
			return nil
		}
	}
	return fault.ErrUnsupportedAccessMethod
}

// SetEmail - address notified when the download is ready, may be
// empty; an invalid address is kept but blocks submission
func (c *Coordinator) SetEmail(email string) error {
	c.Lock()
	defer c.Unlock()
	if AwaitingInput != c.state {
		return fault.ErrWrongState
	}
	c.email = strings.TrimSpace(email)
	if !ValidEmail(c.email) {
		return fault.ErrInvalidEmail
	}
	return nil
}

// SetFileName - name of the download, empty for a default name
func (c *Coordinator) SetFileName(name string) error {
	c.Lock()
	defer c.Unlock()
	if AwaitingInput != c.state {
		return fault.ErrWrongState
	}
	c.fileName = truncate(strings.TrimSpace(name))
	return nil
}

// CanSubmit - nil when Submit would be attempted, otherwise the
// reason submission is blocked
func (c *Coordinator) CanSubmit() error {
	c.Lock()
	defer c.Unlock()
	return c.canSubmit()
}

func (c *Coordinator) canSubmit() error {
	switch c.state {
	case AwaitingInput:
	case LoadingAccessMethods:
		return fault.ErrStatusesNotSettled
	case Submitting, AwaitingDownloadRecord:
		return fault.ErrSubmissionInProgress
	default:
		return fault.ErrWrongState
	}

	if 0 == len(c.selectable()) {
		return fault.ErrNoSelectableMethod
	}
	if "" == c.selected {
		return fault.ErrMissingAccessMethod
	}
	if status := c.statuses[c.selected]; !status.Usable() {
		return fault.ErrUnsupportedAccessMethod
	}
	if !ValidEmail(c.email) {
		return fault.ErrInvalidEmail
	}
	if "" != c.target.VisitID && !c.queueAllowed {
		return fault.ErrQueueNotAllowed
	}
	return nil
}
