// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package download

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/ral-facilities/datagateway-sub002/entity"
	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/gateway"
	"github.com/ral-facilities/datagateway-sub002/notify"
	"github.com/ral-facilities/datagateway-sub002/retry"
)

// Gateway - remote calls made by the coordinator
type Gateway interface {
	DownloadTypeStatus(ctx context.Context, transport string) (entity.DownloadTypeStatus, error)
	SubmitCart(ctx context.Context, r gateway.SubmitRequest) (int64, error)
	QueueVisit(ctx context.Context, r gateway.VisitRequest) (entity.IDList, error)
	QueueAllowed(ctx context.Context) (bool, error)
	GetDownload(ctx context.Context, id int64) (*entity.Download, error)
}

// Recorder - keeps the ids of submitted downloads
type Recorder interface {
	Record(facility string, ids ...int64) error
}

// AccessMethod - a configured transport
type AccessMethod struct {
	Name        string
	DisplayName string
	Description string
}

// Configuration - fixed settings of a coordinator
type Configuration struct {
	FacilityName  string
	AccessMethods []AccessMethod // in display order
	ZipType       entity.ZipType
}

// Target - what is being downloaded, given when the surface opens
type Target struct {
	VisitID    string // non-empty selects the queue path
	TotalSize  int64
	IsTwoLevel bool
}

// Outcome - result of a submission
type Outcome struct {
	FileName   string
	Transport  string
	Email      string
	Submission entity.Submission
	Download   *entity.Download // single path only
	Err        error
}

// Coordinator - the download request workflow
type Coordinator struct {
	sync.Mutex

	log         *logger.L
	gateway     Gateway
	broadcaster notify.Broadcaster
	recorder    Recorder
	policy      retry.Policy
	now         func() time.Time
	onSuccess   func(*entity.Download)

	facility string
	methods  []AccessMethod
	zipType  entity.ZipType

	// kept across close and reopen
	statuses map[string]entity.DownloadTypeStatus

	// reset on close
	state        State
	generation   uint64
	target       Target
	queueAllowed bool
	selected     string
	email        string
	fileName     string
	outcome      Outcome
}

// New - create a coordinator in the Idle state
func New(conf Configuration, gw Gateway, broadcaster notify.Broadcaster, log *logger.L) (*Coordinator, error) {
	if "" == conf.FacilityName {
		return nil, fault.ErrMissingFacilityName
	}
	zipType := conf.ZipType
	switch zipType {
	case "":
		zipType = entity.Zip
	case entity.Zip, entity.ZipAndCompress:
	default:
		return nil, fault.ErrInvalidZipType
	}

	return &Coordinator{
		log:         log,
		gateway:     gw,
		broadcaster: broadcaster,
		policy:      retry.Default,
		now:         time.Now,
		facility:    conf.FacilityName,
		methods:     append([]AccessMethod(nil), conf.AccessMethods...),
		zipType:     zipType,
		statuses:    make(map[string]entity.DownloadTypeStatus),
		state:       Idle,
	}, nil
}

// OnSuccess - called once with the download record each time the
// single download path succeeds
func (c *Coordinator) OnSuccess(fn func(*entity.Download)) *Coordinator {
	c.Lock()
	defer c.Unlock()
	c.onSuccess = fn
	return c
}

// WithRecorder - keep the ids of successful submissions
func (c *Coordinator) WithRecorder(r Recorder) *Coordinator {
	c.Lock()
	defer c.Unlock()
	c.recorder = r
	return c
}

// WithPolicy - retry policy for status and record lookups
func (c *Coordinator) WithPolicy(policy retry.Policy) *Coordinator {
	c.Lock()
	defer c.Unlock()
	c.policy = policy
	return c
}

// WithClock - time source for default file names
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.Lock()
	defer c.Unlock()
	c.now = now
	return c
}

// State - the current stage
func (c *Coordinator) State() State {
	c.Lock()
	defer c.Unlock()
	return c.state
}

// Outcome - result of the last submission, valid in a terminal state
func (c *Coordinator) Outcome() Outcome {
	c.Lock()
	defer c.Unlock()
	return c.outcome
}

// Estimate - transfer times for the opened target
func (c *Coordinator) Estimate() (Estimate, bool) {
	c.Lock()
	defer c.Unlock()
	return EstimateTimes(c.target.TotalSize, c.target.IsTwoLevel)
}

// Close - return to Idle, discarding input and any submission, an
// in-flight submission completes without effect
func (c *Coordinator) Close() {
	c.Lock()
	defer c.Unlock()

	c.log.Debugf("close from: %s", c.state)
	c.state = Idle
	c.generation += 1
	c.target = Target{}
	c.queueAllowed = false
	c.selected = ""
	c.email = ""
	c.fileName = ""
	c.outcome = Outcome{}
}
