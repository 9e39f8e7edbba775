// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCancelled               = ProcessError("request cancelled")
	ErrConfigurationNotTable   = InvalidError("configuration must return a table")
	ErrDownloadNotFound        = NotFoundError("download record not found")
	ErrEmptyQueueResponse      = ProcessError("queue request returned no download ids")
	ErrEntityNotFound          = NotFoundError("entity not found")
	ErrFileNotFound            = NotFoundError("file not found")
	ErrInvalidAccessMethod     = InvalidError("access method requires a name")
	ErrInvalidCategory         = InvalidError("invalid fetch category")
	ErrInvalidEmail            = InvalidError("invalid email address")
	ErrInvalidEntityType       = InvalidError("invalid entity type")
	ErrInvalidEpoch            = InvalidError("invalid epoch")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidPage             = InvalidError("invalid page range")
	ErrInvalidRateLimit        = InvalidError("invalid rate limit")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidZipType          = InvalidError("invalid zip type")
	ErrMissingAccessMethod     = InvalidError("no access method selected")
	ErrMissingDownloadID       = ProcessError("submit returned no download id")
	ErrMissingFacilityName     = InvalidError("facility name is required")
	ErrMissingSessionID        = InvalidError("session id is required")
	ErrMissingURL              = InvalidError("gateway url is required")
	ErrMissingVisitID          = InvalidError("visit id is required")
	ErrNoAggregateParent       = InvalidError("entity type has no child aggregate")
	ErrNoSelectableMethod      = NotFoundError("no access method available")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotPlainFileName        = InvalidError("file is not a plain name")
	ErrQueueNotAllowed         = InvalidError("queueing a visit is not allowed")
	ErrRateLimiting            = ProcessError("rate limiting")
	ErrStatusesNotSettled      = InvalidError("access method statuses not settled")
	ErrSubmissionInProgress    = ExistsError("submission already in progress")
	ErrUnsupportedAccessMethod = InvalidError("access method is disabled")
	ErrWrongState              = InvalidError("operation not valid in current state")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
