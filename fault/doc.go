// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of local errors to allow easy comparison,
// plus StatusError for replies from the remote gateway and the
// classification of those replies into authentication failures
package fault
