// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items, e.g. the session
// file location can come from the hosting shell:
//
//   session_file = os.getenv("DATAGATEWAY_SESSION_FILE")
//
// the file watcher and reader pick up edits to a running monitor
package configuration
