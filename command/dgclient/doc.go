// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// dgclient - terminal client for a DataGateway catalogue
//
// lists investigations, datasets and datafiles with their aggregate
// sizes and counts, edits the download cart, submits downloads and
// monitors submitted downloads until they complete
//
// the configuration file is Lua, see the configuration package; the
// session id is read from --session, the configured session_file or
// the DATAGATEWAY_SESSION environment variable in that order
package main
