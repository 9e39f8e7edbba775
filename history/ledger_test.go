// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package history_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/fixtures"
	"github.com/ral-facilities/datagateway-sub002/history"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestRecordListRemove(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledger")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	l, err := history.Open(dir, false, fixtures.Logger())
	assert.Nil(t, err, "open")

	assert.Nil(t, l.Record("LILS", 300, 4))
	assert.Nil(t, l.Record("LIL", 7))

	entries, err := l.List("LILS")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(entries), "facility prefix overlap")
	assert.Equal(t, int64(4), entries[0].DownloadID, "not in id order")
	assert.Equal(t, int64(300), entries[1].DownloadID)
	assert.Equal(t, "LILS", entries[0].Facility)

	assert.Nil(t, l.Remove("LILS", 4))
	entries, _ = l.List("LILS")
	assert.Equal(t, 1, len(entries))
	l.Close()

	// entries survive reopening
	l, err = history.Open(dir, true, fixtures.Logger())
	assert.Nil(t, err, "reopen")
	entries, _ = l.List("LIL")
	assert.Equal(t, int64(7), entries[0].DownloadID)
	l.Close()

	assert.Equal(t, fault.ErrNotInitialised, l.Record("LILS", 1))
}

func TestOpenReadOnlyMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledger")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	_, err = history.Open(dir, true, fixtures.Logger())
	assert.NotNil(t, err, "read only open created a ledger")
}
