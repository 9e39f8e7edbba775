// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package history

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/ral-facilities/datagateway-sub002/fault"
)

const (
	databaseName   = "downloads.leveldb"
	currentVersion = 0x100
)

// key layout: prefix, facility, separator, big endian download id
var (
	versionKey     = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}
	downloadPrefix = []byte{'D'}
)

// Entry - one submitted download
type Entry struct {
	Facility   string
	DownloadID int64
	Recorded   time.Time
}

// Ledger - submitted downloads still to be watched
type Ledger struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB
	now func() time.Time
}

// Open - open or create the ledger in directory
func Open(directory string, readOnly bool, log *logger.L) (*Ledger, error) {
	db, version, err := getDB(filepath.Join(directory, databaseName), readOnly)
	if nil != err {
		return nil, err
	}

	if version > currentVersion {
		db.Close()
		return nil, fmt.Errorf("ledger version: %d > current version: %d", version, currentVersion)
	}
	if 0 == version && !readOnly {
		if err := putVersion(db, currentVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %s  version: %d", directory, version)
	return &Ledger{
		log: log,
		db:  db,
		now: time.Now,
	}, nil
}

// Close - close the database
func (l *Ledger) Close() {
	l.Lock()
	defer l.Unlock()
	if nil != l.db {
		l.db.Close()
		l.db = nil
	}
}

// Record - add downloads for a facility
func (l *Ledger) Record(facility string, ids ...int64) error {
	l.Lock()
	defer l.Unlock()
	if nil == l.db {
		return fault.ErrNotInitialised
	}

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(l.now().Unix()))

	batch := new(leveldb.Batch)
	for _, id := range ids {
		batch.Put(downloadKey(facility, id), value)
	}
	err := l.db.Write(batch, nil)
	if nil != err {
		return err
	}
	l.log.Debugf("recorded facility: %s  ids: %v", facility, ids)
	return nil
}

// Remove - forget a download
func (l *Ledger) Remove(facility string, id int64) error {
	l.Lock()
	defer l.Unlock()
	if nil == l.db {
		return fault.ErrNotInitialised
	}
	return l.db.Delete(downloadKey(facility, id), nil)
}

// List - downloads of a facility in id order
func (l *Ledger) List(facility string) ([]Entry, error) {
	l.RLock()
	defer l.RUnlock()
	if nil == l.db {
		return nil, fault.ErrNotInitialised
	}

	prefix := facilityPrefix(facility)
	iter := l.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	entries := []Entry{}
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()
		if len(key) != len(prefix)+8 || 8 != len(value) {
			l.log.Warnf("skip malformed key: %x", key)
			continue
		}
		entries = append(entries, Entry{
			Facility:   facility,
			DownloadID: int64(binary.BigEndian.Uint64(key[len(prefix):])),
			Recorded:   time.Unix(int64(binary.BigEndian.Uint64(value)), 0),
		})
	}
	return entries, iter.Error()
}

func facilityPrefix(facility string) []byte {
	prefix := make([]byte, 0, len(downloadPrefix)+len(facility)+1)
	prefix = append(prefix, downloadPrefix...)
	prefix = append(prefix, facility...)
	return append(prefix, 0x00)
}

func downloadKey(facility string, id int64) []byte {
	key := facilityPrefix(facility)
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, uint64(id))
	return append(key, n...)
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible ledger version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return db, int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(version))
	return db.Put(versionKey, v, nil)
}
