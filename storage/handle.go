// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// Handle - narrow access to one section of the key-value store
//
// the sole channel between the runtime and persistent state
type Handle interface {
	// read a value, nil with no error when the key is absent
	Get(key []byte) ([]byte, error)

	// store a key/value pair
	Put(key []byte, value []byte) error

	// remove a key, absent keys are not an error
	Delete(key []byte) error

	// check if a key exists
	Has(key []byte) (bool, error)
}

// PoolHandle - a LevelDB backed Handle
//
// all keys of one pool share a single prefix byte so multiple pools
// can coexist in one database without key collisions
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return nil, leveldb.ErrClosed
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return value, nil
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return leveldb.ErrClosed
	}
	return p.database.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return leveldb.ErrClosed
	}
	return p.database.Delete(p.prefixKey(key), nil)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return false, leveldb.ErrClosed
	}
	return p.database.Has(p.prefixKey(key), nil)
}
