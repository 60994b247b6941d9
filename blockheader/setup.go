// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - tracks the tip of the chain
//
// the current height and tip digest are kept in memory behind a lock
// and persisted on every change, so a restarted node resumes from the
// block it last sealed
package blockheader

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/genesis"
	"github.com/tallyproject/tallyd/storage"
)

// key for the persisted tip record
var tipKey = []byte("tip")

// persisted record: 8 byte big endian height + tip digest
const tipRecordSize = 8 + blockdigest.Length

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	log   *logger.L
	store storage.Handle

	height    uint64             // this is the current block height
	tipDigest blockdigest.Digest // and its digest

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - setup the current tip data
//
// restores a previously persisted tip from the store, falling back to
// the chain root when none was saved
func Initialise(store storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("blockheader")
	globalData.log = log
	log.Info("starting…")

	globalData.store = store

	record, err := store.Get(tipKey)
	if nil != err {
		return fault.Backend(err)
	}
	if nil == record {
		setGenesis()
	} else {
		if tipRecordSize != len(record) {
			return fault.ErrStateCorruption
		}
		globalData.height = binary.BigEndian.Uint64(record[:8])
		var digest blockdigest.Digest
		err = blockdigest.DigestFromBytes(&digest, record[8:])
		if nil != err {
			return fault.ErrStateCorruption
		}
		globalData.tipDigest = digest
	}

	log.Infof("block height: %d", globalData.height)
	log.Infof("tip digest: %v", globalData.tipDigest)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the tip tracking system
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false
	globalData.store = nil

	return nil
}

// SetGenesis - reset the tip to the chain root
func SetGenesis() error {
	globalData.Lock()
	defer globalData.Unlock()

	setGenesis()
	return persist()
}

// internal: must hold lock
func setGenesis() {
	globalData.height = genesis.BlockNumber
	globalData.tipDigest = genesis.Digest()
}

// Set - advance the tip to a newly stored block
func Set(height uint64, digest blockdigest.Digest) error {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.height = height
	globalData.tipDigest = digest

	return persist()
}

// internal: must hold lock
func persist() error {
	record := make([]byte, tipRecordSize)
	binary.BigEndian.PutUint64(record[:8], globalData.height)
	copy(record[8:], globalData.tipDigest[:])
	return fault.Backend(globalData.store.Put(tipKey, record))
}

// Get - return the current tip
func Get() (uint64, blockdigest.Digest) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height, globalData.tipDigest
}

// GetNew - return data for building the next block
// returns: the tip digest to use as parent and the new block number
func GetNew() (blockdigest.Digest, uint64) {
	globalData.RLock()
	defer globalData.RUnlock()

	nextBlockNumber := globalData.height + 1
	return globalData.tipDigest, nextBlockNumber
}

// Height - return current height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height
}
