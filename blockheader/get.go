// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"encoding/binary"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/genesis"
	"github.com/tallyproject/tallyd/storage"
)

const (
	cacheSize = 10
)

type cachedBlockDigest struct {
	blockNumber uint64
	digest      blockdigest.Digest
}

var cached [cacheSize]cachedBlockDigest
var cacheIndex int

// DigestForBlock - return the digest for a specific block number
//
// the chain root answers any number at or below its own; other blocks
// are fetched from the store and hashed, with a small ring cache to
// avoid rehashing recent requests
func DigestForBlock(blocks storage.Handle, number uint64) (blockdigest.Digest, error) {
	globalData.Lock()
	defer globalData.Unlock()

	// valid block number
	if number <= genesis.BlockNumber {
		return genesis.Digest(), nil
	}

	digest := digestFromCache(number)
	if !digest.IsEmpty() {
		return digest, nil
	}

	// fetch block and compute digest
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, number)

	packed, err := blocks.Get(n)
	if nil != err {
		return blockdigest.Digest{}, fault.Backend(err)
	}
	if nil == packed {
		return blockdigest.Digest{}, fault.ErrBlockNotFound
	}

	digest = blockdigest.NewDigest(packed)
	add(number, digest)
	return digest, nil
}

// VerifyTip - confirm the stored tip block matches the tip record
//
// run at startup: a tip record pointing at a missing or altered block
// means the block store is damaged
func VerifyTip(blocks storage.Handle) error {
	height, tipDigest := Get()

	digest, err := DigestForBlock(blocks, height)
	if nil != err {
		return err
	}
	if digest != tipDigest {
		return fault.ErrStateCorruption
	}
	return nil
}

// ClearCache - forget all cached digests
func ClearCache() {
	globalData.Lock()
	defer globalData.Unlock()

	cached = *new([cacheSize]cachedBlockDigest)
}

// internal: must hold lock
func digestFromCache(blockNumber uint64) blockdigest.Digest {
	for _, c := range cached {
		if c.blockNumber == blockNumber {
			return c.digest
		}
	}
	return blockdigest.Digest{}
}

// internal: must hold lock
func add(blockNumber uint64, digest blockdigest.Digest) {
	cached[cacheIndex] = cachedBlockDigest{
		blockNumber: blockNumber,
		digest:      digest,
	}
	incrementCacheIndex()
}

func incrementCacheIndex() {
	if cacheSize-1 == cacheIndex {
		cacheIndex = 0
	} else {
		cacheIndex += 1
	}
}
