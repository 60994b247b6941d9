// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the chain root defined by fiat
//
// no parent, no operations, nonce zero; the one block that is valid
// without satisfying the proof-of-work target, so every node agrees
// on a single unconditional root
package genesis

import (
	"sync"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/blockrecord"
)

// BlockNumber - height of the chain root
const BlockNumber = 1

// Block - the root block
//
// read-only: never modify the fields
var Block = &blockrecord.Block{
	Parent:     nil,
	Operations: []blockrecord.Operation{},
	Nonce:      0,
}

var digestOnce sync.Once
var rootDigest blockdigest.Digest

// Digest - identity of the root block
//
// computed from the packed form on first use
func Digest() blockdigest.Digest {
	digestOnce.Do(func() {
		rootDigest = Block.Digest()
	})
	return rootDigest
}
