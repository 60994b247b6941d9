// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/difficulty"
	"github.com/tallyproject/tallyd/fault"
)

// Seal - find a nonce satisfying the difficulty target
//
// linear search from nonce 0, recomputing the identity digest each
// attempt; the packed buffer is patched in place which yields the same
// bytes as repacking the whole block
//
// the search has no upper bound, so the stop channel is checked every
// iteration: close it to abandon a stalled search, which returns
// fault.ErrSealCancelled; a nil stop channel disables cancellation
//
// the unsealed block is consumed: its fields are moved into the
// returned sealed block
func Seal(unsealed *blockrecord.UnsealedBlock, difficulty *difficulty.Difficulty, stop <-chan struct{}) (*blockrecord.Block, error) {

	packed := unsealed.Pack()

	for nonce := blockrecord.NonceType(0); ; nonce += 1 {
		select {
		case <-stop:
			return nil, fault.ErrSealCancelled
		default:
		}

		packed.SetNonce(nonce)
		if difficulty.MeetsTarget(packed.Digest()) {
			return &blockrecord.Block{
				Parent:     unsealed.Parent,
				Operations: unsealed.Operations,
				Nonce:      nonce,
			}, nil
		}
	}
}
