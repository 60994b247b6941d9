// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/difficulty"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/storage"
)

// Executor - validates sealed blocks and replays them against a store
type Executor struct {
	difficulty *difficulty.Difficulty
}

// NewExecutor - create an executor
//
// the difficulty value must be the same one given to the sealer
func NewExecutor(difficulty *difficulty.Difficulty) *Executor {
	return &Executor{
		difficulty: difficulty,
	}
}

// ValidateRoot - accept a block as the chain root
//
// the root is valid by fiat and exempt from the proof-of-work check;
// it carries no operations so no state is touched
func (executor *Executor) ValidateRoot(block *blockrecord.Block) error {
	if nil != block.Parent {
		return fault.ErrBlockIsNotRoot
	}
	if 0 != len(block.Operations) {
		return fault.ErrBlockIsNotRoot
	}
	return nil
}

// Execute - verify proof-of-work then fold the block into the store
//
// the order is fixed:
//  1. difficulty check - rejection leaves the store untouched
//  2. single read of the tally (absent = zero)
//  3. fold all operations in order
//  4. single write of the final tally
//
// never call this on the chain root, use ValidateRoot
func (executor *Executor) Execute(block *blockrecord.Block, store storage.Handle) error {

	if !executor.difficulty.MeetsTarget(block.Digest()) {
		return fault.ErrDifficultyTooLow
	}

	tally, err := readTally(store)
	if nil != err {
		return err
	}

	for _, operation := range block.Operations {
		tally, err = foldOperation(tally, operation)
		if nil != err {
			return err
		}
	}

	return writeTally(store, tally)
}
