// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/storage"
)

// Builder - assembles a new block while applying its operations
type Builder struct{}

// NewBuilder - create a builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Begin - start an unsealed block extending the given parent
//
// takes no store action
func (builder *Builder) Begin(parent *blockrecord.Block) *blockrecord.UnsealedBlock {
	return builder.BeginDigest(parent.Digest())
}

// BeginDigest - start an unsealed block when only the parent digest
// is known
//
// the tip tracker records digests rather than whole blocks, so a
// producer extending the tip starts from here
func (builder *Builder) BeginDigest(parentDigest blockdigest.Digest) *blockrecord.UnsealedBlock {
	return &blockrecord.UnsealedBlock{
		Parent:     &parentDigest,
		Operations: []blockrecord.Operation{},
	}
}

// Apply - fold one operation into the live store and record it
//
// performs the same read-fold-write sequence as Executor.Execute for a
// single operation; the operation is appended to the block so a later
// replay of the sealed block reproduces this state change exactly
func (builder *Builder) Apply(block *blockrecord.UnsealedBlock, operation blockrecord.Operation, store storage.Handle) error {

	// a sealed block must unpack to replay, so refuse to grow the
	// operation list past the wire format's limit; checked before any
	// store action to keep block and store in step
	if len(block.Operations) >= blockrecord.MaximumOperations {
		return fault.ErrInvalidCount
	}

	tally, err := readTally(store)
	if nil != err {
		return err
	}

	tally, err = foldOperation(tally, operation)
	if nil != err {
		return err
	}

	err = writeTally(store, tally)
	if nil != err {
		return err
	}

	block.Operations = append(block.Operations, operation)
	return nil
}

// Finalise - per-block finalisation hook
//
// reserved for future inherent operations; leaves the block and the
// store unchanged
func (builder *Builder) Finalise(block *blockrecord.UnsealedBlock, store storage.Handle) error {
	return nil
}
