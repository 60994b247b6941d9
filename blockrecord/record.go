// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/util"
)

// PackedBlock - packed blocks are just a byte slice
type PackedBlock []byte

// byte sizes for various fields
const (
	ParentFlagSize = 1                  // absent / present marker
	ParentSize     = blockdigest.Length // digest of the preceding block
	NonceSize      = 8                  // 64-bit number (starts at 0)
)

// parent flag values
const (
	parentAbsent  = 0x00
	parentPresent = 0x01
)

// MaximumOperations - limit on operations in a single block
const MaximumOperations = 10000

// Block - the unpacked sealed block
//
// immutable once sealed: the nonce makes the digest of the packed form
// satisfy the difficulty target (the chain root is exempt)
type Block struct {
	Parent     *blockdigest.Digest `json:"parent"`     // nil only for the chain root
	Operations []Operation         `json:"operations"` // applied in order
	Nonce      NonceType           `json:"nonce"`
}

// UnsealedBlock - a block being assembled by the builder
//
// same fields as Block minus the nonce; consumed by the sealer
type UnsealedBlock struct {
	Parent     *blockdigest.Digest `json:"parent"`
	Operations []Operation         `json:"operations"`
}

// Pack - turn a block into its canonical byte form
func (block *Block) Pack() PackedBlock {
	buffer := packPrefix(block.Parent, block.Operations)

	nonce := make([]byte, NonceSize)
	binary.LittleEndian.PutUint64(nonce, uint64(block.Nonce))
	return append(buffer, nonce...)
}

// Digest - the block identity
//
// the digest of the packed bytes, also the proof-of-work value
func (block *Block) Digest() blockdigest.Digest {
	return block.Pack().Digest()
}

// Pack - unsealed block with a zero nonce appended
//
// the result is identical to packing the sealed block with nonce 0
// and is ready for in place nonce patching by the sealer
func (block *UnsealedBlock) Pack() PackedBlock {
	buffer := packPrefix(block.Parent, block.Operations)
	return append(buffer, make([]byte, NonceSize)...)
}

// common prefix: parent option then counted operations
func packPrefix(parent *blockdigest.Digest, operations []Operation) PackedBlock {
	buffer := make(PackedBlock, 0, ParentFlagSize+ParentSize+NonceSize+util.Varint64MaximumBytes)

	if nil == parent {
		buffer = append(buffer, parentAbsent)
	} else {
		buffer = append(buffer, parentPresent)
		buffer = append(buffer, parent[:]...)
	}

	buffer = append(buffer, util.ToVarint64(uint64(len(operations)))...)
	for _, operation := range operations {
		buffer = append(buffer, operation.Pack()...)
	}
	return buffer
}

// Digest - digest for a packed block
func (record PackedBlock) Digest() blockdigest.Digest {
	return blockdigest.NewDigest(record)
}

// SetNonce - patch the nonce field of a packed block in place
//
// only valid on a buffer produced by Pack, where the nonce occupies
// the final NonceSize bytes
func (record PackedBlock) SetNonce(nonce NonceType) {
	binary.LittleEndian.PutUint64(record[len(record)-NonceSize:], uint64(nonce))
}

// Unpack - turn a byte slice back into a block
//
// the whole record must be consumed: decode(encode(x)) == x and any
// trailing garbage is an error
func (record PackedBlock) Unpack() (*Block, error) {
	if len(record) < ParentFlagSize+NonceSize {
		return nil, fault.ErrInvalidBlockSize
	}

	block := &Block{}
	n := 0

	switch record[n] {
	case parentAbsent:
		n += ParentFlagSize
	case parentPresent:
		n += ParentFlagSize
		if len(record) < n+ParentSize+NonceSize {
			return nil, fault.ErrInvalidBlockSize
		}
		parent := &blockdigest.Digest{}
		err := blockdigest.DigestFromBytes(parent, record[n:n+ParentSize])
		if nil != err {
			return nil, err
		}
		block.Parent = parent
		n += ParentSize
	default:
		return nil, fault.ErrInvalidParentFlag
	}

	operationCount, countLength := util.ClippedVarint64(record[n:], 0, MaximumOperations)
	if 0 == countLength {
		return nil, fault.ErrInvalidCount
	}
	n += countLength

	block.Operations = make([]Operation, operationCount)
	for i := 0; i < operationCount; i += 1 {
		operation, operationLength, err := PackedOperation(record[n:]).Unpack()
		if nil != err {
			return nil, err
		}
		block.Operations[i] = operation
		n += operationLength
	}

	if len(record) != n+NonceSize {
		return nil, fault.ErrInvalidBlockSize
	}
	block.Nonce = NonceType(binary.LittleEndian.Uint64(record[n:]))

	return block, nil
}
