// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/counter"
	"github.com/tallyproject/tallyd/fault"
)

func sampleParent() *blockdigest.Digest {
	d := blockdigest.NewDigest([]byte("parent block"))
	return &d
}

func TestRootRoundTrip(t *testing.T) {
	block := &blockrecord.Block{
		Parent:     nil,
		Operations: []blockrecord.Operation{},
		Nonce:      0,
	}

	packed := block.Pack()
	back, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, block, back, "root round trip")
}

func TestBlockRoundTrip(t *testing.T) {
	block := &blockrecord.Block{
		Parent: sampleParent(),
		Operations: []blockrecord.Operation{
			&blockrecord.Add{Amount: counter.New(3)},
			&blockrecord.Add{Amount: counter.New(5)},
		},
		Nonce: 0x0123456789abcdef,
	}

	packed := block.Pack()
	back, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, block, back, "round trip preserves every field")
}

func TestDigestDependsOnEveryField(t *testing.T) {
	block := &blockrecord.Block{
		Parent: sampleParent(),
		Operations: []blockrecord.Operation{
			&blockrecord.Add{Amount: counter.New(7)},
		},
		Nonce: 1,
	}
	base := block.Digest()

	block.Nonce = 2
	assert.NotEqual(t, base, block.Digest(), "nonce change must change digest")
	block.Nonce = 1

	block.Operations = append(block.Operations, &blockrecord.Add{Amount: counter.New(1)})
	assert.NotEqual(t, base, block.Digest(), "operation change must change digest")
	block.Operations = block.Operations[:1]

	block.Parent = nil
	assert.NotEqual(t, base, block.Digest(), "parent change must change digest")
}

func TestSetNonceMatchesRepack(t *testing.T) {
	unsealed := &blockrecord.UnsealedBlock{
		Parent: sampleParent(),
		Operations: []blockrecord.Operation{
			&blockrecord.Add{Amount: counter.New(42)},
		},
	}

	packed := unsealed.Pack()

	for _, nonce := range []blockrecord.NonceType{0, 1, 0xff, 0x100, 0xfedcba9876543210} {
		packed.SetNonce(nonce)

		sealed := &blockrecord.Block{
			Parent:     unsealed.Parent,
			Operations: unsealed.Operations,
			Nonce:      nonce,
		}
		assert.Equal(t, sealed.Pack(), packed, "patched buffer equals full repack")
		assert.Equal(t, sealed.Digest(), packed.Digest(), "digests agree")
	}
}

func TestOperationRoundTrip(t *testing.T) {
	add := &blockrecord.Add{Amount: counter.New(12345)}
	packed := add.Pack()

	operation, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "whole record consumed")

	back, ok := operation.(*blockrecord.Add)
	assert.True(t, ok, "concrete type")
	assert.Equal(t, add, back, "round trip")
}

func TestOperationUnpackErrors(t *testing.T) {
	_, _, err := blockrecord.PackedOperation{}.Unpack()
	assert.Equal(t, fault.ErrInvalidOperationTag, err, "empty record")

	_, _, err = blockrecord.PackedOperation{0x7f}.Unpack()
	assert.Equal(t, fault.ErrInvalidOperationTag, err, "unknown tag")

	// valid tag but truncated amount
	add := &blockrecord.Add{Amount: counter.New(9)}
	packed := add.Pack()
	_, _, err = packed[:len(packed)-1].Unpack()
	assert.Equal(t, fault.ErrNotOperationPack, err, "truncated amount")
}

func TestBlockUnpackErrors(t *testing.T) {
	block := &blockrecord.Block{
		Parent: sampleParent(),
		Operations: []blockrecord.Operation{
			&blockrecord.Add{Amount: counter.New(1)},
		},
		Nonce: 99,
	}
	packed := block.Pack()

	_, err := packed[:len(packed)-1].Unpack()
	assert.NotNil(t, err, "truncated block must fail")

	_, err = append(append(blockrecord.PackedBlock{}, packed...), 0x00).Unpack()
	assert.Equal(t, fault.ErrInvalidBlockSize, err, "trailing garbage must fail")

	bad := append(blockrecord.PackedBlock{}, packed...)
	bad[0] = 0x02
	_, err = bad.Unpack()
	assert.Equal(t, fault.ErrInvalidParentFlag, err, "bad parent flag must fail")

	_, err = blockrecord.PackedBlock{}.Unpack()
	assert.Equal(t, fault.ErrInvalidBlockSize, err, "empty record must fail")
}

func TestRecordName(t *testing.T) {
	name, ok := blockrecord.RecordName(&blockrecord.Add{})
	assert.True(t, ok, "pointer record")
	assert.Equal(t, "Add", name, "pointer record name")

	name, ok = blockrecord.RecordName(blockrecord.Add{})
	assert.True(t, ok, "value record")
	assert.Equal(t, "Add", name, "value record name")

	_, ok = blockrecord.RecordName(42)
	assert.False(t, ok, "non-record")
}

func TestNonceJSON(t *testing.T) {
	nonce := blockrecord.NonceType(0x0123456789abcdef)

	buffer, err := json.Marshal(nonce)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"efcdab8967452301"`, string(buffer), "little endian hex")

	var back blockrecord.NonceType
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, nonce, back, "round trip")
}
