// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/tallyproject/tallyd/counter"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/util"
)

// TagType - type code for operations
type TagType uint64

// enumerate the possible operation record types
// this is encoded as a Varint64 at the start of the packed operation
//
// new variants extend the list without disturbing existing tags, so
// records packed by older versions keep their meaning
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AddTag = TagType(iota) // increment the stored tally

	// this item must be last
	InvalidTag = TagType(iota)
)

// PackedOperation - packed operations are just a byte slice
type PackedOperation []byte

// Operation - generic operation interface
type Operation interface {
	Pack() PackedOperation
}

// Add - increment the stored tally by Amount
type Add struct {
	Amount counter.Counter `json:"amount"`
}

// Pack - Varint64(tag) followed by the fixed length amount
func (add *Add) Pack() PackedOperation {
	message := util.ToVarint64(uint64(AddTag))
	return append(message, add.Amount.Pack()...)
}

// RecordName - returns the name of an operation record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Add, Add:
		return "Add", true

	default:
		return "*unknown*", false
	}
}

// Unpack - turn a byte slice into an operation
//
// also returns the number of bytes consumed so a sequence of packed
// operations can be walked in order
//
// must cast result to correct type
//
// e.g.
//	add, ok := result.(*blockrecord.Add)
func (record PackedOperation) Unpack() (Operation, int, error) {

	tag, n := util.ClippedVarint64(record, 1, int(InvalidTag))
	if 0 == n || TagType(tag) >= InvalidTag {
		return nil, 0, fault.ErrInvalidOperationTag
	}

	switch TagType(tag) {

	case AddTag:
		if len(record) < n+counter.Length {
			return nil, 0, fault.ErrNotOperationPack
		}
		amount, err := counter.CounterFromBytes(record[n : n+counter.Length])
		if nil != err {
			return nil, 0, err
		}
		n += counter.Length

		return &Add{Amount: amount}, n, nil

	default:
		return nil, 0, fault.ErrInvalidOperationTag
	}
}
